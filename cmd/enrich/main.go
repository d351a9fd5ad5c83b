// Command enrich tags a pipe-delimited HSK vocabulary file with a
// part_of_speech column. Run it once per source file before serving
// the file to the bot:
//
//	enrich -in resources/hsk-1.csv -out resources/hsk-1-pos.csv
package main

import (
	"flag"
	"log"
	"os"

	"github.com/amsilf/hsk-bot/internal/enrich"
)

func main() {
	in := flag.String("in", "", "input vocabulary file (pipe-delimited)")
	out := flag.String("out", "", "output file")
	flag.Parse()

	if *in == "" || *out == "" {
		flag.Usage()
		os.Exit(2)
	}

	src, err := os.Open(*in)
	if err != nil {
		log.Fatal(err)
	}
	defer src.Close()

	dst, err := os.Create(*out)
	if err != nil {
		log.Fatal(err)
	}

	if err := enrich.Process(src, dst); err != nil {
		_ = dst.Close()
		log.Fatal(err)
	}

	if err := dst.Close(); err != nil {
		log.Fatal(err)
	}
}
