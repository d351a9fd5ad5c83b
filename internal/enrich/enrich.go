// Package enrich implements the offline vocabulary enrichment tool:
// it tags each entry of a pipe-delimited HSK word list with a guessed
// part of speech. It is a data-preparation step, not part of the
// runtime engine, and reads and writes the same schema the engine
// consumes.
package enrich

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

const posColumn = "part_of_speech"

// englishColumn is the position of the English definition in the raw
// source files (n|chinese|pinyin|english|...).
const englishColumn = 3

// Process reads a pipe-delimited vocabulary list, fills in the
// part_of_speech column and writes the result. Rows with fewer than
// four fields are dropped.
func Process(r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)

	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return fmt.Errorf("read header: %w", err)
		}
		return fmt.Errorf("input is empty")
	}

	header := strings.Split(strings.TrimRight(scanner.Text(), "\r\n"), "|")
	posIdx := -1
	for i, col := range header {
		if strings.EqualFold(strings.TrimSpace(col), posColumn) {
			posIdx = i
		}
	}
	if posIdx == -1 {
		header = append(header, posColumn)
		posIdx = len(header) - 1
	}

	out := bufio.NewWriter(w)
	if _, err := out.WriteString(strings.Join(header, "|") + "\n"); err != nil {
		return err
	}

	for scanner.Scan() {
		parts := strings.Split(strings.TrimRight(scanner.Text(), "\r\n"), "|")
		if len(parts) <= englishColumn {
			continue
		}

		pos := string(ClassifyPartOfSpeech(parts[englishColumn]))

		switch {
		case posIdx < len(parts):
			parts[posIdx] = pos
		default:
			for len(parts) < posIdx {
				parts = append(parts, "")
			}
			parts = append(parts, pos)
		}

		if _, err := out.WriteString(strings.Join(parts, "|") + "\n"); err != nil {
			return err
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	return out.Flush()
}
