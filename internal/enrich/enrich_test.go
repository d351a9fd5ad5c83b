package enrich

import (
	"strings"
	"testing"

	"github.com/amsilf/hsk-bot/internal/domain/entities"
)

func TestClassifyPartOfSpeech(t *testing.T) {
	tests := []struct {
		definition string
		want       entities.PartOfSpeech
	}{
		{definition: "read, study", want: entities.PartVerb},
		{definition: "butterfly", want: entities.PartNoun},
		{definition: "sudden", want: entities.PartAdjective},
		{definition: "gradually", want: entities.PartAdverb},
		{definition: "measure word for books", want: entities.PartMeasure},
		{definition: "expressing agreement", want: entities.PartInterjection},
		{definition: "according to", want: entities.PartPreposition},
		{definition: "the weather", want: entities.PartNoun}, // article prefix fallback
		{definition: "simplify", want: entities.PartVerb},    // suffix fallback
		{definition: "zyx", want: entities.PartNoun},         // default
	}

	for _, tt := range tests {
		t.Run(tt.definition, func(t *testing.T) {
			if got := ClassifyPartOfSpeech(tt.definition); got != tt.want {
				t.Errorf("ClassifyPartOfSpeech(%q) = %q, want %q", tt.definition, got, tt.want)
			}
		})
	}
}

func TestProcessAppendsColumn(t *testing.T) {
	in := "n|chinese|pinyin|english\n" +
		"1|本|běn|measure word for books\n" +
		"2|回\n" + // too short, dropped
		"3|蝴蝶|húdié|butterfly\n"

	var out strings.Builder
	if err := Process(strings.NewReader(in), &out); err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3: %q", len(lines), out.String())
	}
	if lines[0] != "n|chinese|pinyin|english|part_of_speech" {
		t.Errorf("header = %q", lines[0])
	}
	if lines[1] != "1|本|běn|measure word for books|measure" {
		t.Errorf("row 1 = %q", lines[1])
	}
	if lines[2] != "3|蝴蝶|húdié|butterfly|noun" {
		t.Errorf("row 2 = %q", lines[2])
	}
}

func TestProcessReplacesExistingColumn(t *testing.T) {
	in := "n|chinese|pinyin|english|part_of_speech\n" +
		"1|蝴蝶|húdié|butterfly|verb\n"

	var out strings.Builder
	if err := Process(strings.NewReader(in), &out); err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	if lines[1] != "1|蝴蝶|húdié|butterfly|noun" {
		t.Errorf("row = %q, want stale tag replaced", lines[1])
	}
}

func TestProcessEmptyInput(t *testing.T) {
	var out strings.Builder
	if err := Process(strings.NewReader(""), &out); err == nil {
		t.Error("expected an error for empty input")
	}
}
