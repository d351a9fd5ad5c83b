package entities

import (
	"errors"
	"fmt"
	"strings"
)

// HSK level bounds for the official curriculum.
const (
	MinHSKLevel = 1
	MaxHSKLevel = 6
)

var ErrInvalidWord = errors.New("invalid word")

// PartOfSpeech classifies a vocabulary entry by its grammatical role.
// The set matches the tags produced by the enrichment tool.
type PartOfSpeech string

const (
	PartNoun         PartOfSpeech = "noun"
	PartVerb         PartOfSpeech = "verb"
	PartAdjective    PartOfSpeech = "adj"
	PartAdverb       PartOfSpeech = "adv"
	PartMeasure      PartOfSpeech = "measure"
	PartInterjection PartOfSpeech = "intj"
	PartPreposition  PartOfSpeech = "prep"
)

// Word represents a single HSK vocabulary entry.
// It is immutable once created; sessions share word lists read-only.
type Word struct {
	Chinese      string       // Chinese character(s)
	Pinyin       string       // pinyin romanization
	English      string       // English translation, possibly multi-sense comma-separated
	PartOfSpeech PartOfSpeech // grammatical tag, empty in the older four-column schema
	HSKLevel     int          // HSK level (1-6)
}

// NewWord creates a Word after trimming its text fields and validating them.
func NewWord(chinese, pinyin, english string, pos PartOfSpeech, hskLevel int) (Word, error) {
	w := Word{
		Chinese:      strings.TrimSpace(chinese),
		Pinyin:       strings.TrimSpace(pinyin),
		English:      strings.TrimSpace(english),
		PartOfSpeech: pos,
		HSKLevel:     hskLevel,
	}

	if err := w.Validate(); err != nil {
		return Word{}, err
	}

	return w, nil
}

// Validate checks the Word invariants: level within bounds and
// all three text forms non-empty.
func (w Word) Validate() error {
	if w.HSKLevel < MinHSKLevel || w.HSKLevel > MaxHSKLevel {
		return fmt.Errorf("%w: hsk level %d out of range", ErrInvalidWord, w.HSKLevel)
	}
	if w.Chinese == "" || w.Pinyin == "" || w.English == "" {
		return fmt.Errorf("%w: empty text field", ErrInvalidWord)
	}
	return nil
}
