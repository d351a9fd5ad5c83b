package entities

import (
	"errors"
	"fmt"
)

var ErrUnknownPracticeMode = errors.New("unknown practice mode")

// PracticeMode selects which form of a word is shown to the user and
// which form they must produce. The set is closed.
type PracticeMode string

const (
	ModePinyinToEnglish     PracticeMode = "pinyin_to_english"
	ModeCharactersToEnglish PracticeMode = "characters_to_english"
	ModeEnglishToCharacters PracticeMode = "english_to_characters"
)

// ParsePracticeMode converts a string into a PracticeMode. The legacy
// two-way values "chinese" and "english" are accepted as deprecated
// aliases for the characters_to_english and english_to_characters modes.
func ParsePracticeMode(s string) (PracticeMode, error) {
	switch s {
	case string(ModePinyinToEnglish):
		return ModePinyinToEnglish, nil
	case string(ModeCharactersToEnglish), "chinese":
		return ModeCharactersToEnglish, nil
	case string(ModeEnglishToCharacters), "english":
		return ModeEnglishToCharacters, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownPracticeMode, s)
	}
}

// Valid reports whether the mode is one of the three canonical values.
func (m PracticeMode) Valid() bool {
	switch m {
	case ModePinyinToEnglish, ModeCharactersToEnglish, ModeEnglishToCharacters:
		return true
	}
	return false
}

// ExpectsEnglish reports whether the user must produce the English gloss.
func (m PracticeMode) ExpectsEnglish() bool {
	return m == ModePinyinToEnglish || m == ModeCharactersToEnglish
}

// Prompt returns the form of the word shown to the user in this mode.
func (m PracticeMode) Prompt(w Word) string {
	switch m {
	case ModePinyinToEnglish:
		return w.Pinyin
	case ModeCharactersToEnglish:
		return w.Chinese
	default:
		return w.English
	}
}
