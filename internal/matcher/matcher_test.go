package matcher

import (
	"testing"

	"github.com/amsilf/hsk-bot/internal/domain/entities"
)

func TestMatchEnglishVerb(t *testing.T) {
	word := entities.Word{
		Chinese:      "回",
		Pinyin:       "huí",
		English:      "return",
		PartOfSpeech: entities.PartVerb,
		HSKLevel:     1,
	}

	tests := []struct {
		answer string
		want   bool
	}{
		{answer: "return", want: true},
		{answer: "to return", want: true}, // infinitive expansion
		{answer: "Return", want: true},    // case-insensitive
		{answer: "  return  ", want: true},
		{answer: "returning", want: false},
		{answer: "go back", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.answer, func(t *testing.T) {
			got := IsCorrect(word, tt.answer, entities.ModeCharactersToEnglish)
			if got != tt.want {
				t.Errorf("IsCorrect(%q) = %v, want %v", tt.answer, got, tt.want)
			}
		})
	}
}

func TestMatchEnglishNoun(t *testing.T) {
	word := entities.Word{
		Chinese:      "猫",
		Pinyin:       "māo",
		English:      "cat",
		PartOfSpeech: entities.PartNoun,
		HSKLevel:     1,
	}

	tests := []struct {
		answer string
		want   bool
	}{
		{answer: "cat", want: true},
		{answer: "a cat", want: true},   // article expansion
		{answer: "the cat", want: true}, // article expansion
		{answer: "cats", want: true},    // naive pluralization
		{answer: "the dog", want: false},
		{answer: "kitten", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.answer, func(t *testing.T) {
			got := IsCorrect(word, tt.answer, entities.ModePinyinToEnglish)
			if got != tt.want {
				t.Errorf("IsCorrect(%q) = %v, want %v", tt.answer, got, tt.want)
			}
		})
	}
}

func TestMatchEnglishMeasureWord(t *testing.T) {
	word := entities.Word{
		Chinese:      "本",
		Pinyin:       "běn",
		English:      "measure word for books",
		PartOfSpeech: entities.PartMeasure,
		HSKLevel:     1,
	}

	tests := []struct {
		answer string
		want   bool
	}{
		{answer: "measure word for books", want: true},
		{answer: "for books", want: true}, // "measure word" stripped
		{answer: "books", want: true},     // everything stripped
		{answer: "pencils", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.answer, func(t *testing.T) {
			got := IsCorrect(word, tt.answer, entities.ModeCharactersToEnglish)
			if got != tt.want {
				t.Errorf("IsCorrect(%q) = %v, want %v", tt.answer, got, tt.want)
			}
		})
	}
}

func TestMatchEnglishMultiSense(t *testing.T) {
	word := entities.Word{
		Chinese:      "爱",
		Pinyin:       "ài",
		English:      "to love, like",
		PartOfSpeech: entities.PartVerb,
		HSKLevel:     1,
	}

	tests := []struct {
		answer string
		want   bool
	}{
		{answer: "to love", want: true},
		{answer: "love", want: true},    // marker stripped
		{answer: "like", want: true},    // second sense
		{answer: "to like", want: true}, // marker prepended to second sense
		{answer: "adore", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.answer, func(t *testing.T) {
			got := IsCorrect(word, tt.answer, entities.ModeCharactersToEnglish)
			if got != tt.want {
				t.Errorf("IsCorrect(%q) = %v, want %v", tt.answer, got, tt.want)
			}
		})
	}
}

func TestMatchEnglishLooserSecondPass(t *testing.T) {
	word := entities.Word{
		Chinese:      "学生",
		Pinyin:       "xuésheng",
		English:      "student",
		PartOfSpeech: "", // no tag: token splitting only, no POS expansion
		HSKLevel:     1,
	}

	// "a student" is not in the variation set without the noun rule, but
	// the second pass drops the article from the answer.
	if !IsCorrect(word, "a student", entities.ModeCharactersToEnglish) {
		t.Error("expected article-dropping second pass to accept 'a student'")
	}
	if IsCorrect(word, "students", entities.ModeCharactersToEnglish) {
		t.Error("pluralization must not apply without a noun tag")
	}
}

func TestMatchChinese(t *testing.T) {
	word := entities.Word{
		Chinese:  "去",
		Pinyin:   "qù",
		English:  "go",
		HSKLevel: 1,
	}

	tests := []struct {
		answer string
		want   bool
	}{
		{answer: "去", want: true},
		{answer: " 去 ", want: true},
		{answer: "qu", want: false}, // no romanization fallback
		{answer: "go", want: false},
		{answer: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.answer, func(t *testing.T) {
			got := IsCorrect(word, tt.answer, entities.ModeEnglishToCharacters)
			if got != tt.want {
				t.Errorf("IsCorrect(%q) = %v, want %v", tt.answer, got, tt.want)
			}
		})
	}
}

func TestForReturnsStrategyPerMode(t *testing.T) {
	word := entities.Word{Chinese: "去", English: "go", PartOfSpeech: entities.PartVerb, HSKLevel: 1}

	if !For(entities.ModeCharactersToEnglish)(word, "to go") {
		t.Error("characters_to_english strategy should accept the gloss")
	}
	if For(entities.ModeEnglishToCharacters)(word, "to go") {
		t.Error("english_to_characters strategy must demand the characters")
	}
}
