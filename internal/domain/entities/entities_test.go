package entities

import (
	"errors"
	"testing"
)

func TestNewWordValidation(t *testing.T) {
	tests := []struct {
		name    string
		chinese string
		pinyin  string
		english string
		level   int
		wantErr bool
	}{
		{
			name:    "valid word",
			chinese: "回",
			pinyin:  "huí",
			english: "return",
			level:   1,
		},
		{
			name:    "level below range",
			chinese: "回",
			pinyin:  "huí",
			english: "return",
			level:   0,
			wantErr: true,
		},
		{
			name:    "level above range",
			chinese: "回",
			pinyin:  "huí",
			english: "return",
			level:   7,
			wantErr: true,
		},
		{
			name:    "blank chinese after trimming",
			chinese: "   ",
			pinyin:  "huí",
			english: "return",
			level:   1,
			wantErr: true,
		},
		{
			name:    "empty english",
			chinese: "回",
			pinyin:  "huí",
			english: "",
			level:   1,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			word, err := NewWord(tt.chinese, tt.pinyin, tt.english, PartVerb, tt.level)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidWord) {
					t.Fatalf("expected ErrInvalidWord, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if word.Chinese != "回" || word.Pinyin != "huí" {
				t.Errorf("fields not trimmed/kept: %+v", word)
			}
		})
	}
}

func TestNewWordTrimsFields(t *testing.T) {
	word, err := NewWord("  回 ", " huí ", " return ", "", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if word.Chinese != "回" || word.Pinyin != "huí" || word.English != "return" {
		t.Errorf("fields not trimmed: %+v", word)
	}
}

func TestUserStateAccuracy(t *testing.T) {
	state := UserState{}
	if got := state.Accuracy(); got != 0.0 {
		t.Errorf("accuracy with no attempts = %v, want 0.0", got)
	}

	state.TotalAttempts = 10
	state.CorrectAttempts = 7
	if got := state.Accuracy(); got != 70.0 {
		t.Errorf("accuracy = %v, want 70.0", got)
	}
}

func TestParsePracticeMode(t *testing.T) {
	tests := []struct {
		input   string
		want    PracticeMode
		wantErr bool
	}{
		{input: "pinyin_to_english", want: ModePinyinToEnglish},
		{input: "characters_to_english", want: ModeCharactersToEnglish},
		{input: "english_to_characters", want: ModeEnglishToCharacters},
		// Legacy two-way aliases.
		{input: "chinese", want: ModeCharactersToEnglish},
		{input: "english", want: ModeEnglishToCharacters},
		{input: "klingon_to_english", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParsePracticeMode(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownPracticeMode) {
					t.Fatalf("expected ErrUnknownPracticeMode, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ParsePracticeMode(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestPracticeModePrompt(t *testing.T) {
	word := Word{Chinese: "回", Pinyin: "huí", English: "return", HSKLevel: 1}

	if got := ModePinyinToEnglish.Prompt(word); got != "huí" {
		t.Errorf("pinyin prompt = %q", got)
	}
	if got := ModeCharactersToEnglish.Prompt(word); got != "回" {
		t.Errorf("characters prompt = %q", got)
	}
	if got := ModeEnglishToCharacters.Prompt(word); got != "return" {
		t.Errorf("english prompt = %q", got)
	}
}
