// Package matcher grades free-text answers against a vocabulary word.
// Matching is pure: no state, no side effects. Each practice mode has
// its own strategy so stricter matchers can be swapped in without
// touching the game engine.
package matcher

import (
	"strings"

	"github.com/amsilf/hsk-bot/internal/domain/entities"
)

// Strategy decides whether a raw user answer matches a word.
type Strategy func(word entities.Word, answer string) bool

// For returns the matching strategy for the given practice mode.
func For(mode entities.PracticeMode) Strategy {
	if mode.ExpectsEnglish() {
		return MatchEnglish
	}
	return MatchChinese
}

// IsCorrect reports whether the answer is an acceptable response for
// the word under the given practice mode.
func IsCorrect(word entities.Word, answer string, mode entities.PracticeMode) bool {
	return For(mode)(word, answer)
}

// MatchChinese accepts only the exact Chinese form, ignoring
// surrounding whitespace. There is no pinyin fallback: the point of
// the english_to_characters mode is producing the characters.
func MatchChinese(word entities.Word, answer string) bool {
	return strings.TrimSpace(answer) == word.Chinese
}

// MatchEnglish accepts any member of the word's equivalence class:
// each comma-separated sense of the gloss, its individual tokens, and
// part-of-speech-specific variations. A second, looser pass drops the
// articles and the infinitive marker from the user's answer.
func MatchEnglish(word entities.Word, answer string) bool {
	variations := expand(word)

	got := strings.ToLower(strings.TrimSpace(answer))
	if _, ok := variations[got]; ok {
		return true
	}

	_, ok := variations[dropFillerTokens(got)]
	return ok
}

var articles = []string{"a ", "an ", "the "}

const infinitiveMarker = "to "

// expand builds the set of acceptable English answers for a word.
func expand(word entities.Word) map[string]struct{} {
	variations := make(map[string]struct{})

	for _, sense := range strings.Split(word.English, ",") {
		sense = strings.ToLower(strings.TrimSpace(sense))
		if sense == "" {
			continue
		}

		variations[sense] = struct{}{}
		for _, token := range strings.Fields(sense) {
			variations[token] = struct{}{}
		}

		switch word.PartOfSpeech {
		case entities.PartVerb:
			if bare, found := strings.CutPrefix(sense, infinitiveMarker); found {
				variations[bare] = struct{}{}
			} else {
				variations[infinitiveMarker+sense] = struct{}{}
			}

		case entities.PartNoun:
			for _, article := range articles {
				variations[article+sense] = struct{}{}
			}
			if !strings.HasSuffix(sense, "s") {
				variations[sense+"s"] = struct{}{}
			}

		case entities.PartMeasure:
			stripped := sense
			for _, marker := range []string{"a measure word", "measure word", "for"} {
				variations[normalizeSpaces(strings.ReplaceAll(sense, marker, ""))] = struct{}{}
				stripped = strings.ReplaceAll(stripped, marker, "")
			}
			variations[normalizeSpaces(stripped)] = struct{}{}
		}
	}

	delete(variations, "")
	return variations
}

// dropFillerTokens removes the articles and the infinitive marker from
// an answer, token by token.
func dropFillerTokens(answer string) string {
	kept := make([]string, 0, 4)
	for _, token := range strings.Fields(answer) {
		switch token {
		case "a", "an", "the", "to":
			continue
		}
		kept = append(kept, token)
	}
	return strings.Join(kept, " ")
}

func normalizeSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
