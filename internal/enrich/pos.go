package enrich

import (
	"strings"

	"github.com/amsilf/hsk-bot/internal/domain/entities"
)

// Keyword lists for classifying an English definition. Crude, but the
// HSK glosses are short and formulaic enough for this to work well.
var (
	verbKeywords = []string{
		"do", "make", "become", "handle", "manage", "operate",
		"establish", "publish", "register", "turn", "close", "shut",
		"wave", "block", "stop", "read", "study", "train", "touch",
		"approach", "donate", "overcome", "visit", "lean", "cut",
		"kill", "delete", "rise", "lose", "absorb", "imagine",
		"modify", "extend", "cook", "prevent",
	}

	nounKeywords = []string{
		"person", "place", "thing", "princess", "engineer",
		"worker", "aunt", "officer", "pipe", "cd", "dvd",
		"square", "counter", "pot", "pan", "king", "butterfly",
		"alley", "chemistry", "dust", "match", "muscle",
		"family", "shoulder", "scissors", "bell", "wall",
		"circle", "equipment", "network", "system",
	}

	adjectiveKeywords = []string{
		"high-grade", "individual", "fixed", "classical",
		"peaceful", "sudden", "slippery", "intense", "fierce",
		"lonely", "honest", "sincere", "optimistic", "continuous",
		"good", "fine", "reliable", "strong", "weak", "soft",
		"perfect", "special", "modern", "straight",
	}

	adverbKeywords = []string{
		"especially", "widely", "hastily", "hurriedly",
		"actually", "unexpectedly", "allegedly", "personally",
		"easily", "gradually", "voluntarily",
	}

	measureKeywords      = []string{"measure word", "classifier"}
	interjectionKeywords = []string{"expressing", "exclamation"}
	prepositionKeywords  = []string{"according to", "as for", "by means of"}
)

// ClassifyPartOfSpeech guesses the part of speech of a vocabulary entry
// from its English definition.
func ClassifyPartOfSpeech(definition string) entities.PartOfSpeech {
	definition = strings.ToLower(definition)

	switch {
	case containsAny(definition, verbKeywords):
		return entities.PartVerb
	case containsAny(definition, nounKeywords):
		return entities.PartNoun
	case containsAny(definition, adjectiveKeywords):
		return entities.PartAdjective
	case containsAny(definition, adverbKeywords):
		return entities.PartAdverb
	case containsAny(definition, measureKeywords):
		return entities.PartMeasure
	case containsAny(definition, interjectionKeywords):
		return entities.PartInterjection
	case containsAny(definition, prepositionKeywords):
		return entities.PartPreposition
	}

	// Fall back to common surface patterns.
	switch {
	case hasAnyPrefix(definition, "the ", "a ", "an "):
		return entities.PartNoun
	case strings.Contains(definition, "(v.)") || hasAnySuffix(definition, "ate", "ize", "ify"):
		return entities.PartVerb
	case hasAnySuffix(definition, "ly", "wise"):
		return entities.PartAdverb
	case hasAnySuffix(definition, "ful", "ous", "ive", "able", "al"):
		return entities.PartAdjective
	}

	return entities.PartNoun
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}

func hasAnyPrefix(s string, prefixes ...string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}

func hasAnySuffix(s string, suffixes ...string) bool {
	for _, suf := range suffixes {
		if strings.HasSuffix(s, suf) {
			return true
		}
	}
	return false
}
