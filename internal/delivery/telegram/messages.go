// messages.go contains message templates and formatting functions for Telegram.

package telegram

import (
	"fmt"

	"github.com/amsilf/hsk-bot/internal/domain/entities"
)

const (
	msgWelcome          = "Welcome to HSK Vocabulary Practice! Please select your HSK level:"
	msgSelectMode       = "Select practice mode:"
	msgNoSession        = "No active session. Use /start to begin practice."
	msgNothingToStop    = "There is no session to stop. Use /start to begin practice."
	msgInvalidLevel     = "That HSK level does not exist. Pick a level between 1 and 6."
	msgLevelUnavailable = "Vocabulary for this level is not available. Try another level."
	msgVocabularyBroken = "The vocabulary file for this level could not be read. Try another level."
	msgInternalError    = "Something went wrong. Please try again later."
	msgUnknownCommand   = "Unknown command. Available commands:\n\n/start — begin a practice session\n/score — show session statistics\n/stop — end the session\n/help — show help"
	msgHelp             = "HSK Vocabulary Practice\n\n/start — pick a level and practice mode, then answer the prompts\n/score — show your statistics for the current session\n/stop — end the session and see your final score\n\nAnswer by typing the translation (or the characters, in English → Characters mode)."
)

func formatFirstPrompt(word entities.Word, mode entities.PracticeMode) string {
	return fmt.Sprintf("Translate this word: %s", mode.Prompt(word))
}

func formatNextPrompt(word entities.Word, mode entities.PracticeMode) string {
	return fmt.Sprintf("Next word: %s", mode.Prompt(word))
}

// formatFeedback renders the verdict plus the complementary form of the
// word so the user always sees what they were missing.
func formatFeedback(correct bool, word entities.Word, mode entities.PracticeMode) string {
	var feedback string
	if correct {
		feedback = "✅ Correct!"
	} else {
		answer := word.English
		if mode == entities.ModeEnglishToCharacters {
			answer = word.Chinese
		}
		feedback = fmt.Sprintf("❌ Incorrect! The correct answer was: %s", answer)
	}

	if mode == entities.ModePinyinToEnglish {
		return fmt.Sprintf("%s\nChinese: %s", feedback, word.Chinese)
	}
	return fmt.Sprintf("%s\nPinyin: %s", feedback, word.Pinyin)
}

func formatScore(state *entities.UserState) string {
	return fmt.Sprintf(
		"📊 Session statistics\n\nHSK level: %d\nScore: %d\nAttempts: %d\nAccuracy: %.1f%%",
		state.HSKLevel,
		state.Score,
		state.TotalAttempts,
		state.Accuracy(),
	)
}

func formatFinal(state *entities.UserState) string {
	return fmt.Sprintf(
		"Session finished!\n\nScore: %d\nAttempts: %d\nAccuracy: %.1f%%\n\nUse /start to practice again.",
		state.Score,
		state.TotalAttempts,
		state.Accuracy(),
	)
}
