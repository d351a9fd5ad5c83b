package telegram

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/amsilf/hsk-bot/internal/domain/entities"
)

// buildLevelKeyboard builds the HSK level selection keyboard.
func buildLevelKeyboard() tgbotapi.InlineKeyboardMarkup {
	levelButton := func(level int) tgbotapi.InlineKeyboardButton {
		return tgbotapi.NewInlineKeyboardButtonData(
			fmt.Sprintf("HSK %d", level),
			buildLevelCallback(level),
		)
	}

	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(levelButton(1), levelButton(2), levelButton(3)),
		tgbotapi.NewInlineKeyboardRow(levelButton(4), levelButton(5), levelButton(6)),
	)
}

// buildModeKeyboard builds the practice mode selection keyboard for a level.
func buildModeKeyboard(level int) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(
				"Pinyin → English",
				buildModeCallback(level, entities.ModePinyinToEnglish),
			),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(
				"Characters → English",
				buildModeCallback(level, entities.ModeCharactersToEnglish),
			),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(
				"English → Characters",
				buildModeCallback(level, entities.ModeEnglishToCharacters),
			),
		),
	)
}
