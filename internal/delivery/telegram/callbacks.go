package telegram

import (
	"context"
	"errors"
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/amsilf/hsk-bot/internal/domain/entities"
	"github.com/amsilf/hsk-bot/internal/repository"
)

func (h *Handler) handleCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	data := decodeCallback(cb.Data)

	switch data.Action {
	case actionLevel:
		h.handleLevelCallback(cb, data)
	case actionMode:
		h.handleModeCallback(ctx, cb, data)
	default:
		return
	}

	// Remove the user's "clock".
	answer := tgbotapi.NewCallback(cb.ID, "")
	if _, err := h.bot.Request(answer); err != nil {
		h.logger.Error("callback answer error", zap.Error(err))
	}
}

func (h *Handler) handleLevelCallback(cb *tgbotapi.CallbackQuery, data callbackData) {
	if len(data.Params) != 1 {
		h.logger.Warn("invalid level callback", zap.String("data", cb.Data))
		return
	}

	level, err := strconv.Atoi(data.Params[0])
	if err != nil {
		h.logger.Warn("invalid level in callback", zap.String("data", cb.Data))
		return
	}

	edit := tgbotapi.NewEditMessageTextAndMarkup(
		cb.Message.Chat.ID,
		cb.Message.MessageID,
		msgSelectMode,
		buildModeKeyboard(level),
	)
	h.send(edit)
}

func (h *Handler) handleModeCallback(ctx context.Context, cb *tgbotapi.CallbackQuery, data callbackData) {
	if len(data.Params) != 2 {
		h.logger.Warn("invalid mode callback", zap.String("data", cb.Data))
		return
	}

	level, err := strconv.Atoi(data.Params[0])
	if err != nil {
		h.logger.Warn("invalid level in mode callback", zap.String("data", cb.Data))
		return
	}

	mode, err := entities.ParsePracticeMode(data.Params[1])
	if err != nil {
		h.logger.Warn("invalid mode in callback", zap.String("data", cb.Data))
		return
	}

	h.startPractice(ctx, cb.Message.Chat.ID, cb.From.ID, level, mode)
}

// startPractice begins a session and shows the first word. Vocabulary
// failures render as distinct messages per error kind.
func (h *Handler) startPractice(_ context.Context, chatID, userID int64, level int, mode entities.PracticeMode) {
	_, err := h.gameService.StartSession(userID, level, mode)
	if err != nil {
		h.logger.Warn("failed to start session",
			zap.Int64("user_id", userID),
			zap.Int("hsk_level", level),
			zap.Error(err),
		)
		h.send(tgbotapi.NewMessage(chatID, startErrorMessage(err)))
		return
	}

	word := h.gameService.NextWord(userID)
	if word == nil {
		h.send(tgbotapi.NewMessage(chatID, msgInternalError))
		return
	}

	h.send(tgbotapi.NewMessage(chatID, formatFirstPrompt(*word, mode)))
}

func startErrorMessage(err error) string {
	switch {
	case errors.Is(err, repository.ErrInvalidLevel):
		return msgInvalidLevel
	case errors.Is(err, repository.ErrSourceNotFound):
		return msgLevelUnavailable
	case errors.Is(err, repository.ErrMissingColumns), errors.Is(err, repository.ErrEmptyVocabulary):
		return msgVocabularyBroken
	default:
		return msgInternalError
	}
}
