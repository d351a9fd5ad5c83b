package telegram

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/amsilf/hsk-bot/internal/domain/entities"
)

type GameService interface {
	StartSession(userID int64, hskLevel int, mode entities.PracticeMode) (entities.GameSession, error)
	NextWord(userID int64) *entities.Word
	CheckAnswer(userID int64, answer string) (bool, error)
	Stats(userID int64) *entities.UserState
	EndSession(userID int64) *entities.UserState
}

type UserService interface {
	EnsureUser(ctx context.Context, userID int64, firstName, lastName string, username string, languageCode string) error
	RecordPractice(ctx context.Context, userID int64, attempts, correct int) error
}

type Handler struct {
	bot         *tgbotapi.BotAPI
	logger      *zap.Logger
	gameService GameService
	userService UserService
}

func NewHandler(
	bot *tgbotapi.BotAPI,
	logger *zap.Logger,
	gameService GameService,
	userService UserService,
) *Handler {
	return &Handler{
		bot:         bot,
		logger:      logger,
		gameService: gameService,
		userService: userService,
	}
}

func (h *Handler) Run(ctx context.Context) error {
	h.logger.Info("telegram handler started")
	defer h.logger.Info("telegram handler stopped")

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := h.bot.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case update := <-updates:
			h.handleUpdate(ctx, update)
		}
	}
}

func (h *Handler) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	if update.CallbackQuery != nil {
		h.logger.Debug("callback received",
			zap.Int64("user_id", update.CallbackQuery.From.ID),
			zap.String("data", update.CallbackQuery.Data),
		)
		h.handleCallback(ctx, update.CallbackQuery)
		return
	}

	if update.Message == nil {
		h.logger.Debug("update without message and callback")
		return
	}

	h.logger.Debug("update received",
		zap.Int64("chat_id", update.Message.Chat.ID),
		zap.String("text", update.Message.Text),
	)

	from := update.Message.From
	err := h.userService.EnsureUser(
		ctx,
		from.ID,
		from.FirstName,
		from.LastName,
		from.UserName,
		from.LanguageCode,
	)
	if err != nil {
		h.logger.Error("failed to ensure user",
			zap.Int64("user_id", from.ID),
			zap.Error(err),
		)
	}

	chatID := update.Message.Chat.ID

	if update.Message.IsCommand() {
		switch update.Message.Command() {
		case "start":
			msg := tgbotapi.NewMessage(chatID, msgWelcome)
			msg.ReplyMarkup = buildLevelKeyboard()
			h.send(msg)

		case "score":
			h.handleScore(chatID, from.ID)

		case "stop":
			h.handleStop(ctx, chatID, from.ID)

		case "help":
			h.send(tgbotapi.NewMessage(chatID, msgHelp))

		default:
			h.send(tgbotapi.NewMessage(chatID, msgUnknownCommand))
		}

		return
	}

	h.handleAnswer(chatID, from.ID, update.Message.Text)
}

// handleAnswer grades a plain-text message as an answer to the current word.
func (h *Handler) handleAnswer(chatID, userID int64, text string) {
	state := h.gameService.Stats(userID)
	if state == nil || state.CurrentWord == nil {
		h.send(tgbotapi.NewMessage(chatID, msgNoSession))
		return
	}
	word := *state.CurrentWord

	correct, err := h.gameService.CheckAnswer(userID, text)
	if err != nil {
		h.send(tgbotapi.NewMessage(chatID, msgNoSession))
		return
	}

	h.send(tgbotapi.NewMessage(chatID, formatFeedback(correct, word, state.PracticeMode)))

	if next := h.gameService.NextWord(userID); next != nil {
		h.send(tgbotapi.NewMessage(chatID, formatNextPrompt(*next, state.PracticeMode)))
	}
}

func (h *Handler) handleScore(chatID, userID int64) {
	state := h.gameService.Stats(userID)
	if state == nil {
		h.send(tgbotapi.NewMessage(chatID, msgNoSession))
		return
	}

	h.send(tgbotapi.NewMessage(chatID, formatScore(state)))
}

func (h *Handler) handleStop(ctx context.Context, chatID, userID int64) {
	final := h.gameService.EndSession(userID)
	if final == nil {
		h.send(tgbotapi.NewMessage(chatID, msgNothingToStop))
		return
	}

	// Best effort: losing lifetime totals must not break the goodbye.
	err := h.userService.RecordPractice(ctx, userID, final.TotalAttempts, final.CorrectAttempts)
	if err != nil {
		h.logger.Warn("failed to record practice totals",
			zap.Int64("user_id", userID),
			zap.Error(err),
		)
	}

	h.send(tgbotapi.NewMessage(chatID, formatFinal(final)))
}

func (h *Handler) send(c tgbotapi.Chattable) {
	if _, err := h.bot.Send(c); err != nil {
		h.logger.Error("failed to send telegram message",
			zap.Error(err),
		)
	}
}
