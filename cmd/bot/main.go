package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/amsilf/hsk-bot/internal/config"
	"github.com/amsilf/hsk-bot/internal/delivery/telegram"
	"github.com/amsilf/hsk-bot/internal/infra/postgres"
	"github.com/amsilf/hsk-bot/internal/logger"
	"github.com/amsilf/hsk-bot/internal/matcher"
	"github.com/amsilf/hsk-bot/internal/repository"
	"github.com/amsilf/hsk-bot/internal/service"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	zapLogger, err := logger.New(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = zapLogger.Sync() }()

	bot, err := tgbotapi.NewBotAPI(cfg.TelegramAPIToken)
	if err != nil {
		zapLogger.Fatal("failed to create bot api", zap.Error(err))
	}

	commands := []tgbotapi.BotCommand{
		{
			Command:     "start",
			Description: "Begin a practice session",
		},
		{
			Command:     "score",
			Description: "Show session statistics",
		},
		{
			Command:     "stop",
			Description: "End the session",
		},
		{
			Command:     "help",
			Description: "Show help",
		},
	}

	if _, err = bot.Request(tgbotapi.NewSetMyCommands(commands...)); err != nil {
		zapLogger.Warn("failed to set bot commands", zap.Error(err))
	}

	zapLogger.Info("authorized on telegram", zap.String("account", bot.Self.UserName))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := postgres.NewPool(ctx, cfg.DB.URL, postgres.PoolConfig{
		MaxConns:        int32(cfg.DB.MaxConnections),
		MaxConnLifetime: cfg.DB.MaxConnLifetime,
	})
	if err != nil {
		zapLogger.Fatal("failed to create postgres pool", zap.Error(err))
	}
	defer pool.Close()

	vocabRepo := repository.NewVocabularyRepository(cfg.VocabularyPath, zapLogger)
	userRepo := repository.NewUserRepository(pool)

	gameService := service.NewGameService(vocabRepo, matcher.IsCorrect)
	userService := service.NewUserService(userRepo)

	handler := telegram.NewHandler(bot, zapLogger, gameService, userService)
	if err := handler.Run(ctx); err != nil && ctx.Err() == nil {
		zapLogger.Fatal("telegram handler failed", zap.Error(err))
	}

	zapLogger.Info("shutdown signal received")
}
