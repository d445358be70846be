// Package main GiftOutfit API
//
// @title           GiftOutfit API
// @version         1.0
// @description     BFF мини-приложения Telegram для альбомов коллекционных подарков

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.apikey TelegramInitData
// @in header
// @name Authorization
// @description Type "tma" followed by a space and raw Telegram initData.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/magabrotheeeer/giftoutfit/internal/app/giftoutfit"
	"github.com/magabrotheeeer/giftoutfit/internal/config"
)

const envProduction = "production"

func main() {
	// В продакшене переменные задаются окружением, .env нужен только локально.
	if os.Getenv("ENV") != envProduction {
		_ = godotenv.Load()
	}

	cfg := config.MustLoad()
	logger := setupLogger(cfg.Env)

	logger.Info("starting giftoutfit", slog.String("env", cfg.Env))
	logger.Debug("config loaded", slog.String("config", cfg.String()))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app, err := giftoutfit.New(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to initialize app", slog.Any("err", err))
		os.Exit(1)
	}

	if err := app.Run(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("app stopped with error", slog.Any("err", err))
		os.Exit(1)
	}

	logger.Info("giftoutfit stopped gracefully")
}

func setupLogger(env string) *slog.Logger {
	level := slog.LevelDebug
	if env == envProduction {
		level = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
}
