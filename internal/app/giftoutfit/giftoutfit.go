// Package giftoutfit собирает HTTP-шлюз мини-приложения: кэш, клиент
// бэкенда, сервисы и маршруты.
package giftoutfit

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi"

	"github.com/magabrotheeeer/giftoutfit/internal/backend"
	"github.com/magabrotheeeer/giftoutfit/internal/cache"
	"github.com/magabrotheeeer/giftoutfit/internal/config"
	"github.com/magabrotheeeer/giftoutfit/internal/imageproxy"
	"github.com/magabrotheeeer/giftoutfit/internal/lib/giftcdn"
	"github.com/magabrotheeeer/giftoutfit/internal/lib/sl"
	"github.com/magabrotheeeer/giftoutfit/internal/services/album"
	"github.com/magabrotheeeer/giftoutfit/internal/services/catalog"
	"github.com/magabrotheeeer/giftoutfit/internal/services/constructor"
	"github.com/magabrotheeeer/giftoutfit/internal/services/profile"
	"github.com/magabrotheeeer/giftoutfit/internal/services/subscription"
)

// shutdownTimeout — время на завершение активных запросов при остановке.
const shutdownTimeout = 15 * time.Second

// Services — сервисы, которые обслуживают маршруты.
type Services struct {
	Album        *album.Service
	Catalog      *catalog.Service
	Constructor  *constructor.Service
	Profile      *profile.Service
	Subscription *subscription.Service
	ImageProxy   *imageproxy.Proxy
	URLs         *giftcdn.Builder
}

// App — HTTP-шлюз.
type App struct {
	server *http.Server
	logger *slog.Logger
	redis  *cache.Redis
}

// New создает приложение по конфигу.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	const op = "giftoutfit.New"

	var (
		store cache.Cache
		redis *cache.Redis
	)
	if cfg.AddressRedis != "" {
		var err error
		redis, err = cache.InitServer(ctx, cfg.RedisConnection)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		store = redis
		logger.Info("using redis cache", slog.String("address", cfg.AddressRedis))
	} else {
		store = cache.NewMemory()
		logger.Info("redis address is empty, using in-memory cache")
	}

	if cfg.BotToken == "" {
		logger.Warn("telegram bot token is empty, every authenticated request will be rejected")
	}

	svc, err := NewServices(cfg, store, logger)
	if err != nil {
		if redis != nil {
			_ = redis.Close()
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	router := chi.NewRouter()
	RegisterRoutes(router, logger, cfg, svc)

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server: srv,
		logger: logger,
		redis:  redis,
	}, nil
}

// NewServices создаёт сервисы поверх общего кэша и клиента бэкенда.
func NewServices(cfg *config.Config, store cache.Cache, logger *slog.Logger) (*Services, error) {
	client := backend.NewClient(cfg.BaseURL, cfg.Backend.Timeout)

	proxyURL := ""
	if cfg.PublicURL != "" {
		proxyURL = strings.TrimRight(cfg.PublicURL, "/") + "/proxy/image/"
	}
	urls := giftcdn.New(cfg.CDNBaseURL, proxyURL, proxyURL != "")

	images, err := imageproxy.New(logger, imageproxy.Options{
		AllowedHosts: cfg.AllowedHosts,
		CacheEntries: cfg.CacheEntries,
		MaxBodyBytes: cfg.MaxBodyBytes,
		Timeout:      cfg.ImageProxy.Timeout,
		MaxAge:       cfg.MaxAge,
	})
	if err != nil {
		return nil, err
	}

	subs := subscription.New(client, store, cfg.Profiles, logger)
	cat := catalog.New(client, store, cfg.Catalog, logger)

	return &Services{
		Album:        album.New(client, store, cfg.Grids, logger),
		Catalog:      cat,
		Constructor:  constructor.New(client, cat, store, cfg.Catalog, urls, logger),
		Profile:      profile.New(client, subs, store, cfg.Profiles, cfg.BotUsername, logger),
		Subscription: subs,
		ImageProxy:   images,
		URLs:         urls,
	}, nil
}

// Run запускает сервер и останавливает его при отмене ctx.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		a.close()
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		a.close()
		return err
	}
}

func (a *App) close() {
	if a.redis == nil {
		return
	}
	if err := a.redis.Close(); err != nil {
		a.logger.Error("failed to close redis", sl.Err(err))
	}
}
