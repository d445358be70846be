// Package catalog отдаёт метаданные подарков (коллекции, модели, фоны,
// символы) с долгим кэшированием: они почти не меняются.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/magabrotheeeer/giftoutfit/internal/backend"
	"github.com/magabrotheeeer/giftoutfit/internal/lib/sl"
	"github.com/magabrotheeeer/giftoutfit/internal/metrics"
	"github.com/magabrotheeeer/giftoutfit/internal/models"
)

// Backend описывает эндпоинты каталога.
type Backend interface {
	CatalogGifts(ctx context.Context) ([]string, error)
	CatalogModels(ctx context.Context, giftName string) ([]models.CatalogModel, error)
	CatalogBackdrops(ctx context.Context) ([]models.Backdrop, error)
	CatalogPatterns(ctx context.Context, giftName string) ([]string, error)
	GiftCollection(ctx context.Context, giftName string) (*models.GiftCollection, error)
}

// Cache описывает методы для кэширования данных.
type Cache interface {
	Get(ctx context.Context, key string, result any) (bool, error)
	Set(ctx context.Context, key string, value any, expiration time.Duration) error
}

// Service — кэширующий каталог.
type Service struct {
	backend Backend
	cache   Cache
	ttl     time.Duration
	log     *slog.Logger
}

// New создает сервис каталога.
func New(backend Backend, cache Cache, ttl time.Duration, log *slog.Logger) *Service {
	return &Service{backend: backend, cache: cache, ttl: ttl, log: log}
}

func (s *Service) cached(ctx context.Context, op, key string, result any, fetch func(context.Context) (any, error)) error {
	found, err := s.cache.Get(ctx, key, result)
	if err != nil {
		s.log.Warn("failed to read cache", sl.Op(op), slog.String("key", key), sl.Err(err))
	}
	if found {
		return nil
	}

	v, err := fetch(ctx)
	if err != nil {
		metrics.RecordBackendError(op)
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := s.cache.Set(ctx, key, v, s.ttl); err != nil {
		s.log.Warn("failed to cache", sl.Op(op), slog.String("key", key), sl.Err(err))
	}
	return assign(v, result)
}

// assign копирует свежезагруженное значение в result через JSON,
// так же как это делает кэш.
func assign(v, result any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, result)
}

// Gifts возвращает названия всех коллекций.
func (s *Service) Gifts(ctx context.Context) ([]string, error) {
	var out []string
	err := s.cached(ctx, "catalog.Gifts", "catalog:gifts", &out, func(ctx context.Context) (any, error) {
		return s.backend.CatalogGifts(ctx)
	})
	return out, err
}

// Models возвращает модели коллекции с редкостью.
func (s *Service) Models(ctx context.Context, giftName string) ([]models.CatalogModel, error) {
	var out []models.CatalogModel
	err := s.cached(ctx, "catalog.Models", "catalog:models:"+giftName, &out, func(ctx context.Context) (any, error) {
		return s.backend.CatalogModels(ctx, giftName)
	})
	return out, err
}

// Backdrops возвращает палитры всех фонов.
func (s *Service) Backdrops(ctx context.Context) ([]models.Backdrop, error) {
	var out []models.Backdrop
	err := s.cached(ctx, "catalog.Backdrops", "catalog:backdrops", &out, func(ctx context.Context) (any, error) {
		return s.backend.CatalogBackdrops(ctx)
	})
	return out, err
}

// Patterns возвращает символы коллекции.
func (s *Service) Patterns(ctx context.Context, giftName string) ([]string, error) {
	var out []string
	err := s.cached(ctx, "catalog.Patterns", "catalog:patterns:"+giftName, &out, func(ctx context.Context) (any, error) {
		return s.backend.CatalogPatterns(ctx, giftName)
	})
	return out, err
}

// Collection возвращает все подарки коллекции для построения дерева атрибутов.
func (s *Service) Collection(ctx context.Context, giftName string) (*models.GiftCollection, error) {
	var out models.GiftCollection
	key := "catalog:collection:" + backend.CollectionSlug(giftName)
	err := s.cached(ctx, "catalog.Collection", key, &out, func(ctx context.Context) (any, error) {
		return s.backend.GiftCollection(ctx, giftName)
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Prefetch параллельно прогревает список коллекций и палитры фонов.
func (s *Service) Prefetch(ctx context.Context) error {
	const op = "catalog.Prefetch"

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		_, err := s.Gifts(ctx)
		return err
	})
	g.Go(func() error {
		_, err := s.Backdrops(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
