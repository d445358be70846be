package constructor

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/magabrotheeeer/giftoutfit/internal/lib/giftcdn"
	"github.com/magabrotheeeer/giftoutfit/internal/lib/sl"
	"github.com/magabrotheeeer/giftoutfit/internal/metrics"
	"github.com/magabrotheeeer/giftoutfit/internal/models"
)

var (
	// ErrIncomplete возвращается, если для операции выбраны не все атрибуты.
	ErrIncomplete = errors.New("selection is incomplete")
	// ErrInvalidPath возвращается, если сочетание атрибутов не существует в коллекции.
	ErrInvalidPath = errors.New("attribute combination does not exist")
)

// Backend описывает эндпоинты конструктора на бэкенде.
type Backend interface {
	ConstructorCollections(ctx context.Context) ([]string, error)
	ConstructorModels(ctx context.Context, collection string) ([]string, error)
	ConstructorBackdrops(ctx context.Context, collection, model string) ([]string, error)
	ConstructorSymbols(ctx context.Context, collection, model, backdrop string) ([]string, error)
	ConstructorAllBackdrops(ctx context.Context) ([]string, error)
	ConstructorGift(ctx context.Context, collection, model, backdrop, symbol string) (*models.ConstructorGift, error)
}

// Catalog — источник метаданных подарков.
type Catalog interface {
	Gifts(ctx context.Context) ([]string, error)
	Backdrops(ctx context.Context) ([]models.Backdrop, error)
	Collection(ctx context.Context, name string) (*models.GiftCollection, error)
}

// Cache описывает методы для кэширования данных.
type Cache interface {
	Get(ctx context.Context, key string, result any) (bool, error)
	Set(ctx context.Context, key string, value any, expiration time.Duration) error
	InvalidatePrefix(ctx context.Context, prefix string) error
}

// Service отдаёт варианты выбора и собирает итоговый подарок.
type Service struct {
	backend Backend
	catalog Catalog
	cache   Cache
	ttl     time.Duration
	urls    *giftcdn.Builder
	log     *slog.Logger
	trees   *expirable.LRU[string, *Tree]
}

// treeCacheSize — сколько деревьев коллекций держим в памяти.
const treeCacheSize = 64

type imageProxyKey struct{}

// WithImageProxy сохраняет в контексте настройку пользователя «загружать
// изображения через прокси».
func WithImageProxy(ctx context.Context, enabled bool) context.Context {
	return context.WithValue(ctx, imageProxyKey{}, enabled)
}

// ImageProxyFrom возвращает настройку проксирования, если она задана.
func ImageProxyFrom(ctx context.Context) (bool, bool) {
	v, ok := ctx.Value(imageProxyKey{}).(bool)
	return v, ok
}

// New создает сервис конструктора.
func New(backend Backend, catalog Catalog, cache Cache, ttl time.Duration, urls *giftcdn.Builder, log *slog.Logger) *Service {
	return &Service{
		backend: backend,
		catalog: catalog,
		cache:   cache,
		ttl:     ttl,
		urls:    urls,
		log:     log,
		trees:   expirable.NewLRU[string, *Tree](treeCacheSize, nil, ttl),
	}
}

func key(parts ...string) string {
	return "constructor:" + strings.Join(parts, ":")
}

// cached возвращает значение из кэша или загружает его через fetch.
func cached[T any](ctx context.Context, s *Service, op, k string, fetch func(context.Context) (T, error)) (T, error) {
	var v T
	found, err := s.cache.Get(ctx, k, &v)
	if err != nil {
		s.log.Warn("failed to read cache", sl.Op(op), slog.String("key", k), sl.Err(err))
	}
	if found {
		return v, nil
	}

	v, err = fetch(ctx)
	if err != nil {
		metrics.RecordBackendError(op)
		var zero T
		return zero, fmt.Errorf("%s: %w", op, err)
	}
	if err := s.cache.Set(ctx, k, v, s.ttl); err != nil {
		s.log.Warn("failed to cache", sl.Op(op), slog.String("key", k), sl.Err(err))
	}
	return v, nil
}

// Collections возвращает коллекции, доступные в конструкторе.
func (s *Service) Collections(ctx context.Context) ([]string, error) {
	return cached(ctx, s, "constructor.Collections", key("collections"), s.backend.ConstructorCollections)
}

// Models возвращает модели коллекции.
func (s *Service) Models(ctx context.Context, collection string) ([]string, error) {
	return cached(ctx, s, "constructor.Models", key("models", collection),
		func(ctx context.Context) ([]string, error) {
			return s.backend.ConstructorModels(ctx, collection)
		})
}

// Backdrops возвращает фоны, существующие для модели.
func (s *Service) Backdrops(ctx context.Context, collection, model string) ([]string, error) {
	return cached(ctx, s, "constructor.Backdrops", key("backdrops", collection, model),
		func(ctx context.Context) ([]string, error) {
			return s.backend.ConstructorBackdrops(ctx, collection, model)
		})
}

// Symbols возвращает символы, существующие для модели и фона.
func (s *Service) Symbols(ctx context.Context, collection, model, backdrop string) ([]string, error) {
	return cached(ctx, s, "constructor.Symbols", key("symbols", collection, model, backdrop),
		func(ctx context.Context) ([]string, error) {
			return s.backend.ConstructorSymbols(ctx, collection, model, backdrop)
		})
}

// AllBackdrops возвращает все фоны для свободного режима.
func (s *Service) AllBackdrops(ctx context.Context) ([]string, error) {
	return cached(ctx, s, "constructor.AllBackdrops", key("all-backdrops"), s.backend.ConstructorAllBackdrops)
}

// Gift запрашивает конкретный подарок по полному набору атрибутов.
// Всегда идёт на бэкенд и обновляет закэшированные результаты для той же
// тройки модель/фон/коллекция.
func (s *Service) Gift(ctx context.Context, sel Selection) (*models.ConstructorGift, error) {
	const op = "constructor.Gift"

	g, err := s.backend.ConstructorGift(ctx, sel.Collection, sel.Model, sel.Backdrop, sel.Symbol)
	if err != nil {
		metrics.RecordBackendError(op)
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	family := key("gift", sel.Collection, sel.Model, sel.Backdrop) + ":"
	if err := s.cache.InvalidatePrefix(ctx, family); err != nil {
		s.log.Warn("failed to invalidate gift family", sl.Op(op), sl.Err(err))
	}
	if err := s.cache.Set(ctx, family+sel.Symbol, g, s.ttl); err != nil {
		s.log.Warn("failed to cache gift", sl.Op(op), sl.Err(err))
	}
	return g, nil
}

// Tree возвращает дерево атрибутов коллекции. Построенное дерево живёт
// в памяти столько же, сколько метаданные каталога.
func (s *Service) Tree(ctx context.Context, collection string) (*Tree, error) {
	if t, ok := s.trees.Get(collection); ok {
		return t, nil
	}
	col, err := s.catalog.Collection(ctx, collection)
	if err != nil {
		return nil, err
	}
	t := BuildTree(col.Gifts)
	s.trees.Add(collection, t)
	return t, nil
}

// Options возвращает варианты для поля с учётом текущего выбора и режима.
func (s *Service) Options(ctx context.Context, field Field, mode Mode, sel Selection) ([]DrawerItem, error) {
	const op = "constructor.Options"
	log := s.log.With(sl.Op(op), slog.String("field", string(field)), slog.String("mode", string(mode)))

	var src Sources
	var err error

	switch field {
	case FieldGifts:
		if mode == ModeFreeform {
			src.Gifts, err = s.catalog.Gifts(ctx)
		} else {
			src.Gifts, err = s.Collections(ctx)
		}

	case FieldModel:
		if sel.Collection == "" {
			break
		}
		if mode == ModeFreeform {
			var t *Tree
			if t, err = s.Tree(ctx, sel.Collection); err == nil {
				src.Models = t.Models()
			}
		} else {
			src.Models, err = s.Models(ctx, sel.Collection)
		}

	case FieldBackground:
		if sel.Collection == "" {
			break
		}
		if mode == ModeFreeform {
			src.Backdrops, err = s.AllBackdrops(ctx)
		} else if sel.Model != "" {
			src.Backdrops, err = s.Backdrops(ctx, sel.Collection, sel.Model)
		}
		if err == nil && len(src.Backdrops) > 0 {
			src.Palettes = s.palettes(ctx, log)
		}

	case FieldPattern:
		if sel.Collection == "" {
			break
		}
		if mode == ModeFreeform {
			var t *Tree
			if t, err = s.Tree(ctx, sel.Collection); err == nil {
				src.Symbols = t.AllSymbols()
			}
		} else if sel.Model != "" && sel.Backdrop != "" {
			src.Symbols, err = s.constructorSymbols(ctx, log, sel)
		}

	default:
		return nil, fmt.Errorf("%s: %w: %q", op, ErrUnknownField, field)
	}

	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	urls := s.urls
	if enabled, ok := ImageProxyFrom(ctx); ok {
		urls = urls.WithProxy(enabled)
	}
	return BuildOptions(field, mode, sel, src, urls), nil
}

// constructorSymbols дополняет символы конструктора номерами подарков из дерева.
func (s *Service) constructorSymbols(ctx context.Context, log *slog.Logger, sel Selection) ([]Symbol, error) {
	names, err := s.Symbols(ctx, sel.Collection, sel.Model, sel.Backdrop)
	if err != nil {
		return nil, err
	}

	t, err := s.Tree(ctx, sel.Collection)
	if err != nil {
		log.Warn("failed to load collection tree", sl.Err(err))
		t = BuildTree(nil)
	}

	out := make([]Symbol, 0, len(names))
	for _, name := range names {
		if sym, ok := t.Lookup(sel.Model, sel.Backdrop, name); ok {
			out = append(out, sym)
			continue
		}
		out = append(out, Symbol{Symbol: name})
	}
	return out, nil
}

// palettes возвращает палитры каталога, ошибка не мешает показать список.
func (s *Service) palettes(ctx context.Context, log *slog.Logger) []models.Backdrop {
	p, err := s.catalog.Backdrops(ctx)
	if err != nil {
		log.Warn("failed to load backdrop palettes", sl.Err(err))
		return nil
	}
	return p
}

// Resolve превращает выбор в подарок для ячейки. В свободном режиме
// допускается любое сочетание атрибутов, в режиме конструктора оно должно
// существовать в коллекции.
func (s *Service) Resolve(ctx context.Context, mode Mode, sel Selection) (*models.Gift, error) {
	const op = "constructor.Resolve"
	log := s.log.With(sl.Op(op), slog.String("mode", string(mode)))

	if sel.Collection == "" {
		return nil, fmt.Errorf("%s: %w", op, ErrIncomplete)
	}

	if mode == ModeFreeform {
		gift := &models.Gift{
			ID:      sel.GiftNumber,
			Name:    sel.Collection,
			Model:   sel.Model,
			Pattern: sel.Symbol,
		}
		if sel.Backdrop != "" {
			gift.Background = s.backdrop(ctx, log, sel.Backdrop)
		}
		return gift, nil
	}

	if sel.Model == "" || sel.Backdrop == "" || sel.Symbol == "" {
		return nil, fmt.Errorf("%s: %w", op, ErrIncomplete)
	}
	t, err := s.Tree(ctx, sel.Collection)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if _, ok := t.Lookup(sel.Model, sel.Backdrop, sel.Symbol); !ok {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidPath)
	}

	cg, err := s.Gift(ctx, sel)
	if err != nil {
		return nil, err
	}
	return &models.Gift{
		ID:         cg.GiftNumber,
		Name:       sel.Collection,
		Model:      cg.Model,
		Background: s.backdrop(ctx, log, cg.Backdrop),
		Pattern:    cg.Symbol,
	}, nil
}

// backdrop возвращает палитру фона или только его имя, если палитры нет.
func (s *Service) backdrop(ctx context.Context, log *slog.Logger, name string) *models.Backdrop {
	if bg := findPalette(s.palettes(ctx, log), name); bg != nil {
		return bg
	}
	return &models.Backdrop{Name: name}
}
