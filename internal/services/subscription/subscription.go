// Package subscription отвечает за подписку текущего пользователя,
// тарифные планы и оплату через счета Telegram Stars.
package subscription

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/magabrotheeeer/giftoutfit/internal/backend"
	"github.com/magabrotheeeer/giftoutfit/internal/lib/sl"
	"github.com/magabrotheeeer/giftoutfit/internal/metrics"
	"github.com/magabrotheeeer/giftoutfit/internal/models"
)

// DefaultPlanID используется, если бэкенд не вернул ни одного плана.
const DefaultPlanID int64 = 1

// InvoiceStatus — статус закрытия счёта, который Telegram передаёт мини-приложению.
type InvoiceStatus string

// Статусы счёта.
const (
	InvoicePaid      InvoiceStatus = "paid"
	InvoiceCancelled InvoiceStatus = "cancelled"
	InvoiceFailed    InvoiceStatus = "failed"
	InvoicePending   InvoiceStatus = "pending"
)

// ErrUnknownStatus возвращается для неизвестного статуса счёта.
var ErrUnknownStatus = errors.New("unknown invoice status")

// Backend описывает методы бэкенда для подписок и оплат.
type Backend interface {
	GetMySubscription(ctx context.Context) (*models.Subscription, error)
	ListPlans(ctx context.Context) ([]models.SubscriptionPlan, error)
	CreateInvoice(ctx context.Context, planID int64) (*models.Invoice, error)
}

// Cache описывает методы для кэширования данных.
type Cache interface {
	// Get пытается получить значение из кеша по ключу.
	Get(ctx context.Context, key string, result any) (bool, error)
	// Set сохраняет значение в кеш с временем жизни.
	Set(ctx context.Context, key string, value any, expiration time.Duration) error
	// Invalidate удаляет значение из кеша по ключу.
	Invalidate(ctx context.Context, key string) error
}

// Service реализует работу с подпиской, включая кеширование.
type Service struct {
	backend Backend
	cache   Cache
	ttl     time.Duration
	log     *slog.Logger
	now     func() time.Time
}

// New создает сервис подписок.
func New(backend Backend, cache Cache, ttl time.Duration, log *slog.Logger) *Service {
	return &Service{
		backend: backend,
		cache:   cache,
		ttl:     ttl,
		log:     log,
		now:     time.Now,
	}
}

func cacheKey(userID int64) string {
	return fmt.Sprintf("subscription:%d", userID)
}

// cachedSubscription позволяет закэшировать и отсутствие подписки.
type cachedSubscription struct {
	Subscription *models.Subscription `json:"subscription"`
}

// My возвращает подписку текущего пользователя или nil, если её нет.
func (s *Service) My(ctx context.Context, userID int64) (*models.Subscription, error) {
	const op = "subscription.My"

	var c cachedSubscription
	found, err := s.cache.Get(ctx, cacheKey(userID), &c)
	if err != nil {
		s.log.Warn("failed to read subscription from cache", sl.Op(op), sl.Err(err))
	}
	if found {
		return c.Subscription, nil
	}

	sub, err := s.backend.GetMySubscription(ctx)
	if err != nil && !errors.Is(err, backend.ErrNotFound) {
		metrics.RecordBackendError(op)
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := s.cache.Set(ctx, cacheKey(userID), cachedSubscription{Subscription: sub}, s.ttl); err != nil {
		s.log.Warn("failed to cache subscription", sl.Op(op), sl.Err(err))
	}
	return sub, nil
}

// IsActive сообщает, активна ли подписка сейчас.
func (s *Service) IsActive(sub *models.Subscription) bool {
	return sub.Active(s.now())
}

// HasActive сообщает, есть ли у текущего пользователя активная подписка.
func (s *Service) HasActive(ctx context.Context, userID int64) (bool, error) {
	sub, err := s.My(ctx, userID)
	if err != nil {
		return false, err
	}
	return s.IsActive(sub), nil
}

// Plans возвращает тарифные планы.
func (s *Service) Plans(ctx context.Context) ([]models.SubscriptionPlan, error) {
	const op = "subscription.Plans"

	var plans []models.SubscriptionPlan
	found, err := s.cache.Get(ctx, "subscription:plans", &plans)
	if err != nil {
		s.log.Warn("failed to read plans from cache", sl.Op(op), sl.Err(err))
	}
	if found {
		return plans, nil
	}

	plans, err = s.backend.ListPlans(ctx)
	if err != nil {
		metrics.RecordBackendError(op)
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := s.cache.Set(ctx, "subscription:plans", plans, s.ttl); err != nil {
		s.log.Warn("failed to cache plans", sl.Op(op), sl.Err(err))
	}
	return plans, nil
}

// CreateInvoice создает счёт на первый план из списка.
// Если планов нет или их не удалось получить, используется DefaultPlanID.
func (s *Service) CreateInvoice(ctx context.Context) (*models.Invoice, error) {
	const op = "subscription.CreateInvoice"

	planID := DefaultPlanID
	plans, err := s.Plans(ctx)
	if err != nil {
		s.log.Warn("failed to load plans, using default", sl.Op(op), sl.Err(err))
	} else if len(plans) > 0 {
		planID = plans[0].ID
	}

	inv, err := s.backend.CreateInvoice(ctx, planID)
	if err != nil {
		metrics.RecordBackendError(op)
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	s.log.Info("invoice created", sl.Op(op), slog.Int64("plan_id", planID))
	return inv, nil
}

// InvoiceClosed обрабатывает закрытие счёта. После оплаты закэшированная
// подписка сбрасывается, чтобы следующее чтение получило новый период.
func (s *Service) InvoiceClosed(ctx context.Context, userID int64, status InvoiceStatus) (bool, error) {
	const op = "subscription.InvoiceClosed"

	switch status {
	case InvoicePaid:
	case InvoiceCancelled, InvoiceFailed, InvoicePending:
		return false, nil
	default:
		return false, fmt.Errorf("%s: %w: %q", op, ErrUnknownStatus, status)
	}

	if err := s.cache.Invalidate(ctx, cacheKey(userID)); err != nil {
		s.log.Warn("failed to invalidate subscription", sl.Op(op), sl.UserID(userID), sl.Err(err))
	}
	s.log.Info("invoice paid", sl.Op(op), sl.UserID(userID))
	return true, nil
}
