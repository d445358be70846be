// Package profile собирает профиль пользователя для конкретного зрителя,
// учитывает просмотры и строит ссылки для шеринга.
package profile

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"
	"unicode/utf8"

	"github.com/magabrotheeeer/giftoutfit/internal/lib/deeplink"
	"github.com/magabrotheeeer/giftoutfit/internal/lib/sl"
	"github.com/magabrotheeeer/giftoutfit/internal/metrics"
	"github.com/magabrotheeeer/giftoutfit/internal/models"
)

// MaxBioLength — максимальная длина описания профиля в символах.
const MaxBioLength = 140

// ErrBioTooLong возвращается, если описание длиннее MaxBioLength.
var ErrBioTooLong = errors.New("bio is too long")

// Backend описывает методы бэкенда для пользователей.
type Backend interface {
	GetUser(ctx context.Context, userID int64) (*models.TelegramUser, error)
	UpdateBio(ctx context.Context, bio string) error
	TrackProfileView(ctx context.Context, userID int64) error
}

// Subscriptions сообщает, есть ли у пользователя активная подписка.
type Subscriptions interface {
	HasActive(ctx context.Context, userID int64) (bool, error)
}

// Cache описывает методы для кэширования данных.
type Cache interface {
	Get(ctx context.Context, key string, result any) (bool, error)
	Set(ctx context.Context, key string, value any, expiration time.Duration) error
	Invalidate(ctx context.Context, key string) error
}

// Service управляет профилями.
type Service struct {
	backend     Backend
	subs        Subscriptions
	cache       Cache
	ttl         time.Duration
	botUsername string
	log         *slog.Logger
}

// New создает сервис профилей.
func New(backend Backend, subs Subscriptions, cache Cache, ttl time.Duration, botUsername string, log *slog.Logger) *Service {
	return &Service{
		backend:     backend,
		subs:        subs,
		cache:       cache,
		ttl:         ttl,
		botUsername: botUsername,
		log:         log,
	}
}

func cacheKey(userID int64) string {
	return "user:" + strconv.FormatInt(userID, 10)
}

// User возвращает данные пользователя как есть.
func (s *Service) User(ctx context.Context, userID int64) (*models.TelegramUser, error) {
	const op = "profile.User"

	var u models.TelegramUser
	found, err := s.cache.Get(ctx, cacheKey(userID), &u)
	if err != nil {
		s.log.Warn("failed to read user from cache", sl.Op(op), sl.Err(err))
	}
	if found {
		return &u, nil
	}

	user, err := s.backend.GetUser(ctx, userID)
	if err != nil {
		metrics.RecordBackendError(op)
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := s.cache.Set(ctx, cacheKey(userID), user, s.ttl); err != nil {
		s.log.Warn("failed to cache user", sl.Op(op), sl.Err(err))
	}
	return user, nil
}

// Get возвращает профиль userID глазами viewerID. Счётчики просмотров
// видны только зрителю с активной подпиской. Просмотр не учитывается:
// клиент отправляет его отдельно через TrackView один раз за открытие.
func (s *Service) Get(ctx context.Context, viewerID, userID int64) (*models.Profile, error) {
	const op = "profile.Get"
	log := s.log.With(sl.Op(op), sl.UserID(viewerID), slog.Int64("profile_id", userID))

	user, err := s.User(ctx, userID)
	if err != nil {
		return nil, err
	}

	p := &models.Profile{
		User:      *user,
		IsOwn:     viewerID == userID,
		ShareLink: deeplink.ProfileShareLink(s.botUsername, userID),
	}

	active, err := s.subs.HasActive(ctx, viewerID)
	if err != nil {
		log.Warn("failed to check subscription, hiding view counters", sl.Err(err))
	}
	if active {
		views, unique := user.ViewCount, user.UniqueViewCount
		p.ViewsVisible = true
		p.ViewCount = &views
		p.UniqueViewCount = &unique
	}
	p.User.ViewCount, p.User.UniqueViewCount = 0, 0
	return p, nil
}

// TrackView учитывает просмотр чужого профиля и сообщает, был ли он учтён.
// Свой профиль не учитывается, ошибки бэкенда только логируются.
func (s *Service) TrackView(ctx context.Context, viewerID, userID int64) bool {
	const op = "profile.TrackView"
	if viewerID == userID {
		return false
	}
	if err := s.backend.TrackProfileView(ctx, userID); err != nil {
		s.log.Warn("failed to track profile view", sl.Op(op), sl.UserID(viewerID),
			slog.Int64("profile_id", userID), sl.Err(err))
		return false
	}
	return true
}

// UpdateBio обновляет описание профиля текущего пользователя.
func (s *Service) UpdateBio(ctx context.Context, userID int64, bio string) error {
	const op = "profile.UpdateBio"

	if utf8.RuneCountInString(bio) > MaxBioLength {
		return fmt.Errorf("%s: %w", op, ErrBioTooLong)
	}
	if err := s.backend.UpdateBio(ctx, bio); err != nil {
		metrics.RecordBackendError(op)
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := s.cache.Invalidate(ctx, cacheKey(userID)); err != nil {
		s.log.Warn("failed to invalidate user", sl.Op(op), sl.Err(err))
	}
	return nil
}

// ShareLink возвращает ссылку на профиль пользователя.
func (s *Service) ShareLink(userID int64) string {
	return deeplink.ProfileShareLink(s.botUsername, userID)
}

// Target — результат разбора параметра запуска.
type Target struct {
	UserID int64 `json:"user_id"`
	// IsOwn — ссылка ведёт на профиль самого зрителя.
	IsOwn bool `json:"is_own"`
}

// ResolveStartParam разбирает start_param. Второе значение false,
// если параметр не ссылается на профиль.
func (s *Service) ResolveStartParam(viewerID int64, startParam string) (Target, bool) {
	id, ok := deeplink.ProfileUserID(startParam)
	if !ok {
		return Target{}, false
	}
	return Target{UserID: id, IsOwn: id == viewerID}, true
}
