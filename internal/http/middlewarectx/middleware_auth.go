// Package middlewarectx содержит HTTP middleware мини-приложения.
//
// TelegramAuth проверяет данные запуска Telegram в заголовке
// "Authorization: tma <initData>" и кладёт в контекст пользователя и сырые
// данные запуска, которыми затем подписываются запросы к бэкенду.
package middlewarectx

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/middleware"

	"github.com/magabrotheeeer/giftoutfit/internal/backend"
	"github.com/magabrotheeeer/giftoutfit/internal/http/response"
	"github.com/magabrotheeeer/giftoutfit/internal/lib/initdata"
	"github.com/magabrotheeeer/giftoutfit/internal/lib/sl"
)

// Key тип для ключей контекста HTTP-запроса.
type Key string

const (
	// User — ключ для пользователя Telegram в контексте.
	User Key = "tg_user"
	// StartParam — ключ для start_param из данных запуска.
	StartParam Key = "start_param"
)

const authScheme = "tma "

// TelegramAuth возвращает middleware проверки данных запуска.
// При ошибке отвечает 401 Unauthorized.
func TelegramAuth(botToken string, maxAge time.Duration, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const op = "middlewarectx.TelegramAuth"

			log := log.With(
				slog.String("op", op),
				slog.String("request_id", middleware.GetReqID(r.Context())),
			)

			authHeader := r.Header.Get("Authorization")
			if !strings.HasPrefix(authHeader, authScheme) {
				log.Info("missing or invalid authorization header")
				response.WriteError(w, r, http.StatusUnauthorized, "missing or invalid authorization header")
				return
			}
			raw := strings.TrimPrefix(authHeader, authScheme)

			if err := initdata.Validate(raw, botToken, maxAge); err != nil {
				log.Info("init data rejected", sl.Err(err))
				response.WriteError(w, r, http.StatusUnauthorized, "invalid or expired init data")
				return
			}
			data, err := initdata.Parse(raw)
			if err != nil {
				log.Info("failed to parse init data", sl.Err(err))
				response.WriteError(w, r, http.StatusUnauthorized, "invalid init data")
				return
			}

			ctx := backend.WithInitData(r.Context(), raw)
			ctx = context.WithValue(ctx, User, data.User)
			ctx = context.WithValue(ctx, StartParam, data.StartParam)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserFrom достаёт пользователя Telegram из контекста.
func UserFrom(ctx context.Context) (initdata.User, bool) {
	u, ok := ctx.Value(User).(initdata.User)
	return u, ok && u.ID != 0
}

// UserID достаёт ID пользователя Telegram из контекста.
func UserID(ctx context.Context) (int64, bool) {
	u, ok := UserFrom(ctx)
	return u.ID, ok
}

// WithUser кладёт пользователя в контекст. Используется в тестах обработчиков.
func WithUser(ctx context.Context, u initdata.User) context.Context {
	return context.WithValue(ctx, User, u)
}
