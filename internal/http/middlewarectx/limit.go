package middlewarectx

import (
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/middleware"
	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/time/rate"

	"github.com/magabrotheeeer/giftoutfit/internal/http/response"
)

// limiterEntries ограничивает число одновременно отслеживаемых клиентов.
const limiterEntries = 10000

// RateLimitMiddleware ограничивает частоту запросов отдельно для каждого
// пользователя Telegram, а до аутентификации по IP.
func RateLimitMiddleware(log *slog.Logger, rps float64, burst int) func(http.Handler) http.Handler {
	limiters, _ := lru.New[string, *rate.Limiter](limiterEntries)

	get := func(key string) *rate.Limiter {
		if l, ok := limiters.Get(key); ok {
			return l
		}
		l := rate.NewLimiter(rate.Limit(rps), burst)
		if prev, ok, _ := limiters.PeekOrAdd(key, l); ok {
			return prev
		}
		return l
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := clientKey(r)
			if !get(key).Allow() {
				log.Warn("too many requests",
					slog.String("client", key),
					slog.String("request_id", middleware.GetReqID(r.Context())),
				)
				response.WriteError(w, r, http.StatusTooManyRequests, "too many requests")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func clientKey(r *http.Request) string {
	if id, ok := UserID(r.Context()); ok {
		return "user:" + strconv.FormatInt(id, 10)
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	return "ip:" + host
}
