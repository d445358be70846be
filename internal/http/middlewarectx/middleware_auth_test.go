package middlewarectx_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/magabrotheeeer/giftoutfit/internal/backend"
	"github.com/magabrotheeeer/giftoutfit/internal/http/middlewarectx"
	"github.com/magabrotheeeer/giftoutfit/internal/lib/initdata"
)

const botToken = "123456:TEST-token"

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func signed(authDate time.Time, token string) string {
	values := url.Values{}
	values.Set("user", `{"id":42,"first_name":"Anna"}`)
	values.Set("start_param", "profile_7")
	return initdata.Sign(values, token, authDate)
}

func TestTelegramAuth(t *testing.T) {
	valid := signed(time.Now(), botToken)

	tests := []struct {
		name           string
		authHeader     string
		wantStatusCode int
		wantCalled     bool
	}{
		{
			name:           "missing Authorization header",
			wantStatusCode: http.StatusUnauthorized,
		},
		{
			name:           "wrong scheme",
			authHeader:     "Bearer " + valid,
			wantStatusCode: http.StatusUnauthorized,
		},
		{
			name:           "signed by another bot",
			authHeader:     "tma " + signed(time.Now(), "999:other"),
			wantStatusCode: http.StatusUnauthorized,
		},
		{
			name:           "expired",
			authHeader:     "tma " + signed(time.Now().Add(-48*time.Hour), botToken),
			wantStatusCode: http.StatusUnauthorized,
		},
		{
			name:           "valid init data",
			authHeader:     "tma " + valid,
			wantStatusCode: http.StatusOK,
			wantCalled:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handlerCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				handlerCalled = true
				id, ok := middlewarectx.UserID(r.Context())
				assert.True(t, ok)
				assert.Equal(t, int64(42), id)
				assert.Equal(t, "profile_7", r.Context().Value(middlewarectx.StartParam))

				raw, ok := backend.InitData(r.Context())
				assert.True(t, ok)
				assert.Equal(t, valid, raw)
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/api/v1/me/share", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rec := httptest.NewRecorder()

			middlewarectx.TelegramAuth(botToken, 24*time.Hour, newNoopLogger())(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatusCode, rec.Code)
			assert.Equal(t, tt.wantCalled, handlerCalled)
		})
	}
}

func TestUserFrom_Missing(t *testing.T) {
	_, ok := middlewarectx.UserFrom(context.Background())
	assert.False(t, ok)
}
