package read

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/giftoutfit/internal/backend"
	"github.com/magabrotheeeer/giftoutfit/internal/http/middlewarectx"
	"github.com/magabrotheeeer/giftoutfit/internal/lib/initdata"
	"github.com/magabrotheeeer/giftoutfit/internal/models"
)

type ServiceMock struct {
	mock.Mock
}

func (m *ServiceMock) Get(ctx context.Context, viewerID, userID int64) (*models.Profile, error) {
	args := m.Called(ctx, viewerID, userID)
	p, _ := args.Get(0).(*models.Profile)
	return p, args.Error(1)
}

func TestReadHandler(t *testing.T) {
	views := int64(12)

	tests := []struct {
		name           string
		userID         string
		setupMock      func(*ServiceMock)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:   "профиль со счётчиками",
			userID: "100",
			setupMock: func(m *ServiceMock) {
				m.On("Get", mock.Anything, int64(42), int64(100)).Return(&models.Profile{
					User:         models.TelegramUser{ID: 100, FirstName: "Bob"},
					ViewsVisible: true,
					ViewCount:    &views,
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"view_count":12`,
		},
		{
			name:   "пользователь не найден",
			userID: "100",
			setupMock: func(m *ServiceMock) {
				m.On("Get", mock.Anything, int64(42), int64(100)).
					Return(nil, &backend.StatusError{Method: http.MethodGet, Path: "/users/100", Code: http.StatusNotFound})
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "некорректный id",
			userID:         "bob",
			setupMock:      func(_ *ServiceMock) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(ServiceMock)
			tt.setupMock(svc)
			handler := New(slog.New(slog.NewTextHandler(io.Discard, nil)), svc)

			req := httptest.NewRequest(http.MethodGet, "/users/"+tt.userID, nil)
			ctx := context.WithValue(req.Context(), middleware.RequestIDKey, "req-id")
			ctx = middlewarectx.WithUser(ctx, initdata.User{ID: 42})
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("userID", tt.userID)
			ctx = context.WithValue(ctx, chi.RouteCtxKey, rctx)

			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req.WithContext(ctx))

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
			svc.AssertExpectations(t)
		})
	}
}
