package gridlist

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
	"github.com/magabrotheeeer/giftoutfit/internal/models"
)

type ServiceMock struct {
	mock.Mock
}

func (m *ServiceMock) Grids(ctx context.Context, userID int64) ([]models.Grid, error) {
	args := m.Called(ctx, userID)
	grids, _ := args.Get(0).([]models.Grid)
	return grids, args.Error(1)
}

func TestGridListHandler(t *testing.T) {
	tests := []struct {
		name           string
		userID         string
		setupMock      func(*ServiceMock)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:   "альбомы пользователя",
			userID: "42",
			setupMock: func(m *ServiceMock) {
				m.On("Grids", mock.Anything, int64(42)).Return([]models.Grid{{ID: 1, Name: "main"}}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"grids":[{"id":1,"name":"main"`,
		},
		{
			name:   "пользователь не найден",
			userID: "42",
			setupMock: func(m *ServiceMock) {
				m.On("Grids", mock.Anything, int64(42)).Return(nil, &backend.StatusError{Code: http.StatusNotFound})
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `"error":"not found"`,
		},
		{
			name:   "нет данных запуска",
			userID: "42",
			setupMock: func(m *ServiceMock) {
				m.On("Grids", mock.Anything, int64(42)).Return(nil, backend.ErrUnauthorized)
			},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `"error":"unauthorized"`,
		},
		{
			name:           "некорректный id",
			userID:         "me",
			setupMock:      func(_ *ServiceMock) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"error":"failed to decode user id from url"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(ServiceMock)
			tt.setupMock(svc)
			handler := New(slog.New(slog.NewTextHandler(io.Discard, nil)), svc)

			req := httptest.NewRequest(http.MethodGet, "/users/"+tt.userID+"/grids", nil)
			ctx := context.WithValue(req.Context(), middleware.RequestIDKey, "req-id")
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
