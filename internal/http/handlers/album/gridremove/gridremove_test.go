package gridremove

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
)

type ServiceMock struct {
	mock.Mock
}

func (m *ServiceMock) Delete(ctx context.Context, ownerID, gridID int64) error {
	args := m.Called(ctx, ownerID, gridID)
	return args.Error(0)
}

func TestGridRemoveHandler(t *testing.T) {
	tests := []struct {
		name           string
		gridID         string
		withUser       bool
		setupMock      func(*ServiceMock)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:     "удаление своего альбома",
			gridID:   "7",
			withUser: true,
			setupMock: func(m *ServiceMock) {
				m.On("Delete", mock.Anything, int64(42), int64(7)).Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"deleted_id":7`,
		},
		{
			name:     "чужой альбом",
			gridID:   "7",
			withUser: true,
			setupMock: func(m *ServiceMock) {
				m.On("Delete", mock.Anything, int64(42), int64(7)).Return(&backend.StatusError{Code: http.StatusNotFound})
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `"error":"not found"`,
		},
		{
			name:     "сбой бэкенда",
			gridID:   "7",
			withUser: true,
			setupMock: func(m *ServiceMock) {
				m.On("Delete", mock.Anything, int64(42), int64(7)).Return(&backend.StatusError{Code: http.StatusInternalServerError})
			},
			expectedStatus: http.StatusBadGateway,
			expectedBody:   `"error":"request failed, please try again"`,
		},
		{
			name:           "некорректный id альбома",
			gridID:         "abc",
			withUser:       true,
			setupMock:      func(_ *ServiceMock) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"error":"failed to decode grid id from url"`,
		},
		{
			name:           "нет пользователя",
			gridID:         "7",
			setupMock:      func(_ *ServiceMock) {},
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(ServiceMock)
			tt.setupMock(svc)
			handler := New(slog.New(slog.NewTextHandler(io.Discard, nil)), svc)

			req := httptest.NewRequest(http.MethodDelete, "/me/grids/7", nil)
			ctx := context.WithValue(req.Context(), middleware.RequestIDKey, "req-id")
			if tt.withUser {
				ctx = middlewarectx.WithUser(ctx, initdata.User{ID: 42})
			}
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("gridID", tt.gridID)
			ctx = context.WithValue(ctx, chi.RouteCtxKey, rctx)

			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req.WithContext(ctx))

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
			svc.AssertExpectations(t)
		})
	}
}
