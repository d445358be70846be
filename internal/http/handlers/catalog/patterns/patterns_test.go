package patterns

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
)

type ServiceMock struct {
	mock.Mock
}

func (m *ServiceMock) Patterns(ctx context.Context, giftName string) ([]string, error) {
	args := m.Called(ctx, giftName)
	list, _ := args.Get(0).([]string)
	return list, args.Error(1)
}

func TestPatternsHandler(t *testing.T) {
	tests := []struct {
		name           string
		gift           string
		setupMock      func(*ServiceMock)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "символы коллекции",
			gift: "Plush Pepe",
			setupMock: func(m *ServiceMock) {
				m.On("Patterns", mock.Anything, "Plush Pepe").Return([]string{"Star", "Moon"}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"patterns":["Star","Moon"]`,
		},
		{
			name: "экранированное название",
			gift: "Durov%27s%20Cap",
			setupMock: func(m *ServiceMock) {
				m.On("Patterns", mock.Anything, "Durov's Cap").Return([]string{"Crown"}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"patterns":["Crown"]`,
		},
		{
			name: "сбой бэкенда",
			gift: "Plush Pepe",
			setupMock: func(m *ServiceMock) {
				m.On("Patterns", mock.Anything, "Plush Pepe").Return(nil, &backend.StatusError{Code: http.StatusServiceUnavailable})
			},
			expectedStatus: http.StatusBadGateway,
		},
		{
			name:           "пустое название",
			setupMock:      func(_ *ServiceMock) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"error":"gift name is required"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(ServiceMock)
			tt.setupMock(svc)
			handler := New(slog.New(slog.NewTextHandler(io.Discard, nil)), svc)

			req := httptest.NewRequest(http.MethodGet, "/catalog/patterns/x", nil)
			ctx := context.WithValue(req.Context(), middleware.RequestIDKey, "req-id")
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("name", tt.gift)
			ctx = context.WithValue(ctx, chi.RouteCtxKey, rctx)

			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req.WithContext(ctx))

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
			svc.AssertExpectations(t)
		})
	}
}
