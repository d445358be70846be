package plans

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/giftoutfit/internal/backend"
	"github.com/magabrotheeeer/giftoutfit/internal/models"
)

type ServiceMock struct {
	mock.Mock
}

func (m *ServiceMock) Plans(ctx context.Context) ([]models.SubscriptionPlan, error) {
	args := m.Called(ctx)
	plans, _ := args.Get(0).([]models.SubscriptionPlan)
	return plans, args.Error(1)
}

func TestPlansHandler(t *testing.T) {
	tests := []struct {
		name           string
		setupMock      func(*ServiceMock)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "тарифы",
			setupMock: func(m *ServiceMock) {
				m.On("Plans", mock.Anything).Return([]models.SubscriptionPlan{
					{ID: 1, Name: "Месяц", Price: 250, Currency: "XTR", Duration: 30},
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"plans":[{"id":1,"name":"Месяц","description":"","price":250,"currency":"XTR","duration":30}]`,
		},
		{
			name: "сбой бэкенда",
			setupMock: func(m *ServiceMock) {
				m.On("Plans", mock.Anything).Return(nil, &backend.StatusError{Code: http.StatusInternalServerError})
			},
			expectedStatus: http.StatusBadGateway,
			expectedBody:   `"error":"request failed, please try again"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(ServiceMock)
			tt.setupMock(svc)
			handler := New(slog.New(slog.NewTextHandler(io.Discard, nil)), svc)

			req := httptest.NewRequest(http.MethodGet, "/subscriptions/plans", nil)
			ctx := context.WithValue(req.Context(), middleware.RequestIDKey, "req-id")

			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req.WithContext(ctx))

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
			svc.AssertExpectations(t)
		})
	}
}
