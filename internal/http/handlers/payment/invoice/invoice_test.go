package invoice

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

func (m *ServiceMock) CreateInvoice(ctx context.Context) (*models.Invoice, error) {
	args := m.Called(ctx)
	inv, _ := args.Get(0).(*models.Invoice)
	return inv, args.Error(1)
}

func TestInvoiceHandler(t *testing.T) {
	tests := []struct {
		name           string
		setupMock      func(*ServiceMock)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "счёт создан",
			setupMock: func(m *ServiceMock) {
				m.On("CreateInvoice", mock.Anything).Return(&models.Invoice{InvoiceLink: "https://t.me/$abc"}, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   `"invoice_link":"https://t.me/$abc"`,
		},
		{
			name: "нет данных запуска",
			setupMock: func(m *ServiceMock) {
				m.On("CreateInvoice", mock.Anything).Return(nil, backend.ErrUnauthorized)
			},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `"error":"unauthorized"`,
		},
		{
			name: "сбой бэкенда",
			setupMock: func(m *ServiceMock) {
				m.On("CreateInvoice", mock.Anything).Return(nil, &backend.StatusError{Code: http.StatusInternalServerError})
			},
			expectedStatus: http.StatusBadGateway,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(ServiceMock)
			tt.setupMock(svc)
			handler := New(slog.New(slog.NewTextHandler(io.Discard, nil)), svc)

			req := httptest.NewRequest(http.MethodPost, "/payments/stars/invoice", nil)
			ctx := context.WithValue(req.Context(), middleware.RequestIDKey, "req-id")

			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req.WithContext(ctx))

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
			svc.AssertExpectations(t)
		})
	}
}
