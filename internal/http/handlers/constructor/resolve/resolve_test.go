package resolve

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/giftoutfit/internal/lib/giftcdn"
	"github.com/magabrotheeeer/giftoutfit/internal/models"
	"github.com/magabrotheeeer/giftoutfit/internal/services/constructor"
)

type ServiceMock struct {
	mock.Mock
}

func (m *ServiceMock) Resolve(ctx context.Context, mode constructor.Mode, sel constructor.Selection) (*models.Gift, error) {
	args := m.Called(ctx, mode, sel)
	g, _ := args.Get(0).(*models.Gift)
	return g, args.Error(1)
}

func TestResolveHandler(t *testing.T) {
	sel := constructor.Selection{Collection: "Plush Pepe", Model: "Cozy", Backdrop: "Onyx", Symbol: "Star"}

	tests := []struct {
		name           string
		body           string
		setupMock      func(*ServiceMock)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "подарок из конструктора",
			body: `{"selection":{"collection":"Plush Pepe","model":"Cozy","backdrop":"Onyx","symbol":"Star"}}`,
			setupMock: func(m *ServiceMock) {
				m.On("Resolve", mock.Anything, constructor.ModeConstructor, sel).
					Return(&models.Gift{ID: 12, Name: "Plush Pepe", Model: "Cozy", Pattern: "Star"}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"gift":{"id":12,"name":"Plush Pepe","model":"Cozy","pattern":"Star"}`,
		},
		{
			name: "ссылки на анимацию и NFT",
			body: `{"selection":{"collection":"Plush Pepe","model":"Cozy","backdrop":"Onyx","symbol":"Star"}}`,
			setupMock: func(m *ServiceMock) {
				m.On("Resolve", mock.Anything, constructor.ModeConstructor, sel).
					Return(&models.Gift{ID: 12, Name: "Plush Pepe", Model: "Cozy", Pattern: "Star"}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"animation_url":"https://cdn.changes.tg/gifts/models/Plush%20Pepe/lottie/Cozy.json","telegram_url":"https://t.me/nft/PlushPepe-12"`,
		},
		{
			name: "несуществующее сочетание",
			body: `{"mode":"constructor","selection":{"collection":"Plush Pepe","model":"Cozy","backdrop":"Onyx","symbol":"Star"}}`,
			setupMock: func(m *ServiceMock) {
				m.On("Resolve", mock.Anything, constructor.ModeConstructor, sel).
					Return(nil, fmt.Errorf("constructor.Resolve: %w", constructor.ErrInvalidPath))
			},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `"error":"attribute combination does not exist"`,
		},
		{
			name: "неполный выбор",
			body: `{"mode":"freeform","selection":{}}`,
			setupMock: func(m *ServiceMock) {
				m.On("Resolve", mock.Anything, constructor.ModeFreeform, constructor.Selection{}).
					Return(nil, constructor.ErrIncomplete)
			},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `"error":"selection is incomplete"`,
		},
		{
			name:           "неизвестный режим",
			body:           `{"mode":"magic","selection":{}}`,
			setupMock:      func(_ *ServiceMock) {},
			expectedStatus: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(ServiceMock)
			tt.setupMock(svc)
			handler := New(slog.New(slog.NewTextHandler(io.Discard, nil)), svc, giftcdn.New("", "", false))

			req := httptest.NewRequest(http.MethodPost, "/constructor/resolve", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			ctx := context.WithValue(req.Context(), middleware.RequestIDKey, "req-id")

			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req.WithContext(ctx))

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
			svc.AssertExpectations(t)
		})
	}
}
