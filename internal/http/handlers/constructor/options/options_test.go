package options

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/giftoutfit/internal/services/constructor"
)

type ServiceMock struct {
	mock.Mock
}

func (m *ServiceMock) Options(ctx context.Context, field constructor.Field, mode constructor.Mode, sel constructor.Selection) ([]constructor.DrawerItem, error) {
	args := m.Called(ctx, field, mode, sel)
	items, _ := args.Get(0).([]constructor.DrawerItem)
	return items, args.Error(1)
}

func TestOptionsHandler(t *testing.T) {
	tests := []struct {
		name           string
		query          string
		setupMock      func(*ServiceMock)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:  "модели коллекции",
			query: "?field=model&collection=Plush%20Pepe",
			setupMock: func(m *ServiceMock) {
				m.On("Options", mock.Anything, constructor.FieldModel, constructor.ModeConstructor,
					constructor.Selection{Collection: "Plush Pepe"}).
					Return([]constructor.DrawerItem{{Title: "Cozy"}}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"items":[{"id":0,"title":"Cozy"}]`,
		},
		{
			name:  "символы в свободном режиме",
			query: "?field=pattern&mode=freeform&collection=Plush%20Pepe&model=Cozy&backdrop=Onyx",
			setupMock: func(m *ServiceMock) {
				m.On("Options", mock.Anything, constructor.FieldPattern, constructor.ModeFreeform,
					constructor.Selection{Collection: "Plush Pepe", Model: "Cozy", Backdrop: "Onyx"}).
					Return([]constructor.DrawerItem{}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"items":[]`,
		},
		{
			name:           "неизвестное поле",
			query:          "?field=color",
			setupMock:      func(_ *ServiceMock) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `"error":"field Field must be one of [gifts model background pattern]"`,
		},
		{
			name:           "неизвестный режим",
			query:          "?field=model&mode=random",
			setupMock:      func(_ *ServiceMock) {},
			expectedStatus: http.StatusUnprocessableEntity,
		},
		{
			name:  "ошибка бэкенда",
			query: "?field=gifts",
			setupMock: func(m *ServiceMock) {
				m.On("Options", mock.Anything, constructor.FieldGifts, constructor.ModeConstructor, constructor.Selection{}).
					Return(nil, errors.New("timeout"))
			},
			expectedStatus: http.StatusBadGateway,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(ServiceMock)
			tt.setupMock(svc)
			handler := New(slog.New(slog.NewTextHandler(io.Discard, nil)), svc)

			req := httptest.NewRequest(http.MethodGet, "/constructor/options"+tt.query, nil)
			ctx := context.WithValue(req.Context(), middleware.RequestIDKey, "req-id")

			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req.WithContext(ctx))

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
			svc.AssertExpectations(t)
		})
	}
}
