package cellswap

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
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
	"github.com/magabrotheeeer/giftoutfit/internal/services/album"
)

type ServiceMock struct {
	mock.Mock
}

func (m *ServiceMock) Swap(ctx context.Context, ownerID, gridID int64, src, dst models.CellPosition) ([]models.Grid, error) {
	args := m.Called(ctx, ownerID, gridID, src, dst)
	grids, _ := args.Get(0).([]models.Grid)
	return grids, args.Error(1)
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestSwapHandler(t *testing.T) {
	src := models.CellPosition{RowIndex: 0, CellIndex: 0}
	dst := models.CellPosition{RowIndex: 1, CellIndex: 2}
	swapped := []models.Grid{{ID: 7, Name: "main"}}

	tests := []struct {
		name           string
		gridID         string
		body           any
		withUser       bool
		setupMock      func(*ServiceMock)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:     "успешная перестановка",
			gridID:   "7",
			body:     Request{Source: src, Target: dst},
			withUser: true,
			setupMock: func(m *ServiceMock) {
				m.On("Swap", mock.Anything, int64(42), int64(7), src, dst).Return(swapped, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"grids":[{"id":7,"name":"main","rows":null}]`,
		},
		{
			name:     "закреплённая ячейка",
			gridID:   "7",
			body:     Request{Source: src, Target: dst},
			withUser: true,
			setupMock: func(m *ServiceMock) {
				m.On("Swap", mock.Anything, int64(42), int64(7), src, dst).
					Return(nil, fmt.Errorf("wrap: %w", album.ErrPinnedCell))
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   `{"status":"Error","error":"pinned cell cannot be moved"}`,
		},
		{
			name:     "ячейка не найдена",
			gridID:   "7",
			body:     Request{Source: src, Target: dst},
			withUser: true,
			setupMock: func(m *ServiceMock) {
				m.On("Swap", mock.Anything, int64(42), int64(7), src, dst).Return(nil, album.ErrCellNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `"error":"cell not found"`,
		},
		{
			name:     "бэкенд отклонил перестановку",
			gridID:   "7",
			body:     Request{Source: src, Target: dst},
			withUser: true,
			setupMock: func(m *ServiceMock) {
				m.On("Swap", mock.Anything, int64(42), int64(7), src, dst).
					Return(nil, fmt.Errorf("%w: %w", album.ErrSwapFailed, &backend.StatusError{Code: 500}))
			},
			expectedStatus: http.StatusBadGateway,
			expectedBody:   `"error":"request failed, please try again"`,
		},
		{
			name:           "ячейка вне строки",
			gridID:         "7",
			body:           Request{Source: src, Target: models.CellPosition{RowIndex: 0, CellIndex: 3}},
			withUser:       true,
			setupMock:      func(_ *ServiceMock) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `"error":"field CellIndex must be at most 2"`,
		},
		{
			name:           "некорректный JSON",
			gridID:         "7",
			body:           "not a json",
			withUser:       true,
			setupMock:      func(_ *ServiceMock) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"failed to decode request"}`,
		},
		{
			name:           "некорректный id альбома",
			gridID:         "abc",
			body:           Request{Source: src, Target: dst},
			withUser:       true,
			setupMock:      func(_ *ServiceMock) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"error":"failed to decode grid id from url"`,
		},
		{
			name:           "нет пользователя",
			gridID:         "7",
			body:           Request{Source: src, Target: dst},
			setupMock:      func(_ *ServiceMock) {},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"status":"Error","error":"unauthorized"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(ServiceMock)
			tt.setupMock(svc)
			handler := New(newNoopLogger(), svc)

			var body []byte
			if s, ok := tt.body.(string); ok {
				body = []byte(s)
			} else {
				var err error
				body, err = json.Marshal(tt.body)
				assert.NoError(t, err)
			}

			req := httptest.NewRequest(http.MethodPost, "/grids/"+tt.gridID+"/cells/swap", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")

			ctx := context.WithValue(req.Context(), middleware.RequestIDKey, "req-id")
			if tt.withUser {
				ctx = middlewarectx.WithUser(ctx, initdata.User{ID: 42, FirstName: "Ann"})
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
