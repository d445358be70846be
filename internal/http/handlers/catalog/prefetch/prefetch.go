// Package prefetch реализует HTTP-обработчик прогрева каталога.
//
// Клиент вызывает его при открытии списка выбора, чтобы коллекции и фоны
// уже лежали в кэше к моменту первого запроса вариантов.
package prefetch

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"

	"github.com/magabrotheeeer/giftoutfit/internal/http/response"
	"github.com/magabrotheeeer/giftoutfit/internal/lib/sl"
)

// Handler прогревает кэш каталога.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает прогрев каталога.
type Service interface {
	Prefetch(ctx context.Context) error
}

// New создает новый Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary      Прогреть каталог
// @Tags         Catalog
// @Success      204
// @Failure      502  {object}  response.ErrorResponse
// @Security     TelegramInitData
// @Router       /api/v1/catalog/prefetch [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.catalog.prefetch"

	if err := h.service.Prefetch(r.Context()); err != nil {
		h.log.Error("failed to prefetch catalog", sl.Op(op),
			slog.String("request_id", middleware.GetReqID(r.Context())), sl.Err(err))
		response.WriteBackendError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
