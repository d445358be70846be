// Package backdrops реализует HTTP-обработчик палитр фонов каталога.
package backdrops

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/giftoutfit/internal/http/response"
	"github.com/magabrotheeeer/giftoutfit/internal/lib/sl"
	"github.com/magabrotheeeer/giftoutfit/internal/models"
)

// Handler отдаёт палитры фонов.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает чтение фонов.
type Service interface {
	Backdrops(ctx context.Context) ([]models.Backdrop, error)
}

// New создает новый Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary      Фоны подарков
// @Tags         Catalog
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      502  {object}  response.ErrorResponse
// @Security     TelegramInitData
// @Router       /api/v1/catalog/backdrops [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.catalog.backdrops"

	backdrops, err := h.service.Backdrops(r.Context())
	if err != nil {
		h.log.Error("failed to load backdrops", sl.Op(op),
			slog.String("request_id", middleware.GetReqID(r.Context())), sl.Err(err))
		response.WriteBackendError(w, r, err)
		return
	}

	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"backdrops": backdrops,
	}))
}
