// Package gifts реализует HTTP-обработчик списка коллекций каталога.
package gifts

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/giftoutfit/internal/http/response"
	"github.com/magabrotheeeer/giftoutfit/internal/lib/sl"
)

// Handler отдаёт названия коллекций.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает чтение коллекций.
type Service interface {
	Gifts(ctx context.Context) ([]string, error)
}

// New создает новый Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary      Коллекции подарков
// @Tags         Catalog
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      502  {object}  response.ErrorResponse
// @Security     TelegramInitData
// @Router       /api/v1/catalog/gifts [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.catalog.gifts"

	gifts, err := h.service.Gifts(r.Context())
	if err != nil {
		h.log.Error("failed to load gifts", sl.Op(op),
			slog.String("request_id", middleware.GetReqID(r.Context())), sl.Err(err))
		response.WriteBackendError(w, r, err)
		return
	}

	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"gifts": gifts,
	}))
}
