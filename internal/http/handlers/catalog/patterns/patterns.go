// Package patterns реализует HTTP-обработчик символов коллекции.
package patterns

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/giftoutfit/internal/http/params"
	"github.com/magabrotheeeer/giftoutfit/internal/http/response"
	"github.com/magabrotheeeer/giftoutfit/internal/lib/sl"
)

// Handler отдаёт символы коллекции.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает чтение символов.
type Service interface {
	Patterns(ctx context.Context, giftName string) ([]string, error)
}

// New создает новый Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary      Символы коллекции
// @Tags         Catalog
// @Produce      json
// @Param        name  path  string  true  "Название коллекции"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.ErrorResponse
// @Failure      404  {object}  response.ErrorResponse
// @Failure      502  {object}  response.ErrorResponse
// @Security     TelegramInitData
// @Router       /api/v1/catalog/patterns/{name} [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.catalog.patterns"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	name, err := params.String(r, "name")
	if err != nil {
		log.Info("failed to decode gift name from url", sl.Err(err))
		response.WriteError(w, r, http.StatusBadRequest, "gift name is required")
		return
	}

	list, err := h.service.Patterns(r.Context(), name)
	if err != nil {
		log.Error("failed to load patterns", sl.Err(err), slog.String("gift", name))
		response.WriteBackendError(w, r, err)
		return
	}

	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"patterns": list,
	}))
}
