// Package giftmodels реализует HTTP-обработчик моделей коллекции.
package giftmodels

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/giftoutfit/internal/http/params"
	"github.com/magabrotheeeer/giftoutfit/internal/http/response"
	"github.com/magabrotheeeer/giftoutfit/internal/lib/sl"
	"github.com/magabrotheeeer/giftoutfit/internal/models"
)

// Handler отдаёт модели коллекции с редкостью.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает чтение моделей.
type Service interface {
	Models(ctx context.Context, giftName string) ([]models.CatalogModel, error)
}

// New создает новый Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary      Модели коллекции
// @Tags         Catalog
// @Produce      json
// @Param        name  path  string  true  "Название коллекции"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.ErrorResponse
// @Failure      404  {object}  response.ErrorResponse
// @Failure      502  {object}  response.ErrorResponse
// @Security     TelegramInitData
// @Router       /api/v1/catalog/models/{name} [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.catalog.models"

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

	list, err := h.service.Models(r.Context(), name)
	if err != nil {
		log.Error("failed to load models", sl.Err(err), slog.String("gift", name))
		response.WriteBackendError(w, r, err)
		return
	}

	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"models": list,
	}))
}
