// Package rowadd реализует HTTP-обработчик добавления строки в альбом.
package rowadd

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/giftoutfit/internal/http/middlewarectx"
	"github.com/magabrotheeeer/giftoutfit/internal/http/params"
	"github.com/magabrotheeeer/giftoutfit/internal/http/response"
	"github.com/magabrotheeeer/giftoutfit/internal/lib/sl"
)

// Handler добавляет пустую строку в альбом.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает добавление строки.
type Service interface {
	AddRow(ctx context.Context, ownerID, gridID int64) error
}

// New создает новый Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary      Добавить строку
// @Tags         Grids
// @Produce      json
// @Param        gridID  path  int  true  "ID альбома"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.ErrorResponse
// @Failure      401  {object}  response.ErrorResponse
// @Failure      502  {object}  response.ErrorResponse
// @Security     TelegramInitData
// @Router       /api/v1/grids/{gridID}/rows [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.album.rowadd"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	ownerID, ok := middlewarectx.UserID(r.Context())
	if !ok {
		log.Error("user not found in context")
		response.WriteError(w, r, http.StatusUnauthorized, response.MsgUnauthorized)
		return
	}
	gridID, err := params.Int64(r, "gridID")
	if err != nil {
		log.Info("failed to decode grid id from url", sl.Err(err))
		response.WriteError(w, r, http.StatusBadRequest, "failed to decode grid id from url")
		return
	}

	if err := h.service.AddRow(r.Context(), ownerID, gridID); err != nil {
		log.Error("failed to add row", sl.Err(err))
		response.WriteBackendError(w, r, err)
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"grid_id": gridID,
	}))
}
