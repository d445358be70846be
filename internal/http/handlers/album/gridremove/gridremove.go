// Package gridremove реализует HTTP-обработчик удаления альбома.
package gridremove

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

// Handler удаляет альбом текущего пользователя.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает удаление альбома.
type Service interface {
	Delete(ctx context.Context, ownerID, gridID int64) error
}

// New создает новый Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary      Удалить альбом
// @Tags         Grids
// @Produce      json
// @Param        gridID  path  int  true  "ID альбома"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.ErrorResponse
// @Failure      401  {object}  response.ErrorResponse
// @Failure      502  {object}  response.ErrorResponse
// @Security     TelegramInitData
// @Router       /api/v1/me/grids/{gridID} [delete]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.album.gridremove"

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

	if err := h.service.Delete(r.Context(), ownerID, gridID); err != nil {
		log.Error("failed to delete grid", sl.Err(err))
		response.WriteBackendError(w, r, err)
		return
	}

	log.Info("grid deleted", slog.Int64("grid_id", gridID))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"deleted_id": gridID,
	}))
}
