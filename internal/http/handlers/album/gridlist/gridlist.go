// Package gridlist реализует HTTP-обработчик получения альбомов пользователя.
package gridlist

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

// Handler отдаёт альбомы пользователя.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает чтение альбомов.
type Service interface {
	Grids(ctx context.Context, userID int64) ([]models.Grid, error)
}

// New создает новый Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary      Альбомы пользователя
// @Tags         Grids
// @Produce      json
// @Param        userID  path  int  true  "ID пользователя Telegram"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.ErrorResponse
// @Failure      502  {object}  response.ErrorResponse
// @Security     TelegramInitData
// @Router       /api/v1/users/{userID}/grids [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.album.gridlist"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	userID, err := params.Int64(r, "userID")
	if err != nil {
		log.Info("failed to decode user id from url", sl.Err(err))
		response.WriteError(w, r, http.StatusBadRequest, "failed to decode user id from url")
		return
	}

	grids, err := h.service.Grids(r.Context(), userID)
	if err != nil {
		log.Error("failed to load grids", sl.Err(err))
		response.WriteBackendError(w, r, err)
		return
	}

	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"grids": grids,
	}))
}
