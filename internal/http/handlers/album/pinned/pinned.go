// Package pinned реализует HTTP-обработчик закреплённых подарков пользователя.
package pinned

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/giftoutfit/internal/http/params"
	"github.com/magabrotheeeer/giftoutfit/internal/http/response"
	"github.com/magabrotheeeer/giftoutfit/internal/lib/giftcdn"
	"github.com/magabrotheeeer/giftoutfit/internal/lib/sl"
	"github.com/magabrotheeeer/giftoutfit/internal/models"
)

// Handler отдаёт закреплённые подарки.
type Handler struct {
	log     *slog.Logger
	service Service
	urls    *giftcdn.Builder
}

// Service описывает чтение закреплённых подарков.
type Service interface {
	Pinned(ctx context.Context, userID int64) ([]models.PinnedGift, error)
}

// New создает новый Handler.
func New(log *slog.Logger, service Service, urls *giftcdn.Builder) *Handler {
	return &Handler{log: log, service: service, urls: urls}
}

// ServeHTTP godoc
// @Summary      Закреплённые подарки
// @Description  Закреплённые подарки по всем альбомам в порядке pinned_position, со ссылками на изображение, анимацию и NFT.
// @Tags         Grids
// @Produce      json
// @Param        userID  path  int  true  "ID пользователя Telegram"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.ErrorResponse
// @Failure      502  {object}  response.ErrorResponse
// @Security     TelegramInitData
// @Router       /api/v1/users/{userID}/pinned [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.album.pinned"

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

	gifts, err := h.service.Pinned(r.Context(), userID)
	if err != nil {
		log.Error("failed to load pinned gifts", sl.Err(err))
		response.WriteBackendError(w, r, err)
		return
	}
	for i := range gifts {
		gifts[i].Media = h.urls.Media(gifts[i].Gift)
	}

	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"pinned": gifts,
	}))
}
