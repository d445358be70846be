// Package share реализует HTTP-обработчик ссылки на профиль.
package share

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/giftoutfit/internal/http/middlewarectx"
	"github.com/magabrotheeeer/giftoutfit/internal/http/response"
)

// Handler отдаёт ссылку на профиль текущего пользователя.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service строит ссылку на профиль.
type Service interface {
	ShareLink(userID int64) string
}

// New создает новый Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary      Ссылка на свой профиль
// @Tags         Profile
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.ErrorResponse
// @Security     TelegramInitData
// @Router       /api/v1/me/share [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.profile.share"

	userID, ok := middlewarectx.UserID(r.Context())
	if !ok {
		h.log.Error("user not found in context",
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)
		response.WriteError(w, r, http.StatusUnauthorized, response.MsgUnauthorized)
		return
	}

	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"share_link": h.service.ShareLink(userID),
	}))
}
