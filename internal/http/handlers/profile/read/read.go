// Package read реализует HTTP-обработчик просмотра профиля пользователя.
//
// Счётчики просмотров видны только зрителю с активной подпиской. Сам просмотр
// засчитывается отдельным запросом, см. пакет view.
package read

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
	"github.com/magabrotheeeer/giftoutfit/internal/models"
)

// Handler отдаёт профиль пользователя.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает чтение профиля.
type Service interface {
	Get(ctx context.Context, viewerID, userID int64) (*models.Profile, error)
}

// New создает новый Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary      Профиль пользователя
// @Description  Профиль для текущего зрителя. Счётчики просмотров раскрываются при активной подписке.
// @Tags         Profile
// @Produce      json
// @Param        userID  path  int  true  "ID пользователя Telegram"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.ErrorResponse
// @Failure      401  {object}  response.ErrorResponse
// @Failure      404  {object}  response.ErrorResponse
// @Failure      502  {object}  response.ErrorResponse
// @Security     TelegramInitData
// @Router       /api/v1/users/{userID} [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.profile.read"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	viewerID, ok := middlewarectx.UserID(r.Context())
	if !ok {
		log.Error("user not found in context")
		response.WriteError(w, r, http.StatusUnauthorized, response.MsgUnauthorized)
		return
	}
	userID, err := params.Int64(r, "userID")
	if err != nil {
		log.Info("failed to decode user id from url", sl.Err(err))
		response.WriteError(w, r, http.StatusBadRequest, "failed to decode user id from url")
		return
	}

	profile, err := h.service.Get(r.Context(), viewerID, userID)
	if err != nil {
		log.Error("failed to load profile", sl.Err(err), sl.UserID(userID))
		response.WriteBackendError(w, r, err)
		return
	}

	render.JSON(w, r, response.StatusOKWithData(profile))
}
