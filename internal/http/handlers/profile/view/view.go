// Package view реализует HTTP-обработчик учёта просмотра профиля.
//
// Клиент вызывает его один раз при открытии чужого профиля, повторные
// загрузки профиля просмотры не накручивают.
package view

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

// Handler учитывает просмотр профиля.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает учёт просмотров.
type Service interface {
	TrackView(ctx context.Context, viewerID, userID int64) bool
}

// New создает новый Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary      Учесть просмотр профиля
// @Description  Засчитывает просмотр чужого профиля. Свой профиль и сбои бэкенда дают tracked=false.
// @Tags         Profile
// @Produce      json
// @Param        userID  path  int  true  "ID пользователя Telegram"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.ErrorResponse
// @Failure      401  {object}  response.ErrorResponse
// @Security     TelegramInitData
// @Router       /api/v1/users/{userID}/views [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.profile.view"

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

	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"tracked": h.service.TrackView(r.Context(), viewerID, userID),
	}))
}
