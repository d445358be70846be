// Package deeplink реализует HTTP-обработчик разбора параметра запуска.
//
// Клиент вызывает его при старте, чтобы понять, на какой профиль вела ссылка.
// Параметр берётся из query или, если его там нет, из данных запуска.
package deeplink

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/giftoutfit/internal/http/middlewarectx"
	"github.com/magabrotheeeer/giftoutfit/internal/http/response"
	"github.com/magabrotheeeer/giftoutfit/internal/services/profile"
)

// Handler разбирает start_param.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает разбор параметра запуска.
type Service interface {
	ResolveStartParam(viewerID int64, startParam string) (profile.Target, bool)
}

// New создает новый Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary      Разобрать параметр запуска
// @Description  Возвращает профиль, на который ведёт start_param, и признак собственного профиля.
// @Tags         Profile
// @Produce      json
// @Param        start_param  query  string  false  "Параметр запуска, например profile_123"
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.ErrorResponse
// @Failure      404  {object}  response.ErrorResponse  "Параметр не ссылается на профиль"
// @Security     TelegramInitData
// @Router       /api/v1/deeplink [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.profile.deeplink"

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

	startParam := r.URL.Query().Get("start_param")
	if startParam == "" {
		startParam, _ = r.Context().Value(middlewarectx.StartParam).(string)
	}

	target, ok := h.service.ResolveStartParam(viewerID, startParam)
	if !ok {
		log.Info("start param does not reference a profile", slog.String("start_param", startParam))
		response.WriteError(w, r, http.StatusNotFound, "start param does not reference a profile")
		return
	}

	render.JSON(w, r, response.StatusOKWithData(target))
}
