// Package resolve реализует HTTP-обработчик сборки подарка из выбранных атрибутов.
package resolve

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/giftoutfit/internal/http/response"
	"github.com/magabrotheeeer/giftoutfit/internal/lib/giftcdn"
	"github.com/magabrotheeeer/giftoutfit/internal/lib/sl"
	"github.com/magabrotheeeer/giftoutfit/internal/models"
	"github.com/magabrotheeeer/giftoutfit/internal/services/constructor"
)

// Request — режим и выбранные атрибуты.
type Request struct {
	Mode      string                `json:"mode" validate:"omitempty,oneof=constructor freeform"`
	Selection constructor.Selection `json:"selection"`
}

// Handler собирает подарок для ячейки.
type Handler struct {
	log      *slog.Logger
	service  Service
	urls     *giftcdn.Builder
	validate *validator.Validate
}

// Service описывает сборку подарка.
type Service interface {
	Resolve(ctx context.Context, mode constructor.Mode, sel constructor.Selection) (*models.Gift, error)
}

// New создает новый Handler.
func New(log *slog.Logger, service Service, urls *giftcdn.Builder) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		urls:     urls,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary      Собрать подарок
// @Description  В режиме constructor сочетание атрибутов должно существовать в коллекции, в режиме freeform допустимо любое. Вместе с подарком возвращаются ссылки на изображение, анимацию и NFT.
// @Tags         Constructor
// @Accept       json
// @Produce      json
// @Param        request  body  Request  true  "Режим и выбор"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.ErrorResponse
// @Failure      422  {object}  response.ErrorResponse
// @Failure      502  {object}  response.ErrorResponse
// @Security     TelegramInitData
// @Router       /api/v1/constructor/resolve [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.constructor.resolve"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req Request
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		log.Info("failed to decode request body", sl.Err(err))
		response.WriteError(w, r, http.StatusBadRequest, response.MsgDecodeFailed)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		log.Info("validation failed", sl.Err(err))
		response.WriteValidationError(w, r, err)
		return
	}
	mode, _ := constructor.ParseMode(req.Mode)

	gift, err := h.service.Resolve(r.Context(), mode, req.Selection)
	switch {
	case errors.Is(err, constructor.ErrIncomplete):
		log.Info("selection is incomplete")
		response.WriteError(w, r, http.StatusUnprocessableEntity, "selection is incomplete")
		return
	case errors.Is(err, constructor.ErrInvalidPath):
		log.Info("attribute combination does not exist")
		response.WriteError(w, r, http.StatusUnprocessableEntity, "attribute combination does not exist")
		return
	case err != nil:
		log.Error("failed to resolve gift", sl.Err(err))
		response.WriteBackendError(w, r, err)
		return
	}

	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"gift":  gift,
		"media": h.urls.Media(*gift),
	}))
}
