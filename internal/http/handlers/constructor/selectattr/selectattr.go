// Package selectattr реализует HTTP-обработчик выбора атрибута подарка.
//
// Выбор коллекции сбрасывает модель, фон и символ; выбор модели сбрасывает
// фон и символ; выбор фона сбрасывает символ. Повторный выбор того же
// значения ничего не меняет.
package selectattr

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/giftoutfit/internal/http/response"
	"github.com/magabrotheeeer/giftoutfit/internal/lib/sl"
	"github.com/magabrotheeeer/giftoutfit/internal/services/constructor"
)

// Request — текущий выбор и новое значение поля.
type Request struct {
	Selection  constructor.Selection `json:"selection"`
	Field      string                `json:"field" validate:"required,oneof=gifts model background pattern"`
	Value      string                `json:"value"`
	GiftNumber int64                 `json:"gift_number"`
}

// Handler применяет выбор атрибута.
type Handler struct {
	log      *slog.Logger
	validate *validator.Validate
}

// New создает новый Handler.
func New(log *slog.Logger) *Handler {
	return &Handler{
		log:      log,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary      Выбрать атрибут
// @Description  Возвращает новый выбор после смены значения поля.
// @Tags         Constructor
// @Accept       json
// @Produce      json
// @Param        request  body  Request  true  "Текущий выбор и новое значение"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.ErrorResponse
// @Failure      422  {object}  response.ErrorResponse
// @Security     TelegramInitData
// @Router       /api/v1/constructor/select [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.constructor.select"

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

	sel, err := req.Selection.Select(constructor.Field(req.Field), req.Value, req.GiftNumber)
	if err != nil {
		log.Info("failed to apply selection", sl.Err(err))
		response.WriteError(w, r, http.StatusUnprocessableEntity, "unknown field")
		return
	}

	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"selection": sel,
	}))
}
