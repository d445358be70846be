// Package invoiceclosed реализует HTTP-обработчик закрытия счёта.
//
// Клиент сообщает статус из события invoiceClosed; после оплаты
// закэшированная подписка сбрасывается.
package invoiceclosed

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/giftoutfit/internal/http/middlewarectx"
	"github.com/magabrotheeeer/giftoutfit/internal/http/response"
	"github.com/magabrotheeeer/giftoutfit/internal/lib/sl"
	"github.com/magabrotheeeer/giftoutfit/internal/services/subscription"
)

// Request — статус закрытого счёта.
type Request struct {
	Status string `json:"status" validate:"required,oneof=paid cancelled failed pending"`
}

// Handler обрабатывает закрытие счёта.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает обработку закрытия счёта.
type Service interface {
	InvoiceClosed(ctx context.Context, userID int64, status subscription.InvoiceStatus) (bool, error)
}

// New создает новый Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary      Счёт закрыт
// @Tags         Payments
// @Accept       json
// @Produce      json
// @Param        request  body  Request  true  "Статус счёта"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.ErrorResponse
// @Failure      401  {object}  response.ErrorResponse
// @Failure      422  {object}  response.ErrorResponse
// @Security     TelegramInitData
// @Router       /api/v1/payments/stars/invoice/closed [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.payment.invoiceclosed"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	userID, ok := middlewarectx.UserID(r.Context())
	if !ok {
		log.Error("user not found in context")
		response.WriteError(w, r, http.StatusUnauthorized, response.MsgUnauthorized)
		return
	}

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

	paid, err := h.service.InvoiceClosed(r.Context(), userID, subscription.InvoiceStatus(req.Status))
	switch {
	case errors.Is(err, subscription.ErrUnknownStatus):
		log.Info("unknown invoice status", slog.String("status", req.Status))
		response.WriteError(w, r, http.StatusUnprocessableEntity, "unknown invoice status")
		return
	case err != nil:
		log.Error("failed to handle closed invoice", sl.Err(err))
		response.WriteBackendError(w, r, err)
		return
	}

	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"status":                 req.Status,
		"subscription_refreshed": paid,
	}))
}
