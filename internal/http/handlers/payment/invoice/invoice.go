// Package invoice реализует HTTP-обработчик создания счёта Telegram Stars.
package invoice

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/giftoutfit/internal/http/response"
	"github.com/magabrotheeeer/giftoutfit/internal/lib/sl"
	"github.com/magabrotheeeer/giftoutfit/internal/models"
)

// Handler создаёт счёт на оплату подписки.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает создание счёта.
type Service interface {
	CreateInvoice(ctx context.Context) (*models.Invoice, error)
}

// New создает новый Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary      Создать счёт Telegram Stars
// @Description  Счёт выставляется на первый тарифный план. Ссылку клиент открывает через openInvoice.
// @Tags         Payments
// @Produce      json
// @Success      201  {object}  response.Response
// @Failure      401  {object}  response.ErrorResponse
// @Failure      502  {object}  response.ErrorResponse
// @Security     TelegramInitData
// @Router       /api/v1/payments/stars/invoice [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.payment.invoice"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	inv, err := h.service.CreateInvoice(r.Context())
	if err != nil {
		log.Error("failed to create invoice", sl.Err(err))
		response.WriteBackendError(w, r, err)
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, response.StatusOKWithData(inv))
}
