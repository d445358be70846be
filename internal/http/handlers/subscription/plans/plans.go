// Package plans реализует HTTP-обработчик списка тарифных планов.
package plans

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

// Handler отдаёт тарифные планы.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает чтение планов.
type Service interface {
	Plans(ctx context.Context) ([]models.SubscriptionPlan, error)
}

// New создает новый Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary      Тарифные планы
// @Tags         Subscriptions
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      502  {object}  response.ErrorResponse
// @Security     TelegramInitData
// @Router       /api/v1/subscriptions/plans [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.subscription.plans"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	plans, err := h.service.Plans(r.Context())
	if err != nil {
		log.Error("failed to load plans", sl.Err(err))
		response.WriteBackendError(w, r, err)
		return
	}

	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"plans": plans,
	}))
}
