package backend

import (
	"context"
	"fmt"
	"net/http"

	"github.com/magabrotheeeer/giftoutfit/internal/models"
)

// GetMySubscription возвращает подписку текущего пользователя.
// Если подписки нет, бэкенд отвечает 404 и ошибка удовлетворяет errors.Is(err, ErrNotFound).
func (c *Client) GetMySubscription(ctx context.Context) (*models.Subscription, error) {
	const op = "backend.GetMySubscription"
	var sub models.Subscription
	if err := c.call(ctx, http.MethodGet, "/me/subscription", nil, nil, &sub); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &sub, nil
}

// ListPlans возвращает тарифные планы подписки.
func (c *Client) ListPlans(ctx context.Context) ([]models.SubscriptionPlan, error) {
	const op = "backend.ListPlans"
	var plans []models.SubscriptionPlan
	if err := c.call(ctx, http.MethodGet, "/subscriptions/plans", nil, nil, &plans); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return plans, nil
}

// CreateInvoice создаёт счёт Telegram Stars на оплату плана.
// Каждый вызов получает собственный Idempotency-Key.
func (c *Client) CreateInvoice(ctx context.Context, planID int64) (*models.Invoice, error) {
	const op = "backend.CreateInvoice"
	req, err := c.newRequest(ctx, http.MethodPost, "/payments/stars/invoice", nil, map[string]int64{"subscription_id": planID})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	req.Header.Set("Idempotency-Key", c.newKey())

	data, err := c.do(req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	var inv models.Invoice
	if err := decode(data, &inv); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &inv, nil
}
