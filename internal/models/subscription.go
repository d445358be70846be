package models

import "time"

// SubscriptionPlan — тарифный план подписки.
type SubscriptionPlan struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int    `json:"price"`
	Currency    string `json:"currency"`
	Duration    int    `json:"duration"` // Длительность в днях
}

// Subscription — оплаченный период доступа к расширенным функциям.
type Subscription struct {
	ID        int64            `json:"id"`
	Plan      SubscriptionPlan `json:"subscription_plan"`
	StartDate time.Time        `json:"start_date"`
	EndDate   time.Time        `json:"end_date"`
}

// Active сообщает, активна ли подписка на момент now (end_date > now).
func (s *Subscription) Active(now time.Time) bool {
	if s == nil {
		return false
	}
	return s.EndDate.After(now)
}

// Invoice — ссылка на счёт Telegram Stars.
type Invoice struct {
	InvoiceLink string `json:"invoice_link"`
}
