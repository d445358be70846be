package models

// TelegramUser — профиль пользователя, как его отдаёт бэкенд.
type TelegramUser struct {
	ID              int64  `json:"id"`
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name,omitempty"`
	Username        string `json:"username,omitempty"`
	PhotoURL        string `json:"photo_url,omitempty"`
	IsPremium       bool   `json:"is_premium"`
	Bio             string `json:"bio,omitempty"`
	ViewCount       int64  `json:"view_count"`
	UniqueViewCount int64  `json:"unique_view_count"`
}

// Profile — представление профиля для конкретного зрителя.
// Счётчики просмотров раскрываются только при активной подписке зрителя.
type Profile struct {
	User            TelegramUser `json:"user"`
	IsOwn           bool         `json:"is_own"`
	ViewsVisible    bool         `json:"views_visible"`
	ViewCount       *int64       `json:"view_count,omitempty"`
	UniqueViewCount *int64       `json:"unique_view_count,omitempty"`
	ShareLink       string       `json:"share_link"`
}
