// Package models содержит доменные структуры мини-приложения: подарки,
// альбомы (гриды) с ячейками, подписки и профили пользователей Telegram.
// Структуры повторяют JSON-формат REST-бэкенда.
package models

// Gift описывает коллекционный подарок: коллекцию и выбранные атрибуты.
// После размещения в ячейке подарок не изменяется: обновление ячейки
// заменяет его целиком.
type Gift struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name" validate:"required"` // Название коллекции
	Model      string    `json:"model,omitempty"`          // Модель (опционально)
	Background *Backdrop `json:"background,omitempty"`     // Фон с палитрой (опционально)
	Pattern    string    `json:"pattern,omitempty"`        // Символ-узор поверх фона (опционально)
}

// GiftMedia — ссылки для отображения подарка на клиенте.
type GiftMedia struct {
	Image       string `json:"image"`
	Animation   string `json:"animation_url"`
	TelegramURL string `json:"telegram_url,omitempty"`
}

// Backdrop — именованная палитра фона подарка.
type Backdrop struct {
	Name         string      `json:"name"`
	BackdropID   int         `json:"backdropId,omitempty"`
	CenterColor  int         `json:"centerColor,omitempty"`
	EdgeColor    int         `json:"edgeColor,omitempty"`
	PatternColor int         `json:"patternColor,omitempty"`
	TextColor    int         `json:"textColor,omitempty"`
	Hex          BackdropHex `json:"hex"`
}

// BackdropHex содержит четыре цвета палитры в формате #rrggbb.
type BackdropHex struct {
	CenterColor  string `json:"centerColor"`
	EdgeColor    string `json:"edgeColor"`
	PatternColor string `json:"patternColor"`
	TextColor    string `json:"textColor"`
}

// CatalogModel — модель коллекции из каталога с редкостью в промилле.
type CatalogModel struct {
	Name           string `json:"name"`
	RarityPermille int    `json:"rarityPermille"`
}
