// Package initdata — тонкая обёртка над init-data-golang: разбор, проверка
// и подпись данных запуска Telegram Mini App (initData).
package initdata

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"time"

	tgdata "github.com/telegram-mini-apps/init-data-golang"
)

var (
	// ErrEmpty — строка initData пуста.
	ErrEmpty = errors.New("init data is empty")
	// ErrUserMissing — в initData нет пользователя.
	ErrUserMissing = errors.New("init data user is missing")

	ErrHashMissing = tgdata.ErrSignMissing
	ErrSignInvalid = tgdata.ErrSignInvalid
	ErrExpired     = tgdata.ErrExpired
)

// User — пользователь Telegram из initData.
type User = tgdata.User

// Data — разобранные данные запуска.
type Data struct {
	Raw        string
	User       User
	AuthDate   time.Time
	StartParam string
	QueryID    string
	Hash       string
}

// Validate проверяет подпись raw токеном бота. Если maxAge > 0,
// дополнительно проверяется, что auth_date не старше maxAge.
func Validate(raw, botToken string, maxAge time.Duration) error {
	const op = "initdata.Validate"
	if raw == "" {
		return fmt.Errorf("%s: %w", op, ErrEmpty)
	}
	if err := tgdata.Validate(raw, botToken, maxAge); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// Sign подписывает поля values токеном бота с датой authDate и возвращает
// готовую строку initData. Поля hash и auth_date в values игнорируются.
func Sign(values url.Values, botToken string, authDate time.Time) string {
	payload := make(map[string]string, len(values))
	out := url.Values{}
	for k := range values {
		payload[k] = values.Get(k)
		out.Set(k, values.Get(k))
	}
	out.Set("auth_date", strconv.FormatInt(authDate.Unix(), 10))
	out.Set("hash", tgdata.Sign(payload, botToken, authDate))
	return out.Encode()
}

// Parse разбирает initData без проверки подписи.
func Parse(raw string) (*Data, error) {
	const op = "initdata.Parse"
	if raw == "" {
		return nil, fmt.Errorf("%s: %w", op, ErrEmpty)
	}
	d, err := tgdata.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if d.User.ID == 0 {
		return nil, fmt.Errorf("%s: %w", op, ErrUserMissing)
	}

	data := &Data{
		Raw:        raw,
		User:       d.User,
		StartParam: d.StartParam,
		QueryID:    d.QueryID,
		Hash:       d.Hash,
	}
	if d.AuthDateRaw != 0 {
		data.AuthDate = d.AuthDate()
	}
	return data, nil
}
