package backend

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/magabrotheeeer/giftoutfit/internal/models"
)

// GetUser возвращает профиль пользователя.
func (c *Client) GetUser(ctx context.Context, userID int64) (*models.TelegramUser, error) {
	const op = "backend.GetUser"
	var user models.TelegramUser
	if err := c.call(ctx, http.MethodGet, "/users/"+strconv.FormatInt(userID, 10), nil, nil, &user); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &user, nil
}

// UpdateBio обновляет описание профиля текущего пользователя.
func (c *Client) UpdateBio(ctx context.Context, bio string) error {
	const op = "backend.UpdateBio"
	if err := c.call(ctx, http.MethodPut, "/me/bio", nil, map[string]string{"bio": bio}, nil); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// TrackProfileView регистрирует просмотр чужого профиля.
func (c *Client) TrackProfileView(ctx context.Context, userID int64) error {
	const op = "backend.TrackProfileView"
	path := "/users/" + strconv.FormatInt(userID, 10) + "/views"
	if err := c.call(ctx, http.MethodPost, path, nil, struct{}{}, nil); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
