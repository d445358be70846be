package backend

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/magabrotheeeer/giftoutfit/internal/lib/payload"
	"github.com/magabrotheeeer/giftoutfit/internal/models"
)

type swapRequest struct {
	Source models.CellPosition `json:"source"`
	Target models.CellPosition `json:"target"`
}

// GetGrids возвращает все альбомы пользователя с нормализованными ячейками.
func (c *Client) GetGrids(ctx context.Context, userID int64) ([]models.Grid, error) {
	const op = "backend.GetGrids"
	data, err := c.raw(ctx, http.MethodGet, "/users/"+strconv.FormatInt(userID, 10)+"/grids", nil, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	grids, err := payload.Grids(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return grids, nil
}

// CreateGrid создаёт альбом текущего пользователя.
func (c *Client) CreateGrid(ctx context.Context, name string) error {
	const op = "backend.CreateGrid"
	if err := c.call(ctx, http.MethodPost, "/me/grids", nil, map[string]string{"name": name}, nil); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// DeleteGrid удаляет альбом текущего пользователя.
func (c *Client) DeleteGrid(ctx context.Context, gridID int64) error {
	const op = "backend.DeleteGrid"
	if err := c.call(ctx, http.MethodDelete, "/me/grids/"+strconv.FormatInt(gridID, 10), nil, nil, nil); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// AddRow добавляет в альбом пустую строку.
func (c *Client) AddRow(ctx context.Context, gridID int64) error {
	const op = "backend.AddRow"
	path := fmt.Sprintf("/grids/%d/rows", gridID)
	if err := c.call(ctx, http.MethodPost, path, nil, struct{}{}, nil); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// UpdateCell записывает подарок в ячейку. gift == nil очищает ячейку.
func (c *Client) UpdateCell(ctx context.Context, gridID int64, pos models.CellPosition, gift *models.Gift) error {
	const op = "backend.UpdateCell"
	path := fmt.Sprintf("/grids/%d/rows/%d/cells/%d", gridID, pos.RowIndex, pos.CellIndex)
	body := map[string]*models.Gift{"gift": gift}
	if err := c.call(ctx, http.MethodPut, path, nil, body, nil); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// SwapCells атомарно меняет местами содержимое двух ячеек одного альбома.
func (c *Client) SwapCells(ctx context.Context, gridID int64, src, dst models.CellPosition) error {
	const op = "backend.SwapCells"
	path := fmt.Sprintf("/grids/%d/cells/swap", gridID)
	if err := c.call(ctx, http.MethodPost, path, nil, swapRequest{Source: src, Target: dst}, nil); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// TogglePin закрепляет или открепляет ячейку.
func (c *Client) TogglePin(ctx context.Context, gridID int64, pos models.CellPosition, pinned bool) error {
	const op = "backend.TogglePin"
	path := fmt.Sprintf("/grids/%d/cells/%d/%d/pin", gridID, pos.RowIndex, pos.CellIndex)
	if err := c.call(ctx, http.MethodPost, path, nil, map[string]bool{"pinned": pinned}, nil); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
