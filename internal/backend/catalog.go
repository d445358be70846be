package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strings"

	"github.com/magabrotheeeer/giftoutfit/internal/models"
)

var collectionSlugCleaner = regexp.MustCompile(`[\s'-]+`)

// CollectionSlug приводит название коллекции к виду, который ожидает
// эндпоинт коллекции: без пробелов, апострофов и дефисов, в нижнем регистре.
func CollectionSlug(name string) string {
	return strings.ToLower(collectionSlugCleaner.ReplaceAllString(name, ""))
}

// CatalogGifts возвращает названия всех коллекций подарков.
func (c *Client) CatalogGifts(ctx context.Context) ([]string, error) {
	const op = "backend.CatalogGifts"
	var gifts []string
	if err := c.call(ctx, http.MethodGet, "/proxy/changes-tg/gifts", nil, nil, &gifts); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return gifts, nil
}

// CatalogModels возвращает модели коллекции с их редкостью.
func (c *Client) CatalogModels(ctx context.Context, giftName string) ([]models.CatalogModel, error) {
	const op = "backend.CatalogModels"
	var res []models.CatalogModel
	if err := c.call(ctx, http.MethodGet, "/proxy/changes-tg/models/"+seg(giftName), nil, nil, &res); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return res, nil
}

// CatalogBackdrops возвращает все фоны с палитрами, отсортированные по имени.
func (c *Client) CatalogBackdrops(ctx context.Context) ([]models.Backdrop, error) {
	const op = "backend.CatalogBackdrops"
	var res []models.Backdrop
	if err := c.call(ctx, http.MethodGet, "/proxy/changes-tg/backdrops", url.Values{"sort": {"asc"}}, nil, &res); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return res, nil
}

// CatalogPatterns возвращает символы коллекции.
func (c *Client) CatalogPatterns(ctx context.Context, giftName string) ([]string, error) {
	const op = "backend.CatalogPatterns"
	var res []string
	if err := c.call(ctx, http.MethodGet, "/proxy/changes-tg/patterns/"+seg(giftName), nil, nil, &res); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return res, nil
}

// GiftCollection возвращает все подарки коллекции для построения дерева атрибутов.
func (c *Client) GiftCollection(ctx context.Context, giftName string) (*models.GiftCollection, error) {
	const op = "backend.GiftCollection"
	var res models.GiftCollection
	if err := c.call(ctx, http.MethodGet, "/proxy/api/gifts/"+seg(CollectionSlug(giftName)), nil, nil, &res); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &res, nil
}

func decode(data []byte, out any) error {
	return json.Unmarshal(data, out)
}
