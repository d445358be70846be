package backend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/magabrotheeeer/giftoutfit/internal/lib/payload"
	"github.com/magabrotheeeer/giftoutfit/internal/models"
)

func (c *Client) stringList(ctx context.Context, op, path string, query url.Values, key string) ([]string, error) {
	data, err := c.raw(ctx, http.MethodGet, path, query, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return payload.StringList(data, key), nil
}

// ConstructorCollections возвращает коллекции, доступные в конструкторе.
func (c *Client) ConstructorCollections(ctx context.Context) ([]string, error) {
	return c.stringList(ctx, "backend.ConstructorCollections", "/constructor/collections", nil, "collections")
}

// ConstructorModels возвращает модели коллекции.
func (c *Client) ConstructorModels(ctx context.Context, collection string) ([]string, error) {
	return c.stringList(ctx, "backend.ConstructorModels",
		"/constructor/collections/"+seg(collection)+"/models", nil, "models")
}

// ConstructorBackdrops возвращает фоны, существующие для модели коллекции.
func (c *Client) ConstructorBackdrops(ctx context.Context, collection, model string) ([]string, error) {
	return c.stringList(ctx, "backend.ConstructorBackdrops",
		"/constructor/collections/"+seg(collection)+"/backdrops", url.Values{"model": {model}}, "backdrops")
}

// ConstructorSymbols возвращает символы для модели и фона.
func (c *Client) ConstructorSymbols(ctx context.Context, collection, model, backdrop string) ([]string, error) {
	return c.stringList(ctx, "backend.ConstructorSymbols",
		"/constructor/collections/"+seg(collection)+"/symbols",
		url.Values{"model": {model}, "backdrop": {backdrop}}, "symbols")
}

// ConstructorAllBackdrops возвращает все фоны (свободный режим).
func (c *Client) ConstructorAllBackdrops(ctx context.Context) ([]string, error) {
	return c.stringList(ctx, "backend.ConstructorAllBackdrops", "/constructor/backdrops", nil, "backdrops")
}

// ConstructorGift находит конкретный подарок коллекции по набору атрибутов.
func (c *Client) ConstructorGift(ctx context.Context, collection, model, backdrop, symbol string) (*models.ConstructorGift, error) {
	const op = "backend.ConstructorGift"
	var gift models.ConstructorGift
	query := url.Values{"model": {model}, "backdrop": {backdrop}, "symbol": {symbol}}
	if err := c.call(ctx, http.MethodGet, "/constructor/collections/"+seg(collection)+"/gift", query, nil, &gift); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &gift, nil
}
