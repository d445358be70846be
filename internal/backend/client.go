// Package backend реализует HTTP-клиент REST-бэкенда мини-приложения.
//
// Бэкенд — единственный владелец данных: альбомов, ячеек, профилей, подписок
// и платежей. Клиент только отправляет запросы и разбирает ответы; повторов
// запросов нет.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrNotFound — бэкенд ответил 404.
	ErrNotFound = errors.New("resource not found")
	// ErrUnauthorized — отсутствуют данные запуска Telegram в контексте.
	ErrUnauthorized = errors.New("init data is missing in context")
)

// StatusError описывает неуспешный ответ бэкенда.
type StatusError struct {
	Method string
	Path   string
	Code   int
	Body   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s: unexpected status %d: %s", e.Method, e.Path, e.Code, e.Body)
}

// Is позволяет проверять 404 через errors.Is(err, ErrNotFound).
func (e *StatusError) Is(target error) bool {
	return target == ErrNotFound && e.Code == http.StatusNotFound
}

type ctxKey struct{}

// WithInitData кладёт в контекст сырые данные запуска Telegram,
// которыми подписываются запросы к бэкенду.
func WithInitData(ctx context.Context, raw string) context.Context {
	return context.WithValue(ctx, ctxKey{}, raw)
}

// InitData достаёт сырые данные запуска из контекста.
func InitData(ctx context.Context) (string, bool) {
	raw, ok := ctx.Value(ctxKey{}).(string)
	return raw, ok && raw != ""
}

// Client — клиент REST-бэкенда.
type Client struct {
	baseURL    string
	httpClient *http.Client
	newKey     func() string
}

// NewClient создаёт клиент бэкенда с базовым адресом baseURL.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		newKey:     func() string { return uuid.NewString() },
	}
}

func (c *Client) newRequest(ctx context.Context, method, path string, query url.Values, body any) (*http.Request, error) {
	raw, ok := InitData(ctx)
	if !ok {
		return nil, ErrUnauthorized
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var buf io.Reader
	if body != nil {
		b := &bytes.Buffer{}
		if err := json.NewEncoder(b).Encode(body); err != nil {
			return nil, err
		}
		buf = b
	}

	req, err := http.NewRequestWithContext(ctx, method, u, buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "tma "+raw)
	req.Header.Set("ngrok-skip-browser-warning", "true")
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req, nil
}

// do выполняет запрос и возвращает тело успешного ответа.
func (c *Client) do(req *http.Request) ([]byte, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &StatusError{
			Method: req.Method,
			Path:   req.URL.Path,
			Code:   resp.StatusCode,
			Body:   strings.TrimSpace(string(data)),
		}
	}
	return data, nil
}

// raw выполняет запрос и возвращает тело ответа как есть.
func (c *Client) raw(ctx context.Context, method, path string, query url.Values, body any) ([]byte, error) {
	req, err := c.newRequest(ctx, method, path, query, body)
	if err != nil {
		return nil, err
	}
	return c.do(req)
}

// call выполняет запрос и декодирует JSON-ответ в out (если out не nil).
func (c *Client) call(ctx context.Context, method, path string, query url.Values, body, out any) error {
	data, err := c.raw(ctx, method, path, query, body)
	if err != nil {
		return err
	}
	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	return json.Unmarshal(data, out)
}

func seg(s string) string {
	return url.PathEscape(s)
}
