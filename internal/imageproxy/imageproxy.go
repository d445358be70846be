// Package imageproxy проксирует изображения и Lottie-файлы подарков с CDN,
// чтобы веб-вью не упиралось в промежуточную страницу туннеля.
package imageproxy

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/middleware"
	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/singleflight"

	"github.com/magabrotheeeer/giftoutfit/internal/lib/sl"
	"github.com/magabrotheeeer/giftoutfit/internal/metrics"
)

var (
	// ErrHostNotAllowed возвращается для хостов вне белого списка.
	ErrHostNotAllowed = errors.New("host is not allowed")
	// ErrTooLarge возвращается, если тело ответа больше лимита.
	ErrTooLarge = errors.New("upstream body is too large")
)

// Options — параметры прокси.
type Options struct {
	AllowedHosts []string
	CacheEntries int
	MaxBodyBytes int64
	Timeout      time.Duration
	MaxAge       time.Duration
}

type entry struct {
	contentType string
	body        []byte
}

// maxRedirects — сколько перенаправлений CDN допускается за один запрос.
const maxRedirects = 5

// upstreamError — неуспешный статус CDN.
type upstreamError struct {
	code int
}

func (e *upstreamError) Error() string {
	return fmt.Sprintf("upstream responded with status %d", e.code)
}

// Proxy — http.Handler прокси изображений.
type Proxy struct {
	log     *slog.Logger
	client  *http.Client
	allowed map[string]struct{}
	cache   *lru.Cache[string, entry]
	group   singleflight.Group
	maxBody int64
	maxAge  time.Duration
}

// New создает прокси изображений.
func New(log *slog.Logger, opts Options) (*Proxy, error) {
	if opts.CacheEntries <= 0 {
		opts.CacheEntries = 512
	}
	if opts.MaxBodyBytes <= 0 {
		opts.MaxBodyBytes = 5 << 20
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 15 * time.Second
	}

	c, err := lru.New[string, entry](opts.CacheEntries)
	if err != nil {
		return nil, fmt.Errorf("imageproxy.New: %w", err)
	}

	allowed := make(map[string]struct{}, len(opts.AllowedHosts))
	for _, h := range opts.AllowedHosts {
		allowed[strings.ToLower(strings.TrimSpace(h))] = struct{}{}
	}

	p := &Proxy{
		log:     log,
		allowed: allowed,
		cache:   c,
		maxBody: opts.MaxBodyBytes,
		maxAge:  opts.MaxAge,
	}
	p.client = &http.Client{Timeout: opts.Timeout, CheckRedirect: p.checkRedirect}
	return p, nil
}

// checkRedirect пропускает перенаправления только на хосты из белого списка.
func (p *Proxy) checkRedirect(req *http.Request, via []*http.Request) error {
	if len(via) >= maxRedirects {
		return fmt.Errorf("stopped after %d redirects", maxRedirects)
	}
	_, err := p.validate(req.URL.String())
	return err
}

// ServeHTTP godoc
// @Summary      Проксирование изображения подарка
// @Description  Загружает PNG или Lottie JSON с разрешённого CDN и отдаёт его клиенту.
// @Tags         Proxy
// @Produce      octet-stream
// @Param        url  query  string  true  "Адрес исходного файла"
// @Success      200
// @Failure      400  {string}  string  "url is required"
// @Failure      403  {string}  string  "host is not allowed"
// @Failure      429  {string}  string  "Too Many Requests"
// @Failure      502  {string}  string  "upstream failed"
// @Router       /proxy/image/ [get]
func (p *Proxy) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "imageproxy.ServeHTTP"
	log := p.log.With(sl.Op(op), slog.String("request_id", middleware.GetReqID(r.Context())))

	raw := r.URL.Query().Get("url")
	if raw == "" {
		http.Error(w, "url is required", http.StatusBadRequest)
		return
	}
	target, err := p.validate(raw)
	if err != nil {
		log.Info("rejected image url", slog.String("url", raw), sl.Err(err))
		http.Error(w, err.Error(), http.StatusForbidden)
		return
	}

	e, err := p.Fetch(r.Context(), target)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return
		}
		log.Warn("failed to fetch image", slog.String("url", target), sl.Err(err))
		if errors.Is(err, ErrHostNotAllowed) {
			http.Error(w, "host is not allowed", http.StatusForbidden)
			return
		}
		var ue *upstreamError
		if errors.As(err, &ue) && ue.code == http.StatusNotFound {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		http.Error(w, "upstream failed", http.StatusBadGateway)
		return
	}

	if e.contentType != "" {
		w.Header().Set("Content-Type", e.contentType)
	}
	w.Header().Set("Content-Length", strconv.Itoa(len(e.body)))
	if p.maxAge > 0 {
		w.Header().Set("Cache-Control", "public, max-age="+strconv.Itoa(int(p.maxAge.Seconds())))
	}
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(e.body); err != nil {
		log.Debug("failed to write image", sl.Err(err))
	}
}

// validate проверяет схему и хост адреса.
func (p *Proxy) validate(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme != "https" && u.Scheme != "http" {
		return "", fmt.Errorf("%w: scheme %q", ErrHostNotAllowed, u.Scheme)
	}
	if _, ok := p.allowed[strings.ToLower(u.Hostname())]; !ok {
		return "", fmt.Errorf("%w: %s", ErrHostNotAllowed, u.Hostname())
	}
	return u.String(), nil
}

// Fetch возвращает файл из LRU-кэша или загружает его. Одновременные
// загрузки одного адреса объединяются в одну и идут в контексте первого
// вызывающего: его отмена прерывает запрос к CDN, а остальные ожидающие
// повторяют загрузку сами.
func (p *Proxy) Fetch(ctx context.Context, target string) (entry, error) {
	if e, ok := p.cache.Get(target); ok {
		metrics.RecordImageCache(true)
		return e, nil
	}
	metrics.RecordImageCache(false)

	for {
		ch := p.group.DoChan(target, func() (any, error) {
			e, err := p.load(ctx, target)
			if err != nil {
				return entry{}, err
			}
			p.cache.Add(target, e)
			return e, nil
		})

		select {
		case <-ctx.Done():
			return entry{}, ctx.Err()
		case res := <-ch:
			if res.Err == nil {
				return res.Val.(entry), nil
			}
			if errors.Is(res.Err, context.Canceled) && ctx.Err() == nil {
				continue
			}
			return entry{}, res.Err
		}
	}
}

func (p *Proxy) load(ctx context.Context, target string) (entry, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return entry{}, err
	}
	resp, err := p.client.Do(req)
	if err != nil {
		return entry{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return entry{}, &upstreamError{code: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, p.maxBody+1))
	if err != nil {
		return entry{}, err
	}
	if int64(len(body)) > p.maxBody {
		return entry{}, ErrTooLarge
	}

	ct := resp.Header.Get("Content-Type")
	if ct == "" {
		ct = http.DetectContentType(body)
	}
	return entry{contentType: ct, body: body}, nil
}
