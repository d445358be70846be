// Package giftcdn строит ссылки на изображения и анимации подарков на CDN
// и при необходимости заворачивает их в прокси мини-приложения.
package giftcdn

import (
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/magabrotheeeer/giftoutfit/internal/models"
)

// DefaultCDN — базовый адрес CDN с изображениями подарков.
const DefaultCDN = "https://cdn.changes.tg"

// originalModel — модель, изображение которой показывается, пока модель не выбрана.
const originalModel = "Original"

var whitespace = regexp.MustCompile(`\s+`)

// componentEscaper возвращает экранированию url.QueryEscape вид
// encodeURIComponent: пробел как %20, символы !*() без экранирования.
var componentEscaper = strings.NewReplacer("+", "%20", "%21", "!", "%2A", "*", "%28", "(", "%29", ")")

// Builder собирает URL подарков. Если ProxyURL пуст или проксирование
// выключено, возвращаются прямые ссылки на CDN.
type Builder struct {
	CDN      string
	ProxyURL string
	Proxy    bool
}

// New создаёт Builder. Пустой cdn заменяется на DefaultCDN.
func New(cdn, proxyURL string, proxy bool) *Builder {
	if cdn == "" {
		cdn = DefaultCDN
	}
	return &Builder{
		CDN:      strings.TrimRight(cdn, "/"),
		ProxyURL: proxyURL,
		Proxy:    proxy,
	}
}

// WithProxy возвращает копию Builder с заданной настройкой проксирования.
func (b *Builder) WithProxy(enabled bool) *Builder {
	cp := *b
	cp.Proxy = enabled
	return &cp
}

// Proxied заворачивает raw в прокси: <proxy>?url=<escaped>.
func (b *Builder) Proxied(raw string) string {
	if !b.Proxy || b.ProxyURL == "" {
		return raw
	}
	return b.ProxyURL + "?url=" + url.QueryEscape(raw)
}

// ModelImage — PNG модели подарка.
func (b *Builder) ModelImage(giftName, model string) string {
	return b.Proxied(b.asset("models", giftName, "png", model, "png"))
}

// PatternImage — PNG символа-узора.
func (b *Builder) PatternImage(giftName, pattern string) string {
	return b.Proxied(b.asset("patterns", giftName, "png", pattern, "png"))
}

// ModelLottie — Lottie-анимация модели.
func (b *Builder) ModelLottie(giftName, model string) string {
	return b.Proxied(b.asset("models", giftName, "lottie", model, "json"))
}

// Media собирает ссылки для карточки подарка: изображение и анимацию модели,
// а для подарка с номером ещё и ссылку на NFT в Telegram.
func (b *Builder) Media(g models.Gift) models.GiftMedia {
	model := g.Model
	if model == "" {
		model = originalModel
	}
	m := models.GiftMedia{
		Image:     b.ModelImage(g.Name, model),
		Animation: b.ModelLottie(g.Name, model),
	}
	if g.ID > 0 {
		m.TelegramURL = TelegramNFT(g.Name, g.ID)
	}
	return m
}

func (b *Builder) asset(kind, giftName, format, item, ext string) string {
	return fmt.Sprintf("%s/gifts/%s/%s/%s/%s.%s",
		b.CDN, kind, escapeComponent(giftName), format, escapeComponent(item), ext)
}

// escapeComponent экранирует сегмент пути CDN, апостроф всегда как %27.
func escapeComponent(s string) string {
	return componentEscaper.Replace(url.QueryEscape(s))
}

// TelegramNFT возвращает ссылку t.me/nft/<ИмяБезПробелов>-<id>.
func TelegramNFT(giftName string, giftID int64) string {
	return "https://t.me/nft/" + whitespace.ReplaceAllString(giftName, "") + "-" + strconv.FormatInt(giftID, 10)
}
