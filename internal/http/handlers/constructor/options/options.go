// Package options реализует HTTP-обработчик вариантов выбора атрибута подарка.
package options

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/giftoutfit/internal/http/response"
	"github.com/magabrotheeeer/giftoutfit/internal/lib/sl"
	"github.com/magabrotheeeer/giftoutfit/internal/services/constructor"
)

// Query — параметры запроса вариантов.
// ImageProxy — настройка пользователя, пустое значение оставляет настройку шлюза.
type Query struct {
	Field      string `validate:"required,oneof=gifts model background pattern"`
	Mode       string `validate:"omitempty,oneof=constructor freeform"`
	ImageProxy string `validate:"omitempty,oneof=true false"`
}

// Handler отдаёт варианты для выбранного поля.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает построение вариантов.
type Service interface {
	Options(ctx context.Context, field constructor.Field, mode constructor.Mode, sel constructor.Selection) ([]constructor.DrawerItem, error)
}

// New создает новый Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary      Варианты атрибута
// @Description  Варианты для поля с учётом уже выбранных атрибутов. Без нужных предыдущих атрибутов список пуст.
// @Tags         Constructor
// @Produce      json
// @Param        field       query  string  true   "gifts, model, background или pattern"
// @Param        mode        query  string  false  "constructor (по умолчанию) или freeform"
// @Param        collection  query  string  false  "Выбранная коллекция"
// @Param        model       query  string  false  "Выбранная модель"
// @Param        backdrop    query  string  false  "Выбранный фон"
// @Param        image_proxy query  bool    false  "Загружать изображения через прокси"
// @Success      200  {object}  response.Response
// @Failure      422  {object}  response.ErrorResponse
// @Failure      502  {object}  response.ErrorResponse
// @Security     TelegramInitData
// @Router       /api/v1/constructor/options [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.constructor.options"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	q := r.URL.Query()
	query := Query{Field: q.Get("field"), Mode: q.Get("mode"), ImageProxy: q.Get("image_proxy")}
	if err := h.validate.Struct(query); err != nil {
		log.Info("validation failed", sl.Err(err))
		response.WriteValidationError(w, r, err)
		return
	}
	mode, _ := constructor.ParseMode(query.Mode)
	sel := constructor.Selection{
		Collection: q.Get("collection"),
		Model:      q.Get("model"),
		Backdrop:   q.Get("backdrop"),
	}

	ctx := r.Context()
	if query.ImageProxy != "" {
		ctx = constructor.WithImageProxy(ctx, query.ImageProxy == "true")
	}

	items, err := h.service.Options(ctx, constructor.Field(query.Field), mode, sel)
	if err != nil {
		log.Error("failed to build options", sl.Err(err), slog.String("field", query.Field))
		response.WriteBackendError(w, r, err)
		return
	}

	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"field": query.Field,
		"items": items,
	}))
}
