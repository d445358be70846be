// Package gridcreate реализует HTTP-обработчик создания альбома.
package gridcreate

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/giftoutfit/internal/http/middlewarectx"
	"github.com/magabrotheeeer/giftoutfit/internal/http/response"
	"github.com/magabrotheeeer/giftoutfit/internal/lib/sl"
)

// Request — тело запроса на создание альбома.
type Request struct {
	Name string `json:"name" validate:"required,max=64"`
}

// Handler создаёт альбом текущего пользователя.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает создание альбома.
type Service interface {
	Create(ctx context.Context, ownerID int64, name string) error
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
// @Summary      Создать альбом
// @Tags         Grids
// @Accept       json
// @Produce      json
// @Param        request  body  Request  true  "Название альбома"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.ErrorResponse
// @Failure      401  {object}  response.ErrorResponse
// @Failure      422  {object}  response.ErrorResponse
// @Failure      502  {object}  response.ErrorResponse
// @Security     TelegramInitData
// @Router       /api/v1/me/grids [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.album.gridcreate"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	ownerID, ok := middlewarectx.UserID(r.Context())
	if !ok {
		log.Error("user not found in context")
		response.WriteError(w, r, http.StatusUnauthorized, response.MsgUnauthorized)
		return
	}

	var req Request
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		log.Info("failed to decode request body", sl.Err(err))
		response.WriteError(w, r, http.StatusBadRequest, response.MsgDecodeFailed)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		log.Info("validation failed", sl.Err(err))
		response.WriteValidationError(w, r, err)
		return
	}

	if err := h.service.Create(r.Context(), ownerID, req.Name); err != nil {
		log.Error("failed to create grid", sl.Err(err))
		response.WriteBackendError(w, r, err)
		return
	}

	log.Info("grid created", sl.UserID(ownerID))
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"name": req.Name,
	}))
}
