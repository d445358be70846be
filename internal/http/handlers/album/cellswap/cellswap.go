// Package cellswap реализует HTTP-обработчик перестановки двух ячеек альбома.
//
// Перестановка применяется к кэшу сразу и откатывается, если бэкенд её не принял.
// Закреплённые ячейки переставлять нельзя.
package cellswap

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/giftoutfit/internal/http/middlewarectx"
	"github.com/magabrotheeeer/giftoutfit/internal/http/params"
	"github.com/magabrotheeeer/giftoutfit/internal/http/response"
	"github.com/magabrotheeeer/giftoutfit/internal/lib/sl"
	"github.com/magabrotheeeer/giftoutfit/internal/models"
	"github.com/magabrotheeeer/giftoutfit/internal/services/album"
)

// Request — пара ячеек для перестановки.
type Request struct {
	Source models.CellPosition `json:"source"`
	Target models.CellPosition `json:"target"`
}

// Handler переставляет ячейки.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает перестановку ячеек.
type Service interface {
	Swap(ctx context.Context, ownerID, gridID int64, src, dst models.CellPosition) ([]models.Grid, error)
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
// @Summary      Переставить ячейки
// @Description  Меняет местами содержимое двух ячеек. Возвращает альбомы после перестановки.
// @Tags         Grids
// @Accept       json
// @Produce      json
// @Param        gridID   path  int      true  "ID альбома"
// @Param        request  body  Request  true  "Исходная и целевая ячейки"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.ErrorResponse
// @Failure      401  {object}  response.ErrorResponse
// @Failure      404  {object}  response.ErrorResponse  "Ячейка или альбом не найдены"
// @Failure      409  {object}  response.ErrorResponse  "Ячейка закреплена"
// @Failure      422  {object}  response.ErrorResponse
// @Failure      502  {object}  response.ErrorResponse  "Бэкенд не принял перестановку, изменения откатены"
// @Security     TelegramInitData
// @Router       /api/v1/grids/{gridID}/cells/swap [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.album.cellswap"

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
	gridID, err := params.Int64(r, "gridID")
	if err != nil {
		log.Info("failed to decode grid id from url", sl.Err(err))
		response.WriteError(w, r, http.StatusBadRequest, "failed to decode grid id from url")
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

	grids, err := h.service.Swap(r.Context(), ownerID, gridID, req.Source, req.Target)
	switch {
	case errors.Is(err, album.ErrPinnedCell):
		log.Info("attempt to move pinned cell", slog.Int64("grid_id", gridID))
		response.WriteError(w, r, http.StatusConflict, "pinned cell cannot be moved")
		return
	case errors.Is(err, album.ErrCellNotFound), errors.Is(err, album.ErrGridNotFound):
		log.Info("swap target not found", sl.Err(err))
		response.WriteError(w, r, http.StatusNotFound, "cell not found")
		return
	case err != nil:
		log.Error("failed to swap cells", sl.Err(err))
		response.WriteBackendError(w, r, err)
		return
	}

	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"grids": grids,
	}))
}
