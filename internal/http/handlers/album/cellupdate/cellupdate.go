// Package cellupdate реализует HTTP-обработчик записи подарка в ячейку альбома.
//
// Подарок заменяется целиком; "gift": null очищает ячейку.
package cellupdate

import (
	"context"
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
)

// Request — тело запроса. Gift == nil очищает ячейку.
type Request struct {
	Gift *models.Gift `json:"gift"`
}

// Handler обновляет ячейку альбома.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает обновление ячейки.
type Service interface {
	UpdateCell(ctx context.Context, ownerID, gridID int64, pos models.CellPosition, gift *models.Gift) error
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
// @Summary      Записать подарок в ячейку
// @Tags         Grids
// @Accept       json
// @Produce      json
// @Param        gridID   path  int      true  "ID альбома"
// @Param        row      path  int      true  "Индекс строки"
// @Param        cell     path  int      true  "Индекс ячейки (0-2)"
// @Param        request  body  Request  true  "Подарок или null"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.ErrorResponse
// @Failure      401  {object}  response.ErrorResponse
// @Failure      422  {object}  response.ErrorResponse
// @Failure      502  {object}  response.ErrorResponse
// @Security     TelegramInitData
// @Router       /api/v1/grids/{gridID}/rows/{row}/cells/{cell} [put]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.album.cellupdate"

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
	var pos models.CellPosition
	if pos.RowIndex, err = params.Int(r, "row"); err == nil {
		pos.CellIndex, err = params.Int(r, "cell")
	}
	if err != nil {
		log.Info("failed to decode cell position from url", sl.Err(err))
		response.WriteError(w, r, http.StatusBadRequest, "failed to decode cell position from url")
		return
	}

	var req Request
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		log.Info("failed to decode request body", sl.Err(err))
		response.WriteError(w, r, http.StatusBadRequest, response.MsgDecodeFailed)
		return
	}
	if err := h.validate.Struct(pos); err != nil {
		log.Info("cell position is out of range", sl.Err(err))
		response.WriteValidationError(w, r, err)
		return
	}
	if req.Gift != nil {
		if err := h.validate.Struct(req.Gift); err != nil {
			log.Info("validation failed", sl.Err(err))
			response.WriteValidationError(w, r, err)
			return
		}
	}

	if err := h.service.UpdateCell(r.Context(), ownerID, gridID, pos, req.Gift); err != nil {
		log.Error("failed to update cell", sl.Err(err))
		response.WriteBackendError(w, r, err)
		return
	}

	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"grid_id":  gridID,
		"position": pos,
		"gift":     req.Gift,
	}))
}
