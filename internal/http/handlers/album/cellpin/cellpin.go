// Package cellpin реализует HTTP-обработчик закрепления ячейки.
package cellpin

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/giftoutfit/internal/http/middlewarectx"
	"github.com/magabrotheeeer/giftoutfit/internal/http/params"
	"github.com/magabrotheeeer/giftoutfit/internal/http/response"
	"github.com/magabrotheeeer/giftoutfit/internal/lib/sl"
	"github.com/magabrotheeeer/giftoutfit/internal/models"
)

// Request — новое состояние закрепления.
type Request struct {
	Pinned bool `json:"pinned"`
}

// Handler закрепляет или открепляет ячейку.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает закрепление ячейки.
type Service interface {
	TogglePin(ctx context.Context, ownerID, gridID int64, pos models.CellPosition, pinned bool) error
}

// New создает новый Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary      Закрепить ячейку
// @Tags         Grids
// @Accept       json
// @Produce      json
// @Param        gridID   path  int      true  "ID альбома"
// @Param        row      path  int      true  "Индекс строки"
// @Param        cell     path  int      true  "Индекс ячейки (0-2)"
// @Param        request  body  Request  true  "Закрепить или открепить"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.ErrorResponse
// @Failure      401  {object}  response.ErrorResponse
// @Failure      502  {object}  response.ErrorResponse
// @Security     TelegramInitData
// @Router       /api/v1/grids/{gridID}/cells/{row}/{cell}/pin [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.album.cellpin"

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
	var pos models.CellPosition
	if err == nil {
		pos.RowIndex, err = params.Int(r, "row")
	}
	if err == nil {
		pos.CellIndex, err = params.Int(r, "cell")
	}
	if err == nil && pos.CellIndex >= models.GridWidth {
		err = fmt.Errorf("invalid cell: must be below %d", models.GridWidth)
	}
	if err != nil {
		log.Info("failed to decode cell address from url", sl.Err(err))
		response.WriteError(w, r, http.StatusBadRequest, "failed to decode cell address from url")
		return
	}

	var req Request
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		log.Info("failed to decode request body", sl.Err(err))
		response.WriteError(w, r, http.StatusBadRequest, response.MsgDecodeFailed)
		return
	}

	if err := h.service.TogglePin(r.Context(), ownerID, gridID, pos, req.Pinned); err != nil {
		log.Error("failed to toggle pin", sl.Err(err))
		response.WriteBackendError(w, r, err)
		return
	}

	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"position": pos,
		"pinned":   req.Pinned,
	}))
}
