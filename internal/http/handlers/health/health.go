// Package health реализует проверку живости шлюза.
package health

import (
	"net/http"

	"github.com/go-chi/render"

	"github.com/magabrotheeeer/giftoutfit/internal/http/response"
)

// Handler отвечает на проверку живости.
type Handler struct{}

// New создает новый Handler.
func New() *Handler {
	return &Handler{}
}

// ServeHTTP godoc
// @Summary      Проверка живости
// @Tags         Health
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /api/v1/health [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"status": "ok",
	}))
}
