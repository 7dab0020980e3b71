package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/deppfellow/person-api/internal/server"
)

// HomeHandler serves the root greeting endpoint.
//
// The endpoint takes no inputs, so it skips the typed pipeline and writes
// its response directly.
type HomeHandler struct {
	Handler
}

// NewHomeHandler constructs a HomeHandler with access to shared dependencies.
func NewHomeHandler(s *server.Server) *HomeHandler {
	return &HomeHandler{
		Handler: NewHandler(s),
	}
}

// Home returns the fixed greeting payload.
func (h *HomeHandler) Home(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"Hello": "World!"})
}
