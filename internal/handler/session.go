package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/deppfellow/person-api/internal/schema"
	"github.com/deppfellow/person-api/internal/server"
)

// SessionHandler serves the login form endpoint.
//
// No credential check happens: the endpoint demonstrates required form
// fields, and the password is validated for presence only, then dropped.
type SessionHandler struct {
	Handler
}

// NewSessionHandler constructs a SessionHandler with access to shared dependencies.
func NewSessionHandler(s *server.Server) *SessionHandler {
	return &SessionHandler{
		Handler: NewHandler(s),
	}
}

// Login handles POST /login. It echoes the username with the fixed
// success message; the password never appears in the response.
func (h *SessionHandler) Login(c echo.Context, req *schema.LoginRequest) (schema.LoginOut, error) {
	return schema.NewLoginOut(req.Username), nil
}
