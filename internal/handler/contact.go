package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/deppfellow/person-api/internal/middleware"
	"github.com/deppfellow/person-api/internal/schema"
	"github.com/deppfellow/person-api/internal/server"
)

// adsCookieName is the optional tracking cookie the contact endpoint reads.
const adsCookieName = "ads"

// ContactHandler serves the contact form endpoint.
//
// It demonstrates three transports in one request: URL-encoded form
// fields, a header (User-Agent), and a cookie (ads). The message itself
// goes nowhere; the endpoint responds with the caller's user agent.
type ContactHandler struct {
	Handler
}

// NewContactHandler constructs a ContactHandler with access to shared dependencies.
func NewContactHandler(s *server.Server) *ContactHandler {
	return &ContactHandler{
		Handler: NewHandler(s),
	}
}

// Contact handles POST /contact.
//
// The form fields and User-Agent header arrive already bound and
// validated. The ads cookie is optional and not part of struct binding,
// so it is read here and only logged.
func (h *ContactHandler) Contact(c echo.Context, req *schema.ContactRequest) (string, error) {
	logger := middleware.GetLogger(c).With().
		Str("operation", "contact").
		Logger()

	event := logger.Info().
		Str("email", req.Email).
		Int("message_length", len(req.Message))

	// c.Cookie returns http.ErrNoCookie when absent; absence is fine.
	if cookie, err := c.Cookie(adsCookieName); err == nil {
		event = event.Str("ads_cookie", cookie.Value)
	}

	event.Msg("contact form received")

	return req.UserAgent, nil
}
