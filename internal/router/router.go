// Package router initializes the HTTP router (using Echo).
//
// It registers the middlewares and defines the API route groups,
// mapping specific paths to their corresponding handlers
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/deppfellow/person-api/internal/handler"
	"github.com/deppfellow/person-api/internal/middleware"
	"github.com/deppfellow/person-api/internal/server"
)

// Setup builds the Echo instance: global error handler, middleware chain,
// and all routes. It is called once at startup; the resulting route table
// is never mutated afterwards.
//
// Middleware order matters:
//  1. New Relic first, so a transaction exists for everything below
//  2. RequestID, so the context enhancer can pick it up
//  3. ContextEnhancer, so every later stage logs with request fields
//  4. EnhanceTracing + RequestLogger, which consume both of the above
//  5. CORS/Secure/Recover around the handlers themselves
func Setup(s *server.Server, m *middleware.Middlewares, h *handler.Handlers) *echo.Echo {
	r := echo.New()
	r.HideBanner = true
	r.HidePort = true

	// Every error from any handler or middleware funnels through here.
	r.HTTPErrorHandler = m.Global.GlobalErrorHandler

	r.Use(m.Tracing.NewRelicMiddleware())
	r.Use(middleware.RequestID())
	r.Use(m.ContextEnhancer.EnhanceContext())
	r.Use(m.Tracing.EnhanceTracing())
	r.Use(m.Global.RequestLogger())
	r.Use(m.Global.CORS())
	r.Use(m.Global.Secure())
	r.Use(m.Global.Recover())

	registerSystemRoutes(r, h)
	registerPersonRoutes(r, h)

	return r
}
