package router

import (
	"github.com/labstack/echo/v4"

	"github.com/deppfellow/person-api/internal/handler"
)

// registerSystemRoutes registers endpoints that are not part of the
// person API itself:
//  1. the root greeting (the API's "hello world" entry point)
//  2. the health endpoint (used by monitors and load balancers)
func registerSystemRoutes(r *echo.Echo, h *handler.Handlers) {
	r.GET("/", h.Home.Home)

	// Health status endpoint (used by Kubernetes/monitors).
	r.GET("/status", h.Health.CheckHealth)
}
