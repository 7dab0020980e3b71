package handler

// HealthHandler exposes a "system" endpoint that external systems can use
// to verify the service is alive.
//
// This API has no external dependencies (no database, no cache), so the
// check reports process-level facts only: environment and uptime.
import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/deppfellow/person-api/internal/middleware"
	"github.com/deppfellow/person-api/internal/server"
)

// HealthHandler embeds the base Handler to reuse shared server dependencies.
// This endpoint is not "business logic", but embedding keeps handler
// patterns consistent.
type HealthHandler struct {
	Handler
	startedAt time.Time
}

// NewHealthHandler constructs a HealthHandler with access to shared app dependencies.
func NewHealthHandler(s *server.Server) *HealthHandler {
	return &HealthHandler{
		Handler:   NewHandler(s),
		startedAt: time.Now(),
	}
}

// CheckHealth returns system health status.
//
// Response includes:
// - overall status (always healthy: there are no dependencies to degrade)
// - timestamp (UTC)
// - environment (from config)
// - uptime
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	logger := middleware.GetLogger(c).With().
		Str("operation", "health_check").
		Logger()

	response := map[string]interface{}{
		"status":      "healthy",
		"timestamp":   time.Now().UTC(),
		"environment": h.server.Config.Primary.Env,
		"uptime":      time.Since(h.startedAt).String(),
	}

	logger.Info().Msg("health check passed")

	return c.JSON(http.StatusOK, response)
}
