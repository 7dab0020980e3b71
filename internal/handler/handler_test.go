package handler_test

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/person-api/internal/config"
	"github.com/deppfellow/person-api/internal/errs"
	"github.com/deppfellow/person-api/internal/handler"
	"github.com/deppfellow/person-api/internal/logger"
	"github.com/deppfellow/person-api/internal/middleware"
	"github.com/deppfellow/person-api/internal/router"
	"github.com/deppfellow/person-api/internal/server"
)

// newTestRouter assembles the full application stack (config defaults,
// silent logger, middleware chain, routes) so tests exercise the same
// pipeline production requests go through, error funnel included.
func newTestRouter(t *testing.T) *echo.Echo {
	t.Helper()

	cfg := config.Default()
	cfg.Observability = config.DefaultObservabilityConfig()

	log := zerolog.Nop()

	svc, err := logger.NewService(cfg, &log)
	require.NoError(t, err)

	s, err := server.New(cfg, &log, svc)
	require.NoError(t, err)

	return router.Setup(s, middleware.NewMiddlewares(s), handler.NewHandlers(s))
}

// decodeJSON unmarshals the recorded response body into out.
func decodeJSON(t *testing.T, rec *httptest.ResponseRecorder, out interface{}) {
	t.Helper()

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(body, out), "body: %s", string(body))
}

// decodeHTTPError unmarshals the recorded response body into the error
// envelope the global error handler writes.
func decodeHTTPError(t *testing.T, rec *httptest.ResponseRecorder) errs.HTTPError {
	t.Helper()

	var httpErr errs.HTTPError
	decodeJSON(t, rec, &httpErr)
	return httpErr
}

// findFieldError returns the first field error for the given field name,
// failing the test when none is present.
func findFieldError(t *testing.T, fieldErrors []errs.FieldError, field string) errs.FieldError {
	t.Helper()

	for _, fe := range fieldErrors {
		if fe.Field == field {
			return fe
		}
	}
	t.Fatalf("no error reported for field %q in %v", field, fieldErrors)
	return errs.FieldError{}
}
