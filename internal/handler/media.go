package handler

import (
	"io"
	"math"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/newrelic"

	"github.com/deppfellow/person-api/internal/errs"
	"github.com/deppfellow/person-api/internal/middleware"
	"github.com/deppfellow/person-api/internal/schema"
	"github.com/deppfellow/person-api/internal/server"
)

// imageFormField is the multipart field name the upload endpoint expects.
const imageFormField = "image"

// MediaHandler serves the image upload endpoint.
//
// Uploads are read once to measure their size and then discarded; nothing
// is written to disk or kept past the request.
type MediaHandler struct {
	Handler
}

// NewMediaHandler constructs a MediaHandler with access to shared dependencies.
func NewMediaHandler(s *server.Server) *MediaHandler {
	return &MediaHandler{
		Handler: NewHandler(s),
	}
}

// UploadImage handles POST /post-image.
//
// It reports the uploaded file's name, declared content type, and size in
// kibibytes rounded to two decimals. The stream is consumed to the end as
// part of the size computation; it is a one-shot read, not a reusable
// resource.
func (h *MediaHandler) UploadImage(c echo.Context, req *schema.UploadImageRequest) (map[string]interface{}, error) {
	logger := middleware.GetLogger(c).With().
		Str("operation", "upload_image").
		Logger()

	file, err := c.FormFile(imageFormField)
	if err != nil {
		return nil, errs.NewUnprocessableEntityError("Validation failed", []errs.FieldError{{
			Location: errs.LocationForm,
			Field:    imageFormField,
			Error:    "is required",
		}})
	}

	src, err := file.Open()
	if err != nil {
		logger.Error().Err(err).Str("filename", file.Filename).Msg("failed to open uploaded file")
		return nil, errs.NewInternalServerError()
	}
	defer func() { _ = src.Close() }()

	size, err := io.Copy(io.Discard, src)
	if err != nil {
		logger.Error().Err(err).Str("filename", file.Filename).Msg("failed to read uploaded file")
		return nil, errs.NewInternalServerError()
	}

	contentType := file.Header.Get(echo.HeaderContentType)

	logger.Info().
		Str("filename", file.Filename).
		Str("content_type", contentType).
		Int64("size_bytes", size).
		Msg("image received")

	// Record a custom event when New Relic is enabled.
	if txn := newrelic.FromContext(c.Request().Context()); txn != nil {
		txn.Application().RecordCustomEvent("ImageUploaded", map[string]interface{}{
			"filename":     file.Filename,
			"content_type": contentType,
			"size_bytes":   size,
		})
	}

	return map[string]interface{}{
		"Filename": file.Filename,
		"Format":   contentType,
		"Size(kb)": Kibibytes(size),
	}, nil
}

// Kibibytes converts a byte count into kibibytes rounded to two decimal
// places (2048 bytes -> 2.0, 1100 bytes -> 1.07).
func Kibibytes(size int64) float64 {
	return math.Round(float64(size)/1024*100) / 100
}
