// Package errs define custom error types and utilities.
//
// Its purpose is to create specific error structures..
// (e.g. FieldErrors for invalid input or HTTPError for API responses)..
// to ensure the client receive meaningful, actionable, and consistent..
// error messages.
//
// - Return consistent error shapes to API clients (JSON).
// - Support field-level validation errors addressed by parameter location.
// - Provide errors that play nicely with Go's standard errors package.
package errs

import "strings"

// ParamLocation identifies where in the request a failing parameter came from.
//
// The same field name can appear in several transports (a "name" query
// parameter vs a "name" body field), so every field error is addressed by
// (location, field), not by field alone.
type ParamLocation string

const (
	LocationBody   ParamLocation = "body"
	LocationQuery  ParamLocation = "query"
	LocationPath   ParamLocation = "path"
	LocationForm   ParamLocation = "form"
	LocationHeader ParamLocation = "header"
	LocationCookie ParamLocation = "cookie"
)

// FieldError represents a single field-level validation error.
// Example:
//
//	{ "location": "body", "field": "age", "error": "must not exceed 115" }
type FieldError struct {
	// Location says which part of the request the field was read from
	// (body, query, path, form, header, cookie).
	Location ParamLocation `json:"location"`

	// Field is the field name/key the error relates to (e.g. "age").
	Field string `json:"field"`

	// Error is the human-readable error message.
	Error string `json:"error"`
}

// HTTPError is the main custom error type for API responses.
//
// It implements the `error` interface via Error().
// It is designed to be serialized directly to JSON.
// Fields:
//   - Code: machine-friendly error code (e.g. "UNPROCESSABLE_ENTITY").
//   - Message: human-friendly message.
//   - Status: HTTP status code.
//   - Override: flag to let middleware decide whether to override the message.
//   - Errors: list of per-field errors (validation), collected across all
//     failing fields rather than stopping at the first one.
//   - Detail: optional compact representation. When set, the global error
//     handler writes {"detail": "..."} instead of the full envelope. Used
//     where a response body is pinned by an external contract.
type HTTPError struct {
	Code     string `json:"code"`
	Message  string `json:"message"`
	Status   int    `json:"status"`
	Override bool   `json:"override"`

	// Errors holds field-level validation errors.
	Errors []FieldError `json:"errors"`

	// Detail is not part of the envelope itself.
	Detail string `json:"-"`
}

// Error makes *HTTPError satisfy the built-in `error` interface.
func (e *HTTPError) Error() string {
	return e.Message
}

// Is customizes how errors.Is(...) treats HTTPError.
//
// It only checks whether the target is the same *type* (*HTTPError);
// Code/Status are not compared.
func (e *HTTPError) Is(target error) bool {
	_, ok := target.(*HTTPError)
	return ok
}

// WithMessage returns a *copy* of this HTTPError with Message replaced.
//
// Useful if you have a base error template and want to customize message
// without mutating the original.
func (e *HTTPError) WithMessage(message string) *HTTPError {
	return &HTTPError{
		Code:     e.Code,
		Message:  message,
		Status:   e.Status,
		Override: e.Override,
		Errors:   e.Errors,
		Detail:   e.Detail,
	}
}

// WithDetail returns a *copy* of this HTTPError with Detail set.
//
// Responses carrying a Detail are rendered as {"detail": "..."} by the
// global error handler.
func (e *HTTPError) WithDetail(detail string) *HTTPError {
	return &HTTPError{
		Code:     e.Code,
		Message:  e.Message,
		Status:   e.Status,
		Override: e.Override,
		Errors:   e.Errors,
		Detail:   detail,
	}
}

// MakeUpperCaseWithUnderscores converts a string into an UPPER_CASE_WITH_UNDERSCORES format.
//
// Example:
//
//	"Unprocessable Entity" -> "UNPROCESSABLE_ENTITY"
//
// Used to create stable machine-readable error codes from HTTP status text.
func MakeUpperCaseWithUnderscores(str string) string {
	return strings.ToUpper(strings.ReplaceAll(str, " ", "_"))
}
