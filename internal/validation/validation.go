// Package validation contains the logic for validating
// request data.
//
// It uses the `validator` library to enforce rules (like
// required fields, numeric bounds, or email formats) defined in struct
// tags and extracts validation errors into a format the client can
// understand: one FieldError per failing field, each addressed by its
// parameter location (body, query, path, form, header, cookie).
package validation

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/deppfellow/person-api/internal/errs"
)

// Validatable is implemented by request payload types that know how to validate themselves.
//
// Typical pattern:
// - Define a request struct with validator tags (`validate:"required,email"`)
// - Implement Validate() error that runs validation.Struct(req)
// - Return validator.ValidationErrors from it
type Validatable interface {
	Validate() error
}

// validate is the single process-wide validator instance.
//
// Field names in error reports come from the transport tags (json, form,
// query, param, header) rather than the Go field names, so clients see
// "first_name", not "FirstName".
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"json", "form", "query", "param", "header"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name != "" && name != "-" {
				return name
			}
		}
		return fld.Name
	})
	return v
}

// Struct runs the shared validator against v.
//
// Request types call this from their Validate() method so that every
// schema in the application is checked by the same instance with the same
// name mapping.
func Struct(v interface{}) error {
	return validate.Struct(v)
}

// BindAndValidate binds request data into payload and validates it.
//
// Flow:
// 1) c.Bind(payload) populates the request struct from path params, query
//    params, and the body. A failure here is a type-coercion error (e.g.
//    "abc" where an int is expected) and is reported as a 422 with the
//    failing field, same as any other validation error.
// 2) If the payload declares `header` tags, headers are bound too.
// 3) payload.Validate() applies the constraint rules; all failing fields
//    are collected into one 422 response, not just the first.
//
// NOTE: c.Bind expects a pointer to a struct. If payload is not a pointer,
// binding will fail or behave unexpectedly.
func BindAndValidate(c echo.Context, payload Validatable) error {
	if err := c.Bind(payload); err != nil {
		return bindError(payload, err)
	}

	// Echo's Bind does not touch headers, so payloads that read header
	// values (e.g. the contact endpoint's User-Agent) get a second pass.
	if hasHeaderTags(payload) {
		if err := (&echo.DefaultBinder{}).BindHeaders(c, payload); err != nil {
			return bindError(payload, err)
		}
	}

	// Validate struct and return field errors if any.
	if msg, fieldErrors := validateStruct(payload); fieldErrors != nil {
		return errs.NewUnprocessableEntityError(msg, fieldErrors)
	}

	return nil
}

// validateStruct calls v.Validate() and extracts field errors if validation fails.
func validateStruct(v Validatable) (string, []errs.FieldError) {
	if err := v.Validate(); err != nil {
		return extractValidationError(v, err)
	}
	return "", nil
}

// extractValidationError converts a validator error into the client-facing
// field error list.
func extractValidationError(payload Validatable, err error) (string, []errs.FieldError) {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		// Not a field-level failure (validator misuse, unsupported type).
		// Surface it as a single unaddressed error.
		return err.Error(), []errs.FieldError{}
	}

	// Convert validator.ValidationErrors into user-friendly messages.
	// Every failing field ends up in the slice; nothing short-circuits.
	fieldErrors := make([]errs.FieldError, 0, len(validationErrors))
	for _, fe := range validationErrors {
		fieldErrors = append(fieldErrors, errs.FieldError{
			Location: fieldLocation(payload, fe.StructNamespace()),
			Field:    fe.Field(),
			Error:    messageForTag(fe),
		})
	}

	return "Validation failed", fieldErrors
}

// messageForTag maps a failing validator tag to a human-readable message.
func messageForTag(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"

	case "min":
		// min tag means:
		// - for strings: minimum length
		// - for numbers: minimum value
		if fe.Type().Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())

	case "max":
		if fe.Type().Kind() == reflect.String {
			return fmt.Sprintf("must not exceed %s characters", fe.Param())
		}
		return fmt.Sprintf("must not exceed %s", fe.Param())

	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())

	case "lte":
		return fmt.Sprintf("must not exceed %s", fe.Param())

	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())

	case "email":
		return "must be a valid email address"

	default:
		// Fallback for tags not explicitly handled above.
		// Includes tag name and param (if any) to help debugging.
		if fe.Param() != "" {
			return fmt.Sprintf("%s:%s", fe.Tag(), fe.Param())
		}
		return fe.Tag()
	}
}

// bindError translates an Echo binding failure into the 422 contract.
//
// Binding fails before any validator tag runs, but from the client's point
// of view it is the same class of problem: a value that does not fit the
// declared type. Where the failing field is identifiable it is reported
// just like a constraint violation.
func bindError(payload Validatable, err error) *errs.HTTPError {
	// JSON body type mismatches carry the field name and expected type.
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return errs.NewUnprocessableEntityError("Validation failed", []errs.FieldError{{
			Location: errs.LocationBody,
			Field:    typeErr.Field,
			Error:    fmt.Sprintf("must be a valid %s", typeErr.Type),
		}})
	}

	// Path/query/form coercion failures surface as bare strconv errors
	// without a field name. When the payload binds exactly one numeric
	// transport parameter, the failure can only be that field.
	var numErr *strconv.NumError
	if errors.As(err, &numErr) {
		if loc, field, ok := numericParamField(payload); ok {
			return errs.NewUnprocessableEntityError("Validation failed", []errs.FieldError{{
				Location: loc,
				Field:    field,
				Error:    "must be a valid integer",
			}})
		}
	}

	// Anything else (broken JSON, unsupported content type) has no field
	// to point at.
	return errs.NewUnprocessableEntityError("Malformed request", nil)
}
