package validation_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/person-api/internal/errs"
	"github.com/deppfellow/person-api/internal/schema"
	"github.com/deppfellow/person-api/internal/validation"
)

// newJSONContext builds an Echo context carrying a JSON body.
func newJSONContext(t *testing.T, method, target, body string) echo.Context {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return e.NewContext(req, httptest.NewRecorder())
}

// newFormContext builds an Echo context carrying a URL-encoded form body.
func newFormContext(t *testing.T, target string, form url.Values) echo.Context {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	return e.NewContext(req, httptest.NewRecorder())
}

// asHTTPError asserts err is the 422 validation contract and returns it.
func asHTTPError(t *testing.T, err error) *errs.HTTPError {
	t.Helper()

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	return httpErr
}

// findField returns the first field error matching the given field name.
func findField(t *testing.T, fieldErrors []errs.FieldError, field string) errs.FieldError {
	t.Helper()

	for _, fe := range fieldErrors {
		if strings.Contains(fe.Field, field) {
			return fe
		}
	}
	t.Fatalf("no error reported for field %q in %v", field, fieldErrors)
	return errs.FieldError{}
}

func TestBindAndValidateSuccess(t *testing.T) {
	c := newJSONContext(t, http.MethodPost, "/person/new",
		`{"first_name":"Ana","last_name":"Lopez","age":30,"password":"secret123"}`)

	p := &schema.Person{}
	require.NoError(t, validation.BindAndValidate(c, p))

	assert.Equal(t, "Ana", p.FirstName)
	assert.Equal(t, 30, p.Age)
	assert.Nil(t, p.HairColor)
}

func TestBindAndValidateCollectsAllBodyErrors(t *testing.T) {
	c := newJSONContext(t, http.MethodPost, "/person/new",
		`{"first_name":"","last_name":"Lopez","age":200,"hair_color":"Brown","password":"short"}`)

	httpErr := asHTTPError(t, validation.BindAndValidate(c, &schema.Person{}))

	assert.Equal(t, http.StatusUnprocessableEntity, httpErr.Status)
	assert.Equal(t, "Validation failed", httpErr.Message)
	assert.Len(t, httpErr.Errors, 4)

	firstName := findField(t, httpErr.Errors, "first_name")
	assert.Equal(t, errs.LocationBody, firstName.Location)
	assert.Equal(t, "is required", firstName.Error)

	age := findField(t, httpErr.Errors, "age")
	assert.Equal(t, "must not exceed 115", age.Error)

	hair := findField(t, httpErr.Errors, "hair_color")
	assert.Equal(t, "must be one of: white brown black blonde red", hair.Error)

	password := findField(t, httpErr.Errors, "password")
	assert.Equal(t, "must be at least 8 characters", password.Error)
}

func TestBindAndValidateBodyTypeError(t *testing.T) {
	c := newJSONContext(t, http.MethodPost, "/person/new",
		`{"first_name":"Ana","last_name":"Lopez","age":"thirty","password":"secret123"}`)

	httpErr := asHTTPError(t, validation.BindAndValidate(c, &schema.Person{}))

	assert.Equal(t, http.StatusUnprocessableEntity, httpErr.Status)
	require.Len(t, httpErr.Errors, 1)

	fe := findField(t, httpErr.Errors, "age")
	assert.Equal(t, errs.LocationBody, fe.Location)
	assert.Equal(t, "must be a valid int", fe.Error)
}

func TestBindAndValidateMalformedJSON(t *testing.T) {
	c := newJSONContext(t, http.MethodPost, "/person/new", `{"first_name":`)

	httpErr := asHTTPError(t, validation.BindAndValidate(c, &schema.Person{}))

	assert.Equal(t, http.StatusUnprocessableEntity, httpErr.Status)
	assert.Empty(t, httpErr.Errors)
}

func TestBindAndValidateQueryLocation(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/person/detail?name=Rocio", nil)
	c := e.NewContext(req, httptest.NewRecorder())

	httpErr := asHTTPError(t, validation.BindAndValidate(c, &schema.ShowPersonRequest{}))

	require.Len(t, httpErr.Errors, 1)
	assert.Equal(t, errs.LocationQuery, httpErr.Errors[0].Location)
	assert.Equal(t, "age", httpErr.Errors[0].Field)
	assert.Equal(t, "is required", httpErr.Errors[0].Error)
}

func TestBindAndValidateQueryBounds(t *testing.T) {
	e := echo.New()
	longName := strings.Repeat("x", 51)
	req := httptest.NewRequest(http.MethodGet, "/person/detail?age=25&name="+longName, nil)
	c := e.NewContext(req, httptest.NewRecorder())

	httpErr := asHTTPError(t, validation.BindAndValidate(c, &schema.ShowPersonRequest{}))

	fe := findField(t, httpErr.Errors, "name")
	assert.Equal(t, errs.LocationQuery, fe.Location)
	assert.Equal(t, "must not exceed 50 characters", fe.Error)
}

func TestBindAndValidatePathParamNotPositive(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c := e.NewContext(req, httptest.NewRecorder())
	c.SetPath("/person/detail/:person_id")
	c.SetParamNames("person_id")
	c.SetParamValues("0")

	httpErr := asHTTPError(t, validation.BindAndValidate(c, &schema.PersonDetailRequest{}))

	require.Len(t, httpErr.Errors, 1)
	assert.Equal(t, errs.LocationPath, httpErr.Errors[0].Location)
	assert.Equal(t, "person_id", httpErr.Errors[0].Field)
	assert.Equal(t, "must be greater than 0", httpErr.Errors[0].Error)
}

func TestBindAndValidatePathParamNotInteger(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c := e.NewContext(req, httptest.NewRecorder())
	c.SetPath("/person/detail/:person_id")
	c.SetParamNames("person_id")
	c.SetParamValues("abc")

	httpErr := asHTTPError(t, validation.BindAndValidate(c, &schema.PersonDetailRequest{}))

	assert.Equal(t, http.StatusUnprocessableEntity, httpErr.Status)
	require.Len(t, httpErr.Errors, 1)
	assert.Equal(t, errs.LocationPath, httpErr.Errors[0].Location)
	assert.Equal(t, "person_id", httpErr.Errors[0].Field)
	assert.Equal(t, "must be a valid integer", httpErr.Errors[0].Error)
}

func TestBindAndValidateMixedLocations(t *testing.T) {
	// One request type binding a path parameter and a JSON body: errors
	// from both transports are reported with their own locations.
	c := newJSONContext(t, http.MethodPut, "/person/1",
		`{"person":{"first_name":"Ana","last_name":"Lopez","age":30,"password":"secret123"},"location":{"city":"","state":"NY","country":"USA"}}`)
	c.SetPath("/person/:person_id")
	c.SetParamNames("person_id")
	c.SetParamValues("1")

	httpErr := asHTTPError(t, validation.BindAndValidate(c, &schema.UpdatePersonRequest{}))

	fe := findField(t, httpErr.Errors, "city")
	assert.Equal(t, errs.LocationBody, fe.Location)
	assert.Equal(t, "is required", fe.Error)
}

func TestBindAndValidateFormAndHeader(t *testing.T) {
	form := url.Values{}
	form.Set("first_name", "Miguel")
	form.Set("last_name", "Gonzalez")
	form.Set("email", "miguel@example.com")
	form.Set("message", "This message is long enough to pass.")

	c := newFormContext(t, "/contact", form)
	c.Request().Header.Set("User-Agent", "test-agent/1.0")

	contact := &schema.ContactRequest{}
	require.NoError(t, validation.BindAndValidate(c, contact))

	assert.Equal(t, "Miguel", contact.FirstName)
	assert.Equal(t, "test-agent/1.0", contact.UserAgent)
}

func TestBindAndValidateFormErrors(t *testing.T) {
	form := url.Values{}
	form.Set("first_name", "Miguel")
	form.Set("last_name", "Gonzalez")
	form.Set("email", "not-an-email")
	form.Set("message", "too short")

	c := newFormContext(t, "/contact", form)

	httpErr := asHTTPError(t, validation.BindAndValidate(c, &schema.ContactRequest{}))

	email := findField(t, httpErr.Errors, "email")
	assert.Equal(t, errs.LocationForm, email.Location)
	assert.Equal(t, "must be a valid email address", email.Error)

	message := findField(t, httpErr.Errors, "message")
	assert.Equal(t, errs.LocationForm, message.Location)
	assert.Equal(t, "must be at least 20 characters", message.Error)
}
