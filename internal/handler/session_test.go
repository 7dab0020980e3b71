package handler_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/deppfellow/person-api/internal/errs"
)

func postForm(t *testing.T, r *echo.Echo, target string, form url.Values, mutate func(*http.Request)) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	if mutate != nil {
		mutate(req)
	}

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestLogin(t *testing.T) {
	r := newTestRouter(t)

	form := url.Values{}
	form.Set("username", "pedro")
	form.Set("password", "s3cr3t")

	rec := postForm(t, r, "/login", form, nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	// The password is required but never echoed back.
	assert.JSONEq(t, `{"username":"pedro","message":"Login Succesfully!"}`, rec.Body.String())
}

func TestLoginMissingPassword(t *testing.T) {
	r := newTestRouter(t)

	form := url.Values{}
	form.Set("username", "pedro")

	rec := postForm(t, r, "/login", form, nil)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	httpErr := decodeHTTPError(t, rec)
	fe := findFieldError(t, httpErr.Errors, "password")
	assert.Equal(t, errs.LocationForm, fe.Location)
	assert.Equal(t, "is required", fe.Error)
}

func TestLoginUsernameTooLong(t *testing.T) {
	r := newTestRouter(t)

	form := url.Values{}
	form.Set("username", strings.Repeat("p", 21))
	form.Set("password", "s3cr3t")

	rec := postForm(t, r, "/login", form, nil)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	httpErr := decodeHTTPError(t, rec)
	fe := findFieldError(t, httpErr.Errors, "username")
	assert.Equal(t, errs.LocationForm, fe.Location)
	assert.Equal(t, "must not exceed 20 characters", fe.Error)
}

func contactForm() url.Values {
	form := url.Values{}
	form.Set("first_name", "Miguel")
	form.Set("last_name", "Gonzalez")
	form.Set("email", "miguel@example.com")
	form.Set("message", "This message is long enough to pass.")
	return form
}

func TestContact(t *testing.T) {
	r := newTestRouter(t)

	rec := postForm(t, r, "/contact", contactForm(), func(req *http.Request) {
		req.Header.Set("User-Agent", "test-agent/1.0")
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	// The endpoint answers with the caller's user agent, JSON-encoded.
	assert.JSONEq(t, `"test-agent/1.0"`, rec.Body.String())
}

func TestContactWithAdsCookie(t *testing.T) {
	r := newTestRouter(t)

	rec := postForm(t, r, "/contact", contactForm(), func(req *http.Request) {
		req.Header.Set("User-Agent", "test-agent/1.0")
		req.AddCookie(&http.Cookie{Name: "ads", Value: "tracker-42"})
	})

	// The cookie is optional and only logged; the response is unchanged.
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `"test-agent/1.0"`, rec.Body.String())
}

func TestContactValidationErrors(t *testing.T) {
	r := newTestRouter(t)

	form := contactForm()
	form.Set("email", "not-an-email")
	form.Set("message", "too short")

	rec := postForm(t, r, "/contact", form, nil)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	httpErr := decodeHTTPError(t, rec)
	assert.Len(t, httpErr.Errors, 2)

	email := findFieldError(t, httpErr.Errors, "email")
	assert.Equal(t, errs.LocationForm, email.Location)
	assert.Equal(t, "must be a valid email address", email.Error)

	message := findFieldError(t, httpErr.Errors, "message")
	assert.Equal(t, errs.LocationForm, message.Location)
	assert.Equal(t, "must be at least 20 characters", message.Error)
}
