package schema

import "github.com/deppfellow/person-api/internal/validation"

// ShowPersonRequest carries the query parameters of GET /person/detail.
//
// Name is optional but, when present, must be 1-50 characters. Age is
// required and deliberately kept a string: the endpoint demonstrates a
// required query parameter that is echoed back untyped.
type ShowPersonRequest struct {
	Name string `query:"name" validate:"omitempty,min=1,max=50"`
	Age  string `query:"age" validate:"required"`
}

func (r *ShowPersonRequest) Validate() error {
	return validation.Struct(r)
}

// PersonDetailRequest carries the path parameter of GET /person/detail/:person_id.
//
// The id must be a positive integer. A non-integer value never reaches the
// validator: binding fails first and is reported as a type error for the
// same field.
type PersonDetailRequest struct {
	PersonID int `param:"person_id" validate:"gt=0"`
}

func (r *PersonDetailRequest) Validate() error {
	return validation.Struct(r)
}

// UpdatePersonRequest carries PUT /person/:person_id: a positive id from
// the path plus a JSON body holding both a person and a location, each
// under its own key:
//
//	{"person": {...}, "location": {...}}
type UpdatePersonRequest struct {
	PersonID int      `param:"person_id" validate:"gt=0"`
	Person   Person   `json:"person"`
	Location Location `json:"location"`
}

func (r *UpdatePersonRequest) Validate() error {
	return validation.Struct(r)
}

// LoginRequest carries the URL-encoded form fields of POST /login.
//
// No credential check happens anywhere: the password is required so the
// form validates, then discarded.
type LoginRequest struct {
	Username string `form:"username" validate:"required,max=20"`
	Password string `form:"password" validate:"required"`
}

func (r *LoginRequest) Validate() error {
	return validation.Struct(r)
}

// LoginOut is the response shape of POST /login. The password never
// appears here.
type LoginOut struct {
	Username string `json:"username" validate:"max=20"`
	Message  string `json:"message"`
}

// NewLoginOut builds the login response with its fixed message.
func NewLoginOut(username string) LoginOut {
	return LoginOut{
		Username: username,
		Message:  "Login Succesfully!",
	}
}

// ContactRequest carries the form fields of POST /contact plus the
// User-Agent header. The handler reads the optional "ads" cookie straight
// from the request, since cookies are not part of struct binding.
type ContactRequest struct {
	FirstName string `form:"first_name" validate:"required,min=1,max=20"`
	LastName  string `form:"last_name" validate:"required,min=1,max=20"`
	Email     string `form:"email" validate:"required,email"`
	Message   string `form:"message" validate:"required,min=20"`

	// UserAgent is filled from the User-Agent header during binding.
	UserAgent string `form:"-" header:"User-Agent"`
}

func (r *ContactRequest) Validate() error {
	return validation.Struct(r)
}

// UploadImageRequest is the (empty) payload of POST /post-image.
//
// The multipart file itself is read from the request in the handler;
// there is nothing to bind or tag-validate, but keeping a request type
// lets the endpoint run through the same pipeline as everything else.
type UploadImageRequest struct{}

func (r *UploadImageRequest) Validate() error {
	return nil
}
