package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/deppfellow/person-api/internal/errs"
	"github.com/deppfellow/person-api/internal/registry"
	"github.com/deppfellow/person-api/internal/schema"
	"github.com/deppfellow/person-api/internal/server"
)

// personNotFoundDetail is the exact body clients receive when a person id
// is not in the reference set.
const personNotFoundDetail = "¡This person doesn't exist!"

// PersonHandler serves person creation, lookup, and update.
//
// Every endpoint here is a validation demonstration over request-scoped
// values: nothing is stored, and the only lookup consults a fixed id set.
type PersonHandler struct {
	Handler
	knownIDs registry.PersonIDs
}

// NewPersonHandler constructs a PersonHandler with access to shared
// dependencies and the reference set of known person ids.
func NewPersonHandler(s *server.Server, knownIDs registry.PersonIDs) *PersonHandler {
	return &PersonHandler{
		Handler:  NewHandler(s),
		knownIDs: knownIDs,
	}
}

// CreatePerson handles POST /person/new.
//
// The person arrives fully validated; the handler only projects it into
// the output shape, which drops the password.
func (h *PersonHandler) CreatePerson(c echo.Context, req *schema.Person) (schema.PersonOut, error) {
	return req.Out(), nil
}

// ShowPerson handles GET /person/detail.
//
// It echoes the query parameters back as a single-entry object keyed by
// the name. An absent name keys the entry as "null", mirroring how the
// response looked before the name parameter became optional.
func (h *PersonHandler) ShowPerson(c echo.Context, req *schema.ShowPersonRequest) (map[string]string, error) {
	name := req.Name
	if name == "" {
		name = "null"
	}
	return map[string]string{name: req.Age}, nil
}

// ShowPersonDetail handles GET /person/detail/:person_id.
//
// The id was already bound and checked positive; the only handler-local
// failure path is membership in the reference set.
func (h *PersonHandler) ShowPersonDetail(c echo.Context, req *schema.PersonDetailRequest) (map[string]string, error) {
	if !h.knownIDs.Contains(req.PersonID) {
		return nil, errs.NewNotFoundError(personNotFoundDetail, false, nil).
			WithDetail(personNotFoundDetail)
	}

	return map[string]string{strconv.Itoa(req.PersonID): "It exists!"}, nil
}

// UpdatePerson handles PUT /person/:person_id.
//
// Both the person and the location are validated; the location is then
// discarded and the person is echoed back in its output projection.
func (h *PersonHandler) UpdatePerson(c echo.Context, req *schema.UpdatePersonRequest) (schema.PersonOut, error) {
	return req.Person.Out(), nil
}
