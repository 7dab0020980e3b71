package router

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/deppfellow/person-api/internal/handler"
	"github.com/deppfellow/person-api/internal/schema"
)

// registerPersonRoutes wires the validation-demo endpoints through the
// typed handler pipeline. Each registration names the handler method, the
// success status, and a constructor for a fresh request payload.
func registerPersonRoutes(r *echo.Echo, h *handler.Handlers) {
	r.POST("/person/new", handler.Handle(h.Person.Handler, h.Person.CreatePerson,
		http.StatusCreated, func() *schema.Person { return &schema.Person{} }))

	r.GET("/person/detail", handler.Handle(h.Person.Handler, h.Person.ShowPerson,
		http.StatusOK, func() *schema.ShowPersonRequest { return &schema.ShowPersonRequest{} }))

	r.GET("/person/detail/:person_id", handler.Handle(h.Person.Handler, h.Person.ShowPersonDetail,
		http.StatusOK, func() *schema.PersonDetailRequest { return &schema.PersonDetailRequest{} }))

	r.PUT("/person/:person_id", handler.Handle(h.Person.Handler, h.Person.UpdatePerson,
		http.StatusOK, func() *schema.UpdatePersonRequest { return &schema.UpdatePersonRequest{} }))

	r.POST("/login", handler.Handle(h.Session.Handler, h.Session.Login,
		http.StatusOK, func() *schema.LoginRequest { return &schema.LoginRequest{} }))

	r.POST("/contact", handler.Handle(h.Contact.Handler, h.Contact.Contact,
		http.StatusOK, func() *schema.ContactRequest { return &schema.ContactRequest{} }))

	r.POST("/post-image", handler.Handle(h.Media.Handler, h.Media.UploadImage,
		http.StatusOK, func() *schema.UploadImageRequest { return &schema.UploadImageRequest{} }))
}
