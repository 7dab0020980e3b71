package handler

import (
	"github.com/deppfellow/person-api/internal/registry"
	"github.com/deppfellow/person-api/internal/server"
)

// Handlers is a container that groups all HTTP handlers.
//
// This keeps router setup clean: one object gets passed around instead of
// many. Handlers represent the HTTP layer: parse input, validate, and
// return responses.
type Handlers struct {
	Home    *HomeHandler    // Home serves the root greeting endpoint.
	Health  *HealthHandler  // Health serves service health endpoints (liveness/readiness).
	Person  *PersonHandler  // Person serves person creation, lookup, and update.
	Session *SessionHandler // Session serves the login form endpoint.
	Contact *ContactHandler // Contact serves the contact form endpoint.
	Media   *MediaHandler   // Media serves the image upload endpoint.
}

// NewHandlers constructs the handler container.
//
// There is no service layer in between: the only domain operation beyond
// validation is the fixed-set person lookup, which lives in the registry
// package and is injected here.
func NewHandlers(s *server.Server) *Handlers {
	return &Handlers{
		Home:    NewHomeHandler(s),
		Health:  NewHealthHandler(s),
		Person:  NewPersonHandler(s, registry.DefaultPersonIDs),
		Session: NewSessionHandler(s),
		Contact: NewContactHandler(s),
		Media:   NewMediaHandler(s),
	}
}
