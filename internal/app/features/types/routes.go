// internal/app/features/types/routes.go
package types

import "github.com/go-chi/chi/v5"

// Register attaches the scholarship-type routes behind the caller's
// bearer-token gate. The create and list paths keep their historical
// names; the rest hang off the singular /scholarship-type prefix.
func Register(r chi.Router, h *Handler) {
	r.Post("/create-scholarshiptype", h.HandleCreate)
	r.Get("/scholarship-types", h.HandleList)
	r.Put("/scholarship-type/{id}", h.HandleUpdate)
	r.Delete("/scholarship-type/{id}", h.HandleDelete)
	r.Patch("/scholarship-type/status/{id}", h.HandleToggleStatus)
}
