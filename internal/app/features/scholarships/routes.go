// internal/app/features/scholarships/routes.go
package scholarships

import "github.com/go-chi/chi/v5"

// Register attaches the scholarship routes behind the caller's
// bearer-token gate.
func Register(r chi.Router, h *Handler) {
	r.Post("/create-scholarship-details", h.HandleCreate)
	r.Get("/view-all-scholarships", h.HandleList)
	r.Put("/scholarship-update/{id}", h.HandleUpdate)
	r.Delete("/scholarship-delete/{id}", h.HandleDelete)
	r.Patch("/scholarship/status/{id}", h.HandleToggleStatus)

	r.Get("/dropdown/sponsors", h.HandleSponsorsDropdown)
	r.Get("/dropdown/types", h.HandleTypesDropdown)
}
