// internal/app/features/sponsors/routes.go
package sponsors

import "github.com/go-chi/chi/v5"

// Register attaches the sponsor routes. The caller wraps r in the
// bearer-token gate; nothing here is public.
func Register(r chi.Router, h *Handler) {
	r.Post("/create-sponsors", h.HandleCreate)
	r.Get("/sponsors", h.HandleList)
	r.Put("/sponsors/{id}", h.HandleUpdate)
	r.Delete("/sponsors/{id}", h.HandleDelete)
	r.Patch("/sponsors/status/{id}", h.HandleToggleStatus)
}
