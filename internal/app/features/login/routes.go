// internal/app/features/login/routes.go
package login

import "github.com/go-chi/chi/v5"

// Register attaches the login and logout routes. Both are public; the
// caller mounts them outside the bearer-token gate.
func Register(r chi.Router, h *Handler) {
	r.Post("/login", h.HandleLogin)
	r.Post("/logout", h.HandleLogout)
}
