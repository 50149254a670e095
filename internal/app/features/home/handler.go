// internal/app/features/home/handler.go
package home

import "net/http"

// Serve handles GET / with a plain liveness greeting, useful for quick
// curl checks against a deployed instance.
func Serve(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("Hello from Scholarship server"))
}
