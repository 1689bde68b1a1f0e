// internal/app/features/auth/routes.go
package auth

import (
	sysauth "github.com/inkwelldev/inkwell/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// Routes mounts the authentication endpoints.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Post("/register", h.HandleRegister)
	r.Post("/login", h.HandleLogin)
	r.Post("/logout", h.HandleLogout)

	r.Group(func(r chi.Router) {
		r.Use(sysauth.RequireSignedIn)
		r.Get("/me", h.ServeMe)
	})

	return r
}
