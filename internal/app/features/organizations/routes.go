// internal/app/features/organizations/routes.go
package organizations

import (
	sysauth "github.com/inkwelldev/inkwell/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// Routes mounts the organization endpoints. All of them need a signed-in
// user; none of them need the tenant header, since they are how a client
// discovers its organizations in the first place.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Use(sysauth.RequireSignedIn)

	r.Post("/", h.HandleCreate)
	r.Get("/my-orgs", h.ServeMyOrgs)
	r.Get("/{slug}", h.ServeBySlug)

	return r
}
