// internal/app/features/posts/routes.go
package posts

import (
	memberstore "github.com/inkwelldev/inkwell/internal/app/store/orgmembers"
	sysauth "github.com/inkwelldev/inkwell/internal/app/system/auth"
	"github.com/inkwelldev/inkwell/internal/app/system/tenant"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Routes mounts the post endpoints behind the tenant guard: a signed-in
// user plus a verified x-org-id header.
func Routes(h *Handler, members *memberstore.Store, logger *zap.Logger) chi.Router {
	r := chi.NewRouter()

	r.Use(sysauth.RequireSignedIn)
	r.Use(tenant.Require(members, logger))

	r.Get("/", h.ServeList)
	r.Post("/", h.HandleCreate)
	r.Get("/{id}", h.ServeGet)
	r.Put("/{id}", h.HandleUpdate)
	r.Delete("/{id}", h.HandleDelete)

	return r
}
