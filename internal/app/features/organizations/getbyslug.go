// internal/app/features/organizations/getbyslug.go
package organizations

import (
	"context"
	"net/http"

	organizationstore "github.com/inkwelldev/inkwell/internal/app/store/organizations"
	"github.com/inkwelldev/inkwell/internal/app/system/httpjson"
	"github.com/inkwelldev/inkwell/internal/app/system/slug"
	"github.com/inkwelldev/inkwell/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
)

// ServeBySlug handles GET /organizations/{slug}. A slug that could never
// exist is a validation error; a well-formed slug with no organization is a
// plain 404.
func (h *Handler) ServeBySlug(w http.ResponseWriter, r *http.Request) {
	s := chi.URLParam(r, "slug")
	if !slug.Valid(s) {
		httpjson.Error(w, http.StatusBadRequest, httpjson.CodeValidation, "invalid organization slug")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	org, err := h.Orgs.GetBySlug(ctx, s)
	if err != nil {
		if err == organizationstore.ErrNotFound {
			httpjson.Error(w, http.StatusNotFound, httpjson.CodeNotFound, "organization not found")
			return
		}
		httpjson.Internal(w, h.Log, "get org by slug", err)
		return
	}

	httpjson.Write(w, http.StatusOK, toOrgResponse(org))
}
