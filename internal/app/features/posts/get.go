// internal/app/features/posts/get.go
package posts

import (
	"context"
	"net/http"

	poststore "github.com/inkwelldev/inkwell/internal/app/store/posts"
	"github.com/inkwelldev/inkwell/internal/app/system/httpjson"
	"github.com/inkwelldev/inkwell/internal/app/system/tenant"
	"github.com/inkwelldev/inkwell/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ServeGet handles GET /posts/{id} within the resolved organization.
func (h *Handler) ServeGet(w http.ResponseWriter, r *http.Request) {
	m, ok := tenant.FromContext(r.Context())
	if !ok {
		httpjson.Error(w, http.StatusForbidden, httpjson.CodeForbidden, "no organization context")
		return
	}

	postID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, httpjson.CodeValidation, "invalid post id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	post, err := h.Posts.Get(ctx, m.OrgID, postID)
	if err != nil {
		if err == poststore.ErrNotFound {
			httpjson.Error(w, http.StatusNotFound, httpjson.CodeNotFound, "post not found")
			return
		}
		httpjson.Internal(w, h.Log, "get post", err)
		return
	}

	httpjson.Write(w, http.StatusOK, toPostResponse(post))
}
