// internal/app/features/posts/delete.go
package posts

import (
	"context"
	"net/http"

	"github.com/inkwelldev/inkwell/internal/app/policy/postpolicy"
	poststore "github.com/inkwelldev/inkwell/internal/app/store/posts"
	"github.com/inkwelldev/inkwell/internal/app/system/httpjson"
	"github.com/inkwelldev/inkwell/internal/app/system/tenant"
	"github.com/inkwelldev/inkwell/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// HandleDelete handles DELETE /posts/{id}. Same permission rule as update.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
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

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	existing, err := h.Posts.Get(ctx, m.OrgID, postID)
	if err != nil {
		if err == poststore.ErrNotFound {
			httpjson.Error(w, http.StatusNotFound, httpjson.CodeNotFound, "post not found")
			return
		}
		httpjson.Internal(w, h.Log, "delete post: load", err)
		return
	}
	if !postpolicy.CanModify(m, existing) {
		httpjson.Error(w, http.StatusForbidden, httpjson.CodeForbidden, "you cannot delete this post")
		return
	}

	if err := h.Posts.Delete(ctx, m.OrgID, postID); err != nil {
		if err == poststore.ErrNotFound {
			httpjson.Error(w, http.StatusNotFound, httpjson.CodeNotFound, "post not found")
			return
		}
		httpjson.Internal(w, h.Log, "delete post", err)
		return
	}

	httpjson.Write(w, http.StatusOK, map[string]string{"status": "deleted"})
}
