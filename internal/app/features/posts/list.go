// internal/app/features/posts/list.go
package posts

import (
	"context"
	"net/http"

	"github.com/inkwelldev/inkwell/internal/app/policy/postpolicy"
	"github.com/inkwelldev/inkwell/internal/app/system/httpjson"
	"github.com/inkwelldev/inkwell/internal/app/system/tenant"
	"github.com/inkwelldev/inkwell/internal/app/system/timeouts"
)

// ServeList handles GET /posts for the resolved organization, newest first.
// Guests see only published posts; other members see drafts too unless they
// ask for ?published=true.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	m, ok := tenant.FromContext(r.Context())
	if !ok {
		httpjson.Error(w, http.StatusForbidden, httpjson.CodeForbidden, "no organization context")
		return
	}

	publishedOnly := r.URL.Query().Get("published") == "true"
	if !postpolicy.CanSeeDrafts(m.Role) {
		publishedOnly = true
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	posts, err := h.Posts.ListForOrg(ctx, m.OrgID, publishedOnly)
	if err != nil {
		httpjson.Internal(w, h.Log, "list posts", err)
		return
	}

	resp := make([]postResponse, 0, len(posts))
	for _, p := range posts {
		resp = append(resp, toPostResponse(p))
	}
	httpjson.Write(w, http.StatusOK, resp)
}
