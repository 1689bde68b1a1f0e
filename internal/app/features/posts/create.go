// internal/app/features/posts/create.go
package posts

import (
	"context"
	"net/http"
	"strings"

	"github.com/inkwelldev/inkwell/internal/app/policy/postpolicy"
	sysauth "github.com/inkwelldev/inkwell/internal/app/system/auth"
	"github.com/inkwelldev/inkwell/internal/app/system/htmlsanitize"
	"github.com/inkwelldev/inkwell/internal/app/system/httpjson"
	"github.com/inkwelldev/inkwell/internal/app/system/tenant"
	"github.com/inkwelldev/inkwell/internal/app/system/timeouts"
	"github.com/inkwelldev/inkwell/internal/domain/models"
)

type createRequest struct {
	Title       string `json:"title"`
	Image       string `json:"image"`
	Description string `json:"description"`
	Content     string `json:"content"`
	Published   bool   `json:"published"`
}

// HandleCreate handles POST /posts inside the resolved organization.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	m, ok := tenant.FromContext(r.Context())
	if !ok {
		httpjson.Error(w, http.StatusForbidden, httpjson.CodeForbidden, "no organization context")
		return
	}
	if !postpolicy.CanAuthor(m.Role) {
		httpjson.Error(w, http.StatusForbidden, httpjson.CodeForbidden, "guests cannot create posts")
		return
	}

	var req createRequest
	if err := httpjson.Decode(w, r, &req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, httpjson.CodeValidation, "invalid request body")
		return
	}
	if strings.TrimSpace(req.Title) == "" {
		httpjson.Error(w, http.StatusBadRequest, httpjson.CodeValidation, "title is required")
		return
	}

	authorName := ""
	if user, ok := sysauth.CurrentUser(r); ok {
		authorName = user.Name
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	post, err := h.Posts.Create(ctx, models.Post{
		OrganizationID: m.OrgID,
		AuthorID:       m.UserID,
		Author:         authorName,
		Title:          htmlsanitize.Plain(req.Title),
		Image:          strings.TrimSpace(req.Image),
		Description:    htmlsanitize.Plain(req.Description),
		Content:        htmlsanitize.Content(req.Content),
		Published:      req.Published,
	})
	if err != nil {
		httpjson.Internal(w, h.Log, "create post", err)
		return
	}

	httpjson.Write(w, http.StatusCreated, toPostResponse(post))
}
