// internal/app/features/posts/update.go
package posts

import (
	"context"
	"net/http"
	"strings"

	"github.com/inkwelldev/inkwell/internal/app/policy/postpolicy"
	poststore "github.com/inkwelldev/inkwell/internal/app/store/posts"
	"github.com/inkwelldev/inkwell/internal/app/system/htmlsanitize"
	"github.com/inkwelldev/inkwell/internal/app/system/httpjson"
	"github.com/inkwelldev/inkwell/internal/app/system/tenant"
	"github.com/inkwelldev/inkwell/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type updateRequest struct {
	Title       *string `json:"title"`
	Image       *string `json:"image"`
	Description *string `json:"description"`
	Content     *string `json:"content"`
	Published   *bool   `json:"published"`
}

// HandleUpdate handles PUT /posts/{id}. Only fields present in the body are
// changed. Authors edit their own posts; owners and admins edit any.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
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

	var req updateRequest
	if err := httpjson.Decode(w, r, &req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, httpjson.CodeValidation, "invalid request body")
		return
	}

	set := bson.M{}
	if req.Title != nil {
		if strings.TrimSpace(*req.Title) == "" {
			httpjson.Error(w, http.StatusBadRequest, httpjson.CodeValidation, "title cannot be empty")
			return
		}
		set["title"] = htmlsanitize.Plain(*req.Title)
	}
	if req.Image != nil {
		set["image"] = strings.TrimSpace(*req.Image)
	}
	if req.Description != nil {
		set["description"] = htmlsanitize.Plain(*req.Description)
	}
	if req.Content != nil {
		set["content"] = htmlsanitize.Content(*req.Content)
	}
	if req.Published != nil {
		set["published"] = *req.Published
	}
	if len(set) == 0 {
		httpjson.Error(w, http.StatusBadRequest, httpjson.CodeValidation, "no fields to update")
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
		httpjson.Internal(w, h.Log, "update post: load", err)
		return
	}
	if !postpolicy.CanModify(m, existing) {
		httpjson.Error(w, http.StatusForbidden, httpjson.CodeForbidden, "you cannot modify this post")
		return
	}

	updated, err := h.Posts.Update(ctx, m.OrgID, postID, set)
	if err != nil {
		if err == poststore.ErrNotFound {
			httpjson.Error(w, http.StatusNotFound, httpjson.CodeNotFound, "post not found")
			return
		}
		httpjson.Internal(w, h.Log, "update post", err)
		return
	}

	httpjson.Write(w, http.StatusOK, toPostResponse(updated))
}
