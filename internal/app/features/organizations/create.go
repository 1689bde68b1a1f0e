// internal/app/features/organizations/create.go
package organizations

import (
	"context"
	"net/http"
	"strings"

	organizationstore "github.com/inkwelldev/inkwell/internal/app/store/organizations"
	memberstore "github.com/inkwelldev/inkwell/internal/app/store/orgmembers"
	sysauth "github.com/inkwelldev/inkwell/internal/app/system/auth"
	"github.com/inkwelldev/inkwell/internal/app/system/httpjson"
	"github.com/inkwelldev/inkwell/internal/app/system/normalize"
	"github.com/inkwelldev/inkwell/internal/app/system/slug"
	"github.com/inkwelldev/inkwell/internal/app/system/timeouts"
	"github.com/inkwelldev/inkwell/internal/app/system/txn"
	"github.com/inkwelldev/inkwell/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type createRequest struct {
	Name     string         `json:"name"`
	Slug     string         `json:"slug"`
	Settings map[string]any `json:"settings"`
}

// HandleCreate handles POST /organizations. The caller becomes the owner:
// the organization document and the OWNER membership are written together,
// transactionally where the deployment allows it.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	user, ok := sysauth.CurrentUser(r)
	if !ok {
		httpjson.Error(w, http.StatusUnauthorized, httpjson.CodeUnauthenticated, "authentication required")
		return
	}
	ownerID, err := user.ObjectID()
	if err != nil {
		httpjson.Error(w, http.StatusUnauthorized, httpjson.CodeUnauthenticated, "authentication required")
		return
	}

	var req createRequest
	if err := httpjson.Decode(w, r, &req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, httpjson.CodeValidation, "invalid request body")
		return
	}

	name := normalize.Name(req.Name)
	if len(name) < 3 {
		httpjson.Error(w, http.StatusBadRequest, httpjson.CodeValidation, "name must be at least 3 characters")
		return
	}

	orgSlug := strings.TrimSpace(req.Slug)
	if orgSlug == "" {
		orgSlug = slug.Derive(name)
	}
	if !slug.Valid(orgSlug) {
		httpjson.Error(w, http.StatusBadRequest, httpjson.CodeValidation, "slug may only contain lowercase letters, digits, and hyphens")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	// Friendly pre-check; the unique index still decides races.
	taken, err := h.Orgs.ExistsBySlug(ctx, orgSlug)
	if err != nil {
		httpjson.Internal(w, h.Log, "create org: slug pre-check", err)
		return
	}
	if taken {
		httpjson.Error(w, http.StatusBadRequest, httpjson.CodeDuplicateSlug, "an organization with this slug already exists")
		return
	}

	org := models.Organization{
		Name:     name,
		Slug:     orgSlug,
		OwnerID:  ownerID,
		Settings: req.Settings,
	}

	created, err := h.createWithOwner(ctx, org, ownerID)
	if err != nil {
		if err == organizationstore.ErrDuplicateSlug {
			httpjson.Error(w, http.StatusBadRequest, httpjson.CodeDuplicateSlug, "an organization with this slug already exists")
			return
		}
		httpjson.Internal(w, h.Log, "create org", err)
		return
	}

	resp := memberOrgResponse{orgResponse: toOrgResponse(created), Role: models.RoleOwner}
	httpjson.Write(w, http.StatusCreated, resp)
}

// createWithOwner writes the organization and its OWNER membership. It
// tries a multi-document transaction first; on deployments without
// transaction support (standalone Mongo, some DocumentDB tiers) it falls
// back to sequential writes with compensation.
func (h *Handler) createWithOwner(ctx context.Context, org models.Organization, ownerID primitive.ObjectID) (models.Organization, error) {
	var created models.Organization

	err := txn.WithTransaction(ctx, h.Client, func(sc mongo.SessionContext) error {
		var err error
		created, err = h.Orgs.Create(sc, org)
		if err != nil {
			return err
		}
		_, err = h.Members.Add(sc, models.OrgMembership{
			OrganizationID: created.ID,
			UserID:         ownerID,
			Role:           models.RoleOwner,
		})
		return err
	})
	if err == nil {
		return created, nil
	}
	if !txn.IsNotSupported(err) {
		return models.Organization{}, err
	}

	h.Log.Warn("transactions unavailable, creating organization sequentially", zap.Error(err))

	created, err = h.Orgs.Create(ctx, org)
	if err != nil {
		return models.Organization{}, err
	}
	_, err = h.Members.Add(ctx, models.OrgMembership{
		OrganizationID: created.ID,
		UserID:         ownerID,
		Role:           models.RoleOwner,
	})
	if err != nil && err != memberstore.ErrDuplicateMembership {
		// Undo the orphaned organization so the slug is not burned.
		if derr := h.Orgs.Delete(ctx, created.ID); derr != nil {
			h.Log.Error("failed to clean up organization after membership failure",
				zap.String("org_id", created.ID.Hex()), zap.Error(derr))
		}
		return models.Organization{}, err
	}
	return created, nil
}
