// internal/app/features/organizations/myorgs.go
package organizations

import (
	"context"
	"net/http"

	sysauth "github.com/inkwelldev/inkwell/internal/app/system/auth"
	"github.com/inkwelldev/inkwell/internal/app/system/httpjson"
	"github.com/inkwelldev/inkwell/internal/app/system/timeouts"
	"github.com/inkwelldev/inkwell/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ServeMyOrgs handles GET /organizations/my-orgs: every organization the
// caller belongs to, with their role in each.
func (h *Handler) ServeMyOrgs(w http.ResponseWriter, r *http.Request) {
	user, ok := sysauth.CurrentUser(r)
	if !ok {
		httpjson.Error(w, http.StatusUnauthorized, httpjson.CodeUnauthenticated, "authentication required")
		return
	}
	userID, err := user.ObjectID()
	if err != nil {
		httpjson.Error(w, http.StatusUnauthorized, httpjson.CodeUnauthenticated, "authentication required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	memberships, err := h.Members.ListForUser(ctx, userID)
	if err != nil {
		httpjson.Internal(w, h.Log, "my-orgs: list memberships", err)
		return
	}

	ids := make([]primitive.ObjectID, 0, len(memberships))
	roleByOrg := make(map[primitive.ObjectID]models.Role, len(memberships))
	for _, m := range memberships {
		ids = append(ids, m.OrganizationID)
		roleByOrg[m.OrganizationID] = m.Role
	}

	orgs, err := h.Orgs.GetByIDs(ctx, ids)
	if err != nil {
		httpjson.Internal(w, h.Log, "my-orgs: load organizations", err)
		return
	}

	// Membership rows whose organization has since vanished are skipped.
	resp := make([]memberOrgResponse, 0, len(orgs))
	for _, org := range orgs {
		resp = append(resp, memberOrgResponse{
			orgResponse: toOrgResponse(org),
			Role:        roleByOrg[org.ID],
		})
	}

	httpjson.Write(w, http.StatusOK, resp)
}
