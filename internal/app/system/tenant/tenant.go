// Package tenant resolves which organization a request operates on. Clients
// name the tenant with the x-org-id header; the guard verifies the signed-in
// user actually belongs to that organization before any handler runs.
package tenant

import (
	"context"
	"net/http"

	memberstore "github.com/inkwelldev/inkwell/internal/app/store/orgmembers"
	"github.com/inkwelldev/inkwell/internal/app/system/auth"
	"github.com/inkwelldev/inkwell/internal/app/system/httpjson"
	"github.com/inkwelldev/inkwell/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// HeaderName is the request header carrying the tenant id.
const HeaderName = "x-org-id"

// Membership is what the guard attaches to the request context once the
// caller is verified. Handlers read it with FromContext instead of parsing
// the header again.
type Membership struct {
	OrgID  primitive.ObjectID
	UserID primitive.ObjectID
	Role   models.Role
}

type ctxKey struct{}

// FromContext returns the verified membership placed by Require.
func FromContext(ctx context.Context) (Membership, bool) {
	m, ok := ctx.Value(ctxKey{}).(Membership)
	return m, ok
}

// WithMembership returns a context carrying a verified membership. Exposed
// for handler tests that bypass the middleware.
func WithMembership(ctx context.Context, m Membership) context.Context {
	return context.WithValue(ctx, ctxKey{}, m)
}

// MembershipFinder is the slice of the member store the guard needs.
type MembershipFinder interface {
	FindForOrgUser(ctx context.Context, orgID, userID primitive.ObjectID) (models.OrgMembership, error)
}

// Require builds the guard middleware. Order of checks matters:
//
//  1. no signed-in user           -> 401
//  2. missing x-org-id header     -> 400
//  3. malformed organization id   -> 400
//  4. user not a member           -> 403
//
// A valid request proceeds with the membership in context.
func Require(members MembershipFinder, log *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := auth.CurrentUser(r)
			if !ok {
				httpjson.Error(w, http.StatusUnauthorized, httpjson.CodeUnauthenticated, "authentication required")
				return
			}

			raw := r.Header.Get(HeaderName)
			if raw == "" {
				httpjson.Error(w, http.StatusBadRequest, httpjson.CodeValidation, "x-org-id header is required")
				return
			}

			orgID, err := primitive.ObjectIDFromHex(raw)
			if err != nil {
				httpjson.Error(w, http.StatusBadRequest, httpjson.CodeValidation, "x-org-id header is not a valid organization id")
				return
			}

			userID, err := user.ObjectID()
			if err != nil {
				httpjson.Error(w, http.StatusUnauthorized, httpjson.CodeUnauthenticated, "authentication required")
				return
			}

			m, err := members.FindForOrgUser(r.Context(), orgID, userID)
			if err != nil {
				if err == memberstore.ErrNotFound {
					httpjson.Error(w, http.StatusForbidden, httpjson.CodeForbidden, "you are not a member of this organization")
					return
				}
				httpjson.Internal(w, log, "tenant membership lookup", err)
				return
			}

			ctx := WithMembership(r.Context(), Membership{
				OrgID:  orgID,
				UserID: userID,
				Role:   m.Role,
			})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
