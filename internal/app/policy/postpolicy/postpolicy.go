// Package postpolicy decides who may do what with posts inside an
// organization. Rules key off the caller's verified membership, never off
// anything client-supplied.
package postpolicy

import (
	"github.com/inkwelldev/inkwell/internal/app/system/tenant"
	"github.com/inkwelldev/inkwell/internal/domain/models"
)

// CanAuthor reports whether the member may create posts. Guests are
// read-only.
func CanAuthor(role models.Role) bool {
	return role.Valid() && role != models.RoleGuest
}

// CanModify reports whether the member may edit or delete the post. Authors
// manage their own posts; owners and admins manage everything in the org.
func CanModify(m tenant.Membership, p models.Post) bool {
	if m.Role.CanManageContent() {
		return true
	}
	return CanAuthor(m.Role) && p.AuthorID == m.UserID
}

// CanSeeDrafts reports whether the member may list unpublished posts.
// Guests see only what is published.
func CanSeeDrafts(role models.Role) bool {
	return role.Valid() && role != models.RoleGuest
}
