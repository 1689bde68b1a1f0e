package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Role is a member's position inside one organization. The set is closed;
// stores reject anything outside it before writing.
type Role string

const (
	RoleOwner  Role = "OWNER"
	RoleAdmin  Role = "ADMIN"
	RoleMember Role = "MEMBER"
	RoleGuest  Role = "GUEST"
)

// Valid reports whether r is one of the defined roles.
func (r Role) Valid() bool {
	switch r {
	case RoleOwner, RoleAdmin, RoleMember, RoleGuest:
		return true
	}
	return false
}

// CanManageContent reports whether the role may act on content it does not
// own. Owners and admins can; members only own their posts; guests read.
func (r Role) CanManageContent() bool {
	return r == RoleOwner || r == RoleAdmin
}

// OrgMembership is the authoritative join between users and organizations.
// Exactly one document per (organization_id, user_id); role is a scalar —
// update the document to change it.
type OrgMembership struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	OrganizationID primitive.ObjectID `bson:"organization_id" json:"organization_id"`
	UserID         primitive.ObjectID `bson:"user_id" json:"user_id"`
	Role           Role               `bson:"role" json:"role"`
	CreatedAt      time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt      time.Time          `bson:"updated_at" json:"updated_at"`
}
