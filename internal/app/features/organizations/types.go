// internal/app/features/organizations/types.go
package organizations

import (
	"time"

	"github.com/inkwelldev/inkwell/internal/domain/models"
)

// orgResponse is the public shape of an organization.
type orgResponse struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Slug      string         `json:"slug"`
	OwnerID   string         `json:"owner_id"`
	Status    string         `json:"status"`
	Settings  map[string]any `json:"settings"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// memberOrgResponse is an organization paired with the caller's role in it.
type memberOrgResponse struct {
	orgResponse
	Role models.Role `json:"role"`
}

func toOrgResponse(org models.Organization) orgResponse {
	settings := org.Settings
	if settings == nil {
		settings = map[string]any{}
	}
	return orgResponse{
		ID:        org.ID.Hex(),
		Name:      org.Name,
		Slug:      org.Slug,
		OwnerID:   org.OwnerID.Hex(),
		Status:    org.Status,
		Settings:  settings,
		CreatedAt: org.CreatedAt,
		UpdatedAt: org.UpdatedAt,
	}
}
