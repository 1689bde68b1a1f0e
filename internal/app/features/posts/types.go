// internal/app/features/posts/types.go
package posts

import (
	"time"

	"github.com/inkwelldev/inkwell/internal/domain/models"
)

// postResponse is the public shape of a post.
type postResponse struct {
	ID             string    `json:"id"`
	OrganizationID string    `json:"organization_id"`
	AuthorID       string    `json:"author_id"`
	Author         string    `json:"author"`
	Title          string    `json:"title"`
	Image          string    `json:"image,omitempty"`
	Description    string    `json:"description,omitempty"`
	Content        string    `json:"content"`
	Published      bool      `json:"published"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func toPostResponse(p models.Post) postResponse {
	return postResponse{
		ID:             p.ID.Hex(),
		OrganizationID: p.OrganizationID.Hex(),
		AuthorID:       p.AuthorID.Hex(),
		Author:         p.Author,
		Title:          p.Title,
		Image:          p.Image,
		Description:    p.Description,
		Content:        p.Content,
		Published:      p.Published,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}
