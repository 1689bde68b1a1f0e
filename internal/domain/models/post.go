package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Post is a piece of content belonging to exactly one organization.
// Content is markdown, sanitized at write time. Author is the display
// name frozen at creation; AuthorID links back to the user record.
type Post struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	OrganizationID primitive.ObjectID `bson:"organization_id" json:"organization_id"`
	AuthorID       primitive.ObjectID `bson:"author_id" json:"author_id"`
	Author         string             `bson:"author" json:"author"`
	Title          string             `bson:"title" json:"title"`
	Image          string             `bson:"image,omitempty" json:"image,omitempty"`
	Description    string             `bson:"description,omitempty" json:"description,omitempty"`
	Content        string             `bson:"content" json:"content"`
	Published      bool               `bson:"published" json:"published"`
	CreatedAt      time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt      time.Time          `bson:"updated_at" json:"updated_at"`
}
