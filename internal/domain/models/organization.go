package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Organization is a tenant. Slug is the URL identifier and is globally
// unique (enforced by a unique index); it is never changed after creation.
// NameCI is the case/diacritic-folded name kept for search and sorting.
type Organization struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	NameCI    string             `bson:"name_ci" json:"-"`
	Slug      string             `bson:"slug" json:"slug"`
	OwnerID   primitive.ObjectID `bson:"owner_id" json:"owner_id"`
	Status    string             `bson:"status" json:"status"` // active | inactive | suspended
	Settings  map[string]any     `bson:"settings" json:"settings"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`
}
