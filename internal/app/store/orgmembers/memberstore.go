// internal/app/store/orgmembers/memberstore.go
package memberstore

import (
	"context"
	"errors"
	"time"

	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"github.com/inkwelldev/inkwell/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	c *mongo.Collection
}

var (
	ErrDuplicateMembership = errors.New("user is already a member of this organization")
	ErrNotFound            = errors.New("membership not found")
	ErrInvalidRole         = errors.New("invalid membership role")
)

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("organization_members")}
}

// Add creates a membership linking a user to an organization. The compound
// unique index on (organization_id, user_id) guarantees one membership per
// pair.
func (s *Store) Add(ctx context.Context, m models.OrgMembership) (models.OrgMembership, error) {
	if !m.Role.Valid() {
		return models.OrgMembership{}, ErrInvalidRole
	}
	now := time.Now().UTC()
	m.ID = primitive.NewObjectID()
	m.CreatedAt = now
	m.UpdatedAt = now
	_, err := s.c.InsertOne(ctx, m)
	if err != nil {
		if wafflemongo.IsDup(err) {
			return models.OrgMembership{}, ErrDuplicateMembership
		}
		return models.OrgMembership{}, err
	}
	return m, nil
}

// FindForOrgUser returns the membership of a user within an organization,
// or ErrNotFound when the user does not belong to it.
func (s *Store) FindForOrgUser(ctx context.Context, orgID, userID primitive.ObjectID) (models.OrgMembership, error) {
	var m models.OrgMembership
	err := s.c.FindOne(ctx, bson.M{"organization_id": orgID, "user_id": userID}).Decode(&m)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return models.OrgMembership{}, ErrNotFound
		}
		return models.OrgMembership{}, err
	}
	return m, nil
}

// ListForUser returns all memberships for a user, newest first.
func (s *Store) ListForUser(ctx context.Context, userID primitive.ObjectID) ([]models.OrgMembership, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := s.c.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	members := []models.OrgMembership{}
	if err := cur.All(ctx, &members); err != nil {
		return nil, err
	}
	return members, nil
}

// DeleteForOrgUser removes a single membership. Used by the transactional
// fallback cleanup path.
func (s *Store) DeleteForOrgUser(ctx context.Context, orgID, userID primitive.ObjectID) error {
	_, err := s.c.DeleteOne(ctx, bson.M{"organization_id": orgID, "user_id": userID})
	return err
}
