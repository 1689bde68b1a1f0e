// internal/app/store/organizations/organizationstore.go
package organizationstore

import (
	"context"
	"errors"
	"time"

	"github.com/dalemusser/waffle/pantry/text"
	"github.com/inkwelldev/inkwell/internal/app/system/status"
	"github.com/inkwelldev/inkwell/internal/domain/models"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type Store struct {
	c *mongo.Collection
}

var (
	ErrDuplicateSlug = errors.New("an organization with this slug already exists")
	ErrNotFound      = errors.New("organization not found")
)

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("organizations")}
}

// Create inserts a new organization. The caller supplies Name, Slug and
// OwnerID; the store fills in the rest. Slug uniqueness is enforced by the
// unique index, so concurrent creates with the same slug cannot both win.
func (s *Store) Create(ctx context.Context, org models.Organization) (models.Organization, error) {
	now := time.Now().UTC()
	org.ID = primitive.NewObjectID()
	org.NameCI = text.Fold(org.Name)
	if org.Status == "" {
		org.Status = status.Active
	}
	if org.Settings == nil {
		org.Settings = map[string]any{}
	}
	org.CreatedAt = now
	org.UpdatedAt = now
	_, err := s.c.InsertOne(ctx, org)
	if err != nil {
		if wafflemongo.IsDup(err) {
			return models.Organization{}, ErrDuplicateSlug
		}
		return models.Organization{}, err
	}
	return org, nil
}

func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Organization, error) {
	var org models.Organization
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&org)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return models.Organization{}, ErrNotFound
		}
		return models.Organization{}, err
	}
	return org, nil
}

// GetBySlug looks up an organization by its exact slug. Slugs are stored
// lowercase, so no folding is needed at read time.
func (s *Store) GetBySlug(ctx context.Context, slug string) (models.Organization, error) {
	var org models.Organization
	err := s.c.FindOne(ctx, bson.M{"slug": slug}).Decode(&org)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return models.Organization{}, ErrNotFound
		}
		return models.Organization{}, err
	}
	return org, nil
}

// ExistsBySlug is the cheap pre-check used before attempting a create. The
// unique index remains the real guarantee.
func (s *Store) ExistsBySlug(ctx context.Context, slug string) (bool, error) {
	n, err := s.c.CountDocuments(ctx, bson.M{"slug": slug})
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// GetByIDs fetches the organizations for a set of ids, used to expand a
// user's membership list into full organization records. Missing ids are
// silently absent from the result.
func (s *Store) GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Organization, error) {
	if len(ids) == 0 {
		return []models.Organization{}, nil
	}
	cur, err := s.c.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	orgs := []models.Organization{}
	if err := cur.All(ctx, &orgs); err != nil {
		return nil, err
	}
	return orgs, nil
}

// Delete removes an organization document. Used by the transactional
// fallback to undo a create whose membership write failed.
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	return err
}
