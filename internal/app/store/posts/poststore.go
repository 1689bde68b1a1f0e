// internal/app/store/posts/poststore.go
package poststore

import (
	"context"
	"errors"
	"time"

	"github.com/inkwelldev/inkwell/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	c *mongo.Collection
}

var ErrNotFound = errors.New("post not found")

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("posts")}
}

// Create inserts a post. OrganizationID and AuthorID come from the caller,
// which has already resolved the tenant and the signed-in user.
func (s *Store) Create(ctx context.Context, p models.Post) (models.Post, error) {
	now := time.Now().UTC()
	p.ID = primitive.NewObjectID()
	p.CreatedAt = now
	p.UpdatedAt = now
	if _, err := s.c.InsertOne(ctx, p); err != nil {
		return models.Post{}, err
	}
	return p, nil
}

// Get returns a post only if it belongs to the given organization. A post
// that exists under a different tenant is reported as not found.
func (s *Store) Get(ctx context.Context, orgID, postID primitive.ObjectID) (models.Post, error) {
	var p models.Post
	err := s.c.FindOne(ctx, bson.M{"_id": postID, "organization_id": orgID}).Decode(&p)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return models.Post{}, ErrNotFound
		}
		return models.Post{}, err
	}
	return p, nil
}

// ListForOrg returns the organization's posts, newest first. When
// publishedOnly is set, drafts are excluded.
func (s *Store) ListForOrg(ctx context.Context, orgID primitive.ObjectID, publishedOnly bool) ([]models.Post, error) {
	filter := bson.M{"organization_id": orgID}
	if publishedOnly {
		filter["published"] = true
	}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := s.c.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	posts := []models.Post{}
	if err := cur.All(ctx, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// Update applies the given field set to a post within the organization.
// Returns ErrNotFound when no post matched.
func (s *Store) Update(ctx context.Context, orgID, postID primitive.ObjectID, set bson.M) (models.Post, error) {
	set["updated_at"] = time.Now().UTC()
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var p models.Post
	err := s.c.FindOneAndUpdate(ctx,
		bson.M{"_id": postID, "organization_id": orgID},
		bson.M{"$set": set},
		opts,
	).Decode(&p)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return models.Post{}, ErrNotFound
		}
		return models.Post{}, err
	}
	return p, nil
}

// Delete removes a post within the organization. Returns ErrNotFound when
// no post matched.
func (s *Store) Delete(ctx context.Context, orgID, postID primitive.ObjectID) error {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": postID, "organization_id": orgID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
