// internal/app/store/oauthstate/store.go
//
// Short-lived OAuth state tokens, one per login attempt. A TTL index on
// expires_at reaps abandoned attempts; Validate consumes the token so it
// cannot be replayed.
package oauthstate

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type Store struct {
	c *mongo.Collection
}

var ErrInvalidState = errors.New("invalid or expired oauth state")

// ttl bounds how long a login attempt may sit between redirect and callback.
const ttl = 10 * time.Minute

type record struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	State     string             `bson:"state"`
	ReturnTo  string             `bson:"return_to,omitempty"`
	CreatedAt time.Time          `bson:"created_at"`
	ExpiresAt time.Time          `bson:"expires_at"`
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("oauth_states")}
}

// Issue creates and persists a fresh state token for a login redirect.
func (s *Store) Issue(ctx context.Context, returnTo string) (string, error) {
	now := time.Now().UTC()
	rec := record{
		State:     uuid.NewString(),
		ReturnTo:  returnTo,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}
	if _, err := s.c.InsertOne(ctx, rec); err != nil {
		return "", err
	}
	return rec.State, nil
}

// Validate consumes the state token from the provider callback. The
// find-and-delete makes each token single-use even under concurrent
// callbacks. Returns the return_to path recorded at issue time.
func (s *Store) Validate(ctx context.Context, state string) (string, error) {
	if state == "" {
		return "", ErrInvalidState
	}
	var rec record
	err := s.c.FindOneAndDelete(ctx, bson.M{"state": state}).Decode(&rec)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return "", ErrInvalidState
		}
		return "", err
	}
	if time.Now().UTC().After(rec.ExpiresAt) {
		return "", ErrInvalidState
	}
	return rec.ReturnTo, nil
}
