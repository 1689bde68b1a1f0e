// internal/app/store/users/userstore.go
package userstore

import (
	"context"
	"errors"
	"time"

	"github.com/inkwelldev/inkwell/internal/app/system/normalize"
	"github.com/inkwelldev/inkwell/internal/app/system/status"
	"github.com/inkwelldev/inkwell/internal/domain/models"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"github.com/dalemusser/waffle/pantry/text"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

type Store struct {
	c *mongo.Collection
}

var (
	ErrDuplicateEmail = errors.New("an account with this email already exists")
	ErrNotFound       = errors.New("user not found")
)

// bcryptCost balances hashing time against brute-force resistance.
const bcryptCost = 12

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("users")}
}

// Create inserts a new user. Email is normalized; uniqueness is enforced by
// the unique index on email.
func (s *Store) Create(ctx context.Context, u models.User) (models.User, error) {
	now := time.Now().UTC()
	u.ID = primitive.NewObjectID()
	u.Email = normalize.Email(u.Email)
	u.NameCI = text.Fold(u.Name)
	if u.Status == "" {
		u.Status = status.Active
	}
	u.CreatedAt = now
	u.UpdatedAt = now
	_, err := s.c.InsertOne(ctx, u)
	if err != nil {
		if wafflemongo.IsDup(err) {
			return models.User{}, ErrDuplicateEmail
		}
		return models.User{}, err
	}
	return u, nil
}

func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.User, error) {
	var u models.User
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&u)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return models.User{}, ErrNotFound
		}
		return models.User{}, err
	}
	return u, nil
}

func (s *Store) GetByEmail(ctx context.Context, email string) (models.User, error) {
	var u models.User
	err := s.c.FindOne(ctx, bson.M{"email": normalize.Email(email)}).Decode(&u)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return models.User{}, ErrNotFound
		}
		return models.User{}, err
	}
	return u, nil
}

// UpsertByEmail finds or creates an account for an externally authenticated
// identity (OAuth). An existing account keeps its auth method and password;
// only the name is refreshed when it was empty.
func (s *Store) UpsertByEmail(ctx context.Context, email, name, authMethod string) (models.User, error) {
	existing, err := s.GetByEmail(ctx, email)
	if err == nil {
		if existing.Name == "" && name != "" {
			update := bson.M{"$set": bson.M{
				"name":       name,
				"name_ci":    text.Fold(name),
				"updated_at": time.Now().UTC(),
			}}
			if _, uerr := s.c.UpdateByID(ctx, existing.ID, update); uerr != nil {
				return models.User{}, uerr
			}
			existing.Name = name
		}
		return existing, nil
	}
	if err != ErrNotFound {
		return models.User{}, err
	}

	u := models.User{
		Name:       name,
		Email:      email,
		AuthMethod: authMethod,
	}
	created, err := s.Create(ctx, u)
	if err == ErrDuplicateEmail {
		// Lost a race with a concurrent first login; the row exists now.
		return s.GetByEmail(ctx, email)
	}
	return created, err
}

// HashPassword hashes a password with bcrypt at the store's fixed cost.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether password matches the stored hash.
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
