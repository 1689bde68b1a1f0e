package testutil

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/dalemusser/waffle/pantry/text"
	"github.com/go-chi/chi/v5"
	"github.com/inkwelldev/inkwell/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// WithChiURLParam adds a chi URL parameter to the request context.
// Use this in handler tests that need to access chi.URLParam values.
func WithChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreateUser creates a test user with the given name and email.
func (f *Fixtures) CreateUser(ctx context.Context, name, email string) models.User {
	f.t.Helper()

	now := time.Now().UTC()
	user := models.User{
		ID:         primitive.NewObjectID(),
		Name:       name,
		NameCI:     text.Fold(name),
		Email:      email,
		AuthMethod: "password",
		Status:     "active",
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	_, err := f.db.Collection("users").InsertOne(ctx, user)
	if err != nil {
		f.t.Fatalf("failed to create test user: %v", err)
	}

	return user
}

// CreateOrganization creates a test organization owned by ownerID.
func (f *Fixtures) CreateOrganization(ctx context.Context, name, slug string, ownerID primitive.ObjectID) models.Organization {
	f.t.Helper()

	now := time.Now().UTC()
	org := models.Organization{
		ID:        primitive.NewObjectID(),
		Name:      name,
		NameCI:    text.Fold(name),
		Slug:      slug,
		OwnerID:   ownerID,
		Status:    "active",
		Settings:  map[string]any{},
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := f.db.Collection("organizations").InsertOne(ctx, org)
	if err != nil {
		f.t.Fatalf("failed to create test organization: %v", err)
	}

	return org
}

// CreateMembership links a user to an organization with the given role.
func (f *Fixtures) CreateMembership(ctx context.Context, orgID, userID primitive.ObjectID, role models.Role) models.OrgMembership {
	f.t.Helper()

	now := time.Now().UTC()
	m := models.OrgMembership{
		ID:             primitive.NewObjectID(),
		OrganizationID: orgID,
		UserID:         userID,
		Role:           role,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	_, err := f.db.Collection("organization_members").InsertOne(ctx, m)
	if err != nil {
		f.t.Fatalf("failed to create test membership: %v", err)
	}

	return m
}

// CreateOrgWithOwner creates an organization plus its owner membership in
// one call, the shape most tenant tests need.
func (f *Fixtures) CreateOrgWithOwner(ctx context.Context, name, slug string, ownerID primitive.ObjectID) models.Organization {
	f.t.Helper()
	org := f.CreateOrganization(ctx, name, slug, ownerID)
	f.CreateMembership(ctx, org.ID, ownerID, models.RoleOwner)
	return org
}

// CreatePost creates a test post in the given organization.
func (f *Fixtures) CreatePost(ctx context.Context, orgID, authorID primitive.ObjectID, title string, published bool) models.Post {
	f.t.Helper()

	now := time.Now().UTC()
	post := models.Post{
		ID:             primitive.NewObjectID(),
		OrganizationID: orgID,
		AuthorID:       authorID,
		Author:         "Test Author",
		Title:          title,
		Description:    "Test description",
		Content:        "Test content",
		Published:      published,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	_, err := f.db.Collection("posts").InsertOne(ctx, post)
	if err != nil {
		f.t.Fatalf("failed to create test post: %v", err)
	}

	return post
}
