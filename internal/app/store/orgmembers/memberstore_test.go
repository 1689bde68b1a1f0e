package memberstore_test

import (
	"testing"

	memberstore "github.com/inkwelldev/inkwell/internal/app/store/orgmembers"
	"github.com/inkwelldev/inkwell/internal/domain/models"
	"github.com/inkwelldev/inkwell/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestStore_Add(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := memberstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	m := models.OrgMembership{
		OrganizationID: primitive.NewObjectID(),
		UserID:         primitive.NewObjectID(),
		Role:           models.RoleOwner,
	}

	created, err := store.Add(ctx, m)
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if created.ID == primitive.NilObjectID {
		t.Error("expected ID to be assigned")
	}
	if created.CreatedAt.IsZero() {
		t.Error("expected CreatedAt to be set")
	}
}

func TestStore_Add_InvalidRole(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := memberstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	m := models.OrgMembership{
		OrganizationID: primitive.NewObjectID(),
		UserID:         primitive.NewObjectID(),
		Role:           models.Role("superuser"),
	}

	_, err := store.Add(ctx, m)
	if err != memberstore.ErrInvalidRole {
		t.Errorf("expected ErrInvalidRole, got %v", err)
	}
}

func TestStore_Add_Duplicate(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := memberstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	orgID := primitive.NewObjectID()
	userID := primitive.NewObjectID()

	if _, err := store.Add(ctx, models.OrgMembership{OrganizationID: orgID, UserID: userID, Role: models.RoleMember}); err != nil {
		t.Fatalf("first Add failed: %v", err)
	}

	_, err := store.Add(ctx, models.OrgMembership{OrganizationID: orgID, UserID: userID, Role: models.RoleAdmin})
	if err != memberstore.ErrDuplicateMembership {
		t.Errorf("expected ErrDuplicateMembership, got %v", err)
	}
}

func TestStore_FindForOrgUser(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := memberstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	orgID := primitive.NewObjectID()
	userID := primitive.NewObjectID()

	if _, err := store.Add(ctx, models.OrgMembership{OrganizationID: orgID, UserID: userID, Role: models.RoleAdmin}); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	m, err := store.FindForOrgUser(ctx, orgID, userID)
	if err != nil {
		t.Fatalf("FindForOrgUser failed: %v", err)
	}
	if m.Role != models.RoleAdmin {
		t.Errorf("Role: got %s, want %s", m.Role, models.RoleAdmin)
	}
}

func TestStore_FindForOrgUser_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := memberstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	_, err := store.FindForOrgUser(ctx, primitive.NewObjectID(), primitive.NewObjectID())
	if err != memberstore.ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestStore_ListForUser(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := memberstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	userID := primitive.NewObjectID()

	for i := 0; i < 3; i++ {
		m := models.OrgMembership{
			OrganizationID: primitive.NewObjectID(),
			UserID:         userID,
			Role:           models.RoleMember,
		}
		if _, err := store.Add(ctx, m); err != nil {
			t.Fatalf("Add failed: %v", err)
		}
	}
	// Another user's membership must not leak into the result.
	other := models.OrgMembership{
		OrganizationID: primitive.NewObjectID(),
		UserID:         primitive.NewObjectID(),
		Role:           models.RoleOwner,
	}
	if _, err := store.Add(ctx, other); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	members, err := store.ListForUser(ctx, userID)
	if err != nil {
		t.Fatalf("ListForUser failed: %v", err)
	}
	if len(members) != 3 {
		t.Errorf("expected 3 memberships, got %d", len(members))
	}
	for _, m := range members {
		if m.UserID != userID {
			t.Errorf("membership for wrong user: %s", m.UserID.Hex())
		}
	}
}

func TestStore_ListForUser_Empty(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := memberstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	members, err := store.ListForUser(ctx, primitive.NewObjectID())
	if err != nil {
		t.Fatalf("ListForUser failed: %v", err)
	}
	if len(members) != 0 {
		t.Errorf("expected no memberships, got %d", len(members))
	}
}
