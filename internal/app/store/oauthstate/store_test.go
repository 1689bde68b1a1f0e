package oauthstate_test

import (
	"testing"

	"github.com/inkwelldev/inkwell/internal/app/store/oauthstate"
	"github.com/inkwelldev/inkwell/internal/testutil"
)

func TestStore_Issue(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := oauthstate.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	state, err := store.Issue(ctx, "/dashboard")
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}
	if state == "" {
		t.Fatal("expected a state token")
	}

	other, err := store.Issue(ctx, "")
	if err != nil {
		t.Fatalf("second Issue failed: %v", err)
	}
	if other == state {
		t.Error("state tokens must be unique per login attempt")
	}
}

func TestStore_Validate(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := oauthstate.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	state, err := store.Issue(ctx, "/dashboard")
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	returnTo, err := store.Validate(ctx, state)
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if returnTo != "/dashboard" {
		t.Errorf("returnTo: got %q, want /dashboard", returnTo)
	}
}

func TestStore_Validate_SingleUse(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := oauthstate.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	state, err := store.Issue(ctx, "")
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	if _, err := store.Validate(ctx, state); err != nil {
		t.Fatalf("first Validate failed: %v", err)
	}
	if _, err := store.Validate(ctx, state); err != oauthstate.ErrInvalidState {
		t.Errorf("expected ErrInvalidState on replay, got %v", err)
	}
}

func TestStore_Validate_Unknown(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := oauthstate.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if _, err := store.Validate(ctx, "never-issued"); err != oauthstate.ErrInvalidState {
		t.Errorf("expected ErrInvalidState, got %v", err)
	}
	if _, err := store.Validate(ctx, ""); err != oauthstate.ErrInvalidState {
		t.Errorf("expected ErrInvalidState for empty state, got %v", err)
	}
}
