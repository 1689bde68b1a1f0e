package auth_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/inkwelldev/inkwell/internal/app/features/auth"
	sysauth "github.com/inkwelldev/inkwell/internal/app/system/auth"
	"github.com/inkwelldev/inkwell/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

func newTestHandler(t *testing.T) (*auth.Handler, *testutil.Fixtures) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	if err := sysauth.InitSessionStore("0123456789abcdef0123456789abcdef", "", false, zap.NewNop()); err != nil {
		t.Fatalf("InitSessionStore failed: %v", err)
	}
	handler := auth.NewHandler(db, zap.NewNop())
	return handler, testutil.NewFixtures(t, db)
}

func postJSON(target, body string) *http.Request {
	req := httptest.NewRequest("POST", target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestHandleRegister_Success(t *testing.T) {
	handler, fixtures := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	req := postJSON("/auth/register", `{"name":"Ada Writer","email":"ada@example.com","password":"hunter2hunter2"}`)
	rec := httptest.NewRecorder()
	handler.HandleRegister(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status: got %d, want %d (body: %s)", rec.Code, http.StatusCreated, rec.Body.String())
	}

	var resp struct {
		ID    string `json:"id"`
		Email string `json:"email"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if resp.ID == "" {
		t.Error("expected an id in the response")
	}
	if resp.Email != "ada@example.com" {
		t.Errorf("email: got %q", resp.Email)
	}

	// Session cookie should be set on successful registration.
	if len(rec.Result().Cookies()) == 0 {
		t.Error("expected a session cookie")
	}

	count, err := fixtures.DB().Collection("users").CountDocuments(ctx, bson.M{"email": "ada@example.com"})
	if err != nil {
		t.Fatalf("CountDocuments failed: %v", err)
	}
	if count != 1 {
		t.Errorf("expected 1 user, got %d", count)
	}
}

func TestHandleRegister_Validation(t *testing.T) {
	handler, _ := newTestHandler(t)

	tests := []struct {
		name string
		body string
	}{
		{name: "missing name", body: `{"email":"a@b.com","password":"hunter2hunter2"}`},
		{name: "bad email", body: `{"name":"Ada","email":"not-an-email","password":"hunter2hunter2"}`},
		{name: "short password", body: `{"name":"Ada","email":"a@b.com","password":"short"}`},
		{name: "malformed body", body: `{`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			handler.HandleRegister(rec, postJSON("/auth/register", tt.body))
			if rec.Code != http.StatusBadRequest {
				t.Errorf("status: got %d, want %d", rec.Code, http.StatusBadRequest)
			}
		})
	}
}

func TestHandleRegister_DuplicateEmail(t *testing.T) {
	handler, _ := newTestHandler(t)

	rec := httptest.NewRecorder()
	handler.HandleRegister(rec, postJSON("/auth/register", `{"name":"First","email":"dup@example.com","password":"hunter2hunter2"}`))
	if rec.Code != http.StatusCreated {
		t.Fatalf("first register failed: %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	handler.HandleRegister(rec, postJSON("/auth/register", `{"name":"Second","email":"DUP@example.com","password":"hunter2hunter2"}`))
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status: got %d, want %d", rec.Code, http.StatusBadRequest)
	}
	if !strings.Contains(rec.Body.String(), "duplicate_email") {
		t.Errorf("expected duplicate_email code, got %s", rec.Body.String())
	}
}

func TestHandleLogin(t *testing.T) {
	handler, _ := newTestHandler(t)

	rec := httptest.NewRecorder()
	handler.HandleRegister(rec, postJSON("/auth/register", `{"name":"Ada","email":"ada@example.com","password":"hunter2hunter2"}`))
	if rec.Code != http.StatusCreated {
		t.Fatalf("register failed: %d", rec.Code)
	}

	t.Run("correct credentials", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.HandleLogin(rec, postJSON("/auth/login", `{"email":"ada@example.com","password":"hunter2hunter2"}`))
		if rec.Code != http.StatusOK {
			t.Errorf("status: got %d, want %d (body: %s)", rec.Code, http.StatusOK, rec.Body.String())
		}
		if len(rec.Result().Cookies()) == 0 {
			t.Error("expected a session cookie")
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.HandleLogin(rec, postJSON("/auth/login", `{"email":"ada@example.com","password":"wrong-password"}`))
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("status: got %d, want %d", rec.Code, http.StatusUnauthorized)
		}
	})

	t.Run("unknown email", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.HandleLogin(rec, postJSON("/auth/login", `{"email":"ghost@example.com","password":"hunter2hunter2"}`))
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("status: got %d, want %d", rec.Code, http.StatusUnauthorized)
		}
	})
}

func TestServeMe(t *testing.T) {
	handler, _ := newTestHandler(t)

	user := testutil.NewTestUser("Ada Writer", "ada@example.com")
	req := testutil.NewAuthenticatedRequest("GET", "/auth/me", user)
	rec := httptest.NewRecorder()
	handler.ServeMe(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusOK)
	}

	var resp struct {
		ID    string `json:"id"`
		Name  string `json:"name"`
		Email string `json:"email"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if resp.ID != user.ID {
		t.Errorf("id: got %q, want %q", resp.ID, user.ID)
	}
	if resp.Name != "Ada Writer" {
		t.Errorf("name: got %q", resp.Name)
	}
}

func TestServeMe_NotSignedIn(t *testing.T) {
	handler, _ := newTestHandler(t)

	rec := httptest.NewRecorder()
	handler.ServeMe(rec, httptest.NewRequest("GET", "/auth/me", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status: got %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}
