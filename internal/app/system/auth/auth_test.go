package auth_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/securecookie"
	"github.com/inkwelldev/inkwell/internal/app/system/auth"
	"github.com/inkwelldev/inkwell/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

func initStore(t *testing.T) {
	t.Helper()
	key := string(securecookie.GenerateRandomKey(32))
	if err := auth.InitSessionStore(key, "", false, zap.NewNop()); err != nil {
		t.Fatalf("InitSessionStore failed: %v", err)
	}
}

func TestInitSessionStore_EmptyKey(t *testing.T) {
	if err := auth.InitSessionStore("", "", false, zap.NewNop()); err == nil {
		t.Error("expected error for empty session key")
	}
}

func TestCurrentUser_NotSet(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	if _, ok := auth.CurrentUser(req); ok {
		t.Error("expected no user on bare request")
	}
}

func TestWithTestUser(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	want := &auth.SessionUser{ID: primitive.NewObjectID().Hex(), Name: "Ada", Email: "ada@example.com"}
	req = auth.WithTestUser(req, want)

	got, ok := auth.CurrentUser(req)
	if !ok {
		t.Fatal("expected a user in context")
	}
	if got.ID != want.ID || got.Email != want.Email {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestRequireSignedIn(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	guarded := auth.RequireSignedIn(next)

	t.Run("signed in", func(t *testing.T) {
		req := auth.WithTestUser(httptest.NewRequest("GET", "/", nil), &auth.SessionUser{ID: primitive.NewObjectID().Hex()})
		rec := httptest.NewRecorder()
		guarded.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Errorf("status: got %d, want %d", rec.Code, http.StatusOK)
		}
	})

	t.Run("not signed in", func(t *testing.T) {
		rec := httptest.NewRecorder()
		guarded.ServeHTTP(rec, httptest.NewRequest("GET", "/", nil))
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("status: got %d, want %d", rec.Code, http.StatusUnauthorized)
		}
		if !strings.Contains(rec.Body.String(), "unauthenticated") {
			t.Errorf("expected unauthenticated error code, got %s", rec.Body.String())
		}
	})
}

func TestSignIn_RoundTrip(t *testing.T) {
	initStore(t)

	user := models.User{
		ID:    primitive.NewObjectID(),
		Name:  "Ada Writer",
		Email: "ada@example.com",
	}

	// Sign in and capture the cookie.
	signInReq := httptest.NewRequest("POST", "/auth/login", nil)
	signInRec := httptest.NewRecorder()
	if err := auth.SignIn(signInRec, signInReq, user); err != nil {
		t.Fatalf("SignIn failed: %v", err)
	}
	cookies := signInRec.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatal("expected a session cookie")
	}

	// Replay the cookie through the middleware.
	var got *auth.SessionUser
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, _ = auth.CurrentUser(r)
	})
	req := httptest.NewRequest("GET", "/", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	auth.LoadSessionUser(next).ServeHTTP(httptest.NewRecorder(), req)

	if got == nil {
		t.Fatal("expected the session user to load")
	}
	if got.ID != user.ID.Hex() {
		t.Errorf("ID: got %q, want %q", got.ID, user.ID.Hex())
	}
	if got.Email != "ada@example.com" {
		t.Errorf("Email: got %q", got.Email)
	}
}

func TestSignOut_ClearsSession(t *testing.T) {
	initStore(t)

	user := models.User{ID: primitive.NewObjectID(), Name: "Ada", Email: "ada@example.com"}
	signInRec := httptest.NewRecorder()
	if err := auth.SignIn(signInRec, httptest.NewRequest("POST", "/", nil), user); err != nil {
		t.Fatalf("SignIn failed: %v", err)
	}

	signOutReq := httptest.NewRequest("POST", "/", nil)
	for _, c := range signInRec.Result().Cookies() {
		signOutReq.AddCookie(c)
	}
	signOutRec := httptest.NewRecorder()
	if err := auth.SignOut(signOutRec, signOutReq); err != nil {
		t.Fatalf("SignOut failed: %v", err)
	}

	var expired bool
	for _, c := range signOutRec.Result().Cookies() {
		if c.Name == auth.SessionName && c.MaxAge < 0 {
			expired = true
		}
	}
	if !expired {
		t.Error("expected the session cookie to be expired")
	}
}
