// internal/app/features/auth/login.go
package auth

import (
	"context"
	"net/http"

	userstore "github.com/inkwelldev/inkwell/internal/app/store/users"
	sysauth "github.com/inkwelldev/inkwell/internal/app/system/auth"
	"github.com/inkwelldev/inkwell/internal/app/system/httpjson"
	"github.com/inkwelldev/inkwell/internal/app/system/timeouts"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// HandleLogin handles POST /auth/login. A wrong email and a wrong password
// produce the same response so the endpoint cannot be used to probe for
// accounts.
func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := httpjson.Decode(w, r, &req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, httpjson.CodeValidation, "invalid request body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	user, err := h.Users.GetByEmail(ctx, req.Email)
	if err != nil {
		if err == userstore.ErrNotFound {
			httpjson.Error(w, http.StatusUnauthorized, httpjson.CodeUnauthenticated, "invalid email or password")
			return
		}
		httpjson.Internal(w, h.Log, "login: lookup user", err)
		return
	}

	if user.PasswordHash == "" || !userstore.CheckPassword(user.PasswordHash, req.Password) {
		httpjson.Error(w, http.StatusUnauthorized, httpjson.CodeUnauthenticated, "invalid email or password")
		return
	}
	if user.Status != "active" {
		httpjson.Error(w, http.StatusForbidden, httpjson.CodeForbidden, "this account is disabled")
		return
	}

	if err := sysauth.SignIn(w, r, user); err != nil {
		httpjson.Internal(w, h.Log, "login: sign in", err)
		return
	}

	httpjson.Write(w, http.StatusOK, userResponse{
		ID:    user.ID.Hex(),
		Name:  user.Name,
		Email: user.Email,
	})
}
