// internal/app/features/auth/register.go
package auth

import (
	"context"
	"net/http"
	"strings"

	userstore "github.com/inkwelldev/inkwell/internal/app/store/users"
	sysauth "github.com/inkwelldev/inkwell/internal/app/system/auth"
	"github.com/inkwelldev/inkwell/internal/app/system/httpjson"
	"github.com/inkwelldev/inkwell/internal/app/system/normalize"
	"github.com/inkwelldev/inkwell/internal/app/system/timeouts"
	"github.com/inkwelldev/inkwell/internal/domain/models"
)

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (req *registerRequest) validate() string {
	if strings.TrimSpace(req.Name) == "" {
		return "name is required"
	}
	email := normalize.Email(req.Email)
	if email == "" || !strings.Contains(email, "@") {
		return "a valid email is required"
	}
	if len(req.Password) < 8 {
		return "password must be at least 8 characters"
	}
	return ""
}

// HandleRegister handles POST /auth/register. A successful registration also
// signs the new user in.
func (h *Handler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := httpjson.Decode(w, r, &req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, httpjson.CodeValidation, "invalid request body")
		return
	}
	if msg := req.validate(); msg != "" {
		httpjson.Error(w, http.StatusBadRequest, httpjson.CodeValidation, msg)
		return
	}

	hash, err := userstore.HashPassword(req.Password)
	if err != nil {
		httpjson.Internal(w, h.Log, "register: hash password", err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	user, err := h.Users.Create(ctx, models.User{
		Name:         normalize.Name(req.Name),
		Email:        req.Email,
		PasswordHash: hash,
		AuthMethod:   "password",
	})
	if err != nil {
		if err == userstore.ErrDuplicateEmail {
			httpjson.Error(w, http.StatusBadRequest, httpjson.CodeDuplicateEmail, err.Error())
			return
		}
		httpjson.Internal(w, h.Log, "register: create user", err)
		return
	}

	if err := sysauth.SignIn(w, r, user); err != nil {
		httpjson.Internal(w, h.Log, "register: sign in", err)
		return
	}

	httpjson.Write(w, http.StatusCreated, userResponse{
		ID:    user.ID.Hex(),
		Name:  user.Name,
		Email: user.Email,
	})
}
