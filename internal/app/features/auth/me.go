// internal/app/features/auth/me.go
package auth

import (
	"net/http"

	sysauth "github.com/inkwelldev/inkwell/internal/app/system/auth"
	"github.com/inkwelldev/inkwell/internal/app/system/httpjson"
)

// ServeMe handles GET /auth/me for the signed-in user.
func (h *Handler) ServeMe(w http.ResponseWriter, r *http.Request) {
	user, ok := sysauth.CurrentUser(r)
	if !ok {
		httpjson.Error(w, http.StatusUnauthorized, httpjson.CodeUnauthenticated, "authentication required")
		return
	}
	httpjson.Write(w, http.StatusOK, userResponse{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
	})
}
