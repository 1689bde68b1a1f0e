// internal/app/features/auth/logout.go
package auth

import (
	"net/http"

	sysauth "github.com/inkwelldev/inkwell/internal/app/system/auth"
	"github.com/inkwelldev/inkwell/internal/app/system/httpjson"
)

// HandleLogout handles POST /auth/logout. Logging out an already
// signed-out client is not an error.
func (h *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	if err := sysauth.SignOut(w, r); err != nil {
		httpjson.Internal(w, h.Log, "logout: clear session", err)
		return
	}
	httpjson.Write(w, http.StatusOK, map[string]string{"status": "signed_out"})
}
