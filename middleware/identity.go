package middleware

import (
	"net/http"

	"gitea.com/go-chi/session"

	"github.com/campfield/campops/staffctx"
)

// SessionStaffKey is the session key holding the selected staff identity
const SessionStaffKey = "active_staff"

// StaffIdentity copies the selected active-staff identity from the
// session into the request context. Selection is optional; handlers that
// need a staff name fall back to request parameters.
func StaffIdentity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess := session.GetSession(r)
		if sess != nil {
			if name, ok := sess.Get(SessionStaffKey).(string); ok && name != "" {
				r = r.WithContext(staffctx.SetActiveStaff(r.Context(), name))
			}
		}
		next.ServeHTTP(w, r)
	})
}
