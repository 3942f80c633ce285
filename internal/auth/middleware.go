package auth

import (
	"net/http"

	pkghttp "github.com/ItsCoreyE/creatorsite/pkg/http"
)

// RequireAdmin guards mutation endpoints behind a valid session cookie.
// Requests without a cookie, or with an invalid or expired token, get a
// 401 and never reach the handler.
func RequireAdmin(sm *SessionManager) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, err := GetSessionCookie(r)
			if err != nil {
				pkghttp.WriteUnauthorized(w, "Admin session required")
				return
			}

			if !sm.Verify(token) {
				pkghttp.WriteUnauthorized(w, "Invalid or expired session")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
