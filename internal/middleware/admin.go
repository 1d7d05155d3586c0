package middleware

import (
	"net/http"

	"niiting-backend/internal/auth"
	"niiting-backend/internal/transport"
)

// AccessCookie is the admin session cookie set on login.
const AccessCookie = "niiting_access"

// AdminAuth guards the dashboard routes. Either a static API key header or a
// valid admin access token opens the gate; with neither configured the admin
// surface is unavailable rather than open.
func AdminAuth(adminKey string, manager *auth.Manager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if adminKey == "" && manager == nil {
				transport.WriteError(w, http.StatusServiceUnavailable, "admin auth not configured", nil)
				return
			}

			if adminKey != "" && r.Header.Get("X-Admin-Key") == adminKey {
				next.ServeHTTP(w, r)
				return
			}

			if manager != nil {
				cookie, err := r.Cookie(AccessCookie)
				if err == nil && cookie.Value != "" {
					if _, err := manager.Parse(cookie.Value, auth.TokenAccess); err == nil {
						next.ServeHTTP(w, r)
						return
					}
				}
			}

			transport.WriteError(w, http.StatusUnauthorized, "unauthorized", nil)
		})
	}
}
