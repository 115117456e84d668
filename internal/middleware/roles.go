package middleware

import (
	"net/http"

	"github.com/castanedalj/tienda-backend/internal/models"
)

// RequireRole wraps a handler and allows only the given role. The match is
// exact and case-sensitive; there is no role hierarchy.
func RequireRole(need string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, ok := IdentityFrom(r.Context())
			if !ok || id.Role != need {
				w.WriteHeader(http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireAdmin gates the mutating product routes.
func RequireAdmin(next http.Handler) http.Handler {
	return RequireRole(models.RoleAdmin)(next)
}
