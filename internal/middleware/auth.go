package middleware

import (
	"context"
	"net/http"

	"github.com/castanedalj/tienda-backend/internal/auth"
)

type identityKey struct{}

// Identity is the caller recovered from a verified session token.
type Identity struct {
	Username string
	Role     string
}

func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

func IdentityFrom(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey{}).(Identity)
	return id, ok
}

// Auth gates a route on a session token carried as the raw value of the
// Authorization header (the frontend sends no "Bearer" scheme). Missing token
// and invalid token are distinct outcomes: 401 vs 403, both with empty bodies.
func Auth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := r.Header.Get("Authorization")
			if token == "" {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			claims, err := auth.ParseToken(secret, token)
			if err != nil {
				w.WriteHeader(http.StatusForbidden)
				return
			}
			ctx := WithIdentity(r.Context(), Identity{Username: claims.Username, Role: claims.Role})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
