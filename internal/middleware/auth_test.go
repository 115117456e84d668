package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/castanedalj/tienda-backend/internal/auth"
	"github.com/castanedalj/tienda-backend/internal/middleware"
)

const testSecret = "middleware-test-secret"

// buildRouter mounts a probe handler behind the auth gate, and a second one
// behind auth + admin role, mirroring how the product routes are wired.
func buildRouter() http.Handler {
	r := chi.NewRouter()
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(testSecret))
		r.Get("/protected", func(w http.ResponseWriter, r *http.Request) {
			id, _ := middleware.IdentityFrom(r.Context())
			_, _ = w.Write([]byte(id.Username + ":" + id.Role))
		})
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAdmin)
			r.Post("/admin-only", func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusCreated)
			})
		})
	})
	return r
}

func tokenFor(t *testing.T, username, role string) string {
	t.Helper()
	tok, err := auth.SignToken(testSecret, username, role)
	require.NoError(t, err)
	return tok
}

func doRequest(t *testing.T, h http.Handler, method, path, token string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		// raw value, no scheme prefix
		req.Header.Set("Authorization", token)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestAuth_MissingToken_Returns401Empty(t *testing.T) {
	rec := doRequest(t, buildRouter(), http.MethodGet, "/protected", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestAuth_InvalidToken_Returns403Empty(t *testing.T) {
	for _, tok := range []string{"garbage", "a.b.c", tokenFor(t, "maria", "admin") + "x"} {
		rec := doRequest(t, buildRouter(), http.MethodGet, "/protected", tok)
		assert.Equal(t, http.StatusForbidden, rec.Code, "token %q", tok)
		assert.Empty(t, rec.Body.String())
	}
}

func TestAuth_WrongSecret_Returns403(t *testing.T) {
	tok, err := auth.SignToken("some-other-secret", "maria", "admin")
	require.NoError(t, err)
	rec := doRequest(t, buildRouter(), http.MethodGet, "/protected", tok)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAuth_ValidToken_AttachesIdentity(t *testing.T) {
	rec := doRequest(t, buildRouter(), http.MethodGet, "/protected", tokenFor(t, "maria", "cliente"))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "maria:cliente", rec.Body.String())
}

func TestRequireAdmin_ClienteBlocked(t *testing.T) {
	rec := doRequest(t, buildRouter(), http.MethodPost, "/admin-only", tokenFor(t, "maria", "cliente"))
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestRequireAdmin_ExactMatchOnly(t *testing.T) {
	// open-set roles: anything but the exact string "admin" is refused
	for _, role := range []string{"Admin", "ADMIN", "administrador", ""} {
		rec := doRequest(t, buildRouter(), http.MethodPost, "/admin-only", tokenFor(t, "maria", role))
		assert.Equal(t, http.StatusForbidden, rec.Code, "role %q", role)
	}
}

func TestRequireAdmin_AdminPasses(t *testing.T) {
	rec := doRequest(t, buildRouter(), http.MethodPost, "/admin-only", tokenFor(t, "root", "admin"))
	assert.Equal(t, http.StatusCreated, rec.Code)
}
