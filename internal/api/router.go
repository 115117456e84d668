package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/castanedalj/tienda-backend/internal/api/httpx"
	"github.com/castanedalj/tienda-backend/internal/api/validate"
	"github.com/castanedalj/tienda-backend/internal/config"
	"github.com/castanedalj/tienda-backend/internal/metrics"
	"github.com/castanedalj/tienda-backend/internal/middleware"
	"github.com/castanedalj/tienda-backend/internal/models"
	"github.com/castanedalj/tienda-backend/internal/services"
)

// What the frontend shows on a failed login; identical for an unknown
// username and a wrong password.
const msgBadLogin = "usuario o contraseña incorrectos"

func NewRouter(cfg config.Config, us *services.UserService, ps *services.ProductService) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.Recover, middleware.HTTPMetrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	// health & metrics
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) { _, _ = w.Write([]byte("ok")) })
	r.Handle("/metrics", metrics.Handler())

	r.Route("/api", func(r chi.Router) {
		// ---------- identity ----------
		r.Post("/register", func(w http.ResponseWriter, r *http.Request) {
			var req struct{ Username, Password string }
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				http.Error(w, "bad request", http.StatusBadRequest)
				return
			}
			if err := validate.Collect(
				validate.Required("username", req.Username),
				validate.Required("password", req.Password),
			); err != nil {
				httpx.WriteError(w, http.StatusBadRequest, "invalid_request", err.Error())
				return
			}
			if err := us.Register(req.Username, req.Password); err != nil {
				httpx.WriteError(w, http.StatusInternalServerError, "store_error", err.Error())
				return
			}
			w.WriteHeader(http.StatusCreated)
		})

		r.Post("/login", func(w http.ResponseWriter, r *http.Request) {
			var req struct{ Username, Password string }
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				http.Error(w, "bad request", http.StatusBadRequest)
				return
			}
			token, role, err := us.Login(req.Username, req.Password)
			if err != nil {
				if errors.Is(err, services.ErrInvalidCredentials) {
					http.Error(w, msgBadLogin, http.StatusUnauthorized)
					return
				}
				httpx.WriteError(w, http.StatusInternalServerError, "internal_error", err.Error())
				return
			}
			httpx.WriteJSON(w, http.StatusOK, map[string]string{"token": token, "role": role})
		})

		// ---------- productos ----------
		r.Route("/productos", func(r chi.Router) {
			r.Use(middleware.Auth(cfg.JWTSecret))

			r.Get("/", func(w http.ResponseWriter, r *http.Request) {
				productos, err := ps.List()
				if err != nil {
					httpx.WriteError(w, http.StatusInternalServerError, "store_error", err.Error())
					return
				}
				httpx.WriteJSON(w, http.StatusOK, productos)
			})

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireAdmin)

				r.Post("/", func(w http.ResponseWriter, r *http.Request) {
					var req struct {
						Name     string  `json:"name"`
						Price    float64 `json:"price"`
						Category string  `json:"category"`
					}
					if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
						http.Error(w, "bad request", http.StatusBadRequest)
						return
					}
					id, _ := middleware.IdentityFrom(r.Context())
					p, err := ps.Create(req.Name, req.Price, req.Category, id.Username)
					if err != nil {
						httpx.WriteError(w, http.StatusInternalServerError, "store_error", err.Error())
						return
					}
					httpx.WriteJSON(w, http.StatusCreated, p)
				})

				r.Put("/{id}", func(w http.ResponseWriter, r *http.Request) {
					var patch models.ProductPatch
					if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
						http.Error(w, "bad request", http.StatusBadRequest)
						return
					}
					id, _ := middleware.IdentityFrom(r.Context())
					// updating an unknown id is not an error, the store
					// quietly matches zero rows
					if err := ps.Update(chi.URLParam(r, "id"), patch, id.Username); err != nil {
						httpx.WriteError(w, http.StatusInternalServerError, "store_error", err.Error())
						return
					}
					w.WriteHeader(http.StatusOK)
				})

				r.Delete("/{id}", func(w http.ResponseWriter, r *http.Request) {
					id, _ := middleware.IdentityFrom(r.Context())
					if err := ps.Delete(chi.URLParam(r, "id"), id.Username); err != nil {
						httpx.WriteError(w, http.StatusInternalServerError, "store_error", err.Error())
						return
					}
					w.WriteHeader(http.StatusNoContent)
				})
			})
		})
	})

	return r
}
