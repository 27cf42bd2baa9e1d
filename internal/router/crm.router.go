package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/redis/go-redis/v9"

	"github.com/siddhivinayaka18/afh-crm/internal/handler"
	"github.com/siddhivinayaka18/afh-crm/pkg/middleware"
	"github.com/siddhivinayaka18/afh-crm/pkg/response"
)

type Handlers struct {
	Auth      *handler.AuthHandler
	Lead      *handler.LeadHandler
	Customer  *handler.CustomerHandler
	Dashboard *handler.DashboardHandler
	User      *handler.UserHandler
}

func SetupRoutes(r chi.Router, h Handlers, auth *middleware.AuthMiddleware, rdb *redis.Client) chi.Router {
	// ---- Global Middleware ----
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	r.Use(middleware.RateLimiter(rdb, 100, time.Minute, 10*time.Minute, "global"))

	// Public liveness probe
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		response.JSON(w, http.StatusOK, map[string]string{
			"status":  "ok",
			"message": "CRM API is running",
		})
	})

	r.Route("/api", func(api chi.Router) {
		api.Post("/auth/register", h.Auth.Register)
		api.Post("/auth/login", h.Auth.Login)

		// Authenticated endpoints
		api.Group(func(pr chi.Router) {
			pr.Use(auth.Require)

			pr.Get("/auth/me", h.Auth.Me)

			pr.Route("/leads", func(l chi.Router) {
				l.Get("/", h.Lead.List)
				l.Post("/", h.Lead.Create)
				l.Get("/{id}", h.Lead.Get)
				l.Put("/{id}", h.Lead.Update)
				l.Delete("/{id}", h.Lead.Delete)
			})

			pr.Route("/customers", func(c chi.Router) {
				c.Get("/", h.Customer.List)
				c.Post("/", h.Customer.Create)
				c.Get("/{id}", h.Customer.Get)
				c.Put("/{id}", h.Customer.Update)
				c.Delete("/{id}", h.Customer.Delete)
			})

			pr.Get("/dashboard", h.Dashboard.Stats)

			// Admin-only account administration
			pr.Route("/users", func(u chi.Router) {
				u.Use(auth.RequireAdmin)
				u.Get("/", h.User.List)
				u.Post("/", h.User.Create)
				u.Put("/{id}/status", h.User.SetStatus)
				u.Delete("/{id}", h.User.Delete)
			})
		})
	})

	return r
}
