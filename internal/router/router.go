// Package router sets up all HTTP routes and middleware chains for the
// catalog API. Routes are organized by the policy that gates them: public
// reads, any-employee access, and manager-only mutations.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"catalogd/internal/handlers"
	"catalogd/internal/middleware"
	"catalogd/internal/policy"
	"catalogd/internal/token"
)

// New creates and returns the configured Chi router with all middleware
// and route groups wired up. limiter may be nil to disable rate limiting,
// which keeps router tests free of timing concerns.
func New(
	codec *token.Codec,
	policies *policy.Registry,
	limiter *middleware.RateLimiter,
	auth *handlers.Auth,
	categories *handlers.Categories,
	products *handlers.Products,
	employees *handlers.Employees,
) chi.Router {
	r := chi.NewRouter()

	// Global middleware, applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders)
	r.Use(middleware.LoadIdentity(codec))

	// Health check, no auth.
	r.Get("/health", healthHandler)

	// Token endpoint. Rate limited; the only route where credential
	// guessing pays off.
	r.Group(func(r chi.Router) {
		if limiter != nil {
			r.Use(limiter.Middleware)
		}
		r.Post("/token", auth.Token)
	})

	// Categories. Reads are public so storefronts can browse anonymously;
	// writes need any authenticated account.
	r.Route("/categories", func(r chi.Router) {
		r.Get("/", categories.List)
		r.Get("/{id}", categories.Get)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth)
			r.Post("/", categories.Create)
			r.Put("/{id}", categories.Update)
			r.Delete("/{id}", categories.Delete)
		})
	})

	// Products. Reads need an employee; writes are manager-only.
	r.Route("/products", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequirePolicy(policies, policy.EmployeePolicy))
			r.Get("/", products.List)
			r.Get("/{id}", products.Get)
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequirePolicy(policies, policy.Employee005Policy))
			r.Post("/", products.Create)
			r.Put("/{id}", products.Update)
			r.Delete("/{id}", products.Delete)
		})
	})

	// Employee management, manager-only.
	r.Route("/employees", func(r chi.Router) {
		r.Use(middleware.RequirePolicy(policies, policy.Employee005Policy))
		r.Get("/", employees.List)
		r.Post("/", employees.Create)
		r.Get("/{id}", employees.Get)
		r.Put("/{id}", employees.Update)
	})

	return r
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
