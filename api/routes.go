package api

import (
	"github.com/go-chi/chi/v5"
)

// setupRoutes wires the public surface and the admin-gated surface. The auth
// middleware is the only gate in front of mutations and the message
// lifecycle; the public catalog bypasses it entirely.
func setupRoutes(r chi.Router, handlers *routeHandlers, authMiddleware authMiddleware, limiter *RateLimiter) {
	r.Route("/api", func(r chi.Router) {
		r.Use(limiter.Middleware)
		r.Use(ColoredHTTPLoggingMiddleware)

		// Public catalog, cacheable
		r.Group(func(r chi.Router) {
			r.Use(CacheControlMiddleware)
			r.Get("/projects", handlers.projectHandler.listProjects())
			r.Get("/skills", handlers.skillHandler.listSkills())
		})

		// Public contact form and admin login
		r.Post("/contact", handlers.contactHandler.submitContact())
		r.Post("/admin/login", handlers.authHandler.login())

		// Admin-gated routes
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.authenticate)

			r.Post("/projects", handlers.projectHandler.createProject())
			r.Put("/projects/{projectID}", handlers.projectHandler.updateProject())
			r.Delete("/projects/{projectID}", handlers.projectHandler.deleteProject())

			r.Post("/skills", handlers.skillHandler.createSkill())
			r.Put("/skills/{skillID}", handlers.skillHandler.updateSkill())
			r.Delete("/skills/{skillID}", handlers.skillHandler.deleteSkill())

			r.Get("/admin/messages", handlers.messageHandler.listMessages())
			r.Put("/admin/messages/{messageID}/read", handlers.messageHandler.markMessageRead())
			r.Delete("/admin/messages/{messageID}", handlers.messageHandler.deleteMessage())
		})
	})
}
