package api

import (
	"github.com/go-chi/chi/v5"
)

// setupRoutes registers the public and authenticated route groups.
func setupRoutes(r chi.Router, handlers *routeHandlers, authMiddleware authMiddleware) {
	// Public routes
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)

		r.Get("/posts", handlers.postHandler.listPosts())
		r.Get("/posts/{postID}/comment", handlers.engagementHandler.listComments())
		r.Get("/users/{externalID}", handlers.profileHandler.getUserProfile())
	})

	// Authenticated routes
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)
		r.Use(authMiddleware.authenticate)

		r.Post("/posts", handlers.postHandler.createPost())
		r.Post("/posts/{postID}/like", handlers.engagementHandler.likePost())
		r.Post("/posts/{postID}/comment", handlers.engagementHandler.addComment())
		r.Get("/profile", handlers.profileHandler.getOwnProfile())
		r.Post("/profile", handlers.profileHandler.updateProfile())
		r.Post("/upload", handlers.uploadHandler.uploadImage())
	})
}
