package auth

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Register registers auth routes on the parent router. The session routes
// live at the API root (/api/signup, /api/login, ...) rather than under a
// prefix of their own.
func (h *Handler) Register(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.Post("/signup", h.Signup)
	r.Post("/login", h.Login)
	r.Post("/refresh", h.Refresh)
	r.Put("/refresh", h.Refresh)

	r.Group(func(r chi.Router) {
		r.Use(authMiddleware)
		r.Post("/logout", h.Logout)
		r.Get("/logout", h.Logout)
	})
}
