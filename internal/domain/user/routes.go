package user

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes returns user router
func (h *Handler) Routes(authMiddleware func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	r.Use(authMiddleware)
	r.Get("/user-info", h.GetInfo)
	r.Put("/update-profile", h.UpdateProfile)
	r.Put("/change-password", h.ChangePassword)

	return r
}
