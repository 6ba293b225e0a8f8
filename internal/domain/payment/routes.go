package payment

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes returns payment router
func (h *Handler) Routes(authMiddleware func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	r.Use(authMiddleware)
	r.Post("/intent", h.CreateIntent)
	r.Get("/", h.List)
	r.Get("/get/{paymentId}", h.GetByID)

	return r
}
