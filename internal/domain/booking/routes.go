package booking

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes returns booking router. Availability checks are public; everything
// else requires an authenticated customer.
func (h *Handler) Routes(authMiddleware func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	r.Post("/check-availability", h.CheckAvailability)

	r.Group(func(r chi.Router) {
		r.Use(authMiddleware)
		r.Post("/book", h.Book)
		r.Get("/", h.List)
		r.Get("/export", h.Export)
		r.Get("/{bookingId}", h.GetByID)
		r.Put("/cancel/{bookingId}", h.Cancel)
	})

	return r
}
