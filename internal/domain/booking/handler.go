package booking

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/innkeep/innkeep-api/internal/middleware"
	"github.com/innkeep/innkeep-api/internal/pkg/response"
)

// Handler handles booking HTTP requests
type Handler struct {
	service *Service
}

// NewHandler creates booking handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// CheckAvailability handles POST /booking/check-availability. The body is a
// bare JSON array of requests; results come back in the same order.
func (h *Handler) CheckAvailability(w http.ResponseWriter, r *http.Request) {
	var reqs []AvailabilityRequest
	if err := json.NewDecoder(r.Body).Decode(&reqs); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}
	if len(reqs) == 0 {
		response.BadRequest(w, "At least one availability request is required")
		return
	}

	results, err := h.service.CheckAvailability(r.Context(), reqs)
	if err != nil {
		log.Error().Err(err).Msg("failed to check availability")
		response.InternalError(w)
		return
	}

	response.OK(w, response.M{"message": "Availability checked successfully", "results": results})
}

// Book handles POST /booking/book
func (h *Handler) Book(w http.ResponseWriter, r *http.Request) {
	var req BookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	customerID := middleware.GetUserID(r.Context())
	bookings, payments, err := h.service.Book(r.Context(), customerID, req)
	if err != nil {
		h.writeError(w, err, "failed to create bookings")
		return
	}

	response.Created(w, response.M{
		"message":  "Bookings created successfully",
		"bookings": bookings,
		"payments": payments,
	})
}

// List handles GET /booking
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.service.ListMine(r.Context(), middleware.GetUserID(r.Context()))
	if err != nil {
		log.Error().Err(err).Msg("failed to list bookings")
		response.InternalError(w)
		return
	}

	response.OK(w, response.M{"bookings": bookings})
}

// GetByID handles GET /booking/{bookingId}
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "bookingId"))
	if err != nil {
		response.BadRequest(w, "Booking ID is required as req param")
		return
	}

	b, err := h.service.GetByID(r.Context(), id, middleware.GetUserID(r.Context()))
	if err != nil {
		h.writeError(w, err, "failed to fetch booking")
		return
	}

	response.OK(w, response.M{"booking": b})
}

// Cancel handles PUT /booking/cancel/{bookingId}
func (h *Handler) Cancel(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "bookingId"))
	if err != nil {
		response.BadRequest(w, "Booking ID is required as req param")
		return
	}

	b, err := h.service.Cancel(r.Context(), id, middleware.GetUserID(r.Context()))
	if err != nil {
		h.writeError(w, err, "failed to cancel booking")
		return
	}

	response.OK(w, response.M{"message": "Booking cancelled successfully", "booking": b})
}

// Export handles GET /booking/export?from=YYYY-MM-DD&to=YYYY-MM-DD and streams
// an XLSX report.
func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	from, err := time.Parse("2006-01-02", r.URL.Query().Get("from"))
	if err != nil {
		response.BadRequest(w, "Query param 'from' must be a YYYY-MM-DD date")
		return
	}
	to, err := time.Parse("2006-01-02", r.URL.Query().Get("to"))
	if err != nil {
		response.BadRequest(w, "Query param 'to' must be a YYYY-MM-DD date")
		return
	}
	// The window is inclusive of the 'to' day.
	to = to.AddDate(0, 0, 1)

	rows, err := h.service.Export(r.Context(), middleware.GetRole(r.Context()), from, to)
	if err != nil {
		h.writeError(w, err, "failed to export bookings")
		return
	}

	fileName := fmt.Sprintf("bookings_%s_to_%s.xlsx",
		from.Format("2006-01-02"), to.AddDate(0, 0, -1).Format("2006-01-02"))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))

	if err := WriteExportXLSX(w, rows, from, to); err != nil {
		log.Error().Err(err).Msg("failed to write export file")
	}
}

func (h *Handler) writeError(w http.ResponseWriter, err error, logMsg string) {
	var conflict *ConflictError
	if errors.As(err, &conflict) {
		response.Conflict(w, conflict.Error())
		return
	}

	switch err {
	case ErrEmptyBookingList:
		response.BadRequest(w, "At least one booking is required")
	case ErrInvalidAmount:
		response.BadRequest(w, "Invalid total amount format")
	case ErrPaymentMethodRequired:
		response.BadRequest(w, "Payment method is required")
	case ErrInvalidDateRange:
		response.BadRequest(w, "Invalid check-in or check-out date")
	case ErrRoomNotFound:
		response.NotFound(w, "Room not found")
	case ErrNotFound:
		response.NotFound(w, "Booking not found")
	case ErrForbidden:
		response.Forbidden(w, "Insufficient permissions")
	default:
		log.Error().Err(err).Msg(logMsg)
		response.InternalError(w)
	}
}
