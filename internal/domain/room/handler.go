package room

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/innkeep/innkeep-api/internal/middleware"
	"github.com/innkeep/innkeep-api/internal/pkg/response"
)

// Handler handles room HTTP requests
type Handler struct {
	service *Service
}

// NewHandler creates room handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// List handles GET /room
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	rooms, err := h.service.List(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("failed to list rooms")
		response.InternalError(w)
		return
	}

	response.OK(w, response.M{"rooms": rooms})
}

// GetByID handles GET /room/by-id/{id}
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Room ID is required as req param")
		return
	}

	rm, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		switch err {
		case ErrNotFound:
			response.NotFound(w, "Room not found")
		default:
			log.Error().Err(err).Str("room_id", id.String()).Msg("failed to fetch room")
			response.InternalError(w)
		}
		return
	}

	response.OK(w, response.M{"room": rm})
}

// Create handles POST /room/create
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	rm, err := h.service.Create(r.Context(), middleware.GetRole(r.Context()), &req)
	if err != nil {
		h.writeError(w, err, "failed to create room")
		return
	}

	response.Created(w, response.M{"message": "Room created successfully", "room": rm})
}

// Update handles PUT /room/update/{id}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Room ID is required as req param")
		return
	}

	var req UpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	rm, err := h.service.Update(r.Context(), middleware.GetRole(r.Context()), id, &req)
	if err != nil {
		h.writeError(w, err, "failed to update room")
		return
	}

	response.OK(w, response.M{"message": "Room updated successfully", "room": rm})
}

// Delete handles DELETE /room/delete/{id}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Room ID is required as req param")
		return
	}

	rm, err := h.service.Delete(r.Context(), middleware.GetRole(r.Context()), id)
	if err != nil {
		h.writeError(w, err, "failed to delete room")
		return
	}

	response.OK(w, response.M{"message": "Room deleted successfully", "room": rm})
}

func (h *Handler) writeError(w http.ResponseWriter, err error, logMsg string) {
	switch err {
	case ErrForbidden:
		response.Forbidden(w, "Insufficient permissions")
	case ErrMissingFields:
		response.BadRequest(w, "Room number, room type, price, and beds values are required")
	case ErrInvalidRoomNumber:
		response.BadRequest(w, "Invalid room number format")
	case ErrInvalidType:
		response.BadRequest(w, "Invalid room type")
	case ErrInvalidPrice:
		response.BadRequest(w, "Invalid price format")
	case ErrInvalidBeds:
		response.BadRequest(w, "Invalid number of beds")
	case ErrDuplicateRoomNumber:
		response.Conflict(w, "Room number already exists")
	case ErrHasActiveBookings:
		response.Conflict(w, "Room has active bookings and cannot be deleted")
	case ErrNotFound:
		response.NotFound(w, "Room not found")
	default:
		log.Error().Err(err).Msg(logMsg)
		response.InternalError(w)
	}
}
