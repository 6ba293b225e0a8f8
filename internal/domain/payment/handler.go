package payment

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/innkeep/innkeep-api/internal/middleware"
	"github.com/innkeep/innkeep-api/internal/pkg/response"
)

// Handler handles payment HTTP requests
type Handler struct {
	service *Service
}

// NewHandler creates payment handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// IntentRequest for POST /payment/intent
type IntentRequest struct {
	Amount string `json:"amount"`
}

// CreateIntent handles POST /payment/intent
func (h *Handler) CreateIntent(w http.ResponseWriter, r *http.Request) {
	var req IntentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	clientSecret, err := h.service.CreateIntent(r.Context(), req.Amount)
	if err != nil {
		switch err {
		case ErrAmountRequired:
			response.BadRequest(w, "Amount value is required")
		case ErrInvalidAmount:
			response.BadRequest(w, "Invalid amount format")
		default:
			log.Error().Err(err).Msg("payment intent creation failed")
			response.InternalError(w)
		}
		return
	}

	response.Created(w, response.M{
		"message":       "Payment intent successfully created",
		"paymentIntent": clientSecret,
	})
}

// List handles GET /payment
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	payments, err := h.service.List(r.Context(), middleware.GetRole(r.Context()))
	if err != nil {
		switch err {
		case ErrForbidden:
			response.Forbidden(w, "Insufficient permissions")
		default:
			log.Error().Err(err).Msg("failed to list payments")
			response.InternalError(w)
		}
		return
	}

	response.OK(w, response.M{"payments": payments})
}

// GetByID handles GET /payment/get/{paymentId}
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "paymentId"))
	if err != nil {
		response.BadRequest(w, "Payment ID is required as req param")
		return
	}

	p, err := h.service.GetByID(r.Context(), middleware.GetRole(r.Context()), id)
	if err != nil {
		switch err {
		case ErrForbidden:
			response.Forbidden(w, "Insufficient permissions")
		case ErrNotFound:
			response.NotFound(w, "Payment not found")
		default:
			log.Error().Err(err).Str("payment_id", id.String()).Msg("failed to fetch payment")
			response.InternalError(w)
		}
		return
	}

	response.OK(w, response.M{"payment": p})
}
