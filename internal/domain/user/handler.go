package user

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/innkeep/innkeep-api/internal/middleware"
	"github.com/innkeep/innkeep-api/internal/pkg/response"
	"github.com/innkeep/innkeep-api/internal/pkg/validator"
)

// Handler handles user profile HTTP requests
type Handler struct {
	service *Service
}

// NewHandler creates user handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// GetInfo handles GET /user/user-info
func (h *Handler) GetInfo(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	resp, err := h.service.GetInfo(r.Context(), userID)
	if err != nil {
		switch err {
		case ErrNotFound:
			response.NotFound(w, "User not found")
		default:
			log.Error().Err(err).Str("user_id", userID.String()).Msg("failed to fetch user info")
			response.InternalError(w)
		}
		return
	}

	response.OK(w, response.M{"user": resp})
}

// UpdateProfile handles PUT /user/update-profile
func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		response.BadRequest(w, validator.FirstError(errs))
		return
	}

	userID := middleware.GetUserID(r.Context())

	resp, err := h.service.UpdateProfile(r.Context(), userID, &req)
	if err != nil {
		switch err {
		case ErrNotFound:
			response.NotFound(w, "User not found")
		case ErrInvalidName:
			response.BadRequest(w, "Invalid name format")
		default:
			log.Error().Err(err).Str("user_id", userID.String()).Msg("failed to update profile")
			response.InternalError(w)
		}
		return
	}

	response.OK(w, response.M{"message": "Profile updated successfully", "user": resp})
}

// ChangePassword handles PUT /user/change-password
func (h *Handler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	var req ChangePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		response.BadRequest(w, validator.FirstError(errs))
		return
	}

	userID := middleware.GetUserID(r.Context())

	if err := h.service.ChangePassword(r.Context(), userID, &req); err != nil {
		switch err {
		case ErrNotFound:
			response.NotFound(w, "User not found")
		case ErrWrongPassword:
			response.Unauthorized(w, "Current password is incorrect")
		case ErrInvalidPassword:
			response.BadRequest(w, "Invalid password format")
		default:
			log.Error().Err(err).Str("user_id", userID.String()).Msg("failed to change password")
			response.InternalError(w)
		}
		return
	}

	response.OK(w, response.M{"message": "Password changed successfully"})
}
