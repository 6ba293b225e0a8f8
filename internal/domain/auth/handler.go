package auth

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/innkeep/innkeep-api/internal/pkg/response"
	"github.com/innkeep/innkeep-api/internal/pkg/validator"
)

// Handler handles auth HTTP requests
type Handler struct {
	service *Service
}

// NewHandler creates auth handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Signup handles POST /signup
func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	if req.Name == "" || req.Email == "" || req.Password == "" {
		response.BadRequest(w, "Name, email, and password are required")
		return
	}

	result, err := h.service.Signup(r.Context(), &req)
	if err != nil {
		switch err {
		case ErrInvalidName:
			response.BadRequest(w, "Invalid name format")
		case ErrInvalidEmail:
			response.BadRequest(w, "Invalid email format")
		case ErrInvalidPassword:
			response.BadRequest(w, "Invalid password format")
		case ErrEmailAlreadyExists:
			response.Conflict(w, "User already exists with this email")
		default:
			log.Error().Err(err).Str("email", req.Email).Msg("failed to sign up user")
			response.InternalError(w)
		}
		return
	}

	response.Created(w, response.M{
		"message": "User created successfully",
		"user":    result.User,
		"tokens":  result.Tokens,
	})
}

// Login handles POST /login
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	if req.Email == "" || req.Password == "" {
		response.BadRequest(w, "Email and password are required")
		return
	}

	result, err := h.service.Login(r.Context(), &req)
	if err != nil {
		switch err {
		case ErrInvalidCredentials:
			response.Unauthorized(w, "Invalid credentials")
		default:
			log.Error().Err(err).Str("email", req.Email).Msg("login failed with internal error")
			response.InternalError(w)
		}
		return
	}

	response.OK(w, response.M{
		"message": "Login successful",
		"user":    result.User,
		"tokens":  result.Tokens,
	})
}

// Refresh handles POST/PUT /refresh
func (h *Handler) Refresh(w http.ResponseWriter, r *http.Request) {
	var req RefreshRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		response.BadRequest(w, validator.FirstError(errs))
		return
	}

	result, err := h.service.Refresh(r.Context(), req.RefreshToken)
	if err != nil {
		switch err {
		case ErrInvalidRefreshToken, ErrUserNotFound:
			response.Unauthorized(w, "Invalid or expired refresh token")
		default:
			log.Error().Err(err).Msg("token refresh failed")
			response.InternalError(w)
		}
		return
	}

	response.OK(w, response.M{
		"message": "Tokens refreshed successfully",
		"user":    result.User,
		"tokens":  result.Tokens,
	})
}

// Logout handles POST/GET /logout
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	// Body is optional; logging out without a refresh token is a no-op
	var req RefreshRequest
	_ = json.NewDecoder(r.Body).Decode(&req)

	if err := h.service.Logout(r.Context(), req.RefreshToken); err != nil {
		log.Error().Err(err).Msg("logout failed")
		response.InternalError(w)
		return
	}

	response.OK(w, response.M{"message": "Logged out successfully"})
}
