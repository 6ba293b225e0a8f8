package auth

import (
	"github.com/innkeep/innkeep-api/internal/domain/user"
)

// SignupRequest for POST /signup
type SignupRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,max=255"`
	Password string `json:"password" validate:"required"`
}

// LoginRequest for POST /login
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// RefreshRequest for POST/PUT /refresh and /logout
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

// TokensResponse represents tokens in API responses
type TokensResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	ExpiresIn    int    `json:"expiresIn"` // seconds until access token expires
}

// AuthResponse returned after signup/login/refresh
type AuthResponse struct {
	User   user.Response  `json:"user"`
	Tokens TokensResponse `json:"tokens"`
}
