package user

import (
	"time"

	"github.com/google/uuid"
)

// UpdateProfileRequest for PUT /user/update-profile. All fields optional;
// only supplied fields change.
type UpdateProfileRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=100"`
	PhoneNumber *string `json:"phoneNumber" validate:"omitempty,max=32"`
	Address     *string `json:"address" validate:"omitempty,max=255"`
}

// ChangePasswordRequest for PUT /user/change-password
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required"`
}

// Response represents a user in API responses
type Response struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Role        string    `json:"role"`
	PhoneNumber string    `json:"phoneNumber,omitempty"`
	Address     string    `json:"address,omitempty"`
	CreatedAt   string    `json:"createdAt"`
}

// NewResponse creates a Response from a User
func NewResponse(u *User) Response {
	return Response{
		ID:          u.ID,
		Name:        u.Name,
		Email:       u.Email,
		Role:        string(u.Role),
		PhoneNumber: u.PhoneNumber.String,
		Address:     u.Address.String,
		CreatedAt:   u.CreatedAt.Format(time.RFC3339),
	}
}
