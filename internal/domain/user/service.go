package user

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/innkeep/innkeep-api/internal/pkg/password"
	"github.com/innkeep/innkeep-api/internal/pkg/validator"
)

// Service handles user profile business logic
type Service struct {
	repo Repository
}

// NewService creates user service
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// GetInfo returns the user's profile
func (s *Service) GetInfo(ctx context.Context, userID uuid.UUID) (*Response, error) {
	u, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrNotFound
	}

	resp := NewResponse(u)
	return &resp, nil
}

// UpdateProfile applies a partial patch to the user's profile
func (s *Service) UpdateProfile(ctx context.Context, userID uuid.UUID, req *UpdateProfileRequest) (*Response, error) {
	u, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrNotFound
	}

	if req.Name != nil {
		if !validator.ValidName(*req.Name) {
			return nil, ErrInvalidName
		}
		u.Name = *req.Name
	}
	if req.PhoneNumber != nil {
		u.PhoneNumber = sql.NullString{String: *req.PhoneNumber, Valid: *req.PhoneNumber != ""}
	}
	if req.Address != nil {
		u.Address = sql.NullString{String: *req.Address, Valid: *req.Address != ""}
	}

	if err := s.repo.UpdateProfile(ctx, u); err != nil {
		return nil, err
	}

	resp := NewResponse(u)
	return &resp, nil
}

// ChangePassword verifies the current password and stores a new hash
func (s *Service) ChangePassword(ctx context.Context, userID uuid.UUID, req *ChangePasswordRequest) error {
	u, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if u == nil {
		return ErrNotFound
	}

	if !password.Verify(req.CurrentPassword, u.PasswordHash) {
		return ErrWrongPassword
	}

	if !validator.ValidPassword(req.NewPassword) {
		return ErrInvalidPassword
	}

	hash, err := password.Hash(req.NewPassword)
	if err != nil {
		return err
	}

	return s.repo.UpdatePassword(ctx, userID, hash)
}
