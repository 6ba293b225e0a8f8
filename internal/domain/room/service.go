package room

import (
	"context"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/innkeep/innkeep-api/internal/pkg/policy"
	"github.com/innkeep/innkeep-api/internal/pkg/validator"
)

// BookingCounter reports how many non-cancelled bookings reference a room.
// Implemented by the booking repository; declared here to keep the room
// package free of a booking import.
type BookingCounter interface {
	CountActiveByRoom(ctx context.Context, roomID uuid.UUID) (int, error)
}

// Service handles room catalog business logic
type Service struct {
	repo     Repository
	bookings BookingCounter
}

// NewService creates room service
func NewService(repo Repository, bookings BookingCounter) *Service {
	return &Service{repo: repo, bookings: bookings}
}

// Create validates and creates a room. Admin only.
func (s *Service) Create(ctx context.Context, role string, req *CreateRequest) (*Room, error) {
	if !policy.Allow(role, policy.ActionManageRooms) {
		return nil, ErrForbidden
	}

	if req.RoomNumber == "" || req.Type == "" || req.Price == "" || req.Beds == "" {
		return nil, ErrMissingFields
	}
	if !validator.ValidRoomNumber(req.RoomNumber) {
		return nil, ErrInvalidRoomNumber
	}
	if !IsValidType(req.Type) {
		return nil, ErrInvalidType
	}
	if !validator.ValidMoney(req.Price) {
		return nil, ErrInvalidPrice
	}
	if !validator.ValidBeds(req.Beds) {
		return nil, ErrInvalidBeds
	}

	roomNumber, _ := strconv.Atoi(req.RoomNumber)
	price, _ := strconv.ParseFloat(req.Price, 64)
	beds, _ := strconv.Atoi(req.Beds)

	availability := true
	if req.Availability != nil {
		availability = *req.Availability
	}

	now := time.Now()
	rm := &Room{
		ID:           uuid.New(),
		RoomNumber:   roomNumber,
		Type:         Type(req.Type),
		Price:        price,
		Amenities:    req.Amenities,
		Beds:         beds,
		Availability: availability,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(ctx, rm); err != nil {
		return nil, err
	}

	return rm, nil
}

// List returns all rooms
func (s *Service) List(ctx context.Context) ([]Room, error) {
	return s.repo.List(ctx)
}

// GetByID returns one room
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*Room, error) {
	rm, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if rm == nil {
		return nil, ErrNotFound
	}
	return rm, nil
}

// Update applies a partial patch to a room. Admin only.
func (s *Service) Update(ctx context.Context, role string, id uuid.UUID, req *UpdateRequest) (*Room, error) {
	if !policy.Allow(role, policy.ActionManageRooms) {
		return nil, ErrForbidden
	}

	if req.RoomNumber != "" && !validator.ValidRoomNumber(req.RoomNumber) {
		return nil, ErrInvalidRoomNumber
	}
	if req.Type != "" && !IsValidType(req.Type) {
		return nil, ErrInvalidType
	}
	if req.Price != "" && !validator.ValidMoney(req.Price) {
		return nil, ErrInvalidPrice
	}
	if req.Beds != "" && !validator.ValidBeds(req.Beds) {
		return nil, ErrInvalidBeds
	}

	rm, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if rm == nil {
		return nil, ErrNotFound
	}

	if req.RoomNumber != "" {
		rm.RoomNumber, _ = strconv.Atoi(req.RoomNumber)
	}
	if req.Type != "" {
		rm.Type = Type(req.Type)
	}
	if req.Price != "" {
		rm.Price, _ = strconv.ParseFloat(req.Price, 64)
	}
	if len(req.Amenities) > 0 {
		rm.Amenities = req.Amenities
	}
	if req.Beds != "" {
		rm.Beds, _ = strconv.Atoi(req.Beds)
	}
	if req.Availability != nil {
		rm.Availability = *req.Availability
	}

	if err := s.repo.Update(ctx, rm); err != nil {
		return nil, err
	}

	return rm, nil
}

// Delete hard-deletes a room. Admin only. Deletion is restricted while
// non-cancelled bookings still reference the room.
func (s *Service) Delete(ctx context.Context, role string, id uuid.UUID) (*Room, error) {
	if !policy.Allow(role, policy.ActionManageRooms) {
		return nil, ErrForbidden
	}

	rm, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if rm == nil {
		return nil, ErrNotFound
	}

	active, err := s.bookings.CountActiveByRoom(ctx, id)
	if err != nil {
		return nil, err
	}
	if active > 0 {
		return nil, ErrHasActiveBookings
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return nil, err
	}

	return rm, nil
}
