package booking

import (
	"context"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/innkeep/innkeep-api/internal/domain/payment"
	"github.com/innkeep/innkeep-api/internal/domain/room"
	"github.com/innkeep/innkeep-api/internal/metrics"
	"github.com/innkeep/innkeep-api/internal/pkg/policy"
	"github.com/innkeep/innkeep-api/internal/pkg/validator"
)

// Service contains booking business logic
type Service struct {
	repo Repository
}

// NewService creates new booking service
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// CheckAvailability answers each request independently and returns results in
// input order. A failed request (bad room type, bad dates) yields an
// unavailable result rather than failing the whole batch.
func (s *Service) CheckAvailability(ctx context.Context, reqs []AvailabilityRequest) ([]AvailabilityResult, error) {
	results := make([]AvailabilityResult, 0, len(reqs))

	for _, req := range reqs {
		result := AvailabilityResult{
			RoomType:          req.RoomType,
			QuantityRequested: req.Quantity,
		}

		if !room.IsValidType(req.RoomType) || req.Quantity <= 0 ||
			req.CheckInDate.IsZero() || req.CheckOutDate.IsZero() ||
			!req.CheckInDate.Before(req.CheckOutDate) {
			results = append(results, result)
			continue
		}

		candidates, err := s.repo.RoomsByType(ctx, room.Type(req.RoomType))
		if err != nil {
			return nil, err
		}

		ids := make([]uuid.UUID, 0, len(candidates))
		for _, rm := range candidates {
			ids = append(ids, rm.ID)
		}

		busy, err := s.repo.BusyRoomIDs(ctx, ids, req.CheckInDate, req.CheckOutDate)
		if err != nil {
			return nil, err
		}

		nights := Nights(req.CheckInDate, req.CheckOutDate)
		free := make([]RoomOffer, 0, len(candidates))
		for _, rm := range candidates {
			if busy[rm.ID] {
				continue
			}
			free = append(free, RoomOffer{
				RoomID: rm.ID,
				Price:  rm.Price * nights,
			})
		}

		result.QuantityAvailable = len(free)
		if len(free) >= req.Quantity {
			result.Available = true
			result.Rooms = free[:req.Quantity]
		}
		results = append(results, result)
	}

	return results, nil
}

// Book validates the batch up front, then hands it to the repository as a
// single transaction. Any conflict aborts the whole batch.
func (s *Service) Book(ctx context.Context, customerID uuid.UUID, req BookRequest) ([]Booking, []payment.Payment, error) {
	if len(req.Bookings) == 0 {
		return nil, nil, ErrEmptyBookingList
	}
	if !validator.ValidMoney(req.TotalAmount) {
		return nil, nil, ErrInvalidAmount
	}
	amount, err := strconv.ParseFloat(req.TotalAmount, 64)
	if err != nil || amount <= 0 {
		return nil, nil, ErrInvalidAmount
	}
	if req.PaymentMethod == "" {
		return nil, nil, ErrPaymentMethodRequired
	}
	for _, entry := range req.Bookings {
		if entry.RoomID == uuid.Nil ||
			entry.CheckInDate.IsZero() || entry.CheckOutDate.IsZero() ||
			!entry.CheckInDate.Before(entry.CheckOutDate) {
			return nil, nil, ErrInvalidDateRange
		}
	}

	bookings, payments, err := s.repo.Book(ctx, customerID, req.Bookings, amount, req.PaymentMethod)
	if err != nil {
		if _, ok := err.(*ConflictError); ok {
			metrics.IncBookingConflict()
		}
		return nil, nil, err
	}

	metrics.AddBookingsCreated(len(bookings))
	log.Info().
		Str("customer_id", customerID.String()).
		Int("count", len(bookings)).
		Msg("bookings created")

	return bookings, payments, nil
}

// Cancel marks the booking Cancelled. Ownership is enforced in the query, so
// a foreign booking id behaves exactly like a missing one.
func (s *Service) Cancel(ctx context.Context, id, customerID uuid.UUID) (*Booking, error) {
	return s.repo.Cancel(ctx, id, customerID)
}

func (s *Service) ListMine(ctx context.Context, customerID uuid.UUID) ([]Booking, error) {
	return s.repo.ListByCustomer(ctx, customerID)
}

func (s *Service) GetByID(ctx context.Context, id, customerID uuid.UUID) (*Booking, error) {
	b, err := s.repo.GetByIDForCustomer(ctx, id, customerID)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, ErrNotFound
	}
	return b, nil
}

// Export collects report rows for the date window. Admin only.
func (s *Service) Export(ctx context.Context, role string, from, to time.Time) ([]ExportRow, error) {
	if !policy.Allow(role, policy.ActionExportBookings) {
		return nil, ErrForbidden
	}
	if !from.Before(to) {
		return nil, ErrInvalidDateRange
	}
	return s.repo.ListBetween(ctx, from, to)
}
