package payment

import (
	"context"
	"strconv"

	"github.com/google/uuid"

	"github.com/innkeep/innkeep-api/internal/pkg/policy"
	"github.com/innkeep/innkeep-api/internal/pkg/stripegw"
	"github.com/innkeep/innkeep-api/internal/pkg/validator"
)

// IntentCreator stages a payment authorization with the external gateway
type IntentCreator interface {
	CreateIntent(ctx context.Context, amount float64) (*stripegw.Intent, error)
}

// Service handles payment business logic
type Service struct {
	repo    Repository
	gateway IntentCreator
}

// NewService creates payment service
func NewService(repo Repository, gateway IntentCreator) *Service {
	return &Service{repo: repo, gateway: gateway}
}

// CreateIntent validates the amount and stages a payment intent with the
// gateway, returning the client secret the frontend needs to confirm it.
func (s *Service) CreateIntent(ctx context.Context, amount string) (string, error) {
	if amount == "" {
		return "", ErrAmountRequired
	}
	if !validator.ValidMoney(amount) {
		return "", ErrInvalidAmount
	}

	value, _ := strconv.ParseFloat(amount, 64)

	if s.gateway == nil {
		return "", ErrGateway
	}
	intent, err := s.gateway.CreateIntent(ctx, value)
	if err != nil {
		return "", ErrGateway
	}

	return intent.ClientSecret, nil
}

// List returns all payment records. Admin only.
func (s *Service) List(ctx context.Context, role string) ([]Payment, error) {
	if !policy.Allow(role, policy.ActionViewPayments) {
		return nil, ErrForbidden
	}
	return s.repo.List(ctx)
}

// GetByID returns one payment record. Admin only.
func (s *Service) GetByID(ctx context.Context, role string, id uuid.UUID) (*Payment, error) {
	if !policy.Allow(role, policy.ActionViewPayments) {
		return nil, ErrForbidden
	}

	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrNotFound
	}
	return p, nil
}
