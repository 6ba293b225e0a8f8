package payment

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// Repository defines payment data access interface. Payment rows are
// created by the booking orchestrator inside its transaction; this
// repository only reads.
type Repository interface {
	List(ctx context.Context) ([]Payment, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Payment, error)
}

type repository struct {
	db *sqlx.DB
}

// NewRepository creates new payment repository
func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) List(ctx context.Context) ([]Payment, error) {
	query := `
		SELECT id, booking_id, amount, payment_method, transaction_status, transaction_id, created_at
		FROM payments ORDER BY created_at DESC
	`
	payments := []Payment{}
	if err := r.db.SelectContext(ctx, &payments, query); err != nil {
		return nil, fmt.Errorf("payment repository list: %w", err)
	}
	return payments, nil
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Payment, error) {
	query := `
		SELECT id, booking_id, amount, payment_method, transaction_status, transaction_id, created_at
		FROM payments WHERE id = $1
	`
	var p Payment
	err := r.db.GetContext(ctx, &p, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}
