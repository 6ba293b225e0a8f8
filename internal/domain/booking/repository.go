package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/innkeep/innkeep-api/internal/domain/payment"
	"github.com/innkeep/innkeep-api/internal/domain/room"
)

// Repository defines booking data access. Book and Cancel own their
// transactions: the conflict re-check inside Book is the authoritative
// enforcement point for the no-double-booking invariant.
type Repository interface {
	RoomsByType(ctx context.Context, roomType room.Type) ([]room.Room, error)
	BusyRoomIDs(ctx context.Context, roomIDs []uuid.UUID, checkIn, checkOut time.Time) (map[uuid.UUID]bool, error)
	Book(ctx context.Context, customerID uuid.UUID, entries []Entry, totalAmount float64, paymentMethod string) ([]Booking, []payment.Payment, error)
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]Booking, error)
	GetByIDForCustomer(ctx context.Context, id, customerID uuid.UUID) (*Booking, error)
	Cancel(ctx context.Context, id, customerID uuid.UUID) (*Booking, error)
	CountActiveByRoom(ctx context.Context, roomID uuid.UUID) (int, error)
	ListBetween(ctx context.Context, from, to time.Time) ([]ExportRow, error)
}

type repository struct {
	db *sqlx.DB
}

// NewRepository creates new booking repository
func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) RoomsByType(ctx context.Context, roomType room.Type) ([]room.Room, error) {
	query := `
		SELECT id, room_number, type, price, amenities, beds, availability, created_at, updated_at
		FROM rooms WHERE type = $1 ORDER BY room_number
	`
	rooms := []room.Room{}
	if err := r.db.SelectContext(ctx, &rooms, query, roomType); err != nil {
		return nil, fmt.Errorf("booking repository rooms by type: %w", err)
	}
	return rooms, nil
}

// BusyRoomIDs returns the subset of roomIDs that have at least one Confirmed
// booking overlapping the half-open range [checkIn, checkOut).
func (r *repository) BusyRoomIDs(ctx context.Context, roomIDs []uuid.UUID, checkIn, checkOut time.Time) (map[uuid.UUID]bool, error) {
	if len(roomIDs) == 0 {
		return map[uuid.UUID]bool{}, nil
	}

	query, args, err := sqlx.In(`
		SELECT DISTINCT room_id
		FROM bookings
		WHERE room_id IN (?)
		  AND status = 'Confirmed'
		  AND check_in_date < ?
		  AND check_out_date > ?
	`, roomIDs, checkOut, checkIn)
	if err != nil {
		return nil, fmt.Errorf("booking repository busy rooms: %w", err)
	}

	var ids []uuid.UUID
	if err := r.db.SelectContext(ctx, &ids, r.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("booking repository busy rooms: %w", err)
	}

	busy := make(map[uuid.UUID]bool, len(ids))
	for _, id := range ids {
		busy[id] = true
	}
	return busy, nil
}

// Book commits a batch of bookings and their paired payments as one
// transaction. Each room row is locked before the overlap re-check, so two
// concurrent attempts on the same room serialize and the loser sees the
// winner's row.
func (r *repository) Book(ctx context.Context, customerID uuid.UUID, entries []Entry, totalAmount float64, paymentMethod string) ([]Booking, []payment.Payment, error) {
	tx, err := r.db.BeginTxx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		return nil, nil, fmt.Errorf("booking repository begin tx: %w", err)
	}
	defer tx.Rollback()

	now := time.Now()
	bookings := make([]Booking, 0, len(entries))
	payments := make([]payment.Payment, 0, len(entries))

	for _, entry := range entries {
		var rm room.Room
		err := tx.GetContext(ctx, &rm, `
			SELECT id, room_number, type, price, amenities, beds, availability, created_at, updated_at
			FROM rooms WHERE id = $1 FOR UPDATE
		`, entry.RoomID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil, nil, ErrRoomNotFound
			}
			return nil, nil, fmt.Errorf("booking repository lock room: %w", err)
		}

		var overlapping int
		err = tx.GetContext(ctx, &overlapping, `
			SELECT COUNT(*)
			FROM bookings
			WHERE room_id = $1
			  AND status <> 'Cancelled'
			  AND check_in_date < $3
			  AND check_out_date > $2
		`, entry.RoomID, entry.CheckInDate, entry.CheckOutDate)
		if err != nil {
			return nil, nil, fmt.Errorf("booking repository conflict check: %w", err)
		}
		if overlapping > 0 {
			return nil, nil, &ConflictError{
				RoomNumber: rm.RoomNumber,
				CheckIn:    entry.CheckInDate,
				CheckOut:   entry.CheckOutDate,
			}
		}

		b := Booking{
			ID:           uuid.New(),
			CustomerID:   customerID,
			RoomID:       entry.RoomID,
			CheckInDate:  entry.CheckInDate,
			CheckOutDate: entry.CheckOutDate,
			TotalAmount:  totalAmount,
			Status:       StatusConfirmed,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		_, err = tx.ExecContext(ctx, `
			INSERT INTO bookings (id, customer_id, room_id, check_in_date, check_out_date, total_amount, status)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
		`, b.ID, b.CustomerID, b.RoomID, b.CheckInDate, b.CheckOutDate, b.TotalAmount, b.Status)
		if err != nil {
			return nil, nil, fmt.Errorf("booking repository insert booking: %w", err)
		}

		p := payment.Payment{
			ID:                uuid.New(),
			BookingID:         b.ID,
			Amount:            totalAmount,
			PaymentMethod:     paymentMethod,
			TransactionStatus: payment.StatusSuccess,
			CreatedAt:         now,
		}
		_, err = tx.ExecContext(ctx, `
			INSERT INTO payments (id, booking_id, amount, payment_method, transaction_status)
			VALUES ($1, $2, $3, $4, $5)
		`, p.ID, p.BookingID, p.Amount, p.PaymentMethod, p.TransactionStatus)
		if err != nil {
			return nil, nil, fmt.Errorf("booking repository insert payment: %w", err)
		}

		_, err = tx.ExecContext(ctx, `
			UPDATE rooms SET availability = false, updated_at = NOW() WHERE id = $1
		`, entry.RoomID)
		if err != nil {
			return nil, nil, fmt.Errorf("booking repository flag room: %w", err)
		}

		bookings = append(bookings, b)
		payments = append(payments, p)
	}

	if err := tx.Commit(); err != nil {
		return nil, nil, fmt.Errorf("booking repository commit: %w", err)
	}

	return bookings, payments, nil
}

func (r *repository) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]Booking, error) {
	query := `
		SELECT id, customer_id, room_id, check_in_date, check_out_date, total_amount, status, created_at, updated_at
		FROM bookings WHERE customer_id = $1 ORDER BY created_at DESC
	`
	bookings := []Booking{}
	if err := r.db.SelectContext(ctx, &bookings, query, customerID); err != nil {
		return nil, fmt.Errorf("booking repository list by customer: %w", err)
	}
	return bookings, nil
}

// GetByIDForCustomer scopes the lookup to the requesting customer so a
// non-owner cannot distinguish another user's booking from a missing one.
func (r *repository) GetByIDForCustomer(ctx context.Context, id, customerID uuid.UUID) (*Booking, error) {
	query := `
		SELECT id, customer_id, room_id, check_in_date, check_out_date, total_amount, status, created_at, updated_at
		FROM bookings WHERE id = $1 AND customer_id = $2
	`
	var b Booking
	err := r.db.GetContext(ctx, &b, query, id, customerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &b, nil
}

// Cancel flips the booking to Cancelled and re-enables the room's
// availability flag only when no other live booking still claims the room.
func (r *repository) Cancel(ctx context.Context, id, customerID uuid.UUID) (*Booking, error) {
	tx, err := r.db.BeginTxx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		return nil, fmt.Errorf("booking repository begin tx: %w", err)
	}
	defer tx.Rollback()

	var b Booking
	err = tx.GetContext(ctx, &b, `
		SELECT id, customer_id, room_id, check_in_date, check_out_date, total_amount, status, created_at, updated_at
		FROM bookings WHERE id = $1 AND customer_id = $2 FOR UPDATE
	`, id, customerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("booking repository fetch for cancel: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `
		UPDATE bookings SET status = 'Cancelled', updated_at = NOW() WHERE id = $1
	`, b.ID); err != nil {
		return nil, fmt.Errorf("booking repository cancel: %w", err)
	}
	b.Status = StatusCancelled

	var remaining int
	err = tx.GetContext(ctx, &remaining, `
		SELECT COUNT(*)
		FROM bookings
		WHERE room_id = $1
		  AND id <> $2
		  AND status <> 'Cancelled'
		  AND check_out_date > NOW()
	`, b.RoomID, b.ID)
	if err != nil {
		return nil, fmt.Errorf("booking repository remaining check: %w", err)
	}

	if remaining == 0 {
		if _, err := tx.ExecContext(ctx, `
			UPDATE rooms SET availability = true, updated_at = NOW() WHERE id = $1
		`, b.RoomID); err != nil {
			return nil, fmt.Errorf("booking repository release room: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("booking repository commit: %w", err)
	}

	return &b, nil
}

func (r *repository) CountActiveByRoom(ctx context.Context, roomID uuid.UUID) (int, error) {
	var n int
	err := r.db.GetContext(ctx, &n, `
		SELECT COUNT(*) FROM bookings WHERE room_id = $1 AND status <> 'Cancelled'
	`, roomID)
	if err != nil {
		return 0, fmt.Errorf("booking repository count active: %w", err)
	}
	return n, nil
}

// ExportRow is one line of the admin XLSX report
type ExportRow struct {
	ID            uuid.UUID `db:"id"`
	RoomNumber    int       `db:"room_number"`
	CustomerEmail string    `db:"customer_email"`
	CheckInDate   time.Time `db:"check_in_date"`
	CheckOutDate  time.Time `db:"check_out_date"`
	TotalAmount   float64   `db:"total_amount"`
	Status        Status    `db:"status"`
}

func (r *repository) ListBetween(ctx context.Context, from, to time.Time) ([]ExportRow, error) {
	query := `
		SELECT b.id, r.room_number, u.email AS customer_email,
		       b.check_in_date, b.check_out_date, b.total_amount, b.status
		FROM bookings b
		JOIN rooms r ON r.id = b.room_id
		JOIN users u ON u.id = b.customer_id
		WHERE b.check_in_date < $2 AND b.check_out_date > $1
		ORDER BY b.check_in_date, r.room_number
	`
	rows := []ExportRow{}
	if err := r.db.SelectContext(ctx, &rows, query, from, to); err != nil {
		return nil, fmt.Errorf("booking repository list between: %w", err)
	}
	return rows, nil
}
