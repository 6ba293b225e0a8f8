package room

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// Repository defines room data access interface
type Repository interface {
	Create(ctx context.Context, room *Room) error
	List(ctx context.Context) ([]Room, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Room, error)
	Update(ctx context.Context, room *Room) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type repository struct {
	db *sqlx.DB
}

// NewRepository creates new room repository
func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, room *Room) error {
	query := `
		INSERT INTO rooms (id, room_number, type, price, amenities, beds, availability)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.ExecContext(ctx, query,
		room.ID,
		room.RoomNumber,
		room.Type,
		room.Price,
		room.Amenities,
		room.Beds,
		room.Availability,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateRoomNumber
		}
		return fmt.Errorf("room repository create: %w", err)
	}

	return nil
}

func (r *repository) List(ctx context.Context) ([]Room, error) {
	query := `
		SELECT id, room_number, type, price, amenities, beds, availability, created_at, updated_at
		FROM rooms ORDER BY room_number
	`
	rooms := []Room{}
	if err := r.db.SelectContext(ctx, &rooms, query); err != nil {
		return nil, fmt.Errorf("room repository list: %w", err)
	}
	return rooms, nil
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Room, error) {
	query := `
		SELECT id, room_number, type, price, amenities, beds, availability, created_at, updated_at
		FROM rooms WHERE id = $1
	`
	var room Room
	err := r.db.GetContext(ctx, &room, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &room, nil
}

func (r *repository) Update(ctx context.Context, room *Room) error {
	query := `
		UPDATE rooms
		SET room_number = $2, type = $3, price = $4, amenities = $5, beds = $6,
		    availability = $7, updated_at = NOW()
		WHERE id = $1
	`

	_, err := r.db.ExecContext(ctx, query,
		room.ID,
		room.RoomNumber,
		room.Type,
		room.Price,
		room.Amenities,
		room.Beds,
		room.Availability,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateRoomNumber
		}
		return fmt.Errorf("room repository update: %w", err)
	}

	return nil
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM rooms WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("room repository delete: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// isUniqueViolation reports whether err is a Postgres unique_violation
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
