package booking

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrNotFound              = errors.New("booking not found")
	ErrRoomNotFound          = errors.New("room not found")
	ErrEmptyBookingList      = errors.New("booking list is empty")
	ErrInvalidAmount         = errors.New("invalid total amount format")
	ErrPaymentMethodRequired = errors.New("payment method is required")
	ErrInvalidDateRange      = errors.New("invalid check-in or check-out date")
	ErrInvalidQuantity       = errors.New("quantity must be a positive integer")
	ErrForbidden             = errors.New("insufficient permissions")
)

// ConflictError reports a date-range collision on a room. It aborts the
// whole batch; the first conflict encountered is the one surfaced.
type ConflictError struct {
	RoomNumber int
	CheckIn    time.Time
	CheckOut   time.Time
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("room %d is already booked for %s to %s",
		e.RoomNumber,
		e.CheckIn.Format("2006-01-02"),
		e.CheckOut.Format("2006-01-02"),
	)
}
