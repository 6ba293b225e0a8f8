package booking

import (
	"time"

	"github.com/google/uuid"
)

// Status represents booking status (matches booking_status enum)
type Status string

const (
	StatusPending   Status = "Pending"
	StatusConfirmed Status = "Confirmed"
	StatusCancelled Status = "Cancelled"
)

// Booking represents a reservation of one room for a half-open date range
// [check_in_date, check_out_date). Bookings are never deleted; cancellation
// flips the status.
type Booking struct {
	ID           uuid.UUID `db:"id" json:"id"`
	CustomerID   uuid.UUID `db:"customer_id" json:"customerId"`
	RoomID       uuid.UUID `db:"room_id" json:"roomId"`
	CheckInDate  time.Time `db:"check_in_date" json:"checkInDate"`
	CheckOutDate time.Time `db:"check_out_date" json:"checkOutDate"`
	TotalAmount  float64   `db:"total_amount" json:"totalAmount"`
	Status       Status    `db:"status" json:"status"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt    time.Time `db:"updated_at" json:"updatedAt"`
}

// Nights returns the stay length as the exact duration between the dates
// divided by 24h. Deliberately not a calendar-night count: fractional stays
// price fractionally, matching the billing behavior clients already see.
func Nights(checkIn, checkOut time.Time) float64 {
	return checkOut.Sub(checkIn).Hours() / 24
}

// Overlaps reports whether two half-open intervals [aIn, aOut) and
// [bIn, bOut) intersect.
func Overlaps(aIn, aOut, bIn, bOut time.Time) bool {
	return aIn.Before(bOut) && aOut.After(bIn)
}
