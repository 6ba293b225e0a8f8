package booking

import (
	"time"

	"github.com/google/uuid"
)

// AvailabilityRequest is one entry of POST /booking/check-availability
type AvailabilityRequest struct {
	RoomType     string    `json:"roomType" validate:"required"`
	Quantity     int       `json:"quantity" validate:"required,gt=0"`
	CheckInDate  time.Time `json:"checkInDate" validate:"required"`
	CheckOutDate time.Time `json:"checkOutDate" validate:"required"`
}

// RoomOffer is a free room with its price for the requested stay
type RoomOffer struct {
	RoomID uuid.UUID `json:"roomId"`
	Price  float64   `json:"price"`
}

// AvailabilityResult is the per-request answer, returned in input order
type AvailabilityResult struct {
	RoomType          string      `json:"roomType"`
	Available         bool        `json:"available"`
	QuantityRequested int         `json:"quantityRequested"`
	QuantityAvailable int         `json:"quantityAvailable"`
	Rooms             []RoomOffer `json:"rooms,omitempty"`
}

// Entry is one room/date-range pair of a booking batch
type Entry struct {
	RoomID       uuid.UUID `json:"roomId"`
	CheckInDate  time.Time `json:"checkInDate"`
	CheckOutDate time.Time `json:"checkOutDate"`
}

// BookRequest for POST /booking/book. The whole batch commits or none of it
// does. totalAmount arrives as a string and is validated with the money
// format check before parsing; the same amount and payment method apply to
// every booking in the batch.
type BookRequest struct {
	Bookings      []Entry `json:"bookings"`
	TotalAmount   string  `json:"totalAmount"`
	PaymentMethod string  `json:"paymentMethod"`
}
