package room

import "errors"

var (
	ErrNotFound            = errors.New("room not found")
	ErrDuplicateRoomNumber = errors.New("room number already exists")
	ErrInvalidRoomNumber   = errors.New("invalid room number format")
	ErrInvalidType         = errors.New("invalid room type")
	ErrInvalidPrice        = errors.New("invalid price format")
	ErrInvalidBeds         = errors.New("invalid number of beds")
	ErrMissingFields       = errors.New("room number, room type, price, and beds values are required")
	ErrHasActiveBookings   = errors.New("room has active bookings")
	ErrForbidden           = errors.New("insufficient permissions")
)
