package room

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Type represents room type (matches room_type enum)
type Type string

const (
	TypeStandard Type = "Standard"
	TypeDeluxe   Type = "Deluxe"
	TypeSuite    Type = "Suite"
)

// IsValidType checks if t is a known room type
func IsValidType(t string) bool {
	switch Type(t) {
	case TypeStandard, TypeDeluxe, TypeSuite:
		return true
	}
	return false
}

// Room represents a hotel room (matches rooms table)
type Room struct {
	ID           uuid.UUID      `db:"id" json:"id"`
	RoomNumber   int            `db:"room_number" json:"roomNumber"`
	Type         Type           `db:"type" json:"type"`
	Price        float64        `db:"price" json:"price"`
	Amenities    pq.StringArray `db:"amenities" json:"amenities"`
	Beds         int            `db:"beds" json:"beds"`
	Availability bool           `db:"availability" json:"availability"`
	CreatedAt    time.Time      `db:"created_at" json:"createdAt"`
	UpdatedAt    time.Time      `db:"updated_at" json:"updatedAt"`
}
