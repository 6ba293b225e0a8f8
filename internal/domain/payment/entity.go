package payment

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// Status represents payment transaction status (matches transaction_status enum)
type Status string

const (
	StatusPending Status = "Pending"
	StatusSuccess Status = "Success"
	StatusFailed  Status = "Failed"
)

// Payment represents a payment record tied to a booking (matches payments
// table). Rows are written inside the booking transaction and never mutated
// afterwards.
type Payment struct {
	ID                uuid.UUID      `db:"id" json:"id"`
	BookingID         uuid.UUID      `db:"booking_id" json:"bookingId"`
	Amount            float64        `db:"amount" json:"amount"`
	PaymentMethod     string         `db:"payment_method" json:"paymentMethod"`
	TransactionStatus Status         `db:"transaction_status" json:"transactionStatus"`
	TransactionID     sql.NullString `db:"transaction_id" json:"transactionId,omitempty"`
	CreatedAt         time.Time      `db:"created_at" json:"timestamp"`
}
