package payment

import "errors"

var (
	ErrNotFound       = errors.New("payment not found")
	ErrAmountRequired = errors.New("amount value is required")
	ErrInvalidAmount  = errors.New("invalid amount format")
	ErrForbidden      = errors.New("insufficient permissions")
	ErrGateway        = errors.New("payment gateway error")
)
