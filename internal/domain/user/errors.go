package user

import "errors"

var (
	ErrNotFound        = errors.New("user not found")
	ErrWrongPassword   = errors.New("current password is incorrect")
	ErrInvalidName     = errors.New("invalid name format")
	ErrInvalidPassword = errors.New("invalid password format")
)
