package domain

import "errors"

var (
	ErrEventNotFound   = errors.New("event not found")
	ErrUserNotFound    = errors.New("user not found")
	ErrBookingNotFound = errors.New("booking not found")
)

var (
	ErrCapacityExceeded    = errors.New("not enough seats available")
	ErrInvalidTransition   = errors.New("invalid status transition")
	ErrInvalidTicketCount  = errors.New("ticket count must be positive")
	ErrConcurrencyConflict = errors.New("concurrent capacity update conflict")
)

var (
	ErrUsernameTaken = errors.New("username is already taken")
)

var (
	ErrValidation = errors.New("validation error")
)
