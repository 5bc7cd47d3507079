package models

import "errors"

// Common errors used throughout the application. Handlers translate each of
// these to exactly one HTTP status; callers branch with errors.Is, never on
// message text.
var (
	ErrUserNotFound        = errors.New("user not found")
	ErrEventNotFound       = errors.New("event not found")
	ErrOrderNotFound       = errors.New("order not found")
	ErrUsernameTaken       = errors.New("username is already taken")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrForbidden           = errors.New("forbidden")
	ErrInvalidInput        = errors.New("invalid input")
	ErrInsufficientTickets = errors.New("not enough tickets available")
)
