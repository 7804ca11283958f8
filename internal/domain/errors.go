package domain

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a lookup by id or key yields nothing.
var ErrNotFound = errors.New("not found")

// Sentinel errors for specific lookups. Each wraps ErrNotFound so callers may
// match either the specific or the general error.
var (
	ErrUserNotFound         = fmt.Errorf("user %w", ErrNotFound)
	ErrEventNotFound        = fmt.Errorf("event %w", ErrNotFound)
	ErrRegistrationNotFound = fmt.Errorf("registration %w", ErrNotFound)
)

// Sentinel errors for uniqueness and input checks.
var (
	ErrDuplicateUsername = errors.New("username already exists")
	ErrAlreadyRegistered = errors.New("user is already registered for this event")
	ErrInvalidStatus     = errors.New("invalid registration status")
	ErrInvalidInput      = errors.New("invalid input")
)
