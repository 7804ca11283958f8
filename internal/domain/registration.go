package domain

import (
	"context"
	"time"
)

// RegistrationStatus is the state of an attendee's registration. Any valid status
// may replace any other; no transition rules apply.
type RegistrationStatus string

const (
	StatusPending   RegistrationStatus = "Pending"
	StatusConfirmed RegistrationStatus = "Confirmed"
	StatusCancelled RegistrationStatus = "Cancelled"
)

// Valid reports whether s is one of the known statuses.
func (s RegistrationStatus) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return true
	}
	return false
}

// ParseRegistrationStatus returns the status named by s or ErrInvalidStatus.
func ParseRegistrationStatus(s string) (RegistrationStatus, error) {
	status := RegistrationStatus(s)
	if !status.Valid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}

// Registration represents a user's registration for an event.
// swagger:model Registration
type Registration struct {
	ID           int64              `json:"id"`
	UserID       int64              `json:"userId"`
	EventID      int64              `json:"eventId"`
	Status       RegistrationStatus `json:"status"`
	RegisteredAt time.Time          `json:"registeredAt"`
}

// RegistrationInput holds the caller-supplied fields of a new Registration.
// An empty Status defaults to StatusPending.
type RegistrationInput struct {
	UserID  int64
	EventID int64
	Status  RegistrationStatus
}

// RegistrationRepository defines registration storage. RegisterForEvent inserts
// only when the (user, event) pair is free; otherwise it returns the existing
// registration together with ErrAlreadyRegistered.
type RegistrationRepository interface {
	RegisterForEvent(ctx context.Context, in RegistrationInput) (*Registration, error)
	GetRegistration(ctx context.Context, userID, eventID int64) (*Registration, error)
	GetRegistrationsByUser(ctx context.Context, userID int64) ([]*Registration, error)
	GetRegistrationsByEvent(ctx context.Context, eventID int64) ([]*Registration, error)
	UpdateRegistrationStatus(ctx context.Context, id int64, status RegistrationStatus) (*Registration, error)
}
