package domain

import (
	"context"
	"time"
)

// Event represents an organized event. OrganizerID is not enforced as a foreign key.
// swagger:model Event
type Event struct {
	ID               int64     `json:"id"`
	Title            string    `json:"title"`
	Description      string    `json:"description"`
	StartDate        time.Time `json:"startDate"`
	EndDate          time.Time `json:"endDate"`
	Location         string    `json:"location"`
	Image            string    `json:"image"`
	EventType        string    `json:"eventType"`
	OrganizerID      int64     `json:"organizerId"`
	ParticipantLimit int       `json:"participantLimit"`
	PrizePool        *string   `json:"prizePool"`
	CreatedAt        time.Time `json:"createdAt"`
}

// EventInput holds the caller-supplied fields of a new Event.
type EventInput struct {
	Title            string
	Description      string
	StartDate        time.Time
	EndDate          time.Time
	Location         string
	Image            string
	EventType        string
	OrganizerID      int64
	ParticipantLimit int
	PrizePool        *string
}

// EventUpdate lists the mutable fields of an Event. Nil fields are left unchanged;
// a PrizePool pointing at "" clears the prize pool.
type EventUpdate struct {
	Title            *string
	Description      *string
	StartDate        *time.Time
	EndDate          *time.Time
	Location         *string
	Image            *string
	EventType        *string
	OrganizerID      *int64
	ParticipantLimit *int
	PrizePool        *string
}

// Apply copies every non-nil field of the update onto e.
func (p EventUpdate) Apply(e *Event) {
	if p.Title != nil {
		e.Title = *p.Title
	}
	if p.Description != nil {
		e.Description = *p.Description
	}
	if p.StartDate != nil {
		e.StartDate = *p.StartDate
	}
	if p.EndDate != nil {
		e.EndDate = *p.EndDate
	}
	if p.Location != nil {
		e.Location = *p.Location
	}
	if p.Image != nil {
		e.Image = *p.Image
	}
	if p.EventType != nil {
		e.EventType = *p.EventType
	}
	if p.OrganizerID != nil {
		e.OrganizerID = *p.OrganizerID
	}
	if p.ParticipantLimit != nil {
		e.ParticipantLimit = *p.ParticipantLimit
	}
	if p.PrizePool != nil {
		if *p.PrizePool == "" {
			e.PrizePool = nil
		} else {
			prize := *p.PrizePool
			e.PrizePool = &prize
		}
	}
}

// EventWithDetails is an Event with its organizer resolved and a live participant
// count. Status is set only when the view is produced for a specific attendee.
// swagger:model EventWithDetails
type EventWithDetails struct {
	Event
	Organizer        *User               `json:"organizer,omitempty"`
	ParticipantCount int                 `json:"participantCount"`
	Status           *RegistrationStatus `json:"status,omitempty"`
}

// DefaultFeaturedLimit is the number of featured events returned when no positive limit is given.
const DefaultFeaturedLimit = 6

// EventRepository defines event storage and event-centric views.
type EventRepository interface {
	GetEvent(ctx context.Context, id int64) (*Event, error)
	GetEventWithDetails(ctx context.Context, id int64) (*EventWithDetails, error)
	GetEvents(ctx context.Context) ([]*Event, error)
	GetFeaturedEvents(ctx context.Context, limit int) ([]*Event, error)
	CreateEvent(ctx context.Context, in EventInput) (*Event, error)
	UpdateEvent(ctx context.Context, id int64, patch EventUpdate) (*Event, error)
	DeleteEvent(ctx context.Context, id int64) error
}
