package domain

import "context"

// UserEventStats aggregates a user's participation.
// swagger:model UserEventStats
type UserEventStats struct {
	EventsAttended     int `json:"eventsAttended"`
	EventsOrganized    int `json:"eventsOrganized"`
	CertificatesEarned int `json:"certificatesEarned"`
	AwardsWon          int `json:"awardsWon"`
}

// DashboardRepository defines the per-user views and the participation report.
type DashboardRepository interface {
	GetUserRegisteredEvents(ctx context.Context, userID int64) ([]*EventWithDetails, error)
	GetUserOrganizedEvents(ctx context.Context, userID int64) ([]*EventWithDetails, error)
	GetUserEventStats(ctx context.Context, userID int64) (*UserEventStats, error)
	// GenerateReport renders the participation report. Returns ErrUserNotFound for an unknown user.
	GenerateReport(ctx context.Context, userID int64) (string, error)
}

// Repository is the full contract of the event store.
type Repository interface {
	UserRepository
	EventRepository
	RegistrationRepository
	AchievementRepository
	DashboardRepository
}
