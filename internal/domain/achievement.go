package domain

import (
	"context"
	"time"
)

// Certificate is issued to a user for an event. Immutable once created.
// swagger:model Certificate
type Certificate struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"userId"`
	EventID   int64     `json:"eventId"`
	Name      string    `json:"name"`
	AwardedAt time.Time `json:"awardedAt"`
}

// CertificateInput holds the caller-supplied fields of a new Certificate.
type CertificateInput struct {
	UserID  int64
	EventID int64
	Name    string
}

// Award is won by a user at an event. Immutable once created.
// swagger:model Award
type Award struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"userId"`
	EventID   int64     `json:"eventId"`
	Name      string    `json:"name"`
	AwardedAt time.Time `json:"awardedAt"`
}

// AwardInput holds the caller-supplied fields of a new Award.
type AwardInput struct {
	UserID  int64
	EventID int64
	Name    string
}

// AchievementRepository defines certificate and award storage.
type AchievementRepository interface {
	GetUserCertificates(ctx context.Context, userID int64) ([]*Certificate, error)
	GetUserAwards(ctx context.Context, userID int64) ([]*Award, error)
	CreateCertificate(ctx context.Context, in CertificateInput) (*Certificate, error)
	CreateAward(ctx context.Context, in AwardInput) (*Award, error)
}
