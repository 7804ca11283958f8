package domain

import (
	"context"
	"time"
)

// ArchivedReport is a previously generated participation report.
// swagger:model ArchivedReport
type ArchivedReport struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"userId"`
	Content     string    `json:"content"`
	GeneratedAt time.Time `json:"generatedAt"`
}

// ReportArchive stores generated reports.
type ReportArchive interface {
	Create(ctx context.Context, report *ArchivedReport) error
	ListByUserID(ctx context.Context, userID int64) ([]*ArchivedReport, error)
}

// ReportService generates, archives and delivers participation reports.
type ReportService interface {
	Generate(ctx context.Context, userID int64) (string, error)
	Email(ctx context.Context, userID int64) error
	History(ctx context.Context, userID int64) ([]*ArchivedReport, error)
}
