package postgres

import (
	"context"
	"database/sql"

	"eventhub/internal/domain"
)

type reportRepository struct {
	DB *sql.DB
}

// NewReportRepository returns a ReportArchive stored in the reports table.
func NewReportRepository(db *sql.DB) domain.ReportArchive {
	return &reportRepository{
		DB: db,
	}
}

func (r *reportRepository) Create(ctx context.Context, report *domain.ArchivedReport) error {
	query := `
		INSERT INTO reports (user_id, content, generated_at)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query, report.UserID, report.Content, report.GeneratedAt).
		Scan(&report.ID)
}

func (r *reportRepository) ListByUserID(ctx context.Context, userID int64) ([]*domain.ArchivedReport, error) {
	query := `
		SELECT id, user_id, content, generated_at
		FROM reports
		WHERE user_id = $1
		ORDER BY generated_at DESC, id DESC
	`
	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reports := []*domain.ArchivedReport{}
	for rows.Next() {
		report := &domain.ArchivedReport{}
		if err := rows.Scan(&report.ID, &report.UserID, &report.Content, &report.GeneratedAt); err != nil {
			return nil, err
		}
		reports = append(reports, report)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return reports, nil
}
