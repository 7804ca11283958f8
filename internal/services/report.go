package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"eventhub/internal/domain"
)

type reportService struct {
	users        domain.UserRepository
	reports      domain.DashboardRepository
	archive      domain.ReportArchive
	emailService domain.EmailService
	now          func() time.Time
	logger       *slog.Logger
}

// NewReportService creates a ReportService. archive may be nil, which disables
// report history; emailService may be nil, which disables Email.
func NewReportService(users domain.UserRepository, reports domain.DashboardRepository, archive domain.ReportArchive, emailService domain.EmailService, logger *slog.Logger) domain.ReportService {
	return &reportService{
		users:        users,
		reports:      reports,
		archive:      archive,
		emailService: emailService,
		now:          time.Now,
		logger:       logger,
	}
}

// Generate renders the report and archives it when an archive is configured.
// Archive failures are logged and do not fail the call.
func (s *reportService) Generate(ctx context.Context, userID int64) (string, error) {
	report, err := s.reports.GenerateReport(ctx, userID)
	if err != nil {
		return "", err
	}
	if s.archive != nil {
		archived := &domain.ArchivedReport{UserID: userID, Content: report, GeneratedAt: s.now()}
		if err := s.archive.Create(ctx, archived); err != nil {
			s.logger.WarnContext(ctx, "archive report failed", "user_id", userID, "err", err)
		}
	}
	return report, nil
}

// Email generates the report and mails it to the user's address.
func (s *reportService) Email(ctx context.Context, userID int64) error {
	if s.emailService == nil {
		return fmt.Errorf("email delivery is not configured")
	}
	user, err := s.users.GetUser(ctx, userID)
	if err != nil {
		return err
	}
	if user.Email == "" {
		return fmt.Errorf("user %d has no email address: %w", userID, domain.ErrInvalidInput)
	}
	report, err := s.Generate(ctx, userID)
	if err != nil {
		return err
	}
	return s.emailService.SendReport(ctx, &domain.ReportEmailData{
		Email:    user.Email,
		Fullname: user.Fullname,
		Report:   report,
	})
}

// History lists archived reports for the user, newest first. Without an archive it is always empty.
func (s *reportService) History(ctx context.Context, userID int64) ([]*domain.ArchivedReport, error) {
	if _, err := s.users.GetUser(ctx, userID); err != nil {
		return nil, err
	}
	if s.archive == nil {
		return []*domain.ArchivedReport{}, nil
	}
	reports, err := s.archive.ListByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list archived reports: %w", err)
	}
	return reports, nil
}
