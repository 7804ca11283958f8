package services

import (
	"context"
	"fmt"
	"log/slog"

	"eventhub/internal/domain"
)

const (
	welcomeTemplate = "welcome"
	reportTemplate  = "report"
)

type emailService struct {
	mailer   domain.Mailer
	renderer domain.EmailTemplateRenderer
	logger   *slog.Logger
}

// NewEmailService returns an EmailService that uses the given Mailer and template renderer.
func NewEmailService(mailer domain.Mailer, renderer domain.EmailTemplateRenderer, logger *slog.Logger) domain.EmailService {
	return &emailService{mailer: mailer, renderer: renderer, logger: logger}
}

// SendWelcomeMessage sends a welcome email using the "welcome" template and the given data.
func (s *emailService) SendWelcomeMessage(ctx context.Context, data *domain.WelcomeMessageEmailData) error {
	if data == nil {
		return fmt.Errorf("welcome message data is nil")
	}
	if err := s.send(ctx, welcomeTemplate, data.Email, data); err != nil {
		return fmt.Errorf("failed to send welcome email: %w", err)
	}
	s.logger.InfoContext(ctx, "welcome email sent", "to", data.Email)
	return nil
}

// SendReport sends a participation report using the "report" template.
func (s *emailService) SendReport(ctx context.Context, data *domain.ReportEmailData) error {
	if data == nil {
		return fmt.Errorf("report email data is nil")
	}
	if err := s.send(ctx, reportTemplate, data.Email, data); err != nil {
		return fmt.Errorf("failed to send report email: %w", err)
	}
	s.logger.InfoContext(ctx, "report email sent", "to", data.Email)
	return nil
}

func (s *emailService) send(ctx context.Context, template, to string, data any) error {
	subject, htmlBody, textBody, err := s.renderer.Render(template, data)
	if err != nil {
		return fmt.Errorf("render %s template: %w", template, err)
	}
	return s.mailer.Send(ctx, to, subject, htmlBody, textBody)
}
