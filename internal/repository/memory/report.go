package memory

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"text/template"

	"eventhub/internal/domain"
)

const reportDateLayout = "January 2, 2006"

//go:embed templates/report.txt
var reportTemplateText string

var reportTemplate = template.Must(template.New("report").Parse(reportTemplateText))

type reportData struct {
	Fullname    string
	Stats       domain.UserEventStats
	GeneratedOn string
}

// GenerateReport renders the participation report for the user. The output
// depends only on the user's stats, full name and the store clock.
func (s *Store) GenerateReport(ctx context.Context, userID int64) (string, error) {
	s.mu.RLock()
	u, ok := s.users.get(userID)
	if !ok {
		s.mu.RUnlock()
		return "", domain.ErrUserNotFound
	}
	data := reportData{
		Fullname:    u.Fullname,
		Stats:       s.userEventStats(userID),
		GeneratedOn: s.now().Format(reportDateLayout),
	}
	s.mu.RUnlock()

	var buf bytes.Buffer
	if err := reportTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render report: %w", err)
	}
	return buf.String(), nil
}
