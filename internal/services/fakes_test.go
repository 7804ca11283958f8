package services

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"eventhub/internal/domain"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
}

// fakePasswordHasher implements domain.PasswordHasher for tests.
type fakePasswordHasher struct {
	err error
}

func (f *fakePasswordHasher) Hash(password string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return "hash-" + password, nil
}

func (f *fakePasswordHasher) Compare(hash, password string) error {
	if hash != "hash-"+password {
		return errors.New("mismatch")
	}
	return nil
}

// fakeUserRepo implements domain.UserRepository for tests.
type fakeUserRepo struct {
	users     map[int64]*domain.User
	created   *domain.UserInput
	updated   *domain.UserUpdate
	createErr error
	updateErr error
}

func newFakeUserRepo(users ...*domain.User) *fakeUserRepo {
	f := &fakeUserRepo{users: make(map[int64]*domain.User)}
	for _, u := range users {
		f.users[u.ID] = u
	}
	return f
}

func (f *fakeUserRepo) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	if u, ok := f.users[id]; ok {
		return u, nil
	}
	return nil, domain.ErrUserNotFound
}

func (f *fakeUserRepo) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (f *fakeUserRepo) CreateUser(ctx context.Context, in domain.UserInput) (*domain.User, error) {
	f.created = &in
	if f.createErr != nil {
		return nil, f.createErr
	}
	u := &domain.User{ID: int64(len(f.users) + 1), Username: in.Username, Password: in.Password, Fullname: in.Fullname, Email: in.Email}
	f.users[u.ID] = u
	return u, nil
}

func (f *fakeUserRepo) UpdateUser(ctx context.Context, id int64, patch domain.UserUpdate) (*domain.User, error) {
	f.updated = &patch
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	u, ok := f.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	patch.Apply(u)
	return u, nil
}

// fakeEmailService implements domain.EmailService for tests.
type fakeEmailService struct {
	welcome []*domain.WelcomeMessageEmailData
	reports []*domain.ReportEmailData
	err     error
}

func (f *fakeEmailService) SendWelcomeMessage(ctx context.Context, data *domain.WelcomeMessageEmailData) error {
	f.welcome = append(f.welcome, data)
	return f.err
}

func (f *fakeEmailService) SendReport(ctx context.Context, data *domain.ReportEmailData) error {
	f.reports = append(f.reports, data)
	return f.err
}

// fakeMailer implements domain.Mailer for tests.
type fakeMailer struct {
	to, subject, html, text string
	err                     error
}

func (f *fakeMailer) Send(ctx context.Context, to, subject, html, text string) error {
	f.to, f.subject, f.html, f.text = to, subject, html, text
	return f.err
}

// fakeRenderer implements domain.EmailTemplateRenderer for tests.
type fakeRenderer struct {
	name string
	err  error
}

func (f *fakeRenderer) Render(templateName string, data any) (string, string, string, error) {
	f.name = templateName
	if f.err != nil {
		return "", "", "", f.err
	}
	return templateName + " subject", "<p>" + templateName + "</p>", templateName + " text", nil
}

// fakeReportSource implements domain.DashboardRepository for tests. Only GenerateReport is meaningful.
type fakeReportSource struct {
	report string
	err    error
}

func (f *fakeReportSource) GetUserRegisteredEvents(ctx context.Context, userID int64) ([]*domain.EventWithDetails, error) {
	return nil, nil
}

func (f *fakeReportSource) GetUserOrganizedEvents(ctx context.Context, userID int64) ([]*domain.EventWithDetails, error) {
	return nil, nil
}

func (f *fakeReportSource) GetUserEventStats(ctx context.Context, userID int64) (*domain.UserEventStats, error) {
	return &domain.UserEventStats{}, nil
}

func (f *fakeReportSource) GenerateReport(ctx context.Context, userID int64) (string, error) {
	return f.report, f.err
}

// fakeArchive implements domain.ReportArchive for tests.
type fakeArchive struct {
	created   []*domain.ArchivedReport
	createErr error
	listErr   error
}

func (f *fakeArchive) Create(ctx context.Context, report *domain.ArchivedReport) error {
	if f.createErr != nil {
		return f.createErr
	}
	report.ID = int64(len(f.created) + 1)
	f.created = append(f.created, report)
	return nil
}

func (f *fakeArchive) ListByUserID(ctx context.Context, userID int64) ([]*domain.ArchivedReport, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []*domain.ArchivedReport
	for i := len(f.created) - 1; i >= 0; i-- {
		if f.created[i].UserID == userID {
			out = append(out, f.created[i])
		}
	}
	return out, nil
}
