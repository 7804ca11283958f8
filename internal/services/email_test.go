package services

import (
	"context"
	"errors"
	"testing"

	"eventhub/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmailService_SendWelcomeMessage(t *testing.T) {
	mailer := &fakeMailer{}
	renderer := &fakeRenderer{}
	svc := NewEmailService(mailer, renderer, testLogger())

	err := svc.SendWelcomeMessage(context.Background(), &domain.WelcomeMessageEmailData{Email: "a@example.com", Fullname: "A"})
	require.NoError(t, err)
	assert.Equal(t, "welcome", renderer.name)
	assert.Equal(t, "a@example.com", mailer.to)
	assert.Equal(t, "welcome subject", mailer.subject)
	assert.Equal(t, "<p>welcome</p>", mailer.html)
	assert.Equal(t, "welcome text", mailer.text)
}

func TestEmailService_SendReport(t *testing.T) {
	mailer := &fakeMailer{}
	renderer := &fakeRenderer{}
	svc := NewEmailService(mailer, renderer, testLogger())

	err := svc.SendReport(context.Background(), &domain.ReportEmailData{Email: "a@example.com", Report: "r"})
	require.NoError(t, err)
	assert.Equal(t, "report", renderer.name)
	assert.Equal(t, "report subject", mailer.subject)
}

func TestEmailService_errors(t *testing.T) {
	tests := []struct {
		name     string
		mailer   *fakeMailer
		renderer *fakeRenderer
		data     *domain.WelcomeMessageEmailData
		wantMsg  string
	}{
		{"nil data", &fakeMailer{}, &fakeRenderer{}, nil, "data is nil"},
		{"render failure", &fakeMailer{}, &fakeRenderer{err: errors.New("bad template")}, &domain.WelcomeMessageEmailData{}, "bad template"},
		{"send failure", &fakeMailer{err: errors.New("ses down")}, &fakeRenderer{}, &domain.WelcomeMessageEmailData{}, "ses down"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewEmailService(tt.mailer, tt.renderer, testLogger())
			err := svc.SendWelcomeMessage(context.Background(), tt.data)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}
