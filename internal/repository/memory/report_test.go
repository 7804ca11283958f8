package memory

import (
	"context"
	"testing"

	"eventhub/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_GenerateReport(t *testing.T) {
	ctx := context.Background()
	s := newTestStore()
	u, err := s.CreateUser(ctx, domain.UserInput{Username: "alex", Fullname: "Alex Johnson"})
	require.NoError(t, err)
	e, err := s.CreateEvent(ctx, domain.EventInput{Title: "E", OrganizerID: u.ID})
	require.NoError(t, err)
	_, err = s.RegisterForEvent(ctx, domain.RegistrationInput{UserID: u.ID, EventID: e.ID})
	require.NoError(t, err)
	for i := 0; i < 2; i++ {
		_, err = s.CreateCertificate(ctx, domain.CertificateInput{UserID: u.ID, EventID: e.ID, Name: "c"})
		require.NoError(t, err)
	}

	report, err := s.GenerateReport(ctx, u.ID)
	require.NoError(t, err)
	assert.Contains(t, report, "Report for Alex Johnson")
	assert.Contains(t, report, "- Total Events Attended: 1")
	assert.Contains(t, report, "- Events Organized: 1")
	assert.Contains(t, report, "- Certificates Earned: 2")
	assert.Contains(t, report, "- Awards Won: 0")
	assert.Contains(t, report, "1. ")
	assert.Contains(t, report, "3. ")
	assert.NotContains(t, report, "4. ")
	assert.Contains(t, report, "Generated on: March 14, 2025")

	again, err := s.GenerateReport(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, report, again)
}

func TestStore_GenerateReport_UnknownUser(t *testing.T) {
	s := newTestStore()
	report, err := s.GenerateReport(context.Background(), 404)
	require.ErrorIs(t, err, domain.ErrUserNotFound)
	require.ErrorIs(t, err, domain.ErrNotFound)
	require.Empty(t, report)
}
