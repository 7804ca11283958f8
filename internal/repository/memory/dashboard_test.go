package memory

import (
	"context"
	"testing"
	"time"

	"eventhub/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_RegistrationScenario(t *testing.T) {
	ctx := context.Background()
	s := newTestStore()

	a, err := s.CreateUser(ctx, domain.UserInput{Username: "a", Fullname: "User A"})
	require.NoError(t, err)
	require.Equal(t, int64(1), a.ID)
	b, err := s.CreateUser(ctx, domain.UserInput{Username: "b", Fullname: "User B"})
	require.NoError(t, err)
	require.Equal(t, int64(2), b.ID)

	e, err := s.CreateEvent(ctx, domain.EventInput{Title: "E", OrganizerID: b.ID, ParticipantLimit: 10})
	require.NoError(t, err)
	reg, err := s.RegisterForEvent(ctx, domain.RegistrationInput{UserID: a.ID, EventID: e.ID, Status: domain.StatusPending})
	require.NoError(t, err)

	details, err := s.GetEventWithDetails(ctx, e.ID)
	require.NoError(t, err)
	require.NotNil(t, details.Organizer)
	assert.Equal(t, b.ID, details.Organizer.ID)
	assert.Equal(t, 1, details.ParticipantCount)
	assert.Nil(t, details.Status)

	registered, err := s.GetUserRegisteredEvents(ctx, a.ID)
	require.NoError(t, err)
	require.Len(t, registered, 1)
	assert.Equal(t, e.ID, registered[0].ID)
	require.NotNil(t, registered[0].Status)
	assert.Equal(t, domain.StatusPending, *registered[0].Status)

	_, err = s.UpdateRegistrationStatus(ctx, reg.ID, domain.StatusConfirmed)
	require.NoError(t, err)

	registered, err = s.GetUserRegisteredEvents(ctx, a.ID)
	require.NoError(t, err)
	require.Len(t, registered, 1)
	assert.Equal(t, domain.StatusConfirmed, *registered[0].Status)
	assert.Equal(t, 1, registered[0].ParticipantCount)
}

func TestStore_ParticipantCountIgnoresStatus(t *testing.T) {
	ctx := context.Background()
	s := newTestStore()
	e, err := s.CreateEvent(ctx, domain.EventInput{Title: "E"})
	require.NoError(t, err)

	var regs []*domain.Registration
	for u := int64(1); u <= 4; u++ {
		reg, err := s.RegisterForEvent(ctx, domain.RegistrationInput{UserID: u, EventID: e.ID})
		require.NoError(t, err)
		regs = append(regs, reg)
	}
	_, err = s.RegisterForEvent(ctx, domain.RegistrationInput{UserID: 1, EventID: e.ID + 1})
	require.NoError(t, err)
	_, err = s.UpdateRegistrationStatus(ctx, regs[0].ID, domain.StatusCancelled)
	require.NoError(t, err)

	details, err := s.GetEventWithDetails(ctx, e.ID)
	require.NoError(t, err)
	byEvent, err := s.GetRegistrationsByEvent(ctx, e.ID)
	require.NoError(t, err)
	assert.Equal(t, len(byEvent), details.ParticipantCount)
	assert.Equal(t, 4, details.ParticipantCount)
}

func TestStore_GetEventWithDetails_DanglingOrganizer(t *testing.T) {
	ctx := context.Background()
	s := newTestStore()
	e, err := s.CreateEvent(ctx, domain.EventInput{Title: "Orphan", OrganizerID: 77})
	require.NoError(t, err)

	details, err := s.GetEventWithDetails(ctx, e.ID)
	require.NoError(t, err)
	assert.Nil(t, details.Organizer)
	assert.Equal(t, 0, details.ParticipantCount)

	_, err = s.GetEventWithDetails(ctx, 99)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStore_RegisteredEventsSkipDeletedEvents(t *testing.T) {
	ctx := context.Background()
	s := newTestStore()
	keep, err := s.CreateEvent(ctx, domain.EventInput{Title: "keep"})
	require.NoError(t, err)
	drop, err := s.CreateEvent(ctx, domain.EventInput{Title: "drop"})
	require.NoError(t, err)
	for _, id := range []int64{keep.ID, drop.ID} {
		_, err := s.RegisterForEvent(ctx, domain.RegistrationInput{UserID: 1, EventID: id})
		require.NoError(t, err)
	}
	_, err = s.CreateCertificate(ctx, domain.CertificateInput{UserID: 1, EventID: drop.ID, Name: "c"})
	require.NoError(t, err)

	require.NoError(t, s.DeleteEvent(ctx, drop.ID))

	registered, err := s.GetUserRegisteredEvents(ctx, 1)
	require.NoError(t, err)
	require.Len(t, registered, 1)
	assert.Equal(t, keep.ID, registered[0].ID)

	regs, err := s.GetRegistrationsByUser(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, regs, 2, "delete does not cascade")

	stats, err := s.GetUserEventStats(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.EventsAttended)
	assert.Equal(t, 1, stats.CertificatesEarned)
}

func TestStore_GetUserOrganizedEvents(t *testing.T) {
	ctx := context.Background()
	s := newTestStore()
	org, err := s.CreateUser(ctx, domain.UserInput{Username: "org"})
	require.NoError(t, err)
	mine, err := s.CreateEvent(ctx, domain.EventInput{Title: "mine", OrganizerID: org.ID})
	require.NoError(t, err)
	_, err = s.CreateEvent(ctx, domain.EventInput{Title: "theirs", OrganizerID: 42})
	require.NoError(t, err)
	for u := int64(10); u < 13; u++ {
		_, err := s.RegisterForEvent(ctx, domain.RegistrationInput{UserID: u, EventID: mine.ID})
		require.NoError(t, err)
	}

	got, err := s.GetUserOrganizedEvents(ctx, org.ID)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "mine", got[0].Title)
	assert.Equal(t, 3, got[0].ParticipantCount)
	require.NotNil(t, got[0].Organizer)
	assert.Equal(t, org.ID, got[0].Organizer.ID)

	none, err := s.GetUserOrganizedEvents(ctx, 999)
	require.NoError(t, err)
	require.NotNil(t, none)
	require.Empty(t, none)
}

func TestStore_StatsMatchComposedQueries(t *testing.T) {
	ctx := context.Background()
	s := newTestStore()
	u, err := s.CreateUser(ctx, domain.UserInput{Username: "u"})
	require.NoError(t, err)

	check := func() {
		t.Helper()
		stats, err := s.GetUserEventStats(ctx, u.ID)
		require.NoError(t, err)
		registered, _ := s.GetUserRegisteredEvents(ctx, u.ID)
		organized, _ := s.GetUserOrganizedEvents(ctx, u.ID)
		certs, _ := s.GetUserCertificates(ctx, u.ID)
		awards, _ := s.GetUserAwards(ctx, u.ID)
		require.Equal(t, domain.UserEventStats{
			EventsAttended:     len(registered),
			EventsOrganized:    len(organized),
			CertificatesEarned: len(certs),
			AwardsWon:          len(awards),
		}, *stats)
	}

	check()
	e, err := s.CreateEvent(ctx, domain.EventInput{Title: "E", OrganizerID: u.ID, StartDate: time.Now()})
	require.NoError(t, err)
	check()
	_, err = s.RegisterForEvent(ctx, domain.RegistrationInput{UserID: u.ID, EventID: e.ID})
	require.NoError(t, err)
	check()
	_, err = s.CreateCertificate(ctx, domain.CertificateInput{UserID: u.ID, EventID: e.ID, Name: "c"})
	require.NoError(t, err)
	_, err = s.CreateAward(ctx, domain.AwardInput{UserID: u.ID, EventID: e.ID, Name: "a"})
	require.NoError(t, err)
	check()
	require.NoError(t, s.DeleteEvent(ctx, e.ID))
	check()

	stats, err := s.GetUserEventStats(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.UserEventStats{CertificatesEarned: 1, AwardsWon: 1}, *stats)
}
