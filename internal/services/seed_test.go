package services

import (
	"context"
	"testing"

	"eventhub/internal/domain"
	"eventhub/internal/repository/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedDemoData(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	require.NoError(t, SeedDemoData(ctx, store, &fakePasswordHasher{}))

	alex, err := store.GetUserByUsername(ctx, "alexjohnson")
	require.NoError(t, err)
	assert.Equal(t, int64(1), alex.ID)
	assert.Equal(t, "hash-password123", alex.Password)

	events, err := store.GetEvents(ctx)
	require.NoError(t, err)
	require.Len(t, events, 5)
	require.NotNil(t, events[0].PrizePool)
	assert.Equal(t, "$5,000", *events[0].PrizePool)
	assert.Nil(t, events[1].PrizePool)

	featured, err := store.GetFeaturedEvents(ctx, 3)
	require.NoError(t, err)
	require.Len(t, featured, 3)
	assert.Equal(t, "Product Design Meetup", featured[0].Title)
	assert.Equal(t, "Code for Good", featured[1].Title)
	assert.Equal(t, "AI Summit 2023", featured[2].Title)

	stats, err := store.GetUserEventStats(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, domain.UserEventStats{
		EventsAttended:     2,
		EventsOrganized:    2,
		CertificatesEarned: 8,
		AwardsWon:          3,
	}, *stats)

	reg, err := store.GetRegistration(ctx, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusConfirmed, reg.Status)

	certs, err := store.GetUserCertificates(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Certificate for Event 1", certs[0].Name)
	assert.Equal(t, "Certificate for Event 2", certs[7].Name)

	require.Error(t, SeedDemoData(ctx, store, &fakePasswordHasher{}), "seeding twice collides on usernames")
}
