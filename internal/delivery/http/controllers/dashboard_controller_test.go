package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"eventhub/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardController(t *testing.T) {
	ctx := context.Background()
	store := newTestStore()
	a, err := store.CreateUser(ctx, domain.UserInput{Username: "a"})
	require.NoError(t, err)
	b, err := store.CreateUser(ctx, domain.UserInput{Username: "b"})
	require.NoError(t, err)
	e, err := store.CreateEvent(ctx, domain.EventInput{Title: "E", OrganizerID: b.ID})
	require.NoError(t, err)
	_, err = store.RegisterForEvent(ctx, domain.RegistrationInput{UserID: a.ID, EventID: e.ID, Status: domain.StatusConfirmed})
	require.NoError(t, err)
	c := NewDashboardController(testLogger, store)

	t.Run("registered", func(t *testing.T) {
		rr := httptest.NewRecorder()
		c.Registered(rr, newRequest(http.MethodGet, "/api/dashboard/registered/1", "", map[string]string{"userId": "1"}))
		require.Equal(t, http.StatusOK, rr.Code)
		var events []*domain.EventWithDetails
		decodeData(t, rr, &events)
		require.Len(t, events, 1)
		require.NotNil(t, events[0].Status)
		assert.Equal(t, domain.StatusConfirmed, *events[0].Status)
		assert.Equal(t, 1, events[0].ParticipantCount)
	})

	t.Run("organized", func(t *testing.T) {
		rr := httptest.NewRecorder()
		c.Organized(rr, newRequest(http.MethodGet, "/api/dashboard/organized/2", "", map[string]string{"userId": "2"}))
		require.Equal(t, http.StatusOK, rr.Code)
		var events []*domain.EventWithDetails
		decodeData(t, rr, &events)
		require.Len(t, events, 1)
		assert.Nil(t, events[0].Status)
	})

	t.Run("stats", func(t *testing.T) {
		rr := httptest.NewRecorder()
		c.Stats(rr, newRequest(http.MethodGet, "/api/dashboard/stats/1", "", map[string]string{"userId": "1"}))
		require.Equal(t, http.StatusOK, rr.Code)
		var stats domain.UserEventStats
		decodeData(t, rr, &stats)
		assert.Equal(t, domain.UserEventStats{EventsAttended: 1}, stats)
	})

	t.Run("unknown user gets empty views", func(t *testing.T) {
		rr := httptest.NewRecorder()
		c.Registered(rr, newRequest(http.MethodGet, "/api/dashboard/registered/99", "", map[string]string{"userId": "99"}))
		require.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"data":[],"error":null}`, rr.Body.String())
	})

	t.Run("invalid id", func(t *testing.T) {
		rr := httptest.NewRecorder()
		c.Stats(rr, newRequest(http.MethodGet, "/api/dashboard/stats/abc", "", map[string]string{"userId": "abc"}))
		require.Equal(t, http.StatusBadRequest, rr.Code)
	})
}
