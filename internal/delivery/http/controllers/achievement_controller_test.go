package controllers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"eventhub/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAchievementController(t *testing.T) {
	c := NewAchievementController(testLogger, newTestStore())

	for _, body := range []string{
		`{"userId":1,"eventId":1,"name":"Certificate for Event 1"}`,
		`{"userId":1,"eventId":2,"name":"Certificate for Event 2"}`,
	} {
		rr := httptest.NewRecorder()
		c.CreateCertificate(rr, newRequest(http.MethodPost, "/api/certificates", body, nil))
		require.Equal(t, http.StatusCreated, rr.Code)
	}
	rr := httptest.NewRecorder()
	c.CreateAward(rr, newRequest(http.MethodPost, "/api/awards", `{"userId":1,"eventId":1,"name":"Best Hack"}`, nil))
	require.Equal(t, http.StatusCreated, rr.Code)
	var award domain.Award
	decodeData(t, rr, &award)
	assert.Equal(t, testNow, award.AwardedAt)

	rr = httptest.NewRecorder()
	c.CreateAward(rr, newRequest(http.MethodPost, "/api/awards", `{"userId":1,"eventId":1}`, nil))
	require.Equal(t, http.StatusBadRequest, rr.Code)

	rr = httptest.NewRecorder()
	c.Certificates(rr, newRequest(http.MethodGet, "/api/users/1/certificates", "", map[string]string{"userId": "1"}))
	require.Equal(t, http.StatusOK, rr.Code)
	var certs []*domain.Certificate
	decodeData(t, rr, &certs)
	require.Len(t, certs, 2)
	assert.Equal(t, "Certificate for Event 2", certs[1].Name)

	rr = httptest.NewRecorder()
	c.Awards(rr, newRequest(http.MethodGet, "/api/users/2/awards", "", map[string]string{"userId": "2"}))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"data":[],"error":null}`, rr.Body.String())
}
