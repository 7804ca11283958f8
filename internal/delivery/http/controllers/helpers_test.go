package controllers

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"eventhub/internal/delivery/http/helpers"
	"eventhub/internal/repository/memory"

	"github.com/stretchr/testify/require"
)

// testLogger is a no-op logger for controller tests so we don't assert on log output.
var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

var testNow = time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)

func newTestStore() *memory.Store {
	return memory.NewStore(memory.WithClock(func() time.Time { return testNow }))
}

// newRequest builds a request with the given path values set, as the router would.
func newRequest(method, target, body string, pathValues map[string]string) *http.Request {
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	for k, v := range pathValues {
		req.SetPathValue(k, v)
	}
	return req
}

// decodeData decodes the envelope and unmarshals its data into dest.
func decodeData(t *testing.T, rr *httptest.ResponseRecorder, dest any) {
	t.Helper()
	var env struct {
		Data  json.RawMessage   `json:"data"`
		Error *helpers.APIError `json:"error"`
	}
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&env))
	require.Nil(t, env.Error)
	require.NoError(t, json.Unmarshal(env.Data, dest))
}

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) *helpers.APIError {
	t.Helper()
	var resp helpers.APIResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	require.Nil(t, resp.Data)
	require.NotNil(t, resp.Error)
	return resp.Error
}
