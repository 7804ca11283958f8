package helpers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"eventhub/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"omitempty,email"`
	Limit    int    `json:"limit" validate:"min=0"`
	Flag     string `json:"flag"`
}

func (s sampleRequest) Validate() []string {
	if s.Flag == "bad" {
		return []string{"flag must not be bad"}
	}
	return nil
}

func decodeEnvelope(t *testing.T, rr *httptest.ResponseRecorder) APIResponse {
	t.Helper()
	var resp APIResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	return resp
}

func TestDecodeAndValidate(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		wantOK      bool
		wantMessage string
	}{
		{"valid", `{"username":"alex","email":"a@example.com"}`, true, ""},
		{"malformed json", `{"username":`, false, "unexpected EOF"},
		{"unknown field", `{"username":"alex","extra":1}`, false, "unknown field"},
		{"missing required", `{"email":"a@example.com"}`, false, "username is required"},
		{"bad email", `{"username":"alex","email":"nope"}`, false, "email must be a valid email address"},
		{"negative min", `{"username":"alex","limit":-1}`, false, "limit must be at least 0"},
		{"custom validator", `{"username":"alex","flag":"bad"}`, false, "flag must not be bad"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			rr := httptest.NewRecorder()
			var dest sampleRequest

			ok := DecodeAndValidate(rr, req, &dest)
			require.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				return
			}
			require.Equal(t, http.StatusBadRequest, rr.Code)
			resp := decodeEnvelope(t, rr)
			require.NotNil(t, resp.Error)
			assert.Equal(t, ErrCodeBadRequest, resp.Error.Code)
			assert.Contains(t, resp.Error.Message, tt.wantMessage)
		})
	}
}

func TestWriteDomainError(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"not found", domain.ErrNotFound, http.StatusNotFound, ErrCodeNotFound},
		{"wrapped user not found", fmt.Errorf("lookup: %w", domain.ErrUserNotFound), http.StatusNotFound, ErrCodeNotFound},
		{"duplicate username", domain.ErrDuplicateUsername, http.StatusConflict, ErrCodeConflict},
		{"already registered", domain.ErrAlreadyRegistered, http.StatusConflict, ErrCodeConflict},
		{"invalid status", domain.ErrInvalidStatus, http.StatusBadRequest, ErrCodeBadRequest},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, ErrCodeInternalError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			WriteDomainError(rr, httptest.NewRequest(http.MethodGet, "/", nil), logger, tt.err)
			require.Equal(t, tt.wantStatus, rr.Code)
			resp := decodeEnvelope(t, rr)
			assert.Nil(t, resp.Data)
			require.NotNil(t, resp.Error)
			assert.Equal(t, tt.wantCode, resp.Error.Code)
		})
	}
}

func TestPathID(t *testing.T) {
	tests := []struct {
		value  string
		want   int64
		wantOK bool
	}{
		{"42", 42, true},
		{"0", 0, false},
		{"-3", 0, false},
		{"abc", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.SetPathValue("id", tt.value)
			rr := httptest.NewRecorder()

			got, ok := PathID(rr, req, "id")
			require.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
			if !ok {
				assert.Equal(t, http.StatusBadRequest, rr.Code)
			}
		})
	}
}

func TestQueryInt(t *testing.T) {
	tests := []struct {
		name   string
		target string
		want   int
		wantOK bool
	}{
		{"missing uses default", "/", 6, true},
		{"parsed", "/?limit=3", 3, true},
		{"malformed", "/?limit=three", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			got, ok := QueryInt(rr, httptest.NewRequest(http.MethodGet, tt.target, nil), "limit", 6)
			require.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
