package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aidar/localtime-bot/internal/domain"
)

type stubLocalTimes struct{}

func (stubLocalTimes) Roster() []domain.TeamMember {
	return []domain.TeamMember{
		{Name: "A", City: "X", Timezone: "UTC"},
		{Name: "B", City: "Y", Timezone: "Bogus/Zone"},
	}
}

func (s stubLocalTimes) MemberTimes() []domain.MemberTime {
	roster := s.Roster()
	return []domain.MemberTime{
		{TeamMember: roster[0], LocalTime: "12:34"},
		{TeamMember: roster[1], LocalTime: "Unknown timezone"},
	}
}

func (stubLocalTimes) LocalTimes() string {
	return "A: 12:34\nB: Unknown timezone\n"
}

func TestLocalTimeHandler_GetRoster(t *testing.T) {
	h := NewLocalTimeHandler(stubLocalTimes{})
	req := httptest.NewRequest(http.MethodGet, "/api/roster", nil)
	rec := httptest.NewRecorder()

	h.GetRoster(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"members":[
		{"name":"A","city":"X","timezone":"UTC"},
		{"name":"B","city":"Y","timezone":"Bogus/Zone"}
	]}`, rec.Body.String())
}

func TestLocalTimeHandler_GetLocalTimes(t *testing.T) {
	h := NewLocalTimeHandler(stubLocalTimes{})
	req := httptest.NewRequest(http.MethodGet, "/api/localtime", nil)
	rec := httptest.NewRecorder()

	h.GetLocalTimes(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp LocalTimeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Members, 2)
	assert.Equal(t, "X", resp.Members[0].City)
	assert.Equal(t, "12:34", resp.Members[0].LocalTime)
	assert.Equal(t, "Unknown timezone", resp.Members[1].LocalTime)
	assert.Equal(t, "A: 12:34\nB: Unknown timezone\n", resp.Text)
}

func TestHealth(t *testing.T) {
	rec := httptest.NewRecorder()

	Health(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestHandleError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"invalid token", domain.ErrInvalidToken, http.StatusUnauthorized, "UNAUTHORIZED"},
		{"unauthorized", domain.ErrUnauthorized, http.StatusUnauthorized, "UNAUTHORIZED"},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			HandleError(rec, httptest.NewRequest(http.MethodGet, "/", nil), tt.err)

			assert.Equal(t, tt.wantStatus, rec.Code)
			var resp ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantCode, resp.Error.Code)
		})
	}
}
