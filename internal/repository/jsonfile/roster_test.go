package jsonfile

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aidar/localtime-bot/internal/domain"
)

func newTestStore(t *testing.T, content string) (*RosterStore, *bytes.Buffer) {
	t.Helper()

	path := filepath.Join(t.TempDir(), DefaultPath)
	if content != "" {
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	}

	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	return NewRosterStore(path, logger), &buf
}

func TestRosterStore_Load_ValidFile(t *testing.T) {
	store, _ := newTestStore(t, `[
		{"name": "alice", "city": "Berlin", "timezone": "Europe/Berlin"},
		{"name": "bob", "city": "Tokyo", "timezone": "Asia/Tokyo", "extra": 42},
		{"name": "carol", "city": "Nowhere", "timezone": "Bogus/Zone"}
	]`)

	roster := store.Load()

	expected := []domain.TeamMember{
		{Name: "alice", City: "Berlin", Timezone: "Europe/Berlin"},
		{Name: "bob", City: "Tokyo", Timezone: "Asia/Tokyo"},
		{Name: "carol", City: "Nowhere", Timezone: "Bogus/Zone"},
	}
	assert.Equal(t, expected, roster)
}

func TestRosterStore_Load_MissingFileFallsBack(t *testing.T) {
	store, logs := newTestStore(t, "")

	roster := store.Load()

	assert.Equal(t, domain.DefaultRoster(), roster)
	assert.Contains(t, logs.String(), "Using default team members configuration")
	assert.Contains(t, logs.String(), store.Path())
}

func TestRosterStore_Load_FallbackCases(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "malformed json",
			content: `[{"name": "alice",`,
		},
		{
			name:    "top level object",
			content: `{"name": "alice", "city": "Berlin", "timezone": "Europe/Berlin"}`,
		},
		{
			name: "one record without name",
			content: `[
				{"name": "alice", "city": "Berlin", "timezone": "Europe/Berlin"},
				{"city": "Tokyo", "timezone": "Asia/Tokyo"}
			]`,
		},
		{
			name:    "missing timezone",
			content: `[{"name": "alice", "city": "Berlin"}]`,
		},
		{
			name:    "null city",
			content: `[{"name": "alice", "city": null, "timezone": "Europe/Berlin"}]`,
		},
		{
			name:    "non string name",
			content: `[{"name": 7, "city": "Berlin", "timezone": "Europe/Berlin"}]`,
		},
		{
			name:    "null record",
			content: `[null]`,
		},
		{
			name:    "empty list",
			content: `[]`,
		},
		{
			name:    "trailing garbage",
			content: `[{"name": "alice", "city": "Berlin", "timezone": "Europe/Berlin"}] junk`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, logs := newTestStore(t, tt.content)

			assert.Equal(t, domain.DefaultRoster(), store.Load())
			assert.Contains(t, logs.String(), "Error loading team members from file")
		})
	}
}

func TestRosterStore_Read_WrapsSingleFailureClass(t *testing.T) {
	store, _ := newTestStore(t, `[{"city": "Tokyo", "timezone": "Asia/Tokyo"}]`)

	roster, err := store.Read()

	require.Error(t, err)
	assert.Nil(t, roster)
	assert.ErrorIs(t, err, domain.ErrRosterLoad)
	assert.ErrorIs(t, err, domain.ErrInvalidMember)
	assert.Contains(t, err.Error(), `"name"`)

	missing, _ := newTestStore(t, "")
	_, err = missing.Read()
	assert.ErrorIs(t, err, domain.ErrRosterLoad)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestRosterStore_Load_Idempotent(t *testing.T) {
	store, _ := newTestStore(t, `[{"name": "A", "city": "X", "timezone": "UTC"}]`)

	assert.Equal(t, store.Load(), store.Load())

	fallback, _ := newTestStore(t, "")
	assert.Equal(t, fallback.Load(), fallback.Load())
}

func TestNewRosterStore_Defaults(t *testing.T) {
	store := NewRosterStore("", nil)

	assert.Equal(t, DefaultPath, store.Path())
	assert.NotNil(t, store.logger)
}
