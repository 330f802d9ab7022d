//go:build unit

package queries_test

import (
	"encoding/base64"
	"testing"
	"time"

	"salonbook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAfterCursor_RoundTrip(t *testing.T) {
	id := uuid.New()
	createdAt := time.Date(2026, 3, 14, 9, 26, 53, 589793000, time.UTC)

	encoded := queries.EncodeAfterCursor(createdAt, id)

	decodedAt, decodedID, err := queries.DecodeAfterCursor(encoded)
	require.NoError(t, err)

	assert.Equal(t, createdAt.UnixMicro(), decodedAt.UnixMicro())
	assert.Equal(t, id, decodedID)
}

func TestDecodeAfterCursor_Invalid(t *testing.T) {
	raw := func(s string) string {
		return base64.URLEncoding.EncodeToString([]byte(s))
	}

	testCases := []struct {
		name   string
		cursor string
	}{
		{name: "empty cursor", cursor: ""},
		{name: "not base64", cursor: "!!not-base64!!"},
		{name: "missing version prefix", cursor: raw("1700000000000000-" + uuid.New().String())},
		{name: "unsupported version", cursor: raw("v2:1700000000000000-" + uuid.New().String())},
		{name: "missing separator", cursor: raw("v1:1700000000000000")},
		{name: "non numeric timestamp", cursor: raw("v1:abc-" + uuid.New().String())},
		{name: "malformed uuid", cursor: raw("v1:1700000000000000-not-a-uuid")},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := queries.DecodeAfterCursor(tc.cursor)
			assert.Error(t, err)
		})
	}
}

func TestValidateLimit(t *testing.T) {
	testCases := []struct {
		name     string
		limit    int
		expected int
	}{
		{name: "zero falls back to default", limit: 0, expected: 20},
		{name: "negative falls back to default", limit: -5, expected: 20},
		{name: "within range is kept", limit: 50, expected: 50},
		{name: "maximum is kept", limit: queries.MaxListLimit, expected: queries.MaxListLimit},
		{name: "above maximum is clamped", limit: queries.MaxListLimit + 1, expected: queries.MaxListLimit},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, queries.ValidateLimit(tc.limit))
		})
	}
}
