package seo

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToISODateFromTime(t *testing.T) {
	ts := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)
	assert.Equal(t, "2025-03-14T09:26:53Z", ToISODate(ts))
}

func TestToISODateFromStrings(t *testing.T) {
	cases := map[string]string{
		"2025-03-14T09:26:53Z": "2025-03-14T09:26:53Z",
		"2025-03-14":           "2025-03-14T00:00:00Z",
		"2025/03/14":           "2025-03-14T00:00:00Z",
	}
	for in, want := range cases {
		assert.Equal(t, want, ToISODate(in), "input %q", in)
	}
}

func TestToISODateFallsBackToNow(t *testing.T) {
	for _, in := range []any{"not-a-date", "", nil, 12345, time.Time{}} {
		before := time.Now().Add(-time.Minute)
		got := ToISODate(in)
		parsed, err := time.Parse(time.RFC3339, got)
		require.NoError(t, err, "fallback for %v must still be ISO-8601", in)
		assert.True(t, parsed.After(before), "fallback for %v should be current time", in)
		assert.NotEqual(t, in, got)
	}
}

func TestIsValidISODate(t *testing.T) {
	assert.True(t, IsValidISODate("2025-03-14T09:26:53Z"))
	assert.True(t, IsValidISODate("2025-03-14"))
	assert.False(t, IsValidISODate("14/03/2025"))
	assert.False(t, IsValidISODate(""))
	assert.False(t, IsValidISODate("soon"))
}
