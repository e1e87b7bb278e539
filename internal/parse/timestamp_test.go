package parse

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestExtractTimestamp(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected time.Time
	}{
		{
			name:     "ISO-8601 with zone",
			input:    "2024-01-15T10:30:00Z service crashed",
			expected: time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC),
		},
		{
			name:     "ISO-8601 with offset",
			input:    "error at 2024-01-15T10:30:00+02:00",
			expected: time.Date(2024, 1, 15, 10, 30, 0, 0, time.FixedZone("", 2*3600)),
		},
		{
			name:     "ISO-8601 without zone",
			input:    "2024-01-15 10:30:00 worker died",
			expected: time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC),
		},
		{
			name:     "ISO-8601 fractional seconds",
			input:    "2024-01-15T10:30:00.500000Z boom",
			expected: time.Date(2024, 1, 15, 10, 30, 0, 500000000, time.UTC),
		},
		{
			name:     "syslog style",
			input:    "Jan 15 10:30:00 host app[123]: segfault",
			expected: time.Date(0, 1, 15, 10, 30, 0, 0, time.UTC),
		},
		{
			name:     "access-log style",
			input:    `10.0.0.1 - - [15/Jan/2024:10:30:00 +0000] "GET / HTTP/1.1" 500`,
			expected: time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractTimestamp(tt.input)
			assert.True(t, got.Equal(tt.expected), "got %v, want %v", got, tt.expected)
		})
	}
}

func TestExtractTimestamp_NoneFound(t *testing.T) {
	// No timestamp is a valid outcome, never defaulted to now or epoch.
	for _, input := range []string{"", "no time here", "KeyError: 'key'", "line 42, col 13"} {
		got := ExtractTimestamp(input)
		assert.True(t, got.IsZero(), "input %q produced %v", input, got)
	}
}

func TestExtractTimestamp_ZoneRetry(t *testing.T) {
	// A mangled zone suffix falls back to the plain layout rather than
	// losing the timestamp entirely.
	got := ExtractTimestamp("15/Jan/2024:10:30:00 +9999 request failed")
	assert.False(t, got.IsZero())
	assert.Equal(t, 2024, got.Year())
}
