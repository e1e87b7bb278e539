package analyze

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vburojevic/stacksift/internal/domain"
)

func TestAssemble(t *testing.T) {
	base := time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC)

	t.Run("empty run produces an empty report", func(t *testing.T) {
		report := Assemble(nil, nil, domain.TrendSummary{})

		assert.Equal(t, 0, report.TotalErrors)
		assert.Equal(t, 0, report.UniqueTypeCount)
		assert.Empty(t, report.Clusters)
		assert.Empty(t, report.Trend.Buckets)
		assert.Empty(t, report.TopErrors)
		assert.False(t, report.HasErrors)
		assert.Zero(t, report.ErrorRate)
	})

	t.Run("top errors sorted by count, ties in first-seen order", func(t *testing.T) {
		records := []domain.ErrorRecord{
			timestamped("Gamma", "g", base),
			timestamped("Alpha", "a1", base),
			timestamped("Alpha", "a2", base),
			timestamped("Beta", "b", base),
		}

		report := Assemble(records, nil, domain.TrendSummary{})

		assert.Equal(t, 4, report.TotalErrors)
		assert.Equal(t, 3, report.UniqueTypeCount)
		assert.True(t, report.HasErrors)

		require.Len(t, report.TopErrors, 3)
		assert.Equal(t, domain.TypeCount{ErrorType: "Alpha", Count: 2}, report.TopErrors[0])
		// Gamma and Beta both count 1; Gamma was seen first.
		assert.Equal(t, "Gamma", report.TopErrors[1].ErrorType)
		assert.Equal(t, "Beta", report.TopErrors[2].ErrorType)
	})

	t.Run("error rate spans timestamped records only", func(t *testing.T) {
		records := []domain.ErrorRecord{
			timestamped("E", "a", base),
			timestamped("E", "b", base.Add(time.Minute)),
			timestamped("E", "c", base.Add(2*time.Minute)),
			timestamped("E", "untimed", time.Time{}),
		}

		report := Assemble(records, nil, domain.TrendSummary{})
		assert.InDelta(t, 1.5, report.ErrorRate, 1e-9) // 3 records over 2 minutes
	})

	t.Run("zero rate for a single timestamp", func(t *testing.T) {
		report := Assemble([]domain.ErrorRecord{timestamped("E", "a", base)}, nil, domain.TrendSummary{})
		assert.Zero(t, report.ErrorRate)
	})
}

func TestNormalizeMessage(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "replaces hex addresses",
			input:    "pointer at 0x7fff5fbff8c0 is invalid",
			expected: "pointer at <addr> is invalid",
		},
		{
			name:     "replaces numbers",
			input:    "failed after 123 attempts with code 456",
			expected: "failed after <n> attempts with code <n>",
		},
		{
			name:     "replaces UUIDs before numbers",
			input:    "device 12345678-1234-1234-1234-123456789abc not found",
			expected: "device <uuid> not found",
		},
		{
			name:     "trims whitespace",
			input:    "  message with spaces  ",
			expected: "message with spaces",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeMessage(tt.input))
		})
	}
}
