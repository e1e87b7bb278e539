package analyze

import (
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vburojevic/stacksift/internal/domain"
)

func TestAggregate(t *testing.T) {
	base := time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC)

	t.Run("150 records over 3 hours fill 3 hourly buckets", func(t *testing.T) {
		var records []domain.ErrorRecord
		for i := 0; i < 150; i++ {
			ts := base.Add(time.Duration(i) * 72 * time.Second) // 50 per hour
			records = append(records, timestamped("E", "boom", ts))
		}

		trend, err := Aggregate(records, time.Hour, base, base.Add(3*time.Hour))
		require.NoError(t, err)

		require.Len(t, trend.Buckets, 3)
		for i, b := range trend.Buckets {
			assert.Equal(t, base.Add(time.Duration(i)*time.Hour), b.BucketStart)
			assert.Equal(t, 50, b.Count)
			assert.Equal(t, 50, b.TypeCounts["E"])
		}
		assert.InDelta(t, 50.0, trend.AveragePerBucket, 1e-9)
	})

	t.Run("bucket counts conserve in-range timestamped records", func(t *testing.T) {
		records := []domain.ErrorRecord{
			timestamped("A", "one", base),
			timestamped("A", "two", base.Add(30*time.Minute)),
			timestamped("B", "three", base.Add(90*time.Minute)),
			timestamped("B", "before range", base.Add(-time.Minute)),
			timestamped("B", "at range end", base.Add(2*time.Hour)),
			timestamped("C", "no timestamp", time.Time{}),
		}

		trend, err := Aggregate(records, time.Hour, base, base.Add(2*time.Hour))
		require.NoError(t, err)

		total := 0
		for _, b := range trend.Buckets {
			total += b.Count
		}
		// Exactly the 3 records inside [start, end) with a timestamp.
		assert.Equal(t, 3, total)
	})

	t.Run("range is half-open", func(t *testing.T) {
		records := []domain.ErrorRecord{
			timestamped("E", "at start", base),
			timestamped("E", "at end", base.Add(time.Hour)),
		}
		trend, err := Aggregate(records, time.Hour, base, base.Add(time.Hour))
		require.NoError(t, err)

		require.Len(t, trend.Buckets, 1)
		assert.Equal(t, 1, trend.Buckets[0].Count)
	})

	t.Run("buckets are sparse and chronological", func(t *testing.T) {
		records := []domain.ErrorRecord{
			timestamped("E", "late", base.Add(5*time.Hour)),
			timestamped("E", "early", base),
		}
		trend, err := Aggregate(records, time.Hour, base, base.Add(6*time.Hour))
		require.NoError(t, err)

		require.Len(t, trend.Buckets, 2)
		assert.Equal(t, base, trend.Buckets[0].BucketStart)
		assert.Equal(t, base.Add(5*time.Hour), trend.Buckets[1].BucketStart)
	})

	t.Run("peak tie goes to the earliest bucket", func(t *testing.T) {
		records := []domain.ErrorRecord{
			timestamped("E", "a", base.Add(time.Hour)),
			timestamped("E", "b", base.Add(3*time.Hour)),
		}
		trend, err := Aggregate(records, time.Hour, base, base.Add(6*time.Hour))
		require.NoError(t, err)

		require.NotNil(t, trend.PeakBucket)
		assert.Equal(t, base.Add(time.Hour), trend.PeakBucket.BucketStart)
	})

	t.Run("empty input yields empty trend", func(t *testing.T) {
		trend, err := Aggregate(nil, time.Hour, base, base.Add(time.Hour))
		require.NoError(t, err)
		assert.Empty(t, trend.Buckets)
		assert.Nil(t, trend.PeakBucket)
		assert.Zero(t, trend.AveragePerBucket)
	})

	t.Run("per-type breakdown", func(t *testing.T) {
		records := []domain.ErrorRecord{
			timestamped("A", "x", base),
			timestamped("A", "y", base.Add(time.Minute)),
			timestamped("B", "z", base.Add(2*time.Minute)),
		}
		trend, err := Aggregate(records, time.Hour, base, base.Add(time.Hour))
		require.NoError(t, err)

		require.Len(t, trend.Buckets, 1)
		assert.Equal(t, map[string]int{"A": 2, "B": 1}, trend.Buckets[0].TypeCounts)
	})
}

func TestAggregate_ContractViolations(t *testing.T) {
	base := time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC)

	_, err := Aggregate(nil, 0, base, base.Add(time.Hour))
	assert.Error(t, err)

	_, err = Aggregate(nil, -time.Minute, base, base.Add(time.Hour))
	assert.Error(t, err)

	_, err = Aggregate(nil, time.Hour, base, base)
	assert.Error(t, err)
}

func TestDefaultRange(t *testing.T) {
	mock := clock.NewMock()
	now := time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)
	mock.Set(now)

	start, end := DefaultRange(mock)
	assert.Equal(t, now, end)
	assert.Equal(t, now.Add(-24*time.Hour), start)
}
