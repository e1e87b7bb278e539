package analyze

import (
	"fmt"
	"sort"
	"time"

	"github.com/benbjohnson/clock"

	"github.com/vburojevic/stacksift/internal/domain"
)

// DefaultWindow is the trend bucket width when none is configured.
const DefaultWindow = time.Hour

// DefaultRangeSpan is how far back the default trend range reaches.
const DefaultRangeSpan = 24 * time.Hour

// DefaultRange returns the trailing 24-hour analysis range ending at the
// clock's current time. The clock is injected so callers (and tests) own
// the notion of "now".
func DefaultRange(clk clock.Clock) (start, end time.Time) {
	end = clk.Now()
	return end.Add(-DefaultRangeSpan), end
}

// Aggregate buckets timestamped records into fixed-width windows over the
// half-open range [rangeStart, rangeEnd). Records without a timestamp are
// excluded entirely rather than assigned a default bucket. Only buckets
// containing at least one record are emitted, in chronological order.
func Aggregate(records []domain.ErrorRecord, window time.Duration, rangeStart, rangeEnd time.Time) (domain.TrendSummary, error) {
	if window <= 0 {
		return domain.TrendSummary{}, fmt.Errorf("trend window must be positive, got %v", window)
	}
	if !rangeEnd.After(rangeStart) {
		return domain.TrendSummary{}, fmt.Errorf("trend range end %v is not after start %v", rangeEnd, rangeStart)
	}

	summary := domain.TrendSummary{
		Window:     window,
		RangeStart: rangeStart,
		RangeEnd:   rangeEnd,
	}

	buckets := make(map[int64]*domain.TrendBucket)
	for _, rec := range records {
		if !rec.HasTimestamp() {
			continue
		}
		ts := rec.Timestamp
		if ts.Before(rangeStart) || !ts.Before(rangeEnd) {
			continue
		}

		idx := int64(ts.Sub(rangeStart) / window)
		bucket, ok := buckets[idx]
		if !ok {
			bucket = &domain.TrendBucket{
				BucketStart: rangeStart.Add(time.Duration(idx) * window),
				TypeCounts:  make(map[string]int),
			}
			buckets[idx] = bucket
		}
		bucket.Count++
		bucket.TypeCounts[rec.ErrorType]++
	}

	if len(buckets) == 0 {
		return summary, nil
	}

	indexes := make([]int64, 0, len(buckets))
	for idx := range buckets {
		indexes = append(indexes, idx)
	}
	sort.Slice(indexes, func(i, j int) bool { return indexes[i] < indexes[j] })

	total := 0
	for _, idx := range indexes {
		summary.Buckets = append(summary.Buckets, *buckets[idx])
		total += buckets[idx].Count
	}
	summary.AveragePerBucket = float64(total) / float64(len(summary.Buckets))

	// Earliest bucket wins count ties.
	peak := summary.Buckets[0]
	for _, b := range summary.Buckets[1:] {
		if b.Count > peak.Count {
			peak = b
		}
	}
	summary.PeakBucket = &peak

	return summary, nil
}
