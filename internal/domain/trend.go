package domain

import "time"

// TrendBucket is one fixed-width time window with aggregated error counts.
// Buckets are half-open [BucketStart, BucketStart+window) intervals; empty
// buckets are omitted from trend output.
type TrendBucket struct {
	BucketStart time.Time      `json:"bucketStart"`
	Count       int            `json:"count"`
	TypeCounts  map[string]int `json:"typeCounts"`
}

// TrendSummary is the windowed aggregation over a record batch: sparse
// chronological buckets plus derived statistics.
type TrendSummary struct {
	Window           time.Duration `json:"window"`
	RangeStart       time.Time     `json:"rangeStart"`
	RangeEnd         time.Time     `json:"rangeEnd"`
	Buckets          []TrendBucket `json:"buckets"`
	AveragePerBucket float64       `json:"averagePerBucket"`
	PeakBucket       *TrendBucket  `json:"peakBucket,omitempty"`
}
