package domain

// TypeCount is one (error type, occurrence count) pair.
type TypeCount struct {
	ErrorType string `json:"errorType"`
	Count     int    `json:"count"`
}

// AnalysisReport is the combined output of one analysis run. It is derived,
// read-only, and serializes to JSON without loss.
type AnalysisReport struct {
	TotalErrors     int            `json:"totalErrors"`
	UniqueTypeCount int            `json:"uniqueTypeCount"`
	Clusters        []ErrorCluster `json:"clusters"`
	Trend           TrendSummary   `json:"trend"`
	TopErrors       []TypeCount    `json:"topErrors"`

	// AI markers
	HasErrors bool `json:"hasErrors"`

	// ErrorRate is errors per minute across the span of timestamped records.
	ErrorRate float64 `json:"errorRate"`
}
