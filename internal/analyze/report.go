package analyze

import (
	"sort"
	"time"

	"github.com/vburojevic/stacksift/internal/domain"
)

// Assemble combines cluster and trend output into the final report. Pure
// aggregation: no I/O, no retained state.
func Assemble(records []domain.ErrorRecord, clusters []domain.ErrorCluster, trend domain.TrendSummary) *domain.AnalysisReport {
	report := &domain.AnalysisReport{
		TotalErrors: len(records),
		Clusters:    clusters,
		Trend:       trend,
		HasErrors:   len(records) > 0,
	}

	// Count per type, remembering first-seen order for tie-breaking.
	counts := make(map[string]int)
	var typeOrder []string
	for _, rec := range records {
		if _, ok := counts[rec.ErrorType]; !ok {
			typeOrder = append(typeOrder, rec.ErrorType)
		}
		counts[rec.ErrorType]++
	}
	report.UniqueTypeCount = len(typeOrder)

	top := make([]domain.TypeCount, 0, len(typeOrder))
	for _, t := range typeOrder {
		top = append(top, domain.TypeCount{ErrorType: t, Count: counts[t]})
	}
	sort.SliceStable(top, func(i, j int) bool { return top[i].Count > top[j].Count })
	report.TopErrors = top

	report.ErrorRate = errorRate(records)

	return report
}

// errorRate computes errors per minute across the span of timestamped
// records. Records without timestamps contribute to neither span nor count.
func errorRate(records []domain.ErrorRecord) float64 {
	var first, last time.Time
	timestamped := 0
	for _, rec := range records {
		if !rec.HasTimestamp() {
			continue
		}
		timestamped++
		if first.IsZero() || rec.Timestamp.Before(first) {
			first = rec.Timestamp
		}
		if last.IsZero() || rec.Timestamp.After(last) {
			last = rec.Timestamp
		}
	}

	if timestamped == 0 {
		return 0
	}
	minutes := last.Sub(first).Minutes()
	if minutes <= 0 {
		return 0
	}
	return float64(timestamped) / minutes
}
