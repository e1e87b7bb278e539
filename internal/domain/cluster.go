package domain

import "time"

// ErrorCluster groups records judged similar enough to represent the same
// underlying defect. The representative is the first record that seeded the
// cluster; every member's similarity to it met the threshold at insertion.
type ErrorCluster struct {
	Representative      ErrorRecord   `json:"representative"`
	Members             []ErrorRecord `json:"members"`
	FirstSeen           time.Time     `json:"firstSeen,omitzero"`
	LastSeen            time.Time     `json:"lastSeen,omitzero"`
	SimilarityThreshold float64       `json:"similarityThreshold"`
}

// Count returns the number of members, representative included.
func (c *ErrorCluster) Count() int {
	return len(c.Members)
}

// ObserveTimestamp widens the first/last seen window to include ts.
// Zero timestamps are ignored.
func (c *ErrorCluster) ObserveTimestamp(ts time.Time) {
	if ts.IsZero() {
		return
	}
	if c.FirstSeen.IsZero() || ts.Before(c.FirstSeen) {
		c.FirstSeen = ts
	}
	if c.LastSeen.IsZero() || ts.After(c.LastSeen) {
		c.LastSeen = ts
	}
}
