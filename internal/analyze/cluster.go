package analyze

import (
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/vburojevic/stacksift/internal/domain"
)

// indexedCluster carries the original input index of the cluster's
// representative so sharded runs can restore the unsharded ordering.
type indexedCluster struct {
	cluster  domain.ErrorCluster
	repIndex int
}

// Cluster partitions records by greedy single-pass similarity grouping: the
// first unconsumed record seeds a cluster, the remainder is scanned once,
// and every record meeting the threshold joins and is consumed. Clustering
// is representative-anchored rather than transitively closed; two records
// each similar to a third may still land in separate clusters depending on
// input order. That behavior is part of the contract.
//
// Output is sorted by descending member count, ties broken by the
// representative's first-encountered position. Every input record appears
// in exactly one cluster.
func (e *Engine) Cluster(records []domain.ErrorRecord) []domain.ErrorCluster {
	if len(records) == 0 {
		return nil
	}

	var clusters []indexedCluster
	if e.workers > 1 {
		clusters = e.clusterSharded(records)
	} else {
		indexes := make([]int, len(records))
		for i := range records {
			indexes[i] = i
		}
		clusters = e.clusterGreedy(records, indexes)
	}

	// Restore input order before the stable count sort so ties resolve to
	// first-encountered order in sharded and sequential runs alike.
	sort.Slice(clusters, func(i, j int) bool {
		return clusters[i].repIndex < clusters[j].repIndex
	})
	sort.SliceStable(clusters, func(i, j int) bool {
		return clusters[i].cluster.Count() > clusters[j].cluster.Count()
	})

	out := make([]domain.ErrorCluster, len(clusters))
	for i, c := range clusters {
		out[i] = c.cluster
	}
	return out
}

// clusterGreedy runs one greedy pass over records[indexes]. A consumed set
// replaces the source's pop-while-iterating list mutation.
func (e *Engine) clusterGreedy(records []domain.ErrorRecord, indexes []int) []indexedCluster {
	consumed := make([]bool, len(indexes))
	var clusters []indexedCluster

	for i, idx := range indexes {
		if consumed[i] {
			continue
		}
		consumed[i] = true

		rep := records[idx]
		c := domain.ErrorCluster{
			Representative:      rep,
			Members:             []domain.ErrorRecord{rep},
			SimilarityThreshold: e.threshold,
		}
		c.ObserveTimestamp(rep.Timestamp)

		for j := i + 1; j < len(indexes); j++ {
			if consumed[j] {
				continue
			}
			candidate := records[indexes[j]]
			if e.Similarity(rep, candidate) >= e.threshold {
				consumed[j] = true
				c.Members = append(c.Members, candidate)
				c.ObserveTimestamp(candidate.Timestamp)
			}
		}

		clusters = append(clusters, indexedCluster{cluster: c, repIndex: idx})
	}
	return clusters
}

// clusterSharded partitions records by error type and clusters each shard
// concurrently. Cross-type similarity is always zero, so no member can
// cross a shard boundary and the result matches the sequential pass.
func (e *Engine) clusterSharded(records []domain.ErrorRecord) []indexedCluster {
	shardOrder := make([]string, 0)
	shards := make(map[string][]int)
	for i, rec := range records {
		if _, ok := shards[rec.ErrorType]; !ok {
			shardOrder = append(shardOrder, rec.ErrorType)
		}
		shards[rec.ErrorType] = append(shards[rec.ErrorType], i)
	}

	results := make([][]indexedCluster, len(shardOrder))

	var g errgroup.Group
	g.SetLimit(e.workers)
	for i, errorType := range shardOrder {
		indexes := shards[errorType]
		g.Go(func() error {
			results[i] = e.clusterGreedy(records, indexes)
			return nil
		})
	}
	_ = g.Wait()

	var merged []indexedCluster
	for _, shard := range results {
		merged = append(merged, shard...)
	}
	return merged
}
