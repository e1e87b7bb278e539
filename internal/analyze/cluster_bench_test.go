package analyze

import (
	"fmt"
	"testing"
	"time"

	"github.com/vburojevic/stacksift/internal/domain"
)

func BenchmarkCluster(b *testing.B) {
	var records []domain.ErrorRecord
	for i := 0; i < 500; i++ {
		records = append(records, recordForBench(i))
	}
	e, _ := NewEngine()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		e.Cluster(records)
	}
}

func BenchmarkMatchRatio(b *testing.B) {
	s1 := "svc.handler > svc.dispatch > db.query > pool.acquire > net.dial"
	s2 := "svc.handler > svc.dispatch > db.query > pool.release > net.dial"

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		matchRatio(s1, s2)
	}
}

func recordForBench(i int) domain.ErrorRecord {
	return domain.NewErrorRecord(
		time.Time{},
		fmt.Sprintf("Type%d", i%8),
		fmt.Sprintf("request %d to shard-%d failed", i, i%11),
		[]domain.StackFrame{
			{Module: "svc", Function: fmt.Sprintf("handler%d", i%13), Line: i},
			{Module: "db", Function: "query", Line: i % 97},
		},
		"bench.log",
		fmt.Sprintf("raw-%d", i),
	)
}
