package stats

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestReportFindingOnlyPrintsDoesNotTouchTable documents that ReportFinding
// is print-only: the count for a finding is folded into the worker's local
// shadow table (worker.foldFinding) and only reaches the global table via
// the next MergeAndMaybeReport, same as the original's localnum/num split.
func TestReportFindingOnlyPrintsDoesNotTouchTable(t *testing.T) {
	agg := NewAggregator(0)
	agg.ReportFinding(KindFirst, 6, 0.5)
	agg.ReportFinding(KindFirst, 6, 0.25)
	assert.Equal(t, uint64(0), agg.table.Get(6, KindFirst))
}

func TestMergeAndMaybeReportMergesShadowExactlyOnce(t *testing.T) {
	agg := NewAggregator(0)
	shadow := NewTable()
	shadow.Add(8, KindTwin)
	agg.MergeAndMaybeReport(100, 0.1, 0.2, shadow)
	assert.Equal(t, uint64(1), agg.table.Get(8, KindTwin))
	assert.Equal(t, uint64(0), shadow.Get(8, KindTwin))
	assert.Equal(t, uint64(100), agg.Tried())
}

func TestConcurrentMergesDoNotRace(t *testing.T) {
	agg := NewAggregator(0)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			shadow := NewTable()
			shadow.Add(6, KindFirst)
			agg.MergeAndMaybeReport(10, 0, 0, shadow)
		}()
	}
	wg.Wait()
	assert.Equal(t, uint64(8), agg.table.Get(6, KindFirst))
	assert.Equal(t, uint64(80), agg.Tried())
}

func TestRecordMismatchAccumulatesErrors(t *testing.T) {
	agg := NewAggregator(0)
	agg.RecordMismatch(errors.New("length mismatch at i=4"))
	agg.RecordMismatch(errors.New("length mismatch at i=9"))
	assert.Equal(t, 2, agg.errors.Len())
}
