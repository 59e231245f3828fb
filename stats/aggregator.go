// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package stats

import (
	"sync"
	"time"

	"github.com/hashicorp/go-multierror"

	"github.com/binance-chain/cunningham-chains/common"
)

// Aggregator owns the shared stats table and run totals, behind two
// independent mutexes (spec 5): reportMu serializes per-chain print output
// and the global table merge; totalsMu separately guards the hashes-tried
// counter and cumulative timing so a burst of chain reports never stalls
// the next worker's aggregation step. Each is locked and unlocked exactly
// once per acquisition - the original's double-unlock on its equivalent of
// totalsMu is intentionally not reproduced here.
type Aggregator struct {
	reportMu sync.Mutex
	table    *Table
	errors   *multierror.Error

	totalsMu  sync.Mutex
	tried     uint64
	sieveTime float64
	primTime  float64
	start     time.Time

	bannerEvery uint64
}

func NewAggregator(bannerEvery int64) *Aggregator {
	return &Aggregator{
		table:       NewTable(),
		start:       time.Now(),
		bannerEvery: uint64(bannerEvery),
	}
}

// ReportFinding prints the "found chain ..." line for a single discovery.
// Called directly from a worker the moment it discovers a chain, so the
// stdout protocol in spec 6 stays one line per finding rather than being
// batched with the periodic merge. The count itself is folded into the
// worker's local shadow table and only reaches the global table at the next
// MergeAndMaybeReport, same as the original.
func (a *Aggregator) ReportFinding(kind, length int, frac float64) {
	a.reportMu.Lock()
	defer a.reportMu.Unlock()
	printFinding(kind, length, frac)
}

// RecordMismatch folds a ground-truth disagreement (locator length vs.
// brute-force recomputation) into the error accumulator. Non-fatal: spec 7
// classifies this as "internal inconsistency", counted rather than thrown.
func (a *Aggregator) RecordMismatch(detail error) {
	a.reportMu.Lock()
	defer a.reportMu.Unlock()
	a.errors = multierror.Append(a.errors, detail)
	common.Logger.Errorf("internal inconsistency: %v", detail)
}

// MergeAndMaybeReport merges a worker's local iteration count, timing, and
// stats shadow into the run totals, printing the periodic banner when the
// cumulative hash count is an exact multiple of bannerEvery (0 disables it).
func (a *Aggregator) MergeAndMaybeReport(localTried uint64, localSieve, localPrim float64, shadow *Table) {
	a.totalsMu.Lock()
	a.tried += localTried
	a.sieveTime += localSieve
	a.primTime += localPrim
	tried := a.tried
	sieveTime := a.sieveTime
	primTime := a.primTime
	elapsed := time.Since(a.start).Seconds()
	a.totalsMu.Unlock()

	a.reportMu.Lock()
	defer a.reportMu.Unlock()
	a.table.MergeFrom(shadow)
	showBanner := a.bannerEvery > 0 && tried%a.bannerEvery == 0
	if showBanner {
		var errCount int
		if a.errors != nil {
			errCount = a.errors.Len()
		}
		printBanner(tried, elapsed, sieveTime, primTime, a.table.Rows(), errCount)
	}
}

// Tried returns the cumulative number of hashes tried across all workers.
func (a *Aggregator) Tried() uint64 {
	a.totalsMu.Lock()
	defer a.totalsMu.Unlock()
	return a.tried
}

// ErrorCount returns the number of internal inconsistencies recorded so far.
func (a *Aggregator) ErrorCount() int {
	a.reportMu.Lock()
	defer a.reportMu.Unlock()
	if a.errors == nil {
		return 0
	}
	return a.errors.Len()
}
