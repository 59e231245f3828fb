// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

// Package stats holds the chain-length/type counters and the periodic
// report format, plus the aggregator that merges per-worker shadows into
// the shared total under two independent mutexes.
package stats

const (
	// KindFirst, KindSecond, KindTwin index Table's per-length counters,
	// matching the original's num[length][0|1|2].
	KindFirst = iota
	KindSecond
	KindTwin

	minLength = 2
	maxLength = 50
)

// Table is a (length in [2,50), kind in {first,second,twin}) -> count
// matrix. A worker owns one as a local shadow; the hunt owns one as the
// merged global total.
type Table struct {
	counts [maxLength][3]uint64
}

func NewTable() *Table {
	return &Table{}
}

// Add increments the counter for a found chain of the given length and
// kind. Lengths outside [2,50) are silently dropped, matching the
// original's fixed-size num[50][3] array (chains that long are not
// expected to occur; growing the bound is a config change, not a runtime
// error).
func (t *Table) Add(length, kind int) {
	if length < minLength || length >= maxLength {
		return
	}
	t.counts[length][kind]++
}

// Get returns the current count for one (length, kind) cell.
func (t *Table) Get(length, kind int) uint64 {
	if length < minLength || length >= maxLength {
		return 0
	}
	return t.counts[length][kind]
}

// MergeFrom folds shadow's counts into t and resets shadow to zero, the
// operation a worker performs against the global table every ReportEvery
// iterations.
func (t *Table) MergeFrom(shadow *Table) {
	for l := minLength; l < maxLength; l++ {
		for k := 0; k < 3; k++ {
			t.counts[l][k] += shadow.counts[l][k]
			shadow.counts[l][k] = 0
		}
	}
}

// Rows returns every length with a nonzero count, in increasing order,
// alongside its [first, second, twin] triple - exactly what the periodic
// banner iterates over.
func (t *Table) Rows() []Row {
	var rows []Row
	for l := minLength; l < maxLength; l++ {
		c := t.counts[l]
		if c[0]+c[1]+c[2] == 0 {
			continue
		}
		rows = append(rows, Row{Length: l, First: c[0], Second: c[1], Twin: c[2]})
	}
	return rows
}

// Row is one reportable line: a chain length and its per-kind counts.
type Row struct {
	Length              int
	First, Second, Twin uint64
}

// Total sums a row's three kinds, the numerator of its chains-per-hour rate.
func (r Row) Total() uint64 {
	return r.First + r.Second + r.Twin
}
