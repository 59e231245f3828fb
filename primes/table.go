// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

// Package primes produces the immutable small-prime table every other
// component in the hunt consumes.
package primes

import (
	otiaiprimes "github.com/otiai10/primes"
)

// Table is an ordered, strictly increasing sequence of primes below some
// limit, generated once and shared read-only afterward.
type Table struct {
	list []int
}

// Generate builds the table of all primes p < limit, p[0] = 2.
func Generate(limit int) *Table {
	if limit < 3 {
		return &Table{list: []int{}}
	}
	raw := otiaiprimes.Until(int64(limit - 1)).List()
	list := make([]int, 0, len(raw))
	for _, p := range raw {
		if int(p) < limit {
			list = append(list, int(p))
		}
	}
	return &Table{list: list}
}

// List returns the underlying slice of primes, ascending. Callers must not
// mutate it.
func (t *Table) List() []int {
	return t.list
}

// Len is the number of primes in the table.
func (t *Table) Len() int {
	return len(t.list)
}

// At returns the i-th prime (0-indexed, so At(0) == 2).
func (t *Table) At(i int) int {
	return t.list[i]
}

// IndexAbove returns the index of the first prime strictly greater than
// bound, or Len() if every prime in the table is <= bound. Used to skip the
// primorial-sized primes already folded into the origin before sieving.
func (t *Table) IndexAbove(bound int) int {
	lo, hi := 0, len(t.list)
	for lo < hi {
		mid := (lo + hi) / 2
		if t.list[mid] <= bound {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}
