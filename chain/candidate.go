// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

// Package chain enumerates candidate starting multipliers over a sieve pair
// and verifies the longest contiguous Cunningham / bi-twin chain rooted at
// each one.
package chain

// Side distinguishes the two kinds of Cunningham chain.
type Side int

const (
	// Minus is the first kind: p(k+1) = 2*p(k) + 1, rooted at i*B-1.
	Minus Side = iota
	// Plus is the second kind: p(k+1) = 2*p(k) - 1, rooted at i*B+1.
	Plus
)

// Offset is the +1/-1 applied to i*B to form the chain's root element.
func (s Side) Offset() int {
	if s == Minus {
		return -1
	}
	return 1
}

func (s Side) String() string {
	if s == Minus {
		return "first"
	}
	return "second"
}

// Type is the stats-table / report code for this side (1 or 2), matching
// the original's "found chain type 1|2" output.
func (s Side) Type() int {
	if s == Minus {
		return 1
	}
	return 2
}

// Finding is one accepted chain: its starting multiplier i, final surviving
// shift (the "lo" the divide-and-conquer search converged on, needed to
// recompute a ground-truth chain starting at i*2^Shift rather than i), its
// length, and the fractional residue of the terminating probe.
type Finding struct {
	Side   Side
	Start  int
	Shift  int
	Length int
	Frac   float64
}
