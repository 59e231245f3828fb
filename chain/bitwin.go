// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package chain

// TwinLength combines a first-kind length and a second-kind length into a
// bi-twin length: 2*min(l1,l2) when they differ, l1+l2 when equal.
func TwinLength(l1, l2 int) int {
	if l1 != l2 {
		if l1 < l2 {
			return 2 * l1
		}
		return 2 * l2
	}
	return l1 + l2
}

// TwinFraction computes the bi-twin chain's reported fractional part.
//
// This is documented in the original as a known-wrong shortcut ("don't know
// about fractional length here, just take average, which is wrong since it
// changes the distribution"). The specification leaves this
// implementation-defined; this module keeps the original's convention (the
// mean of both sides' fractional residues when both produced one) rather
// than inventing a new, equally unprincipled one, and documents it as such.
// Property tests must only assert the result lies in [0, 1), never a
// specific value.
func TwinFraction(f1, f2 float64, haveF1, haveF2 bool) float64 {
	switch {
	case haveF1 && haveF2:
		return (f1 + f2) * 0.5
	case haveF1:
		return f1
	case haveF2:
		return f2
	default:
		return 0
	}
}
