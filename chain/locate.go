// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package chain

import (
	"math/big"

	"github.com/binance-chain/cunningham-chains/config"
	"github.com/binance-chain/cunningham-chains/primality"
	"github.com/binance-chain/cunningham-chains/sieve"
)

// Triple is everything a single starting multiplier i can produce: the
// first-kind finding (if any), the second-kind finding (if any), and the
// combined bi-twin length/fraction.
type Triple struct {
	I          int
	Minus      *Finding
	Plus       *Finding
	TwinLength int
	TwinFrac   float64
}

// Locator scans a sieve pair for chain candidates and verifies them via the
// center-first divide-and-conquer probable-primality search.
type Locator struct {
	cfg *config.Config
	ctx *primality.Context
}

func NewLocator(cfg *config.Config, ctx *primality.Context) *Locator {
	return &Locator{cfg: cfg, ctx: ctx}
}

// Scan walks every starting multiplier i in [1, size/2^MinChain) and invokes
// report for each one that produced a first-kind, second-kind, or bi-twin
// finding. Candidates producing nothing are not reported.
func (l *Locator) Scan(origin *big.Int, pair *sieve.Pair, report func(Triple)) {
	size := pair.Len()
	span := size >> uint(l.cfg.MinChain)
	for i := 1; i < span; i++ {
		minus := l.scanSide(origin, pair, Minus, i)
		plus := l.scanSide(origin, pair, Plus, i)
		if minus == nil && plus == nil {
			continue
		}
		t := Triple{I: i, Minus: minus, Plus: plus}
		l1, l2 := 0, 0
		if minus != nil {
			l1 = minus.Length
		}
		if plus != nil {
			l2 = plus.Length
		}
		if l1 > 0 && l2 > 0 {
			t.TwinLength = TwinLength(l1, l2)
			t.TwinFrac = TwinFraction(minus.Frac, plus.Frac, true, true)
		}
		report(t)
	}
}

// scanSide gates, extends, and verifies one side's candidate rooted at
// multiplier i, returning nil if the candidate never even reaches the
// MinAccept-length acceptance floor.
func (l *Locator) scanSide(origin *big.Int, pair *sieve.Pair, side Side, i int) *Finding {
	sieveBit := func(shift int) bool {
		idx := i << uint(shift)
		if side == Minus {
			return pair.TestMinus(idx)
		}
		return pair.TestPlus(idx)
	}
	halfMarked := func() bool {
		if side == Minus {
			return pair.TestMinus(i >> 1)
		}
		return pair.TestPlus(i >> 1)
	}
	// Candidate gating (spec 4.5): proceed only if i is odd, or the sieve
	// bit at i/2 is set for this side - i/2 being marked composite
	// guarantees the chain truly begins at i rather than i/2.
	if i&1 == 0 && !halfMarked() {
		return nil
	}
	for k := 0; k < l.cfg.MinChain; k++ {
		if sieveBit(k) {
			return nil
		}
	}

	tested := map[int]bool{}

	k := l.cfg.MinChain
	for k <= maxSafeShift {
		if (i << uint(k)) < pair.Len() {
			if sieveBit(k) {
				break
			}
		} else {
			if !l.cfg.Beyond {
				break
			}
			ok, _ := l.testPosition(origin, i, k, side)
			if !ok {
				break
			}
			tested[k] = true
		}
		k++
	}
	hi := k - 1

	length, frac, shift := l.search(origin, i, side, 0, hi, tested)
	if length == 0 {
		return nil
	}
	return &Finding{Side: side, Start: i, Shift: shift, Length: length, Frac: frac}
}

// maxSafeShift bounds the chain extension loop. Primality probes build
// i<<k as a big.Int (see testPosition), so they are exact at any k; the
// loop's sieve-bounds comparison computes i<<k as a machine int, which is
// exact only while it fits in an int.
const maxSafeShift = 62

// search implements the declarative divide-and-conquer verification: test
// the middle of [lo,hi] first; on failure, keep the longer half (ties keep
// the upper half) and retry; once the remaining range drops below
// MinAccept, reject. A fully-passing range is accepted with one extra probe
// past hi for the terminating fractional witness. tested memoizes shifts
// already confirmed prime (e.g. by the beyond-sieve extension) so they are
// never retested.
func (l *Locator) search(origin *big.Int, base int, side Side, lo, hi int, tested map[int]bool) (length int, frac float64, shift int) {
	for {
		if hi-lo+1 < l.cfg.MinAccept {
			return 0, 0, 0
		}
		mid := lo + (hi-lo)/2
		failPos, _, failed := l.verifyRange(origin, base, side, lo, hi, mid, tested)
		if !failed {
			_, endFrac := l.testPosition(origin, base, hi+1, side)
			return hi - lo + 1, endFrac, lo
		}
		leftLen := failPos - lo
		rightLen := hi - failPos
		if leftLen > rightLen {
			hi = failPos - 1
		} else {
			lo = failPos + 1
		}
	}
}

// verifyRange tests every untested shift in [lo,hi], center-out from mid,
// stopping at the first composite found.
func (l *Locator) verifyRange(origin *big.Int, base int, side Side, lo, hi, mid int, tested map[int]bool) (failPos int, frac float64, failed bool) {
	left, right := mid, mid+1
	for left >= lo || right <= hi {
		if left >= lo {
			if !tested[left] {
				ok, f := l.testPosition(origin, base, left, side)
				if !ok {
					return left, f, true
				}
				tested[left] = true
			}
			left--
		}
		if right <= hi {
			if !tested[right] {
				ok, f := l.testPosition(origin, base, right, side)
				if !ok {
					return right, f, true
				}
				tested[right] = true
			}
			right++
		}
	}
	return 0, 0, false
}

// testPosition evaluates probable-primality of (base<<shift)*origin + offs.
func (l *Locator) testPosition(origin *big.Int, base, shift int, side Side) (bool, float64) {
	mul := new(big.Int).Lsh(big.NewInt(int64(base)), uint(shift))
	n := new(big.Int).Mul(origin, mul)
	offs := side.Offset()
	if offs < 0 {
		n.Sub(n, big.NewInt(int64(-offs)))
	} else {
		n.Add(n, big.NewInt(int64(offs)))
	}
	return primality.Test(l.ctx, n, offs, false)
}
