// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package chain

import (
	"math/big"

	"github.com/binance-chain/cunningham-chains/common"
	"github.com/binance-chain/cunningham-chains/primality"
)

// KnownChains are the original author's five seed test integers, run through
// the brute-force chain finder as a startup self-check. Three of these are
// required scenarios in the specification's testable-properties section;
// the original ships five, and this module keeps the full set.
var KnownChains = []string{
	"978230124172507899911260068253742404889",
	"335898524600734221050749906451371",
	"28320350134887132315879689643841",
	"2368823992523350998418445521",
	"1302312696655394336638441",
}

// BruteForceLength independently re-derives a chain's length by repeated
// direct primality testing, with no sieve involved. It starts at
// origin*mul+offs and grows the candidate by doubling and adding inc
// (typically -side.Offset(), so growth direction is opposite the side's
// initial offset sign: a first-kind chain begins at i*B-1 but grows via
// p -> 2p+1). mul is a *big.Int rather than a machine int since callers
// build it as i<<shift, which can exceed 63 bits at large shifts.
//
// Used both as the reference oracle for scenario-based tests and as the
// optional ground-truth recomputation the aggregator can fold into its
// internal-inconsistency counter.
func BruteForceLength(origin *big.Int, mul *big.Int, offs, inc int, ctx *primality.Context) (int, float64) {
	p := new(big.Int).Mul(origin, mul)
	switch {
	case offs < 0:
		p.Sub(p, big.NewInt(int64(-offs)))
	case offs > 0:
		p.Add(p, big.NewInt(int64(offs)))
	}
	return findChainStupid(p, inc, ctx)
}

// findChainStupid counts how many times n, then 2n+inc's sign, ... stays a
// probable prime, stopping at (and reporting the fractional residue of) the
// first failure.
func findChainStupid(n *big.Int, inc int, ctx *primality.Context) (int, float64) {
	p := new(big.Int).Set(n)
	if p.Bit(0) == 0 {
		return 0, 0
	}
	length := 0
	for {
		ok, f := primality.Test(ctx, p, 0, false)
		if !ok {
			return length, f
		}
		length++
		p.Lsh(p, 1)
		if inc < 0 {
			p.Sub(p, common.One)
		} else {
			p.Add(p, common.One)
		}
	}
}

// Sanity mirrors the original's findsanity: the brute-force length plus its
// terminating fractional residue, as a single combined score comparable to
// a locator Finding's Length+Frac.
func Sanity(origin *big.Int, mul *big.Int, offs, inc int, ctx *primality.Context) float64 {
	length, f := BruteForceLength(origin, mul, offs, inc, ctx)
	return float64(length) + f
}

// KnownChainResult is one row of the startup self-check.
type KnownChainResult struct {
	Value      string
	FirstKind  float64
	SecondKind float64
}

// CheckKnownChains runs every entry of KnownChains through the brute-force
// finder in both growth directions, exactly as the original's sanity()/
// test() routines did before launching worker threads.
func CheckKnownChains(ctx *primality.Context) []KnownChainResult {
	results := make([]KnownChainResult, 0, len(KnownChains))
	for _, s := range KnownChains {
		n, ok := new(big.Int).SetString(s, 10)
		if !ok {
			continue
		}
		lenPlus, fPlus := findChainStupid(new(big.Int).Set(n), 1, ctx)
		lenMinus, fMinus := findChainStupid(new(big.Int).Set(n), -1, ctx)
		results = append(results, KnownChainResult{
			Value:      s,
			FirstKind:  float64(lenPlus) + fPlus,
			SecondKind: float64(lenMinus) + fMinus,
		})
	}
	return results
}
