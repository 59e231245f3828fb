// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

// Package sieve builds, for a single origin, the pair of bit arrays marking
// which multipliers yield composite iB-1 / iB+1 due to small-prime
// divisibility.
package sieve

import (
	"math/big"

	"github.com/binance-chain/cunningham-chains/modinv"
	"github.com/binance-chain/cunningham-chains/primes"
)

// Pair holds the minus-sieve (iB-1 composite markers) and plus-sieve
// (iB+1 composite markers) for one origin. Owned by exactly one worker and
// reused across sieve passes.
type Pair struct {
	Minus bitset
	Plus  bitset
}

// NewPair allocates a sieve pair of the given size, once per worker thread.
func NewPair(size int) *Pair {
	return &Pair{Minus: newBitset(size), Plus: newBitset(size)}
}

func (p *Pair) Len() int { return p.Minus.len() }

// TestMinus reports whether i*B-1 is known composite.
func (p *Pair) TestMinus(i int) bool { return p.Minus.test(i) }

// TestPlus reports whether i*B+1 is known composite.
func (p *Pair) TestPlus(i int) bool { return p.Plus.test(i) }

// Build marks every multiplier i in [0, size) for which i*B-1 or i*B+1 is
// known composite via some small prime above primorial, reusing p's storage.
//
// For each prime p > primorial with B mod p != 0: a = inverse(B mod p, p) is
// the smallest i with i*B ≡ 1 (mod p), i.e. i*B-1 ≡ 0 (mod p); every
// multiple of p from a onward is marked composite in the minus-sieve.
// a*(p-1) mod p is the analogous start for i*B+1.
func Build(p *Pair, origin *big.Int, table *primes.Table, primorial int) {
	p.Minus.reset()
	p.Plus.reset()
	size := p.Len()
	start := table.IndexAbove(primorial)
	mod := new(big.Int)
	primeBig := new(big.Int)
	for idx := start; idx < table.Len(); idx++ {
		prime := table.At(idx)
		primeBig.SetInt64(int64(prime))
		mod.Mod(origin, primeBig)
		r := int(mod.Int64())
		if r == 0 {
			// B is already divisible by this prime, so it can never sieve
			// this origin out here; only possible for primes above primorial,
			// since every prime at or below it was folded into B already.
			continue
		}
		a := modinv.Inverse(r, prime)
		for j := a; j < size; j += prime {
			p.Minus.set(j)
		}
		j2 := (a * (prime - 1)) % prime
		for j := j2; j < size; j += prime {
			p.Plus.set(j)
		}
	}
}
