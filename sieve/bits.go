// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package sieve

// bitset is a packed array of composite/unknown flags. The original source
// spends one full byte per sieve element (a plain malloc'd char array); this
// packs 64 flags per word instead, worthwhile since each worker thread owns
// two of these for the lifetime of the hunt.
type bitset struct {
	words []uint64
	n     int
}

func newBitset(n int) bitset {
	return bitset{words: make([]uint64, (n+63)/64), n: n}
}

// reset clears every flag back to "unknown / probably prime", reused every
// sieve pass instead of reallocating.
func (b *bitset) reset() {
	for i := range b.words {
		b.words[i] = 0
	}
}

// set marks position i as composite.
func (b *bitset) set(i int) {
	b.words[i/64] |= 1 << uint(i%64)
}

// test reports whether position i is marked composite.
func (b *bitset) test(i int) bool {
	if i < 0 || i >= b.n {
		return false
	}
	return b.words[i/64]&(1<<uint(i%64)) != 0
}

func (b *bitset) len() int {
	return b.n
}
