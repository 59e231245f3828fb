package sieve

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/binance-chain/cunningham-chains/primes"
)

// naiveMinus marks i*B-1 composite by trial division against each prime
// above primorial, independent of the inverse-based fast sieve.
func naiveMinus(size int, origin int64, table *primes.Table, primorial int) []bool {
	out := make([]bool, size)
	for i := 0; i < size; i++ {
		v := int64(i)*origin - 1
		if v < 2 {
			continue
		}
		for _, p := range table.List() {
			if p <= primorial {
				continue
			}
			if v%int64(p) == 0 {
				out[i] = true
				break
			}
		}
	}
	return out
}

func naivePlus(size int, origin int64, table *primes.Table, primorial int) []bool {
	out := make([]bool, size)
	for i := 0; i < size; i++ {
		v := int64(i)*origin + 1
		if v < 2 {
			continue
		}
		for _, p := range table.List() {
			if p <= primorial {
				continue
			}
			if v%int64(p) == 0 {
				out[i] = true
				break
			}
		}
	}
	return out
}

func TestBuildMatchesNaiveSieve(t *testing.T) {
	const (
		size      = 2000
		origin    = 30
		primorial = 5
	)
	table := primes.Generate(1000)
	pair := NewPair(size)
	Build(pair, big.NewInt(origin), table, primorial)

	wantMinus := naiveMinus(size, origin, table, primorial)
	wantPlus := naivePlus(size, origin, table, primorial)

	for i := 0; i < size; i++ {
		assert.Equal(t, wantMinus[i], pair.TestMinus(i), "minus mismatch at i=%d", i)
		assert.Equal(t, wantPlus[i], pair.TestPlus(i), "plus mismatch at i=%d", i)
	}
}

func TestBuildResetsBetweenPasses(t *testing.T) {
	table := primes.Generate(200)
	pair := NewPair(500)
	Build(pair, big.NewInt(30), table, 5)
	firstMinusCount := 0
	for i := 0; i < pair.Len(); i++ {
		if pair.TestMinus(i) {
			firstMinusCount++
		}
	}
	assert.True(t, firstMinusCount > 0)

	Build(pair, big.NewInt(7), table, 5)
	want := naiveMinus(pair.Len(), 7, table, 5)
	for i := 0; i < pair.Len(); i++ {
		// a different origin must not retain stale marks from the previous pass
		assert.Equal(t, want[i], pair.TestMinus(i), "stale minus mark at i=%d", i)
	}
}
