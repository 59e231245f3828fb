package chain

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/binance-chain/cunningham-chains/primality"
)

func TestKnownChainsProduceLengthsAtLeastSix(t *testing.T) {
	ctx := primality.NewContext()
	results := CheckKnownChains(ctx)
	assert.Len(t, results, len(KnownChains))

	first := results[0]
	assert.True(t, math.Floor(first.FirstKind) >= 6 || math.Floor(first.SecondKind) >= 6,
		"known chain %s should yield a chain of length >= 6 in at least one direction", first.Value)

	for _, r := range results {
		assert.True(t, r.FirstKind >= 0)
		assert.True(t, r.SecondKind >= 0)
	}
}

func TestBruteForceLengthFractionalInRange(t *testing.T) {
	ctx := primality.NewContext()
	origin := big.NewInt(30)
	length, f := BruteForceLength(origin, big.NewInt(1), -1, 1, ctx)
	assert.True(t, length >= 0)
	assert.True(t, f >= 0 && f < 1)
}

func TestBruteForceLengthRejectsEvenCandidate(t *testing.T) {
	ctx := primality.NewContext()
	origin := big.NewInt(10) // 10*1+1 = 11, odd; use an offset that yields an even number instead
	length, f := BruteForceLength(origin, big.NewInt(1), 0, 1, ctx)
	assert.Equal(t, 0, length)
	assert.Equal(t, 0.0, f)
}
