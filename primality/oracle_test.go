package primality

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFermatPassesOnKnownPrime(t *testing.T) {
	ctx := NewContext()
	n, _ := new(big.Int).SetString("1302312696655394336638441", 10)
	ok, f := Test(ctx, n, 0, false)
	assert.True(t, ok)
	assert.Equal(t, 0.0, f)
}

func TestFermatFailsOnKnownComposite(t *testing.T) {
	ctx := NewContext()
	n := big.NewInt(341 * 3) // 341 is the smallest Fermat pseudoprime base-2; a plain multiple is safely composite
	ok, f := Test(ctx, n, 0, false)
	assert.False(t, ok)
	assert.True(t, f >= 0 && f < 1)
}

func TestRefinementDisabledByDefaultAlwaysPasses(t *testing.T) {
	ctx := NewContext()
	// A prime candidate must pass the Fermat stage before refinement ever runs.
	n, _ := new(big.Int).SetString("978230124172507899911260068253742404889", 10)
	ok, _ := Test(ctx, n, -1, false)
	assert.True(t, ok)
}
