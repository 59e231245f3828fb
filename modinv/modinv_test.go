package modinv

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInverseKnownValues(t *testing.T) {
	assert.Equal(t, 3, Inverse(2, 5))
	assert.Equal(t, 1, Inverse(1, 7))
	assert.Equal(t, 4, Inverse(2, 7))
}

func TestInverseRoundTrips(t *testing.T) {
	primes := []int{3, 5, 7, 11, 13, 17, 37, 101}
	for _, p := range primes {
		for a := 1; a < p; a++ {
			r := Inverse(a, p)
			assert.True(t, r >= 0 && r < p, "inverse must land in [0, p)")
			assert.Equal(t, 1, (a*r)%p, "a*inverse(a,p) must be 1 (mod p)")
		}
	}
}
