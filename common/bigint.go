// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package common

import (
	"math/big"
)

var (
	One = big.NewInt(1)
	Two = big.NewInt(2)
)

// SetHex parses a hex string (as produced by a hash digest) into a fresh
// big.Int, the "set-from-hex" operation the core treats as a collaborator
// capability rather than something it implements itself.
func SetHex(hexStr string) (*big.Int, bool) {
	return new(big.Int).SetString(hexStr, 16)
}
