// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package primality

import "math/big"

// Context holds the scratch big integers one call to Test needs, so repeated
// calls from the same goroutine don't re-allocate. Mirrors the original's
// context_t (res/power/temp), attached explicitly to a caller instead of
// living as file-scope globals.
type Context struct {
	res   *big.Int
	power *big.Int
	temp  *big.Int
}

func NewContext() *Context {
	return &Context{
		res:   new(big.Int),
		power: new(big.Int),
		temp:  new(big.Int),
	}
}
