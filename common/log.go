// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package common

import (
	golog "github.com/ipfs/go-log"
)

// Logger is the package-wide diagnostic logger. It never carries the
// hunt's stdout protocol (tried hashes, found chains, the periodic banner) -
// that is written directly with fmt so its format stays exact regardless of
// log level.
var Logger = golog.Logger("cunningham-chains")

// SetLogLevel adjusts verbosity at runtime, e.g. "debug", "info", "error".
func SetLogLevel(level string) error {
	return golog.SetLogLevel("cunningham-chains", level)
}
