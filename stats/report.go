// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package stats

import "fmt"

const bannerRule = "==========================================================================="

// printFinding writes the one-line-per-discovery protocol directly to
// stdout. This is data, not a log line, so it bypasses common.Logger
// entirely and always prints regardless of log level.
func printFinding(kind, length int, frac float64) {
	fmt.Printf("found chain type %d length %.12f\n", kind+1, float64(length)+frac)
}

// printBanner writes the periodic summary: total hashes tried, elapsed
// time, the sieve/primality-testing time split, and one row per chain
// length with a nonzero count.
func printBanner(tried uint64, elapsedSec, sieveTime, primTime float64, rows []Row, errCount int) {
	total := sieveTime + primTime
	var sieveFrac, primFrac float64
	if total > 0 {
		sieveFrac = sieveTime / total
		primFrac = primTime / total
	}
	fmt.Println(bannerRule)
	fmt.Printf("after trying %d hashes (%.2f sec) (%.4f sieve, %.4f primcheck):\n", tried, elapsedSec, sieveFrac, primFrac)
	for _, r := range rows {
		rate := float64(r.Total()) / (elapsedSec / 3600)
		fmt.Printf(" %2dch/h: %9.2f [%d %d %d]\n", r.Length, rate, r.First, r.Second, r.Twin)
	}
	if errCount > 0 {
		fmt.Printf("ERRORS FOUND %d\n", errCount)
	}
	fmt.Println(bannerRule)
}
