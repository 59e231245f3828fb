// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

// Package worker implements the per-thread hunt loop: hash a fresh nonce,
// multiply in the primorial, sieve, locate, and fold results into shared
// statistics.
package worker

import (
	"github.com/binance-chain/cunningham-chains/config"
	"github.com/binance-chain/cunningham-chains/primality"
	"github.com/binance-chain/cunningham-chains/sieve"
	"github.com/binance-chain/cunningham-chains/stats"
)

// Context is the scratch state exactly one worker goroutine owns: its
// nonce cursor, sieve pair, primality scratch, and local stats shadow.
// Never touched by any other worker (spec 3 WorkerContext, spec 5 "sieves,
// big-integer scratch, origin: thread-local, never shared").
type Context struct {
	Rank       int
	NumThreads int
	Tag        string
	Nonce      uint64

	Sieve   *sieve.Pair
	PrimCtx *primality.Context
	Shadow  *stats.Table

	LocalTried     uint64
	LocalSieveTime float64
	LocalPrimTime  float64
}

// NewContext builds a worker context for thread rank out of numThreads,
// seeding its nonce at rank (so nonce sequences partition the workload by
// stepping numThreads apart, spec 4.6).
func NewContext(rank, numThreads int, cfg *config.Config) *Context {
	return &Context{
		Rank:       rank,
		NumThreads: numThreads,
		Tag:        cfg.Tag,
		Nonce:      uint64(rank),
		Sieve:      sieve.NewPair(cfg.SieveSize),
		PrimCtx:    primality.NewContext(),
		Shadow:     stats.NewTable(),
	}
}
