// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

// Package hunt wires configuration, the small-prime table, the worker pool,
// and the aggregator together into a runnable search.
package hunt

import (
	"context"
	"fmt"
	"sync"

	"github.com/binance-chain/cunningham-chains/chain"
	"github.com/binance-chain/cunningham-chains/common"
	"github.com/binance-chain/cunningham-chains/config"
	"github.com/binance-chain/cunningham-chains/primality"
	"github.com/binance-chain/cunningham-chains/primes"
	"github.com/binance-chain/cunningham-chains/stats"
	"github.com/binance-chain/cunningham-chains/worker"
)

// Options are the run-time knobs not part of the chain-hunting algorithm
// itself: how many worker threads to launch and whether to trace each
// origin tried.
type Options struct {
	NumThreads int
	PrintTried bool
}

// Run validates configuration, builds the shared small-prime table,
// optionally runs the known-chain self-check, then launches NumThreads
// worker goroutines and blocks until ctx is canceled or a worker reports a
// fatal error.
func Run(ctx context.Context, cfg *config.Config, opts Options) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := config.ValidateThreads(opts.NumThreads); err != nil {
		return err
	}

	common.Logger.Infof("generating small-prime table up to %d", cfg.MaxPrime)
	table := primes.Generate(cfg.MaxPrime)

	if cfg.RunSelfCheck {
		runSelfCheck()
	}

	agg := stats.NewAggregator(cfg.BannerEvery)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var wg sync.WaitGroup
	errCh := make(chan error, opts.NumThreads)
	for rank := 0; rank < opts.NumThreads; rank++ {
		wg.Add(1)
		go func(rank int) {
			defer wg.Done()
			wc := worker.NewContext(rank, opts.NumThreads, cfg)
			locator := chain.NewLocator(cfg, wc.PrimCtx)
			if err := worker.Loop(ctx, wc, cfg, table, locator, agg, opts.PrintTried); err != nil {
				common.Logger.Errorf("worker %d stopped: %v", rank, err)
				errCh <- err
				cancel()
			}
		}(rank)
	}

	wg.Wait()
	close(errCh)
	for err := range errCh {
		if err != nil {
			return err
		}
	}
	return nil
}

// runSelfCheck exercises the brute-force chain finder against the known
// seed chains before any worker launches, the original's sanity()/test()
// startup behavior kept as an opt-in (spec SUPPLEMENTED FEATURES).
func runSelfCheck() {
	ctx := primality.NewContext()
	for _, r := range chain.CheckKnownChains(ctx) {
		fmt.Printf("try %s:\n", r.Value)
		fmt.Printf("  found %.12f\n", r.FirstKind)
		fmt.Printf("  found %.12f\n", r.SecondKind)
	}
}
