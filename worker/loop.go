// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package worker

import (
	"context"
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"math"
	"math/big"
	"time"

	"github.com/pkg/errors"

	"github.com/binance-chain/cunningham-chains/chain"
	"github.com/binance-chain/cunningham-chains/common"
	"github.com/binance-chain/cunningham-chains/config"
	"github.com/binance-chain/cunningham-chains/primes"
	"github.com/binance-chain/cunningham-chains/sieve"
	"github.com/binance-chain/cunningham-chains/stats"
)

// Loop runs the per-thread hunt indefinitely, returning only when ctx is
// canceled or a fatal error occurs. No two workers ever touch the same
// WorkerContext, sieve pair, or nonce: each steps its own nonce by
// NumThreads per iteration (spec 4.6), so no central work queue is needed.
func Loop(ctx context.Context, wc *Context, cfg *config.Config, table *primes.Table, locator *chain.Locator, agg *stats.Aggregator, printTried bool) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		sieveStart := time.Now()
		origin, err := originFromHash(wc.Tag, wc.Nonce)
		if err != nil {
			return common.NewHuntError(err, "hash", wc.Rank, "")
		}
		wc.Nonce += uint64(wc.NumThreads)

		if printTried {
			fmt.Printf("try hash %s\n", origin.Text(16))
		}

		applyPrimorial(origin, table, cfg.Primorial)
		sieve.Build(wc.Sieve, origin, table, cfg.Primorial)
		wc.LocalSieveTime += time.Since(sieveStart).Seconds()

		primStart := time.Now()
		locator.Scan(origin, wc.Sieve, func(tr chain.Triple) {
			foldFinding(origin, cfg, wc, agg, tr)
		})
		wc.LocalPrimTime += time.Since(primStart).Seconds()
		wc.LocalTried++

		if wc.LocalTried%uint64(cfg.ReportEvery) == 0 {
			agg.MergeAndMaybeReport(wc.LocalTried, wc.LocalSieveTime, wc.LocalPrimTime, wc.Shadow)
			wc.LocalTried = 0
			wc.LocalSieveTime = 0
			wc.LocalPrimTime = 0
		}
	}
}

func foldFinding(origin *big.Int, cfg *config.Config, wc *Context, agg *stats.Aggregator, tr chain.Triple) {
	if tr.Minus != nil {
		kind := tr.Minus.Side.Type() - 1
		wc.Shadow.Add(tr.Minus.Length, kind)
		agg.ReportFinding(kind, tr.Minus.Length, tr.Minus.Frac)
		checkSanity(origin, cfg, wc, agg, tr.Minus)
	}
	if tr.Plus != nil {
		kind := tr.Plus.Side.Type() - 1
		wc.Shadow.Add(tr.Plus.Length, kind)
		agg.ReportFinding(kind, tr.Plus.Length, tr.Plus.Frac)
		checkSanity(origin, cfg, wc, agg, tr.Plus)
	}
	if tr.TwinLength > 0 {
		wc.Shadow.Add(tr.TwinLength, stats.KindTwin)
		agg.ReportFinding(stats.KindTwin, tr.TwinLength, tr.TwinFrac)
	}
}

// checkSanity independently re-derives a finding's length via brute-force
// direct primality testing and records a mismatch against the aggregator
// when it disagrees with the locator's divide-and-conquer search, mirroring
// the original's #ifdef SANITY block in work(). Off unless Config.SanityCheck
// is set, since it roughly doubles the primality-testing work per finding.
func checkSanity(origin *big.Int, cfg *config.Config, wc *Context, agg *stats.Aggregator, f *chain.Finding) {
	if !cfg.SanityCheck {
		return
	}
	mul := new(big.Int).Lsh(big.NewInt(int64(f.Start)), uint(f.Shift))
	refLen, refFrac := chain.BruteForceLength(origin, mul, f.Side.Offset(), -f.Side.Offset(), wc.PrimCtx)
	got := float64(f.Length) + f.Frac
	want := float64(refLen) + refFrac
	if math.Abs(got-want) > 1e-6 {
		agg.RecordMismatch(fmt.Errorf("side %s start %d shift %d: locator found length %.12f, brute force found %.12f",
			f.Side, f.Start, f.Shift, got, want))
	}
}

// originFromHash computes sha256(tag || nonce-as-8-bytes-little-endian) and
// parses the resulting 32 bytes as a big integer (spec 4.6 step 1).
func originFromHash(tag string, nonce uint64) (*big.Int, error) {
	buf := make([]byte, len(tag)+8)
	copy(buf, tag)
	binary.LittleEndian.PutUint64(buf[len(tag):], nonce)
	sum := sha256.Sum256(buf)
	n, ok := common.SetHex(hex.EncodeToString(sum[:]))
	if !ok {
		return nil, errors.New("could not parse hash digest as hex integer")
	}
	return n, nil
}

// applyPrimorial folds in every small prime p <= primorial that does not
// already divide origin, preserving the invariant that the origin
// construction only absorbs a prime when it wasn't already a factor
// (spec 3, Origin B).
func applyPrimorial(origin *big.Int, table *primes.Table, primorial int) {
	stop := table.IndexAbove(primorial)
	rem := new(big.Int)
	for i := 0; i < stop; i++ {
		p := big.NewInt(int64(table.At(i)))
		rem.Mod(origin, p)
		if rem.Sign() != 0 {
			origin.Mul(origin, p)
		}
	}
}
