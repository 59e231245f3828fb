// Copyright © 2019-2020 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/binance-chain/cunningham-chains/common"
	"github.com/binance-chain/cunningham-chains/config"
	"github.com/binance-chain/cunningham-chains/hunt"
)

func main() {
	var (
		tag        string
		sieveSize  int
		minChain   int
		minAccept  int
		selfCheck  bool
		logLevel   string
		printTried bool
	)

	flag.StringVar(&tag, "tag", "sopp", "nonce salt distinguishing this run")
	flag.IntVar(&sieveSize, "sieve-size", 0, "sieve bit-array length (0 keeps the default)")
	flag.IntVar(&minChain, "min-chain", 0, "shortest chain length that is primality-tested (0 keeps the default)")
	flag.IntVar(&minAccept, "min-accept", 0, "shortest chain length that gets reported (0 keeps the default)")
	flag.BoolVar(&selfCheck, "self-check", false, "run the known-chain brute-force self-check before hunting")
	flag.StringVar(&logLevel, "log-level", "info", "log level for the hunt logger (debug, info, warn, error)")
	flag.BoolVar(&printTried, "print-tried", false, "print every origin hash as it is tried")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] [numthreads]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	numThreads := 1
	if flag.NArg() > 0 {
		n, err := strconv.Atoi(flag.Arg(0))
		if err != nil {
			fmt.Fprintf(os.Stderr, "numthreads must be an integer: %v\n", err)
			os.Exit(1)
		}
		numThreads = n
	}
	if err := config.ValidateThreads(numThreads); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	cfg := config.DefaultConfig()
	cfg.Tag = tag
	cfg.RunSelfCheck = selfCheck
	if sieveSize > 0 {
		cfg.SieveSize = sieveSize
	}
	if minChain > 0 {
		cfg.MinChain = minChain
	}
	if minAccept > 0 {
		cfg.MinAccept = minAccept
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := common.SetLogLevel(logLevel); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := hunt.Run(ctx, cfg, hunt.Options{NumThreads: numThreads, PrintTried: printTried}); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
