// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

// Package config collects the hunt's tunables into a single runtime-configurable
// struct instead of the compile-time constants the original used.
package config

import "github.com/pkg/errors"

const MaxThreads = 1024

// Config holds every tunable the hunt needs. Zero values are not valid
// configuration; always start from DefaultConfig.
type Config struct {
	// SieveSize is the length of each sieve bit array (elements considered per origin).
	SieveSize int

	// MaxPrime is the upper bound (exclusive) on primes placed in the small-prime table.
	MaxPrime int

	// Primorial bounds the primes folded into the origin: each prime <= Primorial
	// that does not already divide it.
	Primorial int

	// MinAccept is the shortest chain length the locator will report.
	MinAccept int

	// MinChain is the shortest chain the locator bothers running primality tests on.
	MinChain int

	// Beyond enables extending candidate chains past the sieve boundary via
	// direct probable-primality testing instead of stopping at SieveSize.
	Beyond bool

	// RunSelfCheck runs the known-chain brute-force self-test (see
	// chain.KnownChains) once at startup before any worker launches.
	RunSelfCheck bool

	// SanityCheck independently re-derives every reported finding's length
	// via brute-force direct primality testing and records a mismatch
	// against the aggregator instead of trusting the locator's
	// divide-and-conquer search blindly. Off by default since it roughly
	// doubles the primality-testing work per finding.
	SanityCheck bool

	// Tag salts every nonce before hashing; distinguishes runs / pools.
	Tag string

	// ReportEvery is how many per-thread iterations elapse between merges
	// into the global stats table.
	ReportEvery int64

	// BannerEvery is how many total hashes tried elapse between printed
	// periodic banners. A banner prints when the total is an exact multiple
	// of BannerEvery, and the total grows in steps of ReportEvery, so a
	// BannerEvery that is not a multiple of ReportEvery prints less often;
	// no constraint between the two is enforced.
	BannerEvery int64
}

// DefaultConfig returns the tunables the original author settled on, expressed
// as runtime configuration rather than preprocessor defines.
func DefaultConfig() *Config {
	return &Config{
		SieveSize:    1000000,
		MaxPrime:     50000,
		Primorial:    31,
		MinAccept:    5,
		MinChain:     6,
		Beyond:       true,
		RunSelfCheck: false,
		SanityCheck:  false,
		Tag:          "sopp",
		ReportEvery:  100,
		BannerEvery:  1000,
	}
}

// Validate rejects configuration that would make the hunt meaningless or
// push the locator's i<<k shifts past its shift cap (chain's maxSafeShift).
func (c *Config) Validate() error {
	if c.SieveSize <= 0 {
		return errors.New("config: SieveSize must be positive")
	}
	if c.MaxPrime <= c.Primorial {
		return errors.New("config: MaxPrime must exceed Primorial")
	}
	if c.MinChain <= 0 || c.MinChain > 62 {
		return errors.New("config: MinChain must be in (0, 62]")
	}
	if c.MinAccept <= 0 || c.MinAccept > c.MinChain {
		return errors.New("config: MinAccept must be in (0, MinChain]")
	}
	if c.ReportEvery <= 0 {
		return errors.New("config: ReportEvery must be positive")
	}
	return nil
}

// ValidateThreads checks a requested worker count against the hunt's ceiling,
// mirroring the original's "number of threads must be between 1 and THREAD" check.
func ValidateThreads(n int) error {
	if n < 1 || n > MaxThreads {
		return errors.Errorf("number of threads must be between 1 and %d", MaxThreads)
	}
	return nil
}
