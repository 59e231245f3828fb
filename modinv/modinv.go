// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

// Package modinv computes modular inverses over machine integers via the
// extended Euclidean algorithm, the "lots of division and modulo" routine
// the sieve engine drives once per small prime per origin.
package modinv

// Inverse returns r in [0, p) such that a*r ≡ 1 (mod p).
//
// Precondition: gcd(a, p) == 1 and p is prime (callers only ever pass a
// prime p drawn from the small-prime table, and a = B mod p with B mod p != 0
// already checked by the caller, which is exactly the precondition under
// which a and p are coprime). Violating the precondition is an arithmetic
// domain error impossible by construction; this function does not guard
// against it.
func Inverse(a, p int) int {
	b := p
	x, lastX := 0, 1
	for b != 0 {
		q := a / b
		a, b = b, a%b
		x, lastX = lastX-q*x, x
	}
	lastX %= p
	if lastX < 0 {
		lastX += p
	}
	return lastX
}
