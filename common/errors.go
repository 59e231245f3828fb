// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package common

import "fmt"

// HuntError is a fatal or semi-fatal error tied to a phase of the hunt
// (startup, sieve, locate, report), the worker thread that triggered it,
// and an optional free-form detail.
type HuntError struct {
	cause  error
	phase  string
	thread int
	detail string
}

func NewHuntError(err error, phase string, thread int, detail string) *HuntError {
	return &HuntError{cause: err, phase: phase, thread: thread, detail: detail}
}

func (e *HuntError) Cause() error { return e.cause }

func (e *HuntError) Phase() string { return e.phase }

func (e *HuntError) Thread() int { return e.thread }

func (e *HuntError) Error() string {
	if e == nil {
		return "HuntError is nil"
	}
	if e.detail != "" {
		return fmt.Sprintf("thread %d, phase %s (%s): %s", e.thread, e.phase, e.detail, e.cause.Error())
	}
	return fmt.Sprintf("thread %d, phase %s: %s", e.thread, e.phase, e.cause.Error())
}
