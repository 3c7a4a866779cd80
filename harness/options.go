// SPDX-License-Identifier: MIT

// Package harness: functional configuration of a Runner.
//
// Defaults are documented constants; WithX constructors validate eagerly and
// panic only on nonsensical values (programmer error).

package harness

import (
	"log/slog"
	"math"
)

// DefaultTolerance is the relative tolerance of numeric comparisons:
// a and b match when |a-b| < max(|a|, |b|, 1) * tol.
const DefaultTolerance = 1e-6

const (
	panicToleranceInvalid = "harness: WithTolerance: tol must be finite and > 0"
	panicLoggerNil        = "harness: WithLogger: logger must be non-nil"
)

// Option configures a Runner.
type Option func(*options)

type options struct {
	logger *slog.Logger // slog.Default() unless overridden
	tol    float64      // DefaultTolerance
}

// WithLogger routes module results and warnings to logger.
func WithLogger(logger *slog.Logger) Option {
	if logger == nil {
		panic(panicLoggerNil)
	}

	return func(o *options) { o.logger = logger }
}

// WithTolerance sets the relative tolerance passed to IsEqual.
func WithTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol <= 0 {
		panic(panicToleranceInvalid)
	}

	return func(o *options) { o.tol = tol }
}

// gatherOptions applies user options over the defaults; last writer wins.
func gatherOptions(user ...Option) options {
	o := options{
		logger: slog.Default(),
		tol:    DefaultTolerance,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}
