// SPDX-License-Identifier: MIT
// Package matrix: functional options for the numeric policy.
//
// Contract:
//   - Option constructors validate their argument and panic on nonsensical
//     values (programmer error); algorithms never panic.
//   - Options are resolved once per call by gatherOptions; defaults live here.

package matrix

import "math"

// Defaults of the numeric policy.
const (
	// DefaultValidateNaNInf makes Set reject NaN/±Inf.
	DefaultValidateNaNInf = true

	// DefaultPivotTolerance is the smallest |pivot| accepted by LU. Zero means
	// only an exactly vanishing column is reported as singular.
	DefaultPivotTolerance = 0.0
)

const panicPivotToleranceInvalid = "matrix: WithPivotTolerance: tol must be finite, non-negative"

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	pivotTol       float64 // >= 0
	validateNaNInf bool
}

// WithPivotTolerance sets the pivot magnitude below which LU reports
// ErrSingular. Panics when tol is negative, NaN or Inf.
func WithPivotTolerance(tol float64) Option {
	if tol < 0 || math.IsNaN(tol) || math.IsInf(tol, 0) {
		panic(panicPivotToleranceInvalid)
	}

	return func(o *Options) { o.pivotTol = tol }
}

// WithValidateNaNInf makes inputs containing NaN/±Inf fail with ErrNaNInf.
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables the NaN/±Inf input check.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// NewMatrixOptions resolves opts over the package defaults.
func NewMatrixOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// PivotTolerance reports the resolved pivot tolerance.
func (o Options) PivotTolerance() float64 { return o.pivotTol }

// ValidateNaNInf reports whether non-finite inputs are rejected.
func (o Options) ValidateNaNInf() bool { return o.validateNaNInf }

func defaultOptions() Options {
	return Options{
		pivotTol:       DefaultPivotTolerance,
		validateNaNInf: DefaultValidateNaNInf,
	}
}

// gatherOptions applies user options in order; nil entries are skipped.
func gatherOptions(user ...Option) Options {
	o := defaultOptions()
	for _, opt := range user {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
