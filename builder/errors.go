// SPDX-License-Identifier: MIT
// Package: aomkin/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers use errors.Is.
//   • Constructors attach context with %w: "Cycle: n=1 < min=2: builder: ...".

package builder

import "errors"

// ErrTooFewStates indicates that a constructor received fewer states than it needs.
var ErrTooFewStates = errors.New("builder: too few states")

// ErrConstructFailed indicates a nil constructor or a network that failed to seal.
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrUnknownNetwork indicates that ByName was given an unsupported topology name.
var ErrUnknownNetwork = errors.New("builder: unknown network")
