package coverage

import "errors"

var (
	// ErrDegenerateRates indicates the rate table admits no unique
	// stationary distribution (rates collapsed to zero or a disconnected
	// positive-rate graph).
	ErrDegenerateRates = errors.New("coverage: degenerate rates")

	// ErrIncompleteTable indicates a network step has no entry in the table.
	ErrIncompleteTable = errors.New("coverage: rate table is incomplete")

	// ErrInvalidRate indicates a negative or non-finite rate constant.
	ErrInvalidRate = errors.New("coverage: rate constant must be finite and non-negative")

	// ErrNilNetwork indicates a nil network.
	ErrNilNetwork = errors.New("coverage: network is nil")
)
