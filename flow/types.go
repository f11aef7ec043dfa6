package flow

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrNilNetwork is returned when the network is nil.
	ErrNilNetwork = errors.New("flow: network is nil")

	// ErrCoverageMismatch is returned when the coverage does not match the
	// network's states.
	ErrCoverageMismatch = errors.New("flow: coverage does not match network states")

	// ErrMissingRate is returned when a step has no rate pair.
	ErrMissingRate = errors.New("flow: missing rate constant")
)

// StepError reports the step whose rate pair is missing.
type StepError struct {
	Step string
}

func (e StepError) Error() string {
	return fmt.Sprintf("flow: no rate pair for step %q", e.Step)
}

// Unwrap lets errors.Is match ErrMissingRate.
func (e StepError) Unwrap() error { return ErrMissingRate }

// Fluxes holds the net fluxes of one evaluation point.
//   - Steps/Net: per-step net flux in network step order.
//   - Groups/GroupNet: per branch group, the sum of its steps.
//   - Reference: the reference step ID.
type Fluxes struct {
	Steps     []string
	Net       []float64
	Groups    []string
	GroupNet  []float64
	Reference string
}

// Of returns the flux of a step or, failing that, of a group.
func (f Fluxes) Of(id string) (float64, bool) {
	for i, s := range f.Steps {
		if s == id {
			return f.Net[i], true
		}
	}
	for i, g := range f.Groups {
		if g == id {
			return f.GroupNet[i], true
		}
	}

	return 0, false
}

// Ref returns the reference-step flux (NaN if absent).
func (f Fluxes) Ref() float64 {
	if v, ok := f.Of(f.Reference); ok {
		return v
	}

	return math.NaN()
}

// Log10Abs returns log10|x|, −Inf for an exact zero and NaN for NaN.
func Log10Abs(x float64) float64 {
	if math.IsNaN(x) {
		return math.NaN()
	}
	if x == 0 {
		return math.Inf(-1)
	}

	return math.Log10(math.Abs(x))
}
