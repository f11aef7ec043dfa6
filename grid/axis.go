package grid

import (
	"fmt"
	"math"
)

// NewAxis builds the axis start, start+step, ..., end.
//
// Errors: ErrNonPositiveStep, ErrInvalidBound, ErrEmptyAxis, ErrTooManyPoints.
func NewAxis(start, end, step float64) (Axis, error) {
	if !(step > 0) || math.IsInf(step, 1) {
		return Axis{}, fmt.Errorf("NewAxis: step=%g: %w", step, ErrNonPositiveStep)
	}
	if math.IsNaN(start) || math.IsInf(start, 0) || math.IsNaN(end) || math.IsInf(end, 0) {
		return Axis{}, fmt.Errorf("NewAxis: [%g, %g]: %w", start, end, ErrInvalidBound)
	}
	if end < start {
		return Axis{}, fmt.Errorf("NewAxis: [%g, %g]: %w", start, end, ErrEmptyAxis)
	}
	span := math.Floor((end-start)/step + 0.5)
	if span+1 > MaxPoints {
		return Axis{}, fmt.Errorf("NewAxis: %.0f points: %w", span+1, ErrTooManyPoints)
	}

	return Axis{Start: start, End: end, Step: step, n: int(span) + 1}, nil
}

// Fixed returns a one-point axis at v.
func Fixed(v float64) Axis {
	return Axis{Start: v, End: v, Step: 1, n: 1}
}

// Len returns the number of points.
func (a Axis) Len() int { return a.n }

// At returns value i; i is not bounds-checked.
func (a Axis) At(i int) float64 { return a.Start + float64(i)*a.Step }

// Values returns every axis value in order.
func (a Axis) Values() []float64 {
	out := make([]float64, a.n)
	for i := range out {
		out[i] = a.At(i)
	}

	return out
}
