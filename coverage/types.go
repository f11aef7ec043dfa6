package coverage

import (
	"fmt"
	"strings"
)

// Solver tolerances.
const (
	// PivotTolerance is the smallest pivot accepted by the LU solve on the
	// rate matrix scaled to unit maximum.
	PivotTolerance = 1e-30

	// NegativeTolerance bounds the round-off below zero that is clamped
	// away; anything more negative is reported as degenerate.
	NegativeTolerance = 1e-9
)

// Coverage is the occupancy vector of one evaluation, indexed like the
// network's states.
type Coverage struct {
	States []string
	Theta  []float64
}

// Of returns θ for state id.
func (c Coverage) Of(id string) (float64, bool) {
	for i, s := range c.States {
		if s == id {
			return c.Theta[i], true
		}
	}

	return 0, false
}

// Sum returns Σθ.
func (c Coverage) Sum() float64 {
	var s float64
	for _, v := range c.Theta {
		s += v
	}

	return s
}

// Map returns a state → θ copy.
func (c Coverage) Map() map[string]float64 {
	out := make(map[string]float64, len(c.States))
	for i, s := range c.States {
		out[s] = c.Theta[i]
	}

	return out
}

// String renders "θ(*)=0.25 θ(*OH)=0.25 ...".
func (c Coverage) String() string {
	var b strings.Builder
	for i, s := range c.States {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "θ(%s)=%.6g", s, c.Theta[i])
	}

	return b.String()
}
