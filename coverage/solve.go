package coverage

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/aomkin/bfs"
	"github.com/katalvlaran/aomkin/kinetics"
	"github.com/katalvlaran/aomkin/matrix"
	"github.com/katalvlaran/aomkin/network"
)

// arcRate returns the rate constant of a directed arc.
func arcRate(table kinetics.RateTable, a network.Arc) float64 {
	p := table[a.Step]
	if a.Forward {
		return p.Forward
	}

	return p.Backward
}

// checkTable verifies every step of n has a finite, non-negative pair and
// returns the largest rate.
func checkTable(n *network.Network, table kinetics.RateTable) (float64, error) {
	var maxRate float64
	for _, id := range n.StepIDs() {
		p, ok := table[id]
		if !ok {
			return 0, fmt.Errorf("step %q: %w", id, ErrIncompleteTable)
		}
		for _, k := range [...]float64{p.Forward, p.Backward} {
			if math.IsNaN(k) || math.IsInf(k, 0) || k < 0 {
				return 0, fmt.Errorf("step %q: k=%g: %w", id, k, ErrInvalidRate)
			}
			if k > maxRate {
				maxRate = k
			}
		}
	}

	return maxRate, nil
}

// Generator returns the N×N rate matrix of n: entry (i, j) is the rate of
// the arc j→i, and each diagonal entry is minus the total rate out of that
// state. Columns sum to zero.
//
// Errors: ErrNilNetwork, ErrIncompleteTable, ErrInvalidRate.
func Generator(n *network.Network, table kinetics.RateTable) (*matrix.Dense, error) {
	if n == nil {
		return nil, ErrNilNetwork
	}
	if _, err := checkTable(n, table); err != nil {
		return nil, err
	}

	return assemble(n, table, 1)
}

// assemble builds the generator with every rate multiplied by scale.
func assemble(n *network.Network, table kinetics.RateTable, scale float64) (*matrix.Dense, error) {
	size := n.NumStates()
	m, err := matrix.NewDense(size, size)
	if err != nil {
		return nil, err
	}
	for _, a := range n.AllArcs() {
		k := arcRate(table, a) * scale
		if k == 0 {
			continue
		}
		if err = m.Add(a.ToIndex, a.FromIndex, k); err != nil {
			return nil, err
		}
		if err = m.Add(a.FromIndex, a.FromIndex, -k); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// Solve returns the steady-state occupancies of n under table.
//
// Steps:
//  1. Validate the table and find the largest rate (0 → degenerate).
//  2. Require strong connectivity over positive-rate arcs.
//  3. Assemble the generator scaled to unit maximum, replace the last row
//     with ones and solve against e_N.
//  4. Clamp round-off negatives (≥ −NegativeTolerance) and renormalize.
//
// Errors: ErrNilNetwork, ErrIncompleteTable, ErrInvalidRate,
// ErrDegenerateRates.
// Complexity: O(S³) for S states.
func Solve(n *network.Network, table kinetics.RateTable) (Coverage, error) {
	if n == nil {
		return Coverage{}, ErrNilNetwork
	}
	maxRate, err := checkTable(n, table)
	if err != nil {
		return Coverage{}, err
	}
	if maxRate == 0 {
		return Coverage{}, fmt.Errorf("all rate constants are zero: %w", ErrDegenerateRates)
	}

	ok, stranded, err := bfs.StronglyConnected(n, func(a network.Arc) bool {
		return arcRate(table, a) > 0
	})
	if err != nil {
		return Coverage{}, err
	}
	if !ok {
		return Coverage{}, fmt.Errorf("states %v unreachable over positive-rate steps: %w", stranded, ErrDegenerateRates)
	}

	m, err := assemble(n, table, 1/maxRate)
	if err != nil {
		return Coverage{}, err
	}
	size := n.NumStates()
	ones := make([]float64, size)
	rhs := make([]float64, size)
	for i := range ones {
		ones[i] = 1
	}
	rhs[size-1] = 1
	if err = m.SetRow(size-1, ones); err != nil {
		return Coverage{}, err
	}

	theta, err := matrix.Solve(m, rhs, matrix.WithPivotTolerance(PivotTolerance))
	if err != nil {
		if errors.Is(err, matrix.ErrSingular) {
			return Coverage{}, fmt.Errorf("%v: %w", err, ErrDegenerateRates)
		}

		return Coverage{}, err
	}

	var sum float64
	for i, v := range theta {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < -NegativeTolerance {
			return Coverage{}, fmt.Errorf("θ[%d]=%g: %w", i, v, ErrDegenerateRates)
		}
		if v < 0 {
			theta[i] = 0
		}
		sum += theta[i]
	}
	if !(sum > 0) {
		return Coverage{}, fmt.Errorf("Σθ=%g: %w", sum, ErrDegenerateRates)
	}
	for i := range theta {
		theta[i] /= sum
	}

	return Coverage{States: n.StateIDs(), Theta: theta}, nil
}
