package flow

import (
	"fmt"

	"github.com/katalvlaran/aomkin/coverage"
	"github.com/katalvlaran/aomkin/kinetics"
	"github.com/katalvlaran/aomkin/network"
)

// Compute returns per-step net fluxes, group aggregates and the reference
// step for n under table and cov.
//
// Errors: ErrNilNetwork, ErrCoverageMismatch, StepError (ErrMissingRate).
// Complexity: O(S + N) for S steps and N states.
func Compute(n *network.Network, table kinetics.RateTable, cov coverage.Coverage) (Fluxes, error) {
	if n == nil {
		return Fluxes{}, ErrNilNetwork
	}
	ids := n.StateIDs()
	if len(cov.Theta) != len(ids) || len(cov.States) != len(ids) {
		return Fluxes{}, fmt.Errorf("%d states, %d occupancies: %w", len(ids), len(cov.Theta), ErrCoverageMismatch)
	}
	for i, id := range ids {
		if cov.States[i] != id {
			return Fluxes{}, fmt.Errorf("position %d: %q vs %q: %w", i, cov.States[i], id, ErrCoverageMismatch)
		}
	}

	steps := n.Steps()
	f := Fluxes{
		Steps:     make([]string, len(steps)),
		Net:       make([]float64, len(steps)),
		Groups:    n.Groups(),
		Reference: n.Reference(),
	}
	byStep := make(map[string]float64, len(steps))
	for i, s := range steps {
		p, ok := table[s.ID]
		if !ok {
			return Fluxes{}, StepError{Step: s.ID}
		}
		u, _ := n.StateIndex(s.From)
		v, _ := n.StateIndex(s.To)
		r := p.Forward*cov.Theta[u] - p.Backward*cov.Theta[v]
		f.Steps[i] = s.ID
		f.Net[i] = r
		byStep[s.ID] = r
	}

	f.GroupNet = make([]float64, len(f.Groups))
	for i, g := range f.Groups {
		for _, id := range n.GroupSteps(g) {
			f.GroupNet[i] += byStep[id]
		}
	}

	return f, nil
}
