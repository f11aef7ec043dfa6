package sweep

import (
	"fmt"
	"math"

	"github.com/katalvlaran/aomkin/coverage"
	"github.com/katalvlaran/aomkin/flow"
	"github.com/katalvlaran/aomkin/kinetics"
	"github.com/katalvlaran/aomkin/network"
)

// Point is the outcome of one grid evaluation. Err != nil marks an invalid
// point; only Index, Eta and PH are meaningful then.
type Point struct {
	Index int
	Eta   float64
	PH    float64

	Elementary map[string]kinetics.Elementary // electrochemical steps only
	Rates      kinetics.RateTable
	Coverage   coverage.Coverage
	Fluxes     flow.Fluxes
	LgRef      float64 // log10|reference flux|, −Inf for a zero flux

	Err error
}

// Valid reports whether the point evaluated without error.
func (p Point) Valid() bool { return p.Err == nil }

// ThetaFree returns θ of the network's first state, NaN when invalid.
func (p Point) ThetaFree() float64 {
	if p.Err != nil || len(p.Coverage.Theta) == 0 {
		return math.NaN()
	}

	return p.Coverage.Theta[0]
}

func finite(x float64) bool { return !math.IsNaN(x) && !math.IsInf(x, 0) }

// evaluate computes one point. It never panics on numerical input; every
// failure ends up in Point.Err.
func (e *Engine) evaluate(plan resolved, idx int, eta, pH float64) Point {
	p := Point{Index: idx, Eta: eta, PH: pH, LgRef: math.NaN()}
	cond := kinetics.Conditions{T: e.cfg.T, Eta: eta, PH: pH, DeltaGw: e.cfg.DeltaGw, Ea0: e.cfg.Ea0}

	p.Elementary = make(map[string]kinetics.Elementary, len(plan.steps))
	p.Rates = make(kinetics.RateTable, len(plan.steps))
	for i, s := range plan.steps {
		if s.Kind == network.Chemical {
			pair, err := kinetics.Chemical(e.cfg.ChemicalBarrier, plan.chem[i], e.cfg.T)
			if err != nil {
				return p.fail(fmt.Errorf("step %s: %w", s.ID, err))
			}
			p.Rates[s.ID] = pair
			continue
		}
		el, err := e.cfg.Kernel.Evaluate(plan.echem[i], cond)
		if err != nil {
			return p.fail(fmt.Errorf("step %s: %w", s.ID, err))
		}
		p.Elementary[s.ID] = el
		pair := kinetics.Combine(el, pH)
		if !finite(pair.Forward) || !finite(pair.Backward) {
			return p.fail(fmt.Errorf("step %s: %w", s.ID, kinetics.ErrNonFiniteRate))
		}
		p.Rates[s.ID] = pair
	}

	cov, err := coverage.Solve(e.cfg.Network, p.Rates)
	if err != nil {
		return p.fail(err)
	}
	p.Coverage = cov

	fl, err := flow.Compute(e.cfg.Network, p.Rates, cov)
	if err != nil {
		return p.fail(err)
	}
	p.Fluxes = fl
	p.LgRef = flow.Log10Abs(fl.Ref())

	return p
}

func (p Point) fail(err error) Point {
	return Point{Index: p.Index, Eta: p.Eta, PH: p.PH, LgRef: math.NaN(), Err: err}
}
