package sweep

import (
	"fmt"
	"math"

	"github.com/katalvlaran/aomkin/kinetics"
	"github.com/katalvlaran/aomkin/network"
)

// Variable names a sweep axis.
type Variable int

const (
	// Eta is the overpotential axis (V).
	Eta Variable = iota
	// PH is the pH axis.
	PH
)

// String returns the column name of the variable ("eta" or "pH").
func (v Variable) String() string {
	switch v {
	case Eta:
		return "eta"
	case PH:
		return "pH"
	default:
		return fmt.Sprintf("variable(%d)", int(v))
	}
}

// Range is an inclusive start/end/step axis.
type Range struct {
	Start, End, Step float64
}

// Config is the immutable input of one Engine.
//
// Steps holds the parameters of every electrochemical step and Chemical
// those of every chemical step, both keyed by step ID; entries for steps
// the network does not have are ignored.
type Config struct {
	Network         *network.Network
	Kernel          kinetics.Kernel
	ChemicalBarrier kinetics.Barrier

	T       float64 // K
	DeltaGw float64 // eV
	Ea0     float64 // eV, intrinsic BEP barrier of electrochemical steps

	Steps    map[string]kinetics.Step
	Chemical map[string]kinetics.ChemicalStep

	// Variable is swept by Run1D; the other variable is held at Fixed.
	Variable Variable
	Fixed    float64

	Eta Range
	PH  Range
}

// resolved holds the per-step parameters aligned with the network's steps.
type resolved struct {
	steps []network.Step
	echem []kinetics.Step
	chem  []kinetics.ChemicalStep
}

// resolve checks everything that does not depend on the sweep mode.
func (c Config) resolve() (resolved, error) {
	if c.Network == nil {
		return resolved{}, configErr("network", "not set", nil)
	}
	if !c.Network.Sealed() {
		return resolved{}, configErr("network", "not sealed", nil)
	}
	if err := c.Kernel.Validate(); err != nil {
		return resolved{}, configErr("kinetics", "unsupported law", err)
	}
	if !(c.T > 0) || math.IsInf(c.T, 1) {
		return resolved{}, configErr("T", fmt.Sprintf("must be positive, got %g", c.T), kinetics.ErrInvalidTemperature)
	}
	if math.IsNaN(c.DeltaGw) || math.IsInf(c.DeltaGw, 0) {
		return resolved{}, configErr("dGw", "must be finite", kinetics.ErrInvalidParameter)
	}
	if math.IsNaN(c.Ea0) || math.IsInf(c.Ea0, 0) {
		return resolved{}, configErr("Ea0", "must be finite", kinetics.ErrInvalidParameter)
	}

	steps := c.Network.Steps()
	r := resolved{
		steps: steps,
		echem: make([]kinetics.Step, len(steps)),
		chem:  make([]kinetics.ChemicalStep, len(steps)),
	}
	for i, s := range steps {
		field := "steps." + s.ID
		if s.Kind == network.Chemical {
			cs, ok := c.Chemical[s.ID]
			if !ok {
				return resolved{}, configErr("chemical."+s.ID, "not configured", ErrMissingStep)
			}
			if err := cs.Validate(c.ChemicalBarrier); err != nil {
				return resolved{}, configErr("chemical."+s.ID, "rejected", err)
			}
			r.chem[i] = cs
			continue
		}
		es, ok := c.Steps[s.ID]
		if !ok {
			return resolved{}, configErr(field, "not configured", ErrMissingStep)
		}
		if err := es.Validate(c.Kernel.Law, c.Kernel.Barrier); err != nil {
			return resolved{}, configErr(field, "rejected", err)
		}
		r.echem[i] = es
	}

	return r, nil
}

// Validate checks everything Run1D and Run2D check before iterating,
// including both axes.
func (c Config) Validate() error {
	if _, err := c.resolve(); err != nil {
		return err
	}
	if _, err := axis("eta", c.Eta); err != nil {
		return err
	}
	if _, err := axis("pH", c.PH); err != nil {
		return err
	}

	return nil
}
