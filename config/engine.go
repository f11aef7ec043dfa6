package config

import (
	"fmt"

	"github.com/katalvlaran/aomkin/builder"
	"github.com/katalvlaran/aomkin/kinetics"
	"github.com/katalvlaran/aomkin/sweep"
)

// Is2D reports whether the configured sweep is the pH × η map.
func (c Config) Is2D() bool { return c.Sweep.Mode == "2d" }

// SweepConfig builds the network named by the model section and converts c
// into the engine input. Step-level physics checks are left to the engine.
func (c Config) SweepConfig() (sweep.Config, error) {
	n, err := builder.ByName(c.Model.Network)
	if err != nil {
		return sweep.Config{}, err
	}
	law, err := kinetics.ParseLaw(c.Model.Law)
	if err != nil {
		return sweep.Config{}, err
	}
	barrier, err := kinetics.ParseBarrier(c.Model.Barrier)
	if err != nil {
		return sweep.Config{}, err
	}
	chemBarrier, err := kinetics.ParseBarrier(c.Model.ChemicalBarrier)
	if err != nil {
		return sweep.Config{}, err
	}

	steps := make(map[string]kinetics.Step, len(c.Steps))
	for id, s := range c.Steps {
		steps[id] = kinetics.Step{DeltaG: s.DeltaG, Z: s.Z, Gamma: s.Gamma, Beta: s.Beta, Lambda: s.Lambda}
	}

	out := sweep.Config{
		Network:         n,
		Kernel:          kinetics.Kernel{Law: law, Barrier: barrier},
		ChemicalBarrier: chemBarrier,
		T:               c.Conditions.Temperature,
		DeltaGw:         c.Conditions.DeltaGw,
		Ea0:             c.Conditions.Ea0,
		Steps:           steps,
		Chemical: map[string]kinetics.ChemicalStep{
			builder.Step5: {DeltaG: c.Chemical.DeltaG, Gamma: c.Chemical.Gamma, Ea0: c.Chemical.Ea0},
		},
		Eta: sweep.Range{Start: c.Sweep.Eta.Start, End: c.Sweep.Eta.End, Step: c.Sweep.Eta.Step},
		PH:  sweep.Range{Start: c.Sweep.PH.Start, End: c.Sweep.PH.End, Step: c.Sweep.PH.Step},
	}

	switch c.Sweep.Mode {
	case "eta":
		out.Variable, out.Fixed = sweep.Eta, c.Sweep.FixedPH
	case "ph":
		out.Variable, out.Fixed = sweep.PH, c.Sweep.FixedEta
	case "2d":
	default:
		return sweep.Config{}, fmt.Errorf("%w: sweep.mode: unknown mode %q", ErrValidation, c.Sweep.Mode)
	}

	return out, nil
}
