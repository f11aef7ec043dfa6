package kinetics

import (
	"fmt"
	"math"
)

// Step holds the parameters of one electrochemical step. Which fields are
// read depends on the law: Gamma and Beta for ButlerVolmer, Lambda for the
// Marcus family, DeltaG and Z always.
type Step struct {
	DeltaG float64 // reaction free energy, eV
	Z      float64 // transferred charge number
	Gamma  float64 // BEP slope or Softplus sharpness
	Beta   float64 // symmetry factor
	Lambda float64 // reorganization energy, eV
}

// Validate checks the fields that law and barrier read.
func (s Step) Validate(law Law, barrier Barrier) error {
	if !finite(s.DeltaG) || !finite(s.Z) {
		return fmt.Errorf("step: %w", ErrInvalidParameter)
	}
	switch law {
	case ButlerVolmer:
		if !finite(s.Gamma) || !finite(s.Beta) {
			return fmt.Errorf("step: %w", ErrInvalidParameter)
		}
		if s.Beta < 0 || s.Beta > 1 {
			return fmt.Errorf("step: beta=%g: %w", s.Beta, ErrInvalidBeta)
		}
		switch barrier {
		case BEP:
		case Softplus:
			if s.Gamma <= 0 {
				return fmt.Errorf("step: gamma=%g: %w", s.Gamma, ErrInvalidGamma)
			}
		default:
			return ErrUnknownBarrier
		}
	case Marcus, MarcusGerischer:
		if !(s.Lambda > 0) || math.IsInf(s.Lambda, 1) {
			return fmt.Errorf("step: lambda=%g: %w", s.Lambda, ErrNonPositiveLambda)
		}
	default:
		return ErrUnknownLaw
	}

	return nil
}

// ChemicalStep holds the parameters of a non-electrochemical step.
type ChemicalStep struct {
	DeltaG float64 // reaction free energy, eV
	Gamma  float64 // BEP slope or Softplus sharpness
	Ea0    float64 // intrinsic barrier for BEP, eV
}

// Validate checks the fields that barrier reads.
func (c ChemicalStep) Validate(barrier Barrier) error {
	if !finite(c.DeltaG) || !finite(c.Gamma) || !finite(c.Ea0) {
		return fmt.Errorf("chemical step: %w", ErrInvalidParameter)
	}
	switch barrier {
	case BEP:
	case Softplus:
		if c.Gamma <= 0 {
			return fmt.Errorf("chemical step: gamma=%g: %w", c.Gamma, ErrInvalidGamma)
		}
	default:
		return ErrUnknownBarrier
	}

	return nil
}

// Conditions are the point-independent and point-dependent scalars one
// kernel evaluation reads.
type Conditions struct {
	T       float64 // temperature, K
	Eta     float64 // overpotential, V
	PH      float64
	DeltaGw float64 // water-formation offset, eV
	Ea0     float64 // intrinsic BEP barrier, eV
}

// Validate checks T and the finiteness of the remaining fields.
func (c Conditions) Validate() error {
	if !(c.T > 0) || math.IsInf(c.T, 1) {
		return fmt.Errorf("conditions: T=%g: %w", c.T, ErrInvalidTemperature)
	}
	if !finite(c.Eta) || !finite(c.PH) || !finite(c.DeltaGw) || !finite(c.Ea0) {
		return fmt.Errorf("conditions: %w", ErrInvalidParameter)
	}

	return nil
}

// drive returns the electrochemical driving force η − (RT/F)·ln10·pH.
func (c Conditions) drive() float64 { return c.Eta - Nernst(c.T, c.PH) }

// Elementary holds the four constants of one electrochemical step.
type Elementary struct {
	Ka      float64
	KMinusA float64
	Kb      float64
	KMinusB float64
}

// Pair is a combined forward/backward rate constant.
type Pair struct {
	Forward  float64
	Backward float64
}

// RateTable maps a step ID to its combined constants.
type RateTable map[string]Pair

func finite(x float64) bool { return !math.IsNaN(x) && !math.IsInf(x, 0) }

func checkRates(rates ...float64) error {
	for _, k := range rates {
		if !finite(k) || k < 0 {
			return ErrNonFiniteRate
		}
	}

	return nil
}
