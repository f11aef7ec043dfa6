package kinetics

import (
	"fmt"
	"math"
)

// Kernel evaluates electrochemical steps under one law. The zero value is a
// Butler-Volmer/BEP kernel with default quadrature settings.
type Kernel struct {
	Law     Law
	Barrier Barrier // read by ButlerVolmer only

	// Tolerance and MaxPanels tune the Marcus-Gerischer quadrature;
	// zero selects DefaultTolerance / DefaultMaxPanels.
	Tolerance float64
	MaxPanels int
}

// Validate rejects unknown law or barrier values.
func (k Kernel) Validate() error {
	switch k.Law {
	case ButlerVolmer, Marcus, MarcusGerischer:
	default:
		return fmt.Errorf("kernel: %w", ErrUnknownLaw)
	}
	switch k.Barrier {
	case BEP, Softplus:
	default:
		return fmt.Errorf("kernel: %w", ErrUnknownBarrier)
	}
	if k.Tolerance < 0 || math.IsNaN(k.Tolerance) || k.MaxPanels < 0 {
		return fmt.Errorf("kernel: quadrature settings: %w", ErrInvalidParameter)
	}

	return nil
}

// String names the law, with the barrier for Butler-Volmer ("bv-bep").
func (k Kernel) String() string {
	if k.Law == ButlerVolmer {
		return k.Law.String() + "-" + k.Barrier.String()
	}

	return k.Law.String()
}

// Evaluate returns ka, k-a, kb, k-b for s at c.
//
// Errors: parameter validation errors (ErrNonPositiveLambda, ErrInvalidGamma,
// ErrInvalidTemperature, ...), ErrIntegrationDiverged and ErrNonFiniteRate.
func (k Kernel) Evaluate(s Step, c Conditions) (Elementary, error) {
	if err := k.Validate(); err != nil {
		return Elementary{}, err
	}
	if err := c.Validate(); err != nil {
		return Elementary{}, err
	}
	if err := s.Validate(k.Law, k.Barrier); err != nil {
		return Elementary{}, err
	}

	var (
		e   Elementary
		err error
	)
	switch k.Law {
	case ButlerVolmer:
		e = butlerVolmer(k.Barrier, s, c)
	case Marcus:
		e = marcus(s, c)
	case MarcusGerischer:
		tol, maxPanels := k.Tolerance, k.MaxPanels
		if tol == 0 {
			tol = DefaultTolerance
		}
		if maxPanels == 0 {
			maxPanels = DefaultMaxPanels
		}
		if e, err = gerischer(s, c, tol, maxPanels); err != nil {
			return Elementary{}, err
		}
	}
	if err = checkRates(e.Ka, e.KMinusA, e.Kb, e.KMinusB); err != nil {
		return Elementary{}, err
	}

	return e, nil
}

// Combine folds both pathways into one forward/backward pair:
//
//	forward  = ka + kb·10^−(14−pH)
//	backward = k-a·10^−pH + k-b
func Combine(e Elementary, pH float64) Pair {
	return Pair{
		Forward:  e.Ka + e.Kb*math.Pow(10, -(WaterExponent-pH)),
		Backward: e.KMinusA*math.Pow(10, -pH) + e.KMinusB,
	}
}
