package kinetics

import (
	"math"
	"sync"

	"gonum.org/v1/gonum/integrate/quad"
)

// Quadrature defaults for the Marcus-Gerischer integral.
const (
	// DefaultTolerance is the relative change between two panel doublings
	// accepted as converged.
	DefaultTolerance = 1e-9
	// DefaultMaxPanels bounds the panel doubling.
	DefaultMaxPanels = 4096
	// IntegrationWidth is the half-width of the ε window in units of λ.
	IntegrationWidth = 5.0

	gaussOrder = 16
	minPanels  = 8
)

var (
	legendreOnce sync.Once
	legendreX    []float64
	legendreW    []float64
)

// legendre returns the 16-point Gauss-Legendre rule on [-1, 1].
func legendre() ([]float64, []float64) {
	legendreOnce.Do(func() {
		legendreX = make([]float64, gaussOrder)
		legendreW = make([]float64, gaussOrder)
		quad.Legendre{}.FixedLocations(legendreX, legendreW, -1, 1)
	})

	return legendreX, legendreW
}

// panelSum applies the rule on n equal panels of [a, b].
func panelSum(f func(float64) float64, a, b float64, n int) float64 {
	x, w := legendre()
	h := (b - a) / float64(n)
	half := h / 2
	var sum float64
	for p := 0; p < n; p++ {
		mid := a + (float64(p)+0.5)*h
		for i := range x {
			sum += w[i] * f(mid+half*x[i])
		}
	}

	return sum * half
}

// integrate doubles the panel count from minPanels until two successive sums
// agree to tol (relative) or maxPanels is exceeded.
func integrate(f func(float64) float64, a, b, tol float64, maxPanels int) (float64, error) {
	prev := panelSum(f, a, b, minPanels)
	for n := 2 * minPanels; n <= maxPanels; n *= 2 {
		cur := panelSum(f, a, b, n)
		if !finite(cur) {
			return 0, ErrIntegrationDiverged
		}
		if math.Abs(cur-prev) <= tol*math.Abs(cur) {
			return cur, nil
		}
		prev = cur
	}

	return 0, ErrIntegrationDiverged
}

// fermi is 1/(1+e^u); e^u overflowing to +Inf yields 0.
func fermi(u float64) float64 { return 1 / (1 + math.Exp(u)) }

// gerischerPair integrates the forward and backward rate for driving force x:
//
//	k  = (kB·T/h) ∫ exp(−(x+ε+λ)²/4λkT) · f(−ε/kT) dε
//	k- = (kB·T/h) ∫ exp(−(−x−ε+λ)²/4λkT) · f(ε/kT) dε
//
// over ε ∈ [−5λ, 5λ], f(u) = 1/(1+e^u).
func gerischerPair(x, lambda, t, tol float64, maxPanels int) (fwd, bwd float64, err error) {
	kT := Thermal(t)
	den := 4 * lambda * kT
	lo, hi := -IntegrationWidth*lambda, IntegrationWidth*lambda

	fwdIntegrand := func(eps float64) float64 {
		u := x + eps + lambda
		return math.Exp(-u*u/den) * fermi(-eps/kT)
	}
	bwdIntegrand := func(eps float64) float64 {
		u := -x - eps + lambda
		return math.Exp(-u*u/den) * fermi(eps/kT)
	}

	if fwd, err = integrate(fwdIntegrand, lo, hi, tol, maxPanels); err != nil {
		return 0, 0, err
	}
	if bwd, err = integrate(bwdIntegrand, lo, hi, tol, maxPanels); err != nil {
		return 0, 0, err
	}
	pref := Prefactor(t)

	return pref * fwd, pref * bwd, nil
}

func gerischer(s Step, c Conditions, tol float64, maxPanels int) (Elementary, error) {
	xa, xb := drivingForces(s, c)
	ka, kma, err := gerischerPair(xa, s.Lambda, c.T, tol, maxPanels)
	if err != nil {
		return Elementary{}, err
	}
	kb, kmb, err := gerischerPair(xb, s.Lambda, c.T, tol, maxPanels)
	if err != nil {
		return Elementary{}, err
	}

	return Elementary{Ka: ka, KMinusA: kma, Kb: kb, KMinusB: kmb}, nil
}
