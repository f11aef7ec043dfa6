package kinetics

import "math"

// Physical constants. Kw is fixed at 10^-WaterExponent and is not
// re-derived from T.
const (
	// R is the gas constant, J/(mol·K).
	R = 8.314
	// F is the Faraday constant, C/mol.
	F = 96485.33289
	// H is the Planck constant, eV·s.
	H = 4.13568e-15
	// KB is the Boltzmann constant, eV/K.
	KB = 8.61689e-5
	// WaterExponent is pKw.
	WaterExponent = 14.0
)

// Ln10 is ln(10), used by the Nernstian pH shift.
const Ln10 = math.Ln10

// Prefactor returns the transition-state attempt frequency kB·T/h in s⁻¹.
func Prefactor(t float64) float64 { return KB * t / H }

// Thermal returns kB·T in eV.
func Thermal(t float64) float64 { return KB * t }

// Nernst returns the pH shift (RT/F)·ln10·pH in V.
func Nernst(t, pH float64) float64 { return R * t / F * Ln10 * pH }

// WaterOffset returns z·(RT/F)·ln10·pKw, the value ΔGw takes when derived
// from T (0.8277 eV at 298.15 K for z = 1).
func WaterOffset(t float64) float64 { return Nernst(t, WaterExponent) }
