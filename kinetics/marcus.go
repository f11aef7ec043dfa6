package kinetics

import "math"

// drivingForces returns ΔG_eff for paths a and b:
//
//	xa = ΔG − z·(η − RT/F·ln10·pH)
//	xb = ΔG − z·(η − RT/F·ln10·pH + ΔGw)
//
// The backward reactions see −xa and −xb.
func drivingForces(s Step, c Conditions) (xa, xb float64) {
	d := c.drive()

	return s.DeltaG - s.Z*d, s.DeltaG - s.Z*(d+c.DeltaGw)
}

// marcusRate is (kB·T/h)·exp(−(x+λ)²/(4λ·kB·T)).
func marcusRate(x, lambda, t float64) float64 {
	u := x + lambda

	return Prefactor(t) * math.Exp(-u*u/(4*lambda*Thermal(t)))
}

func marcus(s Step, c Conditions) Elementary {
	xa, xb := drivingForces(s, c)

	return Elementary{
		Ka:      marcusRate(xa, s.Lambda, c.T),
		KMinusA: marcusRate(-xa, s.Lambda, c.T),
		Kb:      marcusRate(xb, s.Lambda, c.T),
		KMinusB: marcusRate(-xb, s.Lambda, c.T),
	}
}
