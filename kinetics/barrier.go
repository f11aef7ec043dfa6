package kinetics

import "math"

// softplus returns ln(1+e^x) without overflow for large |x|.
func softplus(x float64) float64 {
	if x > 0 {
		return x + math.Log1p(math.Exp(-x))
	}

	return math.Log1p(math.Exp(x))
}

// barriers returns the forward and backward activation energies of a step
// with free energy dg. The pair always satisfies fwd − bwd = dg for Softplus
// and 2γ·dg for BEP.
func barriers(b Barrier, dg, gamma, ea0 float64) (fwd, bwd float64) {
	if b == Softplus {
		return softplus(gamma*dg) / gamma, softplus(-gamma*dg) / gamma
	}

	return ea0 + gamma*dg, ea0 - gamma*dg
}

// Chemical evaluates a non-electrochemical step at temperature t:
//
//	k  = (kB·T/h)·exp(−Ea/kB·T)
//	k- = (kB·T/h)·exp(−Ea-/kB·T)
//
// with the BEP barrier taking s.Ea0 as intrinsic barrier. There is no η or
// pH dependence and the result needs no Combine.
func Chemical(b Barrier, s ChemicalStep, t float64) (Pair, error) {
	if !(t > 0) || math.IsInf(t, 1) {
		return Pair{}, ErrInvalidTemperature
	}
	if err := s.Validate(b); err != nil {
		return Pair{}, err
	}
	kT, pref := Thermal(t), Prefactor(t)
	ef, eb := barriers(b, s.DeltaG, s.Gamma, s.Ea0)
	p := Pair{Forward: pref * math.Exp(-ef/kT), Backward: pref * math.Exp(-eb/kT)}
	if err := checkRates(p.Forward, p.Backward); err != nil {
		return Pair{}, err
	}

	return p, nil
}
