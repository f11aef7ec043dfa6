package kinetics

import "math"

// butlerVolmer evaluates both pathways. Path b substitutes ΔG − z·ΔGw for ΔG
// in the barrier; the electrochemical factor is shared by both paths.
func butlerVolmer(b Barrier, s Step, c Conditions) Elementary {
	kT, pref := Thermal(c.T), Prefactor(c.T)
	frt := F / (R * c.T)
	d := c.drive()
	fwdEC := math.Exp(s.Beta * frt * d)
	bwdEC := math.Exp(-(1 - s.Beta) * frt * d)

	efa, eba := barriers(b, s.DeltaG, s.Gamma, c.Ea0)
	efb, ebb := barriers(b, s.DeltaG-s.Z*c.DeltaGw, s.Gamma, c.Ea0)

	return Elementary{
		Ka:      pref * math.Exp(-efa/kT) * fwdEC,
		KMinusA: pref * math.Exp(-eba/kT) * bwdEC,
		Kb:      pref * math.Exp(-efb/kT) * fwdEC,
		KMinusB: pref * math.Exp(-ebb/kT) * bwdEC,
	}
}
