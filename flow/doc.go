// Package flow derives net reaction fluxes from a rate table and a
// steady-state coverage.
//
// For a step u→v with combined constants (k, k-) the net flux is
//
//	r = k·θ(u) − k-·θ(v)
//
// At steady state every state's inflow equals its outflow, so on the ER
// cycle all four fluxes are equal, and on the LH network the branch pairs
// split the flux entering them: r1 = r21 + r22 = r31 + r32 = r4 = r5.
// Compute also reports these branch-group aggregates (r2, r3) and the
// flux of the network's reference step.
//
// Log10Abs is the log-magnitude used for reporting; it maps an exactly zero
// flux to −Inf.
package flow
