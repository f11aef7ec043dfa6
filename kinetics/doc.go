// Package kinetics implements the rate-constant kernels of the engine and
// the pH-weighted combination of the two proton-coupled pathways.
//
// Every electrochemical step is evaluated on two parallel channels:
//
//	a: acid-referenced,  * + H2O        ⇄ *OH + H⁺ + e⁻
//	b: base-referenced,  * + OH⁻        ⇄ *OH + e⁻     (ΔG shifted by z·ΔGw)
//
// and a Kernel turns (Step, Conditions) into the four elementary constants
// ka, k-a, kb, k-b under one of three laws:
//
//   - ButlerVolmer with a BEP (Ea0 ± γ·ΔG) or Softplus (ln(1+e^{±γΔG})/γ)
//     barrier, times exp(±β·F/RT·(η − RT/F·ln10·pH)).
//   - Marcus: exp(−(ΔG_eff + λ)²/(4λ·kB·T)).
//   - MarcusGerischer: the Marcus parabola integrated over ε ∈ [−5λ, 5λ]
//     with a Fermi-Dirac weight, by composite Gauss-Legendre quadrature
//     (gonum/integrate/quad) with panel doubling.
//
// Combine folds the four constants into one forward/backward Pair:
//
//	k  = ka + kb·10^−(14−pH)
//	k- = k-a·10^−pH + k-b
//
// Chemical evaluates a non-electrochemical step (no η, no pH) with a BEP or
// Softplus barrier; its Pair is used as is.
//
// All functions are pure and safe for concurrent use.
package kinetics
