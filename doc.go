// Package aomkin is a microkinetic engine for electrochemical surface
// catalysis: it turns elementary-step thermodynamics into rate constants,
// steady-state site occupancies and net reaction fluxes as functions of the
// applied overpotential η and the electrolyte pH.
//
// What is in the box?
//
//	• Rate laws: Butler-Volmer (BEP or Softplus barrier), Marcus,
//	  Marcus-Gerischer (Fermi-weighted energy integral)
//	• Acid/base pathway combination through water autoionization (Kw = 1e-14)
//	• A topology-agnostic steady-state solver for any graph of reversible steps
//	• 1D and 2D (η, pH) sweeps with per-point failure isolation
//	• Two ready-made adsorbate-oxidation networks: ER (4 states) and LH (6 states)
//
// Packages, leaves first:
//
//	network/  — states, reversible steps, branch groups, reference step
//	builder/  — ER/LH and generic topology constructors
//	bfs/      — reachability over the positive-rate arcs of a network
//	matrix/   — dense storage, pivoted LU, linear solve
//	kinetics/ — rate kernels, chemical step, pH combination
//	coverage/ — steady-state occupancy solver
//	flow/     — net per-step fluxes, branch aggregates, reference flux
//	grid/     — sweep axes (half-step rule) and 2D grid indexing
//	sweep/    — the sweep engine
//	config/, metrics/, store/, export/ — run configuration, observability,
//	persistence and tabular output for the aomkin command
//
// Quick ASCII view of the LH network:
//
//	         ┌─21─► *(OH)2 ─31─┐
//	* ─1─► *OH                 ├─► *O(OH) ─4─► *O(O) ─5─► *
//	         └─22─►  *O   ──32─┘
//
//	go install github.com/katalvlaran/aomkin/cmd/aomkin@latest
package aomkin
