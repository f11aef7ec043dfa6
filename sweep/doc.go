// Package sweep evaluates a reaction network over 1D and 2D grids of
// overpotential (η) and pH.
//
// An Engine moves through Idle → Validating → Iterating → {Done, Aborted}.
// Validating resolves every network step against the configured parameters
// and builds the axes; any problem there aborts the run with a *ConfigError
// before a single point is evaluated. Iterating evaluates each grid point
// independently:
//
//	kinetics.Kernel.Evaluate → kinetics.Combine   (electrochemical steps)
//	kinetics.Chemical                             (chemical steps)
//	coverage.Solve → flow.Compute → flow.Log10Abs (reference flux)
//
// A numerical failure at one point (degenerate rates, a diverged
// Marcus-Gerischer integral, an overflowing rate) is stored in that Point's
// Err and the sweep continues; its table row keeps η and pH and carries NaN
// in every derived column.
//
// Points are independent, so WithWorkers spreads them over an errgroup.
// Each worker writes into the slot of its grid index, so output order never
// depends on scheduling.
package sweep
