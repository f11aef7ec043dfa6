// Package matrix provides the small dense linear algebra the kinetics engine
// needs: a row-major Dense type with safe accessors, LU factorization with
// partial pivoting, and a linear solver built on it.
//
// The steady-state occupancy of a reaction network is the solution of a
// square system M·π = e whose size equals the number of surface states
// (4 for ER, 6 for LH), so everything here favors determinism and explicit
// error returns over asymptotic speed.
//
//   - Dense: O(1) At/Set with bounds checks, optional NaN/Inf rejection.
//   - LU: PA = LU with row interchanges; pivots below the configured
//     tolerance report ErrSingular.
//   - Solve: one-shot factor + substitution for a single right-hand side.
//   - MatVec, Transpose: helpers used by residual checks.
//
// All public functions return sentinel errors (see errors.go) and never
// panic on user input; option constructors panic on nonsensical values.
package matrix
