// Package coverage computes steady-state site occupancies (θ) of a reaction
// network from a table of combined rate constants.
//
// The occupancies are the stationary distribution of the continuous-time
// Markov chain whose states are the network's site states and whose
// transitions are the forward and backward directions of every step.
// Solve assembles the generator
//
//	M[i][j] = k(j→i)           i ≠ j
//	M[i][i] = −Σ_j k(i→j)
//
// replaces its last row with the normalization Σθ = 1 and solves M·θ = e_N
// by LU with partial pivoting. By the Matrix-Tree theorem this is the same
// as summing spanning in-tree weights per state, without enumerating trees,
// so any topology built with package builder works unchanged.
//
// Before solving, the arcs with a strictly positive rate must make the state
// graph strongly connected (checked with package bfs); otherwise, or when the
// factorization meets a pivot below PivotTolerance, Solve returns
// ErrDegenerateRates. Callers treat that as a failure of one evaluation
// point.
package coverage
