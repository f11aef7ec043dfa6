// SPDX-License-Identifier: MIT
// Package matrix: linear-algebra kernels.
//
// Purpose:
//   - MatVec / Transpose: generic helpers with a *Dense fast-path.
//   - LU: Doolittle elimination with partial (row) pivoting, PA = LU.
//   - Solve: factor + forward/back substitution for one right-hand side.
//
// Notes:
//   - All kernels use the central validators and wrap failures with an
//     operation tag via matrixErrorf, so errors.Is keeps working.

package matrix

import (
	"fmt"
	"math"
)

// ZeroSum is the initial value of substitution accumulators.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping.
const (
	opTranspose = "Transpose"
	opMatVec    = "MatVec"
	opLU        = "LU"
	opSolve     = "Solve"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// toDense returns m itself when it is a *Dense, else a Dense copy read via At.
func toDense(m Matrix) (*Dense, error) {
	if d, ok := m.(*Dense); ok {
		return d, nil
	}
	out, err := NewDense(m.Rows(), m.Cols())
	if err != nil {
		return nil, err
	}
	var v float64
	for i := 0; i < out.r; i++ {
		for j := 0; j < out.c; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, err
			}
			out.data[i*out.c+j] = v
		}
	}

	return out, nil
}

// MatVec computes y = m * x for a column vector x.
//
// Contract: m non-nil; len(x) == m.Cols().
// Determinism: fixed i→j loop order.
// Complexity: Time O(r*c), Space O(r) for y.
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	d, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}

	y := make([]float64, d.r)
	var acc float64
	for i := 0; i < d.r; i++ {
		acc = ZeroSum
		base := i * d.c
		for j := 0; j < d.c; j++ {
			acc += d.data[base+j] * x[j]
		}
		y[i] = acc
	}

	return y, nil
}

// Transpose returns a new Dense holding mᵀ.
// Complexity: Time O(r*c), Space O(r*c).
func Transpose(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	d, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	out, err := NewDense(d.c, d.r)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	for i := 0; i < d.r; i++ {
		for j := 0; j < d.c; j++ {
			out.data[j*d.r+i] = d.data[i*d.c+j]
		}
	}

	return out, nil
}

// LUP holds a factorization PA = LU computed with partial pivoting.
// L (unit diagonal, below) and U (on and above the diagonal) share one
// packed buffer; perm[i] is the original row placed at position i.
type LUP struct {
	n     int
	lu    []float64
	perm  []int
	swaps int
}

// LU factors the square matrix m as PA = LU using partial pivoting.
// Implementation:
//   - Stage 1: Validate m (not nil, square, finite when the policy says so); copy into a packed buffer.
//   - Stage 2: For k=0..n-1 pick the row with the largest |a(i,k)|, i ≥ k; swap; eliminate below.
//
// Behavior highlights:
//   - Deterministic tie-break: the first row with the maximal magnitude wins.
//   - The input is never modified.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrNaNInf (policy), ErrSingular when max |pivot| ≤ tol.
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
func LU(m Matrix, opts ...Option) (*LUP, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opLU, err)
	}
	o := gatherOptions(opts...)
	d, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opLU, err)
	}
	if o.validateNaNInf {
		if err = ValidateFinite(d.data); err != nil {
			return nil, matrixErrorf(opLU, err)
		}
	}

	n := d.r
	f := &LUP{n: n, lu: make([]float64, n*n), perm: make([]int, n)}
	copy(f.lu, d.data)
	for i := range f.perm {
		f.perm[i] = i
	}

	a := f.lu
	var i, j, k, p int
	var best, v float64
	for k = 0; k < n; k++ {
		// Pivot search in column k.
		p, best = k, math.Abs(a[k*n+k])
		for i = k + 1; i < n; i++ {
			if v = math.Abs(a[i*n+k]); v > best {
				p, best = i, v
			}
		}
		if best <= o.pivotTol {
			return nil, matrixErrorf(opLU, fmt.Errorf("column %d pivot %g: %w", k, best, ErrSingular))
		}
		if p != k {
			for j = 0; j < n; j++ {
				a[k*n+j], a[p*n+j] = a[p*n+j], a[k*n+j]
			}
			f.perm[k], f.perm[p] = f.perm[p], f.perm[k]
			f.swaps++
		}

		// Eliminate below the pivot; multipliers are stored in place (L part).
		pivot := a[k*n+k]
		for i = k + 1; i < n; i++ {
			l := a[i*n+k] / pivot
			a[i*n+k] = l
			if l == 0 {
				continue
			}
			for j = k + 1; j < n; j++ {
				a[i*n+j] -= l * a[k*n+j]
			}
		}
	}

	return f, nil
}

// Size returns n for an n×n factorization.
func (f *LUP) Size() int { return f.n }

// Det returns det(A) = sign(P)·Π u(i,i).
func (f *LUP) Det() float64 {
	det := 1.0
	if f.swaps%2 == 1 {
		det = -1
	}
	for i := 0; i < f.n; i++ {
		det *= f.lu[i*f.n+i]
	}

	return det
}

// Solve returns x with A·x = b using the stored factors.
// Errors: ErrDimensionMismatch when len(b) != n.
func (f *LUP) Solve(b []float64) ([]float64, error) {
	if err := ValidateVecLen(b, f.n); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	n, a := f.n, f.lu
	x := make([]float64, n)

	// Forward substitution L·y = P·b (unit diagonal).
	var sum float64
	for i := 0; i < n; i++ {
		sum = b[f.perm[i]]
		for j := 0; j < i; j++ {
			sum -= a[i*n+j] * x[j]
		}
		x[i] = sum
	}
	// Back substitution U·x = y.
	for i := n - 1; i >= 0; i-- {
		sum = x[i]
		for j := i + 1; j < n; j++ {
			sum -= a[i*n+j] * x[j]
		}
		x[i] = sum / a[i*n+i]
	}

	return x, nil
}

// Solve factors m and solves m·x = b in one call.
//
// Errors: everything LU reports, plus ErrDimensionMismatch for len(b) != Rows().
func Solve(m Matrix, b []float64, opts ...Option) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	if err := ValidateVecLen(b, m.Rows()); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	f, err := LU(m, opts...)
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}

	return f.Solve(b)
}
