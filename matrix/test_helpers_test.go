// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers.
//
// Purpose:
//   • Provide small, deterministic fixtures for the dense and LU kernels.

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/aomkin/matrix"
	"github.com/stretchr/testify/require"
)

// rawMatrix is a [][]float64-backed Matrix without a NaN policy. It forces
// the non-*Dense code paths and lets tests inject non-finite values.
type rawMatrix [][]float64

func (m rawMatrix) Rows() int { return len(m) }
func (m rawMatrix) Cols() int { return len(m[0]) }
func (m rawMatrix) At(i, j int) (float64, error) {
	if i < 0 || i >= len(m) || j < 0 || j >= len(m[0]) {
		return 0, matrix.ErrOutOfRange
	}
	return m[i][j], nil
}
func (m rawMatrix) Set(i, j int, v float64) error {
	if i < 0 || i >= len(m) || j < 0 || j >= len(m[0]) {
		return matrix.ErrOutOfRange
	}
	m[i][j] = v
	return nil
}
func (m rawMatrix) Clone() matrix.Matrix {
	out := make(rawMatrix, len(m))
	for i := range m {
		out[i] = append([]float64(nil), m[i]...)
	}
	return out
}

// MustDenseFromRows builds a *Dense or fails the test.
func MustDenseFromRows(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	d, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)
	return d
}
