// Package matrix_test contains unit tests for the Dense implementation
// of the Matrix interface in the matrix package.
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/aomkin/matrix"
	"github.com/stretchr/testify/require"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects non-positive dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 5)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDense(5, 0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDenseFromRows(nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestRowsCols verifies that Rows() and Cols() return correct dimension values.
func TestRowsCols(t *testing.T) {
	m, err := matrix.NewDense(3, 4)
	require.NoError(t, err)
	require.Equal(t, 3, m.Rows())
	require.Equal(t, 4, m.Cols())
}

// TestAtSetOutOfBounds ensures At() and Set() return ErrOutOfRange on invalid access.
func TestAtSetOutOfBounds(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	_, err = m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.At(0, 2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(2, 0, 1.23), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Add(0, -1, 4.56), matrix.ErrOutOfRange)
	_, err = m.Row(5)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestSetRejectsNonFinite checks the default NaN/Inf policy.
func TestSetRejectsNonFinite(t *testing.T) {
	m, err := matrix.NewDense(1, 2)
	require.NoError(t, err)
	require.ErrorIs(t, m.Set(0, 0, math.NaN()), matrix.ErrNaNInf)
	require.ErrorIs(t, m.Set(0, 1, math.Inf(-1)), matrix.ErrNaNInf)
	require.ErrorIs(t, m.SetRow(0, []float64{1, math.Inf(1)}), matrix.ErrNaNInf)
}

// TestAddAccumulates verifies that Add sums into an entry.
func TestAddAccumulates(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)
	require.NoError(t, m.Add(1, 1, 2.5))
	require.NoError(t, m.Add(1, 1, -0.5))
	v, err := m.At(1, 1)
	require.NoError(t, err)
	require.Equal(t, 2.0, v)
}

// TestRowSetRow covers row copies and overwrites.
func TestRowSetRow(t *testing.T) {
	m := MustDenseFromRows(t, [][]float64{{1, 2}, {3, 4}})
	row, err := m.Row(1)
	require.NoError(t, err)
	require.Equal(t, []float64{3, 4}, row)

	row[0] = 99 // the copy must not alias storage
	v, _ := m.At(1, 0)
	require.Equal(t, 3.0, v)

	require.NoError(t, m.SetRow(0, []float64{1, 1}))
	require.ErrorIs(t, m.SetRow(0, []float64{1}), matrix.ErrDimensionMismatch)
	v, _ = m.At(0, 1)
	require.Equal(t, 1.0, v)
}

// TestFromRowsRagged rejects non-rectangular input.
func TestFromRowsRagged(t *testing.T) {
	_, err := matrix.NewDenseFromRows([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestCloneIndependence ensures Clone shares no storage.
func TestCloneIndependence(t *testing.T) {
	m := MustDenseFromRows(t, [][]float64{{1, 2}, {3, 4}})
	c := m.Clone()
	require.NoError(t, c.Set(0, 0, 42))
	v, _ := m.At(0, 0)
	require.Equal(t, 1.0, v)
}

// TestScaleMaxAbsString covers the small utilities.
func TestScaleMaxAbsString(t *testing.T) {
	m := MustDenseFromRows(t, [][]float64{{1, -4}, {2, 3}})
	require.Equal(t, 4.0, m.MaxAbs())
	m.Scale(0.5)
	require.Equal(t, 2.0, m.MaxAbs())
	require.Equal(t, "[0.5, -2]\n[1, 1.5]\n", m.String())

	id, err := matrix.NewIdentity(2)
	require.NoError(t, err)
	require.Equal(t, "[1, 0]\n[0, 1]\n", id.String())
}
