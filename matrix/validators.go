// SPDX-License-Identifier: MIT
// Package matrix: central validators shared by every kernel.
//
// Each validator returns a plain sentinel (or a tagged wrapper of one) so
// callers can branch with errors.Is; none of them allocate on success.

package matrix

import (
	"fmt"
	"math"
)

const (
	tagValidateNotNil = "ValidateNotNil"
	tagValidateSquare = "ValidateSquare"
	tagValidateVecLen = "ValidateVecLen"
	tagValidateFinite = "ValidateFinite"
)

// validatorErrorf wraps err with a validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil rejects a nil interface and a typed-nil *Dense.
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf(tagValidateNotNil, ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf(tagValidateNotNil, ErrNilMatrix)
	}

	return nil
}

// ValidateSquare requires Rows() == Cols().
func ValidateSquare(m Matrix) error {
	if m.Rows() != m.Cols() {
		return validatorErrorf(tagValidateSquare, ErrNonSquare)
	}

	return nil
}

// ValidateSquareNonNil combines ValidateNotNil and ValidateSquare.
func ValidateSquareNonNil(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}

	return ValidateSquare(m)
}

// ValidateVecLen requires a non-nil vector of exactly n entries.
func ValidateVecLen(x []float64, n int) error {
	if x == nil || len(x) != n {
		return validatorErrorf(tagValidateVecLen, ErrDimensionMismatch)
	}

	return nil
}

// ValidateFinite rejects vectors carrying NaN or ±Inf.
func ValidateFinite(x []float64) error {
	for i, v := range x {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return validatorErrorf(tagValidateFinite, fmt.Errorf("x[%d]=%g: %w", i, v, ErrNaNInf))
		}
	}

	return nil
}
