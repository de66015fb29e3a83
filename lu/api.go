// SPDX-License-Identifier: MIT
// Package lu — one-shot public facades.
//
// Purpose:
//   - Provide single-call entry points for callers who need one answer and
//     do not keep the Decomposition around.
//   - Avoid any logic duplication; each facade factorizes once and delegates
//     to the canonical Decomposition method.
//
// Determinism & Policy:
//   - Facades never change the pivoting policy or loop orders of the kernels.
//   - Square-only facades validate shape before factorizing, so a
//     rectangular input fails fast instead of paying the elimination cost.

package lu

import "github.com/katalvlaran/lusolve/matrix"

// Solve factorizes a and solves a·x = b into a freshly allocated vector.
// Each call pays the full O(n³) elimination; callers with several
// right-hand sides should Factorize once and reuse the Decomposition.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrDimensionMismatch, ErrSingular.
// Complexity: O(n³) + O(n²).
func Solve(a matrix.Matrix, b []float64) ([]float64, error) {
	// Fail fast on shape before running elimination.
	if err := matrix.ValidateSquareNonNil(a); err != nil {
		return nil, luErrorf(opSolve, err)
	}
	d, err := Factorize(a)
	if err != nil {
		return nil, err
	}

	x := make([]float64, len(b))
	if err = d.Solve(b, x); err != nil {
		return nil, err
	}

	return x, nil
}

// Det factorizes a and returns its determinant.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrDimensionMismatch.
// Complexity: O(n³).
func Det(a matrix.Matrix) (float64, error) {
	// Fail fast on shape before running elimination.
	if err := matrix.ValidateSquareNonNil(a); err != nil {
		return 0, luErrorf(opDet, err)
	}
	d, err := Factorize(a)
	if err != nil {
		return 0, err
	}

	return d.Det()
}

// Inverse factorizes a and returns A^{-1} as a fresh matrix.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrDimensionMismatch, ErrSingular.
// Complexity: O(n³).
func Inverse(a matrix.Matrix) (*matrix.Dense, error) {
	// Fail fast on shape before running elimination.
	if err := matrix.ValidateSquareNonNil(a); err != nil {
		return nil, luErrorf(opInverse, err)
	}
	d, err := Factorize(a)
	if err != nil {
		return nil, err
	}

	return d.Inverse()
}
