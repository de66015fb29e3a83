// SPDX-License-Identifier: MIT

// Package lu computes the LU decomposition of a dense rectangular matrix
// with partial pivoting, and exposes the result for linear-system solving,
// determinants and inverses.
//
// Factorization produces P·A = L·U in packed form: a single m×n buffer holds
// both factors (multipliers strictly below the diagonal, U on and above it;
// the unit diagonal of L is implied, never stored) alongside a row
// permutation of [0,m), its sign, and a singularity flag. Factorization
// never fails on numeric grounds: a zero pivot marks the decomposition
// singular and elimination moves to the next column, so a packed
// representation always exists for inspection.
//
// The payoff is amortization: factorize once in O(min(m,n)·m·n), then answer
// each right-hand side in O(n²):
//
//	d, err := lu.Factorize(a)
//	if err != nil {
//		return err
//	}
//	x := make([]float64, len(b))
//	if err = d.Solve(b, x); err != nil {
//		return err
//	}
//
// Package-level Solve, Det and Inverse cover the factor-and-forget cases
// with a single call each.
//
// A Decomposition is read-only after construction and safe for concurrent
// use by multiple goroutines; solve operations write only into
// caller-supplied buffers, never into the packed factors.
//
// All failures are sentinel errors matched via errors.Is:
// matrix.ErrDimensionMismatch for shape violations, ErrSingular when a solve
// or inversion meets a singular decomposition, ErrAliasedBuffers when the
// multi-column solve is handed the same object as source and destination.
package lu
