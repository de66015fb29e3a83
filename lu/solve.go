// SPDX-License-Identifier: MIT
// Package lu: triangular-solve consumers of the packed factors.
// All entry points validate every precondition before the first write into
// caller-visible state: a failed call leaves output buffers exactly as they
// were. The substitution kernels themselves are validation-free and private.

package lu

import (
	"fmt"

	"github.com/katalvlaran/lusolve/matrix"
)

// Solve solves A·x = b for a single right-hand side, writing into the
// caller-supplied buffer x and leaving b intact.
//
// Implementation:
//   - Stage 1: validate square shape, len(b) == m, len(x) == len(b), and
//     non-singularity; nothing is written if any check fails.
//   - Stage 2: apply the pivot permutation, x[i] = b[piv[i]].
//   - Stage 3: forward substitution through the stored multipliers (unit
//     diagonal implied), then back substitution dividing by the U diagonal.
//
// b and x must not overlap: the permutation step reads all of b while
// filling x, so sharing storage corrupts the right-hand side mid-read.
// Use SolveInPlace for the safe overwrite form.
//
// Inputs:
//   - b: right-hand side, length m; read-only here.
//   - x: solution buffer, length m; fully overwritten on success.
//
// Errors:
//   - matrix.ErrDimensionMismatch (non-square factorization or bad lengths),
//   - matrix.ErrNilMatrix (nil b or x), ErrSingular.
//
// Complexity: Time O(n²), Space O(1).
func (d *Decomposition) Solve(b, x []float64) error {
	if err := d.validateVectorSolve(b, x); err != nil {
		return luErrorf(opSolve, err)
	}
	d.solveVec(b, x)

	return nil
}

// SolveInPlace solves A·x = b overwriting b with the solution x.
// Clones b internally and solves from the clone into the original storage,
// so the permutation step never reads an entry it has already replaced.
// By contract the input contents are destroyed on success; callers that
// need to keep b must use the two-buffer Solve.
//
// Errors: as Solve. Complexity: Time O(n²), Space O(n) for the clone.
func (d *Decomposition) SolveInPlace(b []float64) error {
	if err := d.validateVectorSolve(b, b); err != nil {
		return luErrorf(opSolveInPlace, err)
	}
	rhs := append([]float64(nil), b...) // snapshot; b becomes the output buffer
	d.solveVec(rhs, b)

	return nil
}

// validateVectorSolve runs the full precondition chain for the vector
// forms, in contract order: square shape, right-hand-side length, output
// length, singularity. Returns plain sentinels for the caller to wrap.
func (d *Decomposition) validateVectorSolve(b, x []float64) error {
	if d.m != d.n {
		return matrix.ErrDimensionMismatch
	}
	if err := matrix.ValidateVecLen(b, d.m); err != nil {
		return err
	}
	if err := matrix.ValidateVecLen(x, len(b)); err != nil {
		return err
	}
	if d.singular {
		return ErrSingular
	}

	return nil
}

// solveVec runs the permute/forward/back passes on validated buffers.
// No validation, no failure modes; callers own the precondition chain.
func (d *Decomposition) solveVec(b, x []float64) {
	n := d.n
	data := d.packed.Data()

	// Pivot permutation: reorder b into x.
	var i, k int
	for i = 0; i < n; i++ {
		x[i] = b[d.piv[i]]
	}

	// Forward substitution: L·y = P·b with the unit diagonal implied.
	for k = 0; k < n; k++ {
		for i = k + 1; i < n; i++ {
			x[i] -= x[k] * data[i*n+k]
		}
	}

	// Back substitution: U·x = y, dividing by the stored diagonal.
	for k = n - 1; k >= 0; k-- {
		x[k] /= data[k*n+k]
		for i = 0; i < k; i++ {
			x[i] -= x[k] * data[i*n+k]
		}
	}
}

// SolveMatrix solves A·X = B for all columns of B at once, writing into x.
//
// Implementation:
//   - Stage 1: validate non-nil operands, distinct objects, equal shapes,
//     square factorization, B row count == m, non-singularity. All checks
//     precede the first write; a failed call leaves x untouched.
//   - Stage 2: permutation copy, X(i,j) = B(piv[i], j).
//   - Stage 3: column-wise forward and back substitution, mutating x in
//     place (flat writes for *Dense, SubAt/DivAt for any other container).
//
// Behavior highlights:
//   - b and x must be distinct objects; aliasing is an error, never hidden
//     by an internal copy.
//   - Columns are independent after the permutation copy; the sweeps walk
//     rows outer, columns inner, in fixed order.
//
// Inputs:
//   - b: right-hand-side matrix, m×nx; read-only here.
//   - x: destination matrix, same shape as b; fully overwritten on success.
//
// Errors:
//   - matrix.ErrNilMatrix, ErrAliasedBuffers, matrix.ErrDimensionMismatch
//     (shape disagreement, non-square factorization, or B rows != m),
//     ErrSingular; plus propagated container errors from custom Matrix
//     implementations.
//
// Complexity: Time O(n²·nx), Space O(1) beyond the caller's buffers.
func (d *Decomposition) SolveMatrix(b, x matrix.Matrix) error {
	if err := d.validateMatrixSolve(b, x); err != nil {
		return luErrorf(opSolveMatrix, err)
	}

	// Stage 2: permutation copy into the destination.
	nx := b.Cols()
	bd, bFast := b.(*matrix.Dense)
	xd, xFast := x.(*matrix.Dense)
	if bFast && xFast {
		src, dst := bd.Data(), xd.Data()
		var i int
		for i = 0; i < d.m; i++ {
			copy(dst[i*nx:(i+1)*nx], src[d.piv[i]*nx:(d.piv[i]+1)*nx])
		}
	} else {
		var (
			i, j int
			v    float64
			err  error
		)
		for i = 0; i < d.m; i++ {
			for j = 0; j < nx; j++ {
				v, err = b.At(d.piv[i], j)
				if err != nil {
					return luErrorf(opSolveMatrix, fmt.Errorf("At(%d,%d): %w", d.piv[i], j, err))
				}
				if err = x.Set(i, j, v); err != nil {
					return luErrorf(opSolveMatrix, fmt.Errorf("Set(%d,%d): %w", i, j, err))
				}
			}
		}
	}

	// Stage 3: shared substitution sweeps.
	return d.substituteInPlace(x, opSolveMatrix)
}

// validateMatrixSolve runs the full precondition chain for the multi-column
// form: nil checks, object identity, shape equality, square factorization,
// row-count agreement, singularity. Returns plain sentinels for wrapping.
func (d *Decomposition) validateMatrixSolve(b, x matrix.Matrix) error {
	if err := matrix.ValidateNotNil(b); err != nil {
		return err
	}
	if err := matrix.ValidateNotNil(x); err != nil {
		return err
	}
	// Identity, not shape: the same object cannot be source and destination.
	if x == b {
		return ErrAliasedBuffers
	}
	if err := matrix.ValidateSameShape(b, x); err != nil {
		return err
	}
	if d.m != d.n {
		return matrix.ErrDimensionMismatch
	}
	if b.Rows() != d.m {
		return matrix.ErrDimensionMismatch
	}
	if d.singular {
		return ErrSingular
	}

	return nil
}

// Inverse computes A^{-1} for a square, non-singular factorization.
//
// The right-hand side is the identity with its rows pre-permuted: the 1 of
// row i is placed at column piv[i], which is exactly the state SolveMatrix
// reaches after its permutation copy of I. The shared substitution sweeps
// then turn it into A^{-1} in place.
//
// Errors: matrix.ErrDimensionMismatch (non-square), ErrSingular.
// Complexity: Time O(n³), Space O(n²) for the result.
func (d *Decomposition) Inverse() (*matrix.Dense, error) {
	if d.m != d.n {
		return nil, luErrorf(opInverse, matrix.ErrDimensionMismatch)
	}
	if d.singular {
		return nil, luErrorf(opInverse, ErrSingular)
	}

	inv, err := matrix.NewDense(d.n, d.n)
	if err != nil {
		return nil, luErrorf(opInverse, err)
	}
	dst := inv.Data()
	var i int
	for i = 0; i < d.n; i++ {
		dst[i*d.n+d.piv[i]] = 1.0 // identity rows, permutation prepaid
	}

	if err = d.substituteInPlace(inv, opInverse); err != nil {
		return nil, err
	}

	return inv, nil
}

// substituteInPlace finishes a multi-column solve whose permutation copy
// already ran: forward then back substitution, row sweeps outer, columns
// inner, mutating x through in-place arithmetic only.
//
// Fast path operates on flat Dense storage; the generic path goes through
// the container's At/SubAt/DivAt so any Matrix implementation works.
// Callers must have validated shape and singularity; the U diagonal is
// guaranteed nonzero here.
// Complexity: Time O(n²·nx).
func (d *Decomposition) substituteInPlace(x matrix.Matrix, opTag string) error {
	n := d.n
	nx := x.Cols()
	data := d.packed.Data()

	// Fast path: flat row-major writes.
	if xd, ok := x.(*matrix.Dense); ok {
		dst := xd.Data()
		var (
			i, j, k int
			ell     float64 // multiplier packed(i,k) reused across a row sweep
			pivot   float64 // diagonal divisor packed(k,k)
		)
		// Forward: clear below the unit diagonal, all columns per step.
		for k = 0; k < n; k++ {
			for i = k + 1; i < n; i++ {
				ell = data[i*n+k]
				for j = 0; j < nx; j++ {
					dst[i*nx+j] -= dst[k*nx+j] * ell
				}
			}
		}
		// Backward: divide by the diagonal, then clear above it.
		for k = n - 1; k >= 0; k-- {
			pivot = data[k*n+k]
			for j = 0; j < nx; j++ {
				dst[k*nx+j] /= pivot
			}
			for i = 0; i < k; i++ {
				ell = data[i*n+k]
				for j = 0; j < nx; j++ {
					dst[i*nx+j] -= dst[k*nx+j] * ell
				}
			}
		}

		return nil
	}

	// Generic path: the container's own in-place arithmetic.
	var (
		i, j, k int
		ell     float64
		xkj     float64
		err     error
	)
	for k = 0; k < n; k++ {
		for i = k + 1; i < n; i++ {
			ell = data[i*n+k]
			for j = 0; j < nx; j++ {
				xkj, err = x.At(k, j)
				if err != nil {
					return luErrorf(opTag, fmt.Errorf("At(%d,%d): %w", k, j, err))
				}
				if err = x.SubAt(i, j, xkj*ell); err != nil {
					return luErrorf(opTag, fmt.Errorf("SubAt(%d,%d): %w", i, j, err))
				}
			}
		}
	}
	for k = n - 1; k >= 0; k-- {
		for j = 0; j < nx; j++ {
			if err = x.DivAt(k, j, data[k*n+k]); err != nil {
				return luErrorf(opTag, fmt.Errorf("DivAt(%d,%d): %w", k, j, err))
			}
		}
		for i = 0; i < k; i++ {
			ell = data[i*n+k]
			for j = 0; j < nx; j++ {
				xkj, err = x.At(k, j)
				if err != nil {
					return luErrorf(opTag, fmt.Errorf("At(%d,%d): %w", k, j, err))
				}
				if err = x.SubAt(i, j, xkj*ell); err != nil {
					return luErrorf(opTag, fmt.Errorf("SubAt(%d,%d): %w", i, j, err))
				}
			}
		}
	}

	return nil
}
