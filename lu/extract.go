// SPDX-License-Identifier: MIT
// Package lu: lazy materialization of the triangular factors and the
// determinant. The packed buffer stays untouched; every call allocates a
// fresh result, so repeated calls are independent and equal.

package lu

import (
	"github.com/katalvlaran/lusolve/matrix"
)

// L materializes the unit-lower-triangular factor as a fresh m×n matrix:
// ones on the main diagonal, stored multipliers strictly below it, zeros
// above. Complexity: O(m·n) time and memory.
func (d *Decomposition) L() (*matrix.Dense, error) {
	out, err := matrix.NewDense(d.m, d.n)
	if err != nil {
		return nil, luErrorf(opL, err)
	}

	src, dst := d.packed.Data(), out.Data()
	var i, j int
	for i = 0; i < d.m; i++ {
		for j = 0; j < d.n; j++ {
			if i > j {
				dst[i*d.n+j] = src[i*d.n+j] // multiplier ℓ(i,j) from the packed store
			} else if i == j {
				dst[i*d.n+j] = 1.0 // implied unit diagonal
			}
			// entries above the diagonal stay zero
		}
	}

	return out, nil
}

// U materializes the upper-triangular factor as a fresh n×n matrix: entries
// on and above the diagonal copied from the packed storage, zeros below.
// For a wide factorization (m < n) only the first m rows carry data; the
// remaining rows stay zero, keeping L·U = P·A valid for every shape.
// Complexity: O(n²) time and memory.
func (d *Decomposition) U() (*matrix.Dense, error) {
	out, err := matrix.NewDense(d.n, d.n)
	if err != nil {
		return nil, luErrorf(opU, err)
	}

	src, dst := d.packed.Data(), out.Data()
	limit := d.m
	if d.n < limit {
		limit = d.n
	}
	var i, j int
	for i = 0; i < limit; i++ {
		for j = i; j < d.n; j++ {
			dst[i*d.n+j] = src[i*d.n+j]
		}
	}

	return out, nil
}

// Packed returns a copy of the packed factor matrix: multipliers strictly
// below the diagonal, U on and above it. Together with Pivot, Sign and
// IsSingular it carries the complete decomposition state, so a Decomposition
// can be persisted and later rebuilt via NewDecomposition.
// Complexity: O(m·n) per call.
func (d *Decomposition) Packed() *matrix.Dense {
	clone, _ := d.packed.Clone().(*matrix.Dense) // (*Dense).Clone always yields *Dense

	return clone
}

// Det computes the determinant from the packed diagonal:
//
//	det(A) = Sign() × Π packed(k,k)
//
// Square factorizations only. No singularity special case is needed: a
// singular decomposition has a zero diagonal entry, so the product is zero.
//
// Errors: matrix.ErrDimensionMismatch when the factored matrix is not square.
// Complexity: O(n).
func (d *Decomposition) Det() (float64, error) {
	if d.m != d.n {
		return 0, luErrorf(opDet, matrix.ErrDimensionMismatch)
	}

	det := float64(d.sign)
	data := d.packed.Data()
	var k int
	for k = 0; k < d.n; k++ {
		det *= data[k*d.n+k]
	}

	return det, nil
}
