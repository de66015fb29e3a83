// SPDX-License-Identifier: MIT
// Package lu: the elimination kernel.
// Factorize is the leaf computation of this package: it depends on nothing
// but the matrix container and produces the Decomposition everything else
// consumes.

package lu

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lusolve/matrix"
)

// zeroPivot is the sentinel value for detecting a zero diagonal pivot.
// Comparison is exact: singularity here means a pivot of literally 0,
// not "small under some tolerance".
const zeroPivot = 0.0

// Factorize computes the partial-pivot LU decomposition of an m×n matrix.
//
// Algorithm Outline (outer-product Gaussian elimination):
//  1. Snapshot a into a private working copy W; the caller's matrix is
//     never touched. Initialize piv = [0,1,...,m-1], sign = +1.
//  2. For each column j from 0 to min(m,n)-1:
//     a. Scan rows j..m-1 of column j and pick the row p with the largest
//     |W(p,j)| (partial pivoting; the first maximal row wins ties).
//     b. If p != j: swap rows p and j of W, swap piv[p] and piv[j], and
//     negate the sign. Every physical interchange counts; the sign is
//     never reconstructed from the final permutation afterwards.
//     c. If W(j,j) != 0: for each row i > j store the multiplier
//     ℓ = W(i,j)/W(j,j) at W(i,j) and subtract ℓ·W(j, j+1..n-1) from
//     W(i, j+1..n-1). The explicit zeros below the diagonal are never
//     written; the multipliers live in their place.
//     d. If W(j,j) == 0: mark the decomposition singular and continue with
//     the next column, so the packed form still exists for partial use.
//  3. Wrap W, piv, sign and the singular flag into a Decomposition.
//
// Behavior highlights:
//   - Never fails on numeric grounds: singular and rectangular inputs
//     factor fine; singularity is reported via IsSingular, not an error.
//   - Deterministic: fixed scan order and tie-breaking, no randomness.
//   - After the snapshot, all loops run on flat row-major storage.
//
// Inputs:
//   - a: any Matrix with at least one row and one column.
//
// Returns:
//   - *Decomposition: packed factors, permutation, sign, singularity.
//
// Errors:
//   - matrix.ErrNilMatrix (nil input), matrix.ErrBadShape (degenerate shape
//     reported while allocating the snapshot), plus propagated container
//     errors when a custom Matrix implementation fails element access.
//
// Complexity:
//   - Time O(min(m,n)·m·n), Space O(m·n) for the working copy.
func Factorize(a matrix.Matrix) (*Decomposition, error) {
	if err := matrix.ValidateNotNil(a); err != nil {
		return nil, luErrorf(opFactorize, err)
	}

	// Stage 1: private working copy; elimination mutates only this buffer.
	work, err := denseCopyOf(a)
	if err != nil {
		return nil, luErrorf(opFactorize, err)
	}
	m, n := work.Rows(), work.Cols()
	data := work.Data() // flat row-major view for the hot loops

	// Stage 2: identity permutation, positive sign.
	piv := make([]int, m)
	var i int
	for i = 0; i < m; i++ {
		piv[i] = i
	}
	sign := 1
	singular := false

	// Stage 3: eliminate column by column.
	var (
		j, p, k int     // column, pivot row, sweep iterators
		best    float64 // largest |value| seen in the pivot scan
		cand    float64 // |candidate| under the scan cursor
		pivot   float64 // selected pivot value W(j,j)
		ell     float64 // multiplier stored below the diagonal
	)
	limit := m
	if n < limit {
		limit = n
	}
	for j = 0; j < limit; j++ {
		// 3a. Pivot scan: strictly-greater comparison keeps the first maximum.
		p = j
		best = math.Abs(data[j*n+j])
		for k = j + 1; k < m; k++ {
			cand = math.Abs(data[k*n+j])
			if cand > best {
				best = cand
				p = k
			}
		}

		// 3b. Physical row interchange; every swap flips the sign.
		if p != j {
			swapRows(data, n, p, j)
			piv[p], piv[j] = piv[j], piv[p]
			sign = -sign
		}

		// 3c/3d. Eliminate below the pivot, or record the zero and move on.
		pivot = data[j*n+j]
		if pivot == zeroPivot {
			singular = true
			continue
		}
		for i = j + 1; i < m; i++ {
			ell = data[i*n+j] / pivot
			data[i*n+j] = ell // multiplier takes the place of the implicit zero
			for k = j + 1; k < n; k++ {
				data[i*n+k] -= ell * data[j*n+k]
			}
		}
	}

	return &Decomposition{
		packed:   work,
		m:        m,
		n:        n,
		piv:      piv,
		sign:     sign,
		singular: singular,
	}, nil
}

// swapRows exchanges two full rows of a flat row-major buffer.
// Complexity: O(stride).
func swapRows(data []float64, stride, a, b int) {
	rowA := data[a*stride : a*stride+stride]
	rowB := data[b*stride : b*stride+stride]
	var k int
	for k = 0; k < stride; k++ {
		rowA[k], rowB[k] = rowB[k], rowA[k]
	}
}

// denseCopyOf snapshots any Matrix into freshly allocated Dense storage.
// Fast path clones *Dense wholesale; the generic path walks At in fixed
// row-major order and surfaces the container's own errors.
// Complexity: O(r·c).
func denseCopyOf(a matrix.Matrix) (*matrix.Dense, error) {
	if d, ok := a.(*matrix.Dense); ok {
		clone, _ := d.Clone().(*matrix.Dense) // (*Dense).Clone always yields *Dense

		return clone, nil
	}

	rows, cols := a.Rows(), a.Cols()
	out, err := matrix.NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	dst := out.Data()
	var (
		i, j int
		v    float64
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v, err = a.At(i, j)
			if err != nil {
				return nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			dst[i*cols+j] = v
		}
	}

	return out, nil
}

// denseCopyOrAdopt returns a as-is when it already is a *matrix.Dense
// (ownership transfer, no copy) and snapshots any other implementation.
// Used by the constructors, which adopt already-factored storage.
// Complexity: O(1) for *Dense, O(r·c) otherwise.
func denseCopyOrAdopt(a matrix.Matrix) (*matrix.Dense, error) {
	if d, ok := a.(*matrix.Dense); ok {
		return d, nil
	}

	return denseCopyOf(a)
}
