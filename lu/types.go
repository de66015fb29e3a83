// SPDX-License-Identifier: MIT

// Package lu: decomposition result type, constructors and plain accessors.
// The elimination kernel that fills a Decomposition lives in factorize.go;
// the consumers (solve/determinant/inverse) live in solve.go and extract.go.
package lu

import (
	"github.com/katalvlaran/lusolve/matrix"
)

// Decomposition is the immutable result of a partial-pivot LU factorization.
//
// It owns four pieces of state produced together by one elimination pass:
//
//   - packed: the m×n working matrix after elimination. Entries strictly
//     below the diagonal hold the multipliers ℓ(i,j); entries on and above
//     it hold u(i,j). The unit diagonal of L is implied, never stored.
//   - piv: a permutation of [0,m) relating factored rows to input rows.
//     Invariant: A(piv[i], :) = (L·U)(i, :) for every row i.
//   - sign: +1 or -1, the parity of the row interchanges performed.
//   - singular: true if any diagonal pivot was exactly zero.
//
// All four are set at construction and never mutated afterwards: accessors
// copy state out, solve operations write only into caller-supplied buffers.
// A Decomposition is therefore safe for concurrent use by multiple
// goroutines, provided each caller owns the output buffers it passes in.
type Decomposition struct {
	packed   *matrix.Dense // packed L and U factors, m×n
	m, n     int           // shape of packed, cached at construction
	piv      []int         // row permutation, length m
	sign     int           // +1 or -1, parity of performed swaps
	singular bool          // true if a zero pivot was met
}

// NewDecomposition wraps pre-factored parts into a Decomposition.
//
// The packed matrix is adopted as-is when it is a *matrix.Dense (the caller
// hands over ownership and must not mutate it afterwards); any other Matrix
// implementation is snapshotted into fresh Dense storage. The pivot vector
// is always copied.
//
// Inputs:
//   - packed: the already-eliminated m×n matrix (see Decomposition).
//   - piv: permutation of [0,m), one entry per packed row.
//   - sign: +1 or -1, parity of the interchanges that produced piv.
//   - singular: whether elimination met a zero diagonal pivot.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrBadShape (packed validation),
//   - matrix.ErrDimensionMismatch (pivot length vs rows),
//   - ErrBadPivot (piv is not a permutation), ErrBadSign (sign not ±1).
//
// Complexity: O(m·n) when packed must be snapshotted, O(m) otherwise.
func NewDecomposition(packed matrix.Matrix, piv []int, sign int, singular bool) (*Decomposition, error) {
	if err := matrix.ValidateNotNil(packed); err != nil {
		return nil, luErrorf(opNew, err)
	}
	if sign != 1 && sign != -1 {
		return nil, luErrorf(opNew, ErrBadSign)
	}

	// Normalize storage before touching shape-derived state.
	work, err := denseCopyOrAdopt(packed)
	if err != nil {
		return nil, luErrorf(opNew, err)
	}
	m, n := work.Rows(), work.Cols()

	// The pivot vector must be a genuine permutation of the row indices.
	if err = validatePivot(piv, m); err != nil {
		return nil, luErrorf(opNew, err)
	}

	return &Decomposition{
		packed:   work,
		m:        m,
		n:        n,
		piv:      append([]int(nil), piv...), // private copy, callers keep theirs
		sign:     sign,
		singular: singular,
	}, nil
}

// NewDecompositionDerived wraps pre-factored parts, deriving the sign and
// the singular flag instead of trusting the caller.
//
// The sign is the genuine parity of piv computed by cycle decomposition,
// not a count of piv[i] != i (which misreports any cycle of length ≥ 3:
// a 3-cycle is two interchanges but three mismatches). The singular flag is
// set iff the packed diagonal carries an exact zero.
//
// Errors: as NewDecomposition, minus ErrBadSign.
// Complexity: O(m·n) worst case (snapshot + diagonal scan).
func NewDecompositionDerived(packed matrix.Matrix, piv []int) (*Decomposition, error) {
	if err := matrix.ValidateNotNil(packed); err != nil {
		return nil, luErrorf(opNewDerived, err)
	}

	work, err := denseCopyOrAdopt(packed)
	if err != nil {
		return nil, luErrorf(opNewDerived, err)
	}
	m, n := work.Rows(), work.Cols()

	if err = validatePivot(piv, m); err != nil {
		return nil, luErrorf(opNewDerived, err)
	}

	// Scan the diagonal for exact zeros; only min(m,n) pivots exist.
	data := work.Data()
	limit := m
	if n < limit {
		limit = n
	}
	singular := false
	var k int
	for k = 0; k < limit; k++ {
		if data[k*n+k] == zeroPivot {
			singular = true
			break
		}
	}

	return &Decomposition{
		packed:   work,
		m:        m,
		n:        n,
		piv:      append([]int(nil), piv...),
		sign:     permutationSign(piv),
		singular: singular,
	}, nil
}

// IsSingular reports whether elimination met an exactly zero diagonal pivot.
// Solves and inversions against a singular decomposition fail with ErrSingular.
// Complexity: O(1).
func (d *Decomposition) IsSingular() bool {
	return d.singular
}

// Sign returns the pivot sign: +1 for an even number of row interchanges,
// -1 for an odd number. It is the permutation-parity factor of Det.
// Complexity: O(1).
func (d *Decomposition) Sign() int {
	return d.sign
}

// Dims returns the shape (rows, cols) of the factored matrix.
// Complexity: O(1).
func (d *Decomposition) Dims() (rows, cols int) {
	return d.m, d.n
}

// Pivot returns a copy of the row permutation: row i of the packed factors
// came from row Pivot()[i] of the original matrix. The caller may mutate the
// copy freely; the internal vector never escapes.
// Complexity: O(m) per call.
func (d *Decomposition) Pivot() []int {
	out := make([]int, len(d.piv))
	copy(out, d.piv)

	return out
}

// validatePivot checks that piv is a permutation of [0, m).
// Length mismatches report matrix.ErrDimensionMismatch; out-of-range or
// repeated entries report ErrBadPivot.
// Complexity: O(m) time and space.
func validatePivot(piv []int, m int) error {
	if len(piv) != m {
		return matrix.ErrDimensionMismatch
	}
	seen := make([]bool, m)
	var i int
	for i = 0; i < m; i++ {
		if piv[i] < 0 || piv[i] >= m || seen[piv[i]] {
			return ErrBadPivot
		}
		seen[piv[i]] = true
	}

	return nil
}

// permutationSign computes the parity of a permutation by cycle
// decomposition: each cycle of length k contributes k-1 transpositions, so
// the sign flips once per even-length cycle. The input must already be a
// validated permutation.
// Complexity: O(m) time and space.
func permutationSign(piv []int) int {
	visited := make([]bool, len(piv))
	sign := 1
	var i, j, cycleLen int
	for i = 0; i < len(piv); i++ {
		if visited[i] {
			continue // already accounted inside an earlier cycle
		}
		// Walk the cycle starting at i, marking every member.
		cycleLen = 0
		for j = i; !visited[j]; j = piv[j] {
			visited[j] = true
			cycleLen++
		}
		// k-1 transpositions flip the sign iff the cycle length is even.
		if cycleLen%2 == 0 {
			sign = -sign
		}
	}

	return sign
}
