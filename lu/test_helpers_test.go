// SPDX-License-Identifier: MIT
// Package lu_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures and assertions for the factorization kernel and its consumers.
//   • Keep every fixture finite and well-conditioned unless a test explicitly probes singularity.

package lu_test

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/lusolve/lu"
	"github.com/katalvlaran/lusolve/matrix"
)

// tol is the absolute tolerance for asserts on values that pass through
// inexact division (multipliers like 4/7 have no finite binary expansion).
// Fixtures built from halves and quarters are asserted exactly instead.
const tol = 1e-12

// errProbe is the failure injected by brokenAt to test error propagation.
var errProbe = errors.New("probe: element access failed")

// hide WRAPS any Matrix to mask its concrete type from type assertions.
// Implementation:
//   - Stage 1: Embed matrix.Matrix to forward all methods.
//   - Stage 2: Use hide{X} in tests to force the generic (non-*Dense) paths.
//
// Behavior highlights:
//   - Defeats the "*Dense" fast path selected by type assertion in code under test.
//
// Inputs:
//   - matrix.Matrix: any implementation.
//
// Returns:
//   - hide: wrapper that still satisfies Matrix but masks the concrete type.
//
// Errors:
//   - None.
//
// Determinism:
//   - N/A (wrapper only).
//
// Complexity:
//   - Time O(1), Space O(1).
//
// Notes:
//   - Wrap only the operand you want to de-opt; keep the other one *Dense to isolate path differences.
type hide struct{ matrix.Matrix }

// reshape OVERRIDES the reported shape of an embedded Matrix.
// Used to reach the degenerate-shape branch of the snapshot code, which a
// well-formed *Dense can never trigger (its constructor rejects such shapes).
type reshape struct {
	matrix.Matrix
	r, c int
}

func (s reshape) Rows() int { return s.r }
func (s reshape) Cols() int { return s.c }

// brokenAt FAILS every element read with errProbe.
// Used to assert that container errors surface through the generic paths.
type brokenAt struct{ matrix.Matrix }

func (brokenAt) At(i, j int) (float64, error) { return 0, errProbe }

// MustFromRows BUILDS a *Dense from a 2D literal or fails the test.
// Implementation:
//   - Stage 1: Call matrix.NewDenseFromRows(rows).
//   - Stage 2: t.Fatalf on error to abort the test early.
//
// Behavior highlights:
//   - One-line fixture creation with explicit values.
//
// Inputs:
//   - rows: rectangular [][]float64 literal.
//
// Returns:
//   - *matrix.Dense with copied values.
//
// Errors:
//   - Fatal test failure if the literal is empty or ragged.
//
// Determinism:
//   - Deterministic fill order.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
//
// Notes:
//   - Prefer for small exact-equality fixtures.
func MustFromRows(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	if err != nil {
		t.Fatalf("NewDenseFromRows: %v", err)
	}

	return m
}

// MustFactorize BUILDS a fixture and factorizes it or fails the test.
// Combines MustFromRows and lu.Factorize for tests that exercise the
// consumers (extract/solve/invert) rather than the kernel itself.
func MustFactorize(t *testing.T, rows [][]float64) *lu.Decomposition {
	t.Helper()
	d, err := lu.Factorize(MustFromRows(t, rows))
	if err != nil {
		t.Fatalf("Factorize: %v", err)
	}

	return d
}

// MustAt READS m[i,j] or fails the test.
func MustAt(t *testing.T, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}

// RandomSquare RETURNS a deterministic diagonally dominant n×n *Dense.
// Off-diagonal entries are U(-1,1) from the seed; the diagonal then gains +n,
// which keeps every pivot far from zero, so the fixture is never singular.
// Deterministic per seed; Time O(n^2), Space O(n^2).
func RandomSquare(t *testing.T, n int, seed int64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(n, n)
	if err != nil {
		t.Fatalf("NewDense(%d,%d): %v", n, n, err)
	}
	rng := rand.New(rand.NewSource(seed))
	data := m.Data()
	var i, j int // loop iterators
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			data[i*n+j] = rng.Float64()*2 - 1 // 0*2-1=-1 || 1*2-1=1
		}
		data[i*n+i] += float64(n) // dominance keeps the matrix nonsingular
	}

	return m
}

// CompareExact ASSERTS strict equality between a 2D literal and a matrix.
// Implementation:
//   - Stage 1: Shape checks.
//   - Stage 2: Iterate and compare with == (no tolerances).
//
// Behavior highlights:
//   - Fails with the exact mismatch location.
//
// Inputs:
//   - want: [][]float64 expected; m: Matrix under test.
//
// Returns:
//   - None.
//
// Errors:
//   - Fatal test failure on shape or value mismatch.
//
// Determinism:
//   - Deterministic.
//
// Complexity:
//   - Time O(r*c), Space O(1).
//
// Notes:
//   - Use only for fixtures whose arithmetic is exact in binary; otherwise use CompareClose.
func CompareExact(t *testing.T, want [][]float64, m matrix.Matrix) {
	t.Helper()
	r, c := m.Rows(), m.Cols()
	if len(want) != r {
		t.Fatalf("CompareExact: Rows = %d; want %d", r, len(want))
	}
	var i, j int // loop iterators
	var v float64
	for i = 0; i < r; i++ {
		if len(want[i]) != c {
			t.Fatalf("CompareExact: Cols[%d] = %d; want %d", i, c, len(want[i]))
		}
		for j = 0; j < c; j++ {
			if v = MustAt(t, m, i, j); v != want[i][j] {
				t.Fatalf("m[%d,%d]=%v; want %v", i, j, v, want[i][j])
			}
		}
	}
}

// CompareClose ASSERTS |m[i,j]-want[i][j]| ≤ atol element-wise.
// Same contract as CompareExact with an absolute tolerance band; use it for
// results that pass through inexact multipliers.
func CompareClose(t *testing.T, want [][]float64, m matrix.Matrix, atol float64) {
	t.Helper()
	r, c := m.Rows(), m.Cols()
	if len(want) != r {
		t.Fatalf("CompareClose: Rows = %d; want %d", r, len(want))
	}
	var i, j int
	var v float64
	for i = 0; i < r; i++ {
		if len(want[i]) != c {
			t.Fatalf("CompareClose: Cols[%d] = %d; want %d", i, c, len(want[i]))
		}
		for j = 0; j < c; j++ {
			if v = MustAt(t, m, i, j); math.Abs(v-want[i][j]) > atol {
				t.Fatalf("m[%d,%d]=%g; want %g (atol=%g)", i, j, v, want[i][j], atol)
			}
		}
	}
}

// vecClose ASSERTS |got[i]-want[i]| ≤ atol for all i.
func vecClose(t *testing.T, got, want []float64, atol float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("vector lengths: %d vs %d", len(got), len(want))
	}
	for i := range got {
		if math.Abs(got[i]-want[i]) > atol {
			t.Fatalf("vecClose idx=%d: got=%g want=%g (atol=%g)", i, got[i], want[i], atol)
		}
	}
}

// AssertErrorIs WRAPS errors.Is with consistent failure text.
func AssertErrorIs(t *testing.T, err, target error) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("want %v; got %v", target, err)
	}
}

// matProduct RETURNS a·b as a fresh *Dense or fails the test.
// Implementation:
//   - Stage 1: Check the inner dimensions agree.
//   - Stage 2: Triple loop over (i,k,j) with checked element access.
//
// Behavior highlights:
//   - Lets tests state factor invariants (rows of L·U against permuted input rows) directly.
//
// Inputs:
//   - a: r×k Matrix; b: k×c Matrix.
//
// Returns:
//   - *matrix.Dense holding the r×c product.
//
// Errors:
//   - Fatal test failure on inner-dimension mismatch or element access errors.
//
// Determinism:
//   - Deterministic accumulation order (k ascending).
//
// Complexity:
//   - Time O(r*k*c), Space O(r*c).
func matProduct(t *testing.T, a, b matrix.Matrix) *matrix.Dense {
	t.Helper()
	if a.Cols() != b.Rows() {
		t.Fatalf("matProduct: inner dims %d vs %d", a.Cols(), b.Rows())
	}
	r, inner, c := a.Rows(), a.Cols(), b.Cols()
	out, err := matrix.NewDense(r, c)
	if err != nil {
		t.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}
	dst := out.Data()
	var i, j, k int // loop iterators
	var sum float64
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			sum = 0
			for k = 0; k < inner; k++ {
				sum += MustAt(t, a, i, k) * MustAt(t, b, k, j)
			}
			dst[i*c+j] = sum
		}
	}

	return out
}

// applyVec RETURNS the product a·x for a vector x of length a.Cols().
func applyVec(t *testing.T, a matrix.Matrix, x []float64) []float64 {
	t.Helper()
	if len(x) != a.Cols() {
		t.Fatalf("applyVec: len(x)=%d, want %d", len(x), a.Cols())
	}
	out := make([]float64, a.Rows())
	var i, j int
	for i = 0; i < a.Rows(); i++ {
		for j = 0; j < a.Cols(); j++ {
			out[i] += MustAt(t, a, i, j) * x[j]
		}
	}

	return out
}

// permuteRows RETURNS a fresh *Dense whose row i is row piv[i] of a.
// It materializes the permuted view that the factor product must reproduce.
func permuteRows(t *testing.T, a matrix.Matrix, piv []int) *matrix.Dense {
	t.Helper()
	r, c := a.Rows(), a.Cols()
	if len(piv) != r {
		t.Fatalf("permuteRows: len(piv)=%d, want %d", len(piv), r)
	}
	out, err := matrix.NewDense(r, c)
	if err != nil {
		t.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}
	dst := out.Data()
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			dst[i*c+j] = MustAt(t, a, piv[i], j)
		}
	}

	return out
}

// ---------- bench helpers ----------

func benchSystem(b *testing.B, n int, seed int64) *matrix.Dense {
	m, err := matrix.NewDense(n, n)
	if err != nil {
		b.Fatalf("NewDense(%d,%d): %v", n, n, err)
	}
	rng := rand.New(rand.NewSource(seed))
	data := m.Data()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			data[i*n+j] = rng.Float64()*2 - 1 // [-1,1]
		}
		data[i*n+i] += float64(n) // keep pivots away from zero
	}
	return m
}

func onesVec(n int) []float64 {
	v := make([]float64, n)
	for i := 0; i < n; i++ {
		v[i] = 1
	}
	return v
}
