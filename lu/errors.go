// SPDX-License-Identifier: MIT
// Package lu: sentinel error set and operation tags.
// This file defines ONLY the package-level sentinels and the uniform error
// wrapper. Shape sentinels (ErrDimensionMismatch, ErrNilMatrix, ...) come
// from the matrix package; this package adds the solver-state failures.
// All operations return these via errors.Is-compatible wrapping; nothing
// here panics on user input.

package lu

import (
	"errors"
	"fmt"
)

var (
	// ErrSingular is returned when a solve or inversion is requested against
	// a decomposition whose singular flag is set (a zero pivot was met during
	// elimination). A singular system has no unique solution; the kernels
	// never substitute a least-squares or degenerate answer.
	ErrSingular = errors.New("lu: singular matrix")

	// ErrAliasedBuffers is returned when the multi-column solve receives the
	// same object as both right-hand side and destination. The contract
	// requires distinct buffers; the kernel never copies behind the caller's
	// back to hide the overlap.
	ErrAliasedBuffers = errors.New("lu: right-hand side and destination must be distinct")

	// ErrBadPivot is returned by the explicit constructors when the supplied
	// pivot vector is not a permutation of [0, rows).
	ErrBadPivot = errors.New("lu: pivot vector is not a permutation")

	// ErrBadSign is returned by the explicit constructors when the supplied
	// pivot sign is neither +1 nor -1.
	ErrBadSign = errors.New("lu: pivot sign must be +1 or -1")
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opFactorize    = "Factorize"
	opNew          = "NewDecomposition"
	opNewDerived   = "NewDecompositionDerived"
	opL            = "L"
	opU            = "U"
	opDet          = "Det"
	opInverse      = "Inverse"
	opSolve        = "Solve"
	opSolveInPlace = "SolveInPlace"
	opSolveMatrix  = "SolveMatrix"
)

// luErrorf wraps err with an operation tag, preserving the original error via %w.
// Keeps the stable "Op: underlying" shape used across the module so callers
// match sentinels with errors.Is regardless of depth. Call only with err != nil.
func luErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
