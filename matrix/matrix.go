// SPDX-License-Identifier: MIT

// Package matrix: the public Matrix interface.
// This file intentionally contains ONLY the container contract consumed by
// the solver kernels. Errors and validators live in dedicated files
// (errors.go, validators.go) per the global conventions.
package matrix

// Matrix represents a two-dimensional mutable array of float64 values.
// Each method enforces bounds checking and returns clear errors on misuse.
// Users can implement this interface to provide custom storage layouts.
//
// Implementations should be pointer-shaped: solver operations that forbid
// aliased buffers compare two Matrix values with == to detect "same object",
// which is only meaningful when a value identifies its storage.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	// Complexity: O(1).
	Rows() int

	// Cols returns the number of columns in the matrix.
	// Complexity: O(1).
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	// Complexity: O(1).
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	// Complexity: O(1).
	Set(i, j int, v float64) error

	// SubAt subtracts v from the element at position (i, j), in place.
	// Returns ErrOutOfRange if indices are invalid.
	// Complexity: O(1).
	SubAt(i, j int, v float64) error

	// DivAt divides the element at position (i, j) by v, in place.
	// Division by zero follows IEEE-754 semantics (Inf/NaN results); callers
	// guard the divisor, the container does not.
	// Returns ErrOutOfRange if indices are invalid.
	// Complexity: O(1).
	DivAt(i, j int, v float64) error

	// Clone returns a deep copy of the matrix.
	// The returned Matrix is independent of the original.
	// Complexity: O(rows*cols).
	Clone() Matrix
}
