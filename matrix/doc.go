// Package matrix offers the dense numeric container consumed by the solver
// packages.
//
// The matrix package provides:
//
//   - The Matrix interface: a mutable 2-D float64 container with
//     bounds-checked element access, in-place coordinate arithmetic
//     (SubAt/DivAt) and deep cloning.
//   - Dense, a row-major flat-storage implementation of Matrix, with
//     constructors for zero, identity and literal row data.
//   - Shape validators (nil, square, same-shape, vector-length) shared by
//     the factorization and solve kernels in package lu.
//
// Dense favors a single flat backing slice for cache friendliness; every
// indexed accessor is bounds-checked and reports sentinel errors instead of
// panicking. General matrix arithmetic (Add, Mul, Transpose) is deliberately
// absent: this package is the storage boundary, not an algebra suite.
//
// See the examples in package lu for usage patterns.
package matrix
