// Package lusolve is an in-memory toolkit for direct dense linear algebra:
// factorize once, then solve, invert and measure as often as you need.
//
// 🚀 What is lusolve?
//
//	A small, thread-friendly, pure-Go library that brings together:
//		• Dense storage: a flat row-major container with bounds-checked access
//		• Factorization: partial-pivot LU of any m×n matrix, packed in one buffer
//		• Solving: single-vector and multi-column triangular solves
//		• Derivations: determinant, inverse, and standalone L/U/permutation views
//
// ✨ Why choose lusolve?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Honest numerics – partial pivoting, exact singularity reporting, no
//     silent least-squares fallbacks
//   - Pure Go – no cgo, no hidden deps
//   - Amortized cost – one O(n³) factorization funds any number of O(n²) solves
//
// Under the hood, everything is organized under two subpackages:
//
//	matrix/ — the Dense container, shape validators and sentinel errors
//	lu/     — Factorize, Decomposition, Solve/Det/Inverse and the facades
//
// Quick sketch:
//
//	d, _ := lu.Factorize(a)     // P·A = L·U, packed
//	_ = d.Solve(b, x)           // forward + back substitution
//	det, _ := d.Det()           // sign × Π diag(U)
//
// Dive into the package docs of lu/ and matrix/ for contracts, error
// taxonomy and worked examples.
//
//	go get github.com/katalvlaran/lusolve
package lusolve
