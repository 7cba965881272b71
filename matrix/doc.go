// SPDX-License-Identifier: MIT

// Package matrix provides the integer dense-matrix primitives backing the
// co-authorship adjacency computation.
//
// What & Why:
//
//	Dense is a row-major, bounds-checked matrix of int64 counts. Counts stay
//	integral end to end (manuscripts shared between two localities), so the
//	storage type is int64 rather than float64: there is no numeric policy to
//	configure, no NaN/Inf to validate, and equality checks are exact.
//
//	The package also exposes the structural validators the adjacency contract
//	requires: square shape, symmetry, zero diagonal and non-negativity. All
//	validators return plain sentinel errors; call sites wrap them with context
//	and tests match them via errors.Is.
//
// Complexity:
//
//	Rows() and Cols() run in O(1) time.
//	At() and Set() perform bounds checking in O(1) time.
//	AddInto() and Clone() run in O(r*c) time.
//	Structural validators run in O(n²) time, the symmetry check scanning the
//	upper triangle only.
package matrix
