// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All operations return these sentinels and tests check them via
// errors.Is. No operation panics on user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Do not %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary so callers can still use errors.Is to match.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrIndexOutOfBounds indicates that a row or column index is outside valid range.
	ErrIndexOutOfBounds = errors.New("matrix: index out of bounds")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., AddInto over matrices of different shapes.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrAsymmetry signals that a matrix expected to be symmetric violated
	// symmetry at some (i, j) pair.
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric")

	// ErrNonZeroDiagonal signals that a zero diagonal was required but a
	// non-zero diagonal entry was observed.
	ErrNonZeroDiagonal = errors.New("matrix: diagonal not zero")

	// ErrNegativeCell signals that a negative count was observed where the
	// contract requires non-negative values.
	ErrNegativeCell = errors.New("matrix: negative cell value")

	// ErrNilMatrix indicates that a nil *Dense (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)
