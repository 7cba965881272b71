// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide a single, canonical source of truth for the structural checks
//     the adjacency contract imposes (square, symmetric, zero diagonal,
//     non-negative).
//   - Return plain sentinel errors tagged with the validator name so call
//     sites can wrap uniformly and tests can match via errors.Is.
//
// Determinism & Performance:
//   - All checks are pure, deterministic and allocate nothing.
//   - The symmetry check runs O(n²) on the upper triangle only.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
// Used internally to maintain consistent labeling of sentinel violations.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Returns ErrNilMatrix if m == nil.
// Complexity: O(1).
func ValidateNotNil(m *Dense) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare checks that m is square (Rows == Cols).
// Assumes m is not nil (caller must ensure).
// Returns wrapped ErrNonSquare on violation.
// Complexity: O(1).
func ValidateSquare(m *Dense) error {
	if m.r != m.c {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateSymmetric checks that m[i,j] == m[j,i] for all pairs.
// Implementation: NotNil → Square → upper-triangle scan.
// Returns wrapped ErrNonSquare or ErrAsymmetry identifying the first
// violating pair.
// Complexity: O(n²) over the upper triangle.
func ValidateSymmetric(m *Dense) error {
	// Fixed sequence: presence before shape before content.
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if err := ValidateSquare(m); err != nil {
		return err
	}

	// Scan the upper triangle only; the lower follows by the same comparison.
	var i, j int
	for i = 0; i < m.r; i++ {
		for j = i + 1; j < m.c; j++ {
			if m.data[i*m.c+j] != m.data[j*m.c+i] {
				return fmt.Errorf("ValidateSymmetric: (%d,%d)=%d vs (%d,%d)=%d: %w",
					i, j, m.data[i*m.c+j], j, i, m.data[j*m.c+i], ErrAsymmetry)
			}
		}
	}

	return nil
}

// ValidateZeroDiagonal checks that m[i,i] == 0 for all i.
// Implementation: NotNil → Square → diagonal walk.
// Returns wrapped ErrNonSquare or ErrNonZeroDiagonal identifying the first
// violating index.
// Complexity: O(n).
func ValidateZeroDiagonal(m *Dense) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if err := ValidateSquare(m); err != nil {
		return err
	}

	var i int
	for i = 0; i < m.r; i++ {
		if m.data[i*m.c+i] != 0 {
			return fmt.Errorf("ValidateZeroDiagonal: (%d,%d)=%d: %w",
				i, i, m.data[i*m.c+i], ErrNonZeroDiagonal)
		}
	}

	return nil
}

// ValidateNonNegative checks that no cell holds a negative count.
// Returns wrapped ErrNegativeCell identifying the first violating cell.
// Complexity: O(r*c).
func ValidateNonNegative(m *Dense) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}

	var k int
	for k = range m.data {
		if m.data[k] < 0 {
			return fmt.Errorf("ValidateNonNegative: (%d,%d)=%d: %w",
				k/m.c, k%m.c, m.data[k], ErrNegativeCell)
		}
	}

	return nil
}
