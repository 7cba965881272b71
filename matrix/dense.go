// SPDX-License-Identifier: MIT
// Package matrix: Dense is a concrete, row-major integer matrix, storing
// elements in a flat slice for performance and cache friendliness.

package matrix

import (
	"fmt"
	"strings"
)

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major matrix of int64 counts.
// r is rows, c is columns, and data holds r*c elements in row-major order.
type Dense struct {
	r, c int     // number of rows and columns
	data []int64 // flat backing storage, length == r*c
}

// NewDense creates an r×c Dense matrix initialized to zeros.
// Stage 1 (Validate): ensure rows and cols > 0.
// Stage 2 (Prepare): allocate flat backing slice.
// Stage 3 (Finalize): return new Dense or ErrInvalidDimensions.
// Complexity: O(r*c) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	// Validate dimensions
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	// Allocate flat slice
	data := make([]int64, rows*cols)

	// Return initialized Dense
	return &Dense{r: rows, c: cols, data: data}, nil
}

// NewDenseFromRows creates a Dense from a slice of equal-length rows.
// Stage 1 (Validate): non-empty input, rectangular shape.
// Stage 2 (Execute): copy rows into flat storage.
// Returns ErrInvalidDimensions on empty input and ErrDimensionMismatch on a
// ragged row set.
// Complexity: O(r*c) time and memory.
func NewDenseFromRows(rows [][]int64) (*Dense, error) {
	// Validate outer dimension
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrInvalidDimensions
	}

	cols := len(rows[0])
	d, err := NewDense(len(rows), cols)
	if err != nil {
		return nil, err
	}

	// Copy row by row, rejecting ragged input
	var i int
	var row []int64
	for i, row = range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("NewDenseFromRows: row %d has %d cells, want %d: %w",
				i, len(row), cols, ErrDimensionMismatch)
		}
		copy(d.data[i*cols:(i+1)*cols], row)
	}

	return d, nil
}

// Rows returns the number of rows in the matrix.
// Complexity: O(1).
func (m *Dense) Rows() int {
	return m.r // return stored row count
}

// Cols returns the number of columns in the matrix.
// Complexity: O(1).
func (m *Dense) Cols() int {
	return m.c // return stored column count
}

// indexOf computes the flat index for (row, col) or returns ErrIndexOutOfBounds.
// Stage 1 (Validate): check 0 ≤ row < r and 0 ≤ col < c.
// Stage 2 (Execute): compute and return linear index.
// Complexity: O(1).
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	// Validate row index
	if row < 0 || row >= m.r {
		return 0, denseErrorf(method, row, col, ErrIndexOutOfBounds)
	}
	// Validate column index
	if col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrIndexOutOfBounds)
	}

	// Compute flat offset
	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Stage 1 (Validate): bounds check via indexOf.
// Stage 2 (Execute): read from data slice.
// Complexity: O(1).
func (m *Dense) At(row, col int) (int64, error) {
	// Compute flat index or error
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return 0, err
	}

	// Return stored value
	return m.data[idx], nil
}

// Set assigns value v at (row, col).
// Stage 1 (Validate): bounds check via indexOf.
// Stage 2 (Execute): write into data slice.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v int64) error {
	// Compute flat index or error
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	// Assign value
	m.data[idx] = v

	return nil
}

// Clone returns a deep copy of the Dense matrix.
// Complexity: O(r*c) time and memory for copy.
func (m *Dense) Clone() *Dense {
	// Allocate new slice for data copy
	copyData := make([]int64, len(m.data))
	// Copy all elements into new slice
	copy(copyData, m.data)

	return &Dense{r: m.r, c: m.c, data: copyData}
}

// AddInto accumulates other into m elementwise: m[i,j] += other[i,j].
// Stage 1 (Validate): non-nil operand, identical shapes.
// Stage 2 (Execute): single pass over the flat row-major buffers.
// Returns ErrNilMatrix or ErrDimensionMismatch; on error m is unchanged.
// Complexity: O(r*c) time, zero allocations.
//
// AddInto is the running-total accumulator used during adjacency
// construction: one reusable per-manuscript indicator is folded into the
// total instead of collecting a matrix per manuscript.
func (m *Dense) AddInto(other *Dense) error {
	// Validate operand presence
	if other == nil {
		return fmt.Errorf("Dense.AddInto: %w", ErrNilMatrix)
	}
	// Validate shape agreement
	if m.r != other.r || m.c != other.c {
		return fmt.Errorf("Dense.AddInto: %dx%d vs %dx%d: %w",
			m.r, m.c, other.r, other.c, ErrDimensionMismatch)
	}

	// Execute flat accumulation (deterministic 0..n-1 order)
	var k int
	for k = range m.data {
		m.data[k] += other.data[k]
	}

	return nil
}

// Zero resets every element to 0, preserving shape and backing storage.
// Complexity: O(r*c) time, zero allocations.
func (m *Dense) Zero() {
	var k int
	for k = range m.data {
		m.data[k] = 0
	}
}

// ZeroDiagonal sets m[i,i] = 0 for all i.
// Stage 1 (Validate): require a square matrix.
// Stage 2 (Execute): walk the diagonal stride.
// Returns ErrNonSquare on a rectangular receiver.
// Complexity: O(n) time.
func (m *Dense) ZeroDiagonal() error {
	// Validate squareness
	if m.r != m.c {
		return fmt.Errorf("Dense.ZeroDiagonal: %dx%d: %w", m.r, m.c, ErrNonSquare)
	}

	// Execute diagonal walk (stride c+1 over the flat buffer)
	var i int
	for i = 0; i < m.r; i++ {
		m.data[i*m.c+i] = 0
	}

	return nil
}

// Equal reports whether m and other have identical shape and cell values.
// Exact integer comparison; used for rebuild-idempotence checks.
// Complexity: O(r*c) time.
func (m *Dense) Equal(other *Dense) bool {
	if other == nil || m.r != other.r || m.c != other.c {
		return false
	}
	var k int
	for k = range m.data {
		if m.data[k] != other.data[k] {
			return false
		}
	}

	return true
}

// String implements fmt.Stringer for easy debugging.
// Complexity: O(r*c) for string construction.
func (m *Dense) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ { // iterate over rows
		sb.WriteByte('[')         // open row
		for j = 0; j < m.c; j++ { // iterate over columns
			// compute flat index directly for performance
			fmt.Fprintf(&sb, "%d", m.data[i*m.c+j])
			if j < m.c-1 {
				sb.WriteString(", ") // separate values with comma
			}
		}
		sb.WriteString("]\n") // close row
	}

	return sb.String()
}
