// SPDX-License-Identifier: MIT
// Package dataset: sentinel error set for the ingestion surface.

package dataset

import "errors"

var (
	// ErrEmptyTable indicates an input with no header row or no data rows
	// where at least one was required.
	ErrEmptyTable = errors.New("dataset: empty table")

	// ErrBadHeader indicates a coordinate file whose header is not the
	// expected name,lon,lat triple.
	ErrBadHeader = errors.New("dataset: bad header")

	// ErrBadCell indicates a cell that failed numeric parsing or violated
	// the non-negative contract.
	ErrBadCell = errors.New("dataset: bad cell value")

	// ErrRaggedRow indicates a data row whose cell count differs from the
	// header.
	ErrRaggedRow = errors.New("dataset: ragged row")

	// ErrAlignment indicates participation columns and coordinate rows that
	// disagree in count, name, or order.
	ErrAlignment = errors.New("dataset: participation and coordinates misaligned")
)
