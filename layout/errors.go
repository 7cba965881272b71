// SPDX-License-Identifier: MIT
// Package layout: sentinel error set.

package layout

import "errors"

var (
	// ErrBadCanvas indicates a non-positive canvas size or negative padding,
	// or padding that leaves no drawable area.
	ErrBadCanvas = errors.New("layout: bad canvas geometry")

	// ErrDimensionMismatch indicates an adjacency matrix whose dimension
	// disagrees with the coordinate table length.
	ErrDimensionMismatch = errors.New("layout: adjacency and coordinates dimension mismatch")

	// ErrLayoutStopped indicates the stop channel fired before positions
	// were produced.
	ErrLayoutStopped = errors.New("layout: layout stopped")

	// ErrNilInput indicates a nil adjacency matrix or coordinate table.
	ErrNilInput = errors.New("layout: nil input")
)
