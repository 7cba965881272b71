// SPDX-License-Identifier: MIT
// Package render: sentinel error set.

package render

import "errors"

var (
	// ErrNilNetwork indicates a nil network argument.
	ErrNilNetwork = errors.New("render: nil network")

	// ErrNilCoordinates indicates a nil coordinate table argument.
	ErrNilCoordinates = errors.New("render: nil coordinate table")

	// ErrNilBasemap indicates a nil basemap argument.
	ErrNilBasemap = errors.New("render: nil basemap")

	// ErrMisaligned indicates a coordinate table whose rows do not match the
	// network's localities one-to-one in order.
	ErrMisaligned = errors.New("render: network and coordinates misaligned")
)
