// SPDX-License-Identifier: MIT
// Package geo: sentinel error set, matched by callers via errors.Is.

package geo

import "errors"

var (
	// ErrLengthMismatch indicates names and coordinates of unequal length.
	ErrLengthMismatch = errors.New("geo: names and coordinates length mismatch")

	// ErrCoordinateRange indicates a longitude outside [-180, 180] or a
	// latitude outside [-90, 90].
	ErrCoordinateRange = errors.New("geo: coordinate out of range")

	// ErrEmptyTable indicates a coordinate table with zero localities.
	ErrEmptyTable = errors.New("geo: empty coordinate table")

	// ErrEmptyBasemap indicates a feature collection with no features.
	ErrEmptyBasemap = errors.New("geo: empty basemap")

	// ErrUnsupportedGeometry indicates a basemap feature that is neither
	// Polygon nor MultiPolygon.
	ErrUnsupportedGeometry = errors.New("geo: unsupported geometry type")

	// ErrMalformedGeometry indicates a ring position without both
	// longitude and latitude.
	ErrMalformedGeometry = errors.New("geo: malformed geometry position")
)
