// SPDX-License-Identifier: MIT
// Package geo: coordinate table aligned with participation columns.

package geo

import "fmt"

// WGS84 bounds, degrees.
const (
	MinLongitude = -180.0
	MaxLongitude = 180.0
	MinLatitude  = -90.0
	MaxLatitude  = 90.0
)

// Coordinate is one WGS84 position in degrees.
type Coordinate struct {
	Lon float64 // longitude, east positive
	Lat float64 // latitude, north positive
}

// Bounds is an axis-aligned lon/lat box.
type Bounds struct {
	MinLon, MinLat float64
	MaxLon, MaxLat float64
}

// CoordinateTable maps localities to positions, aligned by index with the
// participation table's column order. Built once, immutable afterward.
type CoordinateTable struct {
	Names  []string     // locality names, in participation column order
	Coords []Coordinate // one position per locality
}

// NewCoordinateTable validates and assembles a coordinate table.
// Stage 1 (Validate): equal lengths, at least one locality.
// Stage 2 (Validate): every position inside WGS84 bounds.
// Stage 3 (Finalize): copy both slices and return.
// Errors: ErrEmptyTable, ErrLengthMismatch, ErrCoordinateRange (naming the
// offending locality).
// Complexity: O(C) time and memory.
func NewCoordinateTable(names []string, coords []Coordinate) (*CoordinateTable, error) {
	// Validate presence
	if len(names) == 0 {
		return nil, fmt.Errorf("NewCoordinateTable: %w", ErrEmptyTable)
	}
	// Validate alignment
	if len(names) != len(coords) {
		return nil, fmt.Errorf("NewCoordinateTable: %d names vs %d coordinates: %w",
			len(names), len(coords), ErrLengthMismatch)
	}

	// Validate ranges
	var i int
	var c Coordinate
	for i, c = range coords {
		if c.Lon < MinLongitude || c.Lon > MaxLongitude ||
			c.Lat < MinLatitude || c.Lat > MaxLatitude {
			return nil, fmt.Errorf("NewCoordinateTable: locality %q (%g, %g): %w",
				names[i], c.Lon, c.Lat, ErrCoordinateRange)
		}
	}

	// Finalize with defensive copies
	n := make([]string, len(names))
	copy(n, names)
	p := make([]Coordinate, len(coords))
	copy(p, coords)

	return &CoordinateTable{Names: n, Coords: p}, nil
}

// Len returns the number of localities in the table.
func (t *CoordinateTable) Len() int {
	return len(t.Names)
}

// Bounds returns the axis-aligned box enclosing every coordinate.
// Complexity: O(C).
func (t *CoordinateTable) Bounds() (Bounds, error) {
	if t.Len() == 0 {
		return Bounds{}, fmt.Errorf("Bounds: %w", ErrEmptyTable)
	}

	b := Bounds{
		MinLon: t.Coords[0].Lon, MaxLon: t.Coords[0].Lon,
		MinLat: t.Coords[0].Lat, MaxLat: t.Coords[0].Lat,
	}
	var c Coordinate
	for _, c = range t.Coords[1:] {
		if c.Lon < b.MinLon {
			b.MinLon = c.Lon
		}
		if c.Lon > b.MaxLon {
			b.MaxLon = c.Lon
		}
		if c.Lat < b.MinLat {
			b.MinLat = c.Lat
		}
		if c.Lat > b.MaxLat {
			b.MaxLat = c.Lat
		}
	}

	return b, nil
}
