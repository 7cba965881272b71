// SPDX-License-Identifier: MIT
// Package render: Map assembles the validated, projected render input.

package render

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/lgcosmo/collaboration-network/coauthor"
	"github.com/lgcosmo/collaboration-network/geo"
	"github.com/lgcosmo/collaboration-network/layout"
)

// Map is the immutable render input: the network, its geography, and the
// canvas positions computed once at construction.
type Map struct {
	net     *coauthor.Network
	coords  *geo.CoordinateTable
	basemap *geo.FeatureCollection
	style   Style

	proj *layout.Projection
	pos  *mat.Dense // n×2 canvas positions, row order = column order
}

// NewMap validates inputs, aligns geography with the network, and projects
// every locality onto the canvas.
// Stage 1 (Validate): non-nil inputs; coordinate rows must match network
// localities one-to-one in order (same semantics as dataset.AlignCoordinates,
// surfacing ErrMisaligned).
// Stage 2 (Prepare): projection over the union of basemap and locality
// bounds, so landmasses and nodes share one coordinate frame.
// Stage 3 (Execute): geographic layout via the layout.Renderer seam.
// Complexity: O(C² + basemap positions).
func NewMap(n *coauthor.Network, coords *geo.CoordinateTable, basemap *geo.FeatureCollection, opts ...StyleOption) (*Map, error) {
	// Validate presence
	if n == nil {
		return nil, fmt.Errorf("NewMap: %w", ErrNilNetwork)
	}
	if coords == nil {
		return nil, fmt.Errorf("NewMap: %w", ErrNilCoordinates)
	}
	if basemap == nil {
		return nil, fmt.Errorf("NewMap: %w", ErrNilBasemap)
	}

	// Validate alignment: count, then name/order.
	if n.LocalityCount() != coords.Len() {
		return nil, fmt.Errorf("NewMap: %d localities vs %d coordinate rows: %w",
			n.LocalityCount(), coords.Len(), ErrMisaligned)
	}
	names := n.Localities()
	var i int
	for i = range names {
		if names[i] != coords.Names[i] {
			return nil, fmt.Errorf("NewMap: position %d: locality %q vs coordinate row %q: %w",
				i, names[i], coords.Names[i], ErrMisaligned)
		}
	}

	style := NewStyle(opts...)

	// Projection over combined bounds.
	bounds, err := coords.Bounds()
	if err != nil {
		return nil, fmt.Errorf("NewMap: %w", err)
	}
	bounds = expandBounds(bounds, basemap)
	proj, err := layout.NewProjection(style.width, style.height, style.pad, bounds)
	if err != nil {
		return nil, fmt.Errorf("NewMap: %w", err)
	}

	// Geographic layout through the Renderer seam.
	adj, err := layout.AdjacencyDense(n.Adj)
	if err != nil {
		return nil, fmt.Errorf("NewMap: %w", err)
	}
	pos, err := layout.Geographic(proj)(adj, coords, nil)
	if err != nil {
		return nil, fmt.Errorf("NewMap: %w", err)
	}

	return &Map{net: n, coords: coords, basemap: basemap, style: style, proj: proj, pos: pos}, nil
}

// expandBounds grows b to also cover every basemap ring position.
func expandBounds(b geo.Bounds, fc *geo.FeatureCollection) geo.Bounds {
	var ring []geo.Coordinate
	var c geo.Coordinate
	for _, ring = range fc.Rings() {
		for _, c = range ring {
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
	}

	return b
}

// Position returns the canvas position of the locality at column index i.
func (m *Map) Position(i int) (x, y float64) {
	return m.pos.At(i, 0), m.pos.At(i, 1)
}
