// SPDX-License-Identifier: MIT
// Package layout: projection and the geographic layout engine.

package layout

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/lgcosmo/collaboration-network/geo"
	"github.com/lgcosmo/collaboration-network/matrix"
)

// Renderer turns an adjacency matrix and per-node geography into an n×2
// matrix of canvas positions (column 0 = x, column 1 = y). Engines that
// iterate should watch stop and return ErrLayoutStopped when it fires.
type Renderer func(adj *mat.Dense, coords *geo.CoordinateTable, stop <-chan struct{}) (*mat.Dense, error)

// Projection maps WGS84 coordinates onto a padded canvas, equirectangular
// with the y axis flipped for screen space.
type Projection struct {
	Width, Height float64    // canvas size in output units
	Pad           float64    // uniform inner padding
	Bounds        geo.Bounds // geographic window being projected

	lonSpan, latSpan float64 // cached, never zero
}

// NewProjection validates canvas geometry and the geographic window.
// Stage 1 (Validate): positive canvas, non-negative padding that leaves a
// drawable area.
// Stage 2 (Prepare): degenerate bounds (a single point or a line) are
// expanded by one degree on the flat axis so projection stays defined.
// Errors: ErrBadCanvas.
// Complexity: O(1).
func NewProjection(width, height, pad float64, b geo.Bounds) (*Projection, error) {
	// Validate canvas geometry
	if width <= 0 || height <= 0 || pad < 0 {
		return nil, fmt.Errorf("NewProjection: %gx%g pad %g: %w", width, height, pad, ErrBadCanvas)
	}
	if 2*pad >= width || 2*pad >= height {
		return nil, fmt.Errorf("NewProjection: pad %g swallows canvas %gx%g: %w",
			pad, width, height, ErrBadCanvas)
	}

	// Expand flat axes so a single-locality dataset still projects.
	lonSpan := b.MaxLon - b.MinLon
	if lonSpan == 0 {
		b.MinLon -= 0.5
		b.MaxLon += 0.5
		lonSpan = 1
	}
	latSpan := b.MaxLat - b.MinLat
	if latSpan == 0 {
		b.MinLat -= 0.5
		b.MaxLat += 0.5
		latSpan = 1
	}

	return &Projection{
		Width: width, Height: height, Pad: pad,
		Bounds:  b,
		lonSpan: lonSpan, latSpan: latSpan,
	}, nil
}

// Project maps one coordinate into canvas space.
// Longitude grows rightward, latitude grows upward, so y is flipped.
// Coordinates outside Bounds project outside the padded area; callers that
// care clamp or widen the bounds.
// Complexity: O(1).
func (p *Projection) Project(c geo.Coordinate) (x, y float64) {
	innerW := p.Width - 2*p.Pad
	innerH := p.Height - 2*p.Pad

	x = p.Pad + (c.Lon-p.Bounds.MinLon)/p.lonSpan*innerW
	y = p.Pad + (p.Bounds.MaxLat-c.Lat)/p.latSpan*innerH

	return x, y
}

// Geographic returns a Renderer that places every node at its projected
// geographic coordinate.
// Stage 1 (Validate): non-nil inputs, square adjacency, dimension equal to
// the coordinate count.
// Stage 2 (Execute): single pass projecting each coordinate.
// Non-iterative; the stop channel is checked once up front.
// Errors: ErrNilInput, ErrDimensionMismatch, ErrLayoutStopped.
// Complexity: O(n).
func Geographic(p *Projection) Renderer {
	return func(adj *mat.Dense, coords *geo.CoordinateTable, stop <-chan struct{}) (*mat.Dense, error) {
		// Validate inputs
		if adj == nil || coords == nil {
			return nil, fmt.Errorf("Geographic: %w", ErrNilInput)
		}
		r, c := adj.Dims()
		if r != c || r != coords.Len() {
			return nil, fmt.Errorf("Geographic: adjacency %dx%d vs %d coordinates: %w",
				r, c, coords.Len(), ErrDimensionMismatch)
		}

		// Honor the stop contract even though nothing iterates.
		select {
		case <-stop:
			return nil, ErrLayoutStopped
		default:
		}

		// Execute projection
		pos := mat.NewDense(r, 2, nil)
		var i int
		var x, y float64
		for i = 0; i < r; i++ {
			x, y = p.Project(coords.Coords[i])
			pos.Set(i, 0, x)
			pos.Set(i, 1, y)
		}

		return pos, nil
	}
}

// AdjacencyDense bridges the integer adjacency matrix into the gonum form
// Renderer engines consume.
// Complexity: O(n²).
func AdjacencyDense(m *matrix.Dense) (*mat.Dense, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, fmt.Errorf("AdjacencyDense: %w", err)
	}

	r, c := m.Rows(), m.Cols()
	out := mat.NewDense(r, c, nil)
	var i, j int
	var v int64
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			// At cannot fail inside the loop bounds.
			v, _ = m.At(i, j)
			out.Set(i, j, float64(v))
		}
	}

	return out, nil
}
