// SPDX-License-Identifier: MIT
// Package render: SVG writer.

package render

import (
	"fmt"
	"io"

	"github.com/lgcosmo/collaboration-network/coauthor"
	"github.com/lgcosmo/collaboration-network/geo"
)

// WriteSVG renders the map to w as a standalone SVG document.
// Element order is fixed: ocean rectangle, basemap rings, edges in
// upper-triangle column order, nodes in column order. Identical inputs
// produce byte-identical documents.
// Any write error aborts immediately; no partial recovery.
// Complexity: O(C² + basemap positions).
func (m *Map) WriteSVG(w io.Writer) error {
	ew := &errWriter{w: w}

	// Document header and ocean background.
	ew.printf("<svg xmlns=\"http://www.w3.org/2000/svg\" width=\"%g\" height=\"%g\" viewBox=\"0 0 %g %g\">\n",
		m.style.width, m.style.height, m.style.width, m.style.height)
	ew.printf("  <rect width=\"%g\" height=\"%g\" fill=\"%s\"/>\n",
		m.style.width, m.style.height, m.style.oceanColor)

	// Landmass rings.
	var ring []geo.Coordinate
	for _, ring = range m.basemap.Rings() {
		m.writeRing(ew, ring)
	}

	// Edges, width and opacity scaled across the observed weight range.
	edges := m.net.Edges()
	minW, maxW := weightRange(edges)
	var e coauthor.Edge
	for _, e = range edges {
		ia, _ := m.net.Index(e.A) // names come from the network itself
		ib, _ := m.net.Index(e.B)
		x1, y1 := m.Position(ia)
		x2, y2 := m.Position(ib)
		width := interpolate(e.Weight, minW, maxW, m.style.minEdgeWidth, m.style.maxEdgeWidth)
		opacity := interpolate(e.Weight, minW, maxW, m.style.minEdgeOp, m.style.maxEdgeOp)
		ew.printf("  <line x1=\"%.2f\" y1=\"%.2f\" x2=\"%.2f\" y2=\"%.2f\" stroke=\"%s\" stroke-width=\"%.2f\" stroke-opacity=\"%.2f\"/>\n",
			x1, y1, x2, y2, m.style.edgeColor, width, opacity)
	}

	// Locality nodes, isolated ones included.
	var i int
	for i = 0; i < m.net.LocalityCount(); i++ {
		x, y := m.Position(i)
		ew.printf("  <circle cx=\"%.2f\" cy=\"%.2f\" r=\"%g\" fill=\"%s\"/>\n",
			x, y, m.style.nodeRadius, m.style.nodeColor)
	}

	ew.printf("</svg>\n")

	return ew.err
}

// writeRing emits one closed landmass outline as a polygon element.
func (m *Map) writeRing(ew *errWriter, ring []geo.Coordinate) {
	if len(ring) == 0 {
		return
	}
	ew.printf("  <polygon fill=\"%s\" stroke=\"none\" points=\"", m.style.landColor)
	var k int
	var x, y float64
	for k = range ring {
		x, y = m.proj.Project(ring[k])
		if k > 0 {
			ew.printf(" ")
		}
		ew.printf("%.2f,%.2f", x, y)
	}
	ew.printf("\"/>\n")
}

// weightRange returns the min and max edge weight; zeros when no edges.
func weightRange(edges []coauthor.Edge) (minW, maxW int64) {
	if len(edges) == 0 {
		return 0, 0
	}
	minW, maxW = edges[0].Weight, edges[0].Weight
	var e coauthor.Edge
	for _, e = range edges[1:] {
		if e.Weight < minW {
			minW = e.Weight
		}
		if e.Weight > maxW {
			maxW = e.Weight
		}
	}

	return minW, maxW
}

// interpolate maps w from [minW, maxW] into [lo, hi] linearly.
// A collapsed weight range maps everything to hi: a network whose edges all
// carry the same weight renders them all at full strength.
func interpolate(w, minW, maxW int64, lo, hi float64) float64 {
	if maxW == minW {
		return hi
	}

	frac := float64(w-minW) / float64(maxW-minW)

	return lo + frac*(hi-lo)
}

// errWriter folds repeated fmt.Fprintf error handling into one sticky error.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...any) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}
