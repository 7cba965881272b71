// SPDX-License-Identifier: MIT

// Package render draws the co-authorship network over the world basemap as
// an SVG document.
//
// Element order is fixed and deterministic: basemap landmass rings first,
// then edges in upper-triangle column order, then locality nodes in column
// order, so identical inputs always produce byte-identical output. Edge
// stroke width and opacity scale linearly with the shared-manuscript count
// between the configured minimum and maximum, so heavy collaborations read
// as heavy lines.
//
// Styling goes through functional options (NewMap(..., WithEdgeColor(...)))
// with documented defaults; option constructors panic on nonsensical values,
// since a negative node radius is a programmer error, not input data.
package render
