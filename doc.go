// Package collabnet turns a manuscript co-authorship dataset into a weighted
// locality network drawn over a world map.
//
// 🚀 What is collaboration-network?
//
//	A small, deterministic pipeline from two CSV tables to an SVG overlay:
//		• dataset/  - fail-fast ingestion of participation and coordinate tables
//		• coauthor/ - the core: participation rows → co-authorship adjacency matrix
//		• matrix/   - integer dense-matrix primitives and structural validators
//		• geo/      - WGS84 coordinates and GeoJSON polygon basemaps
//		• layout/   - equirectangular projection behind a pluggable Renderer seam
//		• render/   - styled SVG output (landmasses, weighted edges, locality nodes)
//
// The weight of an edge between two localities counts the manuscripts on
// which both placed at least one author; any positive author count marks
// participation and magnitude is discarded. Isolated localities keep their
// all-zero rows and still appear on the map.
//
// Everything is synchronous and pure: identical inputs produce bit-identical
// matrices and byte-identical SVG documents. Malformed input fails fast with
// a sentinel error naming the offending row, column, or locality; nothing is
// truncated or silently repaired.
//
// Quick sketch:
//
//	participation.csv ─┐
//	                   ├─► coauthor.NewNetwork ─► render.NewMap ─► WriteSVG
//	coordinates.csv  ──┤                              ▲
//	basemap.geojson  ──┴──────────────────────────────┘
//
// See the runnable examples in each package for end-to-end usage.
package collabnet
