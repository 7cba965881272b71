// SPDX-License-Identifier: MIT

// Package geo holds the geographic side of the pipeline: per-locality
// WGS84 coordinates aligned with the participation table's column order, and
// the world basemap decoded from GeoJSON polygon features.
//
// Coordinates are plain degree pairs; projection into canvas space lives in
// package layout. The basemap decoder accepts Polygon and MultiPolygon
// geometries only and fails fast on anything else, so a malformed basemap is
// caught before any rendering happens.
package geo
