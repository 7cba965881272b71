// SPDX-License-Identifier: MIT
// Package geo: GeoJSON basemap decoding (Polygon / MultiPolygon only).

package geo

import (
	"encoding/json"
	"fmt"
	"io"
)

// GeoJSON geometry type names accepted by the basemap decoder.
const (
	geomPolygon      = "Polygon"
	geomMultiPolygon = "MultiPolygon"
)

// Geometry is a decoded GeoJSON geometry restricted to polygon shapes.
// Polygons holds one ring set per polygon: Polygons[p][r] is ring r of
// polygon p, each position already converted to a Coordinate.
type Geometry struct {
	Type     string // geomPolygon or geomMultiPolygon
	Polygons [][][]Coordinate
}

// Feature is one basemap feature, typically a country or landmass outline.
type Feature struct {
	Geometry Geometry
}

// FeatureCollection is the decoded world basemap.
type FeatureCollection struct {
	Features []Feature
}

// rawGeometry mirrors the GeoJSON wire shape; coordinates stay raw until the
// geometry type is known.
type rawGeometry struct {
	Type        string          `json:"type"`
	Coordinates json.RawMessage `json:"coordinates"`
}

type rawFeature struct {
	Type     string      `json:"type"`
	Geometry rawGeometry `json:"geometry"`
}

type rawCollection struct {
	Type     string       `json:"type"`
	Features []rawFeature `json:"features"`
}

// LoadBasemap decodes a GeoJSON FeatureCollection of polygon features.
// Stage 1 (Execute): decode the wire structure.
// Stage 2 (Validate): non-empty collection, supported geometry types.
// Stage 3 (Execute): convert ring positions to Coordinates.
// Errors: ErrEmptyBasemap, ErrUnsupportedGeometry (naming the feature index
// and type), ErrMalformedGeometry, plus JSON decode errors.
// Complexity: O(total positions).
func LoadBasemap(r io.Reader) (*FeatureCollection, error) {
	var raw rawCollection
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("LoadBasemap: decode: %w", err)
	}
	if len(raw.Features) == 0 {
		return nil, fmt.Errorf("LoadBasemap: %w", ErrEmptyBasemap)
	}

	fc := &FeatureCollection{Features: make([]Feature, 0, len(raw.Features))}
	var (
		i    int
		rf   rawFeature
		geom Geometry
		err  error
	)
	for i, rf = range raw.Features {
		switch rf.Geometry.Type {
		case geomPolygon:
			var rings [][][2]float64
			if err = json.Unmarshal(rf.Geometry.Coordinates, &rings); err != nil {
				return nil, fmt.Errorf("LoadBasemap: feature %d: %w: %v", i, ErrMalformedGeometry, err)
			}
			geom = Geometry{Type: geomPolygon, Polygons: [][][]Coordinate{convertRings(rings)}}
		case geomMultiPolygon:
			var polys [][][][2]float64
			if err = json.Unmarshal(rf.Geometry.Coordinates, &polys); err != nil {
				return nil, fmt.Errorf("LoadBasemap: feature %d: %w: %v", i, ErrMalformedGeometry, err)
			}
			sets := make([][][]Coordinate, len(polys))
			for p := range polys {
				sets[p] = convertRings(polys[p])
			}
			geom = Geometry{Type: geomMultiPolygon, Polygons: sets}
		default:
			return nil, fmt.Errorf("LoadBasemap: feature %d: %q: %w",
				i, rf.Geometry.Type, ErrUnsupportedGeometry)
		}
		fc.Features = append(fc.Features, Feature{Geometry: geom})
	}

	return fc, nil
}

// convertRings maps raw [lon, lat] positions to Coordinates for one polygon.
func convertRings(rings [][][2]float64) [][]Coordinate {
	out := make([][]Coordinate, len(rings))
	var r, k int
	for r = range rings {
		ring := make([]Coordinate, len(rings[r]))
		for k = range rings[r] {
			ring[k] = Coordinate{Lon: rings[r][k][0], Lat: rings[r][k][1]}
		}
		out[r] = ring
	}

	return out
}

// Rings flattens every polygon outline in the collection into a single
// slice of rings, in feature then polygon then ring order. Used by the
// renderer to draw landmasses without caring about feature structure.
// Complexity: O(total rings).
func (fc *FeatureCollection) Rings() [][]Coordinate {
	var out [][]Coordinate
	var f Feature
	for _, f = range fc.Features {
		for _, poly := range f.Geometry.Polygons {
			out = append(out, poly...)
		}
	}

	return out
}
