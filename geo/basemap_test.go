// SPDX-License-Identifier: MIT

package geo_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lgcosmo/collaboration-network/geo"
)

const polygonBasemap = `{
  "type": "FeatureCollection",
  "features": [
    {
      "type": "Feature",
      "geometry": {
        "type": "Polygon",
        "coordinates": [[[0, 0], [10, 0], [10, 10], [0, 10], [0, 0]]]
      }
    },
    {
      "type": "Feature",
      "geometry": {
        "type": "MultiPolygon",
        "coordinates": [
          [[[20, 20], [25, 20], [25, 25], [20, 20]]],
          [[[30, 30], [35, 30], [35, 35], [30, 30]]]
        ]
      }
    }
  ]
}`

func TestLoadBasemap(t *testing.T) {
	fc, err := geo.LoadBasemap(strings.NewReader(polygonBasemap))
	require.NoError(t, err)
	require.Len(t, fc.Features, 2)

	// Polygon feature: one polygon, one ring, five positions.
	poly := fc.Features[0].Geometry
	require.Len(t, poly.Polygons, 1)
	require.Len(t, poly.Polygons[0], 1)
	require.Len(t, poly.Polygons[0][0], 5)
	require.Equal(t, geo.Coordinate{Lon: 10, Lat: 10}, poly.Polygons[0][0][2])

	// MultiPolygon feature: two polygons.
	mp := fc.Features[1].Geometry
	require.Len(t, mp.Polygons, 2)

	// Rings flattens across features and polygons: 1 + 2 = 3 rings.
	rings := fc.Rings()
	require.Len(t, rings, 3)
	require.Equal(t, geo.Coordinate{Lon: 20, Lat: 20}, rings[1][0])
}

func TestLoadBasemap_Errors(t *testing.T) {
	// Not JSON at all.
	_, err := geo.LoadBasemap(strings.NewReader("not geojson"))
	require.Error(t, err)

	// Empty collection.
	_, err = geo.LoadBasemap(strings.NewReader(`{"type":"FeatureCollection","features":[]}`))
	require.ErrorIs(t, err, geo.ErrEmptyBasemap)

	// Unsupported geometry, error names the feature and the type.
	_, err = geo.LoadBasemap(strings.NewReader(`{
	  "type": "FeatureCollection",
	  "features": [{"type":"Feature","geometry":{"type":"Point","coordinates":[1,2]}}]
	}`))
	require.ErrorIs(t, err, geo.ErrUnsupportedGeometry)
	require.Contains(t, err.Error(), `"Point"`)

	// Polygon with malformed ring positions.
	_, err = geo.LoadBasemap(strings.NewReader(`{
	  "type": "FeatureCollection",
	  "features": [{"type":"Feature","geometry":{"type":"Polygon","coordinates":[[["x","y"]]]}}]
	}`))
	require.ErrorIs(t, err, geo.ErrMalformedGeometry)
}
