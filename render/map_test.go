// SPDX-License-Identifier: MIT

package render_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lgcosmo/collaboration-network/coauthor"
	"github.com/lgcosmo/collaboration-network/geo"
	"github.com/lgcosmo/collaboration-network/render"
)

const testBasemap = `{
  "type": "FeatureCollection",
  "features": [
    {
      "type": "Feature",
      "geometry": {
        "type": "Polygon",
        "coordinates": [[[-70, -10], [-40, -10], [-40, 10], [-70, 10], [-70, -10]]]
      }
    }
  ]
}`

// fixtures builds a two-edge network with aligned coordinates and a one
// polygon basemap.
func fixtures(t *testing.T) (*coauthor.Network, *geo.CoordinateTable, *geo.FeatureCollection) {
	t.Helper()

	tbl, err := coauthor.NewParticipationTable(
		[]string{"Manaus", "Belem", "Macapa"},
		[][]int64{
			{1, 1, 0},
			{1, 1, 0},
			{0, 1, 2},
		},
	)
	require.NoError(t, err)
	n, err := coauthor.NewNetwork(tbl)
	require.NoError(t, err)

	coords, err := geo.NewCoordinateTable(
		[]string{"Manaus", "Belem", "Macapa"},
		[]geo.Coordinate{
			{Lon: -60.02, Lat: -3.10},
			{Lon: -48.50, Lat: -1.45},
			{Lon: -51.07, Lat: 0.03},
		},
	)
	require.NoError(t, err)

	basemap, err := geo.LoadBasemap(strings.NewReader(testBasemap))
	require.NoError(t, err)

	return n, coords, basemap
}

func TestNewMap_Validation(t *testing.T) {
	n, coords, basemap := fixtures(t)

	_, err := render.NewMap(nil, coords, basemap)
	require.ErrorIs(t, err, render.ErrNilNetwork)

	_, err = render.NewMap(n, nil, basemap)
	require.ErrorIs(t, err, render.ErrNilCoordinates)

	_, err = render.NewMap(n, coords, nil)
	require.ErrorIs(t, err, render.ErrNilBasemap)

	// Coordinate table for different localities.
	other, err := geo.NewCoordinateTable(
		[]string{"Manaus", "Santarem", "Macapa"},
		[]geo.Coordinate{{Lon: -60, Lat: -3}, {Lon: -54, Lat: -2}, {Lon: -51, Lat: 0}},
	)
	require.NoError(t, err)
	_, err = render.NewMap(n, other, basemap)
	require.ErrorIs(t, err, render.ErrMisaligned)
	require.Contains(t, err.Error(), "position 1")

	// Short coordinate table: count mismatch, never truncation.
	short, err := geo.NewCoordinateTable(
		[]string{"Manaus", "Belem"},
		[]geo.Coordinate{{Lon: -60, Lat: -3}, {Lon: -48, Lat: -1}},
	)
	require.NoError(t, err)
	_, err = render.NewMap(n, short, basemap)
	require.ErrorIs(t, err, render.ErrMisaligned)
}

func TestWriteSVG(t *testing.T) {
	n, coords, basemap := fixtures(t)

	m, err := render.NewMap(n, coords, basemap)
	require.NoError(t, err)

	var sb strings.Builder
	require.NoError(t, m.WriteSVG(&sb))
	svg := sb.String()

	// One landmass polygon, two edges, three nodes.
	require.Contains(t, svg, "<svg xmlns=")
	require.Equal(t, 1, strings.Count(svg, "<polygon"))
	require.Equal(t, 2, strings.Count(svg, "<line"))
	require.Equal(t, 3, strings.Count(svg, "<circle"))
	require.True(t, strings.HasSuffix(svg, "</svg>\n"))

	// The heavier Manaus-Belem edge (weight 2) renders at the max width,
	// the lighter Belem-Macapa edge (weight 1) at the min.
	require.Contains(t, svg, `stroke-width="4.00"`)
	require.Contains(t, svg, `stroke-width="0.60"`)
}

func TestWriteSVG_Deterministic(t *testing.T) {
	n, coords, basemap := fixtures(t)

	m, err := render.NewMap(n, coords, basemap)
	require.NoError(t, err)

	var a, b strings.Builder
	require.NoError(t, m.WriteSVG(&a))
	require.NoError(t, m.WriteSVG(&b))
	require.Equal(t, a.String(), b.String())
}

func TestWriteSVG_UniformWeightsRenderAtMax(t *testing.T) {
	// All edges share one weight: the collapsed range maps to max strength.
	tbl, err := coauthor.NewParticipationTable(
		[]string{"A", "B"},
		[][]int64{{1, 1}},
	)
	require.NoError(t, err)
	n, err := coauthor.NewNetwork(tbl)
	require.NoError(t, err)

	coords, err := geo.NewCoordinateTable(
		[]string{"A", "B"},
		[]geo.Coordinate{{Lon: -60, Lat: -3}, {Lon: -48, Lat: -1}},
	)
	require.NoError(t, err)
	basemap, err := geo.LoadBasemap(strings.NewReader(testBasemap))
	require.NoError(t, err)

	m, err := render.NewMap(n, coords, basemap)
	require.NoError(t, err)

	var sb strings.Builder
	require.NoError(t, m.WriteSVG(&sb))
	require.Contains(t, sb.String(), `stroke-width="4.00"`)
	require.Contains(t, sb.String(), `stroke-opacity="0.90"`)
}

func TestWriteSVG_Styled(t *testing.T) {
	n, coords, basemap := fixtures(t)

	m, err := render.NewMap(n, coords, basemap,
		render.WithCanvas(400, 200),
		render.WithEdgeColor("#000000"),
		render.WithNodeRadius(5),
	)
	require.NoError(t, err)

	var sb strings.Builder
	require.NoError(t, m.WriteSVG(&sb))
	require.Contains(t, sb.String(), `width="400" height="200"`)
	require.Contains(t, sb.String(), `stroke="#000000"`)
	require.Contains(t, sb.String(), `r="5"`)
}

func TestStyleOptions_Panics(t *testing.T) {
	require.Panics(t, func() { render.WithCanvas(0, 100) })
	require.Panics(t, func() { render.WithPad(-1) })
	require.Panics(t, func() { render.WithNodeRadius(0) })
	require.Panics(t, func() { render.WithEdgeWidthRange(2, 1) })
	require.Panics(t, func() { render.WithEdgeOpacityRange(0.5, 1.5) })
	require.Panics(t, func() { render.WithEdgeColor("") })
}
