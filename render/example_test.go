package render_test

import (
	"fmt"
	"strings"

	"github.com/lgcosmo/collaboration-network/coauthor"
	"github.com/lgcosmo/collaboration-network/dataset"
	"github.com/lgcosmo/collaboration-network/geo"
	"github.com/lgcosmo/collaboration-network/render"
)

// ExampleNewMap runs the whole pipeline: CSV inputs to SVG overlay.
func ExampleNewMap() {
	participation := "Manaus,Belem,Macapa\n1,1,0\n0,1,2\n"
	coordinates := "name,lon,lat\nManaus,-60.02,-3.10\nBelem,-48.50,-1.45\nMacapa,-51.07,0.03\n"
	basemap := `{"type":"FeatureCollection","features":[
	  {"type":"Feature","geometry":{"type":"Polygon",
	   "coordinates":[[[-75,-15],[-35,-15],[-35,5],[-75,5],[-75,-15]]]}}]}`

	// 1) Ingest and cross-validate the two tables:
	tbl, err := dataset.LoadParticipation(strings.NewReader(participation))
	if err != nil {
		fmt.Println("participation:", err)
		return
	}
	coords, err := dataset.LoadCoordinates(strings.NewReader(coordinates))
	if err != nil {
		fmt.Println("coordinates:", err)
		return
	}
	if err = dataset.AlignCoordinates(tbl, coords); err != nil {
		fmt.Println("alignment:", err)
		return
	}

	// 2) Build the network:
	n, err := coauthor.NewNetwork(tbl)
	if err != nil {
		fmt.Println("network:", err)
		return
	}

	// 3) Overlay it on the basemap:
	world, err := geo.LoadBasemap(strings.NewReader(basemap))
	if err != nil {
		fmt.Println("basemap:", err)
		return
	}
	m, err := render.NewMap(n, coords, world)
	if err != nil {
		fmt.Println("map:", err)
		return
	}

	var svg strings.Builder
	if err = m.WriteSVG(&svg); err != nil {
		fmt.Println("svg:", err)
		return
	}

	fmt.Println("edges:", len(n.Edges()))
	fmt.Println("svg document:", strings.HasPrefix(svg.String(), "<svg"))

	// Output:
	// edges: 2
	// svg document: true
}
