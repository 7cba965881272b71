// SPDX-License-Identifier: MIT
// Package dataset: coordinate CSV loader and the participation/coordinate
// alignment guard.

package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/lgcosmo/collaboration-network/coauthor"
	"github.com/lgcosmo/collaboration-network/geo"
)

// Expected coordinate header, fixed rather than detected.
var coordinateHeader = []string{"name", "lon", "lat"}

// LoadCoordinates reads a coordinate CSV with a fixed "name,lon,lat" header
// and one row per locality, in the same order as the participation table's
// columns.
// Stage 1 (Validate): exact header match (case-insensitive), so a file with
// swapped columns fails here instead of producing mirrored geometry.
// Stage 2 (Execute): parse lon/lat floats, error naming the row.
// Stage 3 (Finalize): range validation via geo.NewCoordinateTable.
// Errors: ErrEmptyTable, ErrBadHeader, ErrRaggedRow, ErrBadCell, plus geo
// sentinels.
// Complexity: O(C).
func LoadCoordinates(r io.Reader) (*geo.CoordinateTable, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("LoadCoordinates: %w: %v", ErrRaggedRow, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("LoadCoordinates: %w", ErrEmptyTable)
	}

	// Validate the fixed header
	header := trimAll(records[0])
	if len(header) != len(coordinateHeader) {
		return nil, fmt.Errorf("LoadCoordinates: %d header fields, want %d: %w",
			len(header), len(coordinateHeader), ErrBadHeader)
	}
	for i := range coordinateHeader {
		if !strings.EqualFold(header[i], coordinateHeader[i]) {
			return nil, fmt.Errorf("LoadCoordinates: header field %d is %q, want %q: %w",
				i, header[i], coordinateHeader[i], ErrBadHeader)
		}
	}
	if len(records) == 1 {
		return nil, fmt.Errorf("LoadCoordinates: no locality rows: %w", ErrEmptyTable)
	}

	// Parse locality rows
	names := make([]string, 0, len(records)-1)
	coords := make([]geo.Coordinate, 0, len(records)-1)
	var (
		i        int
		rec      []string
		lon, lat float64
	)
	for i, rec = range records[1:] {
		lon, err = strconv.ParseFloat(strings.TrimSpace(rec[1]), 64)
		if err != nil {
			return nil, fmt.Errorf("LoadCoordinates: row %d lon %q: %w", i+1, rec[1], ErrBadCell)
		}
		lat, err = strconv.ParseFloat(strings.TrimSpace(rec[2]), 64)
		if err != nil {
			return nil, fmt.Errorf("LoadCoordinates: row %d lat %q: %w", i+1, rec[2], ErrBadCell)
		}
		names = append(names, strings.TrimSpace(rec[0]))
		coords = append(coords, geo.Coordinate{Lon: lon, Lat: lat})
	}

	tbl, err := geo.NewCoordinateTable(names, coords)
	if err != nil {
		return nil, fmt.Errorf("LoadCoordinates: %w", err)
	}

	return tbl, nil
}

// AlignCoordinates verifies that coordinate rows match participation columns
// one-to-one: same count, same names, same order. A mismatch is an error
// here, never a silent truncation downstream.
// Errors: ErrAlignment identifying the first divergence.
// Complexity: O(C).
func AlignCoordinates(t *coauthor.ParticipationTable, c *geo.CoordinateTable) error {
	if t.LocalityCount() != c.Len() {
		return fmt.Errorf("AlignCoordinates: %d participation columns vs %d coordinate rows: %w",
			t.LocalityCount(), c.Len(), ErrAlignment)
	}

	var i int
	for i = range t.Localities {
		if t.Localities[i] != c.Names[i] {
			return fmt.Errorf("AlignCoordinates: position %d: column %q vs coordinate row %q: %w",
				i, t.Localities[i], c.Names[i], ErrAlignment)
		}
	}

	return nil
}
