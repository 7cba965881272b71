// SPDX-License-Identifier: MIT
// Package dataset: participation CSV loader.

package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/lgcosmo/collaboration-network/coauthor"
)

// LoadParticipation reads a participation CSV: a header row of locality
// names followed by one row per manuscript of non-negative integer author
// counts.
// Stage 1 (Execute): read all records (csv.Reader already rejects ragged
// rows; the sentinel is normalized to ErrRaggedRow).
// Stage 2 (Validate): non-empty header.
// Stage 3 (Execute): parse cells, rejecting non-numeric or negative values
// with the row and locality named.
// Stage 4 (Finalize): delegate structural validation to
// coauthor.NewParticipationTable.
// Complexity: O(R·C).
func LoadParticipation(r io.Reader) (*coauthor.ParticipationTable, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		// csv.ErrFieldCount carries the line number already.
		return nil, fmt.Errorf("LoadParticipation: %w: %v", ErrRaggedRow, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("LoadParticipation: %w", ErrEmptyTable)
	}

	header := trimAll(records[0])

	// Parse data rows into int64 counts.
	rows := make([][]int64, 0, len(records)-1)
	var (
		i, j int
		rec  []string
		cell string
		v    int64
	)
	for i, rec = range records[1:] {
		row := make([]int64, len(rec))
		for j, cell = range rec {
			v, err = strconv.ParseInt(strings.TrimSpace(cell), 10, 64)
			if err != nil {
				return nil, fmt.Errorf("LoadParticipation: manuscript %d, column %q: %q: %w",
					i+1, header[j], cell, ErrBadCell)
			}
			if v < 0 {
				return nil, fmt.Errorf("LoadParticipation: manuscript %d, column %q: %d: %w",
					i+1, header[j], v, ErrBadCell)
			}
			row[j] = v
		}
		rows = append(rows, row)
	}

	tbl, err := coauthor.NewParticipationTable(header, rows)
	if err != nil {
		return nil, fmt.Errorf("LoadParticipation: %w", err)
	}

	return tbl, nil
}

// trimAll returns a copy of fields with surrounding whitespace removed.
func trimAll(fields []string) []string {
	out := make([]string, len(fields))
	for i, f := range fields {
		out[i] = strings.TrimSpace(f)
	}

	return out
}
