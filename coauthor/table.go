// SPDX-License-Identifier: MIT
// Package coauthor: ParticipationTable, the validated ingestion product the
// builder consumes.

package coauthor

import (
	"fmt"

	"github.com/lgcosmo/collaboration-network/matrix"
)

// ParticipationTable holds the manuscript×locality author counts.
// Localities gives the column order; Counts is an R×C matrix whose rows are
// manuscripts. Both are fixed at construction.
type ParticipationTable struct {
	Localities []string      // column names, in table order
	Counts     *matrix.Dense // R manuscripts × C localities, non-negative
}

// NewParticipationTable validates and assembles a participation table.
// Stage 1 (Validate): non-empty, unique, non-blank locality names.
// Stage 2 (Validate): rectangular rows matching the locality count.
// Stage 3 (Execute): copy rows into a Dense and reject negative counts.
// Stage 4 (Finalize): return the immutable table.
//
// A table with zero manuscript rows is legal: every locality is simply
// isolated. Errors: ErrNoLocalities, ErrEmptyLocality, ErrDuplicateLocality,
// ErrColumnMismatch, ErrNegativeCount.
// Complexity: O(R·C) time and memory.
func NewParticipationTable(localities []string, rows [][]int64) (*ParticipationTable, error) {
	// Validate column presence
	if len(localities) == 0 {
		return nil, ErrNoLocalities
	}

	// Validate column names: non-blank and unique
	seen := make(map[string]struct{}, len(localities))
	var j int
	var name string
	for j, name = range localities {
		if name == "" {
			return nil, fmt.Errorf("NewParticipationTable: column %d: %w", j, ErrEmptyLocality)
		}
		if _, dup := seen[name]; dup {
			return nil, fmt.Errorf("NewParticipationTable: column %d (%q): %w", j, name, ErrDuplicateLocality)
		}
		seen[name] = struct{}{}
	}

	// Freeze the column order; callers may reuse their slice.
	cols := make([]string, len(localities))
	copy(cols, localities)

	t := &ParticipationTable{Localities: cols}
	if len(rows) == 0 {
		// No manuscripts: Counts stays nil, ManuscriptCount() reports 0.
		return t, nil
	}

	// Validate rectangularity before touching matrix storage so the error
	// names the offending manuscript row, not a flat index.
	var i int
	var row []int64
	for i, row = range rows {
		if len(row) != len(cols) {
			return nil, fmt.Errorf("NewParticipationTable: manuscript %d has %d cells, want %d: %w",
				i, len(row), len(cols), ErrColumnMismatch)
		}
		for j = range row {
			if row[j] < 0 {
				return nil, fmt.Errorf("NewParticipationTable: manuscript %d, locality %q: count %d: %w",
					i, cols[j], row[j], ErrNegativeCount)
			}
		}
	}

	counts, err := matrix.NewDenseFromRows(rows)
	if err != nil {
		return nil, fmt.Errorf("NewParticipationTable: %w", err)
	}
	t.Counts = counts

	return t, nil
}

// ManuscriptCount returns the number of manuscript rows.
// Complexity: O(1).
func (t *ParticipationTable) ManuscriptCount() int {
	if t.Counts == nil {
		return 0
	}

	return t.Counts.Rows()
}

// LocalityCount returns the number of locality columns.
// Complexity: O(1).
func (t *ParticipationTable) LocalityCount() int {
	return len(t.Localities)
}
