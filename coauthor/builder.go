// SPDX-License-Identifier: MIT
// Package coauthor: adjacency builder.
//
// Deliverables:
//  1. M[i,j] (i≠j) counts manuscripts where localities i and j both have a
//     positive author count.
//  2. M[i,i] = 0, zeroed after accumulation.
//  3. M symmetric by construction (each pair written to both triangles).
//  4. Presence is an explicit boolean vector per manuscript row; no sentinel
//     masking or missing-value arithmetic.
//  5. Running-total accumulation; no per-manuscript matrix collection.

package coauthor

import (
	"fmt"

	"github.com/lgcosmo/collaboration-network/matrix"
)

// BuildAdjacency folds a participation table into the C×C co-authorship
// adjacency matrix.
// Stage 1 (Validate): non-nil table with at least one locality.
// Stage 2 (Prepare): allocate the C×C total, one reusable C×C indicator and
// one presence buffer.
// Stage 3 (Execute): per manuscript, collect present column indices, mark
// every present pair in the indicator, fold the indicator into the total.
// Stage 4 (Finalize): zero the diagonal and return.
//
// A manuscript with fewer than two present localities contributes nothing.
// A locality that never participates keeps an all-zero row and column.
// Rebuilding from the same table yields a bit-identical matrix.
//
// Errors: ErrNilTable, ErrNoLocalities; matrix errors cannot occur for a
// validated table but are still propagated rather than swallowed.
// Complexity: O(R·C²) time worst case; O(C²) memory for the result plus one
// O(C²) indicator and an O(C) presence buffer, both reused across rows.
func BuildAdjacency(t *ParticipationTable) (*matrix.Dense, error) {
	// Validate input table
	if t == nil {
		return nil, fmt.Errorf("BuildAdjacency: %w", ErrNilTable)
	}
	c := t.LocalityCount()
	if c == 0 {
		return nil, fmt.Errorf("BuildAdjacency: %w", ErrNoLocalities)
	}

	// Prepare the running total, the per-row indicator (reused across rows)
	// and the presence buffer
	total, err := matrix.NewDense(c, c)
	if err != nil {
		return nil, fmt.Errorf("BuildAdjacency: %w", err)
	}
	indicator, err := matrix.NewDense(c, c)
	if err != nil {
		return nil, fmt.Errorf("BuildAdjacency: %w", err)
	}
	present := make([]int, 0, c) // column indices with positive counts

	// Execute accumulation over manuscript rows
	var (
		row, j, a, b int   // loop cursors
		count        int64 // cell read
		iv, jv       int   // pair indices
	)
	for row = 0; row < t.ManuscriptCount(); row++ {
		// Rebuild the presence vector for this manuscript.
		present = present[:0]
		for j = 0; j < c; j++ {
			if count, err = t.Counts.At(row, j); err != nil {
				return nil, fmt.Errorf("BuildAdjacency: manuscript %d: %w", row, err)
			}
			// Any positive count marks participation; magnitude is discarded.
			if count > 0 {
				present = append(present, j)
			}
		}
		// Fewer than two participants: nothing to co-occur.
		if len(present) < 2 {
			continue
		}

		// Mark every present pair once, in both triangles; absent-absent and
		// absent-present pairs simply stay zero.
		indicator.Zero()
		for a = 0; a < len(present); a++ {
			iv = present[a]
			for b = a + 1; b < len(present); b++ {
				jv = present[b]
				if err = indicator.Set(iv, jv, 1); err != nil {
					return nil, fmt.Errorf("BuildAdjacency: %w", err)
				}
				if err = indicator.Set(jv, iv, 1); err != nil {
					return nil, fmt.Errorf("BuildAdjacency: %w", err)
				}
			}
		}

		// Fold this manuscript's indicator into the running total.
		if err = total.AddInto(indicator); err != nil {
			return nil, fmt.Errorf("BuildAdjacency: %w", err)
		}
	}

	// Finalize: self-loops are explicitly zeroed. The pair loop never writes
	// the diagonal, but the contract states it, so enforce it.
	if err = total.ZeroDiagonal(); err != nil {
		return nil, fmt.Errorf("BuildAdjacency: %w", err)
	}

	return total, nil
}
