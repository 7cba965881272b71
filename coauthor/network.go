// SPDX-License-Identifier: MIT
// Package coauthor: Network wraps the adjacency matrix with a locality index
// and the query surface downstream layout and rendering consume.

package coauthor

import (
	"fmt"

	"github.com/lgcosmo/collaboration-network/matrix"
)

// defaultReserve is the initial capacity for neighbor slices.
const defaultReserve = 8

// Edge is one undirected co-authorship link between two localities.
// A and B follow column order (index(A) < index(B)).
type Edge struct {
	A, B   string // locality names
	Weight int64  // shared-manuscript count, > 0
}

// Network is the built co-authorship graph.
// localityIndex maps locality name → row/col in Adj.
// localityByIndex provides reverse lookup from column index to name.
// Adj holds shared-manuscript counts, symmetric with zero diagonal.
// Built once by NewNetwork; immutable afterward.
type Network struct {
	Adj             *matrix.Dense  // underlying adjacency matrix
	localityIndex   map[string]int // mapping of locality name to index
	localityByIndex []string       // reverse lookup by index
}

// NewNetwork builds the adjacency matrix from t and wraps it for queries.
// Stage 1 (Execute): delegate to BuildAdjacency.
// Stage 2 (Finalize): build forward and reverse locality indices.
// Returns any BuildAdjacency error.
// Complexity: O(R·C²) time via the builder, O(C) index memory on top.
func NewNetwork(t *ParticipationTable) (*Network, error) {
	adj, err := BuildAdjacency(t)
	if err != nil {
		return nil, fmt.Errorf("NewNetwork: %w", err)
	}

	// Index tables mirror the table's column order.
	idx := make(map[string]int, len(t.Localities))
	rev := make([]string, len(t.Localities))
	var i int
	var name string
	for i, name = range t.Localities {
		idx[name] = i
		rev[i] = name
	}

	return &Network{Adj: adj, localityIndex: idx, localityByIndex: rev}, nil
}

// LocalityCount returns the number of localities (matrix dimension).
// Complexity: O(1).
func (n *Network) LocalityCount() int {
	return len(n.localityByIndex)
}

// Localities returns the locality names in column order.
// The returned slice is a copy; mutating it does not affect the network.
// Complexity: O(C).
func (n *Network) Localities() []string {
	out := make([]string, len(n.localityByIndex))
	copy(out, n.localityByIndex)

	return out
}

// Index returns the column index of locality a.
// Returns ErrUnknownLocality for names outside the network.
// Complexity: O(1).
func (n *Network) Index(a string) (int, error) {
	i, ok := n.localityIndex[a]
	if !ok {
		return 0, fmt.Errorf("Index: locality %q: %w", a, ErrUnknownLocality)
	}

	return i, nil
}

// Weight returns the shared-manuscript count between localities a and b.
// Weight(a, a) is always 0 (zero diagonal).
// Errors: ErrUnknownLocality for either name.
// Complexity: O(1).
func (n *Network) Weight(a, b string) (int64, error) {
	ia, err := n.Index(a)
	if err != nil {
		return 0, fmt.Errorf("Weight: %w", err)
	}
	ib, err := n.Index(b)
	if err != nil {
		return 0, fmt.Errorf("Weight: %w", err)
	}

	w, err := n.Adj.At(ia, ib)
	if err != nil {
		return 0, fmt.Errorf("Weight: %w", err)
	}

	return w, nil
}

// Neighbors returns the localities sharing at least one manuscript with a,
// in column order.
// Stage 1 (Validate): locality lookup.
// Stage 2 (Execute): single scan over a's row.
// Errors: ErrUnknownLocality.
// Complexity: O(C).
func (n *Network) Neighbors(a string) ([]string, error) {
	src, err := n.Index(a)
	if err != nil {
		return nil, fmt.Errorf("Neighbors: %w", err)
	}

	// Execute scan
	var (
		col       int
		w         int64
		neighbors = make([]string, 0, defaultReserve)
	)
	for col = 0; col < n.LocalityCount(); col++ {
		if w, err = n.Adj.At(src, col); err != nil {
			return nil, fmt.Errorf("Neighbors: %w", err)
		}
		if w == 0 {
			continue // no shared manuscript (includes the diagonal)
		}
		neighbors = append(neighbors, n.localityByIndex[col])
	}

	return neighbors, nil
}

// Degree returns the number of co-authoring partner localities of a.
// Complexity: O(C).
func (n *Network) Degree(a string) (int, error) {
	neighbors, err := n.Neighbors(a)
	if err != nil {
		return 0, fmt.Errorf("Degree: %w", err)
	}

	return len(neighbors), nil
}

// Strength returns the sum of edge weights incident to a, i.e. the total
// pairwise manuscript co-occurrences a takes part in.
// Complexity: O(C).
func (n *Network) Strength(a string) (int64, error) {
	src, err := n.Index(a)
	if err != nil {
		return 0, fmt.Errorf("Strength: %w", err)
	}

	var (
		col   int
		w     int64
		total int64
	)
	for col = 0; col < n.LocalityCount(); col++ {
		if w, err = n.Adj.At(src, col); err != nil {
			return 0, fmt.Errorf("Strength: %w", err)
		}
		total += w
	}

	return total, nil
}

// Edges returns every positive upper-triangle cell as an undirected edge,
// ordered by (row, col) column order. Deterministic across rebuilds.
// Complexity: O(C²).
func (n *Network) Edges() []Edge {
	c := n.LocalityCount()
	edges := make([]Edge, 0, defaultReserve)

	var i, j int
	var w int64
	for i = 0; i < c; i++ {
		for j = i + 1; j < c; j++ {
			// At cannot fail inside the validated square bounds.
			w, _ = n.Adj.At(i, j)
			if w == 0 {
				continue
			}
			edges = append(edges, Edge{
				A:      n.localityByIndex[i],
				B:      n.localityByIndex[j],
				Weight: w,
			})
		}
	}

	return edges
}

// IsolatedLocalities returns the localities with no co-authorship link at
// all (all-zero row and column), in column order.
// Complexity: O(C²).
func (n *Network) IsolatedLocalities() []string {
	var (
		isolated []string
		i, j     int
		w        int64
	)
	for i = 0; i < n.LocalityCount(); i++ {
		linked := false
		for j = 0; j < n.LocalityCount(); j++ {
			w, _ = n.Adj.At(i, j)
			if w != 0 {
				linked = true
				break
			}
		}
		if !linked {
			isolated = append(isolated, n.localityByIndex[i])
		}
	}

	return isolated
}
