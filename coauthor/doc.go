// SPDX-License-Identifier: MIT

// Package coauthor builds a weighted, undirected co-authorship network
// between localities from a manuscript participation table.
//
// What & Why:
//
//	The input is a table whose rows are manuscripts and whose columns are
//	localities; a cell counts the authors from that locality on that
//	manuscript. BuildAdjacency folds the table into a single C×C adjacency
//	matrix where cell (i, j) counts the manuscripts on which localities i and
//	j both placed at least one author. Network wraps that matrix with a
//	locality index and query methods (Weight, Neighbors, Degree, Strength,
//	Edges), which is all downstream layout and rendering need.
//
// Semantics:
//
//	Participation is binary: any positive author count marks a locality as
//	present on a manuscript, and magnitude is discarded. Edge weights
//	therefore count shared manuscripts, not author pairs. Self-loops are
//	zeroed, the matrix is symmetric by construction, and a locality with no
//	participation keeps its all-zero row and column so isolated nodes survive
//	into the rendered map.
//
// Complexity:
//
//	BuildAdjacency runs in O(R·C²) time worst case over R manuscripts and C
//	localities, with O(C²) memory for the adjacency and O(C) transient
//	presence state per row. All operations are synchronous and deterministic;
//	a Network is built once and never mutated afterward.
package coauthor
