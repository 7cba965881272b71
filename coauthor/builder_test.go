// SPDX-License-Identifier: MIT

package coauthor_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lgcosmo/collaboration-network/coauthor"
	"github.com/lgcosmo/collaboration-network/matrix"
)

// mustTable builds a participation table, failing the test on error.
func mustTable(t *testing.T, localities []string, rows [][]int64) *coauthor.ParticipationTable {
	t.Helper()
	tbl, err := coauthor.NewParticipationTable(localities, rows)
	require.NoError(t, err)

	return tbl
}

func TestBuildAdjacency_WorkedExample(t *testing.T) {
	// Two manuscripts, three localities:
	//   manuscript 1: A and B participate
	//   manuscript 2: B and C participate (C with two authors)
	tbl := mustTable(t, []string{"A", "B", "C"}, [][]int64{
		{1, 1, 0},
		{0, 1, 2},
	})

	adj, err := coauthor.BuildAdjacency(tbl)
	require.NoError(t, err)

	want, err := matrix.NewDenseFromRows([][]int64{
		{0, 1, 0},
		{1, 0, 1},
		{0, 1, 0},
	})
	require.NoError(t, err)
	require.True(t, adj.Equal(want), "got:\n%v", adj)
}

func TestBuildAdjacency_StructuralContract(t *testing.T) {
	tbl := mustTable(t, []string{"A", "B", "C", "D"}, [][]int64{
		{1, 1, 1, 0},
		{2, 0, 1, 0},
		{1, 1, 0, 0},
		{0, 0, 3, 0},
	})

	adj, err := coauthor.BuildAdjacency(tbl)
	require.NoError(t, err)

	// Square with dimension = locality count, symmetric, zero diagonal,
	// non-negative.
	require.Equal(t, 4, adj.Rows())
	require.Equal(t, 4, adj.Cols())
	require.NoError(t, matrix.ValidateSymmetric(adj))
	require.NoError(t, matrix.ValidateZeroDiagonal(adj))
	require.NoError(t, matrix.ValidateNonNegative(adj))
}

func TestBuildAdjacency_MagnitudeDiscarded(t *testing.T) {
	// Ten authors from A and one from B still count as one shared manuscript.
	tbl := mustTable(t, []string{"A", "B"}, [][]int64{
		{10, 1},
		{3, 7},
	})

	adj, err := coauthor.BuildAdjacency(tbl)
	require.NoError(t, err)

	w, err := adj.At(0, 1)
	require.NoError(t, err)
	require.Equal(t, int64(2), w)
}

func TestBuildAdjacency_SparseRowsContributeNothing(t *testing.T) {
	// Rows with zero or one participant must not change any cell.
	tbl := mustTable(t, []string{"A", "B", "C"}, [][]int64{
		{0, 0, 0}, // nobody
		{0, 5, 0}, // single locality
		{4, 0, 0}, // single locality
	})

	adj, err := coauthor.BuildAdjacency(tbl)
	require.NoError(t, err)

	zero, err := matrix.NewDense(3, 3)
	require.NoError(t, err)
	require.True(t, adj.Equal(zero))
}

func TestBuildAdjacency_IsolatedLocalityPreserved(t *testing.T) {
	// C never participates: its row and column stay all zero, and the
	// dimension still includes it.
	tbl := mustTable(t, []string{"A", "B", "C"}, [][]int64{
		{1, 1, 0},
		{2, 1, 0},
	})

	adj, err := coauthor.BuildAdjacency(tbl)
	require.NoError(t, err)
	require.Equal(t, 3, adj.Rows())

	for j := 0; j < 3; j++ {
		v, err := adj.At(2, j)
		require.NoError(t, err)
		require.Zero(t, v)
		v, err = adj.At(j, 2)
		require.NoError(t, err)
		require.Zero(t, v)
	}
}

func TestBuildAdjacency_Idempotent(t *testing.T) {
	tbl := mustTable(t, []string{"A", "B", "C"}, [][]int64{
		{1, 1, 1},
		{0, 2, 1},
		{1, 0, 1},
	})

	first, err := coauthor.BuildAdjacency(tbl)
	require.NoError(t, err)
	second, err := coauthor.BuildAdjacency(tbl)
	require.NoError(t, err)

	// Bit-identical rebuild from the same input.
	require.True(t, first.Equal(second))
}

func TestBuildAdjacency_NoManuscripts(t *testing.T) {
	// Zero manuscript rows: every locality isolated, all-zero matrix.
	tbl := mustTable(t, []string{"A", "B"}, nil)

	adj, err := coauthor.BuildAdjacency(tbl)
	require.NoError(t, err)

	zero, err := matrix.NewDense(2, 2)
	require.NoError(t, err)
	require.True(t, adj.Equal(zero))
}

func TestBuildAdjacency_SingleLocality(t *testing.T) {
	// Degenerate but legal: a 1×1 all-zero matrix, no self-loop.
	tbl := mustTable(t, []string{"A"}, [][]int64{{3}, {1}})

	adj, err := coauthor.BuildAdjacency(tbl)
	require.NoError(t, err)
	require.Equal(t, 1, adj.Rows())
	v, err := adj.At(0, 0)
	require.NoError(t, err)
	require.Zero(t, v)
}

func TestBuildAdjacency_Errors(t *testing.T) {
	_, err := coauthor.BuildAdjacency(nil)
	require.ErrorIs(t, err, coauthor.ErrNilTable)
}

func TestNewParticipationTable_Validation(t *testing.T) {
	// No columns.
	_, err := coauthor.NewParticipationTable(nil, nil)
	require.ErrorIs(t, err, coauthor.ErrNoLocalities)

	// Blank column name.
	_, err = coauthor.NewParticipationTable([]string{"A", ""}, nil)
	require.ErrorIs(t, err, coauthor.ErrEmptyLocality)

	// Duplicate column name.
	_, err = coauthor.NewParticipationTable([]string{"A", "A"}, nil)
	require.ErrorIs(t, err, coauthor.ErrDuplicateLocality)

	// Ragged manuscript row, error names the row.
	_, err = coauthor.NewParticipationTable([]string{"A", "B"}, [][]int64{{1, 1}, {1}})
	require.ErrorIs(t, err, coauthor.ErrColumnMismatch)
	require.Contains(t, err.Error(), "manuscript 1")

	// Negative author count, error names row and locality.
	_, err = coauthor.NewParticipationTable([]string{"A", "B"}, [][]int64{{1, -2}})
	require.ErrorIs(t, err, coauthor.ErrNegativeCount)
	require.Contains(t, err.Error(), `"B"`)
}
