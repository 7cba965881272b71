// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lgcosmo/collaboration-network/matrix"
)

func TestValidateNotNil(t *testing.T) {
	require.ErrorIs(t, matrix.ValidateNotNil(nil), matrix.ErrNilMatrix)

	m, err := matrix.NewDense(1, 1)
	require.NoError(t, err)
	require.NoError(t, matrix.ValidateNotNil(m))
}

func TestValidateSquare(t *testing.T) {
	sq, err := matrix.NewDense(3, 3)
	require.NoError(t, err)
	require.NoError(t, matrix.ValidateSquare(sq))

	rect, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	require.ErrorIs(t, matrix.ValidateSquare(rect), matrix.ErrNonSquare)
}

func TestValidateSymmetric(t *testing.T) {
	m, err := matrix.NewDenseFromRows([][]int64{
		{0, 1, 2},
		{1, 0, 3},
		{2, 3, 0},
	})
	require.NoError(t, err)
	require.NoError(t, matrix.ValidateSymmetric(m))

	// Break one pair and expect ErrAsymmetry naming it.
	require.NoError(t, m.Set(0, 2, 9))
	err = matrix.ValidateSymmetric(m)
	require.ErrorIs(t, err, matrix.ErrAsymmetry)
	require.Contains(t, err.Error(), "(0,2)")

	// Non-square precedes the symmetry scan.
	rect, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	require.ErrorIs(t, matrix.ValidateSymmetric(rect), matrix.ErrNonSquare)

	require.ErrorIs(t, matrix.ValidateSymmetric(nil), matrix.ErrNilMatrix)
}

func TestValidateZeroDiagonal(t *testing.T) {
	m, err := matrix.NewDenseFromRows([][]int64{
		{0, 4},
		{4, 0},
	})
	require.NoError(t, err)
	require.NoError(t, matrix.ValidateZeroDiagonal(m))

	require.NoError(t, m.Set(1, 1, 2))
	err = matrix.ValidateZeroDiagonal(m)
	require.ErrorIs(t, err, matrix.ErrNonZeroDiagonal)
	require.Contains(t, err.Error(), "(1,1)")
}

func TestValidateNonNegative(t *testing.T) {
	m, err := matrix.NewDenseFromRows([][]int64{{0, 2}, {2, 0}})
	require.NoError(t, err)
	require.NoError(t, matrix.ValidateNonNegative(m))

	require.NoError(t, m.Set(1, 0, -1))
	err = matrix.ValidateNonNegative(m)
	require.ErrorIs(t, err, matrix.ErrNegativeCell)
	require.Contains(t, err.Error(), "(1,0)")
}
