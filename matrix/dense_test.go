// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hydridic/matrix"
)

func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 5)
	require.ErrorIs(t, err, matrix.ErrBadShape)

	_, err = matrix.NewDense(5, -1)
	require.ErrorIs(t, err, matrix.ErrBadShape)
}

func TestDenseAccess(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	require.Equal(t, 2, m.Rows())
	require.Equal(t, 3, m.Cols())

	_, err = m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, 3, 1), matrix.ErrOutOfRange)

	require.NoError(t, m.Set(1, 2, 7.89))
	v, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 7.89, v)
	require.False(t, m.IsSymmetric(0), "non-square")

	same, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	require.False(t, m.Equal(same))
	require.NoError(t, same.Set(1, 2, 7.89))
	require.True(t, m.Equal(same))

	square, err := matrix.NewDense(3, 3)
	require.NoError(t, err)
	require.False(t, m.Equal(square), "shape differs")
}
