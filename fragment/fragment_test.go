// SPDX-License-Identifier: MIT

package fragment_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hydridic/fragment"
	"github.com/katalvlaran/hydridic/matrix"
)

func build(t *testing.T, n int, pairs ...[2]int) *matrix.Adjacency {
	t.Helper()
	b, err := matrix.NewBuilder(n)
	require.NoError(t, err)
	for _, p := range pairs {
		require.NoError(t, b.Add(p[0], p[1]))
	}

	return b.Build()
}

// ethanolAdjacency is the heavy-atom chain C0–C1–O2–H3 with the other
// hydrogens hanging off the carbons.
func ethanolAdjacency(t *testing.T) *matrix.Adjacency {
	return build(t, 9, [2]int{0, 1}, [2]int{0, 4}, [2]int{0, 5}, [2]int{0, 6}, [2]int{1, 2}, [2]int{1, 7}, [2]int{1, 8}, [2]int{2, 3})
}

func TestBFS_Errors(t *testing.T) {
	_, err := fragment.BFS(nil, 0)
	require.ErrorIs(t, err, fragment.ErrAdjacencyNil)

	adj := build(t, 2, [2]int{0, 1})
	_, err = fragment.BFS(adj, 2)
	require.ErrorIs(t, err, fragment.ErrStartOutOfRange)

	_, err = fragment.BFS(adj, 0, fragment.WithMaxDepth(-1))
	require.ErrorIs(t, err, fragment.ErrOptionViolation)
}

func TestBFS_OrderDepthAndPath(t *testing.T) {
	res, err := fragment.BFS(ethanolAdjacency(t), 3)
	require.NoError(t, err)

	assert.Equal(t, []int{3, 2, 1, 0, 7, 8, 4, 5, 6}, res.Order)
	assert.Equal(t, []int{3, 2, 1, 0, 4, 4, 4, 3, 3}, res.Depth)

	path, err := res.PathTo(5)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 2, 1, 0, 5}, path)
}

func TestBFS_MaxDepthAndFilter(t *testing.T) {
	adj := ethanolAdjacency(t)

	res, err := fragment.BFS(adj, 0, fragment.WithMaxDepth(1))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 4, 5, 6}, res.Order)
	assert.False(t, res.Reached(2))
	_, err = res.PathTo(2)
	require.Error(t, err)

	// Cutting C–C separates the methyl group.
	res, err = fragment.BFS(adj, 0, fragment.WithFilterNeighbor(func(c, n int) bool {
		return !(c == 0 && n == 1)
	}))
	require.NoError(t, err)
	assert.ElementsMatch(t, []int{0, 4, 5, 6}, res.Order)
}

func TestBFS_HookErrorAndCancel(t *testing.T) {
	adj := ethanolAdjacency(t)
	stop := errors.New("stop")

	res, err := fragment.BFS(adj, 0, fragment.WithOnVisit(func(atom, _ int) error {
		if atom == 1 {
			return stop
		}

		return nil
	}))
	require.ErrorIs(t, err, stop)
	assert.Equal(t, []int{0, 1}, res.Order)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = fragment.BFS(adj, 0, fragment.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
}

func TestComponents(t *testing.T) {
	// Two waters and a lone argon: O0-H1, O0-H2, Ar3, O4-H5, O4-H6.
	adj := build(t, 7, [2]int{4, 6}, [2]int{0, 1}, [2]int{5, 4}, [2]int{2, 0})

	assert.Equal(t, [][]int{{0, 1, 2}, {3}, {4, 5, 6}}, fragment.Components(adj))
	assert.Equal(t, []int{0, 0, 0, 1, 2, 2, 2}, fragment.Labels(adj))
	assert.Equal(t, 3, fragment.Count(adj))
	assert.Equal(t, 1, fragment.Count(ethanolAdjacency(t)))
	assert.Empty(t, fragment.Components(nil))
}

func TestRingBonds(t *testing.T) {
	t.Run("Chain", func(t *testing.T) {
		adj := ethanolAdjacency(t)
		assert.Empty(t, fragment.RingBonds(adj))
		assert.Equal(t, 0, fragment.RingCount(adj))
	})

	t.Run("RingWithTail", func(t *testing.T) {
		// Six-ring 0..5 with a substituent 6-7 on atom 0 and a second
		// fragment 8-9.
		adj := build(t, 10,
			[2]int{0, 1}, [2]int{1, 2}, [2]int{2, 3}, [2]int{3, 4}, [2]int{4, 5}, [2]int{0, 5},
			[2]int{0, 6}, [2]int{6, 7}, [2]int{8, 9})
		assert.Equal(t, [][2]int{{0, 1}, {0, 5}, {1, 2}, {2, 3}, {3, 4}, {4, 5}}, fragment.RingBonds(adj))
		assert.Equal(t, 1, fragment.RingCount(adj))
	})

	t.Run("FusedRings", func(t *testing.T) {
		// Two triangles sharing the 1-2 edge.
		adj := build(t, 4, [2]int{0, 1}, [2]int{0, 2}, [2]int{1, 2}, [2]int{1, 3}, [2]int{2, 3})
		assert.Len(t, fragment.RingBonds(adj), 5)
		assert.Equal(t, 2, fragment.RingCount(adj))
	})

	t.Run("PeriodicImages", func(t *testing.T) {
		b, err := matrix.NewBuilder(3)
		require.NoError(t, err)
		require.NoError(t, b.AddOrder(0, 1, 2))
		require.NoError(t, b.Add(1, 2))
		assert.Equal(t, [][2]int{{0, 1}}, fragment.RingBonds(b.Build()))
	})

	t.Run("Nil", func(t *testing.T) {
		assert.Empty(t, fragment.RingBonds(nil))
		assert.Equal(t, 0, fragment.RingCount(nil))
	})
}
