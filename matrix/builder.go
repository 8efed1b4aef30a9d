// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"sort"
)

// Builder accumulates upper-triangle pairs and freezes them into an Adjacency.
// Adding the same unordered pair again increments its order; this is how a
// detector counts several periodic images of one neighbour.
//
// A Builder is not safe for concurrent use.
type Builder struct {
	n     int             // number of indices (atoms)
	cells map[pairKey]int // accumulated orders keyed by (min,max)
}

// NewBuilder returns an empty Builder over indices [0,n).
// Stage 1 (Validate): n must be ≥ 0.
// Stage 2 (Prepare): allocate the pair map.
// Complexity: O(1).
func NewBuilder(n int) (*Builder, error) {
	if n < 0 {
		return nil, fmt.Errorf("NewBuilder(%d): %w", n, ErrBadShape)
	}

	return &Builder{n: n, cells: make(map[pairKey]int)}, nil
}

// Size returns the index range n of the Builder.
func (b *Builder) Size() int { return b.n }

// Add records one occurrence of the pair {i,j}.
// Returns ErrSelfLoop for i==j and ErrOutOfRange for indices outside [0,n).
// Complexity: O(1) amortised.
func (b *Builder) Add(i, j int) error {
	return b.AddOrder(i, j, 1)
}

// AddOrder adds order occurrences of the pair {i,j} at once.
// Stage 1 (Validate): range, diagonal and order > 0.
// Stage 2 (Execute): increment the normalised cell.
func (b *Builder) AddOrder(i, j, order int) error {
	if i < 0 || i >= b.n || j < 0 || j >= b.n {
		return fmt.Errorf("Builder.Add(%d,%d): %w", i, j, ErrOutOfRange)
	}
	if i == j {
		return fmt.Errorf("Builder.Add(%d,%d): %w", i, j, ErrSelfLoop)
	}
	if order <= 0 {
		return fmt.Errorf("Builder.Add(%d,%d,order=%d): %w", i, j, order, ErrBadOrder)
	}
	b.cells[newPairKey(i, j)] += order

	return nil
}

// Build freezes the accumulated pairs into an immutable Adjacency.
// The Builder may keep being used afterwards; later additions do not affect
// Adjacencies already built.
// Stage 1 (Prepare): collect and sort keys by (row, col).
// Stage 2 (Execute): fill CSR arrays and symmetric neighbour lists.
// Complexity: O(E log E + n).
func (b *Builder) Build() *Adjacency {
	keys := make([]pairKey, 0, len(b.cells))
	for k := range b.cells {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(x, y int) bool {
		if keys[x].u != keys[y].u {
			return keys[x].u < keys[y].u
		}

		return keys[x].v < keys[y].v
	})

	a := &Adjacency{
		n:      b.n,
		rowPtr: make([]int, b.n+1),
		cols:   make([]int, len(keys)),
		orders: make([]int, len(keys)),
		nbrs:   make([][]int, b.n),
	}
	for idx, k := range keys {
		a.rowPtr[k.u+1]++
		a.cols[idx] = k.v
		a.orders[idx] = b.cells[k]
		a.nbrs[k.u] = append(a.nbrs[k.u], k.v)
		a.nbrs[k.v] = append(a.nbrs[k.v], k.u)
	}
	for r := 0; r < b.n; r++ {
		a.rowPtr[r+1] += a.rowPtr[r]
	}
	// Keys are sorted by (u,v): nbrs[x] first receives its smaller partners in
	// ascending u, then its larger partners in ascending v, so every list is
	// already sorted.

	return a
}
