// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by Builder and Adjacency.
package matrix

// pairKey is the normalised (u<v) pair used while accumulating entries.
// Using ints keeps the key compact and hash-friendly.
type pairKey struct {
	u int // row index (smaller)
	v int // column index (larger)
}

// newPairKey orders (i,j) into the upper triangle.
func newPairKey(i, j int) pairKey {
	if i > j {
		i, j = j, i
	}

	return pairKey{u: i, v: j}
}

// Entry is one stored upper-triangle cell: Row < Col, Order > 0.
type Entry struct {
	Row   int
	Col   int
	Order int // multiplicity (number of periodic images counted)
}
