// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"sort"
	"strings"
)

// Adjacency is a sparse, symmetric, order-valued relation stored as the
// upper triangle in compressed-row form.
//
// Invariants:
//   - for every stored entry Row < Col and Order > 0;
//   - the diagonal is never stored;
//   - Find and Entries enumerate by ascending row, then ascending column.
//
// The zero value is an empty 0×0 relation.
type Adjacency struct {
	n      int     // index range
	rowPtr []int   // len n+1; row r occupies cols[rowPtr[r]:rowPtr[r+1]]
	cols   []int   // column indices, ascending within each row
	orders []int   // order per stored entry, parallel to cols
	nbrs   [][]int // symmetric neighbour lists, ascending
}

// Empty returns an Adjacency over n indices with no entries.
// Panics if n < 0.
func Empty(n int) *Adjacency {
	b, err := NewBuilder(n)
	if err != nil {
		panic(err)
	}

	return b.Build()
}

// Size returns the number of indices n (the matrix is n×n).
func (a *Adjacency) Size() int {
	if a == nil {
		return 0
	}

	return a.n
}

// NNZ returns the number of stored upper-triangle entries, i.e. the number
// of bonded pairs.
func (a *Adjacency) NNZ() int {
	if a == nil {
		return 0
	}

	return len(a.cols)
}

// checkIndex returns ErrOutOfRange wrapped with method context.
func (a *Adjacency) checkIndex(method string, i int) error {
	if i < 0 || i >= a.Size() {
		return fmt.Errorf("Adjacency.%s(%d): %w", method, i, ErrOutOfRange)
	}

	return nil
}

// At returns the order stored for the unordered pair {i,j}; 0 means not
// related. At(i,i) is always 0.
// Stage 1 (Validate): both indices in range.
// Stage 2 (Execute): binary search within row min(i,j).
// Complexity: O(log deg).
func (a *Adjacency) At(i, j int) (int, error) {
	if err := a.checkIndex("At", i); err != nil {
		return 0, err
	}
	if err := a.checkIndex("At", j); err != nil {
		return 0, err
	}
	if i == j {
		return 0, nil
	}
	k := newPairKey(i, j)
	lo, hi := a.rowPtr[k.u], a.rowPtr[k.u+1]
	row := a.cols[lo:hi]
	pos := sort.SearchInts(row, k.v)
	if pos < len(row) && row[pos] == k.v {
		return a.orders[lo+pos], nil
	}

	return 0, nil
}

// Has reports whether {i,j} is related. Out-of-range indices report false.
func (a *Adjacency) Has(i, j int) bool {
	o, err := a.At(i, j)

	return err == nil && o > 0
}

// Find returns the stored entries as three parallel slices in deterministic
// order (ascending row, then ascending column). The slices are fresh copies.
// Complexity: O(E).
func (a *Adjacency) Find() (rows, cols, orders []int) {
	nnz := a.NNZ()
	rows = make([]int, 0, nnz)
	cols = make([]int, 0, nnz)
	orders = make([]int, 0, nnz)
	for r := 0; r < a.Size(); r++ {
		for p := a.rowPtr[r]; p < a.rowPtr[r+1]; p++ {
			rows = append(rows, r)
			cols = append(cols, a.cols[p])
			orders = append(orders, a.orders[p])
		}
	}

	return rows, cols, orders
}

// Entries is Find packed into Entry values.
func (a *Adjacency) Entries() []Entry {
	rows, cols, orders := a.Find()
	out := make([]Entry, len(rows))
	for k := range rows {
		out[k] = Entry{Row: rows[k], Col: cols[k], Order: orders[k]}
	}

	return out
}

// Neighbors returns the indices related to i in ascending order (both
// triangles). The returned slice is a copy.
func (a *Adjacency) Neighbors(i int) ([]int, error) {
	if err := a.checkIndex("Neighbors", i); err != nil {
		return nil, err
	}

	return append([]int(nil), a.nbrs[i]...), nil
}

// Degree returns the number of distinct indices related to i.
func (a *Adjacency) Degree(i int) (int, error) {
	if err := a.checkIndex("Degree", i); err != nil {
		return 0, err
	}

	return len(a.nbrs[i]), nil
}

// ToDense exports the full symmetric matrix with orders as float64 values.
// Returns ErrNilMatrix for a nil receiver and ErrBadShape for n == 0.
// Complexity: O(n² + E).
func (a *Adjacency) ToDense() (*Dense, error) {
	if a == nil {
		return nil, fmt.Errorf("Adjacency.ToDense: %w", ErrNilMatrix)
	}
	d, err := NewDense(a.n, a.n)
	if err != nil {
		return nil, fmt.Errorf("Adjacency.ToDense: %w", err)
	}
	for _, e := range a.Entries() {
		v := float64(e.Order)
		d.data[e.Row*d.c+e.Col] = v
		d.data[e.Col*d.c+e.Row] = v
	}

	return d, nil
}

// Equal reports whether a and b have the same size and the same entries.
func (a *Adjacency) Equal(b *Adjacency) bool {
	if a.Size() != b.Size() || a.NNZ() != b.NNZ() {
		return false
	}
	ae, be := a.Entries(), b.Entries()
	for k := range ae {
		if ae[k] != be[k] {
			return false
		}
	}

	return true
}

// String renders the entries as "(row,col)=order" tokens.
func (a *Adjacency) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Adjacency(%d×%d, nnz=%d)", a.Size(), a.Size(), a.NNZ())
	for _, e := range a.Entries() {
		fmt.Fprintf(&sb, " (%d,%d)=%d", e.Row, e.Col, e.Order)
	}

	return sb.String()
}
