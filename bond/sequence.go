// SPDX-License-Identifier: MIT

package bond

import (
	"fmt"
	"iter"
	"slices"
)

// The operations below edit or read the current bond list only. None of
// them derives bonds; call Bonds or Materialize first to populate the list.
// Index arguments follow slice semantics and panic when out of range.

// Len returns the length of the current list (0 before materialization).
func (c *Collection) Len() int { return len(c.bonds) }

// At returns the bond at index i.
func (c *Collection) At(i int) *Bond { return c.bonds[i] }

// Set replaces the bond at index i.
func (c *Collection) Set(i int, b *Bond) { c.bonds[i] = b }

// Delete removes the bond at index i.
func (c *Collection) Delete(i int) { c.bonds = slices.Delete(c.bonds, i, i+1) }

// Slice returns a copy of bonds [i, j).
func (c *Collection) Slice(i, j int) []*Bond { return slices.Clone(c.bonds[i:j]) }

// All iterates over (index, bond) pairs of the current list.
func (c *Collection) All() iter.Seq2[int, *Bond] { return slices.All(c.bonds) }

// Backward iterates over the current list from the end.
func (c *Collection) Backward() iter.Seq2[int, *Bond] { return slices.Backward(c.bonds) }

// Contains reports whether b (by identity) is in the list.
func (c *Collection) Contains(b *Bond) bool { return slices.Contains(c.bonds, b) }

// Index returns the first position of b, or -1.
func (c *Collection) Index(b *Bond) int { return slices.Index(c.bonds, b) }

// CountOf returns how many times b occurs in the list.
func (c *Collection) CountOf(b *Bond) int {
	n := 0
	for _, x := range c.bonds {
		if x == b {
			n++
		}
	}

	return n
}

// Append adds bonds at the end.
func (c *Collection) Append(bs ...*Bond) *Collection {
	c.bonds = append(c.bonds, bs...)

	return c
}

// Extend appends every bond yielded by seq.
func (c *Collection) Extend(seq iter.Seq[*Bond]) *Collection {
	c.bonds = slices.AppendSeq(c.bonds, seq)

	return c
}

// Insert places b before index i. Indices past either end are clamped.
func (c *Collection) Insert(i int, b *Bond) *Collection {
	i = max(0, min(i, len(c.bonds)))
	c.bonds = slices.Insert(c.bonds, i, b)

	return c
}

// Remove deletes the first occurrence of b.
func (c *Collection) Remove(b *Bond) error {
	i := slices.Index(c.bonds, b)
	if i < 0 {
		return fmt.Errorf("Remove %v: %w", b, ErrBondNotFound)
	}
	c.Delete(i)

	return nil
}

// Pop removes and returns the bond at index i; negative i counts from the end.
func (c *Collection) Pop(i int) *Bond {
	if i < 0 {
		i += len(c.bonds)
	}
	b := c.bonds[i]
	c.Delete(i)

	return b
}

// Clear empties the list. The collection stays materialized.
func (c *Collection) Clear() *Collection {
	c.bonds = c.bonds[:0]

	return c
}

// Sort orders the list stably by cmp.
func (c *Collection) Sort(cmp func(a, b *Bond) int) *Collection {
	slices.SortStableFunc(c.bonds, cmp)

	return c
}

// Reverse reverses the list in place.
func (c *Collection) Reverse() *Collection {
	slices.Reverse(c.bonds)

	return c
}

// Copy returns a collection sharing the structure, cutoffs, adjacency, style
// and Bond values of c, with its own list. Editing one list does not affect
// the other; restyling a shared Bond does.
func (c *Collection) Copy() *Collection {
	cp := *c
	cp.bonds = slices.Clone(c.bonds)

	return &cp
}

// ByLength orders bonds by ascending length.
func ByLength(a, b *Bond) int {
	switch la, lb := a.Length(), b.Length(); {
	case la < lb:
		return -1
	case la > lb:
		return 1
	}

	return 0
}
