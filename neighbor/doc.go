// SPDX-License-Identifier: MIT

// Package neighbor detects bonded atom pairs from per-atom cutoff radii.
//
// Two atoms i and j are bonded when their distance is strictly below
// cutoff[i]+cutoff[j]. Natural cutoffs are covalent radii scaled by a
// multiplier, with optional per-element overrides and a skin added to every
// atom; see NaturalCutoffs.
//
// Detect runs a uniform cell-list search (bins no smaller than the largest
// pair cutoff, 27 neighbouring bins per query). On periodic axes, positions
// are wrapped into the unit cell and every lattice image within range is
// considered; the order stored in the resulting matrix.Adjacency counts the
// images of j that lie within range of i. An atom is never bonded to its own
// periodic images.
//
// Complexity: O(n·k·m) for n atoms, k lattice shifts (1 for aperiodic input)
// and m atoms per neighbourhood.
package neighbor
