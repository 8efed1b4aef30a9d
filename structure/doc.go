// SPDX-License-Identifier: MIT

// Package structure holds the atom data every other hydridic package reads:
// an ordered, index-stable sequence of atoms (symbol, atomic number,
// Cartesian position in Å) together with a unit cell and per-axis periodic
// boundary flags.
//
// Readers for the plain XYZ format and its extended variant (Lattice= and
// pbc= keys on the comment line) are provided; richer formats are expected
// to be decoded elsewhere and handed over through New.
//
// A Structure is treated as immutable by the bond machinery: the same index
// must refer to the same atom, at the same position, for as long as a bond
// collection built from it is alive.
package structure
