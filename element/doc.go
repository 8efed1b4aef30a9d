// SPDX-License-Identifier: MIT

// Package element is the read-only periodic table used by the rest of
// hydridic: chemical symbol ↔ atomic number, covalent radii and Jmol display
// colours.
//
// Covalent radii are the single-bond radii of Cordero et al. (Dalton Trans.,
// 2008), in Ångström, the same units as atom positions. Elements heavier than
// curium carry no tabulated radius and resolve to MissingRadius.
//
// The tables are never mutated after package initialisation, so every lookup
// is safe for concurrent use.
package element
