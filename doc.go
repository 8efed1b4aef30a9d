// SPDX-License-Identifier: MIT

// Package hydridic finds the chemical bonds of an atomic structure and turns
// each bond into a solid that a 3D host can draw.
//
// The module is organised as flat packages:
//
//	element/     covalent radii, Jmol colours and the metal set
//	structure/   atoms, cells and periodic flags; XYZ / extended-XYZ reading
//	matrix/      sparse upper-triangle adjacency with bond orders
//	neighbor/    natural cutoffs and cell-list bond detection (periodic aware)
//	bond/        Bond, the lazy Bond Collection and bond styles (Frustum, Conic)
//	fragment/    BFS over the adjacency; bonded fragments
//	converters/  export to gonum graphs
//	scene/       host renderer interface, render sessions, structure import
//	config/      YAML settings mapped onto the options above
//
// A typical flow reads a structure, builds a Collection and draws it:
//
//	s, _ := structure.ReadFile("ethanol.xyz")
//	c := bond.NewCollection(s)
//	n, err := c.Draw(ctx, session, cursor)
//
// cmd/hydridic wraps the same flow around an in-memory scene.
package hydridic
