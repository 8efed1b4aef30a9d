// SPDX-License-Identifier: MIT

// Package fragment walks a bond adjacency breadth-first.
//
// BFS explores atoms in non-decreasing bond distance from a start atom and
// returns a Result with:
//   - Order: visit sequence
//   - Depth: bond count from the start, -1 when unreached
//   - Parent: predecessor in the BFS tree, -1 for the start and unreached atoms
//
// Components groups atoms into bonded fragments (molecules). RingBonds
// finds the bonds that close rings with a depth-first bridge search, and
// RingCount gives the number of independent rings.
//
// Determinism
//
//	matrix.Adjacency.Neighbors is sorted ascending, and BFS enqueues in that
//	order, so visit sequences and components are reproducible.
//
// Complexity (n atoms, E bonds)
//
//   - Time:   O(n + E)
//   - Memory: O(n)
//
// Errors
//
//   - ErrAdjacencyNil      if the adjacency pointer is nil.
//   - ErrStartOutOfRange   if the start index is outside [0,n).
//   - ErrOptionViolation   if an Option is invalid (e.g. negative MaxDepth).
//   - Wrapped OnVisit hook errors and context errors.
package fragment
