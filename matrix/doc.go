// SPDX-License-Identifier: MIT

// Package matrix offers the adjacency representations used for bond
// detection.
//
// The matrix package provides:
//
//   - Adjacency: a sparse, upper-triangle, order-valued relation over atom
//     indices [0,n)×[0,n). Each unordered pair {i,j}, i≠j, is stored once as
//     (min,max); the diagonal is never stored. Lookups are symmetric.
//   - Builder: accumulates pairs (repeated pairs raise the order) and freezes
//     them into an Adjacency with deterministic enumeration order: ascending
//     row, then ascending column within the row.
//   - Dense: a small row-major float64 matrix used to export an Adjacency for
//     cross-checks and debugging.
//
// An Adjacency is immutable once built and therefore safe for concurrent
// readers.
package matrix
