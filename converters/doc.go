// SPDX-License-Identifier: MIT

// Package converters exports bond data to gonum graphs.
//
//   - FromCollection builds a weighted undirected graph whose nodes are atom
//     indices and whose edges are the collection's current bonds, weighted by
//     bond length unless WithWeight says otherwise.
//   - FromAdjacency builds the same shape straight from a matrix.Adjacency,
//     weighted by order.
//
// Every atom becomes a node, including atoms without bonds, so
// gonum/graph/topo sees isolated atoms as their own components.
package converters
