// SPDX-License-Identifier: MIT

// Package bond turns detected atom pairs into drawable bonds.
//
// A Collection owns a structure, its per-atom cutoffs, a memoized adjacency
// and a memoized, ordered list of Bond values. A Bond is one bonded pair plus
// a reference to a Style; a Style is a geometry strategy that turns two atoms
// and an offset into a RenderRequest for the host renderer.
//
// Laziness:
//
//   - Adjacency is computed at most once per Collection.
//   - Bonds is derived from the adjacency exactly once, in ascending
//     (row, column) order.
//   - Len, At, All and the editing operations work on the materialized list.
//     Before the first Bonds (or Materialize) call that list is empty, so
//     Len reports 0 even when bonds would exist. Edits made before
//     materialization are discarded when the list is first derived.
//   - After materialization the list is authoritative; edits never trigger
//     recomputation.
//
// Style sharing: SetStyle stores the new Style and, once bonds exist, points
// every existing Bond at the same Style value. Mutating a shared *Frustum
// is therefore visible through every Bond holding it.
//
// A Collection is not safe for concurrent use.
package bond
