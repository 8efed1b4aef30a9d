// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All constructors and accessors return these sentinels (possibly wrapped
// with method context via %w); callers match with errors.Is. Structural
// violations inside an already-built Adjacency panic instead.

package matrix

import "errors"

var (
	// ErrBadShape is returned when a requested shape is invalid (negative
	// size, or a zero-sized Dense).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set/Add) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrSelfLoop indicates an attempt to relate an index with itself.
	ErrSelfLoop = errors.New("matrix: diagonal entries are not allowed")

	// ErrBadOrder indicates a non-positive order passed to AddOrder.
	ErrBadOrder = errors.New("matrix: order must be > 0")

	// ErrNilMatrix indicates that a nil Adjacency or Dense was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")
)
