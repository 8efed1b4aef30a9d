// SPDX-License-Identifier: MIT

package neighbor

import "errors"

// Sentinel errors for neighbour detection.
var (
	// ErrNilStructure indicates Detect or NaturalCutoffs received a nil structure.
	ErrNilStructure = errors.New("neighbor: nil structure")

	// ErrCutoffLength indicates the cutoff slice length differs from the atom count.
	ErrCutoffLength = errors.New("neighbor: cutoff count does not match atom count")

	// ErrInvalidCutoff indicates a negative, NaN or infinite cutoff.
	ErrInvalidCutoff = errors.New("neighbor: cutoff must be finite and >= 0")

	// ErrDegenerateCell indicates a periodic structure whose cell has no volume.
	ErrDegenerateCell = errors.New("neighbor: periodic cell has zero volume")

	// ErrCutoffTooLarge indicates cutoffs reaching too many periodic images.
	ErrCutoffTooLarge = errors.New("neighbor: cutoff spans too many periodic images")
)
