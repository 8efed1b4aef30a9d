// SPDX-License-Identifier: MIT

package bond

import "errors"

var (
	// ErrStyleNotSupported is returned by every call of a style that has no
	// implementation. It is permanent; retrying never helps.
	ErrStyleNotSupported = errors.New("bond: style not supported")

	// ErrUnknownStyle indicates StyleByName received a name outside the closed set.
	ErrUnknownStyle = errors.New("bond: unknown style")

	// ErrInvalidStyle indicates a style whose parameters were mutated into
	// nonsensical values after construction.
	ErrInvalidStyle = errors.New("bond: invalid style parameters")

	// ErrNilDrawer indicates Draw was called without a render target.
	ErrNilDrawer = errors.New("bond: nil drawer")

	// ErrBondNotFound indicates Remove was asked for a bond the list does not hold.
	ErrBondNotFound = errors.New("bond: bond not in collection")
)
