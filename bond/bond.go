// SPDX-License-Identifier: MIT

package bond

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/hydridic/structure"
)

// Endpoint is one end of a bond: the atom and its index in the structure.
type Endpoint struct {
	Index int
	structure.Atom
}

// Bond is a bonded atom pair with a drawing style. The endpoints never
// change; the style reference may be replaced.
type Bond struct {
	source      Endpoint
	destination Endpoint
	style       Style
}

// NewBond returns a bond from source to destination.
// A nil style is replaced by DefaultStyle().
func NewBond(source, destination Endpoint, style Style) *Bond {
	if style == nil {
		style = DefaultStyle()
	}

	return &Bond{source: source, destination: destination, style: style}
}

// Source returns the start endpoint.
func (b *Bond) Source() Endpoint { return b.source }

// Destination returns the end endpoint.
func (b *Bond) Destination() Endpoint { return b.destination }

// Indices returns (source index, destination index).
func (b *Bond) Indices() (int, int) { return b.source.Index, b.destination.Index }

// Style returns the current style reference.
func (b *Bond) Style() Style { return b.style }

// SetStyle replaces the style reference; nil resets to DefaultStyle().
func (b *Bond) SetStyle(s Style) {
	if s == nil {
		s = DefaultStyle()
	}
	b.style = s
}

// Length returns the distance between the endpoint atoms.
func (b *Bond) Length() float64 {
	return r3.Norm(r3.Sub(b.destination.Position, b.source.Position))
}

// Symbols returns the element symbols of source and destination.
func (b *Bond) Symbols() [2]string {
	return [2]string{b.source.Symbol, b.destination.Symbol}
}

// Name is a stable identifier such as "Bond_C0-O2".
func (b *Bond) Name() string {
	return fmt.Sprintf("Bond_%s%d-%s%d", b.source.Symbol, b.source.Index, b.destination.Symbol, b.destination.Index)
}

// String implements fmt.Stringer.
func (b *Bond) String() string {
	return fmt.Sprintf("%s(%s, %.4f)", b.Name(), b.style.Name(), b.Length())
}

// Reverse returns a new bond with swapped endpoints and the same style
// reference. The receiver is unchanged.
func (b *Bond) Reverse() *Bond {
	return &Bond{source: b.destination, destination: b.source, style: b.style}
}

// Geometry returns the render request of this bond without drawing it.
func (b *Bond) Geometry(offset r3.Vec) (RenderRequest, error) {
	return b.style.Geometry(b.source.Atom, b.destination.Atom, offset)
}

// Draw emits exactly one solid through d and returns b for chaining.
// The offset is supplied by the caller and is not stored.
func (b *Bond) Draw(d Drawer, offset r3.Vec) (*Bond, error) {
	if err := Spawn(d, b.style, b.source.Atom, b.destination.Atom, offset); err != nil {
		return b, fmt.Errorf("Draw %s: %w", b.Name(), err)
	}

	return b, nil
}
