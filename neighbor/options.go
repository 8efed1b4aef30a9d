// SPDX-License-Identifier: MIT

package neighbor

import (
	"fmt"
	"math"

	"github.com/katalvlaran/hydridic/element"
)

// DefaultMultiplier scales covalent radii when no WithMultiplier is given.
const DefaultMultiplier = 1.0

// CutoffOptions holds the parameters of NaturalCutoffs.
type CutoffOptions struct {
	Multiplier float64            // scale applied to covalent radii
	Overrides  map[string]float64 // symbol -> radius used verbatim (not scaled)
	Skin       float64            // added to every cutoff after scaling
}

// CutoffOption configures CutoffOptions.
type CutoffOption func(*CutoffOptions)

// DefaultCutoffOptions returns multiplier 1, no overrides, zero skin.
func DefaultCutoffOptions() CutoffOptions {
	return CutoffOptions{Multiplier: DefaultMultiplier}
}

// WithMultiplier scales every covalent radius by m.
// Panics if m is not a finite positive number.
func WithMultiplier(m float64) CutoffOption {
	if !(m > 0) || math.IsInf(m, 0) {
		panic(fmt.Sprintf("neighbor: WithMultiplier(%v): must be finite and > 0", m))
	}

	return func(o *CutoffOptions) { o.Multiplier = m }
}

// WithOverride uses radius r for every atom of the given element instead of
// its scaled covalent radius. Panics on unknown symbols or invalid radii.
func WithOverride(symbol string, r float64) CutoffOption {
	e, err := element.Lookup(symbol)
	if err != nil {
		panic(fmt.Sprintf("neighbor: WithOverride(%q): %v", symbol, err))
	}
	if !validCutoff(r) {
		panic(fmt.Sprintf("neighbor: WithOverride(%q, %v): radius must be finite and >= 0", symbol, r))
	}

	return func(o *CutoffOptions) {
		if o.Overrides == nil {
			o.Overrides = make(map[string]float64)
		}
		o.Overrides[e.Symbol] = r
	}
}

// WithSkin adds s to every cutoff. Panics if s is negative or not finite.
func WithSkin(s float64) CutoffOption {
	if !validCutoff(s) {
		panic(fmt.Sprintf("neighbor: WithSkin(%v): must be finite and >= 0", s))
	}

	return func(o *CutoffOptions) { o.Skin = s }
}

// validCutoff reports whether r is finite and non-negative.
func validCutoff(r float64) bool {
	return r >= 0 && !math.IsInf(r, 1)
}
