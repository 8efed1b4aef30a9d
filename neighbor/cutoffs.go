// SPDX-License-Identifier: MIT

package neighbor

import (
	"github.com/katalvlaran/hydridic/element"
	"github.com/katalvlaran/hydridic/structure"
)

// NaturalCutoffs returns one cutoff per atom:
//
//	cutoff[i] = override[symbol_i]            if set
//	          = covalent_radius(Z_i) × multiplier  otherwise
//	cutoff[i] += skin
//
// Elements without a tabulated radius use element.MissingRadius.
// A nil structure yields an empty slice.
func NaturalCutoffs(s *structure.Structure, opts ...CutoffOption) []float64 {
	o := DefaultCutoffOptions()
	for _, opt := range opts {
		opt(&o)
	}

	out := make([]float64, s.Len())
	for i := range out {
		a := s.Atoms[i]
		r, ok := o.Overrides[a.Symbol]
		if !ok {
			r = element.CovalentRadius(a.Number) * o.Multiplier
		}
		out[i] = r + o.Skin
	}

	return out
}
