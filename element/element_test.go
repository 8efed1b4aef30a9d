// SPDX-License-Identifier: MIT

package element_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hydridic/element"
)

func TestLookup(t *testing.T) {
	cases := []struct {
		symbol string
		number int
		radius float64
	}{
		{"H", 1, 0.31},
		{"C", 6, 0.76},
		{"O", 8, 0.66},
		{"cl", 17, 1.02},
		{"FE", 26, 1.32},
		{" Au ", 79, 1.36},
	}
	for _, tc := range cases {
		t.Run(tc.symbol, func(t *testing.T) {
			e, err := element.Lookup(tc.symbol)
			require.NoError(t, err)
			assert.Equal(t, tc.number, e.Number)
			assert.InDelta(t, tc.radius, e.CovalentRadius, 1e-12)
			assert.InDelta(t, tc.radius, element.CovalentRadius(e.Number), 1e-12)
		})
	}
}

func TestLookup_Unknown(t *testing.T) {
	for _, sym := range []string{"", "Xx", "Qq", "Carbon"} {
		_, err := element.Lookup(sym)
		assert.ErrorIs(t, err, element.ErrUnknownSymbol, sym)
	}
}

func TestByNumber(t *testing.T) {
	e, err := element.ByNumber(8)
	require.NoError(t, err)
	assert.Equal(t, "O", e.Symbol)

	_, err = element.ByNumber(-1)
	assert.ErrorIs(t, err, element.ErrUnknownSymbol)
	_, err = element.ByNumber(element.Count())
	assert.ErrorIs(t, err, element.ErrUnknownSymbol)
}

func TestTableIsIndexedByNumber(t *testing.T) {
	for z := 0; z < element.Count(); z++ {
		e, err := element.ByNumber(z)
		require.NoError(t, err)
		require.Equal(t, z, e.Number, "entry %d", z)
		back, err := element.Lookup(e.Symbol)
		require.NoError(t, err)
		require.Equal(t, z, back.Number, "symbol %s", e.Symbol)
	}
}

func TestCovalentRadius_Missing(t *testing.T) {
	assert.Equal(t, element.MissingRadius, element.CovalentRadius(0))
	assert.Equal(t, element.MissingRadius, element.CovalentRadius(118))
	assert.Equal(t, element.MissingRadius, element.CovalentRadius(-3))
}

func TestIsMetal(t *testing.T) {
	metals := []string{"Li", "Na", "Al", "Fe", "Cu", "Ga", "Ag", "Sn", "Au", "Bi", "U"}
	for _, sym := range metals {
		e, err := element.Lookup(sym)
		require.NoError(t, err)
		assert.True(t, e.IsMetal(), sym)
	}
	nonMetals := []string{"H", "C", "N", "O", "Si", "S", "Cl", "Ge", "I"}
	for _, sym := range nonMetals {
		e, err := element.Lookup(sym)
		require.NoError(t, err)
		assert.False(t, e.IsMetal(), sym)
	}
}

func TestRGBA(t *testing.T) {
	o, err := element.Lookup("O")
	require.NoError(t, err)
	rgba := o.RGBA()
	assert.InDelta(t, 1.0, rgba[0], 1e-12)
	assert.InDelta(t, 13.0/255, rgba[1], 1e-12)
	assert.InDelta(t, 13.0/255, rgba[2], 1e-12)
	assert.Equal(t, 1.0, rgba[3])
	assert.Equal(t, "O(Z=8)", o.String())
}
