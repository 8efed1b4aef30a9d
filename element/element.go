// SPDX-License-Identifier: MIT

package element

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownSymbol is returned when a chemical symbol is not in the table.
var ErrUnknownSymbol = errors.New("element: unknown chemical symbol")

// MissingRadius is the covalent radius reported for elements without a
// tabulated value (and for atomic number 0, the dummy element "X").
const MissingRadius = 0.2

// Element describes one entry of the periodic table.
type Element struct {
	Number         int      // atomic number Z
	Symbol         string   // canonical capitalised symbol ("C", "Cl")
	CovalentRadius float64  // Å
	Color          [3]uint8 // Jmol RGB
}

// RGBA returns the Jmol colour as normalised [0,1] components with alpha 1.
func (e Element) RGBA() [4]float64 {
	return [4]float64{
		float64(e.Color[0]) / 255,
		float64(e.Color[1]) / 255,
		float64(e.Color[2]) / 255,
		1,
	}
}

// IsMetal reports whether the element is treated as a metal for shading.
func (e Element) IsMetal() bool {
	return isMetal(e.Number)
}

// String implements fmt.Stringer.
func (e Element) String() string {
	return fmt.Sprintf("%s(Z=%d)", e.Symbol, e.Number)
}

// bySymbol is built once from table.
var bySymbol = func() map[string]int {
	m := make(map[string]int, len(table))
	for z, e := range table {
		m[e.Symbol] = z
	}
	return m
}()

// Lookup resolves a chemical symbol, ignoring case: "cl", "CL" and "Cl" all
// resolve to chlorine.
func Lookup(symbol string) (Element, error) {
	z, ok := bySymbol[normalize(symbol)]
	if !ok {
		return Element{}, fmt.Errorf("Lookup(%q): %w", symbol, ErrUnknownSymbol)
	}

	return table[z], nil
}

// ByNumber returns the element with atomic number z.
func ByNumber(z int) (Element, error) {
	if z < 0 || z >= len(table) {
		return Element{}, fmt.Errorf("ByNumber(%d): %w", z, ErrUnknownSymbol)
	}

	return table[z], nil
}

// Number returns the atomic number of symbol, or 0 with ErrUnknownSymbol.
func Number(symbol string) (int, error) {
	e, err := Lookup(symbol)
	if err != nil {
		return 0, err
	}

	return e.Number, nil
}

// CovalentRadius returns the covalent radius for atomic number z.
// Out-of-table numbers resolve to MissingRadius.
func CovalentRadius(z int) float64 {
	if z <= 0 || z >= len(table) {
		return MissingRadius
	}

	return table[z].CovalentRadius
}

// Count returns the number of tabulated entries, including the dummy Z=0.
func Count() int {
	return len(table)
}

// normalize turns "cL" into "Cl".
func normalize(symbol string) string {
	s := strings.TrimSpace(symbol)
	if s == "" {
		return s
	}

	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}

// isMetal mirrors the metal ranges used for material shading:
// Li, Be, Na, Mg, Al, K–Ga, Rb–Sn, Cs–Bi, Fr onwards.
func isMetal(z int) bool {
	switch {
	case z == 3 || z == 4 || z == 11 || z == 12 || z == 13:
		return true
	case z >= 19 && z <= 31:
		return true
	case z >= 37 && z <= 50:
		return true
	case z >= 55 && z <= 83:
		return true
	case z >= 87 && z <= 116:
		return true
	}

	return false
}
