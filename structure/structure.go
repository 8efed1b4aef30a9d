// SPDX-License-Identifier: MIT

package structure

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/hydridic/element"
)

// Sentinel errors for structure construction and reading.
var (
	// ErrEmptyInput indicates there was nothing to read.
	ErrEmptyInput = errors.New("structure: empty input")

	// ErrAtomCount indicates the declared atom count is invalid or disagrees
	// with the number of atom lines.
	ErrAtomCount = errors.New("structure: atom count mismatch")

	// ErrMalformedLine indicates an atom line could not be parsed.
	ErrMalformedLine = errors.New("structure: malformed atom line")

	// ErrBadLattice indicates a Lattice= or pbc= value could not be parsed.
	ErrBadLattice = errors.New("structure: malformed lattice")

	// ErrIndexOutOfRange indicates an atom index outside [0, Len()).
	ErrIndexOutOfRange = errors.New("structure: atom index out of range")
)

// Atom is a single atom. Number is the atomic number resolved from Symbol.
type Atom struct {
	Symbol   string
	Number   int
	Position r3.Vec
}

// NewAtom resolves symbol against the element table.
func NewAtom(symbol string, position r3.Vec) (Atom, error) {
	e, err := element.Lookup(symbol)
	if err != nil {
		return Atom{}, err
	}

	return Atom{Symbol: e.Symbol, Number: e.Number, Position: position}, nil
}

// CovalentRadius is a shortcut for element.CovalentRadius(a.Number).
func (a Atom) CovalentRadius() float64 {
	return element.CovalentRadius(a.Number)
}

// Cell holds the three lattice vectors a, b, c as rows.
type Cell [3]r3.Vec

// Volume returns the signed volume a·(b×c).
func (c Cell) Volume() float64 {
	return r3.Dot(c[0], r3.Cross(c[1], c[2]))
}

// IsZero reports whether all lattice vectors are zero.
func (c Cell) IsZero() bool {
	return c == Cell{}
}

// Structure is an ordered, finite sequence of atoms with periodic metadata.
type Structure struct {
	Name  string  // free-form label (file comment line, or empty)
	Atoms []Atom  // index-stable atom list
	Cell  Cell    // lattice vectors; zero for molecules
	PBC   [3]bool // periodic boundary flag per axis
}

// Option configures a Structure in New.
type Option func(*Structure)

// WithName sets the structure label.
func WithName(name string) Option {
	return func(s *Structure) { s.Name = name }
}

// WithCell sets the lattice vectors.
func WithCell(cell Cell) Option {
	return func(s *Structure) { s.Cell = cell }
}

// WithPBC sets the periodic flags.
func WithPBC(x, y, z bool) Option {
	return func(s *Structure) { s.PBC = [3]bool{x, y, z} }
}

// New builds a Structure from atoms. The atom slice is copied.
func New(atoms []Atom, opts ...Option) *Structure {
	s := &Structure{Atoms: make([]Atom, len(atoms))}
	copy(s.Atoms, atoms)
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Len returns the number of atoms.
func (s *Structure) Len() int {
	if s == nil {
		return 0
	}

	return len(s.Atoms)
}

// At returns the atom at index i.
func (s *Structure) At(i int) (Atom, error) {
	if i < 0 || i >= s.Len() {
		return Atom{}, fmt.Errorf("At(%d): %w", i, ErrIndexOutOfRange)
	}

	return s.Atoms[i], nil
}

// Periodic reports whether any axis is periodic.
func (s *Structure) Periodic() bool {
	return s.PBC[0] || s.PBC[1] || s.PBC[2]
}

// Positions returns a copy of all atom positions in index order.
func (s *Structure) Positions() []r3.Vec {
	out := make([]r3.Vec, len(s.Atoms))
	for i, a := range s.Atoms {
		out[i] = a.Position
	}

	return out
}

// Symbols returns the sorted set of distinct chemical symbols.
func (s *Structure) Symbols() []string {
	seen := make(map[string]struct{}, 8)
	for _, a := range s.Atoms {
		seen[a.Symbol] = struct{}{}
	}
	out := make([]string, 0, len(seen))
	for sym := range seen {
		out = append(out, sym)
	}
	sort.Strings(out)

	return out
}

// Select returns the indices of all atoms with the given symbol, ascending.
func (s *Structure) Select(symbol string) []int {
	var idx []int
	for i, a := range s.Atoms {
		if a.Symbol == symbol {
			idx = append(idx, i)
		}
	}

	return idx
}

// Bounds returns the component-wise minimum and maximum atom positions.
// Both are zero for an empty structure.
func (s *Structure) Bounds() (lo, hi r3.Vec) {
	if len(s.Atoms) == 0 {
		return r3.Vec{}, r3.Vec{}
	}
	lo = r3.Vec{X: math.Inf(1), Y: math.Inf(1), Z: math.Inf(1)}
	hi = r3.Vec{X: math.Inf(-1), Y: math.Inf(-1), Z: math.Inf(-1)}
	for _, a := range s.Atoms {
		p := a.Position
		lo = r3.Vec{X: math.Min(lo.X, p.X), Y: math.Min(lo.Y, p.Y), Z: math.Min(lo.Z, p.Z)}
		hi = r3.Vec{X: math.Max(hi.X, p.X), Y: math.Max(hi.Y, p.Y), Z: math.Max(hi.Z, p.Z)}
	}

	return lo, hi
}

// Centered returns a copy whose bounding-box centre sits at about.
// The receiver is left untouched so that indices and positions seen by any
// existing bond collection stay valid.
func (s *Structure) Centered(about r3.Vec) *Structure {
	lo, hi := s.Bounds()
	shift := r3.Sub(about, r3.Scale(0.5, r3.Add(lo, hi)))
	out := &Structure{Name: s.Name, Cell: s.Cell, PBC: s.PBC, Atoms: make([]Atom, len(s.Atoms))}
	for i, a := range s.Atoms {
		a.Position = r3.Add(a.Position, shift)
		out.Atoms[i] = a
	}

	return out
}

// Translated returns a copy with every position shifted by offset.
func (s *Structure) Translated(offset r3.Vec) *Structure {
	out := &Structure{Name: s.Name, Cell: s.Cell, PBC: s.PBC, Atoms: make([]Atom, len(s.Atoms))}
	for i, a := range s.Atoms {
		a.Position = r3.Add(a.Position, offset)
		out.Atoms[i] = a
	}

	return out
}
