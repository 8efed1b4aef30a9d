// SPDX-License-Identifier: MIT

package structure

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/hydridic/element"
)

// Comment-line keys understood by the extended XYZ reader.
const (
	keyLattice = "lattice"
	keyPBC     = "pbc"
)

// maxPreallocAtoms bounds the capacity reserved from an untrusted atom-count
// header; longer inputs grow the slice as atom lines arrive.
const maxPreallocAtoms = 1 << 16

// ReadXYZ decodes the first frame of an XYZ stream:
//
//	<atom count>
//	<comment, optionally Lattice="ax ay az bx by bz cx cy cz" pbc="T T T">
//	<symbol or Z> <x> <y> <z> [ignored columns...]
//
// A Lattice key without a pbc key makes the structure periodic on all three
// axes. Anything after the first frame is ignored.
func ReadXYZ(r io.Reader) (*Structure, error) {
	sc := newXYZScanner(r)
	s, n, err := scanHeader(sc)
	if err != nil {
		return nil, err
	}

	for line := 3; len(s.Atoms) < n; line++ {
		if !sc.Scan() {
			if err = sc.Err(); err != nil {
				return nil, err
			}
			return nil, fmt.Errorf("ReadXYZ: want %d atoms, got %d: %w", n, len(s.Atoms), ErrAtomCount)
		}
		a, err := parseAtomLine(sc.Text())
		if err != nil {
			return nil, fmt.Errorf("ReadXYZ: line %d: %w", line, err)
		}
		s.Atoms = append(s.Atoms, a)
	}

	return s, nil
}

func newXYZScanner(r io.Reader) *bufio.Scanner {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	return sc
}

// scanHeader reads the atom count and the comment line. The returned
// structure carries Name, Cell and PBC from the comment and room for the
// atoms.
func scanHeader(sc *bufio.Scanner) (*Structure, int, error) {
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return nil, 0, err
		}
		return nil, 0, ErrEmptyInput
	}
	header := strings.TrimSpace(sc.Text())
	if header == "" {
		return nil, 0, ErrEmptyInput
	}
	n, err := strconv.Atoi(strings.Fields(header)[0])
	if err != nil || n < 0 {
		return nil, 0, fmt.Errorf("ReadXYZ: header %q: %w", header, ErrAtomCount)
	}

	if !sc.Scan() {
		return nil, 0, fmt.Errorf("ReadXYZ: missing comment line: %w", ErrAtomCount)
	}
	s := &Structure{Atoms: make([]Atom, 0, min(n, maxPreallocAtoms))}
	if err = applyComment(s, sc.Text()); err != nil {
		return nil, 0, err
	}

	return s, n, nil
}

// parseAtomLine decodes "<symbol|Z> x y z ...".
func parseAtomLine(line string) (Atom, error) {
	fields := strings.Fields(line)
	if len(fields) < 4 {
		return Atom{}, fmt.Errorf("%q: %w", line, ErrMalformedLine)
	}
	var xyz [3]float64
	for k := 0; k < 3; k++ {
		v, err := strconv.ParseFloat(fields[k+1], 64)
		if err != nil {
			return Atom{}, fmt.Errorf("%q: %w", line, ErrMalformedLine)
		}
		xyz[k] = v
	}

	return newSpecies(fields[0], r3.Vec{X: xyz[0], Y: xyz[1], Z: xyz[2]})
}

// newSpecies resolves a chemical symbol or an atomic number.
func newSpecies(species string, pos r3.Vec) (Atom, error) {
	if z, err := strconv.Atoi(species); err == nil {
		e, err := element.ByNumber(z)
		if err != nil {
			return Atom{}, err
		}
		return Atom{Symbol: e.Symbol, Number: e.Number, Position: pos}, nil
	}

	return NewAtom(species, pos)
}

// applyComment fills Name, Cell and PBC from the comment line.
func applyComment(s *Structure, comment string) error {
	kv := parseKeyValues(comment)
	if len(kv) == 0 {
		s.Name = strings.TrimSpace(comment)
		return nil
	}

	lattice, hasLattice := kv[keyLattice]
	if hasLattice {
		fields := strings.Fields(lattice)
		if len(fields) != 9 {
			return fmt.Errorf("Lattice=%q: %w", lattice, ErrBadLattice)
		}
		var v [9]float64
		for i, f := range fields {
			x, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return fmt.Errorf("Lattice=%q: %w", lattice, ErrBadLattice)
			}
			v[i] = x
		}
		s.Cell = Cell{
			{X: v[0], Y: v[1], Z: v[2]},
			{X: v[3], Y: v[4], Z: v[5]},
			{X: v[6], Y: v[7], Z: v[8]},
		}
		s.PBC = [3]bool{true, true, true}
	}

	if pbc, ok := kv[keyPBC]; ok {
		fields := strings.Fields(pbc)
		if len(fields) != 3 {
			return fmt.Errorf("pbc=%q: %w", pbc, ErrBadLattice)
		}
		for k, f := range fields {
			b, err := parseBool(f)
			if err != nil {
				return fmt.Errorf("pbc=%q: %w", pbc, ErrBadLattice)
			}
			s.PBC[k] = b
		}
	}

	return nil
}

// parseBool accepts the extended XYZ spellings T/F/True/False as well as
// everything strconv.ParseBool understands.
func parseBool(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "t", "true":
		return true, nil
	case "f", "false":
		return false, nil
	}

	return strconv.ParseBool(s)
}

// parseKeyValues splits `a=1 b="x y" c` into {a:1, b:"x y"}; bare words
// without '=' are dropped. Keys are lower-cased.
func parseKeyValues(line string) map[string]string {
	out := make(map[string]string)
	i := 0
	for i < len(line) {
		// skip blanks
		for i < len(line) && (line[i] == ' ' || line[i] == '\t') {
			i++
		}
		start := i
		for i < len(line) && line[i] != '=' && line[i] != ' ' && line[i] != '\t' {
			i++
		}
		if i >= len(line) || line[i] != '=' {
			continue // bare word
		}
		key := strings.ToLower(line[start:i])
		i++ // '='

		var val string
		if i < len(line) && line[i] == '"' {
			i++
			vs := i
			for i < len(line) && line[i] != '"' {
				i++
			}
			val = line[vs:i]
			if i < len(line) {
				i++ // closing quote
			}
		} else {
			vs := i
			for i < len(line) && line[i] != ' ' && line[i] != '\t' {
				i++
			}
			val = line[vs:i]
		}
		if key != "" {
			out[key] = val
		}
	}

	return out
}
