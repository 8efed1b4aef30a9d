// SPDX-License-Identifier: MIT

package structure

import (
	"bufio"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	chem "github.com/rmera/gochem"
	"gonum.org/v1/gonum/spatial/r3"
)

// ErrUnknownFormat is returned by ReadFile for unsupported file extensions.
var ErrUnknownFormat = errors.New("structure: unknown file format")

// ReadFile reads the first frame of a structure file, choosing the format by
// extension:
//
//	.xyz .extxyz  XYZ, with extended XYZ Lattice= and pbc= comment keys
//	.pdb .ent     Protein Data Bank, with the CRYST1 cell when present
//
// Atoms and coordinates come from gochem; the periodic metadata gochem does
// not read is parsed here. The structure name defaults to the file's base
// name when the file does not provide one.
func ReadFile(path string) (*Structure, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("ReadFile: %w", err)
	}
	base := filepath.Base(path)

	var (
		s   *Structure
		err error
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".xyz", ".extxyz":
		s, err = readXYZFile(path)
	case ".pdb", ".ent":
		s, err = readPDBFile(path)
	default:
		return nil, fmt.Errorf("ReadFile(%s): extension %q: %w", base, ext, ErrUnknownFormat)
	}
	if err != nil {
		return nil, fmt.Errorf("ReadFile(%s): %w", base, err)
	}
	if s.Name == "" {
		s.Name = strings.TrimSuffix(base, filepath.Ext(base))
	}

	return s, nil
}

// readXYZFile takes the header from the file and the atoms from gochem.
func readXYZFile(path string) (*Structure, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	s, n, err := scanHeader(newXYZScanner(f))
	f.Close()
	if err != nil {
		return nil, err
	}

	mol, err := chem.XYZFileRead(path)
	if err != nil {
		return nil, fmt.Errorf("gochem: %v: %w", err, ErrMalformedLine)
	}
	atoms, err := fromMolecule(mol)
	if err != nil {
		return nil, err
	}
	if len(atoms) != n {
		return nil, fmt.Errorf("want %d atoms, got %d: %w", n, len(atoms), ErrAtomCount)
	}
	s.Atoms = atoms

	return s, nil
}

// readPDBFile reads ATOM/HETATM records with gochem and CRYST1 here.
func readPDBFile(path string) (*Structure, error) {
	mol, err := chem.PDBFileRead(path, false)
	if err != nil {
		return nil, fmt.Errorf("gochem: %v: %w", err, ErrMalformedLine)
	}
	atoms, err := fromMolecule(mol)
	if err != nil {
		return nil, err
	}
	s := &Structure{Atoms: atoms}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := sc.Text()
		if !strings.HasPrefix(line, "CRYST1") {
			continue
		}
		cell, err := parseCryst1(line)
		if err != nil {
			return nil, err
		}
		if !isPlaceholderCell(cell) {
			s.Cell = cell
			s.PBC = [3]bool{true, true, true}
		}

		break
	}

	return s, sc.Err()
}

// fromMolecule converts the first coordinate frame of mol.
func fromMolecule(mol *chem.Molecule) ([]Atom, error) {
	if mol == nil || len(mol.Coords) == 0 || mol.Len() == 0 {
		return nil, ErrEmptyInput
	}
	coords := mol.Coords[0]
	out := make([]Atom, mol.Len())
	for i := range out {
		pos := r3.Vec{X: coords.At(i, 0), Y: coords.At(i, 1), Z: coords.At(i, 2)}
		a, err := newSpecies(strings.TrimSpace(mol.Atom(i).Symbol), pos)
		if err != nil {
			return nil, fmt.Errorf("atom %d: %w", i, err)
		}
		out[i] = a
	}

	return out, nil
}

// parseCryst1 turns "CRYST1 a b c alpha beta gamma ..." into lattice
// vectors with a along x and b in the xy plane.
func parseCryst1(line string) (Cell, error) {
	fields := strings.Fields(line)
	if len(fields) < 7 {
		return Cell{}, fmt.Errorf("%q: %w", line, ErrBadLattice)
	}
	var p [6]float64
	for k := range p {
		v, err := strconv.ParseFloat(fields[k+1], 64)
		if err != nil || !(v > 0) {
			return Cell{}, fmt.Errorf("%q: %w", line, ErrBadLattice)
		}
		p[k] = v
	}
	a, b, c := p[0], p[1], p[2]
	rad := math.Pi / 180
	cosA, cosB, cosG := math.Cos(p[3]*rad), math.Cos(p[4]*rad), math.Cos(p[5]*rad)
	sinG := math.Sin(p[5] * rad)
	cy := (cosA - cosB*cosG) / sinG
	cz2 := 1 - cosB*cosB - cy*cy
	if !(cz2 > 0) {
		return Cell{}, fmt.Errorf("%q: angles do not span a cell: %w", line, ErrBadLattice)
	}

	return Cell{
		{X: a},
		{X: b * cosG, Y: b * sinG},
		{X: c * cosB, Y: c * cy, Z: c * math.Sqrt(cz2)},
	}, nil
}

// isPlaceholderCell reports the 1 Å cube PDB writers emit for structures
// without crystallographic symmetry.
func isPlaceholderCell(c Cell) bool {
	const eps = 1e-6
	unit := Cell{{X: 1}, {Y: 1}, {Z: 1}}
	for k := range c {
		if r3.Norm(r3.Sub(c[k], unit[k])) > eps {
			return false
		}
	}

	return true
}
