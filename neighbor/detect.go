// SPDX-License-Identifier: MIT

package neighbor

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/hydridic/matrix"
	"github.com/katalvlaran/hydridic/structure"
)

const (
	// volumeEpsilon is the smallest |a·(b×c)| accepted for a periodic cell.
	volumeEpsilon = 1e-12

	// maxLatticeShifts bounds the number of periodic images searched per atom.
	maxLatticeShifts = 1 << 16
)

// Detect returns the bond adjacency of s for the given per-atom cutoffs.
//
// Stage 1 (Validate): structure, cutoff count and values, periodic cell.
// Stage 2 (Prepare): wrap periodic positions, enumerate lattice shifts, bin atoms.
// Stage 3 (Execute): for every atom i and shift T, count atoms j>i with
// |p_j + T − p_i| < cutoff[i]+cutoff[j].
// Stage 4 (Finalize): freeze the accumulated pairs.
//
// Atoms without neighbours are not an error; n == 0 yields an empty matrix.
func Detect(s *structure.Structure, cutoffs []float64) (*matrix.Adjacency, error) {
	if s == nil {
		return nil, fmt.Errorf("Detect: %w", ErrNilStructure)
	}
	n := s.Len()
	if len(cutoffs) != n {
		return nil, fmt.Errorf("Detect: %d cutoffs for %d atoms: %w", len(cutoffs), n, ErrCutoffLength)
	}
	maxCut := 0.0
	for i, c := range cutoffs {
		if !validCutoff(c) {
			return nil, fmt.Errorf("Detect: cutoff[%d]=%v: %w", i, c, ErrInvalidCutoff)
		}
		maxCut = math.Max(maxCut, c)
	}
	if s.Periodic() && math.Abs(s.Cell.Volume()) < volumeEpsilon {
		return nil, fmt.Errorf("Detect: pbc=%v: %w", s.PBC, ErrDegenerateCell)
	}

	b, err := matrix.NewBuilder(n)
	if err != nil {
		return nil, fmt.Errorf("Detect: %w", err)
	}
	rmax := 2 * maxCut
	if n < 2 || rmax == 0 {
		return b.Build(), nil
	}

	pts := s.Positions()
	shifts := []r3.Vec{{}}
	if s.Periodic() {
		wrap(pts, s.Cell, s.PBC)
		if shifts, err = latticeShifts(s.Cell, s.PBC, rmax); err != nil {
			return nil, fmt.Errorf("Detect: rmax=%v: %w", rmax, err)
		}
	}
	cl := newCellList(pts, rmax)

	for i := 0; i < n; i++ {
		for _, t := range shifts {
			q := r3.Sub(pts[i], t)
			cl.visit(q, func(j int) {
				if j <= i {
					return
				}
				if r3.Norm(r3.Sub(pts[j], q)) < cutoffs[i]+cutoffs[j] {
					// Indices are valid and distinct here; Add cannot fail.
					_ = b.Add(i, j)
				}
			})
		}
	}

	return b.Build(), nil
}

// Bonds is NaturalCutoffs followed by Detect.
func Bonds(s *structure.Structure, opts ...CutoffOption) (*matrix.Adjacency, error) {
	if s == nil {
		return nil, fmt.Errorf("Bonds: %w", ErrNilStructure)
	}

	return Detect(s, NaturalCutoffs(s, opts...))
}

// reciprocal returns the vectors b_k with a_k·b_l = δ_kl.
func reciprocal(c structure.Cell) [3]r3.Vec {
	vol := c.Volume()

	return [3]r3.Vec{
		r3.Scale(1/vol, r3.Cross(c[1], c[2])),
		r3.Scale(1/vol, r3.Cross(c[2], c[0])),
		r3.Scale(1/vol, r3.Cross(c[0], c[1])),
	}
}

// wrap maps every position into [0,1) fractional range along periodic axes,
// in place. Aperiodic components are left untouched.
func wrap(pts []r3.Vec, c structure.Cell, pbc [3]bool) {
	rec := reciprocal(c)
	for i, p := range pts {
		for k := 0; k < 3; k++ {
			if !pbc[k] {
				continue
			}
			f := r3.Dot(p, rec[k])
			if w := f - math.Floor(f); w != f {
				p = r3.Add(p, r3.Scale(w-f, c[k]))
			}
		}
		pts[i] = p
	}
}

// latticeShifts enumerates every translation Σ s_k·a_k, |s_k| ≤ ceil(rmax/h_k),
// where h_k is the spacing between the lattice planes spanned by the other
// two vectors. Aperiodic axes contribute s_k = 0 only.
// More than maxLatticeShifts translations yield ErrCutoffTooLarge.
func latticeShifts(c structure.Cell, pbc [3]bool, rmax float64) ([]r3.Vec, error) {
	vol := math.Abs(c.Volume())
	var reach [3]int
	total := 1.0
	for k := 0; k < 3; k++ {
		if !pbc[k] {
			continue
		}
		face := r3.Norm(r3.Cross(c[(k+1)%3], c[(k+2)%3]))
		r := math.Ceil(rmax / (vol / face))
		total *= 2*r + 1
		if math.IsNaN(total) || total > maxLatticeShifts {
			return nil, fmt.Errorf("reach %v along a%d: %w", r, k+1, ErrCutoffTooLarge)
		}
		reach[k] = int(r)
	}

	shifts := make([]r3.Vec, 0, (2*reach[0]+1)*(2*reach[1]+1)*(2*reach[2]+1))
	for sx := -reach[0]; sx <= reach[0]; sx++ {
		for sy := -reach[1]; sy <= reach[1]; sy++ {
			for sz := -reach[2]; sz <= reach[2]; sz++ {
				t := r3.Add(r3.Scale(float64(sx), c[0]), r3.Add(r3.Scale(float64(sy), c[1]), r3.Scale(float64(sz), c[2])))
				shifts = append(shifts, t)
			}
		}
	}

	return shifts, nil
}
