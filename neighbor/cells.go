// SPDX-License-Identifier: MIT

package neighbor

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// maxBinsPerAxis bounds the bin index range so that sparse, widely spread
// inputs with tiny cutoffs do not produce absurd bin coordinates.
const maxBinsPerAxis = 1 << 12

// binKey addresses one cubic bin of the cell list.
type binKey struct{ x, y, z int }

// binOffsets are the 27 bins (self included) that can hold a point within
// one bin edge of a query position.
var binOffsets = func() [27]binKey {
	var out [27]binKey
	k := 0
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			for dz := -1; dz <= 1; dz++ {
				out[k] = binKey{dx, dy, dz}
				k++
			}
		}
	}

	return out
}()

// cellList is a uniform spatial hash over a fixed point set.
// Indices inside each bin are ascending.
type cellList struct {
	size float64          // bin edge, ≥ the largest pair cutoff
	bins map[binKey][]int // bin -> point indices
	pts  []r3.Vec
}

// newCellList bins pts with edge max(minEdge, span/maxBinsPerAxis).
func newCellList(pts []r3.Vec, minEdge float64) *cellList {
	lo, hi := pts[0], pts[0]
	for _, p := range pts[1:] {
		lo = r3.Vec{X: math.Min(lo.X, p.X), Y: math.Min(lo.Y, p.Y), Z: math.Min(lo.Z, p.Z)}
		hi = r3.Vec{X: math.Max(hi.X, p.X), Y: math.Max(hi.Y, p.Y), Z: math.Max(hi.Z, p.Z)}
	}
	span := math.Max(hi.X-lo.X, math.Max(hi.Y-lo.Y, hi.Z-lo.Z))

	cl := &cellList{
		size: math.Max(minEdge, span/maxBinsPerAxis),
		bins: make(map[binKey][]int),
		pts:  pts,
	}
	for i, p := range pts {
		k := cl.key(p)
		cl.bins[k] = append(cl.bins[k], i)
	}

	return cl
}

// key returns the bin containing p.
func (cl *cellList) key(p r3.Vec) binKey {
	return binKey{
		x: int(math.Floor(p.X / cl.size)),
		y: int(math.Floor(p.Y / cl.size)),
		z: int(math.Floor(p.Z / cl.size)),
	}
}

// visit calls fn for every point index stored in the 27 bins around q.
// Bins are visited in a fixed order; fn may see indices out of global order.
func (cl *cellList) visit(q r3.Vec, fn func(j int)) {
	c := cl.key(q)
	for _, d := range binOffsets {
		for _, j := range cl.bins[binKey{c.x + d.x, c.y + d.y, c.z + d.z}] {
			fn(j)
		}
	}
}
