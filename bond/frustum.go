// SPDX-License-Identifier: MIT

package bond

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/hydridic/structure"
)

// Frustum defaults.
const (
	DefaultScaleFactor   = 0.8
	DefaultVertices      = 32
	DefaultFlareFraction = 0.1
	DefaultCollarWidth   = 0.05
	DefaultMaterial      = "glass"

	// Epsilon is the shortest bond treated as having a direction.
	Epsilon = 1e-8
)

var (
	xAxis = r3.Vec{X: 1}
	zAxis = r3.Vec{Z: 1}

	identity = r3.Rotation{Real: 1}
)

// Frustum draws a bond as a tapered cylinder whose cap radii are the atoms'
// covalent radii times ScaleFactor. Fields may be changed after
// construction; every Bond sharing the value sees the change.
type Frustum struct {
	ScaleFactor   float64 // cap radius = covalent radius × ScaleFactor
	Vertices      int     // vertices per cap, ≥ 3
	FlareFraction float64 // flare start, as a fraction of the inter-surface gap
	CollarWidth   float64 // collar width, as a fraction of the solid radius
	Material      string  // shared material name
}

// FrustumOption configures a Frustum.
type FrustumOption func(*Frustum)

// WithScaleFactor sets the cap radius multiplier. Panics if f ≤ 0 or not finite.
func WithScaleFactor(f float64) FrustumOption {
	if !(f > 0) || math.IsInf(f, 0) {
		panic(fmt.Sprintf("bond: WithScaleFactor(%v): must be finite and > 0", f))
	}

	return func(s *Frustum) { s.ScaleFactor = f }
}

// WithVertices sets the cap tessellation. Panics if n < 3.
func WithVertices(n int) FrustumOption {
	if n < 3 {
		panic(fmt.Sprintf("bond: WithVertices(%d): need at least 3", n))
	}

	return func(s *Frustum) { s.Vertices = n }
}

// WithFlareFraction sets where the flare starts. Panics outside [0, 0.5].
func WithFlareFraction(f float64) FrustumOption {
	if !(f >= 0 && f <= 0.5) {
		panic(fmt.Sprintf("bond: WithFlareFraction(%v): must be in [0,0.5]", f))
	}

	return func(s *Frustum) { s.FlareFraction = f }
}

// WithCollarWidth sets the collar width fraction. Panics if w < 0 or not finite.
func WithCollarWidth(w float64) FrustumOption {
	if !(w >= 0) || math.IsInf(w, 0) {
		panic(fmt.Sprintf("bond: WithCollarWidth(%v): must be finite and >= 0", w))
	}

	return func(s *Frustum) { s.CollarWidth = w }
}

// WithMaterial sets the shared material name. Panics on "".
func WithMaterial(name string) FrustumOption {
	if name == "" {
		panic("bond: WithMaterial: empty name")
	}

	return func(s *Frustum) { s.Material = name }
}

// NewFrustum returns a Frustum with defaults overridden by opts.
func NewFrustum(opts ...FrustumOption) *Frustum {
	f := &Frustum{
		ScaleFactor:   DefaultScaleFactor,
		Vertices:      DefaultVertices,
		FlareFraction: DefaultFlareFraction,
		CollarWidth:   DefaultCollarWidth,
		Material:      DefaultMaterial,
	}
	for _, opt := range opts {
		opt(f)
	}

	return f
}

// Name implements Style.
func (f *Frustum) Name() string { return StyleFrustum }

// validate rejects parameters mutated out of range after construction.
func (f *Frustum) validate() error {
	switch {
	case !(f.ScaleFactor > 0) || math.IsInf(f.ScaleFactor, 0):
		return fmt.Errorf("Frustum: scale factor %v: %w", f.ScaleFactor, ErrInvalidStyle)
	case f.Vertices < 3:
		return fmt.Errorf("Frustum: %d vertices: %w", f.Vertices, ErrInvalidStyle)
	case !(f.FlareFraction >= 0 && f.FlareFraction <= 0.5):
		return fmt.Errorf("Frustum: flare fraction %v: %w", f.FlareFraction, ErrInvalidStyle)
	case !(f.CollarWidth >= 0) || math.IsInf(f.CollarWidth, 0):
		return fmt.Errorf("Frustum: collar width %v: %w", f.CollarWidth, ErrInvalidStyle)
	}

	return nil
}

// Geometry implements Style.
// Stage 1 (Validate): parameters.
// Stage 2 (Execute): depth, location = midpoint + offset, per-end radii,
// orientation and inset endpoints.
// Coincident atoms produce depth 0 and the identity orientation.
func (f *Frustum) Geometry(start, end structure.Atom, offset r3.Vec) (RenderRequest, error) {
	if err := f.validate(); err != nil {
		return RenderRequest{}, err
	}
	dir := r3.Sub(end.Position, start.Position)
	rs, re := start.CovalentRadius(), end.CovalentRadius()
	r1, r2 := rs*f.ScaleFactor, re*f.ScaleFactor
	q := Orientation(dir)

	inset := f.Endpoints(start.Position, end.Position, rs, re, r1, r2)
	inset = inset.translated(offset)

	return RenderRequest{
		Kind:        SolidFrustum,
		Style:       f.Name(),
		Name:        fmt.Sprintf("Bond_%s-%s", start.Symbol, end.Symbol),
		Location:    r3.Add(r3.Scale(0.5, r3.Add(start.Position, end.Position)), offset),
		Orientation: q,
		Euler:       EulerXYZ(q),
		Depth:       r3.Norm(dir),
		Radius1:     r1,
		Radius2:     r2,
		Vertices:    f.Vertices,
		Smooth:      true,
		Material:    f.Material,
		Inset:       inset,
	}, nil
}

// Inset holds the penetration-corrected endpoints of a bond solid.
type Inset struct {
	Start      r3.Vec `json:"start"`       // solid start, inside the start sphere
	End        r3.Vec `json:"end"`         // solid end, inside the end sphere
	FlareStart r3.Vec `json:"flare_start"` // flare begins here, between the start surface and End
	FlareEnd   r3.Vec `json:"flare_end"`   // flare begins here, between the end surface and Start
}

func (in Inset) translated(offset r3.Vec) Inset {
	return Inset{
		Start:      r3.Add(in.Start, offset),
		End:        r3.Add(in.End, offset),
		FlareStart: r3.Add(in.FlareStart, offset),
		FlareEnd:   r3.Add(in.FlareEnd, offset),
	}
}

// Endpoints insets a bond into the spheres of radius sphereStart and sphereEnd
// centred at start and end. With solid radius ρ at an end and collar width
// w = CollarWidth·ρ, the endpoint sits at depth h = sqrt(R² − (ρ+w)²) along
// the bond axis so that a ring of radius ρ+w at that point lies on the sphere.
// When ρ+w ≥ R the endpoint is the sphere centre.
// Flare points sit FlareFraction of the gap between the sphere surfaces away
// from each surface; a negative gap (overlapping spheres) counts as zero.
func (f *Frustum) Endpoints(start, end r3.Vec, sphereStart, sphereEnd, solidStart, solidEnd float64) Inset {
	dir := r3.Sub(end, start)
	d := r3.Norm(dir)
	if d < Epsilon {
		return Inset{Start: start, End: end, FlareStart: start, FlareEnd: end}
	}
	u := r3.Scale(1/d, dir)

	hs := insetDepth(sphereStart, solidStart*(1+f.CollarWidth))
	he := insetDepth(sphereEnd, solidEnd*(1+f.CollarWidth))
	gap := math.Max(d-sphereStart-sphereEnd, 0)
	flare := f.FlareFraction * gap

	return Inset{
		Start:      r3.Add(start, r3.Scale(hs, u)),
		End:        r3.Sub(end, r3.Scale(he, u)),
		FlareStart: r3.Add(start, r3.Scale(sphereStart+flare, u)),
		FlareEnd:   r3.Sub(end, r3.Scale(sphereEnd+flare, u)),
	}
}

// insetDepth returns sqrt(R² − ring²), or 0 when the ring does not fit.
func insetDepth(sphere, ring float64) float64 {
	h2 := sphere*sphere - ring*ring
	if h2 <= 0 {
		return 0
	}

	return math.Sqrt(h2)
}

// Orientation returns the rotation taking +Z onto dir.
// Directions shorter than Epsilon, or parallel to +Z, map to the identity;
// the anti-parallel direction maps to a half turn around X.
func Orientation(dir r3.Vec) r3.Rotation {
	d := r3.Norm(dir)
	if d < Epsilon {
		return identity
	}
	u := r3.Scale(1/d, dir)
	axis := r3.Cross(zAxis, u)
	s := r3.Norm(axis)
	if s < Epsilon {
		if u.Z > 0 {
			return identity
		}

		return r3.NewRotation(math.Pi, xAxis)
	}

	return r3.NewRotation(math.Atan2(s, u.Z), r3.Scale(1/s, axis))
}

// EulerXYZ converts q into XYZ Euler angles (R = Rz·Ry·Rx).
// At gimbal lock the X angle is reported as 0.
func EulerXYZ(q r3.Rotation) [3]float64 {
	w, x, y, z := q.Real, q.Imag, q.Jmag, q.Kmag
	r00 := 1 - 2*(y*y+z*z)
	r10 := 2 * (x*y + w*z)
	r20 := 2 * (x*z - w*y)
	r21 := 2 * (y*z + w*x)
	r22 := 1 - 2*(x*x+y*y)

	beta := -math.Asin(math.Max(-1, math.Min(1, r20)))
	if math.Abs(r20) >= 1-1e-12 {
		r01 := 2 * (x*y - w*z)
		r11 := 1 - 2*(x*x+z*z)

		return [3]float64{0, beta, math.Atan2(-r01, r11)}
	}

	return [3]float64{math.Atan2(r21, r22), beta, math.Atan2(r10, r00)}
}
