// SPDX-License-Identifier: MIT

package bond

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/hydridic/structure"
)

// Style names accepted by StyleByName.
const (
	StyleFrustum = "frustum"
	StyleConic   = "conic"
)

// SolidFrustum is the RenderRequest kind of a tapered cylinder.
const SolidFrustum = "frustum"

// Style computes the placement of the solid drawn between two atoms.
// Implementations form a closed set selected by StyleByName.
type Style interface {
	// Name identifies the style; it is also the material namespace.
	Name() string
	// Geometry returns the request for one solid between start and end,
	// with offset added to the solid's location.
	Geometry(start, end structure.Atom, offset r3.Vec) (RenderRequest, error)
}

// RenderRequest describes one solid for the host renderer.
type RenderRequest struct {
	Kind        string      // solid kind, e.g. SolidFrustum
	Style       string      // name of the style that produced it
	Name        string      // object name derived from the atom symbols
	Location    r3.Vec      // solid centre, offset applied
	Orientation r3.Rotation // rotates +Z onto start→end
	Euler       [3]float64  // XYZ Euler angles of Orientation, radians
	Depth       float64     // |end − start|
	Radius1     float64     // radius at the start cap
	Radius2     float64     // radius at the end cap
	Vertices    int         // cap tessellation
	Smooth      bool        // smooth shading on all faces
	Material    string      // shared material name, e.g. "glass"
	Inset       Inset       // penetration-corrected endpoints, offset applied
}

// Drawer consumes render requests. scene.Session is the production Drawer.
type Drawer interface {
	DrawSolid(req RenderRequest) error
}

// Spawn computes the geometry of style between start and end and hands it
// to d. It creates exactly one solid on success.
func Spawn(d Drawer, style Style, start, end structure.Atom, offset r3.Vec) error {
	if d == nil {
		return ErrNilDrawer
	}
	req, err := style.Geometry(start, end, offset)
	if err != nil {
		return fmt.Errorf("Spawn %s: %w", style.Name(), err)
	}

	return d.DrawSolid(req)
}

// StyleByName returns a fresh style for name (case-insensitive).
// The frustum style is built with opts; conic ignores them.
func StyleByName(name string, opts ...FrustumOption) (Style, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case StyleFrustum, "":
		return NewFrustum(opts...), nil
	case StyleConic:
		return Conic{}, nil
	default:
		return nil, fmt.Errorf("StyleByName(%q): %w", name, ErrUnknownStyle)
	}
}

// DefaultStyle returns a Frustum with default parameters.
func DefaultStyle() Style { return NewFrustum() }

// Conic is the historical cone style. It has no implementation and always
// reports ErrStyleNotSupported.
type Conic struct{}

// Name implements Style.
func (Conic) Name() string { return StyleConic }

// Geometry implements Style; it always fails.
func (Conic) Geometry(structure.Atom, structure.Atom, r3.Vec) (RenderRequest, error) {
	return RenderRequest{}, ErrStyleNotSupported
}
