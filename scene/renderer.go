// SPDX-License-Identifier: MIT

package scene

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/hydridic/bond"
)

//go:generate mockgen -destination=../internal/mock/renderer.go -package=mock github.com/katalvlaran/hydridic/scene Renderer

// ObjectID identifies an object created by a Renderer. Zero is never valid.
type ObjectID uint64

// MaterialID identifies a material known to a Renderer. Zero is never valid.
type MaterialID uint64

// RootCollection is the collection every scene starts with.
const RootCollection = "Scene Collection"

// FrustumSpec describes a tapered cylinder along its local +Z axis.
type FrustumSpec struct {
	Name        string      `json:"name"`
	Location    r3.Vec      `json:"location"`
	Orientation r3.Rotation `json:"orientation"`
	Euler       [3]float64  `json:"euler"`
	Depth       float64     `json:"depth"`
	Radius1     float64     `json:"radius1"`
	Radius2     float64     `json:"radius2"`
	Vertices    int         `json:"vertices"`
	Inset       bond.Inset  `json:"inset"` // penetration-corrected endpoints and flare points
}

// SphereSpec describes a sphere used as an instancing template.
type SphereSpec struct {
	Name     string  `json:"name"`
	Location r3.Vec  `json:"location"`
	Radius   float64 `json:"radius"`
	Hidden   bool    `json:"hidden"` // hidden from viewport and render
}

// MaterialSpec holds principled-shader parameters.
type MaterialSpec struct {
	Name         string     `json:"name"`
	Color        [4]float64 `json:"color"` // RGBA in [0,1]
	Metallic     float64    `json:"metallic"`
	Roughness    float64    `json:"roughness"`
	Clearcoat    float64    `json:"clearcoat"`
	Transmission float64    `json:"transmission"`
}

// Solids creates geometry in the active collection.
type Solids interface {
	AddFrustum(spec FrustumSpec) (ObjectID, error)
	AddSphere(spec SphereSpec) (ObjectID, error)
	AddPointCloud(name string, points []r3.Vec) (ObjectID, error)
	SetSmooth(id ObjectID) error
	SetParent(child, parent ObjectID) error
}

// Materials manages named materials.
type Materials interface {
	// Material returns the existing material called name, if any.
	Material(name string) (MaterialID, bool)
	NewMaterial(spec MaterialSpec) (MaterialID, error)
	AssignMaterial(object ObjectID, material MaterialID) error
}

// Collections manages the namespace objects are linked into.
type Collections interface {
	// LinkCollection creates collection name under parent ("" is the root).
	// It returns ErrCollectionExists when the name is taken.
	LinkCollection(name, parent string) error
	ActiveCollection() string
	SetActiveCollection(name string) error
}

// Renderer is the full host capability set.
type Renderer interface {
	Solids
	Materials
	Collections
}
