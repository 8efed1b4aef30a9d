// SPDX-License-Identifier: MIT

package scene

import (
	"fmt"

	"github.com/katalvlaran/hydridic/element"
)

// Material naming.
const (
	MaterialPrefix    = "hydridic"
	GenericChemicalID = "Generic"
)

// MaterialKey returns the cache key of a material called name.
// Singleton keys ignore chemicalID.
func MaterialKey(name, chemicalID string, singleton bool) string {
	if singleton || chemicalID == "" {
		return fmt.Sprintf("%s_%s", MaterialPrefix, name)
	}

	return fmt.Sprintf("%s_%s_%s", MaterialPrefix, name, chemicalID)
}

// ElementMaterial returns the shader parameters of an element: Jmol colour
// (carbon drawn black), metals shiny without clearcoat, others matte with
// clearcoat.
func ElementMaterial(key string, e element.Element) MaterialSpec {
	color := e.RGBA()
	if e.Symbol == "C" {
		color = [4]float64{0, 0, 0, 1}
	}
	spec := MaterialSpec{Name: key, Color: color}
	if e.IsMetal() {
		spec.Metallic, spec.Roughness, spec.Clearcoat = 1, 0.2, 0
	} else {
		spec.Metallic, spec.Roughness, spec.Clearcoat = 0, 1, 1
	}

	return spec
}

// GlassMaterial returns the translucent material shared by bonds.
func GlassMaterial(key string) MaterialSpec {
	return MaterialSpec{
		Name:         key,
		Color:        [4]float64{1, 1, 1, 0.3},
		Roughness:    0.05,
		Transmission: 1,
	}
}
