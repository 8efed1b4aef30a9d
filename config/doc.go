// SPDX-License-Identifier: MIT

// Package config reads hydridic settings from YAML and turns them into the
// functional options of the neighbor, bond and scene packages.
//
// A file only needs the keys it changes; absent keys keep the package
// defaults:
//
//	cutoff_multiplier: 1.1
//	skin: 0.3
//	overrides:
//	  H: 0.4
//	style:
//	  name: frustum
//	  scale_factor: 0.8
//	  vertices: 32
//	  flare_fraction: 0.1
//	singleton_materials: true
//	center: true
//	cursor: [0, 0, 0]
//	collection: ""
//
// Unknown keys are rejected so that typos surface instead of silently
// falling back to defaults.
package config
