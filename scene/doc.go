// SPDX-License-Identifier: MIT

// Package scene connects bond geometry to a host 3D renderer.
//
// Renderer is the capability interface a host implements: create solids,
// spheres and point clouds, manage named materials, and switch the active
// collection (namespace) new objects are linked into.
//
// Session wraps one Renderer for the lifetime of a rendering session. It
// owns the material cache (keyed "hydridic_<name>" or, with per-chemical
// materials, "hydridic_<name>_<chemical id>"), implements bond.Drawer, and
// scopes collection switches so that the previous active collection is
// restored on every exit path, panics included.
//
// Importer places a whole structure: one point cloud and one hidden instance
// sphere per element, then every bond drawn with the configured style.
//
// Recorder is an in-memory Renderer that records every command; the CLI and
// the tests render into it.
package scene
