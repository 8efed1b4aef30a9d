// SPDX-License-Identifier: MIT

package scene

import "errors"

var (
	// ErrNilRenderer indicates NewSession received no renderer.
	ErrNilRenderer = errors.New("scene: nil renderer")

	// ErrNilSession indicates an Importer built without a session.
	ErrNilSession = errors.New("scene: nil session")

	// ErrSessionClosed indicates use of a Session after Close.
	ErrSessionClosed = errors.New("scene: session closed")

	// ErrUnsupportedSolid indicates a render request of an unknown kind.
	ErrUnsupportedSolid = errors.New("scene: unsupported solid kind")

	// ErrNilStructure indicates Import received no structure.
	ErrNilStructure = errors.New("scene: nil structure")

	// ErrCollectionExists indicates LinkCollection was given a taken name.
	ErrCollectionExists = errors.New("scene: collection already exists")

	// ErrUnknownCollection indicates a collection name the renderer does not know.
	ErrUnknownCollection = errors.New("scene: unknown collection")

	// ErrUnknownObject indicates an ObjectID the renderer did not issue.
	ErrUnknownObject = errors.New("scene: unknown object")

	// ErrUnknownMaterial indicates a MaterialID the renderer did not issue.
	ErrUnknownMaterial = errors.New("scene: unknown material")
)
