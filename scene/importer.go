// SPDX-License-Identifier: MIT

package scene

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/hydridic/bond"
	"github.com/katalvlaran/hydridic/element"
	"github.com/katalvlaran/hydridic/fragment"
	"github.com/katalvlaran/hydridic/structure"
)

// DefaultCollection names imports of structures without a name.
const DefaultCollection = "New Chemical Structure"

// maxCollectionSuffix bounds the ".NNN" suffixes tried for a taken name.
const maxCollectionSuffix = 999

// Importer places structures into a Session.
type Importer struct {
	session     *Session
	style       bond.Style
	cursor      r3.Vec
	center      bool
	collection  string
	chemicalID  string
	bondOptions []bond.Option
}

// ImportOption configures an Importer.
type ImportOption func(*Importer)

// WithStyle sets the bond style. Panics on nil.
func WithStyle(st bond.Style) ImportOption {
	if st == nil {
		panic("scene: WithStyle(nil)")
	}

	return func(im *Importer) { im.style = st }
}

// WithCursor sets the offset added to every position (the 3D cursor).
func WithCursor(c r3.Vec) ImportOption {
	return func(im *Importer) { im.cursor = c }
}

// WithCenter toggles centring of aperiodic structures on the origin
// before the cursor offset is applied. Default true.
func WithCenter(on bool) ImportOption {
	return func(im *Importer) { im.center = on }
}

// WithCollection overrides the collection name (default: the structure name).
func WithCollection(name string) ImportOption {
	return func(im *Importer) { im.collection = name }
}

// WithImportChemicalID fixes the chemical id used for per-chemical
// materials; by default each import gets a fresh UUID.
func WithImportChemicalID(id string) ImportOption {
	return func(im *Importer) { im.chemicalID = id }
}

// WithBondOptions forwards options to bond.NewCollection.
func WithBondOptions(opts ...bond.Option) ImportOption {
	return func(im *Importer) { im.bondOptions = append(im.bondOptions, opts...) }
}

// NewImporter returns an Importer drawing into session.
func NewImporter(session *Session, opts ...ImportOption) *Importer {
	im := &Importer{session: session, center: true}
	for _, opt := range opts {
		opt(im)
	}
	if im.style == nil {
		im.style = bond.DefaultStyle()
	}

	return im
}

// Report summarises one import.
type Report struct {
	Collection string   `json:"collection"`
	ChemicalID string   `json:"chemical_id"`
	Atoms      int      `json:"atoms"`
	Elements   []string `json:"elements"`
	Bonds      int      `json:"bonds"`
	Fragments  int      `json:"fragments"`
	RingBonds  int      `json:"ring_bonds"`
	Objects    int      `json:"objects"`
}

// Import places s into a new collection:
//
//	Stage 1 (Validate): session open, structure present.
//	Stage 2 (Prepare): centre aperiodic structures, link a uniquely named collection.
//	Stage 3 (Execute): inside the collection, per element a point cloud
//	"PointCloud_<sym>_<collection>" and a hidden sphere "instance_<sym>"
//	parented to it, then every bond of the structure.
//
// The context is checked between elements and between bonds. Objects
// created before a failure are left in the scene.
func (im *Importer) Import(ctx context.Context, s *structure.Structure) (*Report, error) {
	if im.session == nil {
		return nil, fmt.Errorf("Import: %w", ErrNilSession)
	}
	if err := im.session.checkOpen("Import"); err != nil {
		return nil, err
	}
	if s == nil {
		return nil, fmt.Errorf("Import: %w", ErrNilStructure)
	}
	start := time.Now()
	defer func() { importDurationSeconds.Observe(time.Since(start).Seconds()) }()

	if im.center && !s.Periodic() {
		s = s.Centered(r3.Vec{})
	}
	name := im.collection
	if name == "" {
		name = s.Name
	}
	if name == "" {
		name = DefaultCollection
	}
	name, err := im.linkUnique(name)
	if err != nil {
		return nil, err
	}
	chem := im.chemicalID
	if chem == "" {
		chem = uuid.NewString()
	}

	rep := &Report{Collection: name, ChemicalID: chem, Atoms: s.Len(), Elements: s.Symbols()}
	err = im.session.InCollection(name, func() error {
		for _, sym := range rep.Elements {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := im.placeElement(s, sym, name, chem); err != nil {
				return err
			}
			rep.Objects += 2
		}

		coll := bond.NewCollection(s, append([]bond.Option{bond.WithStyle(im.style)}, im.bondOptions...)...)
		n, err := coll.Draw(ctx, im.session.Drawer(chem), im.cursor)
		rep.Bonds = n
		rep.Objects += n
		if err != nil {
			return err
		}
		adj, err := coll.Adjacency()
		if err != nil {
			return err
		}
		rep.Fragments = fragment.Count(adj)
		rep.RingBonds = len(fragment.RingBonds(adj))

		return nil
	})
	if err != nil {
		return rep, fmt.Errorf("Import %q: %w", name, err)
	}
	im.session.logger.Info("structure imported",
		"collection", rep.Collection,
		"atoms", rep.Atoms,
		"elements", len(rep.Elements),
		"bonds", rep.Bonds,
		"fragments", rep.Fragments,
		"ring_bonds", rep.RingBonds)

	return rep, nil
}

// linkUnique links name, or the first free "name.NNN", under the root.
func (im *Importer) linkUnique(name string) (string, error) {
	r := im.session.renderer
	candidate := name
	for k := 1; ; k++ {
		err := r.LinkCollection(candidate, "")
		if err == nil {
			return candidate, nil
		}
		if !errors.Is(err, ErrCollectionExists) || k > maxCollectionSuffix {
			return "", fmt.Errorf("Import: link collection %q: %w", candidate, err)
		}
		candidate = fmt.Sprintf("%s.%03d", name, k)
	}
}

// placeElement creates the point cloud and instance sphere of one element.
func (im *Importer) placeElement(s *structure.Structure, sym, collection, chem string) error {
	r := im.session.renderer
	idx := s.Select(sym)
	pts := make([]r3.Vec, len(idx))
	for k, i := range idx {
		pts[k] = r3.Add(s.Atoms[i].Position, im.cursor)
	}
	cloud, err := r.AddPointCloud(fmt.Sprintf("PointCloud_%s_%s", sym, collection), pts)
	if err != nil {
		return fmt.Errorf("point cloud %s: %w", sym, err)
	}
	sessionObjectsCreatedTotal.WithLabelValues("point_cloud").Inc()

	e, err := element.Lookup(sym)
	if err != nil {
		return err
	}
	sphere, err := r.AddSphere(SphereSpec{
		Name:     "instance_" + sym,
		Location: im.cursor,
		Radius:   e.CovalentRadius,
		Hidden:   true,
	})
	if err != nil {
		return fmt.Errorf("instance %s: %w", sym, err)
	}
	sessionObjectsCreatedTotal.WithLabelValues("sphere").Inc()

	mat, err := im.session.ElementMaterial(sym, chem)
	if err != nil {
		return err
	}
	if err = r.AssignMaterial(sphere, mat); err != nil {
		return fmt.Errorf("instance %s: %w", sym, err)
	}
	if err = r.SetParent(sphere, cloud); err != nil {
		return fmt.Errorf("instance %s: %w", sym, err)
	}

	return nil
}
