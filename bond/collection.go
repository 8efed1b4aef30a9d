// SPDX-License-Identifier: MIT

package bond

import (
	"context"
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/hydridic/matrix"
	"github.com/katalvlaran/hydridic/neighbor"
	"github.com/katalvlaran/hydridic/structure"
)

// DefaultSkin is added to every natural cutoff of a Collection unless
// WithCutoffs or a WithNeighborOptions(neighbor.WithSkin(...)) says otherwise.
const DefaultSkin = 0.3

// Options configures NewCollection.
type Options struct {
	Style           Style
	Cutoffs         []float64               // explicit per-atom cutoffs; nil derives natural ones
	NeighborOptions []neighbor.CutoffOption // applied after the default skin
}

// Option mutates Options.
type Option func(*Options)

// WithStyle sets the initial style. Panics on nil.
func WithStyle(s Style) Option {
	if s == nil {
		panic("bond: WithStyle(nil)")
	}

	return func(o *Options) { o.Style = s }
}

// WithCutoffs uses the given per-atom cutoffs verbatim (copied).
// Their length is checked when the adjacency is computed.
func WithCutoffs(cutoffs []float64) Option {
	c := append([]float64(nil), cutoffs...)

	return func(o *Options) { o.Cutoffs = c }
}

// WithNeighborOptions tunes natural cutoff derivation (multiplier,
// overrides, skin). Ignored when WithCutoffs is given.
func WithNeighborOptions(opts ...neighbor.CutoffOption) Option {
	return func(o *Options) { o.NeighborOptions = append(o.NeighborOptions, opts...) }
}

// Collection is the memoized bond set of one structure.
type Collection struct {
	structure *structure.Structure
	cutoffs   []float64
	style     Style

	adjacency *matrix.Adjacency
	adjErr    error
	adjDone   bool // adjacency computed (or failed)

	bonds    []*Bond
	computed bool // bonds derived from adjacency
}

// NewCollection prepares a lazy bond set for s. Nothing is computed yet.
// The structure is referenced, not copied; indices and positions must stay
// fixed for the lifetime of the Collection.
func NewCollection(s *structure.Structure, opts ...Option) *Collection {
	o := Options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.Style == nil {
		o.Style = DefaultStyle()
	}
	cut := o.Cutoffs
	if cut == nil {
		nopts := append([]neighbor.CutoffOption{neighbor.WithSkin(DefaultSkin)}, o.NeighborOptions...)
		cut = neighbor.NaturalCutoffs(s, nopts...)
	}

	return &Collection{structure: s, cutoffs: cut, style: o.Style}
}

// Structure returns the owning structure.
func (c *Collection) Structure() *structure.Structure { return c.structure }

// Cutoffs returns a copy of the per-atom cutoffs.
func (c *Collection) Cutoffs() []float64 { return append([]float64(nil), c.cutoffs...) }

// Adjacency computes the bond adjacency on first call and returns the
// memoized result (or error) afterwards.
func (c *Collection) Adjacency() (*matrix.Adjacency, error) {
	if !c.adjDone {
		c.adjacency, c.adjErr = neighbor.Detect(c.structure, c.cutoffs)
		c.adjDone = true
	}

	return c.adjacency, c.adjErr
}

// Bonds derives the bond list from the adjacency on first call and returns
// a copy of the current list afterwards, edits included. A detector error is
// memoized too; the list then stays empty.
// Entries referencing atoms outside the structure panic.
func (c *Collection) Bonds() ([]*Bond, error) {
	if !c.computed {
		c.computed = true
		c.bonds = nil
		adj, err := c.Adjacency()
		if err != nil {
			return nil, fmt.Errorf("Bonds: %w", err)
		}
		rows, cols, _ := adj.Find()
		c.bonds = make([]*Bond, len(rows))
		for k := range rows {
			src := Endpoint{Index: rows[k], Atom: c.structure.Atoms[rows[k]]}
			dst := Endpoint{Index: cols[k], Atom: c.structure.Atoms[cols[k]]}
			c.bonds[k] = NewBond(src, dst, c.style)
		}
	}
	if _, err := c.Adjacency(); err != nil {
		return nil, fmt.Errorf("Bonds: %w", err)
	}

	return append([]*Bond(nil), c.bonds...), nil
}

// Materialize forces Bonds and discards the list copy.
func (c *Collection) Materialize() error {
	_, err := c.Bonds()

	return err
}

// HasComputed reports whether the bond list has been derived.
func (c *Collection) HasComputed() bool { return c.computed }

// Style returns the collection's style reference.
func (c *Collection) Style() Style { return c.style }

// SetStyle stores s and, if bonds were already derived, points every bond at
// s. Bonds appended later keep whatever style they were built with.
// nil resets to DefaultStyle().
func (c *Collection) SetStyle(s Style) {
	if s == nil {
		s = DefaultStyle()
	}
	c.style = s
	if c.computed {
		for _, b := range c.bonds {
			b.style = s
		}
	}
}

// Draw draws every bond of the current list through d, in order, and
// returns the number drawn. The context is checked between bonds; the first
// failure stops the walk.
func (c *Collection) Draw(ctx context.Context, d Drawer, offset r3.Vec) (int, error) {
	if d == nil {
		return 0, fmt.Errorf("Collection.Draw: %w", ErrNilDrawer)
	}
	bonds, err := c.Bonds()
	if err != nil {
		return 0, err
	}
	for k, b := range bonds {
		select {
		case <-ctx.Done():
			return k, ctx.Err()
		default:
		}
		if _, err = b.Draw(d, offset); err != nil {
			return k, err
		}
	}

	return len(bonds), nil
}
