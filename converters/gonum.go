// SPDX-License-Identifier: MIT

package converters

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/hydridic/bond"
	"github.com/katalvlaran/hydridic/matrix"
)

// ErrNilInput is returned for nil collections or adjacencies.
var ErrNilInput = errors.New("converters: nil input")

// Option configures FromCollection.
type Option func(*options)

type options struct {
	weight func(*bond.Bond) float64
}

// WithWeight sets the edge weight function. nil keeps the default (length).
func WithWeight(fn func(*bond.Bond) float64) Option {
	return func(o *options) {
		if fn != nil {
			o.weight = fn
		}
	}
}

// newGraph returns a graph with nodes 0..n-1; self weight 0, absent +Inf.
func newGraph(n int) *simple.WeightedUndirectedGraph {
	g := simple.NewWeightedUndirectedGraph(0, math.Inf(1))
	for i := 0; i < n; i++ {
		g.AddNode(simple.Node(int64(i)))
	}

	return g
}

// FromCollection materializes c if needed and exports its current bond list.
// Bonds repeated in the list collapse into one edge (last weight wins);
// bonds whose endpoints coincide are skipped.
func FromCollection(c *bond.Collection, opts ...Option) (*simple.WeightedUndirectedGraph, error) {
	if c == nil {
		return nil, fmt.Errorf("FromCollection: %w", ErrNilInput)
	}
	o := options{weight: (*bond.Bond).Length}
	for _, opt := range opts {
		opt(&o)
	}
	bonds, err := c.Bonds()
	if err != nil {
		return nil, fmt.Errorf("FromCollection: %w", err)
	}

	g := newGraph(c.Structure().Len())
	for _, b := range bonds {
		i, j := b.Indices()
		if i == j {
			continue
		}
		g.SetWeightedEdge(g.NewWeightedEdge(simple.Node(int64(i)), simple.Node(int64(j)), o.weight(b)))
	}

	return g, nil
}

// FromAdjacency exports adj with edge weight = order.
func FromAdjacency(adj *matrix.Adjacency) (*simple.WeightedUndirectedGraph, error) {
	if adj == nil {
		return nil, fmt.Errorf("FromAdjacency: %w", ErrNilInput)
	}
	g := newGraph(adj.Size())
	for _, e := range adj.Entries() {
		g.SetWeightedEdge(g.NewWeightedEdge(simple.Node(int64(e.Row)), simple.Node(int64(e.Col)), float64(e.Order)))
	}

	return g, nil
}
