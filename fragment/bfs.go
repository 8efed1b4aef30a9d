// SPDX-License-Identifier: MIT

package fragment

import (
	"context"
	"fmt"

	"github.com/katalvlaran/hydridic/matrix"
)

// queueItem pairs an atom with its BFS depth.
type queueItem struct {
	atom  int
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	adj   *matrix.Adjacency
	opts  Options
	ctx   context.Context
	queue []queueItem
	res   *Result
}

// BFS runs breadth-first search over adj starting at start.
func BFS(adj *matrix.Adjacency, start int, opts ...Option) (*Result, error) {
	if adj == nil {
		return nil, ErrAdjacencyNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	n := adj.Size()
	if start < 0 || start >= n {
		return nil, fmt.Errorf("BFS(%d) over %d atoms: %w", start, n, ErrStartOutOfRange)
	}

	w := &walker{
		adj:   adj,
		opts:  o,
		ctx:   o.Ctx,
		queue: make([]queueItem, 0, n),
		res:   newResult(start, n),
	}
	w.enqueue(start, 0, -1)

	return w.res, w.loop()
}

func newResult(start, n int) *Result {
	r := &Result{Start: start, Order: make([]int, 0, n), Depth: make([]int, n), Parent: make([]int, n)}
	for i := range r.Depth {
		r.Depth[i] = -1
		r.Parent[i] = -1
	}

	return r
}

// enqueue marks atom reached at depth d and appends it to the queue.
func (w *walker) enqueue(atom, d, parent int) {
	w.res.Depth[atom] = d
	w.res.Parent[atom] = parent
	w.queue = append(w.queue, queueItem{atom: atom, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		w.res.Order = append(w.res.Order, item.atom)
		if err := w.opts.OnVisit(item.atom, item.depth); err != nil {
			return fmt.Errorf("fragment: OnVisit error at atom %d: %w", item.atom, err)
		}
		w.enqueueNeighbors(item)
	}

	return nil
}

// enqueueNeighbors applies filtering and MaxDepth and enqueues unseen atoms.
func (w *walker) enqueueNeighbors(item queueItem) {
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return
	}
	// item.atom is in range, so Neighbors cannot fail.
	nbrs, _ := w.adj.Neighbors(item.atom)
	for _, nbr := range nbrs {
		if !w.opts.FilterNeighbor(item.atom, nbr) {
			continue
		}
		if w.res.Depth[nbr] < 0 {
			w.enqueue(nbr, next, item.atom)
		}
	}
}
