// SPDX-License-Identifier: MIT

package fragment

import "github.com/katalvlaran/hydridic/matrix"

// Visitation colours of the ring search.
const (
	white = iota // unvisited
	gray         // on the DFS stack
	black        // finished
)

// ringWalker holds the DFS state of RingBonds.
type ringWalker struct {
	adj   *matrix.Adjacency
	color []int
	disc  []int // discovery time
	low   []int // lowest discovery time reachable through one back edge
	time  int
	cut   map[[2]int]struct{} // bridges, keyed (min, max)
}

// RingBonds returns the bonds that lie on at least one ring, as (i, j)
// pairs with i < j in ascending order. A pair bonded through two or more
// periodic images closes a ring on its own. Bridges, whose removal splits
// a fragment, are never ring bonds. A nil adjacency has no ring bonds.
// Complexity: O(n + E).
func RingBonds(adj *matrix.Adjacency) [][2]int {
	n := adj.Size()
	w := &ringWalker{
		adj:   adj,
		color: make([]int, n),
		disc:  make([]int, n),
		low:   make([]int, n),
		cut:   make(map[[2]int]struct{}),
	}
	for v := 0; v < n; v++ {
		if w.color[v] == white {
			w.visit(v, -1)
		}
	}

	var out [][2]int
	for _, e := range adj.Entries() {
		if _, bridge := w.cut[[2]int{e.Row, e.Col}]; bridge && e.Order < 2 {
			continue
		}
		out = append(out, [2]int{e.Row, e.Col})
	}

	return out
}

// visit runs the bridge-finding DFS from u, reached from parent.
func (w *ringWalker) visit(u, parent int) {
	w.color[u] = gray
	w.disc[u], w.low[u] = w.time, w.time
	w.time++

	nbrs, _ := w.adj.Neighbors(u)
	for _, v := range nbrs {
		switch w.color[v] {
		case white:
			w.visit(v, u)
			w.low[u] = min(w.low[u], w.low[v])
			if w.low[v] > w.disc[u] {
				w.cut[[2]int{min(u, v), max(u, v)}] = struct{}{}
			}
		case gray:
			// Back edge, unless it is the tree edge to the parent.
			if v != parent {
				w.low[u] = min(w.low[u], w.disc[v])
			}
		}
	}
	w.color[u] = black
}

// RingCount returns the number of independent rings (the cycle rank):
// bonds minus atoms plus fragments. Periodic orders are not counted.
func RingCount(adj *matrix.Adjacency) int {
	return adj.NNZ() - adj.Size() + Count(adj)
}
