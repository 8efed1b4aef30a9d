// SPDX-License-Identifier: MIT

package fragment

import "github.com/katalvlaran/hydridic/matrix"

// Components returns the bonded fragments of adj. Each fragment lists its
// atoms ascending; fragments are ordered by their smallest atom. Isolated
// atoms form single-atom fragments. A nil adjacency has no fragments.
// Complexity: O(n + E).
func Components(adj *matrix.Adjacency) [][]int {
	n := adj.Size()
	comp := Labels(adj)
	count := 0
	for _, c := range comp {
		count = max(count, c+1)
	}
	out := make([][]int, count)
	for i := 0; i < n; i++ {
		out[comp[i]] = append(out[comp[i]], i)
	}

	return out
}

// Labels returns, per atom, the index of its fragment in Components order.
func Labels(adj *matrix.Adjacency) []int {
	n := adj.Size()
	label := make([]int, n)
	for i := range label {
		label[i] = -1
	}
	next := 0
	queue := make([]int, 0, n)
	for i := 0; i < n; i++ {
		if label[i] >= 0 {
			continue
		}
		label[i] = next
		queue = append(queue[:0], i)
		for qi := 0; qi < len(queue); qi++ {
			nbrs, _ := adj.Neighbors(queue[qi])
			for _, v := range nbrs {
				if label[v] < 0 {
					label[v] = next
					queue = append(queue, v)
				}
			}
		}
		next++
	}

	return label
}

// Count returns the number of bonded fragments.
func Count(adj *matrix.Adjacency) int {
	return len(Components(adj))
}
