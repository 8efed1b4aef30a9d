// SPDX-License-Identifier: MIT

package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/hydridic/matrix"
)

// ExampleBuilder shows accumulation from both triangles and the
// deterministic enumeration order of the frozen Adjacency.
func ExampleBuilder() {
	b, _ := matrix.NewBuilder(4)
	_ = b.Add(2, 0)
	_ = b.Add(0, 1)
	_ = b.Add(3, 2)
	_ = b.Add(3, 2) // a second periodic image of the same neighbour

	adj := b.Build()
	for _, e := range adj.Entries() {
		fmt.Printf("(%d,%d) order=%d\n", e.Row, e.Col, e.Order)
	}
	fmt.Println(adj.Has(1, 0), adj.Has(1, 1))
	// Output:
	// (0,1) order=1
	// (0,2) order=1
	// (2,3) order=2
	// true false
}
