// SPDX-License-Identifier: MIT

package fragment_test

import (
	"fmt"

	"github.com/katalvlaran/hydridic/fragment"
	"github.com/katalvlaran/hydridic/matrix"
)

// ExampleComponents splits a water dimer into its two molecules.
func ExampleComponents() {
	b, _ := matrix.NewBuilder(6)
	_ = b.Add(0, 1)
	_ = b.Add(0, 2)
	_ = b.Add(3, 4)
	_ = b.Add(3, 5)

	fmt.Println(fragment.Components(b.Build()))
	// Output:
	// [[0 1 2] [3 4 5]]
}
