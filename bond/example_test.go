// SPDX-License-Identifier: MIT

package bond_test

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/hydridic/bond"
	"github.com/katalvlaran/hydridic/structure"
)

// ExampleCollection computes the bonds of water and the geometry of the
// first one.
func ExampleCollection() {
	s, _ := structure.ReadXYZ(strings.NewReader("3\nwater\nO 0 0 0\nH 0.7572 0.5865 0\nH -0.7572 0.5865 0\n"))

	c := bond.NewCollection(s)
	fmt.Println("before:", c.Len(), c.HasComputed())

	bonds, _ := c.Bonds()
	fmt.Println("after:", c.Len(), c.HasComputed())
	for _, b := range bonds {
		fmt.Printf("%s %.3f\n", b.Name(), b.Length())
	}

	req, _ := bonds[0].Geometry(r3.Vec{})
	fmt.Printf("%s depth=%.3f r1=%.3f r2=%.3f\n", req.Name, req.Depth, req.Radius1, req.Radius2)
	// Output:
	// before: 0 false
	// after: 2 true
	// Bond_O0-H1 0.958
	// Bond_O0-H2 0.958
	// Bond_O-H depth=0.958 r1=0.528 r2=0.248
}
