// SPDX-License-Identifier: MIT

package bond_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/hydridic/bond"
	"github.com/katalvlaran/hydridic/structure"
)

const ethanolXYZ = `9
ethanol
C   1.1879  -0.3829   0.0000
C   0.0000   0.5526   0.0000
O  -1.1867  -0.2472   0.0000
H  -1.9237   0.3850   0.0000
H   2.0985   0.2306   0.0000
H   1.1184  -1.0093   0.8869
H   1.1184  -1.0093  -0.8869
H  -0.0227   1.1812   0.8852
H  -0.0227   1.1812  -0.8852
`

func ethanol(t *testing.T) *structure.Structure {
	t.Helper()
	s, err := structure.ReadXYZ(strings.NewReader(ethanolXYZ))
	require.NoError(t, err)

	return s
}

func atom(t *testing.T, symbol string, p r3.Vec) structure.Atom {
	t.Helper()
	a, err := structure.NewAtom(symbol, p)
	require.NoError(t, err)

	return a
}

// drawSink records every request; failWith makes DrawSolid fail.
type drawSink struct {
	reqs     []bond.RenderRequest
	failWith error
}

func (d *drawSink) DrawSolid(req bond.RenderRequest) error {
	if d.failWith != nil {
		return d.failWith
	}
	d.reqs = append(d.reqs, req)

	return nil
}

func TestNewBondDefaultsStyle(t *testing.T) {
	b := bond.NewBond(bond.Endpoint{Index: 0, Atom: atom(t, "C", r3.Vec{})}, bond.Endpoint{Index: 2, Atom: atom(t, "O", r3.Vec{X: 1.43})}, nil)

	require.NotNil(t, b.Style())
	assert.Equal(t, bond.StyleFrustum, b.Style().Name())
	assert.Equal(t, "Bond_C0-O2", b.Name())
	assert.Equal(t, [2]string{"C", "O"}, b.Symbols())
	assert.InDelta(t, 1.43, b.Length(), 1e-12)
	i, j := b.Indices()
	assert.Equal(t, [2]int{0, 2}, [2]int{i, j})
}

func TestReverseRoundTripKeepsStyle(t *testing.T) {
	style := bond.NewFrustum(bond.WithScaleFactor(0.5))
	b := bond.NewBond(bond.Endpoint{Index: 1, Atom: atom(t, "C", r3.Vec{})}, bond.Endpoint{Index: 4, Atom: atom(t, "H", r3.Vec{Y: 1})}, style)

	r := b.Reverse()
	ri, rj := r.Indices()
	assert.Equal(t, [2]int{4, 1}, [2]int{ri, rj})
	assert.Same(t, style, r.Style())

	rr := r.Reverse()
	i, j := rr.Indices()
	assert.Equal(t, [2]int{1, 4}, [2]int{i, j})
	assert.Equal(t, b.Source(), rr.Source())
	assert.Equal(t, b.Destination(), rr.Destination())

	// The original is untouched.
	i, j = b.Indices()
	assert.Equal(t, [2]int{1, 4}, [2]int{i, j})
}

func TestDrawEmitsOneSolidAndChains(t *testing.T) {
	b := bond.NewBond(bond.Endpoint{Index: 0, Atom: atom(t, "C", r3.Vec{})}, bond.Endpoint{Index: 1, Atom: atom(t, "C", r3.Vec{Z: 1.5})}, nil)
	sink := &drawSink{}

	got, err := b.Draw(sink, r3.Vec{X: 10})
	require.NoError(t, err)
	assert.Same(t, b, got)
	require.Len(t, sink.reqs, 1)
	assert.Equal(t, r3.Vec{X: 10, Z: 0.75}, sink.reqs[0].Location)
	assert.Equal(t, "Bond_C-C", sink.reqs[0].Name)
}

func TestDrawErrors(t *testing.T) {
	mk := func(s bond.Style) *bond.Bond {
		return bond.NewBond(bond.Endpoint{Atom: atom(t, "H", r3.Vec{})}, bond.Endpoint{Index: 1, Atom: atom(t, "H", r3.Vec{X: 0.7})}, s)
	}

	_, err := mk(nil).Draw(nil, r3.Vec{})
	require.ErrorIs(t, err, bond.ErrNilDrawer)

	sink := &drawSink{}
	_, err = mk(bond.Conic{}).Draw(sink, r3.Vec{})
	require.ErrorIs(t, err, bond.ErrStyleNotSupported)
	assert.Empty(t, sink.reqs)

	boom := errors.New("renderer down")
	_, err = mk(nil).Draw(&drawSink{failWith: boom}, r3.Vec{})
	require.ErrorIs(t, err, boom)
}

func TestStyleByName(t *testing.T) {
	s, err := bond.StyleByName(" Frustum ", bond.WithVertices(8))
	require.NoError(t, err)
	f, ok := s.(*bond.Frustum)
	require.True(t, ok)
	assert.Equal(t, 8, f.Vertices)

	s, err = bond.StyleByName("conic")
	require.NoError(t, err)
	assert.Equal(t, bond.StyleConic, s.Name())

	_, err = bond.StyleByName("ribbon")
	require.ErrorIs(t, err, bond.ErrUnknownStyle)
}
