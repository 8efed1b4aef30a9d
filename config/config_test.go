// SPDX-License-Identifier: MIT

package config_test

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/hydridic/bond"
	"github.com/katalvlaran/hydridic/config"
	"github.com/katalvlaran/hydridic/neighbor"
	"github.com/katalvlaran/hydridic/structure"
)

func TestDefault(t *testing.T) {
	c := config.Default()
	require.NoError(t, c.Validate())
	assert.InDelta(t, 1.0, c.CutoffMultiplier, 0)
	assert.InDelta(t, bond.DefaultSkin, c.Skin, 0)
	assert.Equal(t, config.Style{Name: "frustum", ScaleFactor: 0.8, Vertices: 32, FlareFraction: 0.1}, c.Style)
	assert.True(t, c.SingletonMaterials)
	assert.True(t, c.Center)

	empty, err := config.Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, c, empty)
}

func TestParsePartial(t *testing.T) {
	c, err := config.Parse([]byte(`
cutoff_multiplier: 1.2
overrides:
  h: 0.5
style:
  vertices: 12
cursor: [1, 2, 3]
collection: mol
`))
	require.NoError(t, err)
	assert.InDelta(t, 1.2, c.CutoffMultiplier, 0)
	assert.InDelta(t, bond.DefaultSkin, c.Skin, 0, "absent keys keep defaults")
	assert.Equal(t, map[string]float64{"h": 0.5}, c.Overrides)
	assert.Equal(t, 12, c.Style.Vertices)
	assert.Equal(t, "frustum", c.Style.Name)
	assert.Equal(t, [3]float64{1, 2, 3}, c.Cursor)
	assert.Equal(t, "mol", c.Collection)
}

func TestParseRejects(t *testing.T) {
	cases := []struct {
		name string
		in   string
	}{
		{"Multiplier", "cutoff_multiplier: 0"},
		{"Skin", "skin: -0.1"},
		{"UnknownOverride", "overrides: {Qq: 0.5}"},
		{"NegativeOverride", "overrides: {H: -1}"},
		{"Style", "style: {name: ribbon}"},
		{"ScaleFactor", "style: {scale_factor: 0}"},
		{"Vertices", "style: {vertices: 2}"},
		{"Flare", "style: {flare_fraction: 0.7}"},
		{"Cursor", "cursor: [1, .inf, 0]"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := config.Parse([]byte(tc.in))
			require.ErrorIs(t, err, config.ErrInvalidConfig)
		})
	}

	t.Run("UnknownKey", func(t *testing.T) {
		_, err := config.Parse([]byte("skni: 0.3"))
		require.Error(t, err)
	})
	t.Run("Syntax", func(t *testing.T) {
		_, err := config.Parse([]byte("style: [unterminated"))
		require.Error(t, err)
	})
	t.Run("CursorLength", func(t *testing.T) {
		_, err := config.Parse([]byte("cursor: [1, 2]"))
		require.Error(t, err)
	})
	t.Run("Joined", func(t *testing.T) {
		c := config.Default()
		c.Skin = math.NaN()
		c.Style.Vertices = 0
		err := c.Validate()
		require.ErrorIs(t, err, config.ErrInvalidConfig)
		assert.Contains(t, err.Error(), "skin")
		assert.Contains(t, err.Error(), "style.vertices")
	})
}

func TestMarshalRoundTrip(t *testing.T) {
	c := config.Default()
	c.CutoffMultiplier = 1.15
	c.Overrides = map[string]float64{"O": 0.7, "H": 0.35}
	c.Style.Name = "conic"
	c.SingletonMaterials = false
	c.Cursor = [3]float64{0, 0.5, -1}

	data, err := c.Marshal()
	require.NoError(t, err)
	back, err := config.Parse(data)
	require.NoError(t, err)
	assert.Equal(t, c, back)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "hydridic.yaml")
	require.NoError(t, os.WriteFile(path, []byte("skin: 0\n"), 0o644))

	c, err := config.Load(path)
	require.NoError(t, err)
	assert.InDelta(t, 0, c.Skin, 0)

	_, err = config.Load(filepath.Join(dir, "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)

	require.NoError(t, os.WriteFile(path, []byte("skin: -1\n"), 0o644))
	_, err = config.Load(path)
	require.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestNeighborOptions(t *testing.T) {
	h, err := structure.NewAtom("H", r3.Vec{})
	require.NoError(t, err)
	o, err := structure.NewAtom("O", r3.Vec{X: 1})
	require.NoError(t, err)
	s := structure.New([]structure.Atom{h, o})

	c := config.Default()
	c.CutoffMultiplier = 2
	c.Skin = 0.1
	c.Overrides = map[string]float64{"O": 0.5}

	cut := neighbor.NaturalCutoffs(s, c.NeighborOptions()...)
	require.Len(t, cut, 2)
	assert.InDelta(t, 2*0.31+0.1, cut[0], 1e-12)
	assert.InDelta(t, 0.5+0.1, cut[1], 1e-12, "overrides are not scaled")
}

func TestStyleAndOptions(t *testing.T) {
	c := config.Default()
	c.Style.ScaleFactor = 0.5
	c.Style.Vertices = 6

	st, err := c.BondStyle()
	require.NoError(t, err)
	f, ok := st.(*bond.Frustum)
	require.True(t, ok)
	assert.InDelta(t, 0.5, f.ScaleFactor, 0)
	assert.Equal(t, 6, f.Vertices)

	opts, err := c.BondOptions()
	require.NoError(t, err)
	require.Len(t, opts, 2)
	assert.Len(t, c.SessionOptions(), 1)

	iopts, err := c.ImportOptions()
	require.NoError(t, err)
	assert.Len(t, iopts, 4)
	c.Collection = "mol"
	iopts, err = c.ImportOptions()
	require.NoError(t, err)
	assert.Len(t, iopts, 5)

	c.Style.Name = "Conic"
	st, err = c.BondStyle()
	require.NoError(t, err)
	assert.Equal(t, bond.StyleConic, st.Name())

	c.Style.Vertices = 1
	_, err = c.BondOptions()
	require.ErrorIs(t, err, config.ErrInvalidConfig)
	_, err = c.ImportOptions()
	require.ErrorIs(t, err, config.ErrInvalidConfig)
}
