// SPDX-License-Identifier: MIT

package scene_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/hydridic/bond"
	"github.com/katalvlaran/hydridic/scene"
)

func TestRecorderObjects(t *testing.T) {
	rec := scene.NewRecorder()

	cloud, err := rec.AddPointCloud("cloud", []r3.Vec{{X: 1}})
	require.NoError(t, err)
	sphere, err := rec.AddSphere(scene.SphereSpec{Name: "s", Radius: 1})
	require.NoError(t, err)
	assert.Equal(t, scene.ObjectID(1), cloud)
	assert.Equal(t, scene.ObjectID(2), sphere)

	require.NoError(t, rec.SetParent(sphere, cloud))
	require.ErrorIs(t, rec.SetParent(sphere, 9), scene.ErrUnknownObject)
	require.ErrorIs(t, rec.SetParent(0, cloud), scene.ErrUnknownObject)
	require.ErrorIs(t, rec.SetSmooth(3), scene.ErrUnknownObject)

	objs := rec.Objects()
	require.Len(t, objs, 2)
	assert.Equal(t, cloud, objs[1].Parent)
	assert.Equal(t, scene.RootCollection, objs[0].Collection)

	// Returned objects are snapshots.
	objs[0].Name = "changed"
	assert.Equal(t, "cloud", rec.Objects()[0].Name)
}

func TestRecorderMaterials(t *testing.T) {
	rec := scene.NewRecorder()
	obj, err := rec.AddFrustum(scene.FrustumSpec{Name: "f"})
	require.NoError(t, err)

	_, ok := rec.Material("m")
	assert.False(t, ok)

	first, err := rec.NewMaterial(scene.MaterialSpec{Name: "m", Roughness: 1})
	require.NoError(t, err)
	second, err := rec.NewMaterial(scene.MaterialSpec{Name: "m", Roughness: 0.5})
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
	assert.Equal(t, 2, rec.MaterialCount())

	found, ok := rec.Material("m")
	require.True(t, ok)
	assert.Equal(t, first, found, "lookup by name returns the first material")

	spec, ok := rec.MaterialSpec(second)
	require.True(t, ok)
	assert.InDelta(t, 0.5, spec.Roughness, 0)
	_, ok = rec.MaterialSpec(0)
	assert.False(t, ok)

	require.NoError(t, rec.AssignMaterial(obj, second))
	require.ErrorIs(t, rec.AssignMaterial(obj, 3), scene.ErrUnknownMaterial)
	require.ErrorIs(t, rec.AssignMaterial(7, first), scene.ErrUnknownObject)
	assert.Equal(t, second, rec.Objects()[0].Material)
}

func TestRecorderCollections(t *testing.T) {
	rec := scene.NewRecorder()
	assert.Equal(t, scene.RootCollection, rec.ActiveCollection())

	require.NoError(t, rec.LinkCollection("mol", ""))
	require.NoError(t, rec.LinkCollection("frag", "mol"))
	require.ErrorIs(t, rec.LinkCollection("mol", ""), scene.ErrCollectionExists)
	require.ErrorIs(t, rec.LinkCollection("x", "nowhere"), scene.ErrUnknownCollection)
	require.ErrorIs(t, rec.SetActiveCollection("nowhere"), scene.ErrUnknownCollection)
	assert.Equal(t, []string{scene.RootCollection, "frag", "mol"}, rec.Collections())

	require.NoError(t, rec.SetActiveCollection("frag"))
	_, err := rec.AddSphere(scene.SphereSpec{Name: "s"})
	require.NoError(t, err)
	assert.Equal(t, "frag", rec.Objects()[0].Collection)
}

func TestRecorderWriteJSON(t *testing.T) {
	rec := scene.NewRecorder()
	require.NoError(t, rec.LinkCollection("mol", ""))
	_, err := rec.AddFrustum(scene.FrustumSpec{
		Name:     "Bond_C-O",
		Depth:    1.43,
		Vertices: 32,
		Inset:    bond.Inset{Start: r3.Vec{X: 0.4}, End: r3.Vec{X: 1.1}},
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, rec.WriteJSON(&buf))

	var cmds []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &cmds))
	require.Len(t, cmds, 2)
	assert.Equal(t, "link_collection", cmds[0]["op"])
	assert.Equal(t, "add_frustum", cmds[1]["op"])
	assert.Equal(t, "Bond_C-O", cmds[1]["name"])
	detail, ok := cmds[1]["detail"].(map[string]any)
	require.True(t, ok)
	assert.InDelta(t, 1.43, detail["depth"], 0)
	inset, ok := detail["inset"].(map[string]any)
	require.True(t, ok)
	start, ok := inset["start"].(map[string]any)
	require.True(t, ok)
	assert.InDelta(t, 0.4, start["X"], 0)
	assert.Contains(t, inset, "flare_end")

	assert.Len(t, rec.Commands(), 2)
}
