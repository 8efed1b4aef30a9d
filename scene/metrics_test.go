// SPDX-License-Identifier: MIT

package scene

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/hydridic/structure"
)

func TestImportMetrics(t *testing.T) {
	o, err := structure.NewAtom("O", r3.Vec{})
	require.NoError(t, err)
	h1, err := structure.NewAtom("H", r3.Vec{X: 0.958})
	require.NoError(t, err)
	h2, err := structure.NewAtom("H", r3.Vec{X: -0.240, Y: 0.927})
	require.NoError(t, err)
	water := structure.New([]structure.Atom{o, h1, h2}, structure.WithName("water"))

	s, err := NewSession(NewRecorder())
	require.NoError(t, err)

	bonds := testutil.ToFloat64(sessionBondsDrawnTotal.WithLabelValues("frustum"))
	frusta := testutil.ToFloat64(sessionObjectsCreatedTotal.WithLabelValues("frustum"))
	clouds := testutil.ToFloat64(sessionObjectsCreatedTotal.WithLabelValues("point_cloud"))
	created := testutil.ToFloat64(sessionMaterialsTotal.WithLabelValues("created"))
	cached := testutil.ToFloat64(sessionMaterialsTotal.WithLabelValues("cached"))

	_, err = NewImporter(s).Import(context.Background(), water)
	require.NoError(t, err)

	assert.InDelta(t, 2, testutil.ToFloat64(sessionBondsDrawnTotal.WithLabelValues("frustum"))-bonds, 0)
	assert.InDelta(t, 2, testutil.ToFloat64(sessionObjectsCreatedTotal.WithLabelValues("frustum"))-frusta, 0)
	assert.InDelta(t, 2, testutil.ToFloat64(sessionObjectsCreatedTotal.WithLabelValues("point_cloud"))-clouds, 0)
	// H, O and glass are created; the second bond reuses glass.
	assert.InDelta(t, 3, testutil.ToFloat64(sessionMaterialsTotal.WithLabelValues("created"))-created, 0)
	assert.InDelta(t, 1, testutil.ToFloat64(sessionMaterialsTotal.WithLabelValues("cached"))-cached, 0)
}
