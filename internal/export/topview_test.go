package export

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/AirframeDesk/internal/model"
)

func TestBuildTopView(t *testing.T) {
	view := BuildTopView(buildTestAircraft())

	// Fuselage plus the two wing halves.
	require.Len(t, view.Outlines, 3)
	assert.Equal(t, LayerFuselage, view.Outlines[0].Layer)
	assert.Equal(t, LayerWing, view.Outlines[1].Layer)

	right := view.Outlines[1].Points
	require.Len(t, right, 6, "3 leading edge and 3 trailing edge points")
	tipY := 3.8 + 10.7*math.Cos(2.5*math.Pi/180)
	assert.InDelta(t, tipY, right[2][1], 1e-9)
	assert.InDelta(t, 11+10.7*math.Tan(3.1*math.Pi/180), right[2][0], 1e-9)
	assert.InDelta(t, 13.6, right[5][0], 1e-9, "root trailing edge")

	left := view.Outlines[2].Points
	assert.InDelta(t, -tipY, left[2][1], 1e-9)

	// Two engines and the nose and main gears on the centre line.
	require.Len(t, view.Markers, 4)
	assert.Equal(t, "Engine 2", view.Markers[1].Label)
	assert.Equal(t, markerRadius, view.Markers[0].Radius)

	assert.Equal(t, []string{LayerFuselage, LayerWing, LayerEngines, LayerGears}, view.Layers())
}

func TestTopView_Bounds(t *testing.T) {
	_, _, _, _, ok := BuildTopView(model.NewAircraft("Blank")).Bounds()
	assert.False(t, ok)

	minX, minY, maxX, maxY, ok := BuildTopView(buildTestAircraft()).Bounds()
	require.True(t, ok)
	assert.InDelta(t, 0, minX, 1e-9)
	assert.InDelta(t, 27, maxX, 1e-9)
	assert.InDelta(t, -maxY, minY, 1e-9)
	assert.Greater(t, maxY, 14.0)
}

func TestTopView_SurfaceWithoutPanels(t *testing.T) {
	ac := model.NewAircraft("Tail only")
	ac.VTail = &model.LiftingSurface{Position: pos(24, 0, 2)}
	view := BuildTopView(ac)
	assert.Empty(t, view.Outlines)
	require.Len(t, view.Markers, 1)
	assert.Equal(t, LayerVTail, view.Markers[0].Layer)
}

func TestTopView_VerticalTailProjects(t *testing.T) {
	ac := model.NewAircraft("Fin")
	ac.VTail = &model.LiftingSurface{
		Position: pos(24, 0, 2),
		Panels:   []model.Panel{{Span: m(5), SweepLE: deg(45), ChordRoot: m(4), ChordTip: m(2)}},
	}
	view := BuildTopView(ac)
	require.Len(t, view.Outlines, 1, "vertical surfaces are not mirrored")
	for _, p := range view.Outlines[0].Points {
		assert.InDelta(t, 0, p[1], 1e-9)
	}
}

func TestTopView_PropellerRadius(t *testing.T) {
	ac := model.NewAircraft("Prop")
	ac.Engines = []model.Engine{{Position: pos(5, 3, 0), PropellerDiameter: m(3.9)}}
	view := BuildTopView(ac)
	require.Len(t, view.Markers, 1)
	assert.InDelta(t, 1.95, view.Markers[0].Radius, 1e-9)
}
