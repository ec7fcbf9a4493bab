package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"geoclip/internal/planar"
)

func TestClipPoints(t *testing.T) {
	d := Data{Points: pts(0, 0, 5, 5, 1, 1, 11, 1)}
	out := Clip(d, box(1, 1, 10, 10), ClipOptions{})
	assert.Equal(t, pts(5, 5, 1, 1), out.Points)
}

func TestClipLines(t *testing.T) {
	var d Data
	d.addLine(pts(0, 1, 5, 1))
	d.addLine(pts(2, 1, 3, 1))

	out := Clip(d, box(1, 0, 4, 2), ClipOptions{})
	require.Len(t, out.Lines, 1)
	assert.Equal(t, pts(1, 1, 4, 1), out.Lines[0].Coordinates())

	out = Clip(d, box(1, 0, 4, 2), ClipOptions{KeepContained: true})
	require.Len(t, out.Lines, 2)
	assert.Equal(t, pts(2, 1, 3, 1), out.Lines[1].Coordinates())
}

func TestClipContainedPolygon(t *testing.T) {
	var d Data
	d.addPolygon([][]planar.Coordinate{pts(2, 2, 2, 3, 3, 3, 2, 2)})

	assert.Empty(t, Clip(d, box(0, 0, 10, 10), ClipOptions{}).Polygons)
	out := Clip(d, box(0, 0, 10, 10), ClipOptions{KeepContained: true})
	require.Len(t, out.Polygons, 1)
	assert.Equal(t, d.Polygons[0].Outer().Coordinates(), out.Polygons[0].Outer().Coordinates())
}

func TestClipPolygonHoles(t *testing.T) {
	d := squareWithHole()

	t.Run("hole inside box", func(t *testing.T) {
		out := Clip(d, box(1, 1, 5, 5), ClipOptions{})
		require.Len(t, out.Polygons, 1)
		p := out.Polygons[0]
		assert.Equal(t, planar.MultipointFromBoundingBox(box(1, 1, 5, 5)).Coordinates(), p.Outer().Coordinates())
		require.Len(t, p.Holes(), 1)
		assert.Equal(t, pts(2, 2, 2, 4, 4, 4, 4, 2, 2, 2), p.Holes()[0].Coordinates())
	})

	t.Run("box inside hole", func(t *testing.T) {
		out := Clip(d, box(3, 3, 3.5, 3.5), ClipOptions{KeepContained: true})
		assert.Empty(t, out.Polygons)
	})

	t.Run("hole cut by box", func(t *testing.T) {
		out := Clip(d, box(3, -1, 12, 3), ClipOptions{})
		require.Len(t, out.Polygons, 1)
		p := out.Polygons[0]
		assert.InDelta(t, 21, math.Abs(p.Outer().SignedArea()), 1e-9)
		require.Len(t, p.Holes(), 1)
		assert.InDelta(t, 1, math.Abs(p.Holes()[0].SignedArea()), 1e-9)
	})

	t.Run("box misses hole", func(t *testing.T) {
		out := Clip(d, box(6, 6, 8, 8), ClipOptions{})
		require.Len(t, out.Polygons, 1)
		assert.Empty(t, out.Polygons[0].Holes())
	})
}

func TestClipKeepsProperties(t *testing.T) {
	d := squareWithHole()
	d.Fields = []string{"name"}
	d.Properties = []map[string]any{{"name": "x"}}
	out := Clip(d, box(20, 20, 30, 30), ClipOptions{})
	assert.True(t, out.Empty())
	assert.Equal(t, d.Properties, out.Properties, "rows are not realigned")
	assert.Equal(t, d.Fields, out.Fields)
}

func TestClipDegenerateBox(t *testing.T) {
	var d Data
	d.addPolygon([][]planar.Coordinate{pts(2, 2, 2, 3, 3, 3, 2, 2)})
	d.addPoint(planar.Coordinate{X: 1, Y: 1})
	out := Clip(d, box(1, 1, 1, 5), ClipOptions{KeepContained: true})
	assert.Empty(t, out.Polygons)
	assert.Equal(t, pts(1, 1), out.Points)
}
