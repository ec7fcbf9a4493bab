package geom

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"geoclip/internal/planar"
)

func TestProjectMercator(t *testing.T) {
	d := squareWithHole()
	d.addPoint(planar.Coordinate{X: 10, Y: 45})
	d.addLine(pts(0, -30, 1, 60))

	proj := ProjectMercator(d)
	assert.Equal(t, 10.0, proj.Points[0].X)
	assert.InDelta(t, planar.LocalLatitudeFromSphericalMercatorProjection(45), proj.Points[0].Y, 1e-12)
	assert.True(t, proj.Polygons[0].Outer().IsClockwise(), "orientation survives")

	back := UnprojectMercator(proj)
	opt := cmpopts.EquateApprox(0, 1e-9)
	require.Empty(t, cmp.Diff(d.Points, back.Points, opt))
	require.Empty(t, cmp.Diff(d.Lines[0].Coordinates(), back.Lines[0].Coordinates(), opt))
	require.Empty(t, cmp.Diff(d.Polygons[0].Holes()[0].Coordinates(), back.Polygons[0].Holes()[0].Coordinates(), opt))
}
