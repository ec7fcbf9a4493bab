package geom

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"geoclip/internal/planar"
)

func pts(xy ...float64) []planar.Coordinate {
	out := make([]planar.Coordinate, 0, len(xy)/2)
	for i := 0; i+1 < len(xy); i += 2 {
		out = append(out, planar.Coordinate{X: xy[i], Y: xy[i+1]})
	}
	return out
}

func box(minX, minY, maxX, maxY float64) planar.BoundingBox {
	return planar.MustBoundingBox(planar.Coordinate{X: minX, Y: minY}, planar.Coordinate{X: maxX, Y: maxY})
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

// squareWithHole is a clockwise 10x10 square with a 2x2 hole.
func squareWithHole() Data {
	var d Data
	d.addPolygon([][]planar.Coordinate{
		pts(0, 0, 0, 10, 10, 10, 10, 0, 0, 0),
		pts(2, 2, 2, 4, 4, 4, 4, 2, 2, 2),
	})
	return d
}
