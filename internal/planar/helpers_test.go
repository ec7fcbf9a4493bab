package planar

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/require"
)

// pts builds coordinates from x, y pairs.
func pts(xy ...float64) []Coordinate {
	out := make([]Coordinate, 0, len(xy)/2)
	for i := 0; i+1 < len(xy); i += 2 {
		out = append(out, Coordinate{X: xy[i], Y: xy[i+1]})
	}
	return out
}

func box(minX, minY, maxX, maxY float64) BoundingBox {
	return MustBoundingBox(Coordinate{X: minX, Y: minY}, Coordinate{X: maxX, Y: maxY})
}

func toOrbRing(m Multipoint) orb.Ring {
	r := make(orb.Ring, 0, m.Len())
	for _, c := range m.Coordinates() {
		r = append(r, orb.Point{c.X, c.Y})
	}
	return r
}

func requireCoords(t *testing.T, want, got []Coordinate) {
	t.Helper()
	if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		require.Failf(t, "coordinates differ", "(-want +got):\n%s", diff)
	}
}

// notchedPolygon is the eleven vertex counter-clockwise polygon used by
// most clipping tests. It has vertices on the border of several boxes.
func notchedPolygon() Multipoint {
	return NewMultipoint(pts(3, 1, 8, 2, 11, 1, 11, 7, 9, 3, 7, 5, 4, 3, 5, 6, 3, 7, 2, 4, 3, 1))
}
