package planar

import (
	"math"
	"testing"

	"github.com/paulmach/orb"
	orbplanar "github.com/paulmach/orb/planar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestClipPolygonBoundaryVertices(t *testing.T) {
	m := notchedPolygon()
	b := box(1, 4, 5, 8)
	rings := m.ClipPolygon(b)
	require.Len(t, rings, 1)

	requireCoords(t, pts(2, 4, 3, 7, 5, 6, 13.0/3, 4, 2, 4), rings[0].Coordinates())
	assert.InDelta(t, 35.0/6, rings[0].SignedArea(), 1e-9)
	assertValidRings(t, rings, b)

	assert.False(t, m.IsClockwise(), "the subject is not modified")
}

func TestClipPolygon(t *testing.T) {
	for _, tt := range []struct {
		name    string
		subject []Coordinate
		box     BoundingBox
		rings   [][]Coordinate
	}{
		{
			name:    "u shape splits in two",
			subject: pts(0, 0, 0, 3, 1, 3, 1, 1, 2, 1, 2, 3, 3, 3, 3, 0, 0, 0),
			box:     box(-1, 2, 4, 4),
			rings: [][]Coordinate{
				pts(0, 2, 0, 3, 1, 3, 1, 2, 0, 2),
				pts(2, 2, 2, 3, 3, 3, 3, 2, 2, 2),
			},
		},
		{
			name:    "hypotenuse through two corners",
			subject: pts(0, 0, 4, 0, 0, 4, 0, 0),
			box:     box(1, 1, 3, 3),
			rings:   [][]Coordinate{pts(1, 3, 3, 1, 1, 1, 1, 3)},
		},
		{
			name:    "touches one corner",
			subject: pts(0, 0, 4, 0, 0, 4, 0, 0),
			box:     box(2, 2, 3, 3),
		},
		{
			name:    "box in a corner of the polygon",
			subject: pts(0, 0, 0, 2, 2, 2, 2, 0, 0, 0),
			box:     box(0, 0, 1, 1),
			rings:   [][]Coordinate{pts(0, 0, 0, 1, 1, 1, 1, 0, 0, 0)},
		},
		{
			name:    "box equals polygon",
			subject: pts(0, 0, 0, 2, 2, 2, 2, 0, 0, 0),
			box:     box(0, 0, 2, 2),
		},
		{
			name:    "overlapping corner",
			subject: pts(0, 0, 0, 2, 2, 2, 2, 0, 0, 0),
			box:     box(1, 1, 3, 3),
			rings:   [][]Coordinate{pts(1, 2, 2, 2, 2, 1, 1, 1, 1, 2)},
		},
		{
			name:    "shared left edge",
			subject: pts(0, 0, 0, 2, 2, 2, 2, 0, 0, 0),
			box:     box(-1, -1, 1, 3),
			rings:   [][]Coordinate{pts(1, 0, 0, 0, 0, 2, 1, 2, 1, 0)},
		},
		{
			name:    "collinear with the border outside",
			subject: notchedPolygon().Coordinates(),
			box:     box(11, 2, 12, 7),
		},
		{
			name:    "box inside polygon",
			subject: pts(0, 0, 0, 10, 10, 10, 10, 0, 0, 0),
			box:     box(2, 3, 4, 5),
			rings:   [][]Coordinate{pts(2, 3, 2, 5, 4, 5, 4, 3, 2, 3)},
		},
		{
			name:    "polygon inside box",
			subject: pts(2, 2, 2, 3, 3, 3, 2, 2),
			box:     box(0, 0, 10, 10),
		},
		{
			name:    "disjoint",
			subject: pts(20, 20, 20, 30, 30, 30, 20, 20),
			box:     box(0, 0, 10, 10),
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			rings := NewMultipoint(tt.subject).ClipPolygon(tt.box)
			require.Len(t, rings, len(tt.rings))
			for i, want := range tt.rings {
				requireCoords(t, want, rings[i].Coordinates())
			}
			assertValidRings(t, rings, tt.box)
		})
	}
}

func TestClipPolygonArea(t *testing.T) {
	rings := notchedPolygon().ClipPolygon(box(2, 0, 8, 4))
	require.Len(t, rings, 1)
	assert.InDelta(t, 13.416666666666666, rings[0].SignedArea(), 1e-9)
	assert.InDelta(t, 13.416666666666666, math.Abs(orbplanar.Area(orb.Polygon{toOrbRing(rings[0])})), 1e-9)
}

// Every point strictly inside the box must be in a clipped ring exactly
// when it is in the subject.
func TestClipPolygonMatchesMembership(t *testing.T) {
	u := NewMultipoint(pts(0, 0, 0, 3, 1, 3, 1, 1, 2, 1, 2, 3, 3, 3, 3, 0, 0, 0))
	for _, tt := range []struct {
		subject Multipoint
		box     BoundingBox
		rings   int
	}{
		{subject: notchedPolygon(), box: box(1, 4, 5, 8), rings: 1},
		{subject: notchedPolygon(), box: box(2, 0, 8, 4), rings: 1},
		{subject: notchedPolygon(), box: box(0, 0, 6, 5), rings: 1},
		{subject: notchedPolygon(), box: box(4, 2, 10, 6), rings: 1},
		{subject: notchedPolygon(), box: box(6, 0, 12, 8), rings: 1},
		{subject: notchedPolygon(), box: box(2.5, 1.5, 10.5, 6.5), rings: 1},
		{subject: u, box: box(-1, 2, 4, 4), rings: 2},
		{subject: u, box: box(0.5, 0.5, 2.5, 2.5), rings: 1},
	} {
		rings := tt.subject.ClipPolygon(tt.box)
		require.Len(t, rings, tt.rings, "box %v", tt.box)
		assertValidRings(t, rings, tt.box)

		for x := tt.box.LL.X + 0.123; x < tt.box.UR.X; x += 0.25 {
			for y := tt.box.LL.Y + 0.0771; y < tt.box.UR.Y; y += 0.25 {
				p := Coordinate{X: x, Y: y}
				inRings := false
				for _, r := range rings {
					if r.Contains(p) {
						inRings = true
						break
					}
				}
				require.Equal(t, tt.subject.Contains(p), inRings, "box %v point %v", tt.box, p)
			}
		}
	}
}

func TestTraverse(t *testing.T) {
	b := box(0, 0, 4, 4)
	// a clockwise rectangle crossing the left side, entering at (0,3)
	subj := pts(-2, 1, -2, 3, 0, 3, 2, 3, 2, 1, 0, 1)
	clip := pts(0, 3, 0, 4, 4, 4, 4, 0, 0, 0, 0, 1)
	links := func(extra ...Coordinate) map[Coordinate]linkKind {
		l := map[Coordinate]linkKind{
			{X: 0, Y: 3}: linkEntry,
			{X: 0, Y: 1}: linkExit,
		}
		for _, p := range extra {
			l[p] = linkEntry
		}
		return l
	}

	for _, tt := range []struct {
		name   string
		subj   []Coordinate
		clip   []Coordinate
		links  map[Coordinate]linkKind
		ring   []Coordinate
		reason string
	}{
		{
			name:  "one ring",
			subj:  subj,
			clip:  clip,
			links: links(),
			ring:  pts(0, 3, 2, 3, 2, 1, 0, 1, 0, 3),
		},
		{name: "empty subject", clip: clip, links: links(), reason: "empty list"},
		{name: "empty clip", subj: subj, links: links(), reason: "empty list"},
		{name: "exit missing from clip", subj: subj, clip: clip[:5], links: links(), reason: "step limit"},
		{name: "unreachable entry", subj: subj, clip: clip, links: links(Coordinate{X: 9, Y: 9}), reason: "step limit"},
	} {
		t.Run(tt.name, func(t *testing.T) {
			core, logs := observer.New(zapcore.WarnLevel)
			SetLogger(zap.New(core))
			t.Cleanup(func() { SetLogger(nil) })

			rings, ok := traverse(tt.subj, tt.clip, tt.links, b)
			if tt.reason == "" {
				require.True(t, ok)
				require.Len(t, rings, 1)
				requireCoords(t, tt.ring, rings[0].Coordinates())
				assert.Zero(t, logs.Len())
				return
			}
			assert.False(t, ok)
			assert.Nil(t, rings)
			entries := logs.FilterMessage("polygon clipping aborted").All()
			require.Len(t, entries, 1)
			assert.Equal(t, zapcore.WarnLevel, entries[0].Level)
			assert.Equal(t, tt.reason, entries[0].ContextMap()["reason"])
		})
	}
}

func TestClipPolygonRejects(t *testing.T) {
	assert.Nil(t, NewMultipoint(pts(0, 0, 5, 5, 6, 0)).ClipPolygon(box(1, 1, 2, 2)), "polyline")
	assert.Nil(t, notchedPolygon().ClipPolygon(box(3, 0, 3, 8)), "degenerate box")
}

func TestClipPolyline(t *testing.T) {
	for _, tt := range []struct {
		name string
		line []Coordinate
		box  BoundingBox
		runs [][]Coordinate
	}{
		{
			name: "ends on the border",
			line: pts(3, 1, 8, 2, 11, 1, 11, 7, 9, 3),
			box:  box(2, 0, 8, 4),
			runs: [][]Coordinate{pts(3, 1, 8, 2)},
		},
		{
			name: "enters and leaves",
			line: pts(0, 1, 2, 1, 2, 3, 5, 3, 5, 1),
			box:  box(1, 0, 4, 2),
			runs: [][]Coordinate{pts(1, 1, 2, 1, 2, 2)},
		},
		{
			name: "ends inside",
			line: pts(0, 1, 2, 1, 3, 1.5),
			box:  box(1, 0, 4, 2),
			runs: [][]Coordinate{pts(1, 1, 2, 1, 3, 1.5)},
		},
		{
			name: "two runs",
			line: pts(0, 1, 5, 1, 5, 0.5, 0, 0.5),
			box:  box(1, 0, 4, 2),
			runs: [][]Coordinate{pts(1, 1, 4, 1), pts(4, 0.5, 1, 0.5)},
		},
		{
			name: "wholly inside",
			line: pts(2, 1, 3, 1),
			box:  box(1, 0, 4, 2),
		},
		{
			name: "wholly outside",
			line: pts(10, 1, 13, 1),
			box:  box(1, 0, 4, 2),
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			runs := NewMultipoint(tt.line).ClipPolyline(tt.box)
			require.Len(t, runs, len(tt.runs))
			for i, want := range tt.runs {
				requireCoords(t, want, runs[i].Coordinates())
				for _, p := range runs[i].Coordinates() {
					assert.True(t, tt.box.Contains(p))
				}
			}
		})
	}
}

func TestOpenRing(t *testing.T) {
	assert.Equal(t, pts(0, 0, 1, 1, 2, 0), openRing(pts(0, 0, 0, 0, 1, 1, 2, 0, 2, 0, 0, 0)))
	assert.Empty(t, openRing(nil))
}

func TestSortClockwise(t *testing.T) {
	b := box(0, 0, 2, 2)
	list := pts(2, 0, 0, 0, 0, 2, 2, 2, 1, 2, 0, 1)
	sortClockwise(list, b.Center())
	// clockwise from the left side: atan2 falls from pi to -pi
	assert.Equal(t, pts(0, 1, 0, 2, 1, 2, 2, 2, 2, 0, 0, 0), list)
}

func assertValidRings(t *testing.T, rings []Multipoint, b BoundingBox) {
	t.Helper()
	for i, r := range rings {
		assert.True(t, r.IsPolygon(), "ring %d closed", i)
		assert.True(t, r.IsClockwise(), "ring %d clockwise", i)
		for _, p := range r.Coordinates() {
			assert.True(t, b.Contains(p), "ring %d vertex %v inside %v", i, p, b)
		}
	}
}
