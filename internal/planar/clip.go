package planar

import (
	"math"
	"sort"

	"go.uber.org/zap"
)

type edgeState int

const (
	edgeOutside edgeState = iota
	edgeOnBoundary
	edgeInside
)

// classifyEdge places a piece of the subject that no longer crosses the box
// border. Such a piece is wholly on one side, so its midpoint decides.
func classifyEdge(box BoundingBox, a, b Coordinate) edgeState {
	mid := Midpoint(a, b)
	switch {
	case box.EdgesContain(mid):
		return edgeOnBoundary
	case box.Contains(mid):
		return edgeInside
	}
	return edgeOutside
}

type linkKind int

const (
	linkNone linkKind = iota
	// the subject enters the box interior here
	linkEntry
	// the subject leaves the box interior here
	linkExit
)

// ClipPolyline returns the runs of the polyline that lie inside box, with
// the crossing points added. Zero intersections yield nil even when the
// whole polyline is inside: callers tell "inside" from "outside" with
// box.Contains on any vertex.
func (m Multipoint) ClipPolyline(box BoundingBox) []Multipoint {
	hits := m.IntersectionPoints(box)
	if len(hits) == 0 {
		return nil
	}
	var (
		out []Multipoint
		run []Coordinate
	)
	for _, p := range insertIntersections(m.coords, hits) {
		if box.Contains(p) {
			if len(run) == 0 || run[len(run)-1] != p {
				run = append(run, p)
			}
			continue
		}
		if len(run) > 0 {
			out = append(out, NewMultipoint(run))
			run = nil
		}
	}
	if len(run) > 0 {
		out = append(out, NewMultipoint(run))
	}
	return out
}

// ClipPolygon clips a polygon to box with the Weiler–Atherton algorithm
// and returns the closed clockwise rings of the intersection. m is not
// modified.
//
// With no crossings the result is the box ring when the box lies inside
// the polygon, and nil otherwise. In particular a polygon wholly inside
// the box yields nil, meaning nothing was clipped away.
func (m Multipoint) ClipPolygon(box BoundingBox) []Multipoint {
	if !m.IsPolygon() || box.IsDegenerate() {
		return nil
	}
	subject := m.Clockwise()
	hits := subject.IntersectionPoints(box)
	if len(hits) == 0 {
		if subject.Contains(box.LL) {
			return []Multipoint{MultipointFromBoundingBox(box)}
		}
		return nil
	}

	subj := openRing(insertIntersections(subject.coords, hits))
	links := linkSubject(subj, box)
	if len(links) == 0 {
		// the polygon only touches the border
		if !allInside(subj, box) && subject.Contains(box.Center()) {
			return []Multipoint{MultipointFromBoundingBox(box)}
		}
		return nil
	}

	corners := box.Corners()
	clip := make([]Coordinate, 0, len(corners)+len(hits))
	clip = append(clip, corners[:]...)
	for _, h := range hits {
		clip = append(clip, h.Point)
	}
	sortClockwise(clip, box.Center())
	clip = openRing(clip)

	rings, ok := traverse(subj, clip, links, box)
	if !ok {
		return nil
	}
	Logger().Debug("polygon clipped",
		zap.Int("rings", len(rings)),
		zap.Int("intersections", len(hits)),
	)
	return rings
}

// traverse threads the subject and clip lists together at the links and
// collects every closed ring. It reports false, after logging a warning,
// when a list is empty or a ring cannot be closed.
//
// The step limit applies to each ring and resets once the ring is emitted.
// Every ring starts at an entry that no earlier ring consumed, so at most
// one limit is spent per entry and the walk always ends.
func traverse(subj, clip []Coordinate, links map[Coordinate]linkKind, box BoundingBox) ([]Multipoint, bool) {
	const (
		onSubject = 0
		onClip    = 1
	)
	cursors := [2]*cursor{newCursor(subj), newCursor(clip)}
	active := onSubject

	var (
		constructing bool
		searching    bool
		ring         []Coordinate
		rings        []Multipoint
		consumed     = make(map[Coordinate]bool)
		pending      = len(links)
		steps        int
	)
	budget := 2 * (cursors[onSubject].len() + cursors[onClip].len())
	abort := func(reason string) ([]Multipoint, bool) {
		Logger().Warn("polygon clipping aborted",
			zap.String("reason", reason),
			zap.Int("subject", len(subj)),
			zap.Int("clip", len(clip)),
			zap.Int("links", len(links)),
		)
		return nil, false
	}

	for {
		p, ok := cursors[active].next()
		if !ok {
			return abort("empty list")
		}
		steps++
		if steps > budget {
			return abort("step limit")
		}

		if searching {
			if p == ring[len(ring)-1] {
				searching = false
			}
			continue
		}

		if !constructing {
			next, _ := cursors[active].peek()
			if links[p] == linkEntry && !consumed[p] && box.Contains(next) {
				constructing = true
				ring = append(ring, p)
				pending--
			}
			continue
		}

		ring = append(ring, p)
		if p == ring[0] {
			rings = append(rings, NewMultipoint(ring))
			for _, c := range ring {
				consumed[c] = true
			}
			ring = nil
			constructing = false
			active = onSubject
			steps = 0
			if pending <= 0 || !openEntries(links, consumed) {
				return rings, true
			}
			continue
		}

		if (active == onSubject && links[p] == linkExit) || (active == onClip && links[p] == linkEntry) {
			active = 1 - active
			searching = true
			pending--
		}
	}
}

// openEntries reports whether some entry has not been used by a ring yet.
func openEntries(links map[Coordinate]linkKind, consumed map[Coordinate]bool) bool {
	for p, k := range links {
		if k == linkEntry && !consumed[p] {
			return true
		}
	}
	return false
}

// linkSubject labels the border vertices of the open subject ring where it
// enters or leaves the box interior. Stretches running along the border
// count as outside so the clip ring is followed there instead.
func linkSubject(subj []Coordinate, box BoundingBox) map[Coordinate]linkKind {
	links := make(map[Coordinate]linkKind)
	n := len(subj)
	for i, p := range subj {
		if !box.EdgesContain(p) {
			continue
		}
		prev := subj[(i+n-1)%n]
		next := subj[(i+1)%n]
		in := classifyEdge(box, prev, p) == edgeInside
		out := classifyEdge(box, p, next) == edgeInside
		switch {
		case !in && out:
			links[p] = linkEntry
		case in && !out:
			links[p] = linkExit
		}
	}
	return links
}

// insertIntersections places every hit before the vertex that ends its edge.
func insertIntersections(coords []Coordinate, hits []IntersectionPoint) []Coordinate {
	out := make([]Coordinate, 0, len(coords)+len(hits))
	h := 0
	for i, p := range coords {
		for h < len(hits) && hits[h].Edge == i {
			out = append(out, hits[h].Point)
			h++
		}
		out = append(out, p)
	}
	return out
}

// openRing drops repeated neighbours and the closing vertex.
func openRing(list []Coordinate) []Coordinate {
	out := make([]Coordinate, 0, len(list))
	for _, p := range list {
		if len(out) == 0 || out[len(out)-1] != p {
			out = append(out, p)
		}
	}
	for len(out) > 1 && out[len(out)-1] == out[0] {
		out = out[:len(out)-1]
	}
	return out
}

// sortClockwise orders points on a box border clockwise around its center.
func sortClockwise(points []Coordinate, center Coordinate) {
	angle := func(p Coordinate) float64 {
		return math.Atan2(p.Y-center.Y, p.X-center.X)
	}
	sort.SliceStable(points, func(i, j int) bool {
		return angle(points[i]) > angle(points[j])
	})
}

func allInside(coords []Coordinate, box BoundingBox) bool {
	for _, p := range coords {
		if !box.Contains(p) {
			return false
		}
	}
	return true
}
