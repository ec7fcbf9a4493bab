package planar

import "sort"

// Multipoint is an ordered vertex sequence: a polyline, or a polygon when
// the first and last vertices are equal.
//
// The bounding box is computed once at construction. The only mutation,
// MakeClockwise, reorders vertices and therefore cannot stale it.
type Multipoint struct {
	coords []Coordinate
	bbox   BoundingBox
	hasBox bool
}

// IntersectionPoint is a crossing with a box, found on the subject edge
// that ends at vertex Edge (1-based; edge i joins vertices i-1 and i).
type IntersectionPoint struct {
	Edge  int
	Point Coordinate
}

// NewMultipoint copies coords.
func NewMultipoint(coords []Coordinate) Multipoint {
	m := Multipoint{coords: append([]Coordinate(nil), coords...)}
	m.initBoundingBox()
	return m
}

// MultipointFromBoundingBox returns the closed clockwise ring
// ll, ul, ur, lr, ll.
func MultipointFromBoundingBox(box BoundingBox) Multipoint {
	c := box.Corners()
	return NewMultipoint([]Coordinate{c[0], c[1], c[2], c[3], c[0]})
}

func (m *Multipoint) initBoundingBox() {
	if len(m.coords) < 2 {
		return
	}
	minX, minY := m.coords[0].X, m.coords[0].Y
	maxX, maxY := minX, minY
	for _, p := range m.coords[1:] {
		if p.X < minX {
			minX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}
	m.bbox = BoundingBox{LL: Coordinate{X: minX, Y: minY}, UR: Coordinate{X: maxX, Y: maxY}}
	m.hasBox = true
}

// Coordinates returns a copy of the vertices.
func (m Multipoint) Coordinates() []Coordinate {
	return append([]Coordinate(nil), m.coords...)
}

func (m Multipoint) Len() int { return len(m.coords) }

// BoundingBox is unset for fewer than two vertices.
func (m Multipoint) BoundingBox() (BoundingBox, bool) {
	return m.bbox, m.hasBox
}

func (m Multipoint) IsPolygon() bool {
	return len(m.coords) > 1 && m.coords[0] == m.coords[len(m.coords)-1]
}

// SignedArea sums the areas under every edge. The result is positive for
// clockwise rings and negative for counter-clockwise ones, and zero for
// polylines. It is not meaningful for self-crossing rings.
func (m Multipoint) SignedArea() float64 {
	if !m.IsPolygon() {
		return 0
	}
	sum := 0.0
	for i := 1; i < len(m.coords); i++ {
		a, b := m.coords[i-1], m.coords[i]
		sum += (b.X - a.X) * (b.Y + a.Y) * 0.5
	}
	return sum
}

func (m Multipoint) IsClockwise() bool {
	return m.SignedArea() > 0
}

// MakeClockwise reverses the vertex order in place unless the ring is
// already clockwise.
func (m *Multipoint) MakeClockwise() {
	if m.IsClockwise() {
		return
	}
	for i, j := 0, len(m.coords)-1; i < j; i, j = i+1, j-1 {
		m.coords[i], m.coords[j] = m.coords[j], m.coords[i]
	}
}

// Clockwise returns a clockwise copy, leaving m untouched.
func (m Multipoint) Clockwise() Multipoint {
	c := NewMultipoint(m.coords)
	c.MakeClockwise()
	return c
}

func (m Multipoint) hasVertex(p Coordinate) bool {
	for _, c := range m.coords {
		if c == p {
			return true
		}
	}
	return false
}

// Contains reports membership in the vertex list for polylines. For
// polygons it runs an even-odd ray cast; vertices and points on an edge
// count as inside. Winding order does not matter.
func (m Multipoint) Contains(p Coordinate) bool {
	if !m.IsPolygon() {
		return m.hasVertex(p)
	}
	if m.hasVertex(p) {
		return true
	}
	inside := false
	pj := m.coords[len(m.coords)-1]
	for _, pi := range m.coords {
		// edge straddles the horizontal through p
		if (pi.Y >= p.Y) != (pj.Y >= p.Y) {
			if LiesOn(p, Line{A: pj, B: pi}) {
				return true
			}
			if p.X <= (pj.X-pi.X)*(p.Y-pi.Y)/(pj.Y-pi.Y)+pi.X {
				inside = !inside
			}
		}
		pj = pi
	}
	return inside
}

// IntersectionPoints lists where the edges of m cross the sides of box,
// ordered by edge and, within an edge, by distance from the edge start.
// The first vertex of m is reported once even when both of its edges
// touch the box there.
func (m Multipoint) IntersectionPoints(box BoundingBox) []IntersectionPoint {
	if len(m.coords) < 2 {
		return nil
	}
	first := m.coords[0]
	firstSeen := false
	var out []IntersectionPoint
	for i := 1; i < len(m.coords); i++ {
		edge := Line{A: m.coords[i-1], B: m.coords[i]}
		remaining := edge.NumberOfIntersections(box)
		if remaining == 0 {
			continue
		}
		var hits []Coordinate
		for _, side := range box.Sides() {
			p, ok := side.Intersection(edge)
			// a hit on a side's end belongs to the following side
			if !ok || p == side.B || containsCoordinate(hits, p) {
				continue
			}
			if p == first {
				if firstSeen {
					remaining--
					if remaining <= 0 {
						break
					}
					continue
				}
				firstSeen = true
			}
			hits = append(hits, p)
			remaining--
			if remaining <= 0 {
				break
			}
		}
		start := edge.A
		sort.SliceStable(hits, func(a, b int) bool {
			return Distance(start, hits[a]) < Distance(start, hits[b])
		})
		for _, p := range hits {
			out = append(out, IntersectionPoint{Edge: i, Point: p})
		}
	}
	return out
}

func containsCoordinate(list []Coordinate, p Coordinate) bool {
	for _, c := range list {
		if c == p {
			return true
		}
	}
	return false
}
