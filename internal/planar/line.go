package planar

import "math"

// RoundoffEps absorbs floating point error in the segment predicates.
const RoundoffEps = 1e-25

// Line is a directed segment from A to B. A == B is allowed.
type Line struct {
	A Coordinate
	B Coordinate
}

func (l Line) Midpoint() Coordinate { return Midpoint(l.A, l.B) }

// SquaredLength avoids the square root for comparisons.
func (l Line) SquaredLength() float64 {
	dx := l.B.X - l.A.X
	dy := l.B.Y - l.A.Y
	return dx*dx + dy*dy
}

// DotProduct of the direction vectors. Roundoff may leave a tiny nonzero
// value for perpendicular segments.
func (l Line) DotProduct(o Line) float64 {
	return (l.B.X-l.A.X)*(o.B.X-o.A.X) + (l.B.Y-l.A.Y)*(o.B.Y-o.A.Y)
}

// DotProductPoint uses the segment from l.A to p as the second vector.
func (l Line) DotProductPoint(p Coordinate) float64 {
	return l.DotProduct(Line{A: l.A, B: p})
}

// CrossProduct is the signed area of the parallelogram spanned by both
// direction vectors.
func (l Line) CrossProduct(o Line) float64 {
	return (l.B.X-l.A.X)*(o.B.Y-o.A.Y) - (l.B.Y-l.A.Y)*(o.B.X-o.A.X)
}

// CrossProductPoint uses the segment from l.A to p as the second vector.
func (l Line) CrossProductPoint(p Coordinate) float64 {
	return l.CrossProduct(Line{A: l.A, B: p})
}

// DistanceToPoint returns the distance from p to the line through A and B,
// or to A itself when the segment is degenerate.
func (l Line) DistanceToPoint(p Coordinate) float64 {
	if l.A == l.B {
		return Distance(l.A, p)
	}
	return math.Abs(l.CrossProductPoint(p)) / math.Sqrt(l.SquaredLength())
}

func (l Line) HasEndpoint(p Coordinate) bool {
	return p == l.A || p == l.B
}

// IsParallel compares the cross product with exactly zero, so nearly
// parallel segments built from rounded input may report false.
func (l Line) IsParallel(o Line) bool {
	return l.CrossProduct(o) == 0
}

// Intersection returns the point shared by both segments. Parallel and
// collinear segments never intersect. The point is interpolated along l.
func (l Line) Intersection(o Line) (Coordinate, bool) {
	d := l.CrossProduct(o)
	if d == 0 {
		return Coordinate{}, false
	}
	starts := Line{A: l.A, B: o.A}
	// u runs along l, v along o
	u := starts.CrossProduct(o) / d
	v := starts.CrossProduct(l) / d
	const lo, hi = -RoundoffEps, 1 + RoundoffEps
	if u < lo || u > hi || v < lo || v > hi {
		return Coordinate{}, false
	}
	return Coordinate{
		X: l.A.X + u*(l.B.X-l.A.X),
		Y: l.A.Y + u*(l.B.Y-l.A.Y),
	}, true
}

// NumberOfIntersections counts the crossings with the sides of box. A hit
// on the end of a side is skipped: the next side starts there and counts it.
// A segment running along a side is parallel to it and adds nothing.
func (l Line) NumberOfIntersections(box BoundingBox) int {
	n := 0
	for _, side := range box.Sides() {
		if p, ok := l.Intersection(side); ok && p != side.B {
			n++
		}
	}
	return n
}

// LiesOn reports whether p is on the segment, within RoundoffEps.
// TODO: the squared-difference test only resolves points about 1e-5 away
// from the segment; a relative tolerance would need new semantics.
func LiesOn(p Coordinate, l Line) bool {
	v := Distance(l.A, p) + Distance(p, l.B) - math.Sqrt(l.SquaredLength())
	return v*v <= RoundoffEps
}
