package planar

import "fmt"

// BoundingBox is an axis-aligned rectangle given by its lower-left and
// upper-right corners. Zero width or height is allowed.
type BoundingBox struct {
	LL Coordinate
	UR Coordinate
}

// NewBoundingBox validates the corner order.
func NewBoundingBox(ll, ur Coordinate) (BoundingBox, error) {
	if ll.X > ur.X || ll.Y > ur.Y {
		return BoundingBox{}, &InvalidCoordinatesError{LL: ll, UR: ur}
	}
	return BoundingBox{LL: ll, UR: ur}, nil
}

// MustBoundingBox is like NewBoundingBox but panics on invalid corners.
func MustBoundingBox(ll, ur Coordinate) BoundingBox {
	b, err := NewBoundingBox(ll, ur)
	if err != nil {
		panic(err)
	}
	return b
}

// Contains reports whether p is inside the box or on its border.
func (b BoundingBox) Contains(p Coordinate) bool {
	return b.LL.X <= p.X && p.X <= b.UR.X &&
		b.LL.Y <= p.Y && p.Y <= b.UR.Y
}

// EdgesContain reports whether p lies exactly on the border. Corners are
// matched by the vertical edges only so that they are not counted twice.
func (b BoundingBox) EdgesContain(p Coordinate) bool {
	onVertical := (p.X == b.LL.X || p.X == b.UR.X) && b.LL.Y <= p.Y && p.Y <= b.UR.Y
	onHorizontal := (p.Y == b.LL.Y || p.Y == b.UR.Y) && b.LL.X < p.X && p.X < b.UR.X
	return onVertical || onHorizontal
}

// Corners returns lower-left, upper-left, upper-right and lower-right,
// a clockwise walk starting at LL.
func (b BoundingBox) Corners() [4]Coordinate {
	return [4]Coordinate{
		b.LL,
		{X: b.LL.X, Y: b.UR.Y},
		b.UR,
		{X: b.UR.X, Y: b.LL.Y},
	}
}

// Sides returns the left, top, right and bottom edges, directed so that
// they form a closed clockwise loop starting at LL.
func (b BoundingBox) Sides() [4]Line {
	c := b.Corners()
	return [4]Line{
		{A: c[0], B: c[1]},
		{A: c[1], B: c[2]},
		{A: c[2], B: c[3]},
		{A: c[3], B: c[0]},
	}
}

func (b BoundingBox) Center() Coordinate { return Midpoint(b.LL, b.UR) }
func (b BoundingBox) Width() float64     { return b.UR.X - b.LL.X }
func (b BoundingBox) Height() float64    { return b.UR.Y - b.LL.Y }
func (b BoundingBox) Area() float64      { return b.Width() * b.Height() }

// IsDegenerate reports a box with zero width or height.
func (b BoundingBox) IsDegenerate() bool {
	return b.LL.X == b.UR.X || b.LL.Y == b.UR.Y
}

func (b BoundingBox) Equal(o BoundingBox) bool {
	return b.LL == o.LL && b.UR == o.UR
}

func (b BoundingBox) String() string {
	return fmt.Sprintf("BoundingBox: { left: %v, bottom: %v, right: %v, top: %v }", b.LL.X, b.LL.Y, b.UR.X, b.UR.Y)
}

// BoundingBoxInt is the integer variant of BoundingBox.
type BoundingBoxInt struct {
	LL CoordinateInt
	UR CoordinateInt
}

func NewBoundingBoxInt(ll, ur CoordinateInt) (BoundingBoxInt, error) {
	if ll.X > ur.X || ll.Y > ur.Y {
		return BoundingBoxInt{}, &InvalidIntCoordinatesError{LL: ll, UR: ur}
	}
	return BoundingBoxInt{LL: ll, UR: ur}, nil
}

func (b BoundingBoxInt) Contains(p CoordinateInt) bool {
	return b.LL.X <= p.X && p.X <= b.UR.X &&
		b.LL.Y <= p.Y && p.Y <= b.UR.Y
}

func (b BoundingBoxInt) EdgesContain(p CoordinateInt) bool {
	onVertical := (p.X == b.LL.X || p.X == b.UR.X) && b.LL.Y <= p.Y && p.Y <= b.UR.Y
	onHorizontal := (p.Y == b.LL.Y || p.Y == b.UR.Y) && b.LL.X < p.X && p.X < b.UR.X
	return onVertical || onHorizontal
}

func (b BoundingBoxInt) String() string {
	return fmt.Sprintf("BoundingBoxInt: { left: %d, bottom: %d, right: %d, top: %d }", b.LL.X, b.LL.Y, b.UR.X, b.UR.Y)
}
