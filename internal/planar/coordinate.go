package planar

import (
	"fmt"
	"math"
)

// Coordinate is a 2-D point. X is usually a longitude and Y a latitude.
type Coordinate struct {
	X float64
	Y float64
}

func (c Coordinate) String() string {
	return fmt.Sprintf("Coordinate: { long: %v, lat: %v }", c.X, c.Y)
}

// CoordinateInt is the integer variant of Coordinate, e.g. for screen cells.
type CoordinateInt struct {
	X int
	Y int
}

func (c CoordinateInt) String() string {
	return fmt.Sprintf("CoordinateInt: { long: %d, lat: %d }", c.X, c.Y)
}

// Distance returns the euclidean distance between a and b.
func Distance(a, b Coordinate) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// Midpoint returns the point halfway between a and b.
func Midpoint(a, b Coordinate) Coordinate {
	return Coordinate{X: (a.X + b.X) * 0.5, Y: (a.Y + b.Y) * 0.5}
}
