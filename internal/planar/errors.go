package planar

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrInvalidCoordinates is matched by every *InvalidCoordinatesError.
	ErrInvalidCoordinates = errors.New("bounding box creation failed: lower-left must not exceed upper-right")
	// ErrInvalidIntCoordinates is matched by every *InvalidIntCoordinatesError.
	ErrInvalidIntCoordinates = errors.New("integer bounding box creation failed: lower-left must not exceed upper-right")
)

// InvalidCoordinatesError reports the corners rejected by NewBoundingBox.
type InvalidCoordinatesError struct {
	LL Coordinate
	UR Coordinate
}

func (e *InvalidCoordinatesError) Error() string {
	return fmt.Sprintf("%v: ll=(%v, %v) ur=(%v, %v)", ErrInvalidCoordinates, e.LL.X, e.LL.Y, e.UR.X, e.UR.Y)
}

func (e *InvalidCoordinatesError) Is(target error) bool {
	return target == ErrInvalidCoordinates
}

// InvalidIntCoordinatesError reports the corners rejected by NewBoundingBoxInt.
type InvalidIntCoordinatesError struct {
	LL CoordinateInt
	UR CoordinateInt
}

func (e *InvalidIntCoordinatesError) Error() string {
	return fmt.Sprintf("%v: ll=(%d, %d) ur=(%d, %d)", ErrInvalidIntCoordinates, e.LL.X, e.LL.Y, e.UR.X, e.UR.Y)
}

func (e *InvalidIntCoordinatesError) Is(target error) bool {
	return target == ErrInvalidIntCoordinates
}
