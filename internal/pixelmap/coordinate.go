package pixelmap

import (
	"fmt"
	"image"

	"github.com/ironsheep/iris-color-mcp/internal/colormodel"
)

// Coordinate is a non-negative pixel position.
type Coordinate struct {
	x, y int
}

// CoordinateError reports a rejected pixel coordinate.
type CoordinateError struct {
	Index int // position in the input list, -1 for a single coordinate
	X, Y  int
	Msg   string
}

// Error returns the formatted coordinate error.
func (e *CoordinateError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("%s: pixel (%d,%d): %s", colormodel.ErrInvalidArgument, e.X, e.Y, e.Msg)
	}
	return fmt.Sprintf("%s: pixel %d (%d,%d): %s", colormodel.ErrInvalidArgument, e.Index, e.X, e.Y, e.Msg)
}

// Unwrap returns colormodel.ErrInvalidArgument.
func (e *CoordinateError) Unwrap() error {
	return colormodel.ErrInvalidArgument
}

// NewCoordinate returns the coordinate (x, y). Negative values are rejected.
func NewCoordinate(x, y int) (Coordinate, error) {
	if x < 0 || y < 0 {
		return Coordinate{}, &CoordinateError{Index: -1, X: x, Y: y, Msg: "coordinates cannot be negative"}
	}
	return Coordinate{x: x, y: y}, nil
}

// X returns the horizontal position.
func (c Coordinate) X() int { return c.x }

// Y returns the vertical position.
func (c Coordinate) Y() int { return c.y }

// XY returns both components.
func (c Coordinate) XY() (x, y int) { return c.x, c.y }

// Point converts the coordinate to an image.Point.
func (c Coordinate) Point() image.Point { return image.Pt(c.x, c.y) }

func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.x, c.y)
}

// MarshalJSON encodes the coordinate as an [x, y] pair.
func (c Coordinate) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("[%d,%d]", c.x, c.y)), nil
}
