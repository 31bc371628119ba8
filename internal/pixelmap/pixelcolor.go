package pixelmap

import (
	"fmt"

	"github.com/ironsheep/iris-color-mcp/internal/colormodel"
)

// PixelColor is a color together with the pixels that have it.
//
// The embedded *colormodel.Color exposes HSV, RGB, Hex, CMYK and the
// adjustment methods directly:
//
//	p, _ := pixelmap.New(171, 76, 100, [][2]int{{0, 0}, {0, 1}})
//	p.Hex()        // "#3DFFE2"
//	p.PixelCount() // 2
//
// Adjustments change the color only; the pixel map is fixed at construction.
type PixelColor struct {
	*colormodel.Color
	pixels []Coordinate
}

// Attach wraps an existing color with a pixel map. The color is shared, not
// copied: adjusting it through either handle affects both.
//
// Each pair is validated with NewCoordinate. On failure nothing is
// constructed and the returned *CoordinateError names the offending index.
func Attach(c *colormodel.Color, pixels [][2]int) (*PixelColor, error) {
	if c == nil {
		return nil, fmt.Errorf("%w: nil color", colormodel.ErrInvalidArgument)
	}

	coords := make([]Coordinate, 0, len(pixels))
	for i, p := range pixels {
		coord, err := NewCoordinate(p[0], p[1])
		if err != nil {
			return nil, &CoordinateError{Index: i, X: p[0], Y: p[1], Msg: "coordinates cannot be negative"}
		}
		coords = append(coords, coord)
	}

	return &PixelColor{Color: c, pixels: coords}, nil
}

// New creates a PixelColor from hue (0-360), saturation (0-100), value
// (0-100) and raw [x, y] pairs.
func New(h, s, v int, pixels [][2]int) (*PixelColor, error) {
	return attachResult(colormodel.New(h, s, v))(pixels)
}

// FromHSV is equivalent to New.
func FromHSV(h, s, v int, pixels [][2]int) (*PixelColor, error) {
	return New(h, s, v, pixels)
}

// FromRGB creates a PixelColor from 8-bit RGB components.
func FromRGB(r, g, b int, pixels [][2]int) (*PixelColor, error) {
	return attachResult(colormodel.FromRGB(r, g, b))(pixels)
}

// FromHex creates a PixelColor from a "#RRGGBB" string.
func FromHex(hex string, pixels [][2]int) (*PixelColor, error) {
	return attachResult(colormodel.FromHex(hex))(pixels)
}

// FromCMYK creates a PixelColor from CMYK percentages.
func FromCMYK(c, m, y, k int, pixels [][2]int) (*PixelColor, error) {
	return attachResult(colormodel.FromCMYK(c, m, y, k))(pixels)
}

// attachResult chains a color constructor into Attach, keeping the
// constructor's error untouched.
func attachResult(c *colormodel.Color, err error) func([][2]int) (*PixelColor, error) {
	return func(pixels [][2]int) (*PixelColor, error) {
		if err != nil {
			return nil, err
		}
		return Attach(c, pixels)
	}
}

// PixelCount returns how many pixels share this color.
func (p *PixelColor) PixelCount() int {
	return len(p.pixels)
}

// Coordinates returns a copy of the pixel map in construction order.
func (p *PixelColor) Coordinates() []Coordinate {
	out := make([]Coordinate, len(p.pixels))
	copy(out, p.pixels)
	return out
}

func (p *PixelColor) String() string {
	return fmt.Sprintf("PixelColor(%s, pixels=%d)", p.Hex(), len(p.pixels))
}
