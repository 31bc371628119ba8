package colormodel

import (
	"fmt"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// HSV holds the public HSV components of a color.
type HSV struct {
	H int `json:"h"` // Hue: 0-360 degrees (0=red, 120=green, 240=blue)
	S int `json:"s"` // Saturation: 0-100 percent
	V int `json:"v"` // Value: 0-100 percent
}

// RGB holds 8-bit RGB components.
type RGB struct {
	R uint8 `json:"r"` // Red component (0-255)
	G uint8 `json:"g"` // Green component (0-255)
	B uint8 `json:"b"` // Blue component (0-255)
}

// CMYK holds CMYK components as percentages.
type CMYK struct {
	C int `json:"c"` // Cyan: 0-100 percent
	M int `json:"m"` // Magenta: 0-100 percent
	Y int `json:"y"` // Yellow: 0-100 percent
	K int `json:"k"` // Key (black): 0-100 percent
}

// Color is a color with HSV as its canonical representation.
//
// The zero value is black (h=0, s=0, v=0). Use one of the constructors to
// get a validated color from user input.
type Color struct {
	h int     // degrees, 0-360
	s float64 // fraction, 0-1
	v float64 // fraction, 0-1
}

// New creates a Color from hue (0-360), saturation (0-100) and value (0-100).
//
// Returns a *ComponentError wrapping ErrInvalidArgument if any component is
// out of range.
func New(h, s, v int) (*Color, error) {
	if err := checkRange("hue", h, 0, 360); err != nil {
		return nil, err
	}
	if err := checkRange("saturation", s, 0, 100); err != nil {
		return nil, err
	}
	if err := checkRange("value", v, 0, 100); err != nil {
		return nil, err
	}
	return &Color{h: h, s: float64(s) / 100, v: float64(v) / 100}, nil
}

// FromHSV is equivalent to New. It exists so every color model has a
// matching From constructor.
func FromHSV(h, s, v int) (*Color, error) {
	return New(h, s, v)
}

// FromRGB creates a Color from 8-bit red, green and blue components.
//
// Parameters:
//   - r, g, b: components in 0-255.
//
// Returns:
//   - *Color: the color with hue, saturation and value rounded to integers.
//   - error: a *ComponentError if any component is out of range.
func FromRGB(r, g, b int) (*Color, error) {
	if err := checkRange("red", r, 0, 255); err != nil {
		return nil, err
	}
	if err := checkRange("green", g, 0, 255); err != nil {
		return nil, err
	}
	if err := checkRange("blue", b, 0, 255); err != nil {
		return nil, err
	}
	return fromRGBFloat(float64(r), float64(g), float64(b)), nil
}

// FromHex creates a Color from a 7-character "#RRGGBB" string.
//
// Hex digits may be upper or lower case. Shorthand ("#FFF") and
// alpha ("#FFFFFFFF") forms are rejected with ErrInvalidFormat.
func FromHex(s string) (*Color, error) {
	if len(s) != 7 {
		return nil, fmt.Errorf("%w: expected a 7-character hex string such as #06AC9F, got %q",
			ErrInvalidFormat, s)
	}
	if s[0] != '#' || strings.IndexFunc(s[1:], notHexDigit) >= 0 {
		return nil, fmt.Errorf("%w: %q is not a #RRGGBB hex string", ErrInvalidFormat, s)
	}

	col, err := colorful.Hex(s)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to decode %q: %v", ErrInvalidFormat, s, err)
	}
	r, g, b := col.RGB255()
	return FromRGB(int(r), int(g), int(b))
}

// FromCMYK creates a Color from cyan, magenta, yellow and key percentages.
//
// A CMYK color written as cmyk(76%, 0%, 11%, 0%) is passed as
// FromCMYK(76, 0, 11, 0).
func FromCMYK(c, m, y, k int) (*Color, error) {
	if err := checkRange("cyan", c, 0, 100); err != nil {
		return nil, err
	}
	if err := checkRange("magenta", m, 0, 100); err != nil {
		return nil, err
	}
	if err := checkRange("yellow", y, 0, 100); err != nil {
		return nil, err
	}
	if err := checkRange("key", k, 0, 100); err != nil {
		return nil, err
	}

	cf, mf, yf, kf := float64(c)/100, float64(m)/100, float64(y)/100, float64(k)/100

	// Channels stay fractional; rounding happens once, on the HSV components.
	return fromRGBFloat(
		255*(1-cf)*(1-kf),
		255*(1-mf)*(1-kf),
		255*(1-yf)*(1-kf),
	), nil
}

// fromRGBFloat converts RGB channels in [0, 255] to a Color using the
// max/min/delta algorithm. Ties between maximal channels resolve to red,
// then green.
func fromRGBFloat(r, g, b float64) *Color {
	rf := r / 255.0
	gf := g / 255.0
	bf := b / 255.0

	cmax := math.Max(math.Max(rf, gf), bf)
	cmin := math.Min(math.Min(rf, gf), bf)
	delta := cmax - cmin

	var h float64
	switch {
	case delta == 0:
		h = 0
	case cmax == rf:
		h = 60 * ((gf - bf) / delta)
		if h < 0 {
			h += 360
		}
	case cmax == gf:
		h = 60 * ((bf-rf)/delta + 2)
	default:
		h = 60 * ((rf-gf)/delta + 4)
	}

	var s float64
	if cmax > 0 {
		s = delta / cmax * 100
	}
	v := cmax * 100

	return &Color{
		h: int(math.RoundToEven(h)),
		s: math.RoundToEven(s) / 100,
		v: math.RoundToEven(v) / 100,
	}
}

func notHexDigit(r rune) bool {
	return !(r >= '0' && r <= '9' || r >= 'a' && r <= 'f' || r >= 'A' && r <= 'F')
}

// Clone returns an independent copy of c.
func (c *Color) Clone() *Color {
	cp := *c
	return &cp
}

// String returns the canonical HSV state, e.g. "Color(h=171, s=0.76, v=1.00)".
func (c *Color) String() string {
	return fmt.Sprintf("Color(h=%d, s=%.2f, v=%.2f)", c.h, c.s, c.v)
}
