package colormodel

import (
	"fmt"
	"math"
	"strconv"

	"github.com/lucasb-eyer/go-colorful"
)

// HSV returns the hue in degrees and saturation and value as rounded percentages.
func (c *Color) HSV() HSV {
	return HSV{
		H: c.h,
		S: int(math.Round(c.s * 100)),
		V: int(math.Round(c.v * 100)),
	}
}

// RGB projects the color into 8-bit RGB.
//
// The conversion follows the standard algorithm:
//  1. chroma = value * saturation
//  2. h' = hue / 60, taken modulo 6 so that 360 degrees is red again
//  3. x = chroma * (1 - |h' mod 2 - 1|)
//  4. pick (r1, g1, b1) from the 60-degree sector h' falls into
//  5. add m = value - chroma to each channel and scale by 255
func (c *Color) RGB() RGB {
	chroma := c.v * c.s
	hp := math.Mod(float64(c.h)/60.0, 6)
	x := chroma * (1 - math.Abs(math.Mod(hp, 2)-1))

	var r1, g1, b1 float64
	switch {
	case hp < 1:
		r1, g1, b1 = chroma, x, 0
	case hp < 2:
		r1, g1, b1 = x, chroma, 0
	case hp < 3:
		r1, g1, b1 = 0, chroma, x
	case hp < 4:
		r1, g1, b1 = 0, x, chroma
	case hp < 5:
		r1, g1, b1 = x, 0, chroma
	default:
		r1, g1, b1 = chroma, 0, x
	}

	m := c.v - chroma

	return RGB{
		R: toChannel(r1 + m),
		G: toChannel(g1 + m),
		B: toChannel(b1 + m),
	}
}

// Hex returns the color as "#RRGGBB" with uppercase digits.
func (c *Color) Hex() string {
	p := c.RGB()
	return fmt.Sprintf("#%02X%02X%02X", p.R, p.G, p.B)
}

// CMYK projects the color into CMYK percentages, derived from the RGB projection.
//
// Pure black has k = 100 and, since the cyan/magenta/yellow formula divides
// by (1 - k), c = m = y = 0.
func (c *Color) CMYK() CMYK {
	p := c.RGB()
	rf := float64(p.R) / 255.0
	gf := float64(p.G) / 255.0
	bf := float64(p.B) / 255.0

	k := 1 - math.Max(math.Max(rf, gf), bf)
	if k >= 1 {
		return CMYK{K: 100}
	}

	return CMYK{
		C: toPercent((1 - rf - k) / (1 - k)),
		M: toPercent((1 - gf - k) / (1 - k)),
		Y: toPercent((1 - bf - k) / (1 - k)),
		K: toPercent(k),
	}
}

// RGBA implements image/color.Color. The color is always fully opaque.
func (c *Color) RGBA() (r, g, b, a uint32) {
	p := c.RGB()
	r = uint32(p.R)
	r |= r << 8
	g = uint32(p.G)
	g |= g << 8
	b = uint32(p.B)
	b |= b << 8
	return r, g, b, 0xffff
}

// Colorful returns the RGB projection as a go-colorful color.
func (c *Color) Colorful() colorful.Color {
	p := c.RGB()
	return colorful.Color{
		R: float64(p.R) / 255.0,
		G: float64(p.G) / 255.0,
		B: float64(p.B) / 255.0,
	}
}

// Key packs the RGB projection as 0xRRGGBB. Colors with equal keys are Equal.
func (c *Color) Key() uint32 {
	p := c.RGB()
	return uint32(p.R)<<16 | uint32(p.G)<<8 | uint32(p.B)
}

// Equal reports whether c and other look the same, i.e. have the same RGB
// projection. Two grays with different hues are equal.
func (c *Color) Equal(other *Color) bool {
	if c == nil || other == nil {
		return c == other
	}
	return c.Key() == other.Key()
}

// Distance returns the CIE L*a*b* distance between c and other. 0 means the
// RGB projections are identical; roughly 1.0 spans black to white.
// A nil operand yields +Inf unless both are nil.
func (c *Color) Distance(other *Color) float64 {
	if c == nil || other == nil {
		if c == other {
			return 0
		}
		return math.Inf(1)
	}
	return c.Colorful().DistanceLab(other.Colorful())
}

func toChannel(f float64) uint8 {
	return uint8(clamp(math.RoundToEven(f*255), 0, 255))
}

// toPercent rounds f to two decimal places, then scales and truncates.
// 0.29 comes out as 28 because 0.29*100 is just below 29 in binary.
func toPercent(f float64) int {
	r, err := strconv.ParseFloat(strconv.FormatFloat(f, 'f', 2, 64), 64)
	if err != nil {
		return int(f * 100)
	}
	return int(r * 100)
}

func clamp(f, lo, hi float64) float64 {
	if f < lo {
		return lo
	}
	if f > hi {
		return hi
	}
	return f
}
