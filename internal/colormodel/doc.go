// Package colormodel represents single colors and converts them between the
// HSV, RGB, CMYK and hex-string color models.
//
// A Color keeps HSV as its canonical state. Every other model is a projection
// computed on demand, so converting back and forth is lossless up to integer
// rounding of the public components.
//
// # Component Ranges
//
// Public constructors and accessors use integers:
//   - Hue: 0-360 degrees
//   - Saturation, Value: 0-100 percent
//   - Red, Green, Blue: 0-255
//   - Cyan, Magenta, Yellow, Key: 0-100 percent
//   - Hex: 7-character "#RRGGBB" (uppercase on output, either case on input)
//
// Internally saturation and value are stored as fractions in [0, 1].
//
// # Adjustments
//
// HueShift, Lighten, Darken, Invert and AdjustSaturation change the color in
// place and return the same *Color so calls can be chained:
//
//	c, _ := colormodel.FromHSV(171, 76, 100)
//	c.Darken(50).Lighten(25).Invert()
//	c.Hex() // "#BF2E44"
//
// The order of chained calls matters because Lighten and Darken clamp.
//
// # Equality
//
// Several HSV triples describe the same visible color (any hue with zero
// saturation is gray). Equal and Key therefore compare the RGB projection,
// never the stored fields.
//
// # Error Handling
//
// Constructors validate eagerly and return either a usable *Color or an error:
//   - ErrInvalidArgument: a component outside its range (see ComponentError)
//   - ErrInvalidFormat: a malformed hex string
//
// # Thread Safety
//
// A Color is a small mutable value owned by its caller. It is not safe for
// concurrent mutation; use Clone to hand a copy to another goroutine.
package colormodel
