package colormodel

// HueShift rotates the hue by amount degrees and returns c.
//
// Any amount is accepted; the result is normalized into [0, 360), so
// HueShift(720) is a no-op and HueShift(-21) on hue 10 yields 349.
func (c *Color) HueShift(amount int) *Color {
	c.h = ((c.h+amount)%360 + 360) % 360
	return c
}

// Lighten raises the value by amount percentage points, capped at 100%.
// A negative amount darkens.
func (c *Color) Lighten(amount int) *Color {
	c.v = clamp(c.v+float64(amount)/100, 0, 1)
	return c
}

// Darken lowers the value by amount percentage points, floored at 0%.
func (c *Color) Darken(amount int) *Color {
	return c.Lighten(-amount)
}

// Invert shifts the hue by 180 degrees.
func (c *Color) Invert() *Color {
	return c.HueShift(180)
}

// AdjustSaturation changes the saturation by amount percentage points,
// clamped to [0, 100]. AdjustSaturation(-10000) turns any color gray.
func (c *Color) AdjustSaturation(amount int) *Color {
	c.s = clamp(c.s+float64(amount)/100, 0, 1)
	return c
}
