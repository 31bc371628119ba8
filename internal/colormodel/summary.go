package colormodel

// Summary contains one color in every supported model.
type Summary struct {
	Hex  string `json:"hex"`  // "#RRGGBB", uppercase
	RGB  RGB    `json:"rgb"`  // 8-bit components
	HSV  HSV    `json:"hsv"`  // hue degrees, saturation/value percent
	CMYK CMYK   `json:"cmyk"` // percentages
}

// Summary projects c into every color model at once.
func (c *Color) Summary() Summary {
	return Summary{
		Hex:  c.Hex(),
		RGB:  c.RGB(),
		HSV:  c.HSV(),
		CMYK: c.CMYK(),
	}
}
