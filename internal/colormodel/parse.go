package colormodel

import (
	"fmt"
	"strconv"
	"strings"
)

// Parse builds a Color from a color written as text.
//
// Accepted forms:
//   - "#RRGGBB"         hex
//   - "rgb:R,G,B"       0-255 each
//   - "hsv:H,S,V"       hue 0-360, saturation and value 0-100
//   - "cmyk:C,M,Y,K"    0-100 each
//
// The model prefix is case-insensitive and spaces around components are
// ignored. Malformed text fails with ErrInvalidFormat; well-formed text
// with out-of-range components fails with ErrInvalidArgument.
func Parse(text string) (*Color, error) {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "#") {
		return FromHex(text)
	}

	model, rest, ok := strings.Cut(text, ":")
	if !ok {
		return nil, fmt.Errorf("%w: %q has no color model prefix", ErrInvalidFormat, text)
	}

	switch strings.ToLower(model) {
	case "rgb":
		v, err := parseComponents(rest, 3)
		if err != nil {
			return nil, err
		}
		return FromRGB(v[0], v[1], v[2])
	case "hsv":
		v, err := parseComponents(rest, 3)
		if err != nil {
			return nil, err
		}
		return FromHSV(v[0], v[1], v[2])
	case "cmyk":
		v, err := parseComponents(rest, 4)
		if err != nil {
			return nil, err
		}
		return FromCMYK(v[0], v[1], v[2], v[3])
	case "hex":
		return FromHex(strings.TrimSpace(rest))
	default:
		return nil, fmt.Errorf("%w: unknown color model %q", ErrInvalidFormat, model)
	}
}

func parseComponents(s string, n int) ([]int, error) {
	fields := strings.Split(s, ",")
	if len(fields) != n {
		return nil, fmt.Errorf("%w: expected %d components, got %d in %q", ErrInvalidFormat, n, len(fields), s)
	}

	values := make([]int, n)
	for i, f := range fields {
		v, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, fmt.Errorf("%w: component %d of %q is not an integer", ErrInvalidFormat, i+1, s)
		}
		values[i] = v
	}
	return values, nil
}
