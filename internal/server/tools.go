package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// colorSchema describes a color argument: exactly one of hex, rgb, hsv, cmyk.
func colorSchema(description string) map[string]interface{} {
	intArray := func(n int, desc string) map[string]interface{} {
		return map[string]interface{}{
			"type":        "array",
			"items":       map[string]interface{}{"type": "integer"},
			"minItems":    n,
			"maxItems":    n,
			"description": desc,
		}
	}

	return map[string]interface{}{
		"type":        "object",
		"description": description + " Provide exactly one of hex, rgb, hsv or cmyk.",
		"properties": map[string]interface{}{
			"hex": map[string]interface{}{
				"type":        "string",
				"description": "Hex color #RRGGBB (case-insensitive)",
			},
			"rgb":  intArray(3, "[red, green, blue], each 0-255"),
			"hsv":  intArray(3, "[hue 0-360, saturation 0-100, value 0-100]"),
			"cmyk": intArray(4, "[cyan, magenta, yellow, key], each 0-100"),
		},
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		{
			Name:        "color_convert",
			Description: "Convert a color to hex, RGB, HSV and CMYK at once.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"color": colorSchema("Color to convert."),
				},
				"required": []string{"color"},
			},
		},
		{
			Name:        "color_adjust",
			Description: "Apply hue shifts, lightening, darkening, inversion and saturation changes to a color, in order, and return the result in every color model. Lighten/darken/saturate clamp at 0-100%, so order matters.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"color": colorSchema("Starting color."),
					"operations": map[string]interface{}{
						"type": "array",
						"items": map[string]interface{}{
							"type": "object",
							"properties": map[string]interface{}{
								"op": map[string]interface{}{
									"type":        "string",
									"enum":        []string{opHueShift, opLighten, opDarken, opInvert, opSaturate},
									"description": "Adjustment to apply",
								},
								"amount": map[string]interface{}{
									"type":        "integer",
									"description": "Degrees for hue_shift, percentage points for lighten/darken/saturate. Ignored by invert.",
								},
							},
							"required": []string{"op"},
						},
						"description": "Adjustments applied in array order",
					},
				},
				"required": []string{"color", "operations"},
			},
		},
		{
			Name:        "color_compare",
			Description: "Compare two colors. Colors are equal when their RGB values match; distance is the CIE L*a*b* distance (0 = identical, ~1 = black vs white).",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"a": colorSchema("First color."),
					"b": colorSchema("Second color."),
				},
				"required": []string{"a", "b"},
			},
		},
		{
			Name:        "color_pixels",
			Description: "Associate a color with a list of pixel coordinates and report how many pixels share it.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"color": colorSchema("Color shared by the pixels."),
					"pixels": map[string]interface{}{
						"type": "array",
						"items": map[string]interface{}{
							"type":     "array",
							"items":    map[string]interface{}{"type": "integer", "minimum": 0},
							"minItems": 2,
							"maxItems": 2,
						},
						"description": "Pixel coordinates as [x, y] pairs (0-based, non-negative)",
					},
				},
				"required": []string{"color", "pixels"},
			},
		},
		{
			Name:        "color_swatch",
			Description: "Render a color as a solid PNG swatch and return it base64-encoded.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"color": colorSchema("Color to render."),
					"width": map[string]interface{}{
						"type":        "integer",
						"description": "Swatch width in pixels (1-1024). Defaults to the server configuration.",
					},
					"height": map[string]interface{}{
						"type":        "integer",
						"description": "Swatch height in pixels (1-1024). Defaults to the server configuration.",
					},
				},
				"required": []string{"color"},
			},
		},
	}
}
