package server

import (
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/ironsheep/iris-color-mcp/internal/colormodel"
	"github.com/ironsheep/iris-color-mcp/internal/pixelmap"
	"github.com/ironsheep/iris-color-mcp/internal/swatch"
)

// Operation names accepted by color_adjust.
const (
	opHueShift = "hue_shift"
	opLighten  = "lighten"
	opDarken   = "darken"
	opInvert   = "invert"
	opSaturate = "saturate"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "color_convert", "color_adjust").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		s.logger.Info("tool failed", zap.String("tool", params.Name), zap.Error(err))
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
//
// Each tool handler:
//  1. Unmarshals arguments from JSON
//  2. Builds the color(s) named in the arguments
//  3. Calls the appropriate colormodel/pixelmap/swatch function
//  4. Returns the result or error
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	case "color_convert":
		return s.handleColorConvert(args)
	case "color_adjust":
		return s.handleColorAdjust(args)
	case "color_compare":
		return s.handleColorCompare(args)
	case "color_pixels":
		return s.handleColorPixels(args)
	case "color_swatch":
		return s.handleColorSwatch(args)
	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// Panics are suppressed; on marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// unmarshalArgs decodes tool arguments, treating missing arguments as an
// empty object.
func unmarshalArgs(args json.RawMessage, v interface{}) error {
	if len(args) == 0 {
		args = json.RawMessage("{}")
	}
	if err := json.Unmarshal(args, v); err != nil {
		return fmt.Errorf("invalid arguments: %w", err)
	}
	return nil
}

// colorArgs is the JSON form of a color. Exactly one field must be set.
type colorArgs struct {
	Hex  *string `json:"hex,omitempty"`
	RGB  []int   `json:"rgb,omitempty"`
	HSV  []int   `json:"hsv,omitempty"`
	CMYK []int   `json:"cmyk,omitempty"`
}

var errNoColor = errors.New("color requires exactly one of hex, rgb, hsv or cmyk")

// build validates the arguments and constructs the color.
func (a *colorArgs) build() (*colormodel.Color, error) {
	if a == nil {
		return nil, errNoColor
	}

	set := 0
	if a.Hex != nil {
		set++
	}
	for _, v := range [][]int{a.RGB, a.HSV, a.CMYK} {
		if v != nil {
			set++
		}
	}
	if set != 1 {
		return nil, errNoColor
	}

	switch {
	case a.Hex != nil:
		return colormodel.FromHex(*a.Hex)
	case a.RGB != nil:
		if err := checkLen("rgb", a.RGB, 3); err != nil {
			return nil, err
		}
		return colormodel.FromRGB(a.RGB[0], a.RGB[1], a.RGB[2])
	case a.HSV != nil:
		if err := checkLen("hsv", a.HSV, 3); err != nil {
			return nil, err
		}
		return colormodel.FromHSV(a.HSV[0], a.HSV[1], a.HSV[2])
	default:
		if err := checkLen("cmyk", a.CMYK, 4); err != nil {
			return nil, err
		}
		return colormodel.FromCMYK(a.CMYK[0], a.CMYK[1], a.CMYK[2], a.CMYK[3])
	}
}

func checkLen(model string, v []int, n int) error {
	if len(v) != n {
		return fmt.Errorf("%w: %s requires %d components, got %d", colormodel.ErrInvalidFormat, model, n, len(v))
	}
	return nil
}

// === Conversion Handlers ===

type colorConvertArgs struct {
	Color *colorArgs `json:"color"`
}

func (s *Server) handleColorConvert(args json.RawMessage) (interface{}, error) {
	var a colorConvertArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}
	c, err := a.Color.build()
	if err != nil {
		return nil, err
	}
	return c.Summary(), nil
}

// === Adjustment Handlers ===

type adjustOperation struct {
	Op     string `json:"op"`
	Amount int    `json:"amount"`
}

type colorAdjustArgs struct {
	Color      *colorArgs        `json:"color"`
	Operations []adjustOperation `json:"operations"`
}

// ColorAdjustResult reports the starting and adjusted color.
type ColorAdjustResult struct {
	Original colormodel.Summary `json:"original"`
	Adjusted colormodel.Summary `json:"adjusted"`
	Applied  int                `json:"applied"` // number of operations applied
}

func (s *Server) handleColorAdjust(args json.RawMessage) (interface{}, error) {
	var a colorAdjustArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}
	c, err := a.Color.build()
	if err != nil {
		return nil, err
	}

	// Validate every operation before touching the color.
	for i, op := range a.Operations {
		switch op.Op {
		case opHueShift, opLighten, opDarken, opInvert, opSaturate:
		default:
			return nil, fmt.Errorf("operation %d: unknown op %q", i, op.Op)
		}
	}

	original := c.Summary()
	for _, op := range a.Operations {
		switch op.Op {
		case opHueShift:
			c.HueShift(op.Amount)
		case opLighten:
			c.Lighten(op.Amount)
		case opDarken:
			c.Darken(op.Amount)
		case opInvert:
			c.Invert()
		case opSaturate:
			c.AdjustSaturation(op.Amount)
		}
	}

	return &ColorAdjustResult{
		Original: original,
		Adjusted: c.Summary(),
		Applied:  len(a.Operations),
	}, nil
}

// === Comparison Handlers ===

type colorCompareArgs struct {
	A *colorArgs `json:"a"`
	B *colorArgs `json:"b"`
}

// ColorCompareResult reports whether two colors match.
type ColorCompareResult struct {
	Equal    bool               `json:"equal"`
	Distance float64            `json:"distance"`
	A        colormodel.Summary `json:"a"`
	B        colormodel.Summary `json:"b"`
}

func (s *Server) handleColorCompare(args json.RawMessage) (interface{}, error) {
	var a colorCompareArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}
	ca, err := a.A.build()
	if err != nil {
		return nil, fmt.Errorf("color a: %w", err)
	}
	cb, err := a.B.build()
	if err != nil {
		return nil, fmt.Errorf("color b: %w", err)
	}

	return &ColorCompareResult{
		Equal:    ca.Equal(cb),
		Distance: ca.Distance(cb),
		A:        ca.Summary(),
		B:        cb.Summary(),
	}, nil
}

// === Pixel Map Handlers ===

type colorPixelsArgs struct {
	Color  *colorArgs `json:"color"`
	Pixels [][]int    `json:"pixels"`
}

// ColorPixelsResult reports a color and the pixels sharing it.
type ColorPixelsResult struct {
	PixelCount int                   `json:"pixel_count"`
	Pixels     []pixelmap.Coordinate `json:"pixels"`
	Color      colormodel.Summary    `json:"color"`
}

func (s *Server) handleColorPixels(args json.RawMessage) (interface{}, error) {
	var a colorPixelsArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}
	c, err := a.Color.build()
	if err != nil {
		return nil, err
	}

	pairs := make([][2]int, len(a.Pixels))
	for i, p := range a.Pixels {
		if len(p) != 2 {
			return nil, fmt.Errorf("%w: pixel %d must be an [x, y] pair, got %d values",
				colormodel.ErrInvalidArgument, i, len(p))
		}
		pairs[i] = [2]int{p[0], p[1]}
	}

	pc, err := pixelmap.Attach(c, pairs)
	if err != nil {
		return nil, err
	}

	return &ColorPixelsResult{
		PixelCount: pc.PixelCount(),
		Pixels:     pc.Coordinates(),
		Color:      pc.Summary(),
	}, nil
}

// === Swatch Handlers ===

type colorSwatchArgs struct {
	Color  *colorArgs `json:"color"`
	Width  int        `json:"width"`
	Height int        `json:"height"`
}

// ColorSwatchResult is a rendered swatch plus the color it shows.
type ColorSwatchResult struct {
	*swatch.Result
	Hex string `json:"hex"`
}

func (s *Server) handleColorSwatch(args json.RawMessage) (interface{}, error) {
	var a colorSwatchArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}
	if a.Width == 0 {
		a.Width = s.cfg.Swatch.Width
	}
	if a.Height == 0 {
		a.Height = s.cfg.Swatch.Height
	}

	c, err := a.Color.build()
	if err != nil {
		return nil, err
	}

	result, err := swatch.Render(c, a.Width, a.Height)
	if err != nil {
		return nil, err
	}
	return &ColorSwatchResult{Result: result, Hex: c.Hex()}, nil
}
