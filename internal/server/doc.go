// Package server implements the MCP (Model Context Protocol) server for color tools.
//
// This package provides a JSON-RPC 2.0 server that exposes the colormodel,
// pixelmap and swatch packages through the MCP protocol, so Claude and other
// MCP-compatible clients can convert and adjust colors exactly instead of
// estimating them.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
//   - color_convert: One color in hex, RGB, HSV and CMYK
//   - color_adjust: Ordered hue shift / lighten / darken / invert / saturate
//   - color_compare: Equality by RGB value plus L*a*b* distance
//   - color_pixels: Color plus the pixel coordinates sharing it
//   - color_swatch: Solid PNG swatch, base64-encoded
//
// Every tool takes colors as an object with exactly one of:
//
//	{"hex": "#3DFFE2"}
//	{"rgb": [61, 255, 226]}
//	{"hsv": [171, 76, 100]}
//	{"cmyk": [76, 0, 11, 0]}
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//     (-32700 parse error, -32601 unknown method, -32602 invalid params)
//   - message: Human-readable error description
//   - data: The Go error string, e.g. "invalid argument: expected red in range [0..255], got 999"
//
// # Usage
//
//	srv := server.New(cfg, logger)
//	if err := srv.Run(ctx, os.Stdin, os.Stdout); err != nil {
//	    logger.Fatal("server error", zap.Error(err))
//	}
package server
