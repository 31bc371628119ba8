// Package swatch renders a single color as a small PNG image so MCP clients
// can show it. Images are built and encoded in memory; nothing touches disk.
package swatch

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image/color"

	"github.com/disintegration/imaging"
)

// MaxSize bounds both swatch dimensions.
const MaxSize = 1024

// Result contains the encoded swatch.
type Result struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
}

// Render fills a width x height image with c and returns it as base64 PNG.
//
// Both dimensions must be in [1, MaxSize].
func Render(c color.Color, width, height int) (*Result, error) {
	if width < 1 || width > MaxSize || height < 1 || height > MaxSize {
		return nil, fmt.Errorf("invalid swatch size %dx%d: each side must be in [1, %d]", width, height, MaxSize)
	}

	img := imaging.New(width, height, c)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return nil, fmt.Errorf("failed to encode swatch: %w", err)
	}

	return &Result{
		Width:       width,
		Height:      height,
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
	}, nil
}
