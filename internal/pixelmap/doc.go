// Package pixelmap associates a color with the pixel coordinates that share it.
//
// A PixelColor embeds a *colormodel.Color, so every conversion and adjustment
// of the color is available directly on the PixelColor, and adds an ordered,
// read-only list of coordinates (the pixel map).
//
// # Coordinate System
//
// Coordinates are 0-based with the origin at the top-left corner. Both X and
// Y must be non-negative; there is no upper bound because the pixel map is
// not tied to any particular image.
//
// # Error Handling
//
// Invalid coordinates fail with a *CoordinateError, which unwraps to
// colormodel.ErrInvalidArgument so that one error taxonomy covers colors and
// pixels alike.
package pixelmap
