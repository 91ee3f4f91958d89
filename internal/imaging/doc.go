// Package imaging provides the image I/O and colour sampling used by the
// background remover.
//
// Images are decoded from disk and expanded into a mutable *image.NRGBA grid
// (non-premultiplied, 8 bits per channel). Sources without an alpha channel
// come out fully opaque. Results are written back as PNG.
//
// # Coordinate System
//
// All pixel coordinates in this package are 0-based:
//   - X: horizontal position (0 = leftmost pixel)
//   - Y: vertical position (0 = topmost pixel)
//
// # Color Representation
//
// Sampled colors are returned in multiple formats:
//   - Hex: 6-character format "#rrggbb" (alpha excluded)
//   - RGB: 8-bit components (0-255)
//   - RGBA: 8-bit components with alpha (0-255)
//   - HSL: Hue (0-360), Saturation (0-100), Lightness (0-100)
//
// # Error Handling
//
// Functions return wrapped errors for:
//   - Missing or unreadable input files
//   - Corrupt or unsupported image data
//   - Output directories that cannot be created
//   - Encoding or write errors during image output
//
// No output file is created unless the PNG has already been encoded in full.
package imaging
