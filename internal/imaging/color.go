package imaging

import (
	"fmt"
	"image"

	"github.com/lucasb-eyer/go-colorful"
)

// RGBColor represents an RGB color with 8-bit components.
type RGBColor struct {
	R uint8 `json:"r"` // Red component (0-255)
	G uint8 `json:"g"` // Green component (0-255)
	B uint8 `json:"b"` // Blue component (0-255)
}

// RGBAColor represents an RGBA color with 8-bit components including alpha.
//
// The alpha component represents opacity:
//   - 0 = fully transparent
//   - 255 = fully opaque
type RGBAColor struct {
	R uint8 `json:"r"` // Red component (0-255)
	G uint8 `json:"g"` // Green component (0-255)
	B uint8 `json:"b"` // Blue component (0-255)
	A uint8 `json:"a"` // Alpha/opacity component (0-255)
}

// HSLColor represents a color in HSL (Hue, Saturation, Lightness) color space.
type HSLColor struct {
	H int `json:"h"` // Hue: 0-360 degrees (0=red, 120=green, 240=blue)
	S int `json:"s"` // Saturation: 0-100 percent (0=gray, 100=vivid)
	L int `json:"l"` // Lightness: 0-100 percent (0=black, 50=normal, 100=white)
}

// ColorResult contains a color value in multiple representations.
type ColorResult struct {
	Hex  string    `json:"hex"`  // Hex format "#rrggbb" (no alpha)
	RGB  RGBColor  `json:"rgb"`  // RGB components
	RGBA RGBAColor `json:"rgba"` // RGBA components with alpha
	HSL  HSLColor  `json:"hsl"`  // HSL representation
}

// SampleColor extracts the color value at a specific pixel coordinate.
//
// Coordinates are relative to the image bounds, so (0,0) is always the
// top-left pixel. Valid X range is 0 to width-1, valid Y range 0 to height-1.
//
// The native color is converted to 8-bit components by right-shifting the
// 16-bit values returned by color.Color.RGBA. The Hex format excludes alpha.
func SampleColor(img image.Image, x, y int) (*ColorResult, error) {
	bounds := img.Bounds()
	if x < 0 || x >= bounds.Dx() || y < 0 || y >= bounds.Dy() {
		return nil, fmt.Errorf("coordinates (%d,%d) outside image bounds", x, y)
	}

	r, g, b, a := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
	r8, g8, b8, a8 := uint8(r>>8), uint8(g>>8), uint8(b>>8), uint8(a>>8)

	return &ColorResult{
		Hex:  HexColor(r8, g8, b8),
		RGB:  RGBColor{R: r8, G: g8, B: b8},
		RGBA: RGBAColor{R: r8, G: g8, B: b8, A: a8},
		HSL:  rgbToHSL(r8, g8, b8),
	}, nil
}

// LabeledPoint represents a pixel coordinate with an optional descriptive label.
type LabeledPoint struct {
	X     int    // X coordinate (0-based)
	Y     int    // Y coordinate (0-based)
	Label string // Optional descriptive label for this point
}

// LabeledColorResult combines a color sample with its location and optional label.
type LabeledColorResult struct {
	Label string      `json:"label,omitempty"` // Optional label (empty if not provided)
	X     int         `json:"x"`               // X coordinate that was sampled
	Y     int         `json:"y"`               // Y coordinate that was sampled
	Color ColorResult `json:"color"`           // The color at this location
}

// SampleColorsMulti extracts colors at multiple pixel coordinates.
//
// Results are returned in input order. If any coordinate is outside the image
// bounds an error is returned and no partial results are produced.
func SampleColorsMulti(img image.Image, points []LabeledPoint) ([]LabeledColorResult, error) {
	results := make([]LabeledColorResult, 0, len(points))

	for _, p := range points {
		color, err := SampleColor(img, p.X, p.Y)
		if err != nil {
			return nil, fmt.Errorf("failed to sample point (%d,%d): %w", p.X, p.Y, err)
		}
		results = append(results, LabeledColorResult{
			Label: p.Label,
			X:     p.X,
			Y:     p.Y,
			Color: *color,
		})
	}

	return results, nil
}

// CornerPoints returns the four corner coordinates of img, labelled.
// An empty image has no corners.
func CornerPoints(img image.Image) []LabeledPoint {
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	if w <= 0 || h <= 0 {
		return nil
	}
	return []LabeledPoint{
		{X: 0, Y: 0, Label: "top-left"},
		{X: w - 1, Y: 0, Label: "top-right"},
		{X: 0, Y: h - 1, Label: "bottom-left"},
		{X: w - 1, Y: h - 1, Label: "bottom-right"},
	}
}

// HexColor formats 8-bit RGB components as "#rrggbb".
func HexColor(r, g, b uint8) string {
	return toColorful(r, g, b).Hex()
}

// rgbToHSL converts 8-bit RGB values to HSL with S and L as percentages.
func rgbToHSL(r, g, b uint8) HSLColor {
	h, s, l := toColorful(r, g, b).Hsl()
	return HSLColor{
		H: int(h),
		S: int(s * 100),
		L: int(l * 100),
	}
}

func toColorful(r, g, b uint8) colorful.Color {
	return colorful.Color{
		R: float64(r) / 255.0,
		G: float64(g) / 255.0,
		B: float64(b) / 255.0,
	}
}
