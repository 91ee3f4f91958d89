package imaging

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"os"
	"path/filepath"
	"strings"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp" // Register WebP format decoder
)

// Open reads and decodes the image stored at path.
//
// Parameters:
//   - path: Absolute or relative file path. Supported formats are PNG, JPEG,
//     GIF and WebP.
//
// Returns:
//   - image.Image: The decoded image in its native color model.
//   - error: Non-nil if the file cannot be opened or decoded.
//
// # Errors
//
//   - "failed to open image" wraps the underlying os error, so
//     errors.Is(err, fs.ErrNotExist) reports a missing file
//   - "failed to decode image" wraps the decoder error
func Open(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	img, err := imaging.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	return img, nil
}

// ToNRGBA copies img into a new 4-channel, non-premultiplied grid with its
// origin at (0,0). Color models without alpha are expanded as fully opaque.
func ToNRGBA(img image.Image) *image.NRGBA {
	return imaging.Clone(img)
}

// LoadNRGBA opens the image at path and expands it into a mutable NRGBA grid.
func LoadNRGBA(path string) (*image.NRGBA, error) {
	img, err := Open(path)
	if err != nil {
		return nil, err
	}
	return ToNRGBA(img), nil
}

// SavePNG encodes img as PNG and writes it to path, creating any missing
// parent directories.
//
// The image is encoded into memory first; the destination file is only
// created once encoding has succeeded.
func SavePNG(path string, img image.Image) error {
	var buf bytes.Buffer
	if err := imgio.PNGEncoder()(&buf, img); err != nil {
		return fmt.Errorf("failed to encode image: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write image: %w", err)
	}
	return nil
}

// ImageInfo contains metadata about a decoded image file.
type ImageInfo struct {
	// Width is the image width in pixels.
	Width int `json:"width"`

	// Height is the image height in pixels.
	Height int `json:"height"`

	// Format is the detected image format: "png", "jpeg", "gif", "webp" or "unknown".
	// Detection is based on file extension, not file contents.
	Format string `json:"format"`

	// ColorDepth indicates the bit depth per channel: "8-bit" or "16-bit".
	ColorDepth string `json:"color_depth"`

	// HasAlpha indicates whether the source color model carries an alpha channel.
	HasAlpha bool `json:"has_alpha"`

	// FileSizeBytes is the size of the image file on disk in bytes.
	FileSizeBytes int64 `json:"file_size_bytes"`
}

// LoadImageInfo describes img, which must have been decoded from path.
//
// # Format Detection
//
// The format is determined by file extension:
//   - ".png" -> "png"
//   - ".jpg", ".jpeg" -> "jpeg"
//   - ".gif" -> "gif"
//   - ".webp" -> "webp"
//   - Other extensions -> "unknown"
//
// # Color Depth Detection
//
// Color depth is determined by the Go image type:
//   - *image.RGBA64, *image.NRGBA64, *image.Gray16 -> "16-bit"
//   - All other types -> "8-bit"
func LoadImageInfo(path string, img image.Image) (*ImageInfo, error) {
	stat, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	format := "unknown"
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		format = "png"
	case ".jpg", ".jpeg":
		format = "jpeg"
	case ".gif":
		format = "gif"
	case ".webp":
		format = "webp"
	}

	hasAlpha := false
	colorDepth := "8-bit"
	switch img.(type) {
	case *image.RGBA, *image.NRGBA, *image.Paletted:
		hasAlpha = true
	case *image.RGBA64, *image.NRGBA64:
		hasAlpha = true
		colorDepth = "16-bit"
	case *image.Gray16:
		colorDepth = "16-bit"
	}

	bounds := img.Bounds()
	return &ImageInfo{
		Width:         bounds.Dx(),
		Height:        bounds.Dy(),
		Format:        format,
		ColorDepth:    colorDepth,
		HasAlpha:      hasAlpha,
		FileSizeBytes: stat.Size(),
	}, nil
}
