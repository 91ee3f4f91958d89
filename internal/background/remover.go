package background

import (
	"image"

	"github.com/ironsheep/shrine-bgremove/internal/imaging"
)

// Stats summarises one background removal pass.
type Stats struct {
	// Seeds is the number of start points tried, duplicates included.
	Seeds int `json:"seeds"`

	// Fills is the number of seeds that marked at least one new pixel.
	Fills int `json:"fills"`

	// Removed is the number of pixels made transparent.
	Removed int `json:"removed_pixels"`

	// Kept is the number of pixels left untouched.
	Kept int `json:"kept_pixels"`

	// BackgroundHex is the mean original colour of the removed pixels as
	// "#rrggbb", or empty when nothing was removed.
	BackgroundHex string `json:"background_hex,omitempty"`
}

// FindBackground runs a flood fill from every seed returned by Seeds and
// returns the accumulated set of border-connected background pixels.
// img is not modified.
func FindBackground(img *image.NRGBA) (*Mask, *Stats) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	toRemove := NewMask(w, h)
	seeds := Seeds(w, h)
	stats := &Stats{Seeds: len(seeds)}

	f := newFiller(img)
	for _, seed := range seeds {
		if f.fill(seed, toRemove) > 0 {
			stats.Fills++
		}
	}

	stats.Removed = toRemove.Len()
	stats.Kept = w*h - stats.Removed
	stats.BackgroundHex = meanHex(img, toRemove)
	return toRemove, stats
}

// ApplyTransparency sets every pixel in toRemove to (0,0,0,0). The original
// colour is discarded. Applying the same mask again changes nothing.
func ApplyTransparency(img *image.NRGBA, toRemove *Mask) {
	origin := img.Rect.Min
	for i, marked := range toRemove.bits {
		if !marked {
			continue
		}
		off := img.PixOffset(origin.X+i%toRemove.width, origin.Y+i/toRemove.width)
		pix := img.Pix[off : off+4 : off+4]
		pix[0], pix[1], pix[2], pix[3] = 0, 0, 0, 0
	}
}

// RemoveBackground clears the border-connected gray background of img in
// place and reports what it did.
func RemoveBackground(img *image.NRGBA) *Stats {
	toRemove, stats := FindBackground(img)
	ApplyTransparency(img, toRemove)
	return stats
}

func meanHex(img *image.NRGBA, toRemove *Mask) string {
	if toRemove.Len() == 0 {
		return ""
	}

	origin := img.Rect.Min
	var sumR, sumG, sumB int
	for i, marked := range toRemove.bits {
		if !marked {
			continue
		}
		off := img.PixOffset(origin.X+i%toRemove.width, origin.Y+i/toRemove.width)
		sumR += int(img.Pix[off])
		sumG += int(img.Pix[off+1])
		sumB += int(img.Pix[off+2])
	}

	n := toRemove.Len()
	return imaging.HexColor(uint8(sumR/n), uint8(sumG/n), uint8(sumB/n))
}
