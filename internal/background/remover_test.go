package background

import (
	"bytes"
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var transparent = color.NRGBA{0, 0, 0, 0}

func TestRemoveBackground_AllStone(t *testing.T) {
	img := newSolidImage(10, 10, stone)

	stats := RemoveBackground(img)

	assert.Equal(t, 100, stats.Removed)
	assert.Equal(t, 0, stats.Kept)
	assert.Equal(t, 1, stats.Fills)
	assert.Equal(t, len(Seeds(10, 10)), stats.Seeds)
	assert.Equal(t, "#c8c8c8", stats.BackgroundHex)
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			require.Equal(t, transparent, img.NRGBAAt(x, y), "pixel (%d,%d)", x, y)
		}
	}
}

func TestRemoveBackground_RedCenter(t *testing.T) {
	img := newSolidImage(10, 10, stone)
	center := image.Rect(4, 4, 6, 6)
	fillRect(img, center, red)

	stats := RemoveBackground(img)

	assert.Equal(t, 96, stats.Removed)
	assert.Equal(t, 4, stats.Kept)
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			want := transparent
			if image.Pt(x, y).In(center) {
				want = red
			}
			require.Equal(t, want, img.NRGBAAt(x, y), "pixel (%d,%d)", x, y)
		}
	}
}

func TestRemoveBackground_AllBlack(t *testing.T) {
	img := newSolidImage(10, 10, black)
	before := bytes.Clone(img.Pix)

	stats := RemoveBackground(img)

	assert.Zero(t, stats.Removed)
	assert.Zero(t, stats.Fills)
	assert.Equal(t, 100, stats.Kept)
	assert.Empty(t, stats.BackgroundHex)
	assert.Equal(t, before, img.Pix)
}

func TestRemoveBackground_EnclosedPatchKept(t *testing.T) {
	// Stone border, red ring, stone 2x2 island inside the ring.
	img := newSolidImage(10, 10, stone)
	fillRect(img, image.Rect(3, 3, 7, 7), red)
	island := image.Rect(4, 4, 6, 6)
	fillRect(img, island, stone)

	RemoveBackground(img)

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			p := image.Pt(x, y)
			switch {
			case p.In(island):
				require.Equal(t, stone, img.NRGBAAt(x, y), "island pixel %v", p)
			case p.In(image.Rect(3, 3, 7, 7)):
				require.Equal(t, red, img.NRGBAAt(x, y), "ring pixel %v", p)
			default:
				require.Equal(t, transparent, img.NRGBAAt(x, y), "border pixel %v", p)
			}
		}
	}
}

func TestRemoveBackground_EnclosedImageIsUntouched(t *testing.T) {
	// The whole border is red, so no seed can enter.
	img := newSolidImage(8, 8, red)
	fillRect(img, image.Rect(1, 1, 7, 7), stone)

	stats := RemoveBackground(img)

	assert.Zero(t, stats.Removed)
	assert.Equal(t, stone, img.NRGBAAt(3, 3))
}

func TestRemoveBackground_UnseededBorderRegion(t *testing.T) {
	// A stone notch on the top edge between two seed columns, walled off
	// from everything else, is never reached.
	img := newSolidImage(12, 6, red)
	fillRect(img, image.Rect(1, 0, 4, 2), stone)

	stats := RemoveBackground(img)

	assert.Zero(t, stats.Removed)
	assert.Equal(t, stone, img.NRGBAAt(2, 0))
}

func TestRemoveBackground_SubImage(t *testing.T) {
	parent := newSolidImage(20, 20, red)
	fillRect(parent, image.Rect(10, 10, 20, 20), stone)
	fillRect(parent, image.Rect(14, 14, 16, 16), red)
	sub := parent.SubImage(image.Rect(10, 10, 20, 20)).(*image.NRGBA)

	stats := RemoveBackground(sub)

	assert.Equal(t, 96, stats.Removed)
	assert.Equal(t, transparent, parent.NRGBAAt(10, 10))
	assert.Equal(t, red, parent.NRGBAAt(14, 14))
	assert.Equal(t, red, parent.NRGBAAt(9, 9))
}

func TestFindBackground_DoesNotModify(t *testing.T) {
	img := newSolidImage(6, 6, stone)
	before := bytes.Clone(img.Pix)

	mask, stats := FindBackground(img)

	assert.Equal(t, 36, mask.Len())
	assert.Equal(t, 36, stats.Removed)
	assert.Equal(t, before, img.Pix)
}

func TestApplyTransparency_Idempotent(t *testing.T) {
	img := newSolidImage(10, 10, stone)
	fillRect(img, image.Rect(4, 4, 6, 6), red)
	mask, _ := FindBackground(img)

	ApplyTransparency(img, mask)
	once := bytes.Clone(img.Pix)
	ApplyTransparency(img, mask)

	assert.Equal(t, once, img.Pix)
}

func TestApplyTransparency_DiscardsColor(t *testing.T) {
	img := newSolidImage(2, 1, color.NRGBA{220, 210, 200, 128})
	mask := NewMask(2, 1)
	mask.Add(image.Pt(1, 0))

	ApplyTransparency(img, mask)

	assert.Equal(t, color.NRGBA{220, 210, 200, 128}, img.NRGBAAt(0, 0))
	assert.Equal(t, transparent, img.NRGBAAt(1, 0))
}

func TestRemoveBackground_EmptyImage(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 0, 0))

	stats := RemoveBackground(img)

	assert.Zero(t, stats.Seeds)
	assert.Zero(t, stats.Removed)
}
