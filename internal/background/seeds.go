package background

import "image"

// SeedStride is the spacing between border seeds.
const SeedStride = 5

// Seeds returns the flood-fill start points for a width x height image.
//
// The order is: the four corners (top-left, top-right, bottom-left,
// bottom-right), then for every x in 0, 5, 10, ... < width the top and bottom
// pixels of that column, then for every y in 0, 5, 10, ... < height the left
// and right pixels of that row. The last row or column is only seeded along
// the border when it falls on the stride. Duplicates are kept.
//
// An empty image has no seeds.
func Seeds(width, height int) []image.Point {
	if width <= 0 || height <= 0 {
		return nil
	}

	seeds := make([]image.Point, 0, 4+2*(width/SeedStride+1)+2*(height/SeedStride+1))
	seeds = append(seeds,
		image.Pt(0, 0),
		image.Pt(width-1, 0),
		image.Pt(0, height-1),
		image.Pt(width-1, height-1),
	)

	for x := 0; x < width; x += SeedStride {
		seeds = append(seeds, image.Pt(x, 0), image.Pt(x, height-1))
	}
	for y := 0; y < height; y += SeedStride {
		seeds = append(seeds, image.Pt(0, y), image.Pt(width-1, y))
	}

	return seeds
}
