package background

import "image"

// filler runs flood fills over one image. The visited set is per fill: each
// call to fill bumps gen, which invalidates every earlier stamp in O(1).
type filler struct {
	img     *image.NRGBA
	width   int
	height  int
	visited []uint32
	gen     uint32
	stack   []image.Point
}

func newFiller(img *image.NRGBA) *filler {
	b := img.Bounds()
	return &filler{
		img:     img,
		width:   b.Dx(),
		height:  b.Dy(),
		visited: make([]uint32, b.Dx()*b.Dy()),
	}
}

// fill walks the 4-connected region around start and adds every background
// pixel it reaches to toRemove. It returns the number of newly marked pixels.
//
// Bounds and visited checks happen when a point is popped, not when it is
// pushed. Pixels already in toRemove are not re-entered: the fill that marked
// them has already explored everything reachable from them.
func (f *filler) fill(start image.Point, toRemove *Mask) int {
	f.gen++
	f.stack = append(f.stack[:0], start)
	marked := 0

	for len(f.stack) > 0 {
		p := f.stack[len(f.stack)-1]
		f.stack = f.stack[:len(f.stack)-1]

		if p.X < 0 || p.X >= f.width || p.Y < 0 || p.Y >= f.height {
			continue
		}
		i := p.Y*f.width + p.X
		if f.visited[i] == f.gen || toRemove.bits[i] {
			continue
		}
		f.visited[i] = f.gen

		if !f.backgroundAt(p.X, p.Y) {
			continue
		}
		toRemove.set(i)
		marked++

		f.stack = append(f.stack,
			image.Pt(p.X+1, p.Y),
			image.Pt(p.X-1, p.Y),
			image.Pt(p.X, p.Y+1),
			image.Pt(p.X, p.Y-1),
		)
	}

	return marked
}

func (f *filler) backgroundAt(x, y int) bool {
	origin := f.img.Rect.Min
	off := f.img.PixOffset(origin.X+x, origin.Y+y)
	pix := f.img.Pix[off : off+3 : off+3]
	return IsBackground(pix[0], pix[1], pix[2])
}

// FloodFill marks every background pixel of img that is 4-connected to seed
// through background pixels, adding them to toRemove. seed is relative to the
// image's top-left corner; an out-of-bounds seed marks nothing. toRemove must
// have been created with img's dimensions.
//
// It returns the number of pixels newly added to toRemove.
func FloodFill(img *image.NRGBA, seed image.Point, toRemove *Mask) int {
	return newFiller(img).fill(seed, toRemove)
}
