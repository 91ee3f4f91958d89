package background

import "image"

// Mask is the set of pixel coordinates marked for removal.
//
// Coordinates are 0-based and relative to the image's top-left corner. A
// Mask only grows; there is no way to unmark a pixel.
type Mask struct {
	width  int
	height int
	bits   []bool
	count  int
}

// NewMask returns an empty mask for a width x height image.
func NewMask(width, height int) *Mask {
	if width < 0 || height < 0 {
		width, height = 0, 0
	}
	return &Mask{
		width:  width,
		height: height,
		bits:   make([]bool, width*height),
	}
}

// Has reports whether p is marked. Points outside the mask are never marked.
func (m *Mask) Has(p image.Point) bool {
	if !m.inBounds(p) {
		return false
	}
	return m.bits[m.index(p)]
}

// Add marks p. It is a no-op for points outside the mask or already marked.
func (m *Mask) Add(p image.Point) {
	if !m.inBounds(p) {
		return
	}
	m.set(m.index(p))
}

// Len returns the number of marked pixels.
func (m *Mask) Len() int {
	return m.count
}

// Points returns the marked coordinates in row-major order.
func (m *Mask) Points() []image.Point {
	points := make([]image.Point, 0, m.count)
	for i, marked := range m.bits {
		if marked {
			points = append(points, image.Pt(i%m.width, i/m.width))
		}
	}
	return points
}

func (m *Mask) inBounds(p image.Point) bool {
	return p.X >= 0 && p.X < m.width && p.Y >= 0 && p.Y < m.height
}

func (m *Mask) index(p image.Point) int {
	return p.Y*m.width + p.X
}

func (m *Mask) set(i int) {
	if !m.bits[i] {
		m.bits[i] = true
		m.count++
	}
}
