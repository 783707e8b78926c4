package geom

// Point is a location in device pixels.
type Point struct {
	X int
	Y int
}

// Size is a width/height pair in device pixels.
type Size struct {
	Width  int
	Height int
}

// IsEmpty reports whether the size has no area.
func (s Size) IsEmpty() bool {
	return s.Width <= 0 || s.Height <= 0
}

// Rect is an axis-aligned rectangle in device pixels. Width and Height are
// never negative for rects produced by this package.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

func NewRect(x, y, width, height int) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// Right returns the exclusive right edge coordinate.
func (r Rect) Right() int {
	return r.X + r.Width
}

// Bottom returns the exclusive bottom edge coordinate.
func (r Rect) Bottom() int {
	return r.Y + r.Height
}

// IsEmpty reports whether the rect has no area.
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Center returns a rect of the given size centered within r. The result may
// extend outside r when the size is larger than r.
func (r Rect) Center(s Size) Rect {
	return Rect{
		X:      r.X + (r.Width-s.Width)/2,
		Y:      r.Y + (r.Height-s.Height)/2,
		Width:  s.Width,
		Height: s.Height,
	}
}

// Intersect returns the overlap of r and o, or a zero rect when they do not
// overlap.
func (r Rect) Intersect(o Rect) Rect {
	x1 := maxInt(r.X, o.X)
	y1 := maxInt(r.Y, o.Y)
	x2 := minInt(r.Right(), o.Right())
	y2 := minInt(r.Bottom(), o.Bottom())
	if x2 <= x1 || y2 <= y1 {
		return Rect{}
	}
	return Rect{X: x1, Y: y1, Width: x2 - x1, Height: y2 - y1}
}

// Intersects reports whether r and o share any area.
func (r Rect) Intersects(o Rect) bool {
	return !r.Intersect(o).IsEmpty()
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
