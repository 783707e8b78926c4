package geom

// PathOp identifies one element of a path.
type PathOp uint8

const (
	PathMoveTo PathOp = iota
	PathLineTo
	PathClose
)

// PathElement is a single path command. X and Y are unused for PathClose.
type PathElement struct {
	Op PathOp
	X  float64
	Y  float64
}

// Path is a polyline path builder. Coordinates are float64 so outlines can
// sit on half-pixel boundaries for crisp 1px strokes.
type Path struct {
	elems []PathElement
	curX  float64
	curY  float64
}

func (p *Path) MoveTo(x, y float64) {
	p.elems = append(p.elems, PathElement{Op: PathMoveTo, X: x, Y: y})
	p.curX, p.curY = x, y
}

func (p *Path) LineTo(x, y float64) {
	p.elems = append(p.elems, PathElement{Op: PathLineTo, X: x, Y: y})
	p.curX, p.curY = x, y
}

// RLineTo adds a line segment relative to the current point.
func (p *Path) RLineTo(dx, dy float64) {
	p.LineTo(p.curX+dx, p.curY+dy)
}

func (p *Path) Close() {
	p.elems = append(p.elems, PathElement{Op: PathClose})
}

// Elements returns the path commands in insertion order. The slice is owned
// by the path and must not be modified.
func (p *Path) Elements() []PathElement {
	return p.elems
}

// IsEmpty reports whether the path has no commands.
func (p *Path) IsEmpty() bool {
	return len(p.elems) == 0
}

// Reset clears the path for reuse.
func (p *Path) Reset() {
	p.elems = p.elems[:0]
	p.curX, p.curY = 0, 0
}
