// Package canvas provides a raster-backed implementation of theme.Surface
// on top of a fogleman/gg drawing context.
package canvas

import (
	"image"

	"github.com/fogleman/gg"
	xdraw "golang.org/x/image/draw"

	"themekit/pkg/colorutil"
	"themekit/pkg/geom"
	"themekit/pkg/theme"
)

// Canvas is a theme.Surface drawing into an in-memory RGBA image.
type Canvas struct {
	ctx    *gg.Context
	width  int
	height int
}

var _ theme.Surface = (*Canvas)(nil)

// New creates a canvas of the given pixel size.
func New(width, height int) *Canvas {
	return &Canvas{ctx: gg.NewContext(width, height), width: width, height: height}
}

// NewForRGBA wraps an existing image so the caller keeps ownership of the
// pixels.
func NewForRGBA(im *image.RGBA) *Canvas {
	b := im.Bounds()
	return &Canvas{ctx: gg.NewContextForRGBA(im), width: b.Dx(), height: b.Dy()}
}

// Context exposes the underlying gg context for callers that draw their own
// decorations (labels, debug overlays) around the themed parts.
func (c *Canvas) Context() *gg.Context {
	return c.ctx
}

// Image returns the backing image.
func (c *Canvas) Image() image.Image {
	return c.ctx.Image()
}

func (c *Canvas) Width() int  { return c.width }
func (c *Canvas) Height() int { return c.height }

// Clear fills the whole canvas with a solid color.
func (c *Canvas) Clear(col colorutil.Color) {
	c.ctx.SetColor(col.NRGBA())
	c.ctx.Clear()
}

// SavePNG writes the canvas to disk.
func (c *Canvas) SavePNG(path string) error {
	return c.ctx.SavePNG(path)
}

func (c *Canvas) FillRect(r geom.Rect, col colorutil.Color) {
	if r.IsEmpty() {
		return
	}
	c.ctx.SetColor(col.NRGBA())
	c.ctx.DrawRectangle(float64(r.X), float64(r.Y), float64(r.Width), float64(r.Height))
	c.ctx.Fill()
}

func (c *Canvas) StrokeRect(r geom.Rect, col colorutil.Color) {
	if r.IsEmpty() {
		return
	}
	c.ctx.SetColor(col.NRGBA())
	c.ctx.SetLineWidth(1)
	// Half-pixel offsets keep the 1px stroke on pixel centers.
	c.ctx.DrawRectangle(float64(r.X)+0.5, float64(r.Y)+0.5, float64(r.Width), float64(r.Height))
	c.ctx.Stroke()
}

// DrawLine draws a 1px line. Axis-aligned lines are filled as rects so the
// exclusive-endpoint hairline convention holds exactly.
func (c *Canvas) DrawLine(x1, y1, x2, y2 int, col colorutil.Color) {
	switch {
	case y1 == y2:
		x1, x2 = ordered(x1, x2)
		c.FillRect(geom.NewRect(x1, y1, x2-x1, 1), col)
	case x1 == x2:
		y1, y2 = ordered(y1, y2)
		c.FillRect(geom.NewRect(x1, y1, 1, y2-y1), col)
	default:
		c.ctx.SetColor(col.NRGBA())
		c.ctx.SetLineWidth(1)
		c.ctx.DrawLine(float64(x1)+0.5, float64(y1)+0.5, float64(x2)+0.5, float64(y2)+0.5)
		c.ctx.Stroke()
	}
}

func (c *Canvas) DrawPoint(x, y int, col colorutil.Color) {
	c.ctx.SetColor(col.NRGBA())
	c.ctx.SetPixel(x, y)
}

func (c *Canvas) FillPath(p *geom.Path, col colorutil.Color) {
	if p.IsEmpty() {
		return
	}
	c.ctx.SetColor(col.NRGBA())
	c.tracePath(p)
	c.ctx.Fill()
}

func (c *Canvas) StrokePath(p *geom.Path, col colorutil.Color) {
	if p.IsEmpty() {
		return
	}
	c.ctx.SetColor(col.NRGBA())
	c.ctx.SetLineWidth(1)
	c.tracePath(p)
	c.ctx.Stroke()
}

func (c *Canvas) tracePath(p *geom.Path) {
	for _, e := range p.Elements() {
		switch e.Op {
		case geom.PathMoveTo:
			c.ctx.MoveTo(e.X, e.Y)
		case geom.PathLineTo:
			c.ctx.LineTo(e.X, e.Y)
		case geom.PathClose:
			c.ctx.ClosePath()
		}
	}
}

func (c *Canvas) FillRectLinearGradient(r geom.Rect, g theme.LinearGradient) {
	if r.IsEmpty() {
		return
	}
	grad := gg.NewLinearGradient(
		float64(g.From.X), float64(g.From.Y),
		float64(g.To.X), float64(g.To.Y))
	grad.AddColorStop(0, g.Stops[0].NRGBA())
	grad.AddColorStop(1, g.Stops[1].NRGBA())
	c.ctx.SetFillStyle(grad)
	c.ctx.DrawRectangle(float64(r.X), float64(r.Y), float64(r.Width), float64(r.Height))
	c.ctx.Fill()
	// Reset to a solid fill so later drawing is unaffected.
	c.ctx.SetColor(colorutil.Black.NRGBA())
}

func (c *Canvas) DrawImage(img image.Image, src, dest geom.Rect) {
	if src.IsEmpty() || dest.IsEmpty() {
		return
	}
	dst, ok := c.ctx.Image().(*image.RGBA)
	if !ok {
		return
	}
	sb := img.Bounds()
	sr := image.Rect(sb.Min.X+src.X, sb.Min.Y+src.Y,
		sb.Min.X+src.Right(), sb.Min.Y+src.Bottom())
	dr := image.Rect(dest.X, dest.Y, dest.Right(), dest.Bottom())
	xdraw.ApproxBiLinear.Scale(dst, dr, img, sr, xdraw.Over, nil)
}

func (c *Canvas) TileImage(img image.Image, srcX, srcY int, tileScaleX, tileScaleY float64, dest geom.Rect) {
	b := img.Bounds()
	tileW := int(float64(b.Dx()) * tileScaleX)
	tileH := int(float64(b.Dy()) * tileScaleY)
	if tileW <= 0 || tileH <= 0 || dest.IsEmpty() {
		return
	}
	dst, ok := c.ctx.Image().(*image.RGBA)
	if !ok {
		return
	}
	// Clip each tile to the destination rect via a shared-pixel subimage.
	clipped, ok := dst.SubImage(image.Rect(dest.X, dest.Y, dest.Right(), dest.Bottom())).(*image.RGBA)
	if !ok {
		return
	}
	sr := image.Rect(b.Min.X+srcX, b.Min.Y+srcY, b.Max.X, b.Max.Y)
	for y := dest.Y; y < dest.Bottom(); y += tileH {
		for x := dest.X; x < dest.Right(); x += tileW {
			dr := image.Rect(x, y, x+tileW, y+tileH)
			xdraw.ApproxBiLinear.Scale(clipped, dr, img, sr, xdraw.Over, nil)
		}
	}
}

// ClipBounds reports the full canvas extent; the canvas does not track a
// narrower clip.
func (c *Canvas) ClipBounds() (geom.Rect, bool) {
	return geom.NewRect(0, 0, c.width, c.height), true
}

func ordered(a, b int) (int, int) {
	if a > b {
		return b, a
	}
	return a, b
}
