package theme

import (
	"image"

	"themekit/pkg/colorutil"
	"themekit/pkg/geom"
)

// LinearGradient is a two-stop linear gradient. Stops[0] sits at From and
// Stops[1] at To.
type LinearGradient struct {
	From  geom.Point
	To    geom.Point
	Stops [2]colorutil.Color
}

// Surface is the drawing capability the renderer consumes. Implementations
// are provided by the embedding toolkit; pkg/canvas has a raster-backed one.
//
// A Surface is single-writer: callers serialize access to a shared surface
// themselves.
type Surface interface {
	// FillRect fills an axis-aligned rectangle with a solid color.
	FillRect(r geom.Rect, c colorutil.Color)

	// StrokeRect strokes a 1px outline along the rectangle edges.
	StrokeRect(r geom.Rect, c colorutil.Color)

	// DrawLine draws a 1px line between two points. The end point is
	// exclusive, hairline style.
	DrawLine(x1, y1, x2, y2 int, c colorutil.Color)

	// DrawPoint sets a single device pixel.
	DrawPoint(x, y int, c colorutil.Color)

	// FillPath fills a closed polyline path. Open subpaths are implicitly
	// closed.
	FillPath(p *geom.Path, c colorutil.Color)

	// StrokePath strokes a path with a 1px line.
	StrokePath(p *geom.Path, c colorutil.Color)

	// FillRectLinearGradient fills a rectangle with a two-stop linear
	// gradient.
	FillRectLinearGradient(r geom.Rect, g LinearGradient)

	// DrawImage blits the src region of img into dest, scaling as needed.
	DrawImage(img image.Image, src, dest geom.Rect)

	// TileImage repeats img, scaled per-axis by the tile scale factors,
	// across dest. srcX/srcY offset the tiling origin within the image.
	TileImage(img image.Image, srcX, srcY int, tileScaleX, tileScaleY float64, dest geom.Rect)

	// ClipBounds reports the current clip rectangle. ok is false when the
	// surface does not track a clip, in which case painting is never
	// elided.
	ClipBounds() (clip geom.Rect, ok bool)
}
