package theme

import (
	"image"
	"testing"

	"themekit/pkg/assets"
	"themekit/pkg/colorutil"
	"themekit/pkg/geom"
)

// recorder is a Surface test double that records every drawing call.
type recordedOp struct {
	kind  string // "fillRect", "strokeRect", "line", "point", "fillPath", "strokePath", "gradient", "image", "tile"
	rect  geom.Rect
	color colorutil.Color
	img   image.Image
	path  []geom.PathElement
}

type recorder struct {
	ops     []recordedOp
	clip    geom.Rect
	hasClip bool
}

func (r *recorder) FillRect(rect geom.Rect, c colorutil.Color) {
	r.ops = append(r.ops, recordedOp{kind: "fillRect", rect: rect, color: c})
}

func (r *recorder) StrokeRect(rect geom.Rect, c colorutil.Color) {
	r.ops = append(r.ops, recordedOp{kind: "strokeRect", rect: rect, color: c})
}

func (r *recorder) DrawLine(x1, y1, x2, y2 int, c colorutil.Color) {
	r.ops = append(r.ops, recordedOp{kind: "line", color: c})
}

func (r *recorder) DrawPoint(x, y int, c colorutil.Color) {
	r.ops = append(r.ops, recordedOp{kind: "point", rect: geom.NewRect(x, y, 1, 1), color: c})
}

func (r *recorder) FillPath(p *geom.Path, c colorutil.Color) {
	elems := append([]geom.PathElement(nil), p.Elements()...)
	r.ops = append(r.ops, recordedOp{kind: "fillPath", color: c, path: elems})
}

func (r *recorder) StrokePath(p *geom.Path, c colorutil.Color) {
	elems := append([]geom.PathElement(nil), p.Elements()...)
	r.ops = append(r.ops, recordedOp{kind: "strokePath", color: c, path: elems})
}

func (r *recorder) FillRectLinearGradient(rect geom.Rect, g LinearGradient) {
	r.ops = append(r.ops, recordedOp{kind: "gradient", rect: rect})
}

func (r *recorder) DrawImage(img image.Image, src, dest geom.Rect) {
	r.ops = append(r.ops, recordedOp{kind: "image", rect: dest, img: img})
}

func (r *recorder) TileImage(img image.Image, srcX, srcY int, sx, sy float64, dest geom.Rect) {
	r.ops = append(r.ops, recordedOp{kind: "tile", rect: dest, img: img})
}

func (r *recorder) ClipBounds() (geom.Rect, bool) {
	return r.clip, r.hasClip
}

func (r *recorder) byKind(kind string) []recordedOp {
	var out []recordedOp
	for _, op := range r.ops {
		if op.kind == kind {
			out = append(out, op)
		}
	}
	return out
}

func newTestTheme() (*Theme, assets.Provider) {
	provider := assets.NewProcedural()
	return New(provider), provider
}

func TestGetPartSize(t *testing.T) {
	th, _ := newTestTheme()

	cases := []struct {
		part Part
		want geom.Size
	}{
		{ScrollbarUpArrow, geom.Size{Width: 15, Height: 14}},
		{ScrollbarDownArrow, geom.Size{Width: 15, Height: 14}},
		{ScrollbarLeftArrow, geom.Size{Width: 14, Height: 15}},
		{ScrollbarRightArrow, geom.Size{Width: 14, Height: 15}},
		{SliderThumb, geom.Size{Width: 11, Height: 21}},
		{InnerSpinButton, geom.Size{Width: 15, Height: 0}},
		{PushButton, geom.Size{}},
		{TextField, geom.Size{}},
		{MenuList, geom.Size{}},
		{SliderTrack, geom.Size{}},
		{ProgressBar, geom.Size{}},
	}
	for _, tc := range cases {
		got := th.GetPartSize(tc.part, StateNormal, nil)
		if got != tc.want {
			t.Errorf("%v: expected %+v, got %+v", tc.part, tc.want, got)
		}
	}
}

func TestGetPartSize_CheckboxFixedAcrossStates(t *testing.T) {
	th, _ := newTestTheme()
	want := geom.Size{Width: 13, Height: 13}
	for _, part := range []Part{Checkbox, Radio} {
		for _, state := range States() {
			if got := th.GetPartSize(part, state, nil); got != want {
				t.Errorf("%v/%v: expected %+v, got %+v", part, state, want, got)
			}
		}
	}
}

func TestGetPartSize_UnknownPartPanics(t *testing.T) {
	th, _ := newTestTheme()
	defer func() {
		if recover() == nil {
			t.Error("expected panic for unknown part")
		}
	}()
	th.GetPartSize(Part(99), StateNormal, nil)
}

func TestPaint_UnknownPartPanics(t *testing.T) {
	th, _ := newTestTheme()
	defer func() {
		if recover() == nil {
			t.Error("expected panic for unknown part")
		}
	}()
	th.Paint(&recorder{}, Part(99), StateNormal, geom.NewRect(0, 0, 10, 10), nil)
}

func TestPaint_ExtraParamsMismatchPanics(t *testing.T) {
	th, _ := newTestTheme()
	defer func() {
		if recover() == nil {
			t.Error("expected panic for mismatched extra params")
		}
	}()
	th.Paint(&recorder{}, Checkbox, StateNormal, geom.NewRect(0, 0, 13, 13),
		SliderExtraParams{})
}

func TestPaint_SkipsOutsideClip(t *testing.T) {
	th, _ := newTestTheme()
	rec := &recorder{clip: geom.NewRect(0, 0, 50, 50), hasClip: true}
	th.Paint(rec, PushButton, StateNormal, geom.NewRect(100, 100, 40, 20),
		ButtonExtraParams{BackgroundColor: colorutil.RGB(0xdd, 0xdd, 0xdd)})
	if len(rec.ops) != 0 {
		t.Errorf("expected no drawing outside clip, got %d ops", len(rec.ops))
	}
}

func TestDefault_SharedInstance(t *testing.T) {
	if Default() != Default() {
		t.Error("Default should return one shared renderer")
	}
}

func TestGetSystemColor_Stub(t *testing.T) {
	th, _ := newTestTheme()
	ids := []ColorID{
		ColorWindowBackground, ColorButtonFace, ColorTextfieldBackground,
		ColorTextfieldText, ColorHighlight,
	}
	for _, id := range ids {
		if th.GetSystemColor(id) != colorutil.Black {
			t.Errorf("expected fallback black for id %d", id)
		}
	}
}

func TestPartAndStateNames(t *testing.T) {
	for _, p := range Parts() {
		got, ok := ParsePart(p.String())
		if !ok || got != p {
			t.Errorf("part %v did not round trip", p)
		}
	}
	for _, s := range States() {
		got, ok := ParseState(s.String())
		if !ok || got != s {
			t.Errorf("state %v did not round trip", s)
		}
	}
	if _, ok := ParsePart("no-such-part"); ok {
		t.Error("expected ParsePart failure")
	}
}
