package assets

import "testing"

func TestGlyphSizes(t *testing.T) {
	glyphs := []ID{
		CheckboxOn, CheckboxOff, CheckboxDisabledOn, CheckboxDisabledOff,
		CheckboxIndeterminate, CheckboxDisabledIndeterminate,
		RadioOn, RadioOff, RadioDisabledOn, RadioDisabledOff,
	}
	p := NewProcedural()
	for _, id := range glyphs {
		img := p.Image(id)
		b := img.Bounds()
		if b.Dx() != GlyphSize || b.Dy() != GlyphSize {
			t.Errorf("asset %d: expected %dx%d, got %dx%d", id, GlyphSize, GlyphSize, b.Dx(), b.Dy())
		}
	}
}

func TestProgressSizes(t *testing.T) {
	p := NewProcedural()
	for _, id := range []ID{ProgressBar, ProgressValue} {
		b := p.Image(id).Bounds()
		if b.Dx() != ProgressStripWidth || b.Dy() != ProgressStripHeight {
			t.Errorf("asset %d: unexpected size %dx%d", id, b.Dx(), b.Dy())
		}
	}
	for _, id := range []ID{ProgressBorderLeft, ProgressBorderRight} {
		b := p.Image(id).Bounds()
		if b.Dx() != ProgressBorderWidth || b.Dy() != ProgressStripHeight {
			t.Errorf("asset %d: unexpected size %dx%d", id, b.Dx(), b.Dy())
		}
	}
}

func TestImage_Cached(t *testing.T) {
	p := NewProcedural()
	first := p.Image(CheckboxOn)
	second := p.Image(CheckboxOn)
	if first != second {
		t.Error("expected cached image identity on second lookup")
	}
}

func TestImage_UnknownPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for unknown asset id")
		}
	}()
	NewProcedural().Image(ID(999))
}

func TestDefault_Shared(t *testing.T) {
	if Default() != Default() {
		t.Error("Default should return the shared provider")
	}
}
