package compare

import (
	"image"
	"image/color"
	"testing"
)

func solid(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func TestImages_Identical(t *testing.T) {
	a := solid(8, 8, color.RGBA{10, 20, 30, 255})
	b := solid(8, 8, color.RGBA{10, 20, 30, 255})

	result, _, err := Images(a, b, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Match || result.DifferentPixels != 0 {
		t.Errorf("identical images should match: %+v", result)
	}
	if result.TotalPixels != 64 {
		t.Errorf("expected 64 total pixels, got %d", result.TotalPixels)
	}
}

func TestImages_WithinTolerance(t *testing.T) {
	a := solid(4, 4, color.RGBA{100, 100, 100, 255})
	b := solid(4, 4, color.RGBA{102, 99, 100, 255})

	result, _, err := Images(a, b, DefaultOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Match {
		t.Errorf("difference of 2 should pass default tolerance: %+v", result)
	}
	if result.MaxDifference != 2 {
		t.Errorf("expected max difference 2, got %d", result.MaxDifference)
	}
}

func TestImages_BeyondTolerance(t *testing.T) {
	a := solid(4, 4, color.RGBA{100, 100, 100, 255})
	b := solid(4, 4, color.RGBA{150, 100, 100, 255})

	result, _, err := Images(a, b, Options{Tolerance: 10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Match {
		t.Error("expected mismatch")
	}
	if result.DifferentPixels != 16 {
		t.Errorf("expected all 16 pixels different, got %d", result.DifferentPixels)
	}
}

func TestImages_DimensionMismatch(t *testing.T) {
	a := solid(4, 4, color.RGBA{0, 0, 0, 255})
	b := solid(5, 4, color.RGBA{0, 0, 0, 255})
	if _, _, err := Images(a, b, Options{}); err == nil {
		t.Error("expected error for mismatched dimensions")
	}
}

func TestImages_FuzzyRadius(t *testing.T) {
	// A single dark pixel shifted one column over matches with radius 1.
	a := solid(8, 8, color.RGBA{255, 255, 255, 255})
	b := solid(8, 8, color.RGBA{255, 255, 255, 255})
	a.SetRGBA(3, 3, color.RGBA{0, 0, 0, 255})
	b.SetRGBA(4, 3, color.RGBA{0, 0, 0, 255})

	result, _, err := Images(a, b, Options{FuzzyRadius: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Match {
		t.Errorf("1px shift should match with fuzzy radius 1: %+v", result)
	}

	result, _, err = Images(a, b, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Match {
		t.Error("1px shift should mismatch without fuzzy radius")
	}
}

func TestImages_MaxDifferentPercent(t *testing.T) {
	a := solid(10, 10, color.RGBA{255, 255, 255, 255})
	b := solid(10, 10, color.RGBA{255, 255, 255, 255})
	b.SetRGBA(0, 0, color.RGBA{0, 0, 0, 255})

	result, _, err := Images(a, b, Options{MaxDifferentPercent: 1.0})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Match || result.DifferentPixels != 1 {
		t.Errorf("1%% threshold should absorb a single bad pixel: %+v", result)
	}
}

func TestImages_DiffImage(t *testing.T) {
	a := solid(4, 4, color.RGBA{255, 255, 255, 255})
	b := solid(4, 4, color.RGBA{255, 255, 255, 255})
	b.SetRGBA(2, 1, color.RGBA{0, 0, 0, 255})

	_, diff, err := Images(a, b, Options{WantDiffImage: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff == nil {
		t.Fatal("expected a diff image")
	}
	if got := diff.RGBAAt(2, 1); got != (color.RGBA{255, 0, 0, 255}) {
		t.Errorf("mismatch pixel should be red, got %+v", got)
	}
	if got := diff.RGBAAt(0, 0); got != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("matching pixel should stay grayscale, got %+v", got)
	}
}
