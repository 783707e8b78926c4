// Package compare diffs rendered theme output against reference images.
package compare

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
)

// Result summarizes a pixel comparison between two images.
type Result struct {
	Match           bool
	DifferentPixels int
	TotalPixels     int
	MaxDifference   int // max per-channel difference found
}

// Options configures the comparison.
type Options struct {
	// Tolerance is the maximum allowed difference per color channel (0-255).
	Tolerance int

	// FuzzyRadius, when > 0, lets a pixel match any reference pixel within
	// this radius. Useful when glyph placement shifts by a pixel.
	FuzzyRadius int

	// MaxDifferentPercent, when > 0, accepts the comparison if the share of
	// differing pixels stays at or under this percentage.
	MaxDifferentPercent float64

	// WantDiffImage requests a visualization image with mismatching
	// pixels in red and the rest in grayscale.
	WantDiffImage bool
}

// DefaultOptions allows small anti-aliasing differences.
func DefaultOptions() Options {
	return Options{Tolerance: 2}
}

// Images compares two in-memory images pixel by pixel. The returned diff
// image is nil unless opts.WantDiffImage is set.
func Images(actual, expected image.Image, opts Options) (*Result, *image.RGBA, error) {
	ab := actual.Bounds()
	eb := expected.Bounds()
	if ab.Dx() != eb.Dx() || ab.Dy() != eb.Dy() {
		return &Result{}, nil, fmt.Errorf("image dimensions differ: actual=%v, expected=%v", ab, eb)
	}

	result := &Result{
		Match:       true,
		TotalPixels: ab.Dx() * ab.Dy(),
	}

	var diffImg *image.RGBA
	if opts.WantDiffImage {
		diffImg = image.NewRGBA(image.Rect(0, 0, ab.Dx(), ab.Dy()))
	}

	for dy := 0; dy < ab.Dy(); dy++ {
		for dx := 0; dx < ab.Dx(); dx++ {
			ax, ay := ab.Min.X+dx, ab.Min.Y+dy
			ex, ey := eb.Min.X+dx, eb.Min.Y+dy

			diff := pixelDiff(actual.At(ax, ay), expected.At(ex, ey))
			if diff > result.MaxDifference {
				result.MaxDifference = diff
			}

			if diff > opts.Tolerance {
				matched := false
				if opts.FuzzyRadius > 0 {
					matched = fuzzyMatch(actual, expected, ax, ay, opts.FuzzyRadius, opts.Tolerance)
				}
				if !matched {
					result.Match = false
					result.DifferentPixels++
					if diffImg != nil {
						diffImg.Set(dx, dy, color.RGBA{255, 0, 0, 255})
					}
					continue
				}
			}
			if diffImg != nil {
				r, _, _, _ := actual.At(ax, ay).RGBA()
				gray := uint8(r >> 8)
				diffImg.Set(dx, dy, color.RGBA{gray, gray, gray, 255})
			}
		}
	}

	if !result.Match && opts.MaxDifferentPercent > 0 {
		pct := float64(result.DifferentPixels) / float64(result.TotalPixels) * 100
		if pct <= opts.MaxDifferentPercent {
			result.Match = true
		}
	}

	return result, diffImg, nil
}

// Files compares two PNG files on disk.
func Files(actualPath, expectedPath string, opts Options) (*Result, *image.RGBA, error) {
	actual, err := loadPNG(actualPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load actual image: %w", err)
	}
	expected, err := loadPNG(expectedPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load expected image: %w", err)
	}
	return Images(actual, expected, opts)
}

// SavePNG writes an image (typically a diff) to disk.
func SavePNG(img image.Image, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return png.Encode(file, img)
}

func loadPNG(path string) (image.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return png.Decode(file)
}

func pixelDiff(a, e color.Color) int {
	ar, ag, ab, aa := a.RGBA()
	er, eg, eb, ea := e.RGBA()
	return maxInt(
		absInt(int(ar>>8)-int(er>>8)),
		absInt(int(ag>>8)-int(eg>>8)),
		absInt(int(ab>>8)-int(eb>>8)),
		absInt(int(aa>>8)-int(ea>>8)),
	)
}

// fuzzyMatch reports whether the actual pixel at (x, y) matches any expected
// pixel within radius.
func fuzzyMatch(actual, expected image.Image, x, y, radius, tolerance int) bool {
	bounds := expected.Bounds()
	a := actual.At(x, y)
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			nx, ny := x+dx, y+dy
			if nx < bounds.Min.X || nx >= bounds.Max.X || ny < bounds.Min.Y || ny >= bounds.Max.Y {
				continue
			}
			if pixelDiff(a, expected.At(nx, ny)) <= tolerance {
				return true
			}
		}
	}
	return false
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func maxInt(vals ...int) int {
	max := vals[0]
	for _, v := range vals[1:] {
		if v > max {
			max = v
		}
	}
	return max
}
