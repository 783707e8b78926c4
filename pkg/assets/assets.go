// Package assets resolves the fixed bitmap identifiers the theme renderer
// needs (checkbox/radio glyphs, progress bar segments) to images. The
// default provider draws each asset procedurally at its natural size, so the
// renderer works without any bundled image files.
package assets

import (
	"fmt"
	"image"
	"sync"

	"github.com/fogleman/gg"
)

// ID names one fixed visual asset.
type ID int

const (
	CheckboxOn ID = iota
	CheckboxOff
	CheckboxDisabledOn
	CheckboxDisabledOff
	CheckboxIndeterminate
	CheckboxDisabledIndeterminate
	RadioOn
	RadioOff
	RadioDisabledOn
	RadioDisabledOff
	ProgressBar
	ProgressValue
	ProgressBorderLeft
	ProgressBorderRight
)

// Provider resolves asset identifiers to images with known pixel dimensions.
type Provider interface {
	Image(id ID) image.Image
}

// Natural asset dimensions. Checkbox and radio glyphs match the classic
// 13x13 form control footprint; progress strips are scaled at paint time.
const (
	GlyphSize           = 13
	ProgressStripWidth  = 16
	ProgressStripHeight = 16
	ProgressBorderWidth = 4
)

type procedural struct {
	mu    sync.RWMutex
	cache map[ID]image.Image
}

var defaultProvider = &procedural{cache: make(map[ID]image.Image)}

// Default returns the shared procedural provider.
func Default() Provider {
	return defaultProvider
}

// NewProcedural returns a fresh procedural provider with its own cache.
func NewProcedural() Provider {
	return &procedural{cache: make(map[ID]image.Image)}
}

// Image returns the drawn asset, rendering it on first use.
func (p *procedural) Image(id ID) image.Image {
	p.mu.RLock()
	if img, ok := p.cache[id]; ok {
		p.mu.RUnlock()
		return img
	}
	p.mu.RUnlock()

	img := drawAsset(id)

	p.mu.Lock()
	p.cache[id] = img
	p.mu.Unlock()
	return img
}

func drawAsset(id ID) image.Image {
	switch id {
	case CheckboxOn:
		return drawCheckbox(true, false, false)
	case CheckboxOff:
		return drawCheckbox(false, false, false)
	case CheckboxDisabledOn:
		return drawCheckbox(true, false, true)
	case CheckboxDisabledOff:
		return drawCheckbox(false, false, true)
	case CheckboxIndeterminate:
		return drawCheckbox(false, true, false)
	case CheckboxDisabledIndeterminate:
		return drawCheckbox(false, true, true)
	case RadioOn:
		return drawRadio(true, false)
	case RadioOff:
		return drawRadio(false, false)
	case RadioDisabledOn:
		return drawRadio(true, true)
	case RadioDisabledOff:
		return drawRadio(false, true)
	case ProgressBar:
		return drawProgressStrip(0xed, 0xed, 0xed)
	case ProgressValue:
		return drawProgressStrip(0x54, 0xa9, 0x54)
	case ProgressBorderLeft:
		return drawProgressBorder(false)
	case ProgressBorderRight:
		return drawProgressBorder(true)
	default:
		panic(fmt.Sprintf("assets: unknown asset id %d", id))
	}
}

func drawCheckbox(checked, indeterminate, disabled bool) image.Image {
	dc := gg.NewContext(GlyphSize, GlyphSize)

	if disabled {
		dc.SetRGB255(0xf5, 0xf5, 0xf5)
	} else {
		dc.SetRGB255(0xff, 0xff, 0xff)
	}
	dc.DrawRectangle(0, 0, GlyphSize, GlyphSize)
	dc.Fill()

	if disabled {
		dc.SetRGB255(0xb0, 0xb0, 0xb0)
	} else {
		dc.SetRGB255(0x80, 0x80, 0x80)
	}
	dc.SetLineWidth(1)
	dc.DrawRectangle(0.5, 0.5, GlyphSize-1, GlyphSize-1)
	dc.Stroke()

	if disabled {
		dc.SetRGB255(0xa0, 0xa0, 0xa0)
	} else {
		dc.SetRGB255(0x2c, 0x56, 0xb0)
	}
	switch {
	case indeterminate:
		dc.DrawRectangle(3, 5.5, 7, 2)
		dc.Fill()
	case checked:
		dc.SetLineWidth(1.8)
		dc.MoveTo(3, 6.5)
		dc.LineTo(5.5, 9)
		dc.LineTo(10, 3.5)
		dc.Stroke()
	}

	return dc.Image()
}

func drawRadio(checked, disabled bool) image.Image {
	dc := gg.NewContext(GlyphSize, GlyphSize)
	cx := float64(GlyphSize) / 2
	cy := float64(GlyphSize) / 2

	if disabled {
		dc.SetRGB255(0xf5, 0xf5, 0xf5)
	} else {
		dc.SetRGB255(0xff, 0xff, 0xff)
	}
	dc.DrawCircle(cx, cy, cx-0.5)
	dc.Fill()

	if disabled {
		dc.SetRGB255(0xb0, 0xb0, 0xb0)
	} else {
		dc.SetRGB255(0x80, 0x80, 0x80)
	}
	dc.SetLineWidth(1)
	dc.DrawCircle(cx, cy, cx-0.5)
	dc.Stroke()

	if checked {
		if disabled {
			dc.SetRGB255(0xa0, 0xa0, 0xa0)
		} else {
			dc.SetRGB255(0x2c, 0x56, 0xb0)
		}
		dc.DrawCircle(cx, cy, 2.5)
		dc.Fill()
	}

	return dc.Image()
}

func drawProgressStrip(r, g, b int) image.Image {
	dc := gg.NewContext(ProgressStripWidth, ProgressStripHeight)
	dc.SetRGB255(r, g, b)
	dc.DrawRectangle(0, 0, ProgressStripWidth, ProgressStripHeight)
	dc.Fill()

	// Slightly darker top and bottom rows so tiling reads as a bar.
	dc.SetRGB255(r*9/10, g*9/10, b*9/10)
	dc.DrawRectangle(0, 0, ProgressStripWidth, 1)
	dc.DrawRectangle(0, ProgressStripHeight-1, ProgressStripWidth, 1)
	dc.Fill()

	return dc.Image()
}

func drawProgressBorder(right bool) image.Image {
	dc := gg.NewContext(ProgressBorderWidth, ProgressStripHeight)
	dc.SetRGB255(0x98, 0x98, 0x98)
	dc.DrawRectangle(0, 0, ProgressBorderWidth, ProgressStripHeight)
	dc.Fill()

	// Lighter inner column on the side facing the bar.
	dc.SetRGB255(0xc4, 0xc4, 0xc4)
	if right {
		dc.DrawRectangle(0, 1, 1, ProgressStripHeight-2)
	} else {
		dc.DrawRectangle(ProgressBorderWidth-1, 1, 1, ProgressStripHeight-2)
	}
	dc.Fill()

	return dc.Image()
}
