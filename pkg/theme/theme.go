// Package theme is a fallback widget theme rendering engine. Given a widget
// part, an interaction state, a destination rect, and part-specific extra
// parameters, it emits primitive drawing operations onto a caller-owned
// Surface so widgets have a usable default appearance on platforms without
// native theming.
package theme

import (
	"fmt"
	"sync"

	"themekit/pkg/assets"
	"themekit/pkg/colorutil"
	"themekit/pkg/geom"
)

// Part identifies the widget kind being rendered. The set is closed;
// passing an unknown value to Paint or GetPartSize panics.
type Part int

const (
	ScrollbarUpArrow Part = iota
	ScrollbarDownArrow
	ScrollbarLeftArrow
	ScrollbarRightArrow
	Checkbox
	Radio
	PushButton
	TextField
	MenuList
	SliderTrack
	SliderThumb
	InnerSpinButton
	ProgressBar
)

var partNames = map[Part]string{
	ScrollbarUpArrow:    "scrollbar-up-arrow",
	ScrollbarDownArrow:  "scrollbar-down-arrow",
	ScrollbarLeftArrow:  "scrollbar-left-arrow",
	ScrollbarRightArrow: "scrollbar-right-arrow",
	Checkbox:            "checkbox",
	Radio:               "radio",
	PushButton:          "push-button",
	TextField:           "text-field",
	MenuList:            "menu-list",
	SliderTrack:         "slider-track",
	SliderThumb:         "slider-thumb",
	InnerSpinButton:     "inner-spin-button",
	ProgressBar:         "progress-bar",
}

func (p Part) String() string {
	if name, ok := partNames[p]; ok {
		return name
	}
	return fmt.Sprintf("part(%d)", int(p))
}

// ParsePart resolves a part name as produced by Part.String.
func ParsePart(name string) (Part, bool) {
	for p, n := range partNames {
		if n == name {
			return p, true
		}
	}
	return 0, false
}

// Parts lists every part in declaration order.
func Parts() []Part {
	return []Part{
		ScrollbarUpArrow, ScrollbarDownArrow, ScrollbarLeftArrow,
		ScrollbarRightArrow, Checkbox, Radio, PushButton, TextField,
		MenuList, SliderTrack, SliderThumb, InnerSpinButton, ProgressBar,
	}
}

// State is the interaction state affecting appearance.
type State int

const (
	StateDisabled State = iota
	StateNormal
	StateHovered
	StatePressed
)

var stateNames = map[State]string{
	StateDisabled: "disabled",
	StateNormal:   "normal",
	StateHovered:  "hovered",
	StatePressed:  "pressed",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// ParseState resolves a state name as produced by State.String.
func ParseState(name string) (State, bool) {
	for s, n := range stateNames {
		if n == name {
			return s, true
		}
	}
	return 0, false
}

// States lists every state in declaration order.
func States() []State {
	return []State{StateDisabled, StateNormal, StateHovered, StatePressed}
}

// ColorID names a system color slot. GetSystemColor is an explicit stub; it
// returns the same fallback for every slot.
type ColorID int

const (
	ColorWindowBackground ColorID = iota
	ColorButtonFace
	ColorTextfieldBackground
	ColorTextfieldText
	ColorHighlight
)

// Theme renders fallback widget chrome. A Theme is immutable after
// construction and safe for concurrent use as long as each call targets its
// own Surface.
type Theme struct {
	assets assets.Provider
}

// New creates a renderer using the given asset provider.
func New(provider assets.Provider) *Theme {
	return &Theme{assets: provider}
}

var (
	defaultOnce  sync.Once
	defaultTheme *Theme
)

// Default returns the shared process-wide renderer, creating it on first
// use.
func Default() *Theme {
	defaultOnce.Do(func() {
		defaultTheme = New(assets.Default())
	})
	return defaultTheme
}

// GetPartSize returns the intrinsic size of a part, or a zero size for
// parts whose layout is owned by the caller (push button, text field, menu
// list, slider track, progress bar).
func (t *Theme) GetPartSize(part Part, state State, extra ExtraParams) geom.Size {
	switch part {
	case ScrollbarUpArrow, ScrollbarDownArrow:
		return geom.Size{Width: scrollbarWidth, Height: buttonLength}
	case ScrollbarLeftArrow, ScrollbarRightArrow:
		return geom.Size{Width: buttonLength, Height: scrollbarWidth}
	case Checkbox, Radio:
		return geom.Size{Width: checkboxWidth, Height: checkboxHeight}
	case SliderThumb:
		return geom.Size{Width: sliderThumbWidth, Height: sliderThumbHeight}
	case InnerSpinButton:
		return geom.Size{Width: scrollbarWidth, Height: 0}
	case PushButton, TextField, MenuList, SliderTrack, ProgressBar:
		return geom.Size{} // No default size.
	default:
		panic(fmt.Sprintf("theme: GetPartSize: unknown part %v", part))
	}
}

// Paint renders the given part into rect on the surface. The extra variant
// must match the part; a mismatch or an unknown part is a caller bug and
// panics. Painting is skipped when the surface reports a clip that does not
// intersect rect.
func (t *Theme) Paint(s Surface, part Part, state State, rect geom.Rect, extra ExtraParams) {
	if clip, ok := s.ClipBounds(); ok && !clip.Intersects(rect) {
		return
	}

	switch part {
	case ScrollbarUpArrow, ScrollbarDownArrow, ScrollbarLeftArrow, ScrollbarRightArrow:
		t.paintArrowButton(s, rect, part, state)
	case Checkbox:
		t.paintCheckbox(s, state, rect, buttonParams(part, extra))
	case Radio:
		t.paintRadio(s, state, rect, buttonParams(part, extra))
	case PushButton:
		t.paintButton(s, state, rect, buttonParams(part, extra))
	case TextField:
		t.paintTextField(s, state, rect, textFieldParams(part, extra))
	case MenuList:
		t.paintMenuList(s, state, rect, menuListParams(part, extra))
	case SliderTrack:
		t.paintSliderTrack(s, state, rect, sliderParams(part, extra))
	case SliderThumb:
		t.paintSliderThumb(s, state, rect, sliderParams(part, extra))
	case InnerSpinButton:
		t.paintInnerSpinButton(s, state, rect, innerSpinButtonParams(part, extra))
	case ProgressBar:
		t.paintProgressBar(s, state, rect, progressBarParams(part, extra))
	default:
		panic(fmt.Sprintf("theme: Paint: unknown part %v", part))
	}
}

// GetSystemColor is a stub: it returns the same degraded-but-valid fallback
// for every slot. Callers must not assume platform-correct semantics.
func (t *Theme) GetSystemColor(id ColorID) colorutil.Color {
	return colorutil.Black
}
