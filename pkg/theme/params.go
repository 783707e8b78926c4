package theme

import (
	"fmt"

	"themekit/pkg/colorutil"
)

// ExtraParams carries part-specific auxiliary data. It is a closed union:
// exactly one variant exists per part family, and Paint panics when the
// variant does not match the part argument.
type ExtraParams interface {
	isExtraParams()
}

// ButtonExtraParams applies to Checkbox, Radio, PushButton and, synthesized
// internally, to the chrome behind MenuList.
type ButtonExtraParams struct {
	BackgroundColor colorutil.Color
	HasBorder       bool
	Checked         bool
	Indeterminate   bool
}

// TextFieldExtraParams applies to TextField.
type TextFieldExtraParams struct {
	BackgroundColor colorutil.Color
	IsTextArea      bool
	IsListbox       bool
}

// MenuListExtraParams applies to MenuList. ArrowX/ArrowY anchor the
// dropdown glyph in surface coordinates.
type MenuListExtraParams struct {
	HasBorder       bool
	HasBorderRadius bool
	BackgroundColor colorutil.Color
	ArrowX          int
	ArrowY          int
}

// SliderExtraParams applies to SliderTrack and SliderThumb.
type SliderExtraParams struct {
	Vertical bool
	InDrag   bool
}

// InnerSpinButtonExtraParams applies to InnerSpinButton.
type InnerSpinButtonExtraParams struct {
	ReadOnly bool
	SpinUp   bool
}

// ProgressBarExtraParams applies to ProgressBar. The value rect is the
// filled portion; a zero ValueRectWidth suppresses the value fill.
type ProgressBarExtraParams struct {
	ValueRectX      int
	ValueRectY      int
	ValueRectWidth  int
	ValueRectHeight int
}

func (ButtonExtraParams) isExtraParams()          {}
func (TextFieldExtraParams) isExtraParams()       {}
func (MenuListExtraParams) isExtraParams()        {}
func (SliderExtraParams) isExtraParams()          {}
func (InnerSpinButtonExtraParams) isExtraParams() {}
func (ProgressBarExtraParams) isExtraParams()     {}

func buttonParams(part Part, extra ExtraParams) ButtonExtraParams {
	p, ok := extra.(ButtonExtraParams)
	if !ok {
		panic(paramsMismatch(part, "ButtonExtraParams", extra))
	}
	return p
}

func textFieldParams(part Part, extra ExtraParams) TextFieldExtraParams {
	p, ok := extra.(TextFieldExtraParams)
	if !ok {
		panic(paramsMismatch(part, "TextFieldExtraParams", extra))
	}
	return p
}

func menuListParams(part Part, extra ExtraParams) MenuListExtraParams {
	p, ok := extra.(MenuListExtraParams)
	if !ok {
		panic(paramsMismatch(part, "MenuListExtraParams", extra))
	}
	return p
}

func sliderParams(part Part, extra ExtraParams) SliderExtraParams {
	p, ok := extra.(SliderExtraParams)
	if !ok {
		panic(paramsMismatch(part, "SliderExtraParams", extra))
	}
	return p
}

func innerSpinButtonParams(part Part, extra ExtraParams) InnerSpinButtonExtraParams {
	p, ok := extra.(InnerSpinButtonExtraParams)
	if !ok {
		panic(paramsMismatch(part, "InnerSpinButtonExtraParams", extra))
	}
	return p
}

func progressBarParams(part Part, extra ExtraParams) ProgressBarExtraParams {
	p, ok := extra.(ProgressBarExtraParams)
	if !ok {
		panic(paramsMismatch(part, "ProgressBarExtraParams", extra))
	}
	return p
}

func paramsMismatch(part Part, want string, got ExtraParams) string {
	return fmt.Sprintf("theme: %v requires %s, got %T", part, want, got)
}
