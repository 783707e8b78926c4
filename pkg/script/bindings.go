package script

import (
	"strings"

	"github.com/dop251/goja"

	"themekit/pkg/canvas"
	"themekit/pkg/colorutil"
	"themekit/pkg/geom"
	"themekit/pkg/theme"
)

// registerBindings installs the `theme` and `canvas` globals for one scene.
func registerBindings(vm *goja.Runtime, th *theme.Theme, c *canvas.Canvas) {
	themeObj := vm.NewObject()

	themeObj.Set("paint", func(call goja.FunctionCall) goja.Value {
		if len(call.Arguments) < 6 {
			panic(vm.NewTypeError("theme.paint requires part, state, x, y, width, height"))
		}
		part := parsePartArg(vm, call.Arguments[0])
		state := parseStateArg(vm, call.Arguments[1])
		rect := geom.NewRect(
			int(call.Arguments[2].ToInteger()),
			int(call.Arguments[3].ToInteger()),
			int(call.Arguments[4].ToInteger()),
			int(call.Arguments[5].ToInteger()))

		var extraMap map[string]interface{}
		if len(call.Arguments) > 6 {
			if m, ok := call.Arguments[6].Export().(map[string]interface{}); ok {
				extraMap = m
			}
		}

		th.Paint(c, part, state, rect, extraFor(part, extraMap))
		return goja.Undefined()
	})

	themeObj.Set("partSize", func(call goja.FunctionCall) goja.Value {
		if len(call.Arguments) < 2 {
			panic(vm.NewTypeError("theme.partSize requires part and state"))
		}
		part := parsePartArg(vm, call.Arguments[0])
		state := parseStateArg(vm, call.Arguments[1])
		size := th.GetPartSize(part, state, nil)

		obj := vm.NewObject()
		obj.Set("width", size.Width)
		obj.Set("height", size.Height)
		return obj
	})

	themeObj.Set("parts", func(call goja.FunctionCall) goja.Value {
		names := make([]interface{}, 0, len(theme.Parts()))
		for _, p := range theme.Parts() {
			names = append(names, p.String())
		}
		return vm.ToValue(names)
	})

	themeObj.Set("states", func(call goja.FunctionCall) goja.Value {
		names := make([]interface{}, 0, len(theme.States()))
		for _, s := range theme.States() {
			names = append(names, s.String())
		}
		return vm.ToValue(names)
	})

	vm.Set("theme", themeObj)

	canvasObj := vm.NewObject()
	canvasObj.Set("width", c.Width())
	canvasObj.Set("height", c.Height())
	canvasObj.Set("clear", func(call goja.FunctionCall) goja.Value {
		col := colorutil.White
		if len(call.Arguments) > 0 {
			col = colorArg(call.Arguments[0])
		}
		c.Clear(col)
		return goja.Undefined()
	})
	vm.Set("canvas", canvasObj)
}

func parsePartArg(vm *goja.Runtime, v goja.Value) theme.Part {
	part, ok := theme.ParsePart(sceneName(v.String()))
	if !ok {
		panic(vm.NewTypeError("unknown part %q", v.String()))
	}
	return part
}

func parseStateArg(vm *goja.Runtime, v goja.Value) theme.State {
	state, ok := theme.ParseState(sceneName(v.String()))
	if !ok {
		panic(vm.NewTypeError("unknown state %q", v.String()))
	}
	return state
}

// sceneName maps scene-side spellings onto canonical part/state names.
// Scene files tend to write snake_case identifiers, so underscores read
// as hyphens.
func sceneName(s string) string {
	return strings.ReplaceAll(s, "_", "-")
}

// colorArg interprets a JS number as packed ARGB. A zero alpha byte means
// the script wrote a bare 0xrrggbb, which reads as opaque.
func colorArg(v goja.Value) colorutil.Color {
	packed := colorutil.Color(uint32(v.ToInteger()))
	if packed.Alpha() == 0 {
		packed |= 0xff000000
	}
	return packed
}

// extraFor builds the extra parameter struct the part's paint routine
// expects from the scene's plain JS object.
func extraFor(part theme.Part, m map[string]interface{}) theme.ExtraParams {
	switch part {
	case theme.Checkbox, theme.Radio, theme.PushButton:
		return theme.ButtonExtraParams{
			BackgroundColor: colorField(m, "backgroundColor", colorutil.RGB(0xdd, 0xdd, 0xdd)),
			HasBorder:       boolField(m, "hasBorder"),
			Checked:         boolField(m, "checked"),
			Indeterminate:   boolField(m, "indeterminate"),
		}
	case theme.TextField:
		return theme.TextFieldExtraParams{
			BackgroundColor: colorField(m, "backgroundColor", colorutil.White),
			IsTextArea:      boolField(m, "isTextArea"),
			IsListbox:       boolField(m, "isListbox"),
		}
	case theme.MenuList:
		return theme.MenuListExtraParams{
			HasBorder:       boolField(m, "hasBorder"),
			HasBorderRadius: boolField(m, "hasBorderRadius"),
			BackgroundColor: colorField(m, "backgroundColor", colorutil.White),
			ArrowX:          intField(m, "arrowX"),
			ArrowY:          intField(m, "arrowY"),
		}
	case theme.SliderTrack, theme.SliderThumb:
		return theme.SliderExtraParams{
			Vertical: boolField(m, "vertical"),
			InDrag:   boolField(m, "inDrag"),
		}
	case theme.InnerSpinButton:
		return theme.InnerSpinButtonExtraParams{
			ReadOnly: boolField(m, "readOnly"),
			SpinUp:   boolField(m, "spinUp"),
		}
	case theme.ProgressBar:
		return theme.ProgressBarExtraParams{
			ValueRectX:      intField(m, "valueRectX"),
			ValueRectY:      intField(m, "valueRectY"),
			ValueRectWidth:  intField(m, "valueRectWidth"),
			ValueRectHeight: intField(m, "valueRectHeight"),
		}
	default:
		// Scrollbar arrows take no extra parameters.
		return nil
	}
}

func boolField(m map[string]interface{}, key string) bool {
	if m == nil {
		return false
	}
	b, _ := m[key].(bool)
	return b
}

func intField(m map[string]interface{}, key string) int {
	if m == nil {
		return 0
	}
	switch v := m[key].(type) {
	case int64:
		return int(v)
	case float64:
		return int(v)
	}
	return 0
}

func colorField(m map[string]interface{}, key string, fallback colorutil.Color) colorutil.Color {
	if m == nil {
		return fallback
	}
	switch v := m[key].(type) {
	case int64:
		c := colorutil.Color(uint32(v))
		if c.Alpha() == 0 {
			c |= 0xff000000
		}
		return c
	case float64:
		c := colorutil.Color(uint32(v))
		if c.Alpha() == 0 {
			c |= 0xff000000
		}
		return c
	}
	return fallback
}
