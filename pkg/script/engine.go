// Package script executes JavaScript scene files that drive the theme
// renderer. A scene draws widget parts onto a canvas through a small `theme`
// binding, which makes gallery layouts and regression scenes data instead of
// compiled code.
package script

import (
	"fmt"

	"github.com/dop251/goja"

	"themekit/pkg/canvas"
	"themekit/pkg/theme"
)

// Engine runs scene scripts against a theme renderer.
type Engine struct {
	vm    *goja.Runtime
	theme *theme.Theme
}

// New creates an engine bound to the given renderer.
func New(th *theme.Theme) *Engine {
	vm := goja.New()
	e := &Engine{vm: vm, theme: th}

	c := &consoleAPI{}
	c.register(vm)

	return e
}

// RunScene executes a scene script against the canvas. The script sees a
// `theme` object (paint, partSize, parts, states) and a `canvas` object
// (width, height, clear). JS errors are returned wrapped; callers may log
// and continue.
func (e *Engine) RunScene(src string, c *canvas.Canvas) error {
	registerBindings(e.vm, e.theme, c)

	if _, err := e.vm.RunString(src); err != nil {
		return fmt.Errorf("scene script: %w", err)
	}
	return nil
}
