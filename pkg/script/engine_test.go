package script

import (
	"io"
	"os"
	"strings"
	"testing"

	"themekit/pkg/canvas"
	"themekit/pkg/colorutil"
	"themekit/pkg/theme"
)

func newTestEngine() *Engine {
	return New(theme.Default())
}

func TestRunScene_PaintsParts(t *testing.T) {
	c := canvas.New(60, 40)
	scene := `
		canvas.clear(0xffffff);
		theme.paint("push-button", "normal", 5, 5, 50, 20, {
			backgroundColor: 0xdddddd,
			hasBorder: true,
		});
	`
	if err := newTestEngine().RunScene(scene, c); err != nil {
		t.Fatalf("scene failed: %v", err)
	}

	if got := colorutil.FromColor(c.Image().At(30, 15)); got == colorutil.White {
		t.Error("scene did not paint the button")
	}
}

func TestRunScene_PartSize(t *testing.T) {
	c := canvas.New(10, 10)
	scene := `
		var size = theme.partSize("slider-thumb", "normal");
		if (size.width !== 11 || size.height !== 21) {
			throw new Error("unexpected size " + size.width + "x" + size.height);
		}
	`
	if err := newTestEngine().RunScene(scene, c); err != nil {
		t.Fatalf("scene failed: %v", err)
	}
}

func TestRunScene_PartsAndStatesEnumerate(t *testing.T) {
	c := canvas.New(10, 10)
	scene := `
		var parts = theme.parts();
		var states = theme.states();
		if (parts.length !== 13) {
			throw new Error("expected 13 parts, got " + parts.length);
		}
		if (states.length !== 4) {
			throw new Error("expected 4 states, got " + states.length);
		}
		if (parts.indexOf("checkbox") < 0 || states.indexOf("pressed") < 0) {
			throw new Error("missing expected names");
		}
	`
	if err := newTestEngine().RunScene(scene, c); err != nil {
		t.Fatalf("scene failed: %v", err)
	}
}

func TestRunScene_UnderscoreNameAliases(t *testing.T) {
	c := canvas.New(40, 40)
	scene := `
		var size = theme.partSize("slider_thumb", "normal");
		if (size.width !== 11 || size.height !== 21) {
			throw new Error("alias lookup returned wrong size");
		}
		theme.paint("push_button", "normal", 2, 2, 36, 16, {
			backgroundColor: 0xdddddd,
		});
	`
	if err := newTestEngine().RunScene(scene, c); err != nil {
		t.Fatalf("snake_case names should resolve: %v", err)
	}
}

func TestRunScene_ConsoleOutput(t *testing.T) {
	readEnd, writeEnd, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	errReadEnd, errWriteEnd, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	oldStdout, oldStderr := os.Stdout, os.Stderr
	os.Stdout, os.Stderr = writeEnd, errWriteEnd

	c := canvas.New(10, 10)
	sceneErr := newTestEngine().RunScene(`
		console.log("painted", 3, "cells");
		console.warn("asset cache cold");
		console.error("missing arrow anchor");
	`, c)

	writeEnd.Close()
	errWriteEnd.Close()
	os.Stdout, os.Stderr = oldStdout, oldStderr

	stdout, _ := io.ReadAll(readEnd)
	stderr, _ := io.ReadAll(errReadEnd)

	if sceneErr != nil {
		t.Fatalf("scene failed: %v", sceneErr)
	}
	if !strings.Contains(string(stdout), "painted 3 cells") {
		t.Errorf("console.log output missing, got %q", stdout)
	}
	if !strings.Contains(string(stderr), "WARN: asset cache cold") {
		t.Errorf("console.warn output missing, got %q", stderr)
	}
	if !strings.Contains(string(stderr), "ERROR: missing arrow anchor") {
		t.Errorf("console.error output missing, got %q", stderr)
	}
}

func TestRunScene_UnknownPartErrors(t *testing.T) {
	c := canvas.New(10, 10)
	err := newTestEngine().RunScene(`theme.paint("bogus", "normal", 0, 0, 5, 5);`, c)
	if err == nil {
		t.Fatal("expected error for unknown part")
	}
	if !strings.Contains(err.Error(), "bogus") {
		t.Errorf("error should name the bad part: %v", err)
	}
}

func TestRunScene_SyntaxError(t *testing.T) {
	c := canvas.New(10, 10)
	if err := newTestEngine().RunScene(`this is not javascript`, c); err == nil {
		t.Fatal("expected syntax error")
	}
}

func TestRunScene_CanvasGlobals(t *testing.T) {
	c := canvas.New(32, 24)
	scene := `
		if (canvas.width !== 32 || canvas.height !== 24) {
			throw new Error("bad canvas dimensions");
		}
		canvas.clear(0x00ff00);
	`
	if err := newTestEngine().RunScene(scene, c); err != nil {
		t.Fatalf("scene failed: %v", err)
	}
	if got := colorutil.FromColor(c.Image().At(16, 12)); got != colorutil.RGB(0, 0xff, 0) {
		t.Errorf("clear color not applied, got %#x", uint32(got))
	}
}

func TestRunScene_DrawsEveryPartAndState(t *testing.T) {
	c := canvas.New(400, 300)
	scene := `
		canvas.clear(0xffffff);
		var parts = theme.parts();
		var states = theme.states();
		var y = 5;
		for (var i = 0; i < parts.length; i++) {
			var x = 5;
			for (var j = 0; j < states.length; j++) {
				theme.paint(parts[i], states[j], x, y, 40, 20, {
					backgroundColor: 0xdddddd,
					arrowY: 15,
					valueRectWidth: 20,
					valueRectHeight: 20,
				});
				x += 50;
			}
			y += 22;
		}
	`
	if err := newTestEngine().RunScene(scene, c); err != nil {
		t.Fatalf("scene failed: %v", err)
	}
}
