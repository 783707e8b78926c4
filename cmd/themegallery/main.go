package main

import (
	"flag"
	"fmt"
	"os"

	"themekit/pkg/canvas"
	"themekit/pkg/gallery"
	"themekit/pkg/script"
	"themekit/pkg/theme"
)

func main() {
	output := flag.String("o", "gallery.png", "output PNG file path")
	scenePath := flag.String("scene", "", "JS scene file to render instead of the default grid")
	width := flag.Int("w", 800, "canvas width for scene rendering")
	height := flag.Int("h", 600, "canvas height for scene rendering")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: themegallery [flags]\n\nFlags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	th := theme.Default()

	var c *canvas.Canvas
	if *scenePath != "" {
		src, err := os.ReadFile(*scenePath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading scene: %v\n", err)
			os.Exit(1)
		}
		c = canvas.New(*width, *height)
		fmt.Fprintf(os.Stderr, "Running scene %s at %dx%d...\n", *scenePath, *width, *height)
		if err := script.New(th).RunScene(string(src), c); err != nil {
			fmt.Fprintf(os.Stderr, "Error running scene: %v\n", err)
			os.Exit(1)
		}
	} else {
		layout := gallery.DefaultLayout()
		size := layout.Size()
		fmt.Fprintf(os.Stderr, "Rendering gallery %dx%d...\n", size.Width, size.Height)
		c = gallery.Render(th, layout)
	}

	if err := c.SavePNG(*output); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving PNG: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "Saved to %s\n", *output)
}
