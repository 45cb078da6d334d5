// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Command viewer is the interactive bundle's entry point: it instantiates
// one layer per registered data source, composes a frame headlessly, and
// writes the color output as PNG. It shares the data-source registry with
// cmd/worker; the blank imports below are the build's plugin list.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"image/png"
	"log/slog"
	"os"

	"github.com/gogpu/sceneview"
	"github.com/gogpu/sceneview/datasource"
	"github.com/gogpu/sceneview/layers"
	"github.com/gogpu/sceneview/render"

	// Data-source plugin list. Each import contributes one source to
	// this bundle and the same source to cmd/worker.
	_ "github.com/gogpu/sceneview/datasource/proceduralmesh"
)

func main() {
	width := flag.Int("width", 800, "output width in pixels")
	height := flag.Int("height", 600, "output height in pixels")
	out := flag.String("out", "frame.png", "output PNG path")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	sceneview.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if err := run(*width, *height, *out); err != nil {
		fmt.Fprintln(os.Stderr, "viewer:", err)
		os.Exit(1)
	}
}

func run(width, height int, out string) error {
	target := render.NewSoftwareTarget(width, height)
	target.Clear(color.RGBA{R: 0x10, G: 0x10, B: 0x18, A: 0xff})

	comp := sceneview.NewCompositor()
	for _, name := range datasource.Names() {
		provider, _ := datasource.Lookup(name)
		layer, err := provider.NewLayer(render.NullDeviceHandle{})
		if err != nil {
			return fmt.Errorf("create layer for source %q: %w", name, err)
		}
		comp.AddLayer(layer)
	}

	marks := layers.NewAnnotationLayer("marks")
	marks.SetAnnotations([]layers.Annotation{
		{Center: sceneview.V3(0, 1, 0), Radius: 8, Color: color.RGBA{R: 0xff, G: 0x40, B: 0x40, A: 0xc0}},
		{Center: sceneview.V3(1, 0, 0), Radius: 6, Color: color.RGBA{R: 0x40, G: 0xff, B: 0x40, A: 0xc0}},
	})
	comp.AddLayer(marks)

	cam := sceneview.NewCamera()
	cam.Eye = sceneview.V3(0, 0, 4)
	cam.Aspect = float32(width) / float32(height)

	rc := comp.Frame(sceneview.FrameParams{Camera: cam, Target: target})

	// Demonstrate hit-testing through the frame's pick index.
	cx, cy := width/2, height/2
	if layer, index, ok := rc.PickIDs.Resolve(target.PickAt(cx, cy)); ok {
		slog.Info("center pixel hit", "layer", fmt.Sprintf("%T", layer), "index", index)
	} else {
		slog.Info("center pixel hit nothing")
	}

	f, err := os.Create(out)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := png.Encode(f, target.Image()); err != nil {
		return fmt.Errorf("encode %s: %w", out, err)
	}
	return nil
}
