// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package sceneview

import (
	"image"
	"testing"

	"github.com/gogpu/sceneview/render"
)

func TestLayerBaseIsInert(t *testing.T) {
	target := render.NewSoftwareTarget(8, 8)
	before := image.NewRGBA(target.Image().Bounds())
	copy(before.Pix, target.Image().Pix)

	comp := NewCompositor()
	comp.AddLayer(&namedLayer{name: "placeholder"})
	rc := comp.Frame(FrameParams{Target: target})

	// A default layer draws nothing and allocates nothing.
	if rc.PickIDs.Allocations() != 0 {
		t.Errorf("inert layer allocated %d pick ranges, want 0", rc.PickIDs.Allocations())
	}
	for i, p := range target.Image().Pix {
		if p != before.Pix[i] {
			t.Fatal("inert layer wrote to the color plane")
		}
	}
	for y := range 8 {
		for x := range 8 {
			if target.PickAt(x, y) != NoPickID {
				t.Fatalf("inert layer wrote pick ID at (%d,%d)", x, y)
			}
		}
	}
}

func TestLayerBaseDefaultOpaque(t *testing.T) {
	var l LayerBase
	if l.Transparent() {
		t.Error("LayerBase.Transparent() = true, want false (opaque default)")
	}
}

func TestLayerCapabilityProbes(t *testing.T) {
	// namedLayer embeds LayerBase only; it must not accidentally satisfy
	// the optional capabilities the compositor probes for.
	var l RenderLayer = &namedLayer{name: "plain"}
	if _, ok := l.(DepthOrderer); ok {
		t.Error("plain layer unexpectedly implements DepthOrderer")
	}
	if _, ok := l.(Destroyer); ok {
		t.Error("plain layer unexpectedly implements Destroyer")
	}
	if _, ok := l.(Updatable); ok {
		t.Error("plain layer unexpectedly implements Updatable")
	}
}
