// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package layers

import (
	"image/color"
	"testing"

	"github.com/gogpu/sceneview"
)

func TestAnnotationLayerClassifiesTransparent(t *testing.T) {
	l := NewAnnotationLayer("marks")
	if !l.Transparent() {
		t.Error("annotation layers should classify as transparent")
	}
	if l.Name() != "marks" {
		t.Errorf("Name() = %q, want %q", l.Name(), "marks")
	}
}

func TestAnnotationLayerDrawCentersMarker(t *testing.T) {
	l := NewAnnotationLayer("marks")
	l.SetAnnotations([]Annotation{
		{Center: sceneview.V3(0, 0, 0), Radius: 6, Color: color.RGBA{R: 255, A: 255}},
	})
	l.ApplyPendingUpdates()

	rc, target := testContext(t, 64)
	l.Draw(rc)

	got := target.Image().RGBAAt(32, 32)
	if got.R < 200 || got.A < 200 {
		t.Errorf("marker center pixel = %v, want near-opaque red", got)
	}
	if corner := target.Image().RGBAAt(0, 0); corner != (color.RGBA{}) {
		t.Errorf("corner pixel = %v, want untouched", corner)
	}
}

func TestAnnotationLayerPicking(t *testing.T) {
	l := NewAnnotationLayer("marks")
	l.SetAnnotations([]Annotation{
		{Center: sceneview.V3(-0.8, 0, 0), Radius: 4, Color: color.RGBA{A: 255}},
		{Center: sceneview.V3(0.8, 0, 0), Radius: 4, Color: color.RGBA{A: 255}},
	})
	l.ApplyPendingUpdates()

	rc, target := testContext(t, 64)
	l.DrawPicking(rc)

	if rc.PickIDs.Allocations() != 1 {
		t.Fatalf("Allocations() = %d, want 1", rc.PickIDs.Allocations())
	}

	probe := func(x int) uint64 {
		t.Helper()
		id := target.PickAt(x, 32)
		if id == sceneview.NoPickID {
			t.Fatalf("PickAt(%d, 32) hit no annotation", x)
		}
		return id
	}
	// World x = -0.8 at distance 5 with a 45 degree FOV projects to NDC
	// x = -0.386, pixel x = 19.6; its mirror lands at 44.4.
	left, right := probe(19), probe(44)
	if _, index, _ := rc.PickIDs.Resolve(left); index != 0 {
		t.Errorf("left annotation index = %d, want 0", index)
	}
	if _, index, _ := rc.PickIDs.Resolve(right); index != 1 {
		t.Errorf("right annotation index = %d, want 1", index)
	}
}

func TestAnnotationLayerAllocatesForHiddenAnnotations(t *testing.T) {
	// Annotations behind the camera are not drawn, but their identifiers
	// stay allocated so indices remain stable.
	l := NewAnnotationLayer("marks")
	l.SetAnnotations([]Annotation{
		{Center: sceneview.V3(0, 0, 100), Radius: 4, Color: color.RGBA{A: 255}},
		{Center: sceneview.V3(0, 0, 0), Radius: 4, Color: color.RGBA{A: 255}},
	})
	l.ApplyPendingUpdates()

	rc, target := testContext(t, 64)
	l.DrawPicking(rc)

	id := target.PickAt(32, 32)
	if _, index, ok := rc.PickIDs.Resolve(id); !ok || index != 1 {
		t.Errorf("visible annotation resolved to index %d (ok=%v), want 1", index, ok)
	}
}

func TestAnnotationLayerViewDepth(t *testing.T) {
	l := NewAnnotationLayer("marks")
	l.SetAnnotations([]Annotation{
		{Center: sceneview.V3(0, 0, 1)},
		{Center: sceneview.V3(0, 0, -1)},
	})
	l.ApplyPendingUpdates()

	cam := sceneview.NewCamera()
	cam.Eye = sceneview.V3(0, 0, 5)
	got := l.ViewDepth(cam.ViewMatrix())
	if got < 4.9 || got > 5.1 {
		t.Errorf("ViewDepth = %v, want ~5 (mean distance)", got)
	}
}

func TestMarkerColor(t *testing.T) {
	c := color.RGBA{R: 200, G: 100, B: 50, A: 128}

	if got := markerColor(c, sceneview.BlendPremultiplied); got != c {
		t.Errorf("premultiplied passthrough = %v, want %v", got, c)
	}

	got := markerColor(c, sceneview.BlendStraight)
	want := color.RGBA{R: 100, G: 50, B: 25, A: 128}
	if got != want {
		t.Errorf("straight conversion = %v, want %v", got, want)
	}
}
