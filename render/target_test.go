// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"image/color"
	"testing"

	"github.com/gogpu/gputypes"
)

func TestNewSoftwareTarget(t *testing.T) {
	target := NewSoftwareTarget(16, 9)

	if target.Width() != 16 {
		t.Errorf("Width() = %d, want 16", target.Width())
	}
	if target.Height() != 9 {
		t.Errorf("Height() = %d, want 9", target.Height())
	}
	if target.Format() != gputypes.TextureFormatRGBA8Unorm {
		t.Errorf("Format() = %v, want RGBA8Unorm", target.Format())
	}
	if target.TextureView() != nil {
		t.Error("TextureView() should be nil for CPU target")
	}
	if target.Image() == nil {
		t.Fatal("Image() should not be nil")
	}

	// A fresh pick plane holds the clear sentinel everywhere.
	for y := range 9 {
		for x := range 16 {
			if got := target.PickAt(x, y); got != noObject {
				t.Fatalf("PickAt(%d,%d) = %d on fresh target, want %d", x, y, got, noObject)
			}
		}
	}
}

func TestSoftwareTargetPickPlane(t *testing.T) {
	target := NewSoftwareTarget(4, 4)

	target.SetPick(2, 3, 77)
	if got := target.PickAt(2, 3); got != 77 {
		t.Errorf("PickAt(2,3) = %d, want 77", got)
	}
	if got := target.PickAt(3, 2); got != noObject {
		t.Errorf("PickAt(3,2) = %d, want untouched sentinel", got)
	}

	target.ClearPick()
	if got := target.PickAt(2, 3); got != noObject {
		t.Errorf("PickAt(2,3) = %d after ClearPick, want %d", got, noObject)
	}
}

func TestSoftwareTargetPickBounds(t *testing.T) {
	target := NewSoftwareTarget(4, 4)

	// Out-of-bounds writes are dropped, reads yield the sentinel.
	for _, p := range [][2]int{{-1, 0}, {0, -1}, {4, 0}, {0, 4}, {100, 100}} {
		target.SetPick(p[0], p[1], 9)
		if got := target.PickAt(p[0], p[1]); got != noObject {
			t.Errorf("PickAt(%d,%d) = %d, want sentinel for out of bounds", p[0], p[1], got)
		}
	}
}

func TestSoftwareTargetClear(t *testing.T) {
	target := NewSoftwareTarget(2, 2)
	want := color.RGBA{R: 10, G: 20, B: 30, A: 255}
	target.Clear(want)

	for y := range 2 {
		for x := range 2 {
			if got := target.Image().RGBAAt(x, y); got != want {
				t.Errorf("pixel (%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
}
