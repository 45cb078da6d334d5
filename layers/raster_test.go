// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package layers

import (
	"testing"

	"github.com/gogpu/sceneview"
)

func collectPixels(fill func(set func(x, y int))) map[[2]int]bool {
	got := make(map[[2]int]bool)
	fill(func(x, y int) {
		got[[2]int{x, y}] = true
	})
	return got
}

func TestNdcToPixel(t *testing.T) {
	tests := []struct {
		name   string
		ndc    sceneview.Vec3
		px, py float32
	}{
		{"center", sceneview.V3(0, 0, 0), 32, 32},
		{"top left", sceneview.V3(-1, 1, 0), 0, 0},
		{"bottom right", sceneview.V3(1, -1, 0), 64, 64},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			px, py := ndcToPixel(tt.ndc, 64, 64)
			if px != tt.px || py != tt.py {
				t.Errorf("ndcToPixel(%v) = (%v, %v), want (%v, %v)", tt.ndc, px, py, tt.px, tt.py)
			}
		})
	}
}

func TestFillTriangleCoverage(t *testing.T) {
	got := collectPixels(func(set func(x, y int)) {
		fillTriangle(0, 0, 8, 0, 0, 8, 8, 8, set)
	})
	if len(got) == 0 {
		t.Fatal("no pixels covered")
	}
	if !got[[2]int{1, 1}] {
		t.Error("(1,1) near the right-angle corner should be covered")
	}
	if got[[2]int{6, 6}] {
		t.Error("(6,6) beyond the hypotenuse should not be covered")
	}
}

func TestFillTriangleWindingIndependent(t *testing.T) {
	ccw := collectPixels(func(set func(x, y int)) {
		fillTriangle(1, 1, 6, 2, 3, 7, 8, 8, set)
	})
	cw := collectPixels(func(set func(x, y int)) {
		fillTriangle(1, 1, 3, 7, 6, 2, 8, 8, set)
	})
	if len(ccw) != len(cw) {
		t.Fatalf("winding changed coverage: %d vs %d pixels", len(ccw), len(cw))
	}
	for p := range ccw {
		if !cw[p] {
			t.Errorf("pixel %v covered only under one winding", p)
		}
	}
}

func TestFillTriangleDegenerate(t *testing.T) {
	got := collectPixels(func(set func(x, y int)) {
		fillTriangle(1, 1, 4, 4, 7, 7, 8, 8, set)
	})
	if len(got) != 0 {
		t.Errorf("degenerate triangle covered %d pixels, want 0", len(got))
	}
}

func TestFillTriangleClipsToTarget(t *testing.T) {
	got := collectPixels(func(set func(x, y int)) {
		fillTriangle(-10, -10, 20, -10, -10, 20, 4, 4, set)
	})
	for p := range got {
		if p[0] < 0 || p[0] > 3 || p[1] < 0 || p[1] > 3 {
			t.Errorf("pixel %v outside the 4x4 target", p)
		}
	}
	if !got[[2]int{0, 0}] {
		t.Error("in-bounds interior pixel (0,0) should be covered")
	}
}

func TestFillDisk(t *testing.T) {
	got := collectPixels(func(set func(x, y int)) {
		fillDisk(4, 4, 2, 8, 8, set)
	})
	if !got[[2]int{4, 4}] || !got[[2]int{3, 3}] {
		t.Error("pixels near the disk center should be covered")
	}
	if got[[2]int{6, 6}] {
		t.Error("(6,6) lies outside the radius-2 disk at (4,4)")
	}
	if got[[2]int{0, 0}] {
		t.Error("(0,0) is far outside the disk")
	}
}

func TestFillDiskNonPositiveRadius(t *testing.T) {
	for _, r := range []float32{0, -1} {
		got := collectPixels(func(set func(x, y int)) {
			fillDisk(4, 4, r, 8, 8, set)
		})
		if len(got) != 0 {
			t.Errorf("radius %v covered %d pixels, want 0", r, len(got))
		}
	}
}
