// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package layers

import (
	"math"

	"github.com/gogpu/sceneview"
)

// ndcToPixel maps normalized device coordinates to pixel coordinates on a
// width x height target. NDC y points up, pixel y points down.
func ndcToPixel(p sceneview.Vec3, width, height int) (float32, float32) {
	px := (p.X + 1) * 0.5 * float32(width)
	py := (1 - (p.Y+1)*0.5) * float32(height)
	return px, py
}

// fillTriangle invokes set for every pixel whose center lies inside the
// triangle (x0,y0) (x1,y1) (x2,y2). Coverage is hard-edged: pick buffers
// cannot be antialiased, and flat-shaded color uses the same footprint so
// the two passes agree pixel for pixel.
func fillTriangle(x0, y0, x1, y1, x2, y2 float32, width, height int, set func(x, y int)) {
	area := (x1-x0)*(y2-y0) - (x2-x0)*(y1-y0)
	if area == 0 {
		return
	}
	// Normalize winding so the inside test is sign-independent.
	if area < 0 {
		x1, y1, x2, y2 = x2, y2, x1, y1
	}

	minX := clampInt(int(math.Floor(float64(min3(x0, x1, x2)))), 0, width-1)
	maxX := clampInt(int(math.Ceil(float64(max3(x0, x1, x2)))), 0, width-1)
	minY := clampInt(int(math.Floor(float64(min3(y0, y1, y2)))), 0, height-1)
	maxY := clampInt(int(math.Ceil(float64(max3(y0, y1, y2)))), 0, height-1)

	for y := minY; y <= maxY; y++ {
		cy := float32(y) + 0.5
		for x := minX; x <= maxX; x++ {
			cx := float32(x) + 0.5
			w0 := (x1-x0)*(cy-y0) - (cx-x0)*(y1-y0)
			w1 := (x2-x1)*(cy-y1) - (cx-x1)*(y2-y1)
			w2 := (x0-x2)*(cy-y2) - (cx-x2)*(y0-y2)
			if w0 >= 0 && w1 >= 0 && w2 >= 0 {
				set(x, y)
			}
		}
	}
}

// fillDisk invokes set for every pixel whose center lies within radius of
// (cx, cy).
func fillDisk(cx, cy, radius float32, width, height int, set func(x, y int)) {
	if radius <= 0 {
		return
	}
	minX := clampInt(int(math.Floor(float64(cx-radius))), 0, width-1)
	maxX := clampInt(int(math.Ceil(float64(cx+radius))), 0, width-1)
	minY := clampInt(int(math.Floor(float64(cy-radius))), 0, height-1)
	maxY := clampInt(int(math.Ceil(float64(cy+radius))), 0, height-1)
	r2 := radius * radius
	for y := minY; y <= maxY; y++ {
		dy := float32(y) + 0.5 - cy
		for x := minX; x <= maxX; x++ {
			dx := float32(x) + 0.5 - cx
			if dx*dx+dy*dy <= r2 {
				set(x, y)
			}
		}
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func min3(a, b, c float32) float32 {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}

func max3(a, b, c float32) float32 {
	m := a
	if b > m {
		m = b
	}
	if c > m {
		m = c
	}
	return m
}
