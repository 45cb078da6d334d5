// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/gogpu/gputypes"
)

// noObject is the pick plane's clear value, the reserved "no object"
// sentinel that resolves to no owner.
const noObject uint64 = 0

// SoftwareTarget is a CPU-backed FrameTarget: an RGBA color plane plus a
// parallel uint64 pick-identifier plane. It serves tests, headless
// rendering, and the CPU fallback path of concrete layers.
type SoftwareTarget struct {
	img    *image.RGBA
	pick   []uint64
	width  int
	height int
}

// NewSoftwareTarget creates a CPU render target of the given size with the
// color plane zeroed and the pick plane cleared to the sentinel.
func NewSoftwareTarget(width, height int) *SoftwareTarget {
	return &SoftwareTarget{
		img:    image.NewRGBA(image.Rect(0, 0, width, height)),
		pick:   make([]uint64, width*height),
		width:  width,
		height: height,
	}
}

// Width returns the target width in pixels.
func (t *SoftwareTarget) Width() int { return t.width }

// Height returns the target height in pixels.
func (t *SoftwareTarget) Height() int { return t.height }

// Format returns the color plane's pixel format (RGBA8).
func (t *SoftwareTarget) Format() gputypes.TextureFormat {
	return gputypes.TextureFormatRGBA8Unorm
}

// TextureView returns nil as this is a CPU-only target.
func (t *SoftwareTarget) TextureView() TextureView { return nil }

// Image returns direct access to the color plane. Layers draw into it
// during their color pass.
func (t *SoftwareTarget) Image() *image.RGBA { return t.img }

// Clear fills the color plane with the given color.
func (t *SoftwareTarget) Clear(c color.Color) {
	draw.Draw(t.img, t.img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
}

// SetPick stores a pick identifier at the given pixel. Writes outside the
// target bounds are dropped.
func (t *SoftwareTarget) SetPick(x, y int, id uint64) {
	if x < 0 || y < 0 || x >= t.width || y >= t.height {
		return
	}
	t.pick[y*t.width+x] = id
}

// PickAt returns the pick identifier at the given pixel, or the clear
// sentinel for out-of-bounds coordinates.
func (t *SoftwareTarget) PickAt(x, y int) uint64 {
	if x < 0 || y < 0 || x >= t.width || y >= t.height {
		return noObject
	}
	return t.pick[y*t.width+x]
}

// ClearPick resets the pick plane to the "no object" sentinel.
func (t *SoftwareTarget) ClearPick() {
	clear(t.pick)
}

// Ensure SoftwareTarget implements FrameTarget.
var _ FrameTarget = (*SoftwareTarget)(nil)
