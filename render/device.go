// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
)

// DeviceHandle provides GPU device access from the host application.
//
// This interface is the integration point between the viewer core and GPU
// frameworks like gogpu. The host implements DeviceHandle and passes it to
// layer constructors, letting them compile shaders and allocate buffers on
// the shared device.
//
// Key principle: the viewer RECEIVES the device from the host, it does NOT
// create one. This keeps GPU resources shared across the stack and makes
// device ownership unambiguous.
//
// DeviceHandle is an alias for gpucontext.DeviceProvider, giving the
// concept a viewer-local name while staying compatible with the gpucontext
// ecosystem.
type DeviceHandle = gpucontext.DeviceProvider

// TextureView represents a view into a texture. Views bind render targets
// to shader stages; a CPU-backed target has none.
type TextureView interface {
	// Destroy releases resources associated with this view.
	Destroy()
}

// FrameTarget is a framebuffer a frame renders into: a color plane plus a
// parallel pick-identifier plane written by the picking pass.
//
// Implementations own their planes exclusively; layers write through the
// concrete type's accessors during their draw calls and never retain the
// target across frames.
type FrameTarget interface {
	// Width returns the target width in pixels.
	Width() int

	// Height returns the target height in pixels.
	Height() int

	// Format returns the color plane's pixel format.
	Format() gputypes.TextureFormat

	// TextureView returns the GPU view backing the color plane, or nil
	// for CPU-backed targets.
	TextureView() TextureView

	// PickAt returns the pick identifier stored at the given pixel.
	// Out-of-bounds coordinates yield the clear sentinel.
	PickAt(x, y int) uint64

	// ClearPick resets every pixel of the pick plane to the reserved
	// "no object" sentinel. The compositor calls it once per frame,
	// before the pick pass.
	ClearPick()
}

// NullDeviceHandle is a DeviceHandle with nil implementations, used for
// CPU-only rendering where no GPU is available.
type NullDeviceHandle struct{}

// Device returns nil for the null device.
func (NullDeviceHandle) Device() gpucontext.Device { return nil }

// Queue returns nil for the null device.
func (NullDeviceHandle) Queue() gpucontext.Queue { return nil }

// Adapter returns nil for the null device.
func (NullDeviceHandle) Adapter() gpucontext.Adapter { return nil }

// AdapterInfo returns unknown adapter info for the null device.
func (NullDeviceHandle) AdapterInfo() gpucontext.AdapterInfo {
	return gpucontext.AdapterInfo{Type: gpucontext.AdapterTypeUnknown}
}

// SurfaceFormat returns undefined format for the null device.
func (NullDeviceHandle) SurfaceFormat() gputypes.TextureFormat {
	return gputypes.TextureFormatUndefined
}

// Ensure NullDeviceHandle implements DeviceHandle.
var _ DeviceHandle = NullDeviceHandle{}
