// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package sceneview

import "github.com/gogpu/sceneview/render"

// RenderContext is the per-frame bundle of shared rendering parameters
// passed by pointer to every layer drawn in one frame. The compositor
// constructs exactly one context per frame, so all layers observe the same
// camera transform and lighting; layers treat it as read-only and must not
// retain it beyond the draw call it was passed to.
type RenderContext struct {
	// CameraToDevice transforms world coordinates to normalized device
	// coordinates: projection * view for the frame's camera.
	CameraToDevice Mat4

	// LightDirection is the unit direction the directional light shines
	// along, in world coordinates.
	LightDirection Vec3

	// AmbientLight is the ambient intensity in normalized 0-1 units.
	AmbientLight float32

	// DirectionalLight is the directional intensity in normalized 0-1
	// units, modulated per surface by the light direction.
	DirectionalLight float32

	// Blend is the frame's transparency blend policy, applied by
	// transparent layers during their color pass.
	Blend BlendMode

	// PickIDs is the frame's pick identifier allocator. Layers allocate
	// their ranges from it during DrawPicking; after the frame it doubles
	// as the hit-testing index via [PickIDManager.Resolve].
	PickIDs *PickIDManager

	// Shader is the active shader module for GPU-backed layers, or nil
	// when rendering without a device.
	Shader *render.ShaderModule

	// Target is the framebuffer both passes render into.
	Target render.FrameTarget
}
