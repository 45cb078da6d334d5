// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package sceneview

// RenderLayer is the contract every drawable scene element satisfies.
// A layer contributes a color pass and, optionally, an object-picking pass
// to each frame it is visible in. The [Compositor] holds layers behind this
// interface and never inspects their concrete type.
//
// Layer identity is object identity: the same layer value (conventionally a
// pointer) is used as the key for visibility tracking and pick-ID ownership.
//
// Implementations must not signal errors from either draw method. "Nothing
// to draw" is expressed by doing nothing; resource acquisition failures
// (shader compilation, buffer allocation) belong in the layer's constructor
// or content-update path, never in a per-frame draw call.
type RenderLayer interface {
	// Draw renders this layer's color contribution for one frame.
	// The context is shared by every layer drawn in the frame and must
	// not be mutated or retained beyond the call.
	Draw(rc *RenderContext)

	// DrawPicking renders stable object identifiers into the frame's
	// pick buffer instead of color. Identifier ranges are obtained from
	// rc.PickIDs. A layer that never allocates is simply non-pickable,
	// which is a valid state, not an error.
	DrawPicking(rc *RenderContext)

	// Transparent classifies the layer for draw ordering. Opaque layers
	// (false) are drawn first; transparent layers are drawn afterwards,
	// back to front, under the frame's blend policy.
	Transparent() bool
}

// LayerBase is an embeddable inert implementation of [RenderLayer].
// Both draw passes are no-ops and the layer classifies as opaque, so a
// partially implemented or placeholder layer is legally drawable and simply
// contributes nothing. Embed it and override only what the layer needs.
type LayerBase struct{}

// Draw implements [RenderLayer] as a no-op.
func (LayerBase) Draw(*RenderContext) {}

// DrawPicking implements [RenderLayer] as a no-op.
func (LayerBase) DrawPicking(*RenderContext) {}

// Transparent implements [RenderLayer]; the default classification is opaque.
func (LayerBase) Transparent() bool { return false }

// DepthOrderer is an optional layer capability. Transparent layers that
// implement it are sorted back to front by ViewDepth before their color
// pass; transparent layers that do not keep their insertion order.
type DepthOrderer interface {
	// ViewDepth returns the layer's representative distance from the
	// camera along the view direction, given the frame's view matrix.
	// Larger values are farther away and drawn earlier.
	ViewDepth(view Mat4) float32
}

// Destroyer is an optional layer capability. The compositor calls Destroy
// when the layer is removed from the composition, giving the layer a point
// to release GPU resources it owns before the next frame excludes it.
type Destroyer interface {
	Destroy()
}

// Updatable is an optional layer capability for layers fed by a background
// pipeline. The compositor calls ApplyPendingUpdates at the start of each
// frame, before any draw call, so content mutation never overlaps drawing.
// Implementations typically drain an [Inbox] here.
type Updatable interface {
	ApplyPendingUpdates()
}
