// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package sceneview

import (
	"slices"

	"github.com/gogpu/sceneview/render"
)

// FrameParams carries the caller-supplied inputs for one frame.
type FrameParams struct {
	// Camera provides the frame's perspective transform. When nil, a
	// default camera from [NewCamera] is used.
	Camera *Camera

	// LightDirection is the direction the directional light shines
	// along. The zero vector selects a default overhead light. The
	// vector is normalized before it reaches layers.
	LightDirection Vec3

	// AmbientLight and DirectionalLight are lighting intensities in
	// normalized 0-1 units. When both are zero, defaults of 0.3 and 0.7
	// are used.
	AmbientLight     float32
	DirectionalLight float32

	// Shader is the active shader module published to layers, or nil.
	Shader *render.ShaderModule

	// Target is the framebuffer for both passes. It may be nil when a
	// frame is driven purely for pick bookkeeping, e.g. in tests.
	Target render.FrameTarget
}

// Compositor orchestrates one frame's draw sequence across an ordered set
// of layers: visibility snapshot, pick reset, opaque color pass,
// back-to-front transparent color pass, then a pick pass over all visible
// layers. It owns the frame's [PickIDManager] and [RenderContext]
// exclusively for the duration of each frame.
//
// The compositor is confined to the rendering goroutine; only the
// visibility tracker it exposes may be touched from elsewhere.
type Compositor struct {
	layers      []RenderLayer
	visibility  *VisibilityTracker
	pickIDs     *PickIDManager
	opaqueOrder OpaqueOrder
	blend       BlendMode
	frame       uint64
}

// NewCompositor creates an empty compositor. See [CompositorOption] for
// ordering, blending, and pick-base configuration.
func NewCompositor(opts ...CompositorOption) *Compositor {
	o := defaultCompositorOptions()
	for _, opt := range opts {
		opt(&o)
	}
	vis := o.visibility
	if vis == nil {
		vis = NewVisibilityTracker()
	}
	return &Compositor{
		visibility:  vis,
		pickIDs:     NewPickIDManager(o.pickBase),
		opaqueOrder: o.opaqueOrder,
		blend:       o.blend,
	}
}

// AddLayer appends a layer to the composition. Adding a layer that is
// already present is a no-op; insertion order is the frame-stable order of
// the opaque color pass and the pick pass.
func (c *Compositor) AddLayer(layer RenderLayer) {
	if slices.Contains(c.layers, layer) {
		return
	}
	c.layers = append(c.layers, layer)
}

// RemoveLayer removes a layer from the composition, drops its visibility
// state, and invokes its [Destroyer] hook if present so owned GPU
// resources are released before the next frame excludes it.
func (c *Compositor) RemoveLayer(layer RenderLayer) {
	i := slices.Index(c.layers, layer)
	if i < 0 {
		return
	}
	c.layers = slices.Delete(c.layers, i, i+1)
	c.visibility.Forget(layer)
	if d, ok := layer.(Destroyer); ok {
		d.Destroy()
	}
}

// Layers returns the layers in insertion order. The slice is a copy.
func (c *Compositor) Layers() []RenderLayer {
	return slices.Clone(c.layers)
}

// Visibility returns the tracker controlling which layers draw. It is safe
// to use from other goroutines.
func (c *Compositor) Visibility() *VisibilityTracker {
	return c.visibility
}

// Frame renders one complete frame and returns the frame's context. The
// context's PickIDs, combined with the target's pick buffer, form the
// complete hit-testing index for the frame; both stay valid until the next
// Frame call.
func (c *Compositor) Frame(p FrameParams) *RenderContext {
	// Content updates land strictly before any draw call, preserving
	// each layer's exclusive resource access during the frame.
	for _, l := range c.layers {
		if u, ok := l.(Updatable); ok {
			u.ApplyPendingUpdates()
		}
	}

	snapshot := c.visibility.Snapshot(c.layers)
	c.pickIDs.Reset()
	rc := c.buildContext(p)

	var opaque, transparent []RenderLayer
	for _, l := range c.layers {
		if !snapshot[l] {
			continue
		}
		if l.Transparent() {
			transparent = append(transparent, l)
		} else {
			opaque = append(opaque, l)
		}
	}

	view := Identity4()
	if p.Camera != nil {
		view = p.Camera.ViewMatrix()
	}
	if c.opaqueOrder == OpaqueFrontToBack {
		sortByViewDepth(opaque, view, false)
	}
	sortByViewDepth(transparent, view, true)

	for _, l := range opaque {
		l.Draw(rc)
	}
	for _, l := range transparent {
		l.Draw(rc)
	}

	// Picking does not blend, so opaque and transparent layers share one
	// pass in insertion order.
	if t := rc.Target; t != nil {
		t.ClearPick()
	}
	for _, l := range c.layers {
		if snapshot[l] {
			l.DrawPicking(rc)
		}
	}

	c.frame++
	Logger().Debug("frame composed",
		"frame", c.frame,
		"opaque", len(opaque),
		"transparent", len(transparent),
		"pickRanges", c.pickIDs.Allocations())
	return rc
}

// Resolve maps a pick-buffer identifier from the most recent frame to its
// owning layer and layer-local index. See [PickIDManager.Resolve].
func (c *Compositor) Resolve(id uint64) (RenderLayer, uint64, bool) {
	return c.pickIDs.Resolve(id)
}

// buildContext assembles the frame's shared context, applying parameter
// defaults.
func (c *Compositor) buildContext(p FrameParams) *RenderContext {
	cam := p.Camera
	if cam == nil {
		cam = NewCamera()
	}
	light := p.LightDirection
	if light == (Vec3{}) {
		light = V3(0, -1, -1)
	}
	ambient, directional := p.AmbientLight, p.DirectionalLight
	if ambient == 0 && directional == 0 {
		ambient, directional = 0.3, 0.7
	}
	return &RenderContext{
		CameraToDevice:   cam.CameraToDevice(),
		LightDirection:   light.Normalized(),
		AmbientLight:     ambient,
		DirectionalLight: directional,
		Blend:            c.blend,
		PickIDs:          c.pickIDs,
		Shader:           p.Shader,
		Target:           p.Target,
	}
}

// sortByViewDepth stably orders layers by their distance from the camera,
// farthest first when backToFront is set. Layers without a [DepthOrderer]
// sort as depth zero and keep their relative insertion order.
func sortByViewDepth(layers []RenderLayer, view Mat4, backToFront bool) {
	depth := func(l RenderLayer) float32 {
		if d, ok := l.(DepthOrderer); ok {
			return d.ViewDepth(view)
		}
		return 0
	}
	slices.SortStableFunc(layers, func(a, b RenderLayer) int {
		da, db := depth(a), depth(b)
		switch {
		case da == db:
			return 0
		case (da > db) == backToFront:
			return -1
		default:
			return 1
		}
	})
}
