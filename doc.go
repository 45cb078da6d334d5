// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package sceneview provides the render-layer and picking coordination core
// of a 3D scene viewer.
//
// # Overview
//
// A viewer composes many independently implemented layers (volumetric data,
// meshes, annotations, skeletons) into a single perspective-projected frame.
// Each layer contributes a color pass and a separate object-picking pass.
// This package supplies the pieces that coordinate them:
//
//   - [RenderLayer]: the polymorphic contract every drawable layer satisfies.
//     [LayerBase] provides inert defaults so partially implemented layers are
//     safe to include in a composition.
//   - [PickIDManager]: allocates disjoint contiguous identifier ranges to
//     layers within one frame and resolves an observed identifier back to
//     the owning layer and a layer-local index.
//   - [VisibilityTracker]: per-layer visibility with change notification,
//     snapshotted once per frame.
//   - [RenderContext]: the immutable per-frame parameter bundle (camera
//     transform, lighting, pick allocator, active shader) shared by every
//     layer drawn in that frame.
//   - [Compositor]: drives one frame end to end. Visibility snapshot, pick
//     reset, opaque then back-to-front transparent color passes, and a pick
//     pass over all visible layers.
//
// # Quick Start
//
//	target := render.NewSoftwareTarget(800, 600)
//	comp := sceneview.NewCompositor()
//	comp.AddLayer(meshLayer)
//	comp.AddLayer(annotationLayer)
//
//	rc := comp.Frame(sceneview.FrameParams{
//		Camera: cam,
//		Target: target,
//	})
//
//	// Hit-test a pixel through the frame's pick buffer.
//	if layer, index, ok := rc.PickIDs.Resolve(target.PickAt(x, y)); ok {
//		// layer owns the object at (x, y); index is layer-local.
//		_ = layer
//		_ = index
//	}
//
// # Concurrency
//
// Draw submission is single-threaded: all layer draw calls for one frame run
// sequentially on the rendering goroutine. Background pipelines deliver
// content through a per-layer [Inbox], drained only between frames, so a
// layer has exclusive access to its own resources while drawing. Visibility
// may be toggled from any goroutine; the compositor snapshots it at frame
// start.
//
// Concrete layer implementations live in the layers subpackage; GPU-facing
// contracts (targets, shader modules, device handles) live in render.
package sceneview
