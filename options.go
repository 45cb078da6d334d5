// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package sceneview

// BlendMode selects how transparent layers composite over the content
// beneath them.
type BlendMode uint8

const (
	// BlendPremultiplied treats source colors as premultiplied by alpha
	// and composites with source-over. This is the default.
	BlendPremultiplied BlendMode = iota

	// BlendStraight treats source colors as unpremultiplied and
	// multiplies by alpha during compositing.
	BlendStraight
)

// String returns a human-readable name for the blend mode.
func (m BlendMode) String() string {
	switch m {
	case BlendPremultiplied:
		return "Premultiplied"
	case BlendStraight:
		return "Straight"
	default:
		return "Unknown"
	}
}

// OpaqueOrder selects the tie-break ordering for the opaque color pass.
// Any choice is correct; the order only affects output determinism and
// potential early-z efficiency, never blending.
type OpaqueOrder uint8

const (
	// OpaqueInsertionOrder draws opaque layers in the order they were
	// added to the compositor. This is the default: frame-stable and
	// independent of camera motion.
	OpaqueInsertionOrder OpaqueOrder = iota

	// OpaqueFrontToBack draws opaque layers nearest first, allowing
	// early depth rejection. Layers without a [DepthOrderer] keep their
	// insertion order relative to each other.
	OpaqueFrontToBack
)

// String returns a human-readable name for the opaque ordering policy.
func (o OpaqueOrder) String() string {
	switch o {
	case OpaqueInsertionOrder:
		return "InsertionOrder"
	case OpaqueFrontToBack:
		return "FrontToBack"
	default:
		return "Unknown"
	}
}

// CompositorOption configures a [Compositor] during creation.
//
// Example:
//
//	comp := sceneview.NewCompositor(
//		sceneview.WithOpaqueOrder(sceneview.OpaqueFrontToBack),
//		sceneview.WithBlend(sceneview.BlendStraight),
//	)
type CompositorOption func(*compositorOptions)

// compositorOptions holds optional configuration for compositor creation.
type compositorOptions struct {
	pickBase    uint64
	opaqueOrder OpaqueOrder
	blend       BlendMode
	visibility  *VisibilityTracker
}

// defaultCompositorOptions returns the default compositor options.
func defaultCompositorOptions() compositorOptions {
	return compositorOptions{
		pickBase:    DefaultPickBase,
		opaqueOrder: OpaqueInsertionOrder,
		blend:       BlendPremultiplied,
	}
}

// WithPickBase sets the first identifier the frame's pick allocator hands
// out after each reset. base must not be [NoPickID].
func WithPickBase(base uint64) CompositorOption {
	return func(o *compositorOptions) {
		o.pickBase = base
	}
}

// WithOpaqueOrder sets the tie-break ordering for the opaque color pass.
func WithOpaqueOrder(order OpaqueOrder) CompositorOption {
	return func(o *compositorOptions) {
		o.opaqueOrder = order
	}
}

// WithBlend sets the transparency blend policy published to layers through
// [RenderContext.Blend].
func WithBlend(mode BlendMode) CompositorOption {
	return func(o *compositorOptions) {
		o.blend = mode
	}
}

// WithVisibilityTracker shares an existing tracker with the compositor,
// e.g. one that a layer-list UI already observes. By default each
// compositor creates its own.
func WithVisibilityTracker(t *VisibilityTracker) CompositorOption {
	return func(o *compositorOptions) {
		o.visibility = t
	}
}
