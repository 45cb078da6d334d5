// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package sceneview

import "sort"

// NoPickID is the reserved sentinel written by the pick-buffer clear pass.
// It is never handed out by a [PickIDManager] and always resolves to
// "no owner".
const NoPickID uint64 = 0

// DefaultPickBase is the first identifier handed out after a reset when no
// explicit base is configured. It leaves [NoPickID] unallocated.
const DefaultPickBase uint64 = 1

// pickRange records one contiguous identifier range reserved to a layer.
type pickRange struct {
	start uint64
	count uint64
	layer RenderLayer
}

// PickIDManager hands out disjoint contiguous identifier ranges to layers
// within a single frame and supports exact reverse lookup from an observed
// identifier back to the owning layer and a layer-local index.
//
// The manager is owned exclusively by the [Compositor] for the duration of
// one frame: it is reset exactly once per frame, before any layer's pick
// pass runs, and allocations never survive a reset. It is not safe for
// concurrent use; all calls happen sequentially on the rendering goroutine.
type PickIDManager struct {
	base   uint64
	next   uint64
	ranges []pickRange
}

// NewPickIDManager creates a manager whose identifier space starts at base.
// base must not be [NoPickID], which is reserved for "no object".
func NewPickIDManager(base uint64) *PickIDManager {
	if base == NoPickID {
		panic("sceneview: pick base must not be the NoPickID sentinel")
	}
	return &PickIDManager{base: base, next: base}
}

// Allocate reserves a contiguous range of count identifiers for layer and
// returns the first identifier of the range. The range is exclusive to the
// layer until the next Reset. count must be at least 1; one identifier per
// pickable sub-object (mesh fragment, annotation, skeleton node).
//
// Allocate panics if count < 1. That is a contract violation by the calling
// layer, not a runtime condition; the cursor and the range table are left
// untouched.
func (m *PickIDManager) Allocate(layer RenderLayer, count uint64) uint64 {
	if count < 1 {
		panic("sceneview: PickIDManager.Allocate requires count >= 1")
	}
	start := m.next
	m.next += count
	m.ranges = append(m.ranges, pickRange{start: start, count: count, layer: layer})
	return start
}

// Resolve maps an identifier observed in the pick buffer back to the layer
// owning it and the zero-based index within that layer's range. ok is false
// for identifiers that were never allocated this frame, including the
// [NoPickID] background sentinel.
//
// Ranges are appended in increasing order, so resolution is a binary search
// over range starts.
func (m *PickIDManager) Resolve(id uint64) (layer RenderLayer, localIndex uint64, ok bool) {
	// First range whose start is beyond id; the candidate is the one before.
	i := sort.Search(len(m.ranges), func(i int) bool {
		return m.ranges[i].start > id
	})
	if i == 0 {
		return nil, 0, false
	}
	r := m.ranges[i-1]
	if id >= r.start+r.count {
		return nil, 0, false
	}
	return r.layer, id - r.start, true
}

// Reset clears all allocations and moves the cursor back to the base
// identifier. The compositor calls it exactly once per frame, before the
// frame's first Allocate; after a reset the first allocation returns the
// same identifier as the very first allocation of a fresh manager.
func (m *PickIDManager) Reset() {
	m.next = m.base
	m.ranges = m.ranges[:0]
}

// Allocations returns the number of ranges handed out since the last reset.
func (m *PickIDManager) Allocations() int {
	return len(m.ranges)
}

// Next returns the identifier the next allocation would start at. The span
// [base, Next) is exactly the set of identifiers allocated this frame.
func (m *PickIDManager) Next() uint64 {
	return m.next
}
