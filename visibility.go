// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package sceneview

import "sync"

// VisibilityTracker maintains per-layer visibility with change
// notification. A layer that was never tracked is visible: absence is
// equivalent to true, so layers need no registration step before use.
//
// Visibility may be toggled from any goroutine (typically a UI event
// source). The [Compositor] snapshots visibility once at frame start, so a
// toggle landing mid-frame has no effect until the next frame.
type VisibilityTracker struct {
	mu        sync.Mutex
	visible   map[RenderLayer]bool
	observers map[RenderLayer]map[int]func(bool)
	nextObs   int
}

// NewVisibilityTracker creates an empty tracker; every layer starts visible.
func NewVisibilityTracker() *VisibilityTracker {
	return &VisibilityTracker{
		visible:   make(map[RenderLayer]bool),
		observers: make(map[RenderLayer]map[int]func(bool)),
	}
}

// Visible reports whether layer is currently visible.
func (t *VisibilityTracker) Visible(layer RenderLayer) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	v, ok := t.visible[layer]
	return !ok || v
}

// SetVisible sets layer's visibility and notifies observers registered
// against that layer if the value changed. Callbacks run on the calling
// goroutine, outside the tracker's lock, so they may call back into the
// tracker.
func (t *VisibilityTracker) SetVisible(layer RenderLayer, visible bool) {
	t.mu.Lock()
	cur, ok := t.visible[layer]
	if !ok {
		cur = true
	}
	if cur == visible {
		t.mu.Unlock()
		return
	}
	t.visible[layer] = visible
	var callbacks []func(bool)
	for _, cb := range t.observers[layer] {
		callbacks = append(callbacks, cb)
	}
	t.mu.Unlock()

	for _, cb := range callbacks {
		cb(visible)
	}
}

// OnChange registers an observer invoked whenever layer's visibility
// changes, e.g. to keep a layer-list widget in sync. The returned cancel
// function removes the registration; calling it more than once is harmless.
func (t *VisibilityTracker) OnChange(layer RenderLayer, callback func(visible bool)) (cancel func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	obs := t.observers[layer]
	if obs == nil {
		obs = make(map[int]func(bool))
		t.observers[layer] = obs
	}
	id := t.nextObs
	t.nextObs++
	obs[id] = callback
	return func() {
		t.mu.Lock()
		defer t.mu.Unlock()
		delete(t.observers[layer], id)
	}
}

// Snapshot returns the visibility of each given layer at a single point in
// time, under one lock acquisition. The compositor uses it at frame start
// so that a toggle arriving from another goroutine cannot tear a frame,
// with some layers drawn under the old state and some under the new.
func (t *VisibilityTracker) Snapshot(layers []RenderLayer) map[RenderLayer]bool {
	snap := make(map[RenderLayer]bool, len(layers))
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, l := range layers {
		v, ok := t.visible[l]
		snap[l] = !ok || v
	}
	return snap
}

// Forget drops any state and observers held for layer. The compositor
// calls it when a layer is removed from the composition so the tracker
// does not pin removed layers in memory.
func (t *VisibilityTracker) Forget(layer RenderLayer) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.visible, layer)
	delete(t.observers, layer)
}
