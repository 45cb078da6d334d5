// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package sceneview

import "sync"

// Inbox is an order-preserving mailbox carrying content updates from a
// background pipeline to a layer. Post may be called from any goroutine;
// Drain runs on the rendering goroutine, strictly between frames, so a
// layer's content is never mutated while its draw calls execute.
//
// Layers typically hold one Inbox per content stream and call Drain from
// their [Updatable].ApplyPendingUpdates hook.
type Inbox[M any] struct {
	mu    sync.Mutex
	queue []M
}

// Post appends a message to the inbox. It never blocks; the inbox grows as
// needed and is bounded only by memory.
func (in *Inbox[M]) Post(msg M) {
	in.mu.Lock()
	in.queue = append(in.queue, msg)
	in.mu.Unlock()
}

// Drain applies every pending message in posting order and empties the
// inbox. Messages posted while Drain runs are kept for the next call, so
// apply observes a consistent batch. apply runs outside the inbox lock.
func (in *Inbox[M]) Drain(apply func(M)) {
	in.mu.Lock()
	pending := in.queue
	in.queue = nil
	in.mu.Unlock()

	for _, msg := range pending {
		apply(msg)
	}
}

// Len returns the number of pending messages.
func (in *Inbox[M]) Len() int {
	in.mu.Lock()
	defer in.mu.Unlock()
	return len(in.queue)
}
