// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package layers provides concrete sceneview.RenderLayer implementations:
// triangle meshes and point annotations. Both exercise the full layer
// contract, with a color pass, a pick pass writing per-object identifiers,
// depth ordering for the compositor's transparency sort, and content
// updates delivered through a between-frames inbox.
//
// The layers render CPU-side into a render.SoftwareTarget; on targets they
// do not know how to write to, they draw nothing, which is the contract's
// universal empty state.
package layers
