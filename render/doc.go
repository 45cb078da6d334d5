// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package render holds the GPU-facing contracts of the sceneview core:
// frame targets, shader modules, and device handles.
//
// The package receives a GPU device from the host application through
// [DeviceHandle]; it never creates one. This keeps the viewer's GPU
// resources shared with whatever framework embeds it and makes CPU-only
// operation (tests, headless tools) a first-class path via
// [SoftwareTarget] and [NullDeviceHandle].
//
// Shader modules are compiled at layer-construction time, so resource
// acquisition failures surface from constructors and never from per-frame
// draw calls.
package render
