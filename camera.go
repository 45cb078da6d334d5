// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package sceneview

// Camera describes the perspective projection for one frame.
// Zero values are not useful; use [NewCamera] for sensible defaults and
// adjust fields before the next frame. The compositor reads the camera
// once per frame, so field updates between frames are safe.
type Camera struct {
	// Eye is the camera position in world coordinates.
	Eye Vec3

	// LookAt is the point the camera is aimed at.
	LookAt Vec3

	// Up is the camera's up direction; it need not be exactly
	// perpendicular to the view direction.
	Up Vec3

	// FOV is the vertical field of view in degrees.
	FOV float32

	// Aspect is the width/height ratio of the target.
	Aspect float32

	// Near and Far bound the view frustum along the view direction.
	Near, Far float32
}

// NewCamera returns a camera at (0, 0, 10) looking at the origin with a
// 45 degree vertical field of view.
func NewCamera() *Camera {
	return &Camera{
		Eye:    V3(0, 0, 10),
		LookAt: V3(0, 0, 0),
		Up:     V3(0, 1, 0),
		FOV:    45,
		Aspect: 1,
		Near:   0.1,
		Far:    1000,
	}
}

// ViewMatrix returns the world-to-camera transform.
func (c *Camera) ViewMatrix() Mat4 {
	return LookAt(c.Eye, c.LookAt, c.Up)
}

// ProjectionMatrix returns the perspective projection for the camera's
// frustum parameters.
func (c *Camera) ProjectionMatrix() Mat4 {
	return Perspective(c.FOV, c.Aspect, c.Near, c.Far)
}

// CameraToDevice returns the combined world-to-device transform,
// projection * view. This is the matrix every layer receives through
// [RenderContext.CameraToDevice].
func (c *Camera) CameraToDevice() Mat4 {
	return c.ProjectionMatrix().Mul(c.ViewMatrix())
}
