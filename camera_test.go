// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package sceneview

import "testing"

func TestNewCameraDefaults(t *testing.T) {
	c := NewCamera()
	if c.Eye != V3(0, 0, 10) {
		t.Errorf("Eye = %v, want (0, 0, 10)", c.Eye)
	}
	if c.FOV != 45 || c.Aspect != 1 {
		t.Errorf("FOV, Aspect = %v, %v, want 45, 1", c.FOV, c.Aspect)
	}
	if c.Near >= c.Far {
		t.Errorf("Near %v not below Far %v", c.Near, c.Far)
	}
}

func TestCameraProjectsLookAtToCenter(t *testing.T) {
	c := NewCamera()
	c.Eye = V3(3, 4, 5)
	c.LookAt = V3(1, 1, 1)

	ndc, ok := c.CameraToDevice().Project(c.LookAt)
	if !ok {
		t.Fatal("look-at point not visible")
	}
	if !vecNear(V3(ndc.X, ndc.Y, 0), Vec3{}, 1e-5) {
		t.Errorf("look-at projects to (%v, %v), want device center", ndc.X, ndc.Y)
	}
}

func TestCameraViewMatrixMapsEyeToOrigin(t *testing.T) {
	c := NewCamera()
	c.Eye = V3(2, -3, 7)

	p, _ := c.ViewMatrix().TransformPoint(c.Eye)
	if !vecNear(p, Vec3{}, 1e-5) {
		t.Errorf("eye maps to %v, want origin", p)
	}
}

func TestOptionStrings(t *testing.T) {
	tests := []struct {
		got, want string
	}{
		{BlendPremultiplied.String(), "Premultiplied"},
		{BlendStraight.String(), "Straight"},
		{OpaqueInsertionOrder.String(), "InsertionOrder"},
		{OpaqueFrontToBack.String(), "FrontToBack"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("String() = %q, want %q", tt.got, tt.want)
		}
	}
}
