// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package sceneview

import "github.com/chewxy/math32"

// Mat4 is a 4x4 transformation matrix in column-major order, matching the
// memory layout GPU APIs expect for uniform uploads. Element (row r,
// column c) is stored at index c*4+r.
type Mat4 [16]float32

// Identity4 returns the identity matrix.
func Identity4() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Mul returns the matrix product m * n.
func (m Mat4) Mul(n Mat4) Mat4 {
	var out Mat4
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			var sum float32
			for k := 0; k < 4; k++ {
				sum += m[k*4+r] * n[c*4+k]
			}
			out[c*4+r] = sum
		}
	}
	return out
}

// TransformPoint applies the matrix to a point (w = 1) and returns the
// transformed point together with the resulting w component, before
// perspective division.
func (m Mat4) TransformPoint(v Vec3) (Vec3, float32) {
	x := m[0]*v.X + m[4]*v.Y + m[8]*v.Z + m[12]
	y := m[1]*v.X + m[5]*v.Y + m[9]*v.Z + m[13]
	z := m[2]*v.X + m[6]*v.Y + m[10]*v.Z + m[14]
	w := m[3]*v.X + m[7]*v.Y + m[11]*v.Z + m[15]
	return Vec3{X: x, Y: y, Z: z}, w
}

// TransformDirection applies the matrix to a direction (w = 0), ignoring
// translation.
func (m Mat4) TransformDirection(v Vec3) Vec3 {
	return Vec3{
		X: m[0]*v.X + m[4]*v.Y + m[8]*v.Z,
		Y: m[1]*v.X + m[5]*v.Y + m[9]*v.Z,
		Z: m[2]*v.X + m[6]*v.Y + m[10]*v.Z,
	}
}

// Project applies the matrix to a point and performs the perspective
// division, yielding normalized device coordinates. The second return
// value is false when the point is behind the projection plane (w <= 0)
// and the result is unusable.
func (m Mat4) Project(v Vec3) (Vec3, bool) {
	p, w := m.TransformPoint(v)
	if w <= 0 {
		return Vec3{}, false
	}
	inv := 1 / w
	return Vec3{X: p.X * inv, Y: p.Y * inv, Z: p.Z * inv}, true
}

// Perspective returns a right-handed perspective projection matrix.
// fovy is the vertical field of view in degrees, aspect is width/height,
// and near/far bound the view frustum. Depth maps to the [0, 1] range
// used by WebGPU.
func Perspective(fovy, aspect, near, far float32) Mat4 {
	f := 1 / math32.Tan(fovy*math32.Pi/360)
	d := 1 / (near - far)
	var m Mat4
	m[0] = f / aspect
	m[5] = f
	m[10] = far * d
	m[11] = -1
	m[14] = near * far * d
	return m
}

// LookAt returns a right-handed view matrix positioning the camera at eye,
// looking toward center, with the given up direction.
func LookAt(eye, center, up Vec3) Mat4 {
	fwd := center.Sub(eye).Normalized()
	side := fwd.Cross(up).Normalized()
	u := side.Cross(fwd)

	var m Mat4
	m[0] = side.X
	m[4] = side.Y
	m[8] = side.Z
	m[1] = u.X
	m[5] = u.Y
	m[9] = u.Z
	m[2] = -fwd.X
	m[6] = -fwd.Y
	m[10] = -fwd.Z
	m[12] = -side.Dot(eye)
	m[13] = -u.Dot(eye)
	m[14] = fwd.Dot(eye)
	m[15] = 1
	return m
}
