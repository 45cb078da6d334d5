// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package layers

import (
	"image/color"

	"github.com/chewxy/math32"
	"github.com/gogpu/sceneview"
	"github.com/gogpu/sceneview/render"
)

// meshShaderWGSL is the GPU program for mesh layers, compiled once at
// layer construction.
const meshShaderWGSL = `
struct Uniforms {
    mvp : mat4x4<f32>,
};
@group(0) @binding(0) var<uniform> u : Uniforms;

struct VSOut {
    @builtin(position) pos : vec4<f32>,
    @location(0) color : vec3<f32>,
};

@vertex
fn vs_main(@location(0) position : vec3<f32>, @location(1) color : vec3<f32>) -> VSOut {
    var out : VSOut;
    out.pos = u.mvp * vec4<f32>(position, 1.0);
    out.color = color;
    return out;
}

@fragment
fn fs_main(in : VSOut) -> @location(0) vec4<f32> {
    return vec4<f32>(in.color, 1.0);
}
`

// Mesh is an indexed triangle list in world coordinates.
type Mesh struct {
	Positions []sceneview.Vec3
	Indices   []uint32
}

// TriangleCount returns the number of triangles in the mesh.
func (m *Mesh) TriangleCount() int {
	if m == nil {
		return 0
	}
	return len(m.Indices) / 3
}

// centroid returns the mean vertex position, the mesh's representative
// point for depth ordering.
func (m *Mesh) centroid() sceneview.Vec3 {
	if m == nil || len(m.Positions) == 0 {
		return sceneview.Vec3{}
	}
	var c sceneview.Vec3
	for _, p := range m.Positions {
		c = c.Add(p)
	}
	return c.Mul(1 / float32(len(m.Positions)))
}

// MeshLayer renders an opaque, flat-shaded triangle mesh. The pick pass
// allocates one identifier per triangle, so hit-testing resolves to an
// exact mesh fragment.
//
// Mesh content is replaced between frames through [MeshLayer.UpdateMesh];
// the background pipeline posting updates never touches the mesh the draw
// calls read.
type MeshLayer struct {
	sceneview.LayerBase

	name    string
	mesh    *Mesh
	base    color.RGBA
	program *render.ShaderModule
	updates sceneview.Inbox[*Mesh]
}

// NewMeshLayer creates a mesh layer with the given base color. The layer's
// shader program is compiled here, on the device carried by dev; a
// compilation failure is a construction-time resource failure and is
// returned to the owner rather than surfacing during a draw call. Pass
// [render.NullDeviceHandle] for CPU-only operation.
func NewMeshLayer(dev render.DeviceHandle, name string, base color.RGBA) (*MeshLayer, error) {
	program, err := render.CompileShader(dev, name+"/mesh", meshShaderWGSL)
	if err != nil {
		return nil, err
	}
	return &MeshLayer{name: name, base: base, program: program}, nil
}

// Name returns the layer's display name.
func (l *MeshLayer) Name() string { return l.name }

// UpdateMesh schedules a mesh replacement. Safe to call from any
// goroutine; the swap happens between frames.
func (l *MeshLayer) UpdateMesh(m *Mesh) {
	l.updates.Post(m)
}

// ApplyPendingUpdates swaps in the most recently posted mesh. The
// compositor calls it before any draw call of the frame.
func (l *MeshLayer) ApplyPendingUpdates() {
	l.updates.Drain(func(m *Mesh) {
		l.mesh = m
	})
}

// Draw flat-shades every triangle using the frame's lighting parameters.
// With no mesh, or a target the layer cannot write to, it draws nothing.
func (l *MeshLayer) Draw(rc *sceneview.RenderContext) {
	st, ok := rc.Target.(*render.SoftwareTarget)
	if !ok || l.mesh.TriangleCount() == 0 {
		return
	}
	img := st.Image()
	w, h := st.Width(), st.Height()

	for t := 0; t < l.mesh.TriangleCount(); t++ {
		a, b, c, ok := l.projectTriangle(rc.CameraToDevice, t, w, h)
		if !ok {
			continue
		}
		shade := l.shadeTriangle(rc, t)
		fillTriangle(a[0], a[1], b[0], b[1], c[0], c[1], w, h, func(x, y int) {
			img.SetRGBA(x, y, shade)
		})
	}
}

// DrawPicking writes one identifier per triangle into the pick buffer,
// with the same hard-edged footprint as the color pass.
func (l *MeshLayer) DrawPicking(rc *sceneview.RenderContext) {
	n := l.mesh.TriangleCount()
	if n == 0 {
		return
	}
	first := rc.PickIDs.Allocate(l, uint64(n))

	st, ok := rc.Target.(*render.SoftwareTarget)
	if !ok {
		return
	}
	w, h := st.Width(), st.Height()
	for t := 0; t < n; t++ {
		a, b, c, ok := l.projectTriangle(rc.CameraToDevice, t, w, h)
		if !ok {
			continue
		}
		id := first + uint64(t)
		fillTriangle(a[0], a[1], b[0], b[1], c[0], c[1], w, h, func(x, y int) {
			st.SetPick(x, y, id)
		})
	}
}

// ViewDepth returns the distance of the mesh centroid from the camera
// along the view direction.
func (l *MeshLayer) ViewDepth(view sceneview.Mat4) float32 {
	p, _ := view.TransformPoint(l.mesh.centroid())
	return -p.Z
}

// Destroy releases the layer's shader program.
func (l *MeshLayer) Destroy() {
	l.program.Release()
}

// projectTriangle projects triangle t's vertices to pixel coordinates.
// ok is false when any vertex is behind the projection plane; such
// triangles are skipped rather than clipped.
func (l *MeshLayer) projectTriangle(mvp sceneview.Mat4, t, w, h int) (a, b, c [2]float32, ok bool) {
	for i := 0; i < 3; i++ {
		v := l.mesh.Positions[l.mesh.Indices[t*3+i]]
		ndc, vis := mvp.Project(v)
		if !vis {
			return a, b, c, false
		}
		x, y := ndcToPixel(ndc, w, h)
		switch i {
		case 0:
			a = [2]float32{x, y}
		case 1:
			b = [2]float32{x, y}
		case 2:
			c = [2]float32{x, y}
		}
	}
	return a, b, c, true
}

// shadeTriangle computes the flat-shaded color of triangle t under the
// frame's lighting. Shading is double-sided.
func (l *MeshLayer) shadeTriangle(rc *sceneview.RenderContext, t int) color.RGBA {
	p0 := l.mesh.Positions[l.mesh.Indices[t*3]]
	p1 := l.mesh.Positions[l.mesh.Indices[t*3+1]]
	p2 := l.mesh.Positions[l.mesh.Indices[t*3+2]]
	n := p1.Sub(p0).Cross(p2.Sub(p0)).Normalized()

	diffuse := math32.Abs(n.Dot(rc.LightDirection))
	intensity := rc.AmbientLight + rc.DirectionalLight*diffuse
	if intensity > 1 {
		intensity = 1
	}
	return color.RGBA{
		R: uint8(float32(l.base.R) * intensity),
		G: uint8(float32(l.base.G) * intensity),
		B: uint8(float32(l.base.B) * intensity),
		A: l.base.A,
	}
}

// Compile-time checks that MeshLayer satisfies the layer capabilities the
// compositor probes for.
var (
	_ sceneview.RenderLayer  = (*MeshLayer)(nil)
	_ sceneview.DepthOrderer = (*MeshLayer)(nil)
	_ sceneview.Destroyer    = (*MeshLayer)(nil)
	_ sceneview.Updatable    = (*MeshLayer)(nil)
)
