// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package proceduralmesh is a data source producing a procedurally refined
// sphere mesh. Importing it registers the "proceduralmesh" provider.
//
// The viewer-side layer starts from a coarse octahedron; the background
// worker computes progressively subdivided refinements and posts each one
// to the layers it feeds. Refinements land between frames through the mesh
// layer's inbox, standing in for the tile and fragment streams a real
// volumetric or mesh backend would deliver.
package proceduralmesh

import (
	"context"
	"image/color"
	"sync"

	"github.com/gogpu/sceneview"
	"github.com/gogpu/sceneview/datasource"
	"github.com/gogpu/sceneview/layers"
	"github.com/gogpu/sceneview/render"
)

// maxSubdivision bounds the refinement depth; each level quadruples the
// triangle count.
const maxSubdivision = 4

func init() {
	datasource.MustRegister(&provider{})
}

// provider implements datasource.Provider. It remembers the layers it
// created so its worker can feed refinements to them.
type provider struct {
	mu     sync.Mutex
	layers []*layers.MeshLayer
}

func (p *provider) Name() string { return "proceduralmesh" }

func (p *provider) NewLayer(dev render.DeviceHandle) (sceneview.RenderLayer, error) {
	l, err := layers.NewMeshLayer(dev, p.Name(), color.RGBA{R: 0x66, G: 0xaa, B: 0xff, A: 0xff})
	if err != nil {
		return nil, err
	}
	l.UpdateMesh(Sphere(0))
	p.mu.Lock()
	p.layers = append(p.layers, l)
	p.mu.Unlock()
	return l, nil
}

func (p *provider) NewWorker() (datasource.Worker, error) {
	return &worker{p: p}, nil
}

// worker refines the sphere one subdivision level at a time and posts each
// refinement to the provider's layers.
type worker struct {
	p *provider
}

func (w *worker) Run(ctx context.Context) error {
	for level := 1; level <= maxSubdivision; level++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		mesh := Sphere(level)
		w.p.mu.Lock()
		targets := append([]*layers.MeshLayer(nil), w.p.layers...)
		w.p.mu.Unlock()
		for _, l := range targets {
			l.UpdateMesh(mesh)
		}
	}
	return nil
}

// Sphere returns a unit sphere approximated by subdividing an octahedron
// level times and projecting the vertices onto the sphere. Level 0 is the
// octahedron itself: 8 triangles; each level quadruples that.
func Sphere(level int) *layers.Mesh {
	type tri [3]sceneview.Vec3
	px, nx := sceneview.V3(1, 0, 0), sceneview.V3(-1, 0, 0)
	py, ny := sceneview.V3(0, 1, 0), sceneview.V3(0, -1, 0)
	pz, nz := sceneview.V3(0, 0, 1), sceneview.V3(0, 0, -1)
	tris := []tri{
		{py, px, pz}, {py, pz, nx}, {py, nx, nz}, {py, nz, px},
		{ny, pz, px}, {ny, nx, pz}, {ny, nz, nx}, {ny, px, nz},
	}

	for i := 0; i < level; i++ {
		next := make([]tri, 0, len(tris)*4)
		for _, t := range tris {
			ab := t[0].Add(t[1]).Mul(0.5).Normalized()
			bc := t[1].Add(t[2]).Mul(0.5).Normalized()
			ca := t[2].Add(t[0]).Mul(0.5).Normalized()
			next = append(next,
				tri{t[0], ab, ca},
				tri{ab, t[1], bc},
				tri{ca, bc, t[2]},
				tri{ab, bc, ca},
			)
		}
		tris = next
	}

	mesh := &layers.Mesh{
		Positions: make([]sceneview.Vec3, 0, len(tris)*3),
		Indices:   make([]uint32, 0, len(tris)*3),
	}
	for _, t := range tris {
		for _, v := range t {
			mesh.Indices = append(mesh.Indices, uint32(len(mesh.Positions)))
			mesh.Positions = append(mesh.Positions, v)
		}
	}
	return mesh
}
