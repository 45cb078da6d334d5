// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package layers

import (
	"image"
	"image/color"

	"github.com/chewxy/math32"
	"golang.org/x/image/vector"

	"github.com/gogpu/sceneview"
	"github.com/gogpu/sceneview/render"
)

// circleSegments is the polygon resolution used to rasterize annotation
// markers.
const circleSegments = 24

// Annotation is a single point marker in world coordinates. Radius is in
// pixels, so markers keep their screen size regardless of camera distance.
type Annotation struct {
	Center sceneview.Vec3
	Radius float32
	Color  color.RGBA
}

// AnnotationLayer renders transparent circular markers. It classifies as
// transparent, so the compositor draws it after all opaque layers,
// back-to-front among transparent ones; the color pass antialiases and
// blends under the frame's blend policy, while the pick pass writes
// hard-edged identifiers, one per annotation.
type AnnotationLayer struct {
	sceneview.LayerBase

	name        string
	annotations []Annotation
	updates     sceneview.Inbox[[]Annotation]
	raster      *vector.Rasterizer
}

// NewAnnotationLayer creates an empty annotation layer. Annotation layers
// hold no GPU resources, so construction cannot fail.
func NewAnnotationLayer(name string) *AnnotationLayer {
	return &AnnotationLayer{name: name}
}

// Name returns the layer's display name.
func (l *AnnotationLayer) Name() string { return l.name }

// SetAnnotations schedules a replacement of the layer's annotations. Safe
// to call from any goroutine; the swap happens between frames.
func (l *AnnotationLayer) SetAnnotations(a []Annotation) {
	l.updates.Post(a)
}

// ApplyPendingUpdates swaps in the most recently posted annotation set.
func (l *AnnotationLayer) ApplyPendingUpdates() {
	l.updates.Drain(func(a []Annotation) {
		l.annotations = a
	})
}

// Transparent classifies annotation markers for the blended pass.
func (l *AnnotationLayer) Transparent() bool { return true }

// Draw rasterizes each marker as an antialiased disk composited over the
// frame. Marker colors are interpreted according to rc.Blend:
// premultiplied alpha by default, straight alpha under
// [sceneview.BlendStraight].
func (l *AnnotationLayer) Draw(rc *sceneview.RenderContext) {
	st, ok := rc.Target.(*render.SoftwareTarget)
	if !ok || len(l.annotations) == 0 {
		return
	}
	img := st.Image()
	w, h := st.Width(), st.Height()
	if l.raster == nil {
		l.raster = vector.NewRasterizer(w, h)
	}

	for _, a := range l.annotations {
		ndc, vis := rc.CameraToDevice.Project(a.Center)
		if !vis {
			continue
		}
		cx, cy := ndcToPixel(ndc, w, h)

		l.raster.Reset(w, h)
		l.circlePath(cx, cy, a.Radius)
		src := image.NewUniform(markerColor(a.Color, rc.Blend))
		l.raster.Draw(img, img.Bounds(), src, image.Point{})
	}
}

// DrawPicking writes one identifier per annotation with a hard-edged disk
// footprint: identifier buffers cannot be antialiased.
func (l *AnnotationLayer) DrawPicking(rc *sceneview.RenderContext) {
	if len(l.annotations) == 0 {
		return
	}
	first := rc.PickIDs.Allocate(l, uint64(len(l.annotations)))

	st, ok := rc.Target.(*render.SoftwareTarget)
	if !ok {
		return
	}
	w, h := st.Width(), st.Height()
	for i, a := range l.annotations {
		ndc, vis := rc.CameraToDevice.Project(a.Center)
		if !vis {
			continue
		}
		cx, cy := ndcToPixel(ndc, w, h)
		id := first + uint64(i)
		fillDisk(cx, cy, a.Radius, w, h, func(x, y int) {
			st.SetPick(x, y, id)
		})
	}
}

// ViewDepth returns the mean annotation distance from the camera along the
// view direction.
func (l *AnnotationLayer) ViewDepth(view sceneview.Mat4) float32 {
	if len(l.annotations) == 0 {
		return 0
	}
	var sum float32
	for _, a := range l.annotations {
		p, _ := view.TransformPoint(a.Center)
		sum += -p.Z
	}
	return sum / float32(len(l.annotations))
}

// circlePath appends a closed polygonal approximation of a circle to the
// layer's rasterizer.
func (l *AnnotationLayer) circlePath(cx, cy, r float32) {
	l.raster.MoveTo(cx+r, cy)
	for i := 1; i < circleSegments; i++ {
		angle := 2 * math32.Pi * float32(i) / circleSegments
		l.raster.LineTo(cx+r*math32.Cos(angle), cy+r*math32.Sin(angle))
	}
	l.raster.ClosePath()
}

// markerColor converts an annotation color to the premultiplied form the
// rasterizer composites with, honoring the frame's blend policy.
func markerColor(c color.RGBA, blend sceneview.BlendMode) color.RGBA {
	if blend == sceneview.BlendPremultiplied {
		return c
	}
	// Straight alpha: premultiply before compositing.
	n := color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
	r, g, b, a := n.RGBA()
	return color.RGBA{
		R: uint8(r >> 8),
		G: uint8(g >> 8),
		B: uint8(b >> 8),
		A: uint8(a >> 8),
	}
}

// Compile-time capability checks.
var (
	_ sceneview.RenderLayer  = (*AnnotationLayer)(nil)
	_ sceneview.DepthOrderer = (*AnnotationLayer)(nil)
	_ sceneview.Updatable    = (*AnnotationLayer)(nil)
)
