// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hero

import (
	"image"
	"image/color"
	"log/slog"

	"cogentcore.org/hero/gpu"
	"cogentcore.org/hero/xyz"
	"github.com/lucasb-eyer/go-colorful"
)

// StyleOverride is a set of material properties applied to the shared
// material of a scene for the duration of one view render.
// Zero-valued colors and opacity are left unchanged.
type StyleOverride struct {
	Color    color.RGBA
	Emissive color.RGBA
	Edge     color.RGBA

	// Opacity replaces the material opacity if > 0
	Opacity float32

	// Distort replaces the material distortion
	Distort float32

	Wireframe bool
}

// Apply applies the override to the given material.
func (so *StyleOverride) Apply(mt *xyz.Material) {
	if so.Color.A > 0 {
		mt.Color = so.Color
	}
	if so.Emissive.A > 0 {
		mt.Emissive = so.Emissive
	}
	if so.Edge.A > 0 {
		mt.Edge = so.Edge
	}
	if so.Opacity > 0 {
		mt.Opacity = so.Opacity
	}
	mt.Distort = so.Distort
	mt.Wireframe = so.Wireframe
}

// Hovered returns a copy of the override for the hover state: the color
// lightened by amount in the CIE-L*C*h° space and the distortion raised
// to at least 0.2.
func (so *StyleOverride) Hovered(amount float64) *StyleOverride {
	hs := *so
	if so.Color.A > 0 {
		hs.Color = Lighten(so.Color, amount)
	}
	hs.Distort = max(so.Distort, 0.2)
	return &hs
}

// Lighten returns the color lightened by amount (0-1) in
// CIE-L*C*h° space, keeping its alpha.
func Lighten(c color.RGBA, amount float64) color.RGBA {
	cf, ok := colorful.MakeColor(c)
	if !ok {
		return c
	}
	h, ch, l := cf.Hcl()
	r, g, b := colorful.Hcl(h, ch, min(l+amount, 1)).Clamped().RGB255()
	return color.RGBA{r, g, b, c.A}
}

// ViewportDescriptor is one miniature view, rendered into the region
// of the shared surface covered by its anchor element.
type ViewportDescriptor struct {

	// Name is for logging
	Name string

	// Anchor is the element the view is drawn over
	Anchor Element

	// Scene is the scene to render; the primary scene if nil
	Scene *xyz.Scene

	// Camera views the scene; the scene camera if nil
	Camera *xyz.Camera

	// Style is applied to the scene material for this view, if non-nil
	Style *StyleOverride

	// HoverStyle is used instead of Style while the pointer is over the anchor.
	// If nil, it is derived from Style with [StyleOverride.Hovered].
	HoverStyle *StyleOverride

	// Clip is the surface-space (top-left) rectangle of the view in the
	// last frame. It is recomputed every frame and only valid within it.
	Clip image.Rectangle

	// Rendered is whether the view was rendered in the last frame
	Rendered bool
}

// Compositor renders any number of views into scissor-restricted
// regions of one shared surface.
type Compositor struct {
	ctx *Context

	// Descriptors are rendered in order
	Descriptors []*ViewportDescriptor

	// HoverLighten is the lightening of derived hover styles
	HoverLighten float64
}

// NewCompositor returns a new compositor rendering to the surface of ctx.
func NewCompositor(ctx *Context) *Compositor {
	return &Compositor{ctx: ctx, HoverLighten: 0.15}
}

// Add adds the given descriptor and returns it.
func (cp *Compositor) Add(vd *ViewportDescriptor) *ViewportDescriptor {
	cp.Descriptors = append(cp.Descriptors, vd)
	return vd
}

// RenderAll renders every descriptor whose anchor is present and
// overlaps the surface, using fresh anchor bounds. Views are
// rendered in order, each restricted to its own viewport and scissor,
// and the scissor test is turned off and the viewport reset to the full
// surface at the end. The pointer (surface space) selects hover styles
// when inside is true. It returns the number of views rendered.
func (cp *Compositor) RenderAll(pointer image.Point, inside bool) int {
	surf := cp.ctx.Surface
	full := gpu.Full(surf)
	n := 0
	for _, vd := range cp.Descriptors {
		vd.Rendered = false
		vd.Clip = image.Rectangle{}
		if vd.Anchor == nil {
			continue
		}
		wb, ok := vd.Anchor.Bounds()
		if !ok {
			slog.Debug("hero: view anchor missing", "view", vd.Name)
			continue
		}
		rect := cp.ctx.SurfaceRect(wb)
		vd.Clip = rect
		if !rect.Overlaps(full) {
			continue
		}
		style := vd.Style
		if inside && pointer.In(rect) {
			style = vd.HoverStyle
			if style == nil && vd.Style != nil {
				style = vd.Style.Hovered(cp.HoverLighten)
			}
		}
		sc := vd.Scene
		if sc == nil {
			sc = cp.ctx.Scene
		}
		cp.render(sc, vd.Camera, rect, style)
		vd.Rendered = true
		n++
	}
	gpu.ResetViewport(surf)
	return n
}

// render renders the scene with the camera (the scene camera if nil)
// into the given surface-space (top-left) rectangle. This is the only
// place style overrides are applied: the override is applied to the
// scene material right before rendering, and the material is restored
// right after, so no override outlives its view.
func (cp *Compositor) render(sc *xyz.Scene, cam *xyz.Camera, rect image.Rectangle, style *StyleOverride) int {
	surf := cp.ctx.Surface
	bl := gpu.BottomLeft(rect, surf.Size().Y)
	surf.SetViewport(bl)
	surf.SetScissor(bl)
	surf.SetScissorTest(true)
	if cam == nil {
		cam = &sc.Camera
	}
	aspect := cam.Aspect
	cam.SetAspectSize(rect.Dx(), rect.Dy())
	base := sc.Material
	if style != nil {
		style.Apply(&sc.Material)
		sc.Material.Version++
	}
	n := sc.Render(surf, cam)
	sc.Material.CopyFrom(&base)
	if cam.Aspect != aspect {
		cam.Aspect = aspect
		cam.UpdateMatrix()
	}
	return n
}
