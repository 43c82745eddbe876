// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"cmp"
	"image/color"
	"slices"

	"cogentcore.org/hero/gpu"
	"cogentcore.org/hero/math32"
)

// renderItem is one projected element of a scene, ready to draw.
type renderItem struct {
	depth  float32
	center math32.Vector2
	radius float32
	mat    *Material

	// line end points, if line is true
	line   bool
	a, b   math32.Vector2
	width  float32
	lcolor color.RGBA
}

// Render renders the scene as seen by the given camera (the scene camera
// if nil) into the current viewport of the given surface, honoring its
// scissor state. Solids are drawn as projected discs of their bounding
// sphere and lines as strokes, sorted back to front.
// It returns the number of elements drawn.
func (sc *Scene) Render(surf gpu.Surface, cam *Camera) int {
	if cam == nil {
		cam = &sc.Camera
	}
	vp := surf.Viewport()
	if vp.Empty() || cam.IsDegenerate() {
		return 0
	}
	if sc.Background.A > 0 {
		surf.Clear(sc.Background)
	}
	UpdateWorldMatrix(&sc.Group, nil)
	vpm := cam.ViewProjection()
	// pixels per world unit at unit depth
	focal := 0.5 * float32(vp.Dy()) / math32.Tan(math32.DegToRad(cam.FOV*0.5))

	project := func(world math32.Vector3) (math32.Vector2, float32, bool) {
		clip := math32.Vector4FromVector3(world, 1).MulMatrix4(&vpm)
		// clip.W is the view depth; anything nearer than the near plane
		// would project to an unbounded size
		if clip.W < cam.Near || clip.W <= 0 {
			return math32.Vector2{}, 0, false
		}
		ndc := clip.PerspDiv()
		return gpu.ViewportPoint(vp, math32.Vec2(ndc.X, ndc.Y)), clip.W, true
	}

	var items []renderItem
	sc.WalkDown(func(n Node) bool {
		nb := n.AsNodeBase()
		if nb.Invisible {
			return false
		}
		switch x := n.(type) {
		case *Solid:
			ctr := nb.Pose.WorldPos()
			pc, w, ok := project(ctr)
			if !ok {
				return true
			}
			mat := x.EffectiveMaterial(&sc.Material)
			rad := x.BoundingRadius() * nb.Pose.WorldMatrix.MaxScaleOnAxis() * focal / w
			rad *= 1 + 0.25*mat.Distort
			items = append(items, renderItem{depth: w, center: pc, radius: rad, mat: mat})
		case *Line:
			a, wa, oka := project(x.Start.MulMatrix4AsPoint(&nb.Pose.WorldMatrix))
			b, wb, okb := project(x.End.MulMatrix4AsPoint(&nb.Pose.WorldMatrix))
			if !oka || !okb {
				return true
			}
			items = append(items, renderItem{depth: 0.5 * (wa + wb), line: true, a: a, b: b, width: x.Width, lcolor: x.Color})
		}
		return true
	})

	slices.SortStableFunc(items, func(a, b renderItem) int {
		return cmp.Compare(b.depth, a.depth)
	})
	for _, it := range items {
		if it.line {
			surf.StrokeLine(it.a, it.b, it.width, it.lcolor)
			continue
		}
		clr := it.mat.RenderColor()
		if it.mat.Wireframe {
			surf.StrokeCircle(it.center, it.radius, 1, clr)
		} else {
			surf.FillCircle(it.center, it.radius, clr)
		}
		if it.mat.Edge.A > 0 {
			surf.StrokeCircle(it.center, it.radius, 1, it.mat.Edge)
		}
	}
	return len(items)
}
