// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hero

import (
	"fmt"
	"image"
	"image/color"
	"log/slog"

	"cogentcore.org/hero/gpu"
	"cogentcore.org/hero/math32"
	"cogentcore.org/hero/xyz"
)

// Overlay is the connector from the active proxy to its list entry,
// in pixels relative to the reference rectangle (top-left origin).
type Overlay struct {

	// Visible is false when there is nothing to connect
	Visible bool

	// Start is the projected position of the active proxy
	Start math32.Vector2

	// End is the left edge, vertical middle of the active entry
	End math32.Vector2

	// C1 and C2 are the control points of the cubic curve
	C1, C2 math32.Vector2

	// Marker is the position of the end marker
	Marker math32.Vector2
}

// Set sets the end points and computes the control points, which are
// both halfway between the end points horizontally and level with their
// own end point vertically, so the curve only bends horizontally.
func (ov *Overlay) Set(start, end math32.Vector2) {
	ov.Visible = true
	ov.Start = start
	ov.End = end
	midX := start.X + 0.5*(end.X-start.X)
	ov.C1 = math32.Vec2(midX, start.Y)
	ov.C2 = math32.Vec2(midX, end.Y)
	ov.Marker = end
}

// Hide hides the overlay and clears all of its points.
func (ov *Overlay) Hide() {
	*ov = Overlay{}
}

// PathData returns the curve as SVG path data, or "" if hidden.
func (ov *Overlay) PathData() string {
	if !ov.Visible {
		return ""
	}
	return fmt.Sprintf("M %s C %s, %s, %s", svgPoint(ov.Start), svgPoint(ov.C1), svgPoint(ov.C2), svgPoint(ov.End))
}

func svgPoint(p math32.Vector2) string {
	return fmt.Sprintf("%.2f %.2f", p.X, p.Y)
}

// Points returns n+1 points along the curve, including both ends,
// or nil if hidden or n < 1.
func (ov *Overlay) Points(n int) []math32.Vector2 {
	if !ov.Visible || n < 1 {
		return nil
	}
	pts := make([]math32.Vector2, n+1)
	for i := range pts {
		pts[i] = ov.Start.CubicBezier(ov.C1, ov.C2, ov.End, float32(i)/float32(n))
	}
	return pts
}

// Draw draws the curve and marker onto the given surface, assuming the
// reference rectangle coincides with the surface. It does nothing if hidden.
func (ov *Overlay) Draw(surf gpu.Surface, width, markerRadius float32, c color.Color) {
	pts := ov.Points(32)
	if pts == nil {
		return
	}
	h := float32(surf.Size().Y)
	flip := func(p math32.Vector2) math32.Vector2 { return math32.Vec2(p.X, h-p.Y) }
	for i := 1; i < len(pts); i++ {
		surf.StrokeLine(flip(pts[i-1]), flip(pts[i]), width, c)
	}
	surf.FillCircle(flip(ov.Marker), markerRadius, c)
}

// OverlayRenderer updates the [Overlay] every frame from the selection.
type OverlayRenderer struct {
	ctx *Context
	sel *Selection

	// Reference is the element the overlay is measured against;
	// the surface if nil
	Reference Element

	// Overlay is the current overlay
	Overlay Overlay
}

// NewOverlayRenderer returns a new overlay renderer for the given selection.
func NewOverlayRenderer(ctx *Context, sel *Selection) *OverlayRenderer {
	return &OverlayRenderer{ctx: ctx, sel: sel}
}

// ReferenceRect returns the current reference rectangle in window space.
func (ovr *OverlayRenderer) ReferenceRect() (image.Rectangle, bool) {
	if ovr.Reference == nil {
		return image.Rectangle{Max: ovr.ctx.Surface.Size()}.Add(ovr.ctx.Origin), true
	}
	return ovr.Reference.Bounds()
}

// Update recomputes the overlay from the current selection, camera and
// layout. The overlay is hidden if there is no selection, the reference
// or entry element is missing, or the proxy is behind the camera.
func (ovr *OverlayRenderer) Update(cam *xyz.Camera) *Overlay {
	px := ovr.sel.ActiveProxy()
	if px == nil {
		ovr.Overlay.Hide()
		return &ovr.Overlay
	}
	ref, ok := ovr.ReferenceRect()
	if !ok {
		slog.Debug("hero: overlay reference missing")
		ovr.Overlay.Hide()
		return &ovr.Overlay
	}
	eb, ok := ovr.sel.ActiveEntry().Bounds()
	if !ok {
		slog.Debug("hero: overlay entry missing", "id", px.ID)
		ovr.Overlay.Hide()
		return &ovr.Overlay
	}
	start, ok := ProjectProxy(px, cam, ref)
	if !ok {
		ovr.Overlay.Hide()
		return &ovr.Overlay
	}
	end := math32.Vec2(float32(eb.Min.X-ref.Min.X), float32(eb.Min.Y-ref.Min.Y)+0.5*float32(eb.Dy()))
	ovr.Overlay.Set(start, end)
	return &ovr.Overlay
}
