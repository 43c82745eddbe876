// Copyright (c) 2022, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"image"
	"image/color"

	"cogentcore.org/hero/math32"
)

// Surface is a render target shared by all views of a frame.
// It follows the GL conventions: all rectangles and drawing
// coordinates are in pixels with a bottom-left origin and y up.
// Use [BottomLeft] to convert page (top-left) rectangles.
type Surface interface {
	// Size returns the size of the surface in pixels.
	Size() image.Point

	// SetSize resizes the surface, resetting the viewport to the full surface.
	SetSize(sz image.Point)

	// SetViewport sets the region that renderers map normalized device
	// coordinates into.
	SetViewport(r image.Rectangle)

	// Viewport returns the current viewport.
	Viewport() image.Rectangle

	// SetScissor sets the scissor rectangle, used when the scissor test is on.
	SetScissor(r image.Rectangle)

	// SetScissorTest turns the scissor test on or off.
	SetScissorTest(on bool)

	// ScissorTest returns whether the scissor test is on.
	ScissorTest() bool

	// Clear fills the scissor rectangle (or the full surface if the
	// scissor test is off) with the given color.
	Clear(c color.Color)

	// FillCircle fills a circle centered at the given point.
	FillCircle(center math32.Vector2, radius float32, c color.Color)

	// StrokeCircle draws the outline of a circle with the given line width.
	StrokeCircle(center math32.Vector2, radius, width float32, c color.Color)

	// StrokeLine draws a line segment with the given width.
	StrokeLine(a, b math32.Vector2, width float32, c color.Color)
}

// BottomLeft converts a rectangle in a top-left origin space (page layout)
// into the bottom-left origin space of a surface of the given height.
// The conversion is its own inverse.
func BottomLeft(r image.Rectangle, surfaceHeight int) image.Rectangle {
	return image.Rect(r.Min.X, surfaceHeight-r.Max.Y, r.Max.X, surfaceHeight-r.Min.Y)
}

// Full returns the full-surface rectangle for the given surface.
func Full(s Surface) image.Rectangle {
	return image.Rectangle{Max: s.Size()}
}

// ResetViewport disables the scissor test and resets the viewport
// to the full surface.
func ResetViewport(s Surface) {
	s.SetScissorTest(false)
	s.SetViewport(Full(s))
}

// ViewportPoint maps normalized device coordinates (x, y in [-1, 1], y up)
// into bottom-left pixel coordinates within the given viewport.
func ViewportPoint(vp image.Rectangle, ndc math32.Vector2) math32.Vector2 {
	return math32.Vec2(float32(vp.Min.X)+(ndc.X*0.5+0.5)*float32(vp.Dx()),
		float32(vp.Min.Y)+(ndc.Y*0.5+0.5)*float32(vp.Dy()))
}
