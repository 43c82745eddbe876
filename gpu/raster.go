// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"image"
	"image/color"
	"image/draw"

	"cogentcore.org/hero/math32"
	"golang.org/x/image/vector"
)

// circleKappa is the control point offset for approximating
// a quarter circle with a cubic bezier.
const circleKappa = 0.5522847498

// Raster is a software [Surface] that draws into an [image.RGBA]
// using a [vector.Rasterizer]. It is used for headless rendering
// and as the backing store that hosts upload to the screen.
type Raster struct {
	image     *image.RGBA
	ras       *vector.Rasterizer
	mask      *image.Alpha
	viewport  image.Rectangle
	scissor   image.Rectangle
	scissorOn bool
}

// NewRaster returns a new Raster of the given size.
func NewRaster(sz image.Point) *Raster {
	rs := &Raster{ras: &vector.Rasterizer{}}
	rs.SetSize(sz)
	return rs
}

// Image returns the image that the raster draws into,
// in the usual top-left origin.
func (rs *Raster) Image() *image.RGBA { return rs.image }

func (rs *Raster) Size() image.Point {
	if rs.image == nil {
		return image.Point{}
	}
	return rs.image.Rect.Size()
}

func (rs *Raster) SetSize(sz image.Point) {
	sz.X = max(sz.X, 0)
	sz.Y = max(sz.Y, 0)
	if rs.image == nil || rs.image.Rect.Size() != sz {
		rs.image = image.NewRGBA(image.Rectangle{Max: sz})
	}
	rs.viewport = image.Rectangle{Max: sz}
	rs.scissor = rs.viewport
}

func (rs *Raster) SetViewport(r image.Rectangle) { rs.viewport = r }
func (rs *Raster) Viewport() image.Rectangle     { return rs.viewport }
func (rs *Raster) SetScissor(r image.Rectangle)  { rs.scissor = r }
func (rs *Raster) SetScissorTest(on bool)        { rs.scissorOn = on }
func (rs *Raster) ScissorTest() bool             { return rs.scissorOn }

// clip returns the current drawing clip in image (top-left) coordinates.
func (rs *Raster) clip() image.Rectangle {
	b := rs.image.Rect
	if !rs.scissorOn {
		return b
	}
	return BottomLeft(rs.scissor, b.Dy()).Intersect(b)
}

// toImage converts a bottom-left surface point into image coordinates.
func (rs *Raster) toImage(p math32.Vector2) math32.Vector2 {
	return math32.Vec2(p.X, float32(rs.image.Rect.Dy())-p.Y)
}

func (rs *Raster) Clear(c color.Color) {
	cr := rs.clip()
	if cr.Empty() {
		return
	}
	draw.Draw(rs.image, cr, image.NewUniform(c), image.Point{}, draw.Src)
}

func (rs *Raster) FillCircle(center math32.Vector2, radius float32, c color.Color) {
	if radius <= 0 {
		return
	}
	ctr := rs.toImage(center)
	rs.fill(bounds(ctr, radius), c, func(off math32.Vector2) {
		rs.circlePath(ctr.Sub(off), radius, false)
	})
}

func (rs *Raster) StrokeCircle(center math32.Vector2, radius, width float32, c color.Color) {
	if radius <= 0 || width <= 0 {
		return
	}
	ctr := rs.toImage(center)
	outer := radius + 0.5*width
	inner := radius - 0.5*width
	rs.fill(bounds(ctr, outer), c, func(off math32.Vector2) {
		rs.circlePath(ctr.Sub(off), outer, false)
		if inner > 0 {
			rs.circlePath(ctr.Sub(off), inner, true)
		}
	})
}

func (rs *Raster) StrokeLine(a, b math32.Vector2, width float32, c color.Color) {
	if width <= 0 {
		return
	}
	ia, ib := rs.toImage(a), rs.toImage(b)
	d := ib.Sub(ia)
	ln := d.Length()
	if ln == 0 {
		return
	}
	hw := 0.5 * width
	n := math32.Vec2(-d.Y/ln*hw, d.X/ln*hw)
	bb := image.Rect(int(math32.Floor(min(ia.X, ib.X)-hw)), int(math32.Floor(min(ia.Y, ib.Y)-hw)),
		int(math32.Floor(max(ia.X, ib.X)+hw))+1, int(math32.Floor(max(ia.Y, ib.Y)+hw))+1)
	rs.fill(bb, c, func(off math32.Vector2) {
		p0 := ia.Add(n).Sub(off)
		p1 := ib.Add(n).Sub(off)
		p2 := ib.Sub(n).Sub(off)
		p3 := ia.Sub(n).Sub(off)
		rs.ras.MoveTo(p0.X, p0.Y)
		rs.ras.LineTo(p1.X, p1.Y)
		rs.ras.LineTo(p2.X, p2.Y)
		rs.ras.LineTo(p3.X, p3.Y)
		rs.ras.ClosePath()
	})
}

// bounds returns the integer image bounds of a circle.
func bounds(ctr math32.Vector2, radius float32) image.Rectangle {
	return image.Rect(int(math32.Floor(ctr.X-radius)), int(math32.Floor(ctr.Y-radius)),
		int(math32.Floor(ctr.X+radius))+1, int(math32.Floor(ctr.Y+radius))+1)
}

// circlePath adds a circle to the rasterizer as four cubic beziers,
// counter-clockwise unless reverse is set.
func (rs *Raster) circlePath(c math32.Vector2, r float32, reverse bool) {
	k := r * circleKappa
	z := rs.ras
	if !reverse {
		z.MoveTo(c.X+r, c.Y)
		z.CubeTo(c.X+r, c.Y+k, c.X+k, c.Y+r, c.X, c.Y+r)
		z.CubeTo(c.X-k, c.Y+r, c.X-r, c.Y+k, c.X-r, c.Y)
		z.CubeTo(c.X-r, c.Y-k, c.X-k, c.Y-r, c.X, c.Y-r)
		z.CubeTo(c.X+k, c.Y-r, c.X+r, c.Y-k, c.X+r, c.Y)
		z.ClosePath()
		return
	}
	z.MoveTo(c.X+r, c.Y)
	z.CubeTo(c.X+r, c.Y-k, c.X+k, c.Y-r, c.X, c.Y-r)
	z.CubeTo(c.X-k, c.Y-r, c.X-r, c.Y-k, c.X-r, c.Y)
	z.CubeTo(c.X-r, c.Y+k, c.X-k, c.Y+r, c.X, c.Y+r)
	z.CubeTo(c.X+k, c.Y+r, c.X+r, c.Y+k, c.X+r, c.Y)
	z.ClosePath()
}

// fill rasterizes the path added by addPath over the part of the image
// bounds bb that is inside the current clip, and composites the given
// color over the image through it. addPath receives the offset to
// subtract from image coordinates; parts of the path outside the
// clipped area are dropped by the rasterizer.
func (rs *Raster) fill(bb image.Rectangle, c color.Color, addPath func(off math32.Vector2)) {
	dr := bb.Intersect(rs.clip())
	if dr.Empty() {
		return
	}
	sz := dr.Size()
	rs.ras.Reset(sz.X, sz.Y)
	rs.ras.DrawOp = draw.Src
	addPath(math32.FromPoint(dr.Min))
	// the rasterizer writes the mask pixels densely, so the stride must match
	if rs.mask == nil || rs.mask.Rect.Size() != sz {
		rs.mask = image.NewAlpha(image.Rectangle{Max: sz})
	}
	rs.ras.Draw(rs.mask, rs.mask.Bounds(), image.Opaque, image.Point{})
	draw.DrawMask(rs.image, dr, image.NewUniform(c), image.Point{}, rs.mask, image.Point{}, draw.Over)
}
