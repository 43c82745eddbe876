// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"image"
	"image/color"
	"testing"

	"cogentcore.org/hero/math32"
	"github.com/stretchr/testify/assert"
)

var (
	black = color.RGBA{0, 0, 0, 255}
	red   = color.RGBA{255, 0, 0, 255}
	green = color.RGBA{0, 255, 0, 255}
)

func TestBottomLeft(t *testing.T) {
	r := image.Rect(10, 20, 110, 70)
	bl := BottomLeft(r, 600)
	assert.Equal(t, image.Rect(10, 530, 110, 580), bl)
	assert.Equal(t, r, BottomLeft(bl, 600))
	assert.Equal(t, r.Size(), bl.Size())
}

func TestViewportPoint(t *testing.T) {
	vp := image.Rect(100, 50, 300, 150)
	assert.Equal(t, math32.Vec2(200, 100), ViewportPoint(vp, math32.Vec2(0, 0)))
	assert.Equal(t, math32.Vec2(100, 50), ViewportPoint(vp, math32.Vec2(-1, -1)))
	assert.Equal(t, math32.Vec2(300, 150), ViewportPoint(vp, math32.Vec2(1, 1)))
}

func TestRasterScissor(t *testing.T) {
	rs := NewRaster(image.Pt(100, 100))
	rs.Clear(black)

	rs.SetScissor(image.Rect(0, 0, 50, 50))
	rs.SetScissorTest(true)
	rs.Clear(red)
	img := rs.Image()
	assert.Equal(t, red, img.RGBAAt(10, 90))
	assert.Equal(t, black, img.RGBAAt(10, 10))
	assert.Equal(t, black, img.RGBAAt(90, 90))

	// circle in the top-right quadrant is clipped away
	rs.FillCircle(math32.Vec2(75, 75), 10, green)
	assert.Equal(t, black, img.RGBAAt(75, 25))

	ResetViewport(rs)
	assert.False(t, rs.ScissorTest())
	assert.Equal(t, image.Rect(0, 0, 100, 100), rs.Viewport())
	rs.FillCircle(math32.Vec2(75, 75), 10, green)
	assert.Equal(t, green, img.RGBAAt(75, 25))
	assert.Equal(t, black, img.RGBAAt(75, 10))
}

func TestRasterStroke(t *testing.T) {
	rs := NewRaster(image.Pt(64, 64))
	rs.Clear(black)
	rs.StrokeLine(math32.Vec2(4, 32), math32.Vec2(60, 32), 4, red)
	img := rs.Image()
	assert.Equal(t, red, img.RGBAAt(32, 32))
	assert.Equal(t, black, img.RGBAAt(32, 20))

	rs.StrokeCircle(math32.Vec2(32, 32), 20, 4, green)
	assert.Equal(t, green, img.RGBAAt(52, 32))
	assert.Equal(t, red, img.RGBAAt(40, 32))
}

func TestRasterResize(t *testing.T) {
	rs := NewRaster(image.Pt(800, 600))
	rs.SetViewport(image.Rect(0, 0, 10, 10))
	rs.SetSize(image.Pt(400, 300))
	assert.Equal(t, image.Pt(400, 300), rs.Size())
	assert.Equal(t, image.Rect(0, 0, 400, 300), rs.Viewport())
	rs.SetSize(image.Pt(-5, 0))
	assert.Equal(t, image.Pt(0, 0), rs.Size())
	rs.FillCircle(math32.Vec2(0, 0), 5, red)
}

func TestRasterClippedFill(t *testing.T) {
	rs := NewRaster(image.Pt(100, 100))
	rs.Clear(black)
	img := rs.Image()

	// a disc much larger than the surface only rasterizes the visible part
	rs.FillCircle(math32.Vec2(50, 50), 1e4, green)
	assert.Equal(t, image.Pt(100, 100), rs.mask.Rect.Size())
	assert.Equal(t, green, img.RGBAAt(0, 0))
	assert.Equal(t, green, img.RGBAAt(99, 99))

	rs.SetScissor(image.Rect(10, 10, 30, 30))
	rs.SetScissorTest(true)
	rs.FillCircle(math32.Vec2(50, 50), 1e4, red)
	assert.Equal(t, image.Pt(20, 20), rs.mask.Rect.Size())
	assert.Equal(t, red, img.RGBAAt(20, 80))
	assert.Equal(t, green, img.RGBAAt(50, 50))

	// a disc hanging off the left edge keeps its shape
	ResetViewport(rs)
	rs.Clear(black)
	rs.FillCircle(math32.Vec2(0, 50), 30, red)
	assert.Equal(t, red, img.RGBAAt(0, 50))
	assert.Equal(t, red, img.RGBAAt(20, 50))
	assert.Equal(t, black, img.RGBAAt(40, 50))
	assert.Equal(t, black, img.RGBAAt(0, 10))
}
