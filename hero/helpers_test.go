// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hero

import (
	"image"
	"image/color"

	"cogentcore.org/hero/base/randx"
	"cogentcore.org/hero/gpu"
	"cogentcore.org/hero/math32"
	"cogentcore.org/hero/xyz"
)

// fillRecord is one FillCircle call with the surface state at that time.
type fillRecord struct {
	viewport  image.Rectangle
	scissor   image.Rectangle
	scissorOn bool
	color     color.RGBA
}

// recSurface is a raster surface that records fills.
type recSurface struct {
	*gpu.Raster
	scissor image.Rectangle
	fills   []fillRecord
}

func newRecSurface(w, h int) *recSurface {
	return &recSurface{Raster: gpu.NewRaster(image.Pt(w, h))}
}

func (rs *recSurface) SetScissor(r image.Rectangle) {
	rs.scissor = r
	rs.Raster.SetScissor(r)
}

func (rs *recSurface) FillCircle(center math32.Vector2, radius float32, c color.Color) {
	r, g, b, a := c.RGBA()
	rs.fills = append(rs.fills, fillRecord{viewport: rs.Viewport(), scissor: rs.scissor, scissorOn: rs.ScissorTest(),
		color: color.RGBA{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}})
	rs.Raster.FillCircle(center, radius, c)
}

func newTestContext(w, h int) (*Context, *recSurface) {
	surf := newRecSurface(w, h)
	return NewContext(surf, randx.NewSysRand(1)), surf
}

// column places proxies in a vertical column on the camera axis,
// spaced by 0.4, without any motion.
func column(i, n int, rnd randx.Rand) Placement {
	return Placement{
		Shape: &xyz.Sphere{Radius: 0.15},
		Orbit: Orbit{Polar: 0.5 * math32.Pi, YOffset: (float32(i) - float32(n/2)) * 0.4},
	}
}

// testElement is a page element with settable bounds and active marker.
type testElement struct {
	rect    image.Rectangle
	missing bool
	active  bool
}

func (te *testElement) Bounds() (image.Rectangle, bool) {
	return te.rect, !te.missing
}

func (te *testElement) SetActive(on bool) {
	te.active = on
}

// listElements returns n list rows on the right side of an 800 wide page.
func listElements(n int) []*testElement {
	els := make([]*testElement, n)
	for i := range els {
		els[i] = &testElement{rect: image.Rect(600, 20+i*24, 780, 40+i*24)}
	}
	return els
}
