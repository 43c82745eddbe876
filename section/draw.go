// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package section

import (
	"image"
	"image/color"

	"cogentcore.org/hero/gpu"
	"cogentcore.org/hero/math32"
)

var (
	outlineColor = color.RGBA{0xbb, 0xbb, 0xbb, 255}
	activeColor  = color.RGBA{0xee, 0xee, 0xee, 255}
)

// DrawPage draws the page boxes in view as outlines, with the active
// entry marked, and the overlay curve on top, onto the given surface.
// It is used by hosts that have no page rendering of their own.
func (sc *Section) DrawPage(surf gpu.Surface) {
	gpu.ResetViewport(surf)
	h := surf.Size().Y
	for _, bx := range sc.Page.Boxes {
		if bx.Name == "hero" || !bx.InView() {
			continue
		}
		r, _ := bx.Bounds()
		if bx.Active {
			drawRect(surf, r.Inset(2), h, 4, activeColor)
		}
		drawRect(surf, r, h, 1, outlineColor)
	}
	sc.Overlay.Overlay.Draw(surf, 1.5, 4, sc.Context.Accent)
}

// drawRect strokes the given top-left rectangle.
func drawRect(surf gpu.Surface, r image.Rectangle, h int, width float32, c color.Color) {
	pt := func(x, y int) math32.Vector2 {
		return math32.Vec2(float32(x), float32(h-y))
	}
	surf.StrokeLine(pt(r.Min.X, r.Min.Y), pt(r.Max.X, r.Min.Y), width, c)
	surf.StrokeLine(pt(r.Max.X, r.Min.Y), pt(r.Max.X, r.Max.Y), width, c)
	surf.StrokeLine(pt(r.Max.X, r.Max.Y), pt(r.Min.X, r.Max.Y), width, c)
	surf.StrokeLine(pt(r.Min.X, r.Max.Y), pt(r.Min.X, r.Min.Y), width, c)
}
