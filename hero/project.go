// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hero

import (
	"image"

	"cogentcore.org/hero/math32"
	"cogentcore.org/hero/xyz"
)

// Project returns the pixel position, relative to the top-left of the
// reference rectangle ref, of the given point in the local coordinates
// of node n, as seen by the camera. The full ancestor chain of n is
// composed as it is right now. It returns false if the point is at or
// behind the camera plane, or the camera is degenerate.
//
// A point on the optical axis of the camera projects to the center of ref.
func Project(local math32.Vector3, n xyz.Node, cam *xyz.Camera, ref image.Rectangle) (math32.Vector2, bool) {
	if cam.IsDegenerate() {
		return math32.Vector2{}, false
	}
	wm := xyz.WorldMatrix(n)
	ndc, ok := cam.ProjectNDC(local.MulMatrix4AsPoint(&wm))
	if !ok {
		return math32.Vector2{}, false
	}
	return NDCToPixel(math32.Vec2(ndc.X, ndc.Y), ref.Size()), true
}

// NDCToPixel maps normalized device coordinates (y up) to top-left
// pixel coordinates within a rectangle of the given size.
func NDCToPixel(ndc math32.Vector2, size image.Point) math32.Vector2 {
	return math32.Vec2((ndc.X*0.5+0.5)*float32(size.X), (-ndc.Y*0.5+0.5)*float32(size.Y))
}

// PixelToNDC maps top-left pixel coordinates within a rectangle of the
// given size to normalized device coordinates (y up). Sizes are clamped
// to at least 1.
func PixelToNDC(pt image.Point, size image.Point) math32.Vector2 {
	w := float32(max(size.X, 1))
	h := float32(max(size.Y, 1))
	return math32.Vec2(float32(pt.X)/w*2-1, -(float32(pt.Y)/h*2 - 1))
}

// ProjectProxy returns the pixel position of the center of the given
// proxy relative to ref. See [Project].
func ProjectProxy(px *Proxy, cam *xyz.Camera, ref image.Rectangle) (math32.Vector2, bool) {
	if px == nil {
		return math32.Vector2{}, false
	}
	return Project(math32.Vector3{}, px.Solid, cam, ref)
}
