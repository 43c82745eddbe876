// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"image/color"
)

// Scene is the root of a 3D scenegraph. It holds the camera that views
// the scene by default, a background color, and the shared material
// used by every solid that does not have its own.
type Scene struct {
	Group

	// Camera determines the default view onto the scene
	Camera Camera

	// Background is the color the view is cleared to before rendering;
	// a zero alpha leaves the surface as it is
	Background color.RGBA

	// Material is the shared material for solids without their own
	Material Material
}

// Defaults sets default scene params (camera, transparent background, gray material)
func (sc *Scene) Defaults() {
	sc.Group.Defaults()
	sc.Camera.Defaults()
	sc.Background = color.RGBA{}
	sc.Material.Defaults()
}

// NewScene creates a new Scene to contain a 3D scenegraph.
func NewScene(name string) *Scene {
	sc := &Scene{}
	sc.Name = name
	sc.Defaults()
	return sc
}
