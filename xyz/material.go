// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"fmt"
	"image/color"

	"cogentcore.org/hero/base/errors"
	"github.com/jinzhu/copier"
)

// Material describes the material properties of a surface.
// Main color is used for the fill, and the alpha component
// of Color times Opacity determines transparency.
// The Emissive color is added on top, for glowing objects.
type Material struct {

	// Color is the main color of the surface
	Color color.RGBA

	// Emissive is the color that surface emits independent of any lighting -- i.e., glow
	Emissive color.RGBA

	// Edge is the color of the outline drawn around the surface, if its alpha is > 0
	Edge color.RGBA

	// Opacity is an overall multiplier on alpha, in [0, 1]
	Opacity float32

	// Bright is an overall multiplier on the final computed color value
	Bright float32

	// Distort is the amount of surface distortion, in [0, 1];
	// renderers scale the drawn size by 1 + Distort * 0.25
	Distort float32

	// Wireframe draws only the outline of the surface
	Wireframe bool

	// Version is incremented by every change made through an override,
	// for use in tests and diagnostics
	Version int `copier:"-"`
}

// Defaults sets default surface parameters
func (mt *Material) Defaults() {
	mt.Color = color.RGBA{128, 128, 128, 255}
	mt.Emissive = color.RGBA{}
	mt.Edge = color.RGBA{}
	mt.Opacity = 1
	mt.Bright = 1
	mt.Distort = 0
	mt.Wireframe = false
}

// NewMaterial returns a new material with defaults and the given color.
func NewMaterial(clr color.RGBA) *Material {
	mt := &Material{}
	mt.Defaults()
	mt.Color = clr
	return mt
}

func (mt Material) String() string {
	return fmt.Sprintf("Material{Color: %v, Emissive: %v, Opacity: %g, Distort: %g}", mt.Color, mt.Emissive, mt.Opacity, mt.Distort)
}

// Clone returns a deep copy of this material.
func (mt *Material) Clone() *Material {
	nm := &Material{}
	errors.Log(copier.Copy(nm, mt))
	return nm
}

// CopyFrom copies all of the material properties from the other material,
// keeping the Version of the receiver. A nil source is an error and
// leaves the receiver unchanged.
func (mt *Material) CopyFrom(fr *Material) error {
	return errors.Log(copier.Copy(mt, fr))
}

// IsTransparent returns true if the color has alpha < 255 or Opacity < 1
func (mt *Material) IsTransparent() bool {
	return mt.Color.A < 255 || mt.Opacity < 1
}

// RenderColor returns the final fill color: Color scaled by Bright,
// with Emissive added and alpha scaled by Opacity, as premultiplied RGBA.
func (mt *Material) RenderColor() color.RGBA {
	br := mt.Bright
	if br == 0 {
		br = 1
	}
	ch := func(c, e uint8) float32 {
		return min(float32(c)*br+float32(e), 255)
	}
	r, g, b := ch(mt.Color.R, mt.Emissive.R), ch(mt.Color.G, mt.Emissive.G), ch(mt.Color.B, mt.Emissive.B)
	a := float32(mt.Color.A) * min(max(mt.Opacity, 0), 1)
	f := a / 255
	return color.RGBA{uint8(r * f), uint8(g * f), uint8(b * f), uint8(a)}
}
