// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"image/color"

	"cogentcore.org/hero/math32"
)

// Solid represents an individual 3D solid element.
// It has its own unique spatial transforms and material properties,
// and points to a shape defining its geometry.
type Solid struct {
	NodeBase

	// Shape is the geometry of the solid
	Shape Shape

	// Material contains the material properties of the surface.
	// If nil, the material of the nearest enclosing [Scene] is used.
	Material *Material
}

// NewSolid returns a new solid with the given name and shape,
// added as a child of the given parent (which may be nil).
func NewSolid(parent *Group, name string, shape Shape) *Solid {
	sld := &Solid{Shape: shape}
	sld.Name = name
	sld.Defaults()
	if parent != nil {
		parent.AddChild(sld)
	}
	return sld
}

func (sld *Solid) IsSolid() bool {
	return true
}

func (sld *Solid) AsSolid() *Solid {
	return sld
}

// Defaults sets default initial settings for solid params.
func (sld *Solid) Defaults() {
	sld.Pose.Defaults()
}

// SetMaterial sets the material and returns the solid
func (sld *Solid) SetMaterial(mt *Material) *Solid {
	sld.Material = mt
	return sld
}

// SetColor sets the [Material.Color], creating an own material if needed
func (sld *Solid) SetColor(v color.RGBA) *Solid {
	if sld.Material == nil {
		sld.Material = NewMaterial(v)
		return sld
	}
	sld.Material.Color = v
	return sld
}

// SetPos sets the [Pose.Pos] position of the solid
func (sld *Solid) SetPos(x, y, z float32) *Solid {
	sld.Pose.Pos.Set(x, y, z)
	return sld
}

// SetScale sets the [Pose.Scale] scale of the solid
func (sld *Solid) SetScale(x, y, z float32) *Solid {
	sld.Pose.Scale.Set(x, y, z)
	return sld
}

// BoundingRadius returns the local bounding radius of the shape, or 0.5 if none.
func (sld *Solid) BoundingRadius() float32 {
	if sld.Shape == nil {
		return 0.5
	}
	return sld.Shape.BoundingRadius()
}

// WorldSphere returns the bounding sphere of this solid in world coordinates,
// using the live ancestor chain.
func (sld *Solid) WorldSphere() math32.Sphere {
	wm := WorldMatrix(sld)
	return math32.Sphr(math32.Vector3{}, sld.BoundingRadius()).MulMatrix4(&wm)
}

// EffectiveMaterial returns the material used for rendering this solid:
// its own, or else the given fallback.
func (sld *Solid) EffectiveMaterial(fallback *Material) *Material {
	if sld.Material != nil {
		return sld.Material
	}
	return fallback
}

// test for impl
var _ Node = &Solid{}
