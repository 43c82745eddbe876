// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"cogentcore.org/hero/math32"
)

// Shape is the geometry of a [Solid]. Only the bounding radius matters
// for picking; renderers draw each shape as a projected impostor.
type Shape interface {
	// ShapeName returns the name of the shape type, e.g., "box".
	ShapeName() string

	// BoundingRadius returns the radius of the bounding sphere of the shape
	// in local units, centered at the local origin.
	BoundingRadius() float32
}

// Box is a rectangular box with the given size in each dimension.
type Box struct {
	Size math32.Vector3
}

// NewBox returns a new box of the given size.
func NewBox(width, height, depth float32) *Box {
	return &Box{Size: math32.Vec3(width, height, depth)}
}

func (bx *Box) ShapeName() string { return "box" }

func (bx *Box) BoundingRadius() float32 {
	return 0.5 * bx.Size.Length()
}

// Sphere is a sphere with the given radius.
type Sphere struct {
	Radius float32
}

func (sp *Sphere) ShapeName() string { return "sphere" }

func (sp *Sphere) BoundingRadius() float32 {
	return sp.Radius
}

// Tetrahedron is a regular tetrahedron inscribed in a sphere of the given radius.
type Tetrahedron struct {
	Radius float32
}

func (th *Tetrahedron) ShapeName() string { return "tetrahedron" }

func (th *Tetrahedron) BoundingRadius() float32 {
	return th.Radius
}

// Octahedron is a regular octahedron inscribed in a sphere of the given radius.
type Octahedron struct {
	Radius float32
}

func (oh *Octahedron) ShapeName() string { return "octahedron" }

func (oh *Octahedron) BoundingRadius() float32 {
	return oh.Radius
}
