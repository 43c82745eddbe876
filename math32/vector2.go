// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Initially copied from G3N: github.com/g3n/engine/math32
// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
// with modifications needed to suit Cogent Core functionality.

package math32

import (
	"fmt"
	"image"
)

// Vector2 is a 2D vector/point with X and Y components.
// It is used for page pixel coordinates and normalized device coordinates.
type Vector2 struct {
	X float32
	Y float32
}

// Vec2 returns a new [Vector2] with the given x and y components.
func Vec2(x, y float32) Vector2 {
	return Vector2{x, y}
}

// FromPoint returns a new [Vector2] from the given [image.Point].
func FromPoint(pt image.Point) Vector2 {
	return Vector2{float32(pt.X), float32(pt.Y)}
}

// Set sets this vector X and Y components.
func (v *Vector2) Set(x, y float32) {
	v.X = x
	v.Y = y
}

func (v Vector2) String() string {
	return fmt.Sprintf("(%v, %v)", v.X, v.Y)
}

// ToPoint returns the vector as an [image.Point], rounding to the nearest integer.
func (v Vector2) ToPoint() image.Point {
	return image.Point{int(Round(v.X)), int(Round(v.Y))}
}

// Add adds other vector to this one and returns result in a new vector.
func (v Vector2) Add(other Vector2) Vector2 {
	return Vec2(v.X+other.X, v.Y+other.Y)
}

// Sub subtracts other vector from this one and returns result in new vector.
func (v Vector2) Sub(other Vector2) Vector2 {
	return Vec2(v.X-other.X, v.Y-other.Y)
}

// Mul multiplies each component of this vector by the corresponding one from other
// and returns resulting vector.
func (v Vector2) Mul(other Vector2) Vector2 {
	return Vec2(v.X*other.X, v.Y*other.Y)
}

// MulScalar multiplies each component of this vector by the scalar s and returns resulting vector.
func (v Vector2) MulScalar(s float32) Vector2 {
	return Vec2(v.X*s, v.Y*s)
}

// Dot returns the dot product of this vector with the given other vector.
func (v Vector2) Dot(other Vector2) float32 {
	return v.X*other.X + v.Y*other.Y
}

// Length returns the length (magnitude) of this vector.
func (v Vector2) Length() float32 {
	return Sqrt(v.X*v.X + v.Y*v.Y)
}

// DistanceTo returns the distance between these two vectors as points.
func (v Vector2) DistanceTo(other Vector2) float32 {
	return v.Sub(other).Length()
}

// Lerp returns vector with each components as the linear interpolated value of
// alpha between itself and the corresponding other component.
func (v Vector2) Lerp(other Vector2, alpha float32) Vector2 {
	return Vec2(v.X+(other.X-v.X)*alpha, v.Y+(other.Y-v.Y)*alpha)
}

// CubicBezier returns the point at t in [0, 1] along the cubic Bézier curve
// from v through control points c1 and c2 to end.
func (v Vector2) CubicBezier(c1, c2, end Vector2, t float32) Vector2 {
	u := 1 - t
	a := u * u * u
	b := 3 * u * u * t
	c := 3 * u * t * t
	d := t * t * t
	return Vec2(a*v.X+b*c1.X+c*c2.X+d*end.X, a*v.Y+b*c1.Y+c*c2.Y+d*end.Y)
}
