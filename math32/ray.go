// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Initially copied from G3N: github.com/g3n/engine/math32
// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
// with modifications needed to suit Cogent Core functionality.

package math32

// Ray represents an oriented 3D line segment defined by an origin point and a direction vector.
type Ray struct {
	Origin Vector3
	Dir    Vector3
}

// NewRay creates and returns a pointer to a Ray object with
// the specified origin and direction vectors.
func NewRay(origin, dir Vector3) *Ray {
	return &Ray{Origin: origin, Dir: dir}
}

// At returns the point along the ray at distance t from its origin.
func (ray *Ray) At(t float32) Vector3 {
	return ray.Dir.MulScalar(t).Add(ray.Origin)
}

// IsValid returns false if the ray direction is zero or not a number,
// which happens for degenerate cameras.
func (ray *Ray) IsValid() bool {
	return !ray.Origin.IsNaN() && !ray.Dir.IsNaN() && !ray.Dir.IsNil()
}

// IntersectSphere returns the nearest point of intersection of this ray
// with the specified sphere, along with the distance from the ray origin.
// If the origin is inside the sphere the far point is returned.
// Returns false if the ray does not intersect the sphere in front of its origin.
func (ray *Ray) IntersectSphere(sphere Sphere) (Vector3, float32, bool) {
	v1 := sphere.Center.Sub(ray.Origin)
	tca := v1.Dot(ray.Dir)
	d2 := v1.Dot(v1) - tca*tca
	radius2 := sphere.Radius * sphere.Radius
	if d2 > radius2 {
		return Vector3{}, 0, false
	}

	thc := Sqrt(radius2 - d2)
	t0 := tca - thc // first intersect point - entrance on front of sphere
	t1 := tca + thc // second intersect point - exit point on back of sphere

	// sphere is behind the ray
	if t0 < 0 && t1 < 0 {
		return Vector3{}, 0, false
	}
	// ray origin is inside the sphere
	if t0 < 0 {
		return ray.At(t1), t1, true
	}
	return ray.At(t0), t0, true
}
