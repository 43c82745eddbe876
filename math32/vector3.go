// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Initially copied from G3N: github.com/g3n/engine/math32
// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
// with modifications needed to suit Cogent Core functionality.

package math32

import "fmt"

// Vector3 is a 3D vector/point with X, Y and Z components.
type Vector3 struct {
	X float32
	Y float32
	Z float32
}

// Vec3 returns a new [Vector3] with the given x, y and z components.
func Vec3(x, y, z float32) Vector3 {
	return Vector3{x, y, z}
}

// Vector3Scalar returns a new [Vector3] with all components set to the given scalar value.
func Vector3Scalar(scalar float32) Vector3 {
	return Vector3{scalar, scalar, scalar}
}

// Set sets this vector X, Y and Z components.
func (v *Vector3) Set(x, y, z float32) {
	v.X = x
	v.Y = y
	v.Z = z
}

// SetScalar sets all vector components to the same scalar value.
func (v *Vector3) SetScalar(scalar float32) {
	v.X = scalar
	v.Y = scalar
	v.Z = scalar
}

func (v Vector3) String() string {
	return fmt.Sprintf("(%v, %v, %v)", v.X, v.Y, v.Z)
}

// IsNil returns true if all values are 0 (uninitialized).
func (v Vector3) IsNil() bool {
	return v.X == 0 && v.Y == 0 && v.Z == 0
}

// IsNaN returns true if any component is NaN.
func (v Vector3) IsNaN() bool {
	return IsNaN(v.X) || IsNaN(v.Y) || IsNaN(v.Z)
}

// Add adds other vector to this one and returns result in a new vector.
func (v Vector3) Add(other Vector3) Vector3 {
	return Vec3(v.X+other.X, v.Y+other.Y, v.Z+other.Z)
}

// SetAdd sets this to addition with other vector (i.e., += or plus-equals).
func (v *Vector3) SetAdd(other Vector3) {
	v.X += other.X
	v.Y += other.Y
	v.Z += other.Z
}

// Sub subtracts other vector from this one and returns result in new vector.
func (v Vector3) Sub(other Vector3) Vector3 {
	return Vec3(v.X-other.X, v.Y-other.Y, v.Z-other.Z)
}

// MulScalar multiplies each component of this vector by the scalar s and returns resulting vector.
func (v Vector3) MulScalar(s float32) Vector3 {
	return Vec3(v.X*s, v.Y*s, v.Z*s)
}

// DivScalar divides each component of this vector by the scalar s and returns resulting vector.
// If scalar is zero, returns zero.
func (v Vector3) DivScalar(scalar float32) Vector3 {
	if scalar != 0 {
		return v.MulScalar(1 / scalar)
	}
	return Vector3{}
}

// Negate returns vector with each component negated.
func (v Vector3) Negate() Vector3 {
	return Vec3(-v.X, -v.Y, -v.Z)
}

// Dot returns the dot product of this vector with the given other vector.
func (v Vector3) Dot(other Vector3) float32 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the cross product of this vector with other.
func (v Vector3) Cross(other Vector3) Vector3 {
	return Vec3(v.Y*other.Z-v.Z*other.Y, v.Z*other.X-v.X*other.Z, v.X*other.Y-v.Y*other.X)
}

// Length returns the length (magnitude) of this vector.
func (v Vector3) Length() float32 {
	return Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// LengthSquared returns the length squared of this vector.
// LengthSquared can be used to compare vectors' lengths without the need to perform a square root.
func (v Vector3) LengthSquared() float32 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Normal returns this vector divided by its length (its unit vector).
func (v Vector3) Normal() Vector3 {
	return v.DivScalar(v.Length())
}

// DistanceTo returns the distance of this point to other.
func (v Vector3) DistanceTo(other Vector3) float32 {
	return v.Sub(other).Length()
}

// Lerp returns vector with each components as the linear interpolated value of
// alpha between itself and the corresponding other component.
func (v Vector3) Lerp(other Vector3, alpha float32) Vector3 {
	return Vec3(v.X+(other.X-v.X)*alpha, v.Y+(other.Y-v.Y)*alpha, v.Z+(other.Z-v.Z)*alpha)
}

// MulMatrix4AsPoint returns vector multiplied by specified 4x4 matrix,
// treating the vector as a point (w = 1) with no perspective divide.
func (v Vector3) MulMatrix4AsPoint(m *Matrix4) Vector3 {
	return Vec3(m[0]*v.X+m[4]*v.Y+m[8]*v.Z+m[12],
		m[1]*v.X+m[5]*v.Y+m[9]*v.Z+m[13],
		m[2]*v.X+m[6]*v.Y+m[10]*v.Z+m[14])
}

// MulMatrix4AsDir returns vector multiplied by the upper 3x3 portion
// of the given 4x4 matrix, treating it as a direction (w = 0).
func (v Vector3) MulMatrix4AsDir(m *Matrix4) Vector3 {
	return Vec3(m[0]*v.X+m[4]*v.Y+m[8]*v.Z,
		m[1]*v.X+m[5]*v.Y+m[9]*v.Z,
		m[2]*v.X+m[6]*v.Y+m[10]*v.Z)
}

// MulQuat returns vector multiplied by specified quaternion and
// then by the quaternion inverse.
// It basically applies the rotation encoded in the quaternion to this vector.
func (v Vector3) MulQuat(q Quat) Vector3 {
	qx := q.X
	qy := q.Y
	qz := q.Z
	qw := q.W
	// calculate quat * vector
	ix := qw*v.X + qy*v.Z - qz*v.Y
	iy := qw*v.Y + qz*v.X - qx*v.Z
	iz := qw*v.Z + qx*v.Y - qy*v.X
	iw := -qx*v.X - qy*v.Y - qz*v.Z
	// calculate result * inverse quat
	return Vec3(ix*qw+iw*-qx+iy*-qz-iz*-qy,
		iy*qw+iw*-qy+iz*-qx-ix*-qz,
		iz*qw+iw*-qz+ix*-qy-iy*-qx)
}

// SetFromMatrixPos set this vector from the translation coordinates
// in the specified transformation matrix.
func (v *Vector3) SetFromMatrixPos(m *Matrix4) {
	v.X = m[12]
	v.Y = m[13]
	v.Z = m[14]
}

// Vector3 constants for the axes, for convenience.
var (
	Vector3X = Vec3(1, 0, 0)
	Vector3Y = Vec3(0, 1, 0)
	Vector3Z = Vec3(0, 0, 1)
)
