// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"cogentcore.org/hero/math32"
)

// Pose contains the full specification of position and orientation,
// always relevant to the parent element.
type Pose struct {

	// position of center of element (relative to parent)
	Pos math32.Vector3

	// scale (relative to parent)
	Scale math32.Vector3

	// Node rotation specified as a Quat (relative to parent)
	Quat math32.Quat

	// Local matrix. Contains all position/rotation/scale information (relative to parent)
	Matrix math32.Matrix4 `display:"-"`

	// World matrix. Contains all absolute position/rotation/scale information
	// (i.e. relative to very top parent, generally the scene).
	// Only valid after [UpdateWorldMatrix].
	WorldMatrix math32.Matrix4 `display:"-"`
}

// Defaults sets defaults only if current values are nil
func (ps *Pose) Defaults() {
	if ps.Scale.IsNil() {
		ps.Scale.Set(1, 1, 1)
	}
	if ps.Quat.IsNil() {
		ps.Quat.SetIdentity()
	}
}

// CopyFrom copies just the pose information from the other pose,
// and updates the local matrix.
func (ps *Pose) CopyFrom(op *Pose) {
	ps.Pos = op.Pos
	ps.Scale = op.Scale
	ps.Quat = op.Quat
	ps.UpdateMatrix()
}

// UpdateMatrix updates the local transform matrix based on its position, quaternion, and scale.
// Also checks for degenerate nil values
func (ps *Pose) UpdateMatrix() {
	ps.Defaults()
	ps.Matrix.SetTransform(ps.Pos, ps.Quat, ps.Scale)
}

// UpdateWorldMatrix updates the world transform matrix based on Matrix and parent's WorldMatrix.
// Does NOT call UpdateMatrix so that can include other factors as needed.
func (ps *Pose) UpdateWorldMatrix(parWorld *math32.Matrix4) {
	if parWorld == nil {
		ps.WorldMatrix.CopyFrom(&ps.Matrix)
		return
	}
	ps.WorldMatrix.MulMatrices(parWorld, &ps.Matrix)
}

// SetUniformScale sets all three scale factors to s.
func (ps *Pose) SetUniformScale(s float32) {
	ps.Scale.SetScalar(s)
}

///////////////////////////////////////////////////////
// 		Rotating

// SetEulerRotation sets the rotation in Euler angles (degrees).
func (ps *Pose) SetEulerRotation(x, y, z float32) {
	ps.Quat.SetFromEuler(math32.Vec3(x, y, z).MulScalar(math32.DegToRadFactor))
}

// SetEulerRotationRad sets the rotation in Euler angles (radians).
func (ps *Pose) SetEulerRotationRad(x, y, z float32) {
	ps.Quat.SetFromEuler(math32.Vec3(x, y, z))
}

// SetAxisRotation sets rotation from local axis and angle in degrees.
func (ps *Pose) SetAxisRotation(x, y, z, angle float32) {
	ps.Quat.SetFromAxisAngle(math32.Vec3(x, y, z), math32.DegToRad(angle))
}

// RotateOnAxisRad rotates around the specified local axis the specified angle in radians.
func (ps *Pose) RotateOnAxisRad(x, y, z, angle float32) {
	ps.Defaults()
	ps.Quat.SetMul(math32.NewQuatAxisAngle(math32.Vec3(x, y, z), angle))
}

// RotateEulerRad rotates by given Euler angles (in radians) relative to existing rotation.
func (ps *Pose) RotateEulerRad(x, y, z float32) {
	ps.Defaults()
	ps.Quat.SetMul(math32.NewQuatEuler(math32.Vec3(x, y, z)))
}

// LookAt points the element at given target location using given up direction.
func (ps *Pose) LookAt(target, upDir math32.Vector3) {
	ps.Quat.SetFromRotationMatrix(math32.NewLookAt(ps.Pos, target, upDir))
}

// WorldPos returns the current world position.
// Only valid after [UpdateWorldMatrix].
func (ps *Pose) WorldPos() math32.Vector3 {
	pos := math32.Vector3{}
	pos.SetFromMatrixPos(&ps.WorldMatrix)
	return pos
}
