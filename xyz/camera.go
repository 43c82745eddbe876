// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"log/slog"

	"cogentcore.org/hero/math32"
)

// Camera defines the properties of the camera
type Camera struct {

	// overall orientation and direction of the camera, relative to pointing at negative Z axis with up (positive Y) direction
	Pose Pose

	// target location for the camera -- where it is pointing at -- defaults to the origin, but moves with panning movements, and is reset by a call to LookAt method
	Target math32.Vector3

	// up direction for camera -- which way is up -- defaults to positive Y axis, and is reset by call to LookAt method
	UpDir math32.Vector3

	// field of view in degrees
	FOV float32

	// aspect ratio (width/height)
	Aspect float32

	// near plane z coordinate
	Near float32

	// far plane z coordinate
	Far float32

	// view matrix (inverse of the Pose.Matrix)
	ViewMatrix math32.Matrix4 `display:"-"`

	// projection matrix, defining the camera perspective transform
	PrjnMatrix math32.Matrix4 `display:"-"`

	// inverse of the projection matrix
	InvPrjnMatrix math32.Matrix4 `display:"-"`

	// degenerate is set when the last UpdateMatrix could not invert
	// the pose or projection
	degenerate bool
}

// NewCamera returns a new camera with defaults.
func NewCamera() *Camera {
	cm := &Camera{}
	cm.Defaults()
	return cm
}

func (cm *Camera) Defaults() {
	cm.FOV = 45
	cm.Aspect = 1.5
	cm.Near = .1
	cm.Far = 100
	cm.DefaultPose()
}

// DefaultPose resets the camera pose to default location and orientation, looking
// at the origin from 0,0,8, with up Y axis
func (cm *Camera) DefaultPose() {
	cm.Pose.Defaults()
	cm.Pose.Pos.Set(0, 0, 8)
	cm.LookAtOrigin()
}

// SetAspectSize sets the aspect ratio from the given pixel size,
// clamping the denominator to at least 1 so a zero height never
// produces an infinite or NaN aspect, and updates the matrices.
func (cm *Camera) SetAspectSize(width, height int) {
	cm.Aspect = float32(max(width, 0)) / float32(max(height, 1))
	cm.UpdateMatrix()
}

// UpdateMatrix updates the view and prjn matricies
func (cm *Camera) UpdateMatrix() {
	cm.degenerate = false
	cm.Pose.UpdateMatrix()
	if err := cm.ViewMatrix.SetInverse(&cm.Pose.Matrix); err != nil {
		slog.Debug("xyz.Camera: view matrix", "err", err)
		cm.degenerate = true
	}
	cm.PrjnMatrix.SetPerspective(cm.FOV, cm.Aspect, cm.Near, cm.Far)
	if err := cm.InvPrjnMatrix.SetInverse(&cm.PrjnMatrix); err != nil {
		slog.Debug("xyz.Camera: projection matrix", "err", err)
		cm.degenerate = true
	}
}

// IsDegenerate returns true if the camera matrices could not be inverted
// at the last [Camera.UpdateMatrix], e.g., due to a zero field of view.
func (cm *Camera) IsDegenerate() bool {
	return cm.degenerate
}

// ViewProjection returns the combined projection * view matrix.
func (cm *Camera) ViewProjection() math32.Matrix4 {
	var vp math32.Matrix4
	vp.MulMatrices(&cm.PrjnMatrix, &cm.ViewMatrix)
	return vp
}

// LookAt points the camera at given target location, using given up direction,
// and sets the Target, UpDir fields for future camera movements.
func (cm *Camera) LookAt(target, upDir math32.Vector3) {
	cm.Target = target
	if upDir.IsNil() {
		upDir = math32.Vector3Y
	}
	cm.UpDir = upDir
	cm.Pose.LookAt(target, upDir)
	cm.UpdateMatrix()
}

// LookAtOrigin points the camera at origin with Y axis pointing Up (i.e., standard)
func (cm *Camera) LookAtOrigin() {
	cm.LookAt(math32.Vector3{}, math32.Vector3Y)
}

// ViewVector is the vector between the camera position and target
func (cm *Camera) ViewVector() math32.Vector3 {
	return cm.Pose.Pos.Sub(cm.Target)
}

// Distance returns the distance from the camera to its target.
func (cm *Camera) Distance() float32 {
	return cm.ViewVector().Length()
}

// OrbitTo places the camera on a sphere of the given distance around
// the Target, at the given yaw (about the up axis) and pitch (toward the up
// axis) angles in radians, and points it back at the Target.
// Yaw and pitch of zero place the camera on the +Z side of the target.
func (cm *Camera) OrbitTo(yaw, pitch, dist float32) {
	cp := math32.Cos(pitch)
	off := math32.Vec3(math32.Sin(yaw)*cp, math32.Sin(pitch), math32.Cos(yaw)*cp).MulScalar(dist)
	cm.Pose.Pos = cm.Target.Add(off)
	cm.LookAt(cm.Target, math32.Vector3Y)
}

// RayFromNDC returns the world-space ray from the camera through the given
// point in normalized device coordinates (x, y in [-1, 1], y up).
// Returns false if the camera is degenerate.
func (cm *Camera) RayFromNDC(ndc math32.Vector2) (math32.Ray, bool) {
	if cm.degenerate {
		return math32.Ray{}, false
	}
	// point on the near plane, in camera (view) space
	near := math32.Vec4(ndc.X, ndc.Y, -1, 1).MulMatrix4(&cm.InvPrjnMatrix)
	if near.W == 0 {
		return math32.Ray{}, false
	}
	vdir := near.PerspDiv()
	dir := vdir.MulMatrix4AsDir(&cm.Pose.Matrix)
	if dir.IsNaN() || dir.LengthSquared() == 0 {
		return math32.Ray{}, false
	}
	return *math32.NewRay(cm.Pose.Pos, dir.Normal()), true
}

// ProjectNDC returns the normalized device coordinates of the given world
// point, and false if the point is at or behind the camera plane.
func (cm *Camera) ProjectNDC(world math32.Vector3) (math32.Vector3, bool) {
	vp := cm.ViewProjection()
	clip := math32.Vector4FromVector3(world, 1).MulMatrix4(&vp)
	if clip.W <= 0 {
		return math32.Vector3{}, false
	}
	return clip.PerspDiv(), true
}
