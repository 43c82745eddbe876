// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hero

import (
	"cogentcore.org/hero/math32"
	"cogentcore.org/hero/xyz"
)

// ease returns the fraction to move toward a target in one frame of
// the given step, for a per-nominal-frame easing factor.
func ease(factor, step float32) float32 {
	if step <= 0 {
		return 0
	}
	return 1 - math32.Pow(1-factor, step)
}

// CameraRig orbits a camera around its target following the pointer,
// with exponential easing. When the pointer leaves the surface the
// rig eases back to the rest position.
type CameraRig struct {

	// Camera is the camera moved by the rig
	Camera *xyz.Camera

	// Factor is the fraction of the remaining rotation covered per nominal frame
	Factor float32

	// Range is the rotation in radians at the edge of the surface
	Range float32

	// Distance is the distance from the camera to its target
	Distance float32

	// Yaw and Pitch are the current rotation in radians
	Yaw, Pitch float32

	targetYaw, targetPitch float32
}

// NewCameraRig returns a new rig for the given camera,
// keeping its current distance to the target.
func NewCameraRig(cam *xyz.Camera) *CameraRig {
	return &CameraRig{Camera: cam, Factor: 0.05, Range: 0.5, Distance: cam.Distance()}
}

// Update sets the target rotation from the pointer position in
// normalized device coordinates (or the rest position if the pointer
// is not inside the surface), eases toward it and moves the camera.
func (cr *CameraRig) Update(ndc math32.Vector2, inside bool, step float32) {
	if inside {
		cr.targetYaw = -ndc.X * cr.Range
		cr.targetPitch = ndc.Y * cr.Range
	} else {
		cr.targetYaw, cr.targetPitch = 0, 0
	}
	f := ease(cr.Factor, step)
	cr.Yaw += f * (cr.targetYaw - cr.Yaw)
	cr.Pitch += f * (cr.targetPitch - cr.Pitch)
	cr.Camera.OrbitTo(cr.Yaw, cr.Pitch, cr.Distance)
}

// Spinner rotates a group by pointer drags, and auto-rotates it about
// Y while not dragging. Auto-rotation stops during a drag and then
// eases back to its base speed.
type Spinner struct {

	// Group is the group rotated
	Group *xyz.Group

	// Rot is the current rotation as Euler angles in radians
	Rot math32.Vector3

	// Speed is the current auto-rotation per nominal frame
	Speed float32

	// BaseSpeed is the auto-rotation speed resumed after a drag
	BaseSpeed float32

	// Resume is the lerp factor per frame toward BaseSpeed
	Resume float32

	// Sensitivity is the rotation in radians per pixel of drag
	Sensitivity float32
}

// NewSpinner returns a new spinner for the given group, starting at its
// tilt (radians about X and Z).
func NewSpinner(gp *xyz.Group, tiltX, tiltZ float32) *Spinner {
	sp := &Spinner{Group: gp, BaseSpeed: 0.0005, Resume: 0.02, Sensitivity: 0.005}
	sp.Speed = sp.BaseSpeed
	sp.Rot.Set(tiltX, 0, tiltZ)
	sp.apply()
	return sp
}

// Update applies the drag motion in pixels, or auto-rotation
// when not dragging.
func (sp *Spinner) Update(dragging bool, delta math32.Vector2, step float32) {
	if dragging {
		sp.Rot.Y += delta.X * sp.Sensitivity
		sp.Rot.X += delta.Y * sp.Sensitivity
		sp.Speed = 0
	} else {
		sp.Speed = math32.Lerp(sp.Speed, sp.BaseSpeed, sp.Resume)
		sp.Rot.Y += sp.Speed * step
	}
	sp.apply()
}

func (sp *Spinner) apply() {
	sp.Group.Pose.SetEulerRotationRad(sp.Rot.X, sp.Rot.Y, sp.Rot.Z)
}
