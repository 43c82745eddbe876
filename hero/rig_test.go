// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hero

import (
	"testing"

	"cogentcore.org/hero/base/tolassert"
	"cogentcore.org/hero/math32"
	"cogentcore.org/hero/xyz"
	"github.com/stretchr/testify/assert"
)

func TestEase(t *testing.T) {
	assert.Equal(t, float32(0), ease(0.05, 0))
	tolassert.EqualTol(t, float32(0.05), ease(0.05, 1), 1e-6)
	// two half steps cover the same as one full step
	h := ease(0.05, 0.5)
	tolassert.EqualTol(t, ease(0.05, 1), 1-(1-h)*(1-h), 1e-6)
}

func TestCameraRig(t *testing.T) {
	cam := xyz.NewCamera()
	rig := NewCameraRig(cam)
	tolassert.EqualTol(t, float32(8), rig.Distance, 1e-5)

	for j := 0; j < 200; j++ {
		rig.Update(math32.Vec2(1, 0.5), true, 1)
	}
	tolassert.EqualTol(t, float32(-0.5), rig.Yaw, 1e-3)
	tolassert.EqualTol(t, float32(0.25), rig.Pitch, 1e-3)
	assert.Less(t, cam.Pose.Pos.X, float32(0))
	assert.Greater(t, cam.Pose.Pos.Y, float32(0))
	tolassert.EqualTol(t, float32(8), cam.Distance(), 1e-3)

	// eases back when the pointer leaves
	rig.Update(math32.Vec2(1, 0.5), false, 1)
	assert.Greater(t, rig.Yaw, float32(-0.5))
	for j := 0; j < 300; j++ {
		rig.Update(math32.Vector2{}, false, 1)
	}
	tolassert.EqualTol(t, float32(0), rig.Yaw, 1e-3)
	tolassert.EqualTol(t, float32(0), rig.Pitch, 1e-3)
}

func TestSpinner(t *testing.T) {
	gp := xyz.NewGroup(nil, "globe")
	sp := NewSpinner(gp, 0.2, 0.1)
	assert.Equal(t, math32.Vec3(0.2, 0, 0.1), sp.Rot)

	sp.Update(false, math32.Vector2{}, 2)
	tolassert.EqualTol(t, float32(0.001), sp.Rot.Y, 1e-7)

	sp.Update(true, math32.Vec2(100, -20), 1)
	assert.Equal(t, float32(0), sp.Speed)
	tolassert.EqualTol(t, float32(0.501), sp.Rot.Y, 1e-6)
	tolassert.EqualTol(t, float32(0.1), sp.Rot.X, 1e-6)

	sp.Update(false, math32.Vector2{}, 1)
	tolassert.EqualTol(t, float32(0.00001), sp.Speed, 1e-9)
	for j := 0; j < 500; j++ {
		sp.Update(false, math32.Vector2{}, 1)
	}
	tolassert.EqualTol(t, sp.BaseSpeed, sp.Speed, 1e-5)
}

func TestRouteForm(t *testing.T) {
	changes := 0
	rf := &RouteForm{OnChange: func(rf *RouteForm) { changes++ }}
	rf.Select("")
	assert.Equal(t, 0, changes)
	rf.Select("Lagos")
	assert.Equal(t, "Lagos", rf.Pickup)
	assert.False(t, rf.Complete())
	rf.Select("Quito")
	assert.Equal(t, "Quito", rf.Delivery)
	assert.True(t, rf.Complete())
	rf.Select("Oslo")
	assert.Equal(t, "Oslo", rf.Pickup)
	assert.Empty(t, rf.Delivery)
	rf.Reset()
	assert.Empty(t, rf.Pickup)
	assert.Equal(t, 4, changes)
}
