// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Initially copied from G3N: github.com/g3n/engine/math32
// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
// with modifications needed to suit Cogent Core functionality.

package math32

// Sphere represents a 3D sphere defined by its center point and a radius
type Sphere struct {
	Center Vector3 // center of the sphere
	Radius float32 // radius of the sphere
}

// Sphr returns a new [Sphere] with the given center and radius.
func Sphr(center Vector3, radius float32) Sphere {
	return Sphere{center, radius}
}

// MulMatrix4 returns the sphere transformed by the given matrix,
// with the radius scaled by the largest axis scale.
func (s Sphere) MulMatrix4(m *Matrix4) Sphere {
	return Sphere{s.Center.MulMatrix4AsPoint(m), s.Radius * m.MaxScaleOnAxis()}
}
