// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Initially copied from G3N: github.com/g3n/engine/math32
// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
// with modifications needed to suit Cogent Core functionality.

package math32

import "errors"

// Matrix4 is 4x4 matrix organized internally as column matrix.
type Matrix4 [16]float32

// Identity4 returns a new identity [Matrix4] matrix.
func Identity4() *Matrix4 {
	m := &Matrix4{}
	m.SetIdentity()
	return m
}

// SetIdentity sets this matrix as the identity matrix.
func (m *Matrix4) SetIdentity() {
	*m = Matrix4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// SetZero sets this matrix as the zero matrix.
func (m *Matrix4) SetZero() {
	*m = Matrix4{}
}

// CopyFrom copies from source matrix into this matrix
// (a regular = assign does not copy data, just the pointer!)
func (m *Matrix4) CopyFrom(src *Matrix4) {
	copy(m[:], src[:])
}

// Mul returns this matrix times other matrix (this matrix is unchanged)
func (m *Matrix4) Mul(other *Matrix4) *Matrix4 {
	nm := &Matrix4{}
	nm.MulMatrices(m, other)
	return nm
}

// SetMul sets this matrix to this matrix times other
func (m *Matrix4) SetMul(other *Matrix4) {
	m.MulMatrices(m, other)
}

// MulMatrices sets this matrix as matrix multiplication a by b (i.e., a*b).
func (m *Matrix4) MulMatrices(a, b *Matrix4) {
	a11 := a[0]
	a12 := a[4]
	a13 := a[8]
	a14 := a[12]
	a21 := a[1]
	a22 := a[5]
	a23 := a[9]
	a24 := a[13]
	a31 := a[2]
	a32 := a[6]
	a33 := a[10]
	a34 := a[14]
	a41 := a[3]
	a42 := a[7]
	a43 := a[11]
	a44 := a[15]

	b11 := b[0]
	b12 := b[4]
	b13 := b[8]
	b14 := b[12]
	b21 := b[1]
	b22 := b[5]
	b23 := b[9]
	b24 := b[13]
	b31 := b[2]
	b32 := b[6]
	b33 := b[10]
	b34 := b[14]
	b41 := b[3]
	b42 := b[7]
	b43 := b[11]
	b44 := b[15]

	m[0] = a11*b11 + a12*b21 + a13*b31 + a14*b41
	m[4] = a11*b12 + a12*b22 + a13*b32 + a14*b42
	m[8] = a11*b13 + a12*b23 + a13*b33 + a14*b43
	m[12] = a11*b14 + a12*b24 + a13*b34 + a14*b44

	m[1] = a21*b11 + a22*b21 + a23*b31 + a24*b41
	m[5] = a21*b12 + a22*b22 + a23*b32 + a24*b42
	m[9] = a21*b13 + a22*b23 + a23*b33 + a24*b43
	m[13] = a21*b14 + a22*b24 + a23*b34 + a24*b44

	m[2] = a31*b11 + a32*b21 + a33*b31 + a34*b41
	m[6] = a31*b12 + a32*b22 + a33*b32 + a34*b42
	m[10] = a31*b13 + a32*b23 + a33*b33 + a34*b43
	m[14] = a31*b14 + a32*b24 + a33*b34 + a34*b44

	m[3] = a41*b11 + a42*b21 + a43*b31 + a44*b41
	m[7] = a41*b12 + a42*b22 + a43*b32 + a44*b42
	m[11] = a41*b13 + a42*b23 + a43*b33 + a44*b43
	m[15] = a41*b14 + a42*b24 + a43*b34 + a44*b44
}

// SetTransform sets this matrix to a transformation matrix for the specified position,
// rotation specified by the quaternion and scale.
func (m *Matrix4) SetTransform(pos Vector3, quat Quat, scale Vector3) {
	x := quat.X
	y := quat.Y
	z := quat.Z
	w := quat.W
	x2 := x + x
	y2 := y + y
	z2 := z + z
	xx := x * x2
	xy := x * y2
	xz := x * z2
	yy := y * y2
	yz := y * z2
	zz := z * z2
	wx := w * x2
	wy := w * y2
	wz := w * z2

	m[0] = (1 - (yy + zz)) * scale.X
	m[1] = (xy + wz) * scale.X
	m[2] = (xz - wy) * scale.X
	m[3] = 0

	m[4] = (xy - wz) * scale.Y
	m[5] = (1 - (xx + zz)) * scale.Y
	m[6] = (yz + wx) * scale.Y
	m[7] = 0

	m[8] = (xz + wy) * scale.Z
	m[9] = (yz - wx) * scale.Z
	m[10] = (1 - (xx + yy)) * scale.Z
	m[11] = 0

	m[12] = pos.X
	m[13] = pos.Y
	m[14] = pos.Z
	m[15] = 1
}

// ErrSingular is returned by [Matrix4.SetInverse] when the determinant is zero.
var ErrSingular = errors.New("math32.Matrix4: cannot invert matrix, determinant is 0")

// Inverse returns the inverse of this matrix.
// If the matrix cannot be inverted the identity matrix is returned
// together with [ErrSingular].
func (m *Matrix4) Inverse() (*Matrix4, error) {
	nm := &Matrix4{}
	err := nm.SetInverse(m)
	return nm, err
}

// SetInverse sets this matrix to the inverse of the src matrix.
// If the src matrix cannot be inverted this matrix is set to the identity
// and [ErrSingular] is returned.
func (m *Matrix4) SetInverse(src *Matrix4) error {
	n11 := src[0]
	n21 := src[1]
	n31 := src[2]
	n41 := src[3]
	n12 := src[4]
	n22 := src[5]
	n32 := src[6]
	n42 := src[7]
	n13 := src[8]
	n23 := src[9]
	n33 := src[10]
	n43 := src[11]
	n14 := src[12]
	n24 := src[13]
	n34 := src[14]
	n44 := src[15]

	t11 := n23*n34*n42 - n24*n33*n42 + n24*n32*n43 - n22*n34*n43 - n23*n32*n44 + n22*n33*n44
	t12 := n14*n33*n42 - n13*n34*n42 - n14*n32*n43 + n12*n34*n43 + n13*n32*n44 - n12*n33*n44
	t13 := n13*n24*n42 - n14*n23*n42 + n14*n22*n43 - n12*n24*n43 - n13*n22*n44 + n12*n23*n44
	t14 := n14*n23*n32 - n13*n24*n32 - n14*n22*n33 + n12*n24*n33 + n13*n22*n34 - n12*n23*n34

	det := n11*t11 + n21*t12 + n31*t13 + n41*t14
	if det == 0 || IsNaN(det) {
		m.SetIdentity()
		return ErrSingular
	}
	detInv := 1 / det

	m[0] = t11 * detInv
	m[1] = (n24*n33*n41 - n23*n34*n41 - n24*n31*n43 + n21*n34*n43 + n23*n31*n44 - n21*n33*n44) * detInv
	m[2] = (n22*n34*n41 - n24*n32*n41 + n24*n31*n42 - n21*n34*n42 - n22*n31*n44 + n21*n32*n44) * detInv
	m[3] = (n23*n32*n41 - n22*n33*n41 - n23*n31*n42 + n21*n33*n42 + n22*n31*n43 - n21*n32*n43) * detInv

	m[4] = t12 * detInv
	m[5] = (n13*n34*n41 - n14*n33*n41 + n14*n31*n43 - n11*n34*n43 - n13*n31*n44 + n11*n33*n44) * detInv
	m[6] = (n14*n32*n41 - n12*n34*n41 - n14*n31*n42 + n11*n34*n42 + n12*n31*n44 - n11*n32*n44) * detInv
	m[7] = (n12*n33*n41 - n13*n32*n41 + n13*n31*n42 - n11*n33*n42 - n12*n31*n43 + n11*n32*n43) * detInv

	m[8] = t13 * detInv
	m[9] = (n14*n23*n41 - n13*n24*n41 - n14*n21*n43 + n11*n24*n43 + n13*n21*n44 - n11*n23*n44) * detInv
	m[10] = (n12*n24*n41 - n14*n22*n41 + n14*n21*n42 - n11*n24*n42 - n12*n21*n44 + n11*n22*n44) * detInv
	m[11] = (n13*n22*n41 - n12*n23*n41 - n13*n21*n42 + n11*n23*n42 + n12*n21*n43 - n11*n22*n43) * detInv

	m[12] = t14 * detInv
	m[13] = (n13*n24*n31 - n14*n23*n31 + n14*n21*n33 - n11*n24*n33 - n13*n21*n34 + n11*n23*n34) * detInv
	m[14] = (n14*n22*n31 - n12*n24*n31 - n14*n21*n32 + n11*n24*n32 + n12*n21*n34 - n11*n22*n34) * detInv
	m[15] = (n12*n23*n31 - n13*n22*n31 + n13*n21*n32 - n11*n23*n32 - n12*n21*n33 + n11*n22*n33) * detInv
	return nil
}

// SetFrustum sets this matrix to a projection frustum matrix bounded by the specified planes.
func (m *Matrix4) SetFrustum(left, right, bottom, top, near, far float32) {
	x := 2 * near / (right - left)
	y := 2 * near / (top - bottom)
	a := (right + left) / (right - left)
	b := (top + bottom) / (top - bottom)
	c := -(far + near) / (far - near)
	d := -2 * far * near / (far - near)

	*m = Matrix4{
		x, 0, 0, 0,
		0, y, 0, 0,
		a, b, c, -1,
		0, 0, d, 0,
	}
}

// SetPerspective sets this matrix to a perspective projection matrix
// with the specified field of view in degrees,
// aspect ratio (width/height) and near and far planes.
func (m *Matrix4) SetPerspective(fov, aspect, near, far float32) {
	ymax := near * Tan(DegToRad(fov*0.5))
	ymin := -ymax
	xmin := ymin * aspect
	xmax := ymax * aspect
	m.SetFrustum(xmin, xmax, ymin, ymax, near, far)
}

// NewLookAt returns Matrix4 matrix as view transform matrix with origin at eye,
// pointing at target and using the up vector.
func NewLookAt(eye, target, up Vector3) *Matrix4 {
	rotMat := &Matrix4{}
	rotMat.SetIdentity()
	z := eye.Sub(target)
	if z.LengthSquared() == 0 {
		z.Z = 1
	}
	z = z.Normal()
	x := up.Cross(z)
	if x.LengthSquared() == 0 { // eye and target are in same vertical
		if Abs(up.Z) == 1 {
			z.X += 0.0001
		} else {
			z.Z += 0.0001
		}
		z = z.Normal()
		x = up.Cross(z)
	}
	x = x.Normal()
	y := z.Cross(x)

	rotMat[0] = x.X
	rotMat[1] = x.Y
	rotMat[2] = x.Z
	rotMat[4] = y.X
	rotMat[5] = y.Y
	rotMat[6] = y.Z
	rotMat[8] = z.X
	rotMat[9] = z.Y
	rotMat[10] = z.Z
	return rotMat
}

// Pos returns the translation component of this transform matrix.
func (m *Matrix4) Pos() Vector3 {
	return Vec3(m[12], m[13], m[14])
}

// MaxScaleOnAxis returns the maximum scale value of the 3 axes.
func (m *Matrix4) MaxScaleOnAxis() float32 {
	scaleXSq := m[0]*m[0] + m[1]*m[1] + m[2]*m[2]
	scaleYSq := m[4]*m[4] + m[5]*m[5] + m[6]*m[6]
	scaleZSq := m[8]*m[8] + m[9]*m[9] + m[10]*m[10]
	return Sqrt(Max(scaleXSq, Max(scaleYSq, scaleZSq)))
}
