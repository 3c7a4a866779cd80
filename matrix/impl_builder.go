// SPDX-License-Identifier: MIT
// Package matrix: affine builders.
//
// Every builder forms the small elementary matrix of its transform and
// composes it onto the receiver with the cheapest kernel for its shape:
//
//	Scale, XRotate, YRotate, Rotate, LookAt basis → mul3
//	ZRotate                                       → mul2
//	Translate                                     → mul1
//
// R-builders compose the inverse elementary matrix from the left with the
// matching rmul kernel. Angles are in degrees.

package matrix

import (
	"math"

	"github.com/katalvlaran/vecmat/core"
	"github.com/katalvlaran/vecmat/vector"
)

// scaling returns diag(sx, sy, sz, 1).
func scaling(sx, sy, sz float64) Matrix4 {
	e := Identity()
	e[0][0], e[1][1], e[2][2] = sx, sy, sz

	return e
}

// translation returns identity with t in the translation column.
func translation(t vector.Vector4) Matrix4 {
	e := Identity()
	e[0][3], e[1][3], e[2][3] = t.X, t.Y, t.Z

	return e
}

// xRotation, yRotation and zRotation rotate counter-clockwise when looking
// down the axis towards the origin: +y→+z, +z→+x and +x→+y at 90°.
func xRotation(deg float64) Matrix4 {
	s, c := math.Sincos(core.Radians(deg))
	e := Identity()
	e[1][1], e[1][2] = c, -s
	e[2][1], e[2][2] = s, c

	return e
}

func yRotation(deg float64) Matrix4 {
	s, c := math.Sincos(core.Radians(deg))
	e := Identity()
	e[0][0], e[0][2] = c, s
	e[2][0], e[2][2] = -s, c

	return e
}

func zRotation(deg float64) Matrix4 {
	s, c := math.Sincos(core.Radians(deg))
	e := Identity()
	e[0][0], e[0][1] = c, -s
	e[1][0], e[1][1] = s, c

	return e
}

// axisRotation returns the Rodrigues rotation by deg about axis.
// Fails with core.ErrZeroLengthVector when the axis cannot be normalized.
func axisRotation(deg float64, axis vector.Vector4) (Matrix4, error) {
	if _, err := axis.Normalize(); err != nil {
		return Matrix4{}, err
	}
	x, y, z := axis.X, axis.Y, axis.Z
	s, c := math.Sincos(core.Radians(deg))
	t := 1 - c

	e := Identity()
	e[0][0], e[0][1], e[0][2] = c+x*x*t, x*y*t-z*s, x*z*t+y*s
	e[1][0], e[1][1], e[1][2] = x*y*t+z*s, c+y*y*t, y*z*t-x*s
	e[2][0], e[2][1], e[2][2] = x*z*t-y*s, y*z*t+x*s, c+z*z*t

	return e, nil
}

// Scale right-multiplies m by diag(sx, sy, sz, 1) and returns m.
func (m *Matrix4) Scale(sx, sy, sz float64) *Matrix4 {
	e := scaling(sx, sy, sz)
	mul3(m, m, &e)

	return m
}

// ScaleUniform is Scale(s, s, s).
func (m *Matrix4) ScaleUniform(s float64) *Matrix4 {
	return m.Scale(s, s, s)
}

// RScale left-multiplies m by diag(1/sx, 1/sy, 1/sz, 1).
// Fails with core.ErrDivisionByZero when any factor is within core.Epsilon of 0.
func (m *Matrix4) RScale(sx, sy, sz float64) (*Matrix4, error) {
	for _, f := range [...]float64{sx, sy, sz} {
		if err := validateDivisor(f); err != nil {
			return m, matrixErrorf(opRScale, err)
		}
	}
	e := scaling(1/sx, 1/sy, 1/sz)
	rmul3(m, m, &e)

	return m, nil
}

// Translate right-multiplies m by the translation t and returns m.
// Only t's x, y, z are used.
func (m *Matrix4) Translate(t vector.Vector4) *Matrix4 {
	e := translation(t)
	mul1(m, m, &e)

	return m
}

// RTranslate left-multiplies m by the translation -t and returns m.
func (m *Matrix4) RTranslate(t vector.Vector4) *Matrix4 {
	e := translation(*t.Neg())
	rmul1(m, m, &e)

	return m
}

// XRotate right-multiplies m by a rotation of deg degrees about +x.
func (m *Matrix4) XRotate(deg float64) *Matrix4 {
	e := xRotation(deg)
	mul3(m, m, &e)

	return m
}

// YRotate right-multiplies m by a rotation of deg degrees about +y.
func (m *Matrix4) YRotate(deg float64) *Matrix4 {
	e := yRotation(deg)
	mul3(m, m, &e)

	return m
}

// ZRotate right-multiplies m by a rotation of deg degrees about +z.
func (m *Matrix4) ZRotate(deg float64) *Matrix4 {
	e := zRotation(deg)
	mul2(m, m, &e)

	return m
}

// RXRotate left-multiplies m by a rotation of -deg degrees about +x.
func (m *Matrix4) RXRotate(deg float64) *Matrix4 {
	e := xRotation(-deg)
	rmul3(m, m, &e)

	return m
}

// RYRotate left-multiplies m by a rotation of -deg degrees about +y.
func (m *Matrix4) RYRotate(deg float64) *Matrix4 {
	e := yRotation(-deg)
	rmul3(m, m, &e)

	return m
}

// RZRotate left-multiplies m by a rotation of -deg degrees about +z.
func (m *Matrix4) RZRotate(deg float64) *Matrix4 {
	e := zRotation(-deg)
	rmul2(m, m, &e)

	return m
}

// Rotate right-multiplies m by a rotation of deg degrees about axis.
// The axis need not be unit length.
//
// Errors:
//   - core.ErrZeroLengthVector when |axis| <= core.Epsilon.
func (m *Matrix4) Rotate(deg float64, axis vector.Vector4) (*Matrix4, error) {
	e, err := axisRotation(deg, axis)
	if err != nil {
		return m, matrixErrorf(opRotate, err)
	}
	mul3(m, m, &e)

	return m, nil
}

// RRotate left-multiplies m by a rotation of -deg degrees about axis.
func (m *Matrix4) RRotate(deg float64, axis vector.Vector4) (*Matrix4, error) {
	e, err := axisRotation(-deg, axis)
	if err != nil {
		return m, matrixErrorf(opRRotate, err)
	}
	rmul3(m, m, &e)

	return m, nil
}

// LookAt right-multiplies m by the camera transform placed at eye and
// looking at target.
//
// Implementation:
//   - Stage 1: forward = normalize(target − eye), right = normalize(forward × up),
//     trueUp = normalize(right × forward).
//   - Stage 2: Translate(eye), then mul3 with the basis whose columns are
//     right, trueUp and forward.
//
// Applied to identity, the result maps +x, +y, +z onto right, trueUp and
// forward, and the origin onto eye.
//
// Errors:
//   - core.ErrZeroLengthVector when eye == target, or up is parallel to the
//     viewing direction (within core.Epsilon).
func (m *Matrix4) LookAt(eye, target, up vector.Vector4) (*Matrix4, error) {
	forward := target
	forward.Sub(eye)
	if _, err := forward.Normalize(); err != nil {
		return m, matrixErrorf(opLookAt, err)
	}
	right := forward
	if _, err := right.Cross(up).Normalize(); err != nil {
		return m, matrixErrorf(opLookAt, err)
	}
	trueUp := right
	if _, err := trueUp.Cross(forward).Normalize(); err != nil {
		return m, matrixErrorf(opLookAt, err)
	}

	basis := Identity()
	for i, col := range [...]vector.Vector4{right, trueUp, forward} {
		basis[0][i], basis[1][i], basis[2][i] = col.X, col.Y, col.Z
	}
	m.Translate(eye)
	mul3(m, m, &basis)

	return m, nil
}
