// SPDX-License-Identifier: MIT

package matrix

import (
	"github.com/katalvlaran/vecmat/vector"
)

// Mul sets m = m·b and returns m.
func (m *Matrix4) Mul(b Matrix4) *Matrix4 {
	mul4(m, m, &b)

	return m
}

// RMul sets m = b·m and returns m.
func (m *Matrix4) RMul(b Matrix4) *Matrix4 {
	mul4(m, &b, m)

	return m
}

// Transform returns m·v, treating v as a column with all four components.
// The result's W is whatever the product yields; it is not renormalized.
// Use Project for perspective division.
func (m Matrix4) Transform(v vector.Vector4) vector.Vector4 {
	return vector.Vector4{
		X: m[0][0]*v.X + m[0][1]*v.Y + m[0][2]*v.Z + m[0][3]*v.W,
		Y: m[1][0]*v.X + m[1][1]*v.Y + m[1][2]*v.Z + m[1][3]*v.W,
		Z: m[2][0]*v.X + m[2][1]*v.Y + m[2][2]*v.Z + m[2][3]*v.W,
		W: m[3][0]*v.X + m[3][1]*v.Y + m[3][2]*v.Z + m[3][3]*v.W,
	}
}

// Project returns Transform(v) divided by its w.
// Fails with core.ErrDivisionByZero when the transformed w is within
// core.Epsilon of zero (a point on the projection plane at infinity).
func (m Matrix4) Project(v vector.Vector4) (vector.Vector4, error) {
	out := m.Transform(v)
	if _, err := out.Dehomogenize(); err != nil {
		return vector.Vector4{}, matrixErrorf(opProject, err)
	}

	return out, nil
}
