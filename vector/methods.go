// SPDX-License-Identifier: MIT
// Package vector: in-place arithmetic on *Vector4.
//
// Contract:
//   - Every method reads its operands into locals before writing the
//     receiver, so v.Cross(v) and v.Sub(v) are well defined.
//   - Methods that can fail leave the receiver untouched on error.
//   - W is never touched by the affine operations; it stays 1 for points
//     built through New/From.

package vector

import (
	"math"

	"github.com/katalvlaran/vecmat/core"
)

// Add sets v = v + b (x, y, z) and returns v.
func (v *Vector4) Add(b Vector4) *Vector4 {
	v.X, v.Y, v.Z = v.X+b.X, v.Y+b.Y, v.Z+b.Z

	return v
}

// Sub sets v = v - b (x, y, z) and returns v.
func (v *Vector4) Sub(b Vector4) *Vector4 {
	v.X, v.Y, v.Z = v.X-b.X, v.Y-b.Y, v.Z-b.Z

	return v
}

// Mul scales x, y, z by f and returns v.
func (v *Vector4) Mul(f float64) *Vector4 {
	v.X, v.Y, v.Z = v.X*f, v.Y*f, v.Z*f

	return v
}

// Div divides x, y, z by f.
// Fails with core.ErrDivisionByZero when |f| <= core.Epsilon.
func (v *Vector4) Div(f float64) (*Vector4, error) {
	if core.IsZero(f) {
		return v, vectorErrorf(opDiv, core.ErrDivisionByZero)
	}
	v.X, v.Y, v.Z = v.X/f, v.Y/f, v.Z/f

	return v, nil
}

// Length returns the Euclidean norm of (x, y, z).
func (v Vector4) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Len is an alias of Length.
func (v Vector4) Len() float64 { return v.Length() }

// Normalize scales v to unit length.
// Fails with core.ErrZeroLengthVector when Length() <= core.Epsilon.
func (v *Vector4) Normalize() (*Vector4, error) {
	l := v.Length()
	if core.IsZero(l) {
		return v, vectorErrorf(opNormalize, core.ErrZeroLengthVector)
	}
	v.X, v.Y, v.Z = v.X/l, v.Y/l, v.Z/l

	return v, nil
}

// Neg negates x, y, z and returns v.
func (v *Vector4) Neg() *Vector4 {
	v.X, v.Y, v.Z = -v.X, -v.Y, -v.Z

	return v
}

// Cross sets v = v × b and returns v.
func (v *Vector4) Cross(b Vector4) *Vector4 {
	ax, ay, az := v.X, v.Y, v.Z
	v.X = ay*b.Z - az*b.Y
	v.Y = az*b.X - ax*b.Z
	v.Z = ax*b.Y - ay*b.X

	return v
}

// Dot multiplies v component-wise by b (x, y, z) and returns v.
// For the scalar product use Inner.
func (v *Vector4) Dot(b Vector4) *Vector4 {
	v.X, v.Y, v.Z = v.X*b.X, v.Y*b.Y, v.Z*b.Z

	return v
}

// Inner returns the scalar dot product of (x, y, z).
func (v Vector4) Inner(b Vector4) float64 {
	return v.X*b.X + v.Y*b.Y + v.Z*b.Z
}

// Dehomogenize divides x, y, z by w and resets w to 1.
// Fails with core.ErrDivisionByZero when |w| <= core.Epsilon.
func (v *Vector4) Dehomogenize() (*Vector4, error) {
	if core.IsZero(v.W) {
		return v, vectorErrorf(opDehomogenize, core.ErrDivisionByZero)
	}
	if v.W != 1 {
		v.X, v.Y, v.Z, v.W = v.X/v.W, v.Y/v.W, v.Z/v.W, 1
	}

	return v, nil
}
