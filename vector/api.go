// SPDX-License-Identifier: MIT
// Package vector: pure functions over loosely typed operands.
//
// Every function coerces its operands with From, works on a copy of the
// left operand and returns a new Vector4. Operands are never mutated.

package vector

import "github.com/katalvlaran/vecmat/core"

// binary coerces both operands and applies fn to a copy of a.
func binary(tag string, a, b any, fn func(*Vector4, Vector4)) (Vector4, error) {
	va, err := From(a)
	if err != nil {
		return Vector4{}, vectorErrorf(tag, err)
	}
	vb, err := From(b)
	if err != nil {
		return Vector4{}, vectorErrorf(tag, err)
	}
	fn(&va, vb)

	return va, nil
}

// Add returns a + b.
func Add(a, b any) (Vector4, error) {
	return binary(opAdd, a, b, func(v *Vector4, w Vector4) { v.Add(w) })
}

// Sub returns a - b.
func Sub(a, b any) (Vector4, error) {
	return binary(opSub, a, b, func(v *Vector4, w Vector4) { v.Sub(w) })
}

// Cross returns a × b.
func Cross(a, b any) (Vector4, error) {
	return binary(opCross, a, b, func(v *Vector4, w Vector4) { v.Cross(w) })
}

// Dot returns the component-wise product of a and b.
func Dot(a, b any) (Vector4, error) {
	return binary(opDot, a, b, func(v *Vector4, w Vector4) { v.Dot(w) })
}

// Mul returns a scaled by f. f goes through core.ParseFloat.
func Mul(a, f any) (Vector4, error) {
	v, s, err := withScalar(opMul, a, f)
	if err != nil {
		return Vector4{}, err
	}

	return *v.Mul(s), nil
}

// Div returns a divided by f.
// Fails with core.ErrDivisionByZero when |f| <= core.Epsilon.
func Div(a, f any) (Vector4, error) {
	v, s, err := withScalar(opDiv, a, f)
	if err != nil {
		return Vector4{}, err
	}
	if _, err = v.Div(s); err != nil {
		return Vector4{}, err
	}

	return v, nil
}

// Length returns the Euclidean norm of a.
func Length(a any) (float64, error) {
	v, err := From(a)
	if err != nil {
		return 0, vectorErrorf(opLength, err)
	}

	return v.Length(), nil
}

// Normalize returns a scaled to unit length.
func Normalize(a any) (Vector4, error) {
	v, err := From(a)
	if err != nil {
		return Vector4{}, vectorErrorf(opNormalize, err)
	}
	if _, err = v.Normalize(); err != nil {
		return Vector4{}, err
	}

	return v, nil
}

// Neg returns -a.
func Neg(a any) (Vector4, error) {
	v, err := From(a)
	if err != nil {
		return Vector4{}, vectorErrorf(opNeg, err)
	}

	return *v.Neg(), nil
}

func withScalar(tag string, a, f any) (Vector4, float64, error) {
	v, err := From(a)
	if err != nil {
		return Vector4{}, 0, vectorErrorf(tag, err)
	}
	s, err := core.ParseFloat(f)
	if err != nil {
		return Vector4{}, 0, vectorErrorf(tag, err)
	}

	return v, s, nil
}
