// SPDX-License-Identifier: MIT
// Package matrix: pure functions.
//
// Each function coerces its matrix operand with From (so a Matrix4, a
// *Matrix4 or a nested slice all work), applies the matching method to the
// copy and returns it. Inputs are never mutated.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/vecmat/core"
	"github.com/katalvlaran/vecmat/vector"
)

// zAxis is the default rotation axis of Rotate and RRotate.
var zAxis = vector.XYZ(0, 0, 1)

// Scale returns m scaled by factors:
//   - 1 factor  → uniform (s, s, s);
//   - 2 factors → (sx, sy, 1);
//   - 3 factors → (sx, sy, sz).
//
// Any other arity fails with core.ErrInvalidArgument.
func Scale(m any, factors ...any) (Matrix4, error) {
	out, err := From(m)
	if err != nil {
		return Matrix4{}, matrixErrorf(opScale, err)
	}
	f, err := scaleFactors(opScale, factors)
	if err != nil {
		return Matrix4{}, err
	}

	return *out.Scale(f[0], f[1], f[2]), nil
}

// scaleFactors expands 1–3 scalar factors to (sx, sy, sz).
func scaleFactors(tag string, factors []any) ([3]float64, error) {
	f := [3]float64{1, 1, 1}
	if len(factors) < 1 || len(factors) > 3 {
		return f, matrixErrorf(fmt.Sprintf("%s(%d factors)", tag, len(factors)), core.ErrInvalidArgument)
	}
	var err error
	for i, v := range factors {
		if f[i], err = core.ParseFloat(v); err != nil {
			return f, matrixErrorf(tag, err)
		}
	}
	if len(factors) == 1 {
		f[1], f[2] = f[0], f[0]
	}

	return f, nil
}

// Translate returns m translated by a vector operand (Vector4, sequence,
// record) or by 2–3 positional scalars.
func Translate(m any, args ...any) (Matrix4, error) {
	out, err := From(m)
	if err != nil {
		return Matrix4{}, matrixErrorf(opTranslate, err)
	}
	t, err := translationOperand(args)
	if err != nil {
		return Matrix4{}, matrixErrorf(opTranslate, err)
	}

	return *out.Translate(t), nil
}

// RTranslate returns T(-t)·m. Arguments as for Translate.
func RTranslate(m any, args ...any) (Matrix4, error) {
	out, err := From(m)
	if err != nil {
		return Matrix4{}, matrixErrorf(opRTranslate, err)
	}
	t, err := translationOperand(args)
	if err != nil {
		return Matrix4{}, matrixErrorf(opRTranslate, err)
	}

	return *out.RTranslate(t), nil
}

// translationOperand reads a vector operand or 2–3 positional scalars.
func translationOperand(args []any) (vector.Vector4, error) {
	if len(args) == 0 {
		return vector.Vector4{}, core.ErrInvalidArgument
	}

	return vector.New(args...)
}

// XRotate returns m rotated by deg degrees about +x. deg is any scalar
// core.ParseFloat accepts, as for Scale.
func XRotate(m, deg any) (Matrix4, error) {
	return pureAxisRotation(opXRotate, m, deg, (*Matrix4).XRotate)
}

// YRotate returns m rotated by deg degrees about +y.
func YRotate(m, deg any) (Matrix4, error) {
	return pureAxisRotation(opYRotate, m, deg, (*Matrix4).YRotate)
}

// ZRotate returns m rotated by deg degrees about +z.
func ZRotate(m, deg any) (Matrix4, error) {
	return pureAxisRotation(opZRotate, m, deg, (*Matrix4).ZRotate)
}

// RXRotate returns Rx(-deg)·m, undoing an XRotate by the same angle.
func RXRotate(m, deg any) (Matrix4, error) {
	return pureAxisRotation(opRXRotate, m, deg, (*Matrix4).RXRotate)
}

// RYRotate returns Ry(-deg)·m.
func RYRotate(m, deg any) (Matrix4, error) {
	return pureAxisRotation(opRYRotate, m, deg, (*Matrix4).RYRotate)
}

// RZRotate returns Rz(-deg)·m.
func RZRotate(m, deg any) (Matrix4, error) {
	return pureAxisRotation(opRZRotate, m, deg, (*Matrix4).RZRotate)
}

func pureAxisRotation(tag string, m, deg any, apply func(*Matrix4, float64) *Matrix4) (Matrix4, error) {
	out, err := From(m)
	if err != nil {
		return Matrix4{}, matrixErrorf(tag, err)
	}
	d, err := core.ParseFloat(deg)
	if err != nil {
		return Matrix4{}, matrixErrorf(tag, err)
	}

	return *apply(&out, d), nil
}

// RScale returns diag(1/sx, 1/sy, 1/sz, 1)·m. Factors follow the arity
// rules of Scale. Fails with core.ErrDivisionByZero on a zero factor.
func RScale(m any, factors ...any) (Matrix4, error) {
	out, err := From(m)
	if err != nil {
		return Matrix4{}, matrixErrorf(opRScale, err)
	}
	f, err := scaleFactors(opRScale, factors)
	if err != nil {
		return Matrix4{}, err
	}
	if _, err = out.RScale(f[0], f[1], f[2]); err != nil {
		return Matrix4{}, err
	}

	return out, nil
}

// Rotate returns m rotated by deg degrees about axis, +z when axis is omitted.
// At most one axis may be given.
func Rotate(m, deg any, axis ...any) (Matrix4, error) {
	out, d, ax, err := rotationOperands(opRotate, m, deg, axis)
	if err != nil {
		return Matrix4{}, err
	}
	if _, err = out.Rotate(d, ax); err != nil {
		return Matrix4{}, err
	}

	return out, nil
}

// RRotate returns R(axis, -deg)·m, the axis defaulting to +z.
func RRotate(m, deg any, axis ...any) (Matrix4, error) {
	out, d, ax, err := rotationOperands(opRRotate, m, deg, axis)
	if err != nil {
		return Matrix4{}, err
	}
	if _, err = out.RRotate(d, ax); err != nil {
		return Matrix4{}, err
	}

	return out, nil
}

func rotationOperands(tag string, m, deg any, axis []any) (Matrix4, float64, vector.Vector4, error) {
	out, err := From(m)
	if err != nil {
		return Matrix4{}, 0, vector.Vector4{}, matrixErrorf(tag, err)
	}
	d, err := core.ParseFloat(deg)
	if err != nil {
		return Matrix4{}, 0, vector.Vector4{}, matrixErrorf(tag, err)
	}
	switch len(axis) {
	case 0:
		return out, d, zAxis, nil
	case 1:
		ax, err := vector.From(axis[0])
		if err != nil {
			return Matrix4{}, 0, vector.Vector4{}, matrixErrorf(tag, err)
		}
		return out, d, ax, nil
	default:
		return Matrix4{}, 0, vector.Vector4{}, matrixErrorf(fmt.Sprintf("%s(%d axes)", tag, len(axis)), core.ErrInvalidArgument)
	}
}

// LookAt returns m composed with the camera transform at eye looking at
// target; see (*Matrix4).LookAt.
func LookAt(m, eye, target, up any) (Matrix4, error) {
	out, err := From(m)
	if err != nil {
		return Matrix4{}, matrixErrorf(opLookAt, err)
	}
	var vs [3]vector.Vector4
	for i, v := range [...]any{eye, target, up} {
		if vs[i], err = vector.From(v); err != nil {
			return Matrix4{}, matrixErrorf(opLookAt, err)
		}
	}
	if _, err = out.LookAt(vs[0], vs[1], vs[2]); err != nil {
		return Matrix4{}, err
	}

	return out, nil
}

// Transpose returns mᵀ.
func Transpose(m any) (Matrix4, error) {
	out, err := From(m)
	if err != nil {
		return Matrix4{}, matrixErrorf(opTranspose, err)
	}

	return *out.Transpose(), nil
}

// Inverse returns m⁻¹ without touching m.
// Fails with core.ErrSingularMatrix when |det(m)| <= core.Epsilon.
func Inverse(m any) (Matrix4, error) {
	out, err := From(m)
	if err != nil {
		return Matrix4{}, matrixErrorf(opInverse, err)
	}
	if _, err = out.Inverse(); err != nil {
		return Matrix4{}, err
	}

	return out, nil
}

// Determinant returns det(m).
func Determinant(m any) (float64, error) {
	out, err := From(m)
	if err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}

	return out.Determinant(), nil
}

// Mul returns a·b.
func Mul(a, b any) (Matrix4, error) {
	ma, err := From(a)
	if err != nil {
		return Matrix4{}, matrixErrorf(opMul, err)
	}
	mb, err := From(b)
	if err != nil {
		return Matrix4{}, matrixErrorf(opMul, err)
	}
	var out Matrix4
	mul4(&out, &ma, &mb)

	return out, nil
}

// Transform returns m·v for any vector operand vector.From accepts.
func Transform(m, v any) (vector.Vector4, error) {
	mm, vv, err := transformOperands(opTransform, m, v)
	if err != nil {
		return vector.Vector4{}, err
	}

	return mm.Transform(vv), nil
}

// Project returns m·v divided by its w.
func Project(m, v any) (vector.Vector4, error) {
	mm, vv, err := transformOperands(opProject, m, v)
	if err != nil {
		return vector.Vector4{}, err
	}

	return mm.Project(vv)
}

func transformOperands(tag string, m, v any) (Matrix4, vector.Vector4, error) {
	mm, err := From(m)
	if err != nil {
		return Matrix4{}, vector.Vector4{}, matrixErrorf(tag, err)
	}
	vv, err := vector.From(v)
	if err != nil {
		return Matrix4{}, vector.Vector4{}, matrixErrorf(tag, err)
	}

	return mm, vv, nil
}
