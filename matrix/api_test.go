// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vecmat/core"
	"github.com/katalvlaran/vecmat/matrix"
	"github.com/katalvlaran/vecmat/vector"
)

func TestPure_DoesNotMutate(t *testing.T) {
	m := matrix.MustNew(seq4x4)
	want := m

	calls := map[string]func() error{
		"Scale":      func() error { _, err := matrix.Scale(&m, 2); return err },
		"Translate":  func() error { _, err := matrix.Translate(&m, 1, 2, 3); return err },
		"RTranslate": func() error { _, err := matrix.RTranslate(&m, []int{1, 2, 3}); return err },
		"XRotate":    func() error { _, err := matrix.XRotate(&m, 10); return err },
		"YRotate":    func() error { _, err := matrix.YRotate(&m, 10); return err },
		"ZRotate":    func() error { _, err := matrix.ZRotate(&m, 10); return err },
		"RXRotate":   func() error { _, err := matrix.RXRotate(&m, 10); return err },
		"RYRotate":   func() error { _, err := matrix.RYRotate(&m, "10"); return err },
		"RZRotate":   func() error { _, err := matrix.RZRotate(&m, 10.5); return err },
		"RScale":     func() error { _, err := matrix.RScale(&m, 2, 4); return err },
		"Rotate":     func() error { _, err := matrix.Rotate(&m, 90); return err },
		"RRotate":    func() error { _, err := matrix.RRotate(&m, 90, []int{1, 1, 0}); return err },
		"Transpose":  func() error { _, err := matrix.Transpose(&m); return err },
		"Mul":        func() error { _, err := matrix.Mul(&m, &m); return err },
		"LookAt": func() error {
			_, err := matrix.LookAt(&m, []int{0, 0, 1}, []int{0, 0, 0}, []int{0, 1, 0})
			return err
		},
	}
	for name, call := range calls {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, call())
			require.Equal(t, want, m)
		})
	}
}

func TestPure_Scale(t *testing.T) {
	for _, tc := range []struct {
		name    string
		factors []any
		want    vector.Vector4
	}{
		{"uniform", []any{10}, vector.XYZ(10, 20, 30)},
		{"xy", []any{2, "3"}, vector.XYZ(2, 6, 3)},
		{"xyz", []any{2, 3, 4}, vector.XYZ(2, 6, 12)},
	} {
		t.Run(tc.name, func(t *testing.T) {
			m, err := matrix.Scale(emptyRows(), tc.factors...)
			require.NoError(t, err)
			require.Equal(t, tc.want, m.Transform(vector.XYZ(1, 2, 3)))
		})
	}

	_, err := matrix.Scale(matrix.Identity())
	require.ErrorIs(t, err, core.ErrInvalidArgument)
	_, err = matrix.Scale(matrix.Identity(), 1, 2, 3, 4)
	require.ErrorIs(t, err, core.ErrInvalidArgument)
	_, err = matrix.Scale(matrix.Identity(), "big")
	require.ErrorIs(t, err, core.ErrInvalidNumber)
}

func TestPure_Translate(t *testing.T) {
	for _, args := range [][]any{
		{1, 2, 3},
		{vector.XYZ(1, 2, 3)},
		{[]float64{1, 2, 3}},
		{map[string]int{"x": 1, "y": 2, "z": 3}},
	} {
		m, err := matrix.Translate(matrix.Identity(), args...)
		require.NoError(t, err)
		require.Equal(t, vector.XYZ(1, 2, 3), m.Transform(vector.Zero()))
	}

	m, err := matrix.Translate(matrix.Identity(), 4, 5)
	require.NoError(t, err)
	require.Equal(t, vector.XYZ(4, 5, 0), m.Transform(vector.Zero()))

	_, err = matrix.Translate(matrix.Identity())
	require.ErrorIs(t, err, core.ErrInvalidArgument)
	_, err = matrix.Translate(matrix.Identity(), 7)
	require.ErrorIs(t, err, core.ErrInvalidArgument)
	_, err = matrix.RTranslate(matrix.Identity(), "x", 1)
	require.ErrorIs(t, err, core.ErrInvalidNumber)
}

func TestPure_Rotate(t *testing.T) {
	// The axis defaults to +z.
	q, err := matrix.Rotate(matrix.Identity(), 90)
	require.NoError(t, err)
	requireXYZ(t, [3]float64{0, 2, 0}, q.Transform(vector.XYZ(2, 0, 0)))

	r, err := matrix.RRotate(q, 90)
	require.NoError(t, err)
	requireMatrix(t, matrix.Identity(), r)

	_, err = matrix.Rotate(matrix.Identity(), 90, []int{0, 0, 0})
	require.ErrorIs(t, err, core.ErrZeroLengthVector)
	_, err = matrix.Rotate(matrix.Identity(), 90, []int{1, 0, 0}, []int{0, 1, 0})
	require.ErrorIs(t, err, core.ErrInvalidArgument)
	_, err = matrix.RRotate(matrix.Identity(), 90, true)
	require.ErrorIs(t, err, core.ErrInvalidArgument)
}

func TestPure_AxisRotations(t *testing.T) {
	for _, tc := range []struct {
		name     string
		rotate   func(m, deg any) (matrix.Matrix4, error)
		unrotate func(m, deg any) (matrix.Matrix4, error)
		in, want vector.Vector4
	}{
		{"x", matrix.XRotate, matrix.RXRotate, vector.XYZ(0, 2, 0), vector.XYZ(0, 0, 2)},
		{"y", matrix.YRotate, matrix.RYRotate, vector.XYZ(0, 0, 2), vector.XYZ(2, 0, 0)},
		{"z", matrix.ZRotate, matrix.RZRotate, vector.XYZ(2, 0, 0), vector.XYZ(0, 2, 0)},
	} {
		t.Run(tc.name, func(t *testing.T) {
			q, err := tc.rotate(emptyRows(), "90")
			require.NoError(t, err)
			requireXYZ(t, [3]float64{tc.want.X, tc.want.Y, tc.want.Z}, q.Transform(tc.in))

			r, err := tc.unrotate(q, 90)
			require.NoError(t, err)
			requireMatrix(t, matrix.Identity(), r)

			_, err = tc.rotate(matrix.Identity(), "9x")
			require.ErrorIs(t, err, core.ErrInvalidNumber)
			_, err = tc.unrotate(matrix.Identity(), nil)
			require.ErrorIs(t, err, core.ErrInvalidArgument)
		})
	}

	_, err := matrix.Rotate(matrix.Identity(), "9x", []int{1, 0, 0})
	require.ErrorIs(t, err, core.ErrInvalidNumber)
	_, err = matrix.RRotate(matrix.Identity(), []int{90})
	require.ErrorIs(t, err, core.ErrInvalidArgument)
}

func TestPure_RScale(t *testing.T) {
	for _, factors := range [][]any{{4}, {2, "4"}, {2, 4, 8}} {
		m, err := matrix.Scale(emptyRows(), factors...)
		require.NoError(t, err)
		r, err := matrix.RScale(m, factors...)
		require.NoError(t, err)
		requireMatrix(t, matrix.Identity(), r)
	}

	m, err := matrix.RScale(emptyRows(), 2, 4)
	require.NoError(t, err)
	requireMatrix(t, scaled(0.5, 0.25, 1), m)

	_, err = matrix.RScale(matrix.Identity(), 2, 0, 1)
	require.ErrorIs(t, err, core.ErrDivisionByZero)
	_, err = matrix.RScale(matrix.Identity())
	require.ErrorIs(t, err, core.ErrInvalidArgument)
	_, err = matrix.RScale(matrix.Identity(), "2e")
	require.ErrorIs(t, err, core.ErrInvalidNumber)
}

func TestPure_InverseAndDeterminant(t *testing.T) {
	m := scaled(2, 4, 8)
	inv, err := matrix.Inverse(m)
	require.NoError(t, err)
	require.Equal(t, scaled(0.5, 0.25, 0.125), inv)
	require.Equal(t, scaled(2, 4, 8), m)

	d, err := matrix.Determinant([][]int{{2}, {0, 3}})
	require.NoError(t, err)
	require.Equal(t, 6.0, d)

	_, err = matrix.Inverse([][]int{{0, 0, 0, 0}})
	require.ErrorIs(t, err, core.ErrSingularMatrix)
	_, err = matrix.Determinant("m")
	require.ErrorIs(t, err, core.ErrInvalidArgument)
}

func TestPure_TransformAndProject(t *testing.T) {
	v, err := matrix.Transform(seq4x4, []int{1, 0, 0})
	require.NoError(t, err)
	require.Equal(t, vector.Vector4{X: 11 + 14, Y: 21 + 24, Z: 31 + 34, W: 41 + 44}, v)

	p, err := matrix.Project(seq4x4, []int{1, 0, 0})
	require.NoError(t, err)
	requireXYZ(t, [3]float64{25.0 / 85, 45.0 / 85, 65.0 / 85}, p)

	_, err = matrix.Transform(seq4x4, "v")
	require.ErrorIs(t, err, core.ErrInvalidArgument)
	_, err = matrix.Project([][]int{{}, {}, {}, {0, 0, 0, 0}}, []int{1, 2, 3})
	require.ErrorIs(t, err, core.ErrDivisionByZero)
}

func TestPure_LookAtErrors(t *testing.T) {
	_, err := matrix.LookAt(matrix.Identity(), []int{1, 1, 1}, []int{1, 1, 1}, []int{0, 1, 0})
	require.ErrorIs(t, err, core.ErrZeroLengthVector)
	_, err = matrix.LookAt(matrix.Identity(), nil, []int{1, 1, 1}, []int{0, 1, 0})
	require.ErrorIs(t, err, core.ErrInvalidArgument)
}

// emptyRows is an operand that coerces to identity.
func emptyRows() any { return [][]float64{} }
