// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vecmat/core"
	"github.com/katalvlaran/vecmat/matrix"
	"github.com/katalvlaran/vecmat/vector"
)

func TestTranspose(t *testing.T) {
	m := matrix.Identity()
	m.Transpose()
	require.Equal(t, matrix.Identity(), m)

	m = matrix.MustNew(seq4x4)
	m.Transpose()
	require.Equal(t, matrix.Matrix4{
		{11, 21, 31, 41},
		{12, 22, 32, 42},
		{13, 23, 33, 43},
		{14, 24, 34, 44},
	}, m)

	m.Transpose()
	require.Equal(t, matrix.MustNew(seq4x4), m, "transpose is an involution")
}

func TestDeterminant(t *testing.T) {
	require.Equal(t, 1.0, matrix.Identity().Determinant())

	m := matrix.Identity()
	m.Scale(2, 3, 4)
	require.Equal(t, 24.0, m.Determinant())

	// Rows of seq4x4 are linearly dependent.
	require.InDelta(t, 0, matrix.MustNew(seq4x4).Determinant(), 1e-9)

	rng := rand.New(rand.NewSource(3))
	a := randMatrix(rng)
	b := a
	b.Transpose()
	require.InDelta(t, a.Determinant(), b.Determinant(), 1e-6)
}

func TestInverse_Identity(t *testing.T) {
	m := matrix.Identity()
	_, err := m.Inverse()
	require.NoError(t, err)
	require.Equal(t, matrix.Identity(), m)
	require.Equal(t, vector.XYZ(1, 2, 3), m.Transform(vector.XYZ(1, 2, 3)))
}

func TestInverse_Law(t *testing.T) {
	t.Parallel()

	for seed := int64(1); seed <= 20; seed++ {
		rng := rand.New(rand.NewSource(seed))
		a := randMatrix(rng)
		if core.IsZero(a.Determinant()) {
			continue
		}
		inv := a
		_, err := inv.Inverse()
		require.NoError(t, err)

		left, right := a, a
		left.RMul(inv)
		right.Mul(inv)
		require.True(t, matrix.AllClose(matrix.Identity(), left, 1e-7), "seed %d: inv·a\n%v", seed, left)
		require.True(t, matrix.AllClose(matrix.Identity(), right, 1e-7), "seed %d: a·inv\n%v", seed, right)
	}
}

func TestInverse_AffineRoundTrip(t *testing.T) {
	for _, tc := range []struct {
		name  string
		build func(m *matrix.Matrix4) error
		p     vector.Vector4
	}{
		{"rotate then translate", func(m *matrix.Matrix4) error {
			m.ZRotate(35).Translate(vector.XYZ(25, 4, 5))
			return nil
		}, vector.XYZ(1, 2, 3)},
		{"translate then rotate", func(m *matrix.Matrix4) error {
			m.Translate(vector.XYZ(10, -4, 20)).ZRotate(77)
			return nil
		}, vector.XYZ(2, 3, 4)},
		{"scale and lookat", func(m *matrix.Matrix4) error {
			m.Scale(2, 0.5, 3)
			_, err := m.LookAt(vector.XYZ(1, 2, 3), vector.XYZ(-4, 0, 1), vector.XYZ(0, 1, 0))
			return err
		}, vector.XYZ(-7, 1, 9)},
	} {
		t.Run(tc.name, func(t *testing.T) {
			m := matrix.Identity()
			require.NoError(t, tc.build(&m))

			inv, err := matrix.Inverse(m)
			require.NoError(t, err)
			requireXYZ(t, [3]float64{tc.p.X, tc.p.Y, tc.p.Z}, inv.Transform(m.Transform(tc.p)))
		})
	}
}

func TestInverse_MatchesRBuilders(t *testing.T) {
	m, r := matrix.Identity(), matrix.Identity()
	m.Translate(vector.XYZ(10, -4, 20)).ZRotate(77)
	r.RTranslate(vector.XYZ(10, -4, 20)).RZRotate(77)

	inv, err := matrix.Inverse(m)
	require.NoError(t, err)
	requireMatrix(t, r, inv)
}

func TestInverse_Singular(t *testing.T) {
	for name, m := range map[string]matrix.Matrix4{
		"zero row":       matrix.MustNew([][]float64{{1, 2, 3, 4}, {0, 0, 0, 0}}),
		"dependent rows": matrix.MustNew(seq4x4),
		"zero scale":     scaled(1, 0, 1),
		"tiny det":       scaled(1e-3, 1e-3, 1e-3),
	} {
		t.Run(name, func(t *testing.T) {
			before := m
			_, err := m.Inverse()
			require.ErrorIs(t, err, core.ErrSingularMatrix)
			require.Equal(t, before, m, "receiver untouched on error")

			_, err = matrix.Inverse(m)
			require.ErrorIs(t, err, core.ErrSingularMatrix)
		})
	}
}

func TestInverse_Projection(t *testing.T) {
	// A perspective-style matrix with a non-affine bottom row.
	p := matrix.Matrix4{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, -1.2, -2.2},
		{0, 0, -1, 0},
	}
	inv, err := matrix.Inverse(p)
	require.NoError(t, err)
	prod, err := matrix.Mul(p, inv)
	require.NoError(t, err)
	requireMatrix(t, matrix.Identity(), prod)
}

func scaled(sx, sy, sz float64) matrix.Matrix4 {
	m := matrix.Identity()
	m.Scale(sx, sy, sz)

	return m
}
