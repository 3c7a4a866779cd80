// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers.
//
// Purpose:
//   - Deterministic random fixtures for kernel equivalence checks.
//   - Approximate comparison helpers for transform results.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/katalvlaran/vecmat/matrix"
	"github.com/katalvlaran/vecmat/vector"
)

// eps is the comparison tolerance for results that go through sin/cos.
const eps = 1e-9

// seq4x4 is the matrix used throughout the construction fixtures.
var seq4x4 = [][]float64{
	{11, 12, 13, 14},
	{21, 22, 23, 24},
	{31, 32, 33, 34},
	{41, 42, 43, 44},
}

// approx compares floats with an absolute margin of eps.
var approx = cmpopts.EquateApprox(0, eps)

// randMatrix fills every cell from [-10, 10).
func randMatrix(rng *rand.Rand) matrix.Matrix4 {
	var m matrix.Matrix4
	for i := range m {
		for j := range m[i] {
			m[i][j] = rng.Float64()*20 - 10
		}
	}

	return m
}

// randElementary returns identity with random values in the cells a kernel
// of the given shape reads: 1 = translation column, 2 = 2×2 block, 3 = 3×3 block.
func randElementary(rng *rand.Rand, shape int) matrix.Matrix4 {
	e := matrix.Identity()
	switch shape {
	case 1:
		for i := 0; i < 3; i++ {
			e[i][3] = rng.Float64()*20 - 10
		}
	default:
		for i := 0; i < shape; i++ {
			for j := 0; j < shape; j++ {
				e[i][j] = rng.Float64()*4 - 2
			}
		}
	}

	return e
}

// requireXYZ fails the test unless got's x, y, z match want within eps.
func requireXYZ(t *testing.T, want [3]float64, got vector.Vector4) {
	t.Helper()
	if diff := cmp.Diff(want, [3]float64{got.X, got.Y, got.Z}, approx); diff != "" {
		t.Fatalf("xyz mismatch (-want +got):\n%s", diff)
	}
}

// requireMatrix fails the test unless got matches want within eps.
func requireMatrix(t *testing.T, want, got matrix.Matrix4) {
	t.Helper()
	if diff := cmp.Diff(want, got, approx); diff != "" {
		t.Fatalf("matrix mismatch (-want +got):\n%s", diff)
	}
}
