// SPDX-License-Identifier: MIT
// Package matrix: transpose, determinant and closed-form inverse.
//
// Implementation notes:
//   - The inverse is the adjugate over the determinant, expanded through the
//     twelve 2×2 minors of the top two rows (s0..s5) and bottom two rows
//     (c0..c5). The same minors give the determinant (Laplace expansion by
//     complementary minors), so Inverse computes them exactly once.
//   - The general 4×4 case is handled; projection matrices whose bottom row
//     is not [0 0 0 1] are fine.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/vecmat/core"
)

// minors holds the 2×2 sub-determinants shared by Determinant and Inverse.
type minors struct {
	s0, s1, s2, s3, s4, s5 float64
	c0, c1, c2, c3, c4, c5 float64
}

func minorsOf(n *Matrix4) minors {
	return minors{
		s0: n[0][0]*n[1][1] - n[0][1]*n[1][0],
		s1: n[0][0]*n[1][2] - n[0][2]*n[1][0],
		s2: n[0][0]*n[1][3] - n[0][3]*n[1][0],
		s3: n[0][1]*n[1][2] - n[0][2]*n[1][1],
		s4: n[0][1]*n[1][3] - n[0][3]*n[1][1],
		s5: n[0][2]*n[1][3] - n[0][3]*n[1][2],
		c0: n[2][0]*n[3][1] - n[2][1]*n[3][0],
		c1: n[2][0]*n[3][2] - n[2][2]*n[3][0],
		c2: n[2][0]*n[3][3] - n[2][3]*n[3][0],
		c3: n[2][1]*n[3][2] - n[2][2]*n[3][1],
		c4: n[2][1]*n[3][3] - n[2][3]*n[3][1],
		c5: n[2][2]*n[3][3] - n[2][3]*n[3][2],
	}
}

func (k minors) det() float64 {
	return k.s0*k.c5 - k.s1*k.c4 + k.s2*k.c3 + k.s3*k.c2 - k.s4*k.c1 + k.s5*k.c0
}

// Transpose swaps rows and columns in place and returns m.
func (m *Matrix4) Transpose() *Matrix4 {
	for i := 0; i < core.Size; i++ {
		for j := i + 1; j < core.Size; j++ {
			m[i][j], m[j][i] = m[j][i], m[i][j]
		}
	}

	return m
}

// Determinant returns det(m).
// Complexity: O(1), 12 minors plus 6 products.
func (m Matrix4) Determinant() float64 {
	return minorsOf(&m).det()
}

// Inverse replaces m with m⁻¹ and returns m.
//
// Errors:
//   - core.ErrSingularMatrix when |det(m)| <= core.Epsilon; m is left unchanged.
//
// Complexity: O(1), the 12 minors are computed once.
func (m *Matrix4) Inverse() (*Matrix4, error) {
	n := *m
	k := minorsOf(&n)
	det := k.det()
	if core.IsZero(det) {
		return m, matrixErrorf(fmt.Sprintf("%s(det=%g)", opInverse, det), core.ErrSingularMatrix)
	}
	idet := 1 / det

	m[0][0] = (k.c5*n[1][1] - k.c4*n[1][2] + k.c3*n[1][3]) * idet
	m[0][1] = (-k.c5*n[0][1] + k.c4*n[0][2] - k.c3*n[0][3]) * idet
	m[0][2] = (k.s5*n[3][1] - k.s4*n[3][2] + k.s3*n[3][3]) * idet
	m[0][3] = (-k.s5*n[2][1] + k.s4*n[2][2] - k.s3*n[2][3]) * idet

	m[1][0] = (-k.c5*n[1][0] + k.c2*n[1][2] - k.c1*n[1][3]) * idet
	m[1][1] = (k.c5*n[0][0] - k.c2*n[0][2] + k.c1*n[0][3]) * idet
	m[1][2] = (-k.s5*n[3][0] + k.s2*n[3][2] - k.s1*n[3][3]) * idet
	m[1][3] = (k.s5*n[2][0] - k.s2*n[2][2] + k.s1*n[2][3]) * idet

	m[2][0] = (k.c4*n[1][0] - k.c2*n[1][1] + k.c0*n[1][3]) * idet
	m[2][1] = (-k.c4*n[0][0] + k.c2*n[0][1] - k.c0*n[0][3]) * idet
	m[2][2] = (k.s4*n[3][0] - k.s2*n[3][1] + k.s0*n[3][3]) * idet
	m[2][3] = (-k.s4*n[2][0] + k.s2*n[2][1] - k.s0*n[2][3]) * idet

	m[3][0] = (-k.c3*n[1][0] + k.c1*n[1][1] - k.c0*n[1][2]) * idet
	m[3][1] = (k.c3*n[0][0] - k.c1*n[0][1] + k.c0*n[0][2]) * idet
	m[3][2] = (-k.s3*n[3][0] + k.s1*n[3][1] - k.s0*n[3][2]) * idet
	m[3][3] = (k.s3*n[2][0] - k.s1*n[2][1] + k.s0*n[2][2]) * idet

	return m, nil
}
