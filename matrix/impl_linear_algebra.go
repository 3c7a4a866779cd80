// SPDX-License-Identifier: MIT
// Package matrix: shaped multiplication kernels.
//
// Purpose:
//   - Compose an elementary matrix e onto a running matrix a while touching
//     only the cells e actually changes.
//
// Contract (all kernels):
//   - mulN(c, a, e)  stores a·e in c;  rmulN(c, a, e) stores e·a in c.
//   - c may alias a (the common in-place case); results are accumulated in
//     a local and stored once.
//   - e must have the kernel's shape; cells outside it are assumed identity
//     and never read:
//     1: identity except the translation column e[0..2][3];
//     2: identity except the top-left 2×2 block;
//     3: identity except the top-left 3×3 block.
//   - Sums are accumulated in the same k-order as mul4, so for operands of
//     the right shape every kernel returns the same bits as mul4 (up to the
//     sign of zero).
//
// Complexity:
//   - mul4: 64 multiply-adds; mul3/rmul3: 36; mul2/rmul2: 16; mul1/rmul1: 12.

package matrix

// mul4 stores the full product a·b in c.
func mul4(c, a, b *Matrix4) {
	var r Matrix4
	var i, j int
	for i = 0; i < 4; i++ {
		for j = 0; j < 4; j++ {
			r[i][j] = a[i][0]*b[0][j] + a[i][1]*b[1][j] + a[i][2]*b[2][j] + a[i][3]*b[3][j]
		}
	}
	*c = r
}

// mul1 stores a·e in c for a translation e.
// Columns 0..2 are unchanged; column 3 picks up a's linear part applied to t.
func mul1(c, a, e *Matrix4) {
	t0, t1, t2 := e[0][3], e[1][3], e[2][3]
	r := *a
	for i := 0; i < 4; i++ {
		r[i][3] = a[i][0]*t0 + a[i][1]*t1 + a[i][2]*t2 + a[i][3]
	}
	*c = r
}

// rmul1 stores e·a in c for a translation e: rows 0..2 gain t_i times row 3.
func rmul1(c, a, e *Matrix4) {
	r := *a
	for i := 0; i < 3; i++ {
		t := e[i][3]
		for j := 0; j < 4; j++ {
			r[i][j] = a[i][j] + t*a[3][j]
		}
	}
	*c = r
}

// mul2 stores a·e in c where e only differs from identity in its 2×2 block.
func mul2(c, a, e *Matrix4) {
	r := *a
	for i := 0; i < 4; i++ {
		r[i][0] = a[i][0]*e[0][0] + a[i][1]*e[1][0]
		r[i][1] = a[i][0]*e[0][1] + a[i][1]*e[1][1]
	}
	*c = r
}

// rmul2 stores e·a in c where e only differs from identity in its 2×2 block.
func rmul2(c, a, e *Matrix4) {
	r := *a
	for j := 0; j < 4; j++ {
		r[0][j] = e[0][0]*a[0][j] + e[0][1]*a[1][j]
		r[1][j] = e[1][0]*a[0][j] + e[1][1]*a[1][j]
	}
	*c = r
}

// mul3 stores a·e in c where e only differs from identity in its 3×3 block.
func mul3(c, a, e *Matrix4) {
	r := *a
	for i := 0; i < 4; i++ {
		for j := 0; j < 3; j++ {
			r[i][j] = a[i][0]*e[0][j] + a[i][1]*e[1][j] + a[i][2]*e[2][j]
		}
	}
	*c = r
}

// rmul3 stores e·a in c where e only differs from identity in its 3×3 block.
func rmul3(c, a, e *Matrix4) {
	r := *a
	for i := 0; i < 3; i++ {
		for j := 0; j < 4; j++ {
			r[i][j] = e[i][0]*a[0][j] + e[i][1]*a[1][j] + e[i][2]*a[2][j]
		}
	}
	*c = r
}
