// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/vecmat/core"
)

// Matrix4 is a 4×4 row-major matrix: m[i][j] is row i, column j.
type Matrix4 [core.Size][core.Size]float64

// Identity returns the 4×4 identity matrix.
func Identity() Matrix4 {
	return Matrix4{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// SetIdentity resets m to identity and returns m.
func (m *Matrix4) SetIdentity() *Matrix4 {
	*m = Identity()

	return m
}

// At returns m[i][j].
func (m Matrix4) At(i, j int) (float64, error) {
	if err := validateCell(i, j); err != nil {
		return 0, matrixErrorf(fmt.Sprintf("%s(%d,%d)", opAt, i, j), err)
	}

	return m[i][j], nil
}

// Set assigns m[i][j] = v. NaN and ±Inf are rejected with core.ErrInvalidNumber.
func (m *Matrix4) Set(i, j int, v float64) error {
	if err := validateCell(i, j); err != nil {
		return matrixErrorf(fmt.Sprintf("%s(%d,%d)", opSet, i, j), err)
	}
	if err := validateFinite(v); err != nil {
		return matrixErrorf(fmt.Sprintf("%s(%d,%d)", opSet, i, j), err)
	}
	m[i][j] = v

	return nil
}

// Row returns a copy of row i.
func (m Matrix4) Row(i int) ([core.Size]float64, error) {
	if err := validateIndex(i); err != nil {
		return [core.Size]float64{}, matrixErrorf(fmt.Sprintf("%s(%d)", opRow, i), err)
	}

	return m[i], nil
}

// Column returns a copy of column j.
func (m Matrix4) Column(j int) ([core.Size]float64, error) {
	if err := validateIndex(j); err != nil {
		return [core.Size]float64{}, matrixErrorf(fmt.Sprintf("%s(%d)", opColumn, j), err)
	}

	return [core.Size]float64{m[0][j], m[1][j], m[2][j], m[3][j]}, nil
}

// AllClose reports whether |a[i][j] - b[i][j]| <= tol for every cell.
// Complexity: O(16).
func AllClose(a, b Matrix4, tol float64) bool {
	for i := 0; i < core.Size; i++ {
		for j := 0; j < core.Size; j++ {
			if math.Abs(a[i][j]-b[i][j]) > tol {
				return false
			}
		}
	}

	return true
}

// String renders m one row per line.
func (m Matrix4) String() string {
	var sb strings.Builder
	for i, row := range m {
		if i > 0 {
			sb.WriteByte('\n')
		}
		fmt.Fprintf(&sb, "[%g %g %g %g]", row[0], row[1], row[2], row[3])
	}

	return sb.String()
}
