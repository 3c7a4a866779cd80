// SPDX-License-Identifier: MIT

package vector

import (
	"fmt"
	"math"

	"github.com/katalvlaran/vecmat/core"
)

// Vector4 is a point in homogeneous coordinates.
// The zero value is NOT the origin (its W is 0); use Zero or XYZ.
type Vector4 struct {
	X, Y, Z, W float64
}

// Zero returns the origin (0, 0, 0, 1).
func Zero() Vector4 {
	return Vector4{W: 1}
}

// XYZ returns the affine point (x, y, z, 1).
func XYZ(x, y, z float64) Vector4 {
	return Vector4{X: x, Y: y, Z: z, W: 1}
}

// Homogeneous returns (x/w, y/w, z/w, 1).
// Fails with core.ErrDivisionByZero when |w| <= core.Epsilon.
func Homogeneous(x, y, z, w float64) (Vector4, error) {
	return point(opHomogeneous, [core.Size]float64{x, y, z, w})
}

// Components returns the indexable view [X, Y, Z, W].
func (v Vector4) Components() [core.Size]float64 {
	return [core.Size]float64{v.X, v.Y, v.Z, v.W}
}

// Get returns component i (0=X, 1=Y, 2=Z, 3=W).
func (v Vector4) Get(i int) (float64, error) {
	if err := validateIndex(i); err != nil {
		return 0, vectorErrorf(opGet, err)
	}

	return v.Components()[i], nil
}

// Set assigns component i (0=X, 1=Y, 2=Z, 3=W).
// Setting W does not renormalize; call Dehomogenize for that.
func (v *Vector4) Set(i int, f float64) error {
	if err := validateIndex(i); err != nil {
		return vectorErrorf(opSet, err)
	}
	switch i {
	case 0:
		v.X = f
	case 1:
		v.Y = f
	case 2:
		v.Z = f
	default:
		v.W = f
	}

	return nil
}

// Clone returns an independent copy of v.
func (v Vector4) Clone() Vector4 { return v }

// Dup is an alias of Clone.
func (v Vector4) Dup() Vector4 { return v }

// ApproxEqual reports whether every component of v and b differs by at most tol.
func (v Vector4) ApproxEqual(b Vector4, tol float64) bool {
	return math.Abs(v.X-b.X) <= tol &&
		math.Abs(v.Y-b.Y) <= tol &&
		math.Abs(v.Z-b.Z) <= tol &&
		math.Abs(v.W-b.W) <= tol
}

// String implements fmt.Stringer.
func (v Vector4) String() string {
	return fmt.Sprintf("Vector4(%g, %g, %g, %g)", v.X, v.Y, v.Z, v.W)
}

func validateIndex(i int) error {
	if i < 0 || i >= core.Size {
		return core.ErrIndexOutOfRange
	}

	return nil
}
