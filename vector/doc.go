// SPDX-License-Identifier: MIT

// Package vector implements Vector4, a homogeneous point in 3D space.
//
// A Vector4 always leaves construction with W == 1: when a caller supplies
// a fourth component, x, y and z are divided by it. A w within core.Epsilon
// of zero describes a point at infinity and is rejected with
// core.ErrDivisionByZero.
//
// Two API flavours are provided:
//
//   - Methods on *Vector4 mutate the receiver and return it, so calls chain.
//   - Package functions (Add, Sub, Cross, …) accept loosely typed operands
//     (a Vector4, a slice or array of up to four scalars, or a map with
//     "x", "y", "z" and optional "w" keys), coerce them through From and
//     return a fresh Vector4. Inputs are never mutated.
//
// Chaining in place:
//
//	v := vector.XYZ(1, 2, 3)
//	v.Add(vector.XYZ(1, 1, 1)).Mul(2)
//
// Errors are the sentinels of package core wrapped with the operation name,
// so callers match them with errors.Is:
//
//	if _, err := vector.Normalize(v); errors.Is(err, core.ErrZeroLengthVector) { … }
//
// Dot keeps its historical meaning of a component-wise product returning a
// vector; Inner is the scalar dot product.
package vector
