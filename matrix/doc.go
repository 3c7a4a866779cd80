// SPDX-License-Identifier: MIT

// Package matrix implements Matrix4, a 4×4 row-major transform matrix for
// homogeneous coordinates, together with the builders that compose affine
// transforms onto it.
//
// Storage & conventions:
//   - Matrix4 is a value type: [4][4]float64, m[i][j] is row i, column j.
//   - Vectors are columns: Transform computes m·v.
//   - The zero value is the zero matrix; Identity() and New() return identity.
//
// Composition order:
//   - Builders without a prefix (Scale, Translate, XRotate, Rotate, LookAt)
//     right-multiply: m = m·E. The last builder applied is the first one to
//     act on a transformed vector.
//   - Builders with the R prefix left-multiply by the inverse elementary
//     matrix: m = E⁻¹·m. Replaying a chain of builders as R-builders in the
//     same order yields the inverse transform without a general inversion.
//
// For example:
//
//	m := matrix.Identity()
//	m.ZRotate(35).Translate(vector.XYZ(25, 4, 5))
//	inv := matrix.Identity()
//	inv.RZRotate(35).RTranslate(vector.XYZ(25, 4, 5))
//
// Kernels:
//   - Every builder touches only the part of the elementary matrix that
//     differs from identity: the translation column (mul1/rmul1), the 2×2
//     block (mul2/rmul2) or the 3×3 block (mul3/rmul3). Mul and RMul use
//     the full 4×4 kernel (mul4). Each shaped kernel produces exactly the
//     same numbers as mul4 for operands of its shape.
//
// Errors:
//   - Sentinels live in package core (ErrInvalidArgument, ErrInvalidNumber,
//     ErrDivisionByZero, ErrZeroLengthVector, ErrSingularMatrix,
//     ErrIndexOutOfRange) and are wrapped with the operation name.
//     Methods that fail leave the receiver unchanged.
//
// Pure API:
//   - Package functions (Scale, Translate, Rotate, Inverse, Transform, …)
//     coerce a loosely typed matrix operand via From, work on a copy and
//     never mutate their inputs.
package matrix
