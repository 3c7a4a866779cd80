// Package core holds the numeric policy shared by the vector and matrix
// packages: the single tolerance used for near-zero decisions, the sentinel
// error taxonomy, and scalar coercion of loosely typed inputs.
//
// Numeric policy:
//
//   - Epsilon (1e-6) is the one tolerance of the library. A value x is
//     treated as zero when |x| <= Epsilon. Division, normalization,
//     homogeneous w-normalization and matrix inversion all share it.
//   - ParseFloat is the only place where an untyped scalar becomes a
//     float64. Numbers of any Go numeric kind pass through, strings must
//     look like a plain decimal ("12", "-3.5"), anything else is rejected.
//
// Errors:
//
//	ErrInvalidArgument  - wrong arity, shape or type of an input.
//	ErrInvalidNumber    - value is not parseable as a finite number.
//	ErrDivisionByZero   - divisor (or w component) is within Epsilon of zero.
//	ErrZeroLengthVector - normalization of a vector shorter than Epsilon.
//	ErrSingularMatrix   - inverse of a matrix with |det| <= Epsilon.
//	ErrIndexOutOfRange  - row/column/component index outside 0..3.
//
// All sentinels are returned wrapped with an operation tag; match them
// with errors.Is.
package core
