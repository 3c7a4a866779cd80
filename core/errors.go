// SPDX-License-Identifier: MIT
// Package core: sentinel error set shared by vector and matrix.
// Algorithms MUST return these sentinels (optionally wrapped with an
// operation tag via fmt.Errorf("Op: %w", ErrX)) and tests MUST check them
// via errors.Is. User-triggered conditions never panic.

package core

import "errors"

var (
	// ErrInvalidArgument indicates an input of the wrong arity, shape or type,
	// e.g. a boolean where a number is expected or a 5-element sequence
	// where a vector is expected.
	ErrInvalidArgument = errors.New("vecmat: invalid argument")

	// ErrInvalidNumber indicates a value that cannot be read as a finite
	// number: malformed strings ("12x"), NaN or ±Inf.
	ErrInvalidNumber = errors.New("vecmat: invalid number")

	// ErrDivisionByZero indicates a divisor within Epsilon of zero. The same
	// sentinel covers homogeneous w-normalization of a point at infinity.
	ErrDivisionByZero = errors.New("vecmat: division by zero")

	// ErrZeroLengthVector indicates normalization of a vector whose length
	// is within Epsilon of zero.
	ErrZeroLengthVector = errors.New("vecmat: zero-length vector")

	// ErrSingularMatrix indicates an inverse was requested for a matrix
	// whose determinant is within Epsilon of zero.
	ErrSingularMatrix = errors.New("vecmat: singular matrix")

	// ErrIndexOutOfRange indicates a component, row or column index outside 0..3.
	ErrIndexOutOfRange = errors.New("vecmat: index out of range")
)
