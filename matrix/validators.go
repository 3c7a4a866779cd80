// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Single source of truth for index, factor and value checks.
//   - Return plain sentinels (no wrapping) so call sites wrap uniformly.

package matrix

import (
	"github.com/katalvlaran/vecmat/core"
)

// validateIndex ensures 0 <= i < 4.
func validateIndex(i int) error {
	if i < 0 || i >= core.Size {
		return core.ErrIndexOutOfRange
	}

	return nil
}

// validateCell ensures both (i, j) are in range.
func validateCell(i, j int) error {
	if err := validateIndex(i); err != nil {
		return err
	}

	return validateIndex(j)
}

// validateFinite rejects NaN and ±Inf.
func validateFinite(v float64) error {
	if !core.IsFinite(v) {
		return core.ErrInvalidNumber
	}

	return nil
}

// validateDivisor rejects factors within core.Epsilon of zero.
func validateDivisor(f float64) error {
	if core.IsZero(f) {
		return core.ErrDivisionByZero
	}

	return nil
}
