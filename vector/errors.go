// SPDX-License-Identifier: MIT

package vector

import "fmt"

// Operation name constants for unified error wrapping.
const (
	opNew          = "New"
	opFrom         = "From"
	opHomogeneous  = "Homogeneous"
	opCells        = "Cells"
	opGet          = "Get"
	opSet          = "Set"
	opAdd          = "Add"
	opSub          = "Sub"
	opMul          = "Mul"
	opDiv          = "Div"
	opLength       = "Length"
	opNormalize    = "Normalize"
	opNeg          = "Neg"
	opCross        = "Cross"
	opDot          = "Dot"
	opDehomogenize = "Dehomogenize"
)

// vectorErrorf wraps err with an operation tag, preserving it for errors.Is.
// Call only with a non-nil err.
func vectorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
