// SPDX-License-Identifier: MIT
// Package matrix: operation tags for error wrapping.
// The sentinel set itself is shared with package vector and lives in core.

package matrix

import "fmt"

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opNew         = "New"
	opFrom        = "From"
	opAt          = "At"
	opSet         = "Set"
	opRow         = "Row"
	opColumn      = "Column"
	opScale       = "Scale"
	opRScale      = "RScale"
	opTranslate   = "Translate"
	opRTranslate  = "RTranslate"
	opXRotate     = "XRotate"
	opYRotate     = "YRotate"
	opZRotate     = "ZRotate"
	opRXRotate    = "RXRotate"
	opRYRotate    = "RYRotate"
	opRZRotate    = "RZRotate"
	opRotate      = "Rotate"
	opRRotate     = "RRotate"
	opLookAt      = "LookAt"
	opTranspose   = "Transpose"
	opInverse     = "Inverse"
	opDeterminant = "Determinant"
	opMul         = "Mul"
	opRMul        = "RMul"
	opTransform   = "Transform"
	opProject     = "Project"
)

// matrixErrorf wraps err with an operation tag, keeping err matchable with errors.Is.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
