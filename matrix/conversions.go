// SPDX-License-Identifier: MIT
// Package matrix: boundary coercion of loosely typed matrix operands.
//
// Row rules:
//   - Row i that is not supplied stays identity row i.
//   - A supplied row is read with vector.Cells, missing cells falling back to
//     identity row i: zero-padded except its diagonal, which stays 1.
//   - Rows are NOT w-normalized; a row [41, 42, 43, 44] is stored as is.

package matrix

import (
	"fmt"
	"reflect"

	"github.com/katalvlaran/vecmat/core"
	"github.com/katalvlaran/vecmat/vector"
)

// New builds a Matrix4.
//
//   - New()       → identity;
//   - New(src)    → From(src).
//
// More than one argument fails with core.ErrInvalidArgument.
func New(args ...any) (Matrix4, error) {
	switch len(args) {
	case 0:
		return Identity(), nil
	case 1:
		return From(args[0])
	default:
		return Matrix4{}, matrixErrorf(fmt.Sprintf("%s(%d args)", opNew, len(args)), core.ErrInvalidArgument)
	}
}

// From coerces a single operand into a Matrix4.
//
// Accepted inputs:
//   - Matrix4 or non-nil *Matrix4 (deep copy);
//   - a slice or array of 0–4 rows, each row a slice/array of 0–4 scalars,
//     a Vector4 or a record with "x", "y", "z", "w" keys.
//
// Errors:
//   - core.ErrInvalidArgument for any other shape (nil, scalars, >4 rows);
//   - core.ErrInvalidNumber / core.ErrInvalidArgument from cell coercion.
//
// Complexity: O(16) cell reads.
func From(v any) (Matrix4, error) {
	switch t := v.(type) {
	case Matrix4:
		return t, nil
	case *Matrix4:
		if t == nil {
			return Matrix4{}, matrixErrorf(opFrom, core.ErrInvalidArgument)
		}
		return *t, nil
	}

	rv := reflect.ValueOf(v)
	if k := rv.Kind(); k != reflect.Slice && k != reflect.Array {
		return Matrix4{}, matrixErrorf(fmt.Sprintf("%s(%T)", opFrom, v), core.ErrInvalidArgument)
	}
	n := rv.Len()
	if n > core.Size {
		return Matrix4{}, matrixErrorf(fmt.Sprintf("%s(rows=%d)", opFrom, n), core.ErrInvalidArgument)
	}

	out := Identity()
	for i := 0; i < n; i++ {
		row, err := vector.Cells(rv.Index(i).Interface(), out[i])
		if err != nil {
			return Matrix4{}, matrixErrorf(fmt.Sprintf("%s[%d]", opFrom, i), err)
		}
		out[i] = row
	}

	return out, nil
}

// Clone returns a deep copy of any operand From accepts.
func Clone(m any) (Matrix4, error) {
	return From(m)
}

// MustNew is like New but panics on error. Intended for literals in tests
// and examples.
func MustNew(args ...any) Matrix4 {
	m, err := New(args...)
	if err != nil {
		panic(err)
	}

	return m
}
