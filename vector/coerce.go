// SPDX-License-Identifier: MIT
// Package vector: boundary coercion of loosely typed operands.
//
// Purpose:
//   - Turn the open union accepted by the pure API (Vector4, *Vector4,
//     sequences, records, positional scalars) into a concrete Vector4 once,
//     at the boundary. Everything past the boundary works on Vector4 only.
//
// Determinism:
//   - Records are read by fixed key names, never by map iteration order.

package vector

import (
	"fmt"
	"reflect"

	"github.com/katalvlaran/vecmat/core"
)

// recordKeys are the component names read from map operands, by index.
var recordKeys = [core.Size]string{"x", "y", "z", "w"}

// origin is the fill used when reading a point: missing x, y, z are 0 and
// a missing w is 1.
var origin = [core.Size]float64{0, 0, 0, 1}

// New builds a Vector4 from positional arguments.
//
// Accepted forms:
//   - New()              → origin (0, 0, 0, 1);
//   - New(x, y)          → (x, y, 0, 1);
//   - New(x, y, z)       → (x, y, z, 1);
//   - New(x, y, z, w)    → (x/w, y/w, z/w, 1);
//   - New(v)             → From(v) for a single Vector4, sequence or record.
//
// Scalars go through core.ParseFloat. A lone scalar, nil, or more than four
// arguments fail with core.ErrInvalidArgument.
//
// Errors:
//   - core.ErrInvalidArgument, core.ErrInvalidNumber (coercion);
//   - core.ErrDivisionByZero when a supplied w is within core.Epsilon of 0.
func New(args ...any) (Vector4, error) {
	switch len(args) {
	case 0:
		return Zero(), nil
	case 1:
		return From(args[0])
	case 2, 3, 4:
		cells := origin
		for i, a := range args {
			f, err := core.ParseFloat(a)
			if err != nil {
				return Vector4{}, vectorErrorf(opNew, err)
			}
			cells[i] = f
		}

		return point(opNew, cells)
	default:
		return Vector4{}, vectorErrorf(fmt.Sprintf("%s(%d args)", opNew, len(args)), core.ErrInvalidArgument)
	}
}

// From coerces a single operand into a Vector4.
//
// Accepted inputs:
//   - Vector4 or non-nil *Vector4 (copied as is);
//   - a slice or array of 0–4 scalars (missing components default to the origin);
//   - a map with string keys "x", "y", "z" and optional "w" (other keys ignored).
//
// A supplied w other than 1 divides x, y, z. The result always has W == 1,
// except that a Vector4 operand is copied verbatim.
func From(v any) (Vector4, error) {
	switch t := v.(type) {
	case Vector4:
		return t, nil
	case *Vector4:
		if t == nil {
			return Vector4{}, vectorErrorf(opFrom, core.ErrInvalidArgument)
		}
		return *t, nil
	}

	cells, err := Cells(v, origin)
	if err != nil {
		return Vector4{}, vectorErrorf(opFrom, err)
	}

	return point(opFrom, cells)
}

// MustFrom is like From but panics on error. Intended for literals in tests
// and examples.
func MustFrom(v any) Vector4 {
	out, err := From(v)
	if err != nil {
		panic(err)
	}

	return out
}

// Cells reads the raw components of a sequence, record or Vector4 without
// any w-normalization. Components the operand does not supply are taken
// from fill. Package matrix uses it to read rows.
//
// Errors:
//   - core.ErrInvalidArgument for unsupported shapes or sequences longer than 4;
//   - core.ErrInvalidNumber / core.ErrInvalidArgument for bad scalars.
func Cells(v any, fill [core.Size]float64) ([core.Size]float64, error) {
	switch t := v.(type) {
	case Vector4:
		return t.Components(), nil
	case *Vector4:
		if t != nil {
			return t.Components(), nil
		}
		return fill, vectorErrorf(opCells, core.ErrInvalidArgument)
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return sequenceCells(rv, fill)
	case reflect.Map:
		return recordCells(rv, fill)
	default:
		return fill, vectorErrorf(fmt.Sprintf("%s(%T)", opCells, v), core.ErrInvalidArgument)
	}
}

func sequenceCells(rv reflect.Value, fill [core.Size]float64) ([core.Size]float64, error) {
	n := rv.Len()
	if n > core.Size {
		return fill, vectorErrorf(fmt.Sprintf("%s(len=%d)", opCells, n), core.ErrInvalidArgument)
	}
	cells := fill
	for i := 0; i < n; i++ {
		f, err := core.ParseFloat(rv.Index(i).Interface())
		if err != nil {
			return fill, vectorErrorf(fmt.Sprintf("%s[%d]", opCells, i), err)
		}
		cells[i] = f
	}

	return cells, nil
}

func recordCells(rv reflect.Value, fill [core.Size]float64) ([core.Size]float64, error) {
	if rv.Type().Key().Kind() != reflect.String {
		return fill, vectorErrorf(fmt.Sprintf("%s(%s)", opCells, rv.Type()), core.ErrInvalidArgument)
	}
	cells := fill
	for i, key := range recordKeys {
		val := rv.MapIndex(reflect.ValueOf(key).Convert(rv.Type().Key()))
		if !val.IsValid() {
			continue
		}
		f, err := core.ParseFloat(val.Interface())
		if err != nil {
			return fill, vectorErrorf(fmt.Sprintf("%s[%q]", opCells, key), err)
		}
		cells[i] = f
	}

	return cells, nil
}

// point applies the homogeneous rule to raw cells.
func point(tag string, c [core.Size]float64) (Vector4, error) {
	if core.IsZero(c[3]) {
		return Vector4{}, vectorErrorf(tag, core.ErrDivisionByZero)
	}
	if c[3] == 1 {
		return Vector4{X: c[0], Y: c[1], Z: c[2], W: 1}, nil
	}

	return Vector4{X: c[0] / c[3], Y: c[1] / c[3], Z: c[2] / c[3], W: 1}, nil
}
