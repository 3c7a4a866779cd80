// SPDX-License-Identifier: MIT
// Package harness: deep, type-coercing equality.
//
// Values are first sorted into classes (nil, bool, number, string, sequence,
// record, func) after pointers and interfaces are dereferenced. Comparison
// then depends on the class of the left operand:
//
//	bool     vs any non-func   → left == truthiness(right)
//	number   vs number         → relative tolerance, both finite
//	number   vs string         → formatted number == string (and vice versa)
//	sequence vs sequence       → same length, elements equal both ways
//	record   vs record         → same key set, values equal both ways
//	func     vs func           → same function pointer
//	nil      vs nil            → true
//
// Every other pairing is unequal. Maps with any key type and structs
// (exported fields only) are records; slices and arrays are sequences.

package harness

import (
	"fmt"
	"math"
	"reflect"
)

// truthEpsilon is the magnitude below which a number is falsy.
const truthEpsilon = 1e-6

type class int

const (
	classNil class = iota
	classBool
	classNumber
	classString
	classSequence
	classRecord
	classFunc
	classOther
)

// IsEqual reports whether a and b are equal under the coercion rules of
// this package. a is the expectation: only a boolean on the left coerces
// the right-hand side to its truthiness.
//
// Complexity: O(size of the smaller structure) plus key sorting for records.
func IsEqual(a, b any, tol float64) bool {
	return equalValues(reflect.ValueOf(a), reflect.ValueOf(b), tol)
}

// classify dereferences pointers and interfaces and returns the class of rv.
func classify(rv reflect.Value) (reflect.Value, class) {
	for rv.IsValid() && (rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface) {
		if rv.IsNil() {
			return reflect.Value{}, classNil
		}
		rv = rv.Elem()
	}
	if !rv.IsValid() {
		return rv, classNil
	}

	switch rv.Kind() {
	case reflect.Bool:
		return rv, classBool
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return rv, classNumber
	case reflect.String:
		return rv, classString
	case reflect.Slice, reflect.Array:
		return rv, classSequence
	case reflect.Map, reflect.Struct:
		return rv, classRecord
	case reflect.Func:
		if rv.IsNil() {
			return reflect.Value{}, classNil
		}
		return rv, classFunc
	default:
		return rv, classOther
	}
}

func numberOf(rv reflect.Value) float64 {
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint())
	default:
		return rv.Float()
	}
}

// recordOf flattens a map or struct into name → value.
func recordOf(rv reflect.Value) map[string]reflect.Value {
	out := make(map[string]reflect.Value)
	if rv.Kind() == reflect.Map {
		iter := rv.MapRange()
		for iter.Next() {
			out[fmt.Sprint(iter.Key())] = iter.Value()
		}
		return out
	}
	t := rv.Type()
	for i := 0; i < t.NumField(); i++ {
		if f := t.Field(i); f.IsExported() {
			out[f.Name] = rv.Field(i)
		}
	}

	return out
}

func numbersEqual(x, y, tol float64) bool {
	if math.IsNaN(x) || math.IsInf(x, 0) || math.IsNaN(y) || math.IsInf(y, 0) {
		return false
	}
	q := math.Max(math.Max(math.Abs(x), math.Abs(y)), 1)

	return math.Abs(x-y) < q*tol
}

// truthy coerces any value to a boolean.
func truthy(rv reflect.Value, c class) bool {
	switch c {
	case classBool:
		return rv.Bool()
	case classNumber:
		return math.Abs(numberOf(rv)) >= truthEpsilon
	case classString:
		switch rv.String() {
		case "", "false", "0":
			return false
		}
		return true
	case classSequence:
		return rv.Len() > 0
	case classRecord:
		return len(recordOf(rv)) > 0
	case classFunc:
		return true
	default:
		return false
	}
}

func equalValues(a, b reflect.Value, tol float64) bool {
	a, ca := classify(a)
	b, cb := classify(b)

	switch ca {
	case classNil:
		return cb == classNil
	case classBool:
		if cb == classFunc || cb == classOther {
			return false
		}
		return a.Bool() == truthy(b, cb)
	case classNumber:
		switch cb {
		case classNumber:
			return numbersEqual(numberOf(a), numberOf(b), tol)
		case classString:
			return formatNumber(numberOf(a)) == b.String()
		}
	case classString:
		switch cb {
		case classString:
			return a.String() == b.String()
		case classNumber:
			return a.String() == formatNumber(numberOf(b))
		}
	case classSequence:
		if cb != classSequence || a.Len() != b.Len() {
			return false
		}
		for i := 0; i < a.Len(); i++ {
			if !equalValues(a.Index(i), b.Index(i), tol) || !equalValues(b.Index(i), a.Index(i), tol) {
				return false
			}
		}
		return true
	case classRecord:
		if cb != classRecord {
			return false
		}
		ra, rb := recordOf(a), recordOf(b)
		if len(ra) != len(rb) {
			return false
		}
		for k, va := range ra {
			vb, ok := rb[k]
			if !ok || !equalValues(va, vb, tol) || !equalValues(vb, va, tol) {
				return false
			}
		}
		return true
	case classFunc:
		return cb == classFunc && a.Pointer() == b.Pointer()
	}

	return false
}
