// SPDX-License-Identifier: MIT
// Package core: numeric policy (tolerance, scalar coercion, angle units).
//
// Purpose:
//   - Keep the one tolerance of the library in a single constant.
//   - Centralize scalar coercion so vector and matrix validate inputs the same way.
//
// Determinism & Performance:
//   - All helpers are pure and allocation-free on the numeric fast path;
//     only the string path touches the regexp.

package core

import (
	"fmt"
	"math"
	"reflect"
	"regexp"
	"strconv"
)

// Epsilon is the tolerance of every near-zero decision in the library:
// |x| <= Epsilon is treated as zero.
const Epsilon = 1e-6

// Size is the number of components of a homogeneous coordinate and the
// order of a transform matrix.
const Size = 4

// decimalPattern accepts plain decimals only: optional sign, digits,
// optional fraction. Exponents, hex, "Inf" and "NaN" are rejected.
var decimalPattern = regexp.MustCompile(`^[+-]?[0-9]+(\.[0-9]+)?$`)

// coreErrorf wraps err with an operation tag, preserving it for errors.Is.
func coreErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// IsZero reports whether |x| <= Epsilon.
// Complexity: O(1).
func IsZero(x float64) bool {
	return math.Abs(x) <= Epsilon
}

// IsFinite reports whether x is neither NaN nor ±Inf.
func IsFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// Radians converts degrees to radians.
func Radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// ParseFloat converts a loosely typed scalar into a finite float64.
//
// Accepted inputs:
//   - any Go integer, unsigned or floating-point kind (named types included);
//   - a string matching ^[+-]?[0-9]+(\.[0-9]+)?$.
//
// Errors:
//   - ErrInvalidNumber for malformed strings and for NaN/±Inf values.
//   - ErrInvalidArgument for every other kind (nil, bool, slices, maps,
//     structs, pointers, …).
//
// Complexity: O(1) for numbers, O(len(s)) for strings.
func ParseFloat(v any) (float64, error) {
	rv := reflect.ValueOf(v)

	var f float64
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		f = float64(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		f = float64(rv.Uint())
	case reflect.Float32, reflect.Float64:
		f = rv.Float()
	case reflect.String:
		return parseDecimal(rv.String())
	default:
		return 0, coreErrorf(fmt.Sprintf("ParseFloat(%T)", v), ErrInvalidArgument)
	}

	if !IsFinite(f) {
		return 0, coreErrorf(fmt.Sprintf("ParseFloat(%v)", f), ErrInvalidNumber)
	}

	return f, nil
}

// parseDecimal validates s against decimalPattern before converting it.
// Strings with too many digits overflow to ±Inf and are rejected as well.
func parseDecimal(s string) (float64, error) {
	if !decimalPattern.MatchString(s) {
		return 0, coreErrorf(fmt.Sprintf("ParseFloat(%q)", s), ErrInvalidNumber)
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || !IsFinite(f) {
		return 0, coreErrorf(fmt.Sprintf("ParseFloat(%q)", s), ErrInvalidNumber)
	}

	return f, nil
}
