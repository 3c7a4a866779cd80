// SPDX-License-Identifier: MIT

package harness

import (
	"fmt"
	"math"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"
)

const (
	maxDepth    = 10  // deeper structures render as empty
	maxCompound = 100 // sequences and records are cut with "..." past this width
	maxString   = 50  // nested strings longer than this are shortened
)

// Format renders v for failure messages: numbers in their shortest form,
// sequences as "[ a, b ]", records as "{ k:v }" with sorted keys, nil as
// "null". Records implementing fmt.Stringer use their String method.
func Format(v any) string {
	return format(reflect.ValueOf(v), 0)
}

// formatNumber prints integers without a fraction and switches to
// exponent notation outside [1e-6, 1e21).
func formatNumber(x float64) string {
	if a := math.Abs(x); a == 0 || (a >= 1e-6 && a < 1e21) {
		return strconv.FormatFloat(x, 'f', -1, 64)
	}

	return strconv.FormatFloat(x, 'g', -1, 64)
}

func format(rv reflect.Value, level int) string {
	orig := rv
	rv, c := classify(rv)

	switch c {
	case classNil:
		return "null"
	case classBool:
		return strconv.FormatBool(rv.Bool())
	case classNumber:
		return formatNumber(numberOf(rv))
	case classString:
		s := rv.String()
		if level == 0 {
			return s
		}
		if utf8.RuneCountInString(s) >= maxString {
			s = string([]rune(s)[:maxString-3]) + "..."
		}
		return `"` + s + `"`
	case classSequence:
		parts := make([]string, 0, rv.Len())
		if level < maxDepth {
			for i := 0; i < rv.Len(); i++ {
				parts = append(parts, format(rv.Index(i), level+1))
			}
		}
		return compound("[", parts, "]")
	case classRecord:
		if s, ok := stringer(orig); ok {
			return s
		}
		rec := recordOf(rv)
		keys := make([]string, 0, len(rec))
		for k := range rec {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		parts := make([]string, 0, len(keys))
		if level < maxDepth {
			for _, k := range keys {
				parts = append(parts, k+":"+format(rec[k], level+1))
			}
		}
		return compound("{", parts, "}")
	case classFunc:
		return "function"
	default:
		return fmt.Sprint(rv)
	}
}

func compound(open string, parts []string, closing string) string {
	if len(parts) == 0 {
		return open + closing
	}
	var sb strings.Builder
	for i, p := range parts {
		if i > 0 {
			if sb.Len()+len(p) >= maxCompound {
				sb.WriteString(", ...")
				break
			}
			sb.WriteString(", ")
		}
		sb.WriteString(p)
	}

	return open + " " + sb.String() + " " + closing
}

func stringer(rv reflect.Value) (string, bool) {
	if !rv.IsValid() || !rv.CanInterface() {
		return "", false
	}
	if s, ok := rv.Interface().(fmt.Stringer); ok {
		return s.String(), true
	}

	return "", false
}
