// SPDX-License-Identifier: MIT

// Package harness is a small module/test-case runner with deep,
// type-coercing equality.
//
// A Runner executes modules one at a time. Each module gets a fresh *Case,
// runs its test cases through Case.AssertEqual and reports success or
// failure; the first failing case aborts the module. The Runner keeps its
// own Report, so independent runners never share state.
//
//	r := harness.NewRunner(harness.WithLogger(logger))
//	r.RegisterModule("vector.add", harness.Module{
//		Run: func(c *harness.Case) error {
//			return c.AssertEqual("add-111", func() (any, error) {
//				v, err := vector.Add([]int{1, 2, 3}, []int{10, 20, 30})
//				return v.Components(), err
//			}, []int{11, 22, 33, 1})
//		},
//	})
//	report := r.Complete()
//
// Equality follows IsEqual: numbers match within a relative tolerance,
// numbers and strings compare through formatting, a boolean expectation
// matches the truthiness of the result, and sequences, maps and structs are
// compared deeply in both directions.
package harness
