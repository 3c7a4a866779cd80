// SPDX-License-Identifier: MIT

package harness_test

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/katalvlaran/vecmat/harness"
	"github.com/katalvlaran/vecmat/matrix"
	"github.com/katalvlaran/vecmat/vector"
)

func ExampleRunner() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	r := harness.NewRunner(harness.WithLogger(logger))

	r.RegisterModule("vector.add", harness.Module{
		Run: func(c *harness.Case) error {
			return c.AssertEqual("add-111", func() (any, error) {
				v, err := vector.Add([]int{1, 2, 3}, []int{10, 20, 30})
				return v.Components(), err
			}, []int{11, 22, 33, 1})
		},
	})
	r.RegisterModule("matrix.translate", harness.Module{
		Run: func(c *harness.Case) error {
			return c.AssertEqual("translate-120", func() (any, error) {
				v, err := matrix.Transform([][]int{{1, 0, 0, 5}}, []int{1, 2, 3})
				return v.Components(), err
			}, 6, 2, 3, 1)
		},
	})

	report := r.Complete()
	fmt.Println(report.Summary())
	// Output: All 2 test modules passed
}

func ExampleIsEqual() {
	fmt.Println(harness.IsEqual([]int{1, 2}, []any{1.0000000001, "2"}, harness.DefaultTolerance))
	fmt.Println(harness.IsEqual(true, vector.Zero(), harness.DefaultTolerance))
	fmt.Println(harness.Format(map[string]any{"b": []int{1, 2}, "a": "x"}))
	// Output:
	// true
	// true
	// { a:"x", b:[ 1, 2 ] }
}
