// SPDX-License-Identifier: MIT

package harness

import (
	"fmt"
	"time"
)

// Status is the outcome of one module.
type Status string

const (
	StatusOK     Status = "OK"
	StatusFailed Status = "FAILED"
)

// ModuleResult records the outcome of one RegisterModule call.
type ModuleResult struct {
	Name    string
	Status  Status
	Cases   int           // test cases attempted, including the failing one
	Elapsed time.Duration // wall time of Initialize, Run and Success
	Err     error         // nil when Status == StatusOK
}

// Report accumulates module outcomes for one Runner.
type Report struct {
	Passed   int
	Failed   int
	Modules  []ModuleResult
	Warnings []string
}

// OK reports whether at least one module ran and none failed.
func (r Report) OK() bool {
	return r.Passed > 0 && r.Failed == 0
}

// Total is the number of modules run.
func (r Report) Total() int {
	return r.Passed + r.Failed
}

// Summary returns the one-line verdict printed by Complete.
func (r Report) Summary() string {
	switch {
	case r.OK():
		return fmt.Sprintf("All %d test modules passed", r.Passed)
	case r.Total() > 0:
		return "SOME TESTS FAILED"
	default:
		return "No test modules were run!"
	}
}

// clone returns a copy whose slices do not alias r's.
func (r Report) clone() Report {
	out := r
	out.Modules = append([]ModuleResult(nil), r.Modules...)
	out.Warnings = append([]string(nil), r.Warnings...)

	return out
}
