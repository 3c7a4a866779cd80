// SPDX-License-Identifier: MIT
// Package harness: module runner.
//
// Lifecycle of RegisterModule:
//   - Stage 1: a fresh *Case is created for the module.
//   - Stage 2: Initialize (optional), then Run. The first error or panic stops the module.
//   - Stage 3: Success on a clean run (a panic there still fails the module),
//     otherwise Failure with the error.
//   - Stage 4: Cleanup (optional), always.
//
// Determinism:
//   - Modules run synchronously in registration order; the Runner is not
//     safe for concurrent use, but independent Runners share nothing.

package harness

import (
	"fmt"
	"log/slog"
	"reflect"
	"time"

	"github.com/google/go-cmp/cmp"
)

// Module is the set of hooks of one test module. Only Run is required.
type Module struct {
	Initialize func(c *Case) error
	Run        func(c *Case) error
	Success    func(c *Case)
	Failure    func(c *Case, err error)
	Cleanup    func(c *Case)
}

// Runner executes modules and accumulates a Report.
type Runner struct {
	opts   options
	names  map[string]struct{}
	report Report
}

// NewRunner returns a Runner configured by opts.
func NewRunner(opts ...Option) *Runner {
	return &Runner{
		opts:  gatherOptions(opts...),
		names: make(map[string]struct{}),
	}
}

// Logger returns the logger the Runner reports to.
func (r *Runner) Logger() *slog.Logger { return r.opts.logger }

// RegisterModule runs def immediately under name and reports whether it passed.
func (r *Runner) RegisterModule(name string, def Module) bool {
	c := &Case{runner: r, module: name}
	start := time.Now()
	err := r.runModule(c, def)
	res := ModuleResult{
		Name:    name,
		Cases:   c.cases,
		Elapsed: time.Since(start),
		Err:     err,
	}

	if err == nil {
		res.Status = StatusOK
		r.report.Passed++
		r.opts.logger.Info("module", "name", name, "status", res.Status, "cases", res.Cases, "elapsed", res.Elapsed)
	} else {
		res.Status = StatusFailed
		r.report.Failed++
		r.opts.logger.Error("module", "name", name, "status", res.Status, "cases", res.Cases, "err", err)
		if def.Failure != nil {
			r.hook(name, "Failure", func() error { def.Failure(c, err); return nil })
		}
	}
	if def.Cleanup != nil {
		r.hook(name, "Cleanup", func() error { def.Cleanup(c); return nil })
	}
	r.report.Modules = append(r.report.Modules, res)

	return err == nil
}

func (r *Runner) runModule(c *Case, def Module) error {
	if def.Run == nil {
		return fmt.Errorf("module %s: %w", c.module, ErrNoRun)
	}
	if def.Initialize != nil {
		if err := protect(func() error { return def.Initialize(c) }); err != nil {
			return err
		}
	}
	if err := protect(func() error { return def.Run(c) }); err != nil {
		return err
	}
	if def.Success != nil {
		return protect(func() error { def.Success(c); return nil })
	}

	return nil
}

// hook runs a Failure or Cleanup hook; a panic there is logged, not propagated.
func (r *Runner) hook(module, which string, fn func() error) {
	if err := protect(fn); err != nil {
		r.opts.logger.Error("module hook", "name", module, "hook", which, "err", err)
	}
}

// Complete logs the summary and returns a snapshot of the report.
func (r *Runner) Complete() Report {
	rep := r.report.clone()
	switch {
	case rep.OK():
		r.opts.logger.Info(rep.Summary(), "passed", rep.Passed)
	case rep.Total() > 0:
		r.opts.logger.Error(rep.Summary(), "passed", rep.Passed, "failed", rep.Failed)
	default:
		r.opts.logger.Warn(rep.Summary())
	}

	return rep
}

// Reset clears the report and the set of seen test names.
func (r *Runner) Reset() {
	r.report = Report{}
	r.names = make(map[string]struct{})
}

// noteName records a test name, warning on duplicates.
func (r *Runner) noteName(name string) {
	if _, dup := r.names[name]; dup {
		r.report.Warnings = append(r.report.Warnings, "duplicate test name "+name)
		r.opts.logger.Warn("duplicate test name", "name", name)
		return
	}
	r.names[name] = struct{}{}
}

// Case is the per-module context handed to every hook.
type Case struct {
	runner *Runner
	module string
	cases  int
	values map[string]any
}

// Module returns the module name.
func (c *Case) Module() string { return c.module }

// Set stores a value for later hooks of the same module.
func (c *Case) Set(key string, v any) {
	if c.values == nil {
		c.values = make(map[string]any)
	}
	c.values[key] = v
}

// Get returns a value stored with Set, or nil.
func (c *Case) Get(key string) any { return c.values[key] }

// AssertEqual runs thunk and compares its result with the expectation using
// IsEqual under the Runner's tolerance.
//
// The expectation defaults to true (so a thunk returning a boolean is an
// assertion); a single value is used as is; several values are compared as
// a sequence.
//
// Errors:
//   - ErrCaseFailed when thunk returns an error or panics;
//   - ErrMismatch when the result differs, with both values and a diff.
func (c *Case) AssertEqual(name string, thunk func() (any, error), expected ...any) error {
	c.runner.noteName(name)
	c.cases++

	var want any = true
	switch len(expected) {
	case 0:
	case 1:
		want = expected[0]
	default:
		want = expected
	}

	var got any
	err := protect(func() error {
		var err error
		got, err = thunk()
		return err
	})
	if err != nil {
		return fmt.Errorf("%w: test case %s failed with: %w", ErrCaseFailed, name, err)
	}

	if !IsEqual(want, got, c.runner.opts.tol) {
		msg := fmt.Sprintf("test case %s returned %s while %s was expected", name, Format(got), Format(want))
		if d := diff(want, got); d != "" {
			msg += "\n(-want +got):\n" + d
		}
		return fmt.Errorf("%w: %s", ErrMismatch, msg)
	}

	return nil
}

// Assert fails with ErrMismatch when ok is false.
func (c *Case) Assert(name string, ok bool) error {
	return c.AssertEqual(name, func() (any, error) { return ok, nil })
}

// protect runs fn, converting a panic into ErrModulePanic.
func protect(fn func() error) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("%w: %v", ErrModulePanic, p)
		}
	}()

	return fn()
}

// diff renders a structural diff when both values share a type.
func diff(want, got any) (out string) {
	if want == nil || got == nil || reflect.TypeOf(want) != reflect.TypeOf(got) {
		return ""
	}
	defer func() {
		if recover() != nil {
			out = ""
		}
	}()

	return cmp.Diff(want, got, cmp.Exporter(func(reflect.Type) bool { return true }))
}

