// SPDX-License-Identifier: MIT
// Package harness: sentinel error set.
// Callers match these with errors.Is; the wrapped message carries the case
// name and the values involved.

package harness

import "errors"

var (
	// ErrMismatch indicates a test case returned a value that is not IsEqual
	// to the expectation.
	ErrMismatch = errors.New("harness: result mismatch")

	// ErrCaseFailed indicates a test case's thunk returned an error or panicked.
	ErrCaseFailed = errors.New("harness: test case failed")

	// ErrModulePanic indicates a module hook panicked outside a test case.
	ErrModulePanic = errors.New("harness: module panicked")

	// ErrNoRun indicates a module was registered without a Run hook.
	ErrNoRun = errors.New("harness: module has no Run hook")
)
