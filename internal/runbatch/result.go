// Copyright (c) LinhMuks-DFox 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package runbatch

// Result represents the outcome of running one external process.
type Result struct {
	Label    string // Label of the command
	ExitCode int    // Exit code of the process
	StdOut   []byte // Captured standard output
	StdErr   []byte // Captured standard error
	Error    error  // Error starting or reading the process, if any
}

// Ok reports whether the process started, finished and exited zero.
func (r *Result) Ok() bool {
	return r.Error == nil && r.ExitCode == 0
}

// Results is a slice of Result pointers.
type Results []*Result

// HasError reports whether any result represents a failure.
func (r Results) HasError() bool {
	for _, v := range r {
		if !v.Ok() {
			return true
		}
	}

	return false
}
