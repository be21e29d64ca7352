// Copyright (c) LinhMuks-DFox 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package runbatch executes external build tools one at a time and captures
// their output and exit status.
package runbatch

import (
	"context"
	"errors"
	"os/exec"

	"github.com/LinhMuks-DFox/Smart-Latex/internal/ctxlog"
)

// maxCaptureSize bounds how much of each output stream is retained.
const maxCaptureSize = 8 * 1024 * 1024 // 8MB

// ErrCouldNotStartProcess is returned when the process could not be started.
var ErrCouldNotStartProcess = errors.New("could not start process")

// OSCommand is a single external command. The executable and its arguments
// are passed to the operating system directly; no shell is involved, so
// document and template names cannot be interpreted as shell syntax.
type OSCommand struct {
	Label string   // Human-readable description of the step
	Path  string   // Executable name or path
	Args  []string // Arguments, not including the executable itself
	Cwd   string   // Working directory for the process
}

// Run executes the command and blocks until it exits, capturing stdout and
// stderr. A nonzero exit is a normal, representable result, not an error of
// the runner. The context is used for logging only: a started process is
// never killed, so a hung tool hangs the runner.
func (c *OSCommand) Run(ctx context.Context) *Result {
	logger := ctxlog.Logger(ctx).With("label", c.Label)
	logger.Debug("command info", "path", c.Path, "cwd", c.Cwd, "args", c.Args)

	res := &Result{Label: c.Label}

	stdout := newBoundedBuffer(maxCaptureSize)
	stderr := newBoundedBuffer(maxCaptureSize)

	cmd := exec.Command(c.Path, c.Args...)
	cmd.Dir = c.Cwd
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	err := cmd.Run()

	res.StdOut = stdout.Bytes()
	res.StdErr = stderr.Bytes()

	var exitErr *exec.ExitError

	switch {
	case err == nil:
		res.ExitCode = 0
	case errors.As(err, &exitErr):
		res.ExitCode = exitErr.ExitCode()
	default:
		res.ExitCode = -1
		res.Error = errors.Join(ErrCouldNotStartProcess, err)
	}

	logger.Debug("process finished", "exitCode", res.ExitCode, "stdoutBytes", len(res.StdOut), "stderrBytes", len(res.StdErr))

	return res
}
