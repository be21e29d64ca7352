// Copyright (c) LinhMuks-DFox 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package signalbroker

import (
	"context"
	"os"

	"github.com/LinhMuks-DFox/Smart-Latex/internal/ctxlog"
)

const forcedExitCode = 130

// exit allows tests to intercept the forced exit path.
var exit = os.Exit

// Watch monitors the signal channel. The first signal cancels the context so
// that any in-flight build is allowed to finish; a second signal of the same
// type terminates the process immediately.
func Watch(ctx context.Context, sigCh chan os.Signal, cancel context.CancelFunc) {
	seen := make(map[os.Signal]struct{})

	for sig := range sigCh {
		if _, ok := seen[sig]; ok {
			ctxlog.Logger(ctx).Warn("watchdog", "detail", "received second signal of type, forcefully terminating", "signal", sig.String())
			exit(forcedExitCode)

			return
		}

		seen[sig] = struct{}{}

		ctxlog.Logger(ctx).Info("watchdog", "detail", "received signal, stopping after current build", "signal", sig.String())
		cancel()
	}
}
