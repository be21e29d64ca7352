// Copyright (c) LinhMuks-DFox 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package watch

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/LinhMuks-DFox/Smart-Latex/internal/builder"
	"github.com/LinhMuks-DFox/Smart-Latex/internal/color"
	"github.com/LinhMuks-DFox/Smart-Latex/internal/ctxlog"
	"github.com/LinhMuks-DFox/Smart-Latex/internal/pdfmake"
	"github.com/LinhMuks-DFox/Smart-Latex/internal/watcher"
	"github.com/urfave/cli/v3"
)

const (
	targetArg      = "target"
	outputFlag     = "output"
	cleanFirstFlag = "clean-first"
	verboseFlag    = "verbose"
)

// WatchCmd rebuilds the target whenever its source files change.
var WatchCmd = &cli.Command{
	Name:        "watch",
	Description: "Build the target, then rebuild automatically on file changes.",
	Arguments: []cli.Argument{
		&cli.StringArg{
			Name:      targetArg,
			UsageText: "[TARGET]",
			Config: cli.StringConfig{
				TrimSpace: true,
			},
		},
	},
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    outputFlag,
			Aliases: []string{"o"},
			Usage:   "Rename the final PDF (single document only)",
		},
		&cli.BoolFlag{
			Name:    cleanFirstFlag,
			Aliases: []string{"cb"},
			Usage:   "Remove auxiliary files before every build",
		},
		&cli.BoolFlag{
			Name:    verboseFlag,
			Aliases: []string{"v"},
			Usage:   "Show debug logging and full tool output on failure",
		},
	},
	Action: actionFunc,
}

func actionFunc(ctx context.Context, cmd *cli.Command) error {
	if cmd.Bool(verboseFlag) {
		ctxlog.LevelVar.Set(slog.LevelDebug)
	}

	target := cmd.StringArg(targetArg)
	if target == "" {
		target = "."
	}

	t, err := pdfmake.ResolveTarget(ctx, target)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	if len(t.Documents) == 0 {
		return cli.Exit("Error: Cannot watch without a main file to build.", 1)
	}

	jobs, err := builder.BuildJobs(t.Documents, t.Config, cmd.String(outputFlag))
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	o := builder.New(t.Dir, t.Config)
	o.Verbose = cmd.Bool(verboseFlag)
	o.CleanFirst = cmd.Bool(cleanFirstFlag)

	fmt.Fprintln(cmd.Writer, color.Colorize("Watching for file changes. Press Ctrl+C to stop.", color.Bold, color.FgCyan))

	// A failed batch keeps the watcher alive; the next change retries.
	loop := watcher.New(t.Dir, func(ctx context.Context) {
		o.RunBatch(ctx, jobs)
	})

	if err := loop.Run(ctx); err != nil {
		return cli.Exit(err.Error(), 1)
	}

	fmt.Fprintln(cmd.Writer, color.Colorize("Watcher stopped.", color.FgYellow))

	return nil
}
