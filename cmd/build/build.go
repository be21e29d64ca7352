// Copyright (c) LinhMuks-DFox 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package build

import (
	"context"
	"log/slog"

	"github.com/LinhMuks-DFox/Smart-Latex/internal/builder"
	"github.com/LinhMuks-DFox/Smart-Latex/internal/ctxlog"
	"github.com/LinhMuks-DFox/Smart-Latex/internal/pdfmake"
	"github.com/urfave/cli/v3"
)

const (
	targetArg      = "target"
	outputFlag     = "output"
	cleanFirstFlag = "clean-first"
	cleanAfterFlag = "clean-after"
	verboseFlag    = "verbose"
)

// BuildCmd compiles one or more LaTeX documents in the target directory.
var BuildCmd = &cli.Command{
	Name:        "build",
	Description: "Compile the target directory or .tex file into a PDF.",
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
			Usage:   "Remove auxiliary files before building",
		},
		&cli.BoolFlag{
			Name:    cleanAfterFlag,
			Aliases: []string{"bc"},
			Usage:   "Remove auxiliary files after a successful build",
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
		return cli.Exit("Error: No main file found. Set main= in .pdfmake or pass a .tex file.", 1)
	}

	jobs, err := builder.BuildJobs(t.Documents, t.Config, cmd.String(outputFlag))
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	o := builder.New(t.Dir, t.Config)
	o.Verbose = cmd.Bool(verboseFlag)
	o.CleanFirst = cmd.Bool(cleanFirstFlag)
	o.CleanAfter = cmd.Bool(cleanAfterFlag)

	if !o.RunBatch(ctx, jobs) {
		return cli.Exit("Build failed.", 1)
	}

	return nil
}
