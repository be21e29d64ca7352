// Copyright (c) LinhMuks-DFox 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package clean

import (
	"context"
	"fmt"

	"github.com/LinhMuks-DFox/Smart-Latex/internal/builder"
	"github.com/LinhMuks-DFox/Smart-Latex/internal/color"
	"github.com/LinhMuks-DFox/Smart-Latex/internal/pdfmake"
	"github.com/spf13/afero"
	"github.com/urfave/cli/v3"
)

const targetArg = "target"

// CleanCmd removes auxiliary build files from the target directory.
var CleanCmd = &cli.Command{
	Name:        "clean",
	Description: "Remove auxiliary LaTeX build files (aux, log, toc, ...).",
	Arguments: []cli.Argument{
		&cli.StringArg{
			Name:      targetArg,
			UsageText: "[TARGET]",
			Config: cli.StringConfig{
				TrimSpace: true,
			},
		},
	},
	Action: actionFunc,
}

func actionFunc(ctx context.Context, cmd *cli.Command) error {
	target := cmd.StringArg(targetArg)
	if target == "" {
		target = "."
	}

	t, err := pdfmake.ResolveTarget(ctx, target)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	fmt.Fprintln(cmd.Writer, color.Colorize("Cleaning auxiliary files...", color.FgCyan))
	builder.Clean(ctx, afero.NewOsFs(), t.Dir)

	return nil
}
