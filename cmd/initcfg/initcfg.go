// Copyright (c) LinhMuks-DFox 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package initcfg

import (
	"context"
	"errors"
	"fmt"

	"github.com/LinhMuks-DFox/Smart-Latex/internal/color"
	"github.com/LinhMuks-DFox/Smart-Latex/internal/pdfmake"
	"github.com/urfave/cli/v3"
)

// InitCmd writes a starter .pdfmake configuration file.
var InitCmd = &cli.Command{
	Name:        "init",
	Description: "Create a template .pdfmake configuration file in the current directory.",
	Action:      actionFunc,
}

func actionFunc(_ context.Context, cmd *cli.Command) error {
	err := pdfmake.InitFile(".")
	if errors.Is(err, pdfmake.ErrConfigExists) {
		fmt.Fprintln(cmd.Writer, color.Colorize("File .pdfmake already exists. Skipping.", color.FgYellow))

		return nil
	}

	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	fmt.Fprintln(cmd.Writer, color.Colorize("Created template .pdfmake", color.FgGreen))

	return nil
}
