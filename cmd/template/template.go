// Copyright (c) LinhMuks-DFox 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package template exposes the template store as CLI subcommands.
package template

import (
	"context"
	"fmt"

	"github.com/LinhMuks-DFox/Smart-Latex/internal/color"
	"github.com/LinhMuks-DFox/Smart-Latex/internal/templates"
	"github.com/urfave/cli/v3"
)

const (
	nameArg    = "name"
	projectArg = "project"

	pathFlag     = "path"
	urlFlag      = "url"
	downloadFlag = "download"
	lazyFlag     = "lazydownload"
	templateFlag = "template"
)

// TemplateCmd manages reusable LaTeX project templates.
var TemplateCmd = &cli.Command{
	Name:        "template",
	Description: "Manage local and remote LaTeX project templates.",
	Commands: []*cli.Command{
		registerCmd,
		newCmd,
		listCmd,
		deleteCmd,
		updateCmd,
	},
}

var registerCmd = &cli.Command{
	Name:        "register",
	Description: "Register a template from a local path, a git repository, or a zip URL.",
	Arguments: []cli.Argument{
		&cli.StringArg{
			Name:      nameArg,
			UsageText: "NAME",
			Config: cli.StringConfig{
				TrimSpace: true,
			},
		},
	},
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  pathFlag,
			Usage: "Path to the source directory",
		},
		&cli.StringFlag{
			Name:  urlFlag,
			Usage: "URL to a git repository or a zip file",
		},
		&cli.BoolFlag{
			Name:  downloadFlag,
			Usage: "Download the template immediately (for non-git URLs)",
		},
		&cli.BoolFlag{
			Name:  lazyFlag,
			Usage: "Download the template when used for the first time (for non-git URLs)",
		},
	},
	Action: registerAction,
}

func registerAction(ctx context.Context, cmd *cli.Command) error {
	name := cmd.StringArg(nameArg)
	if name == "" {
		return cli.Exit("Please provide a template name", 1)
	}

	path := cmd.String(pathFlag)
	url := cmd.String(urlFlag)

	if (path == "") == (url == "") {
		return cli.Exit("Specify exactly one of --path or --url", 1)
	}

	if cmd.Bool(downloadFlag) && cmd.Bool(lazyFlag) {
		return cli.Exit("--download and --lazydownload are mutually exclusive", 1)
	}

	store, err := templates.NewStore()
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	if err := store.Register(ctx, name, path, url, cmd.Bool(downloadFlag)); err != nil {
		return cli.Exit(err.Error(), 1)
	}

	return nil
}

var newCmd = &cli.Command{
	Name:        "new",
	Description: "Create a new project directory from a registered template.",
	Arguments: []cli.Argument{
		&cli.StringArg{
			Name:      projectArg,
			UsageText: "PROJECT",
			Config: cli.StringConfig{
				TrimSpace: true,
			},
		},
	},
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     templateFlag,
			Aliases:  []string{"t"},
			Usage:    "Name of the template to use",
			Required: true,
		},
	},
	Action: newAction,
}

func newAction(ctx context.Context, cmd *cli.Command) error {
	project := cmd.StringArg(projectArg)
	if project == "" {
		return cli.Exit("Please provide a project name", 1)
	}

	store, err := templates.NewStore()
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	if err := store.NewProject(ctx, cmd.String(templateFlag), project); err != nil {
		return cli.Exit(err.Error(), 1)
	}

	return nil
}

var listCmd = &cli.Command{
	Name:        "list",
	Description: "List registered templates.",
	Action:      listAction,
}

func listAction(ctx context.Context, cmd *cli.Command) error {
	store, err := templates.NewStore()
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	entries, err := store.List(ctx)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	if len(entries) == 0 {
		fmt.Fprintln(cmd.Writer, "No templates registered.")

		return nil
	}

	fmt.Fprintln(cmd.Writer, color.Colorize("Available Templates:", color.Bold))

	for _, e := range entries {
		fmt.Fprintf(cmd.Writer, "  - %s %s\n", e.Name, e.Details)
	}

	return nil
}

var deleteCmd = &cli.Command{
	Name:        "delete",
	Description: "Delete a registered template and all its assets.",
	Arguments: []cli.Argument{
		&cli.StringArg{
			Name:      nameArg,
			UsageText: "NAME",
			Config: cli.StringConfig{
				TrimSpace: true,
			},
		},
	},
	Action: deleteAction,
}

func deleteAction(ctx context.Context, cmd *cli.Command) error {
	name := cmd.StringArg(nameArg)
	if name == "" {
		return cli.Exit("Please provide a template name", 1)
	}

	store, err := templates.NewStore()
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	if err := store.Delete(ctx, name); err != nil {
		return cli.Exit(err.Error(), 1)
	}

	return nil
}

var updateCmd = &cli.Command{
	Name:        "update",
	Description: "Update a template from its original source (git or URL).",
	Arguments: []cli.Argument{
		&cli.StringArg{
			Name:      nameArg,
			UsageText: "NAME",
			Config: cli.StringConfig{
				TrimSpace: true,
			},
		},
	},
	Action: updateAction,
}

func updateAction(ctx context.Context, cmd *cli.Command) error {
	name := cmd.StringArg(nameArg)
	if name == "" {
		return cli.Exit("Please provide a template name", 1)
	}

	store, err := templates.NewStore()
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	if err := store.Update(ctx, name); err != nil {
		return cli.Exit(err.Error(), 1)
	}

	return nil
}
