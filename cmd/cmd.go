// Copyright (c) LinhMuks-DFox 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package cmd contains the command-line interface (CLI) for the module.
package cmd

import (
	"github.com/LinhMuks-DFox/Smart-Latex/cmd/build"
	"github.com/LinhMuks-DFox/Smart-Latex/cmd/clean"
	"github.com/LinhMuks-DFox/Smart-Latex/cmd/initcfg"
	"github.com/LinhMuks-DFox/Smart-Latex/cmd/template"
	"github.com/LinhMuks-DFox/Smart-Latex/cmd/watch"
	"github.com/urfave/cli/v3"
)

var (
	// Version is set during the build process.
	Version = "dev"
	// Commit is set during the build process.
	Commit = "unknown"
)

// RootCmd is the root command for the CLI.
var RootCmd = &cli.Command{
	Version: Version,
	Commands: []*cli.Command{
		build.BuildCmd,
		clean.CleanCmd,
		watch.WatchCmd,
		initcfg.InitCmd,
		template.TemplateCmd,
	},
	Name: "smartlatex",
}
