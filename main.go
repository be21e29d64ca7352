// Copyright (c) LinhMuks-DFox 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package main is the entry point for the smartlatex command-line application.
package main

import (
	"context"
	"os"

	"github.com/LinhMuks-DFox/Smart-Latex/cmd"
	"github.com/LinhMuks-DFox/Smart-Latex/internal/ctxlog"
	"github.com/LinhMuks-DFox/Smart-Latex/internal/signalbroker"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	ctx = ctxlog.New(ctx, ctxlog.DefaultLogger)
	defer cancel()

	sigCh := signalbroker.New(ctx)

	go signalbroker.Watch(ctx, sigCh, cancel)

	err := cmd.RootCmd.Run(ctx, os.Args)
	if err != nil {
		ctxlog.Logger(ctx).Error("command failed", "error", err)
		os.Exit(1)
	}

	os.Exit(0)
}
