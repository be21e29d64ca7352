// Copyright (c) LinhMuks-DFox 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package toolchain decides which external tools to run, and in what order,
// to turn a LaTeX document into its final artifact.
package toolchain

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/LinhMuks-DFox/Smart-Latex/internal/color"
	"github.com/LinhMuks-DFox/Smart-Latex/internal/ctxlog"
	"github.com/LinhMuks-DFox/Smart-Latex/internal/pdfmake"
)

// output receives the one informational message naming the resolved chain.
// It is a package variable so tests can silence it.
var output io.Writer = os.Stdout

const (
	// DefaultEngine is used when no magic comment or config names one.
	DefaultEngine = "pdflatex"
	// legacyEngine produces DVI output and needs a conversion step.
	legacyEngine = "latex"
	// dviConverter converts DVI output of the legacy engine to PDF.
	dviConverter = "dvipdfmx"
	// bibliographyTool is the default bibliography processor in the chain.
	bibliographyTool = "biber"
	// enginePlaceholder in a tool_chain list is substituted with the
	// effective engine name.
	enginePlaceholder = "compiler"
)

// Step is one external tool invocation. Path is the executable name and
// Args the argument list; no shell is involved.
type Step struct {
	Name string
	Path string
	Args []string
}

// String renders the step the way it would look on a command line.
func (s Step) String() string {
	if len(s.Args) == 0 {
		return s.Path
	}

	return s.Path + " " + strings.Join(s.Args, " ")
}

// engineArgs are the arguments shared by all LaTeX engines.
func engineArgs(base string) []string {
	return []string{"-file-line-error", "-interaction=nonstopmode", base + ".tex"}
}

// stepFor maps a tool name to its invocation for the given document base
// name. Unknown names pass through as a literal command taking the base
// name as its sole argument, so user-defined tools need no registration.
func stepFor(name, base string) Step {
	switch name {
	case "pdflatex", "xelatex", "lualatex", "latex":
		return Step{Name: name, Path: name, Args: engineArgs(base)}
	case "dvipdfmx", "biber", "bibtex", "makeglossaries":
		return Step{Name: name, Path: name, Args: []string{base}}
	default:
		return Step{Name: name, Path: name, Args: []string{base}}
	}
}

// Resolve builds the ordered list of steps for the document with the given
// base name in dir. The effective engine is the config's compiler if set,
// otherwise the engine detected from the document's magic comment. An
// explicit tool_chain list is used verbatim after placeholder substitution;
// otherwise the default chain [engine, biber, engine, engine] is
// synthesized, with a DVI-to-PDF step appended for the legacy engine.
func Resolve(ctx context.Context, cfg *pdfmake.Config, dir, base string) []Step {
	engine := cfg.Compiler
	if engine == "" {
		engine = Detect(ctx, dir, base)
	}

	var names []string

	if len(cfg.ToolChain) > 0 {
		names = cfg.ToolChain
		ctxlog.Debug(ctx, "using custom tool chain", "chain", names)
		fmt.Fprintln(output, color.Colorize("Custom Tool Chain: "+strings.Join(names, ", "), color.FgCyan))
	} else {
		names = []string{engine, bibliographyTool, engine, engine}
		if engine == legacyEngine {
			names = append(names, dviConverter)
		}

		ctxlog.Debug(ctx, "using default tool chain", "engine", engine)
		fmt.Fprintf(output, "Compiler: %s\n", color.Colorize(engine, color.FgGreen))
	}

	steps := make([]Step, 0, len(names))

	for _, name := range names {
		if name == enginePlaceholder {
			name = engine
		}

		steps = append(steps, stepFor(name, base))
	}

	return steps
}
