// Copyright (c) LinhMuks-DFox 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package builder

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/LinhMuks-DFox/Smart-Latex/internal/color"
	"github.com/LinhMuks-DFox/Smart-Latex/internal/ctxlog"
	"github.com/LinhMuks-DFox/Smart-Latex/internal/pdfmake"
	"github.com/LinhMuks-DFox/Smart-Latex/internal/runbatch"
	"github.com/LinhMuks-DFox/Smart-Latex/internal/texlog"
	"github.com/LinhMuks-DFox/Smart-Latex/internal/toolchain"
	"github.com/spf13/afero"
)

// ArtifactExt is the extension of the primary build artifact.
const ArtifactExt = ".pdf"

const (
	failedBanner    = "================ BUILD FAILED ================"
	failedBannerEnd = "=============================================="
	successBanner   = "================ BUILD SUCCEEDED ================"
)

// Orchestrator runs batches of build jobs in one working directory.
type Orchestrator struct {
	// Dir is the working directory all tools run in.
	Dir string
	// Cfg is the directory's configuration.
	Cfg *pdfmake.Config
	// Verbose additionally dumps the full captured output of a failing step.
	Verbose bool
	// CleanFirst removes auxiliary files before the batch runs.
	CleanFirst bool
	// CleanAfter removes auxiliary files after the batch succeeds.
	CleanAfter bool
	// Output receives banners and diagnostics.
	Output io.Writer

	fs      afero.Fs
	resolve func(ctx context.Context, cfg *pdfmake.Config, dir, base string) []toolchain.Step
	runStep func(ctx context.Context, step toolchain.Step) *runbatch.Result
}

// New creates an Orchestrator for the given working directory and config.
func New(dir string, cfg *pdfmake.Config) *Orchestrator {
	o := &Orchestrator{
		Dir:     dir,
		Cfg:     cfg,
		Output:  os.Stdout,
		fs:      afero.NewOsFs(),
		resolve: toolchain.Resolve,
	}
	o.runStep = o.execStep

	return o
}

func (o *Orchestrator) execStep(ctx context.Context, step toolchain.Step) *runbatch.Result {
	cmd := &runbatch.OSCommand{
		Label: step.Name,
		Path:  step.Path,
		Args:  step.Args,
		Cwd:   o.Dir,
	}

	return cmd.Run(ctx)
}

// runJob drives one job through its toolchain, stopping at the first failing
// step. Auxiliary output of steps that already ran is left in place.
func (o *Orchestrator) runJob(ctx context.Context, job Job) bool {
	source := filepath.Join(o.Dir, job.Base+".tex")
	if _, err := o.fs.Stat(source); err != nil {
		fmt.Fprintln(o.Output, color.Colorize(fmt.Sprintf("Error: '%s.tex' not found.", job.Base), color.FgRed))
		return false
	}

	steps := o.resolve(ctx, o.Cfg, o.Dir, job.Base)

	for i, step := range steps {
		fmt.Fprintf(o.Output, "%s %s\n", color.Colorize(fmt.Sprintf("[%d/%d]", i+1, len(steps)), color.Bold), step)

		res := o.runStep(ctx, step)
		if res.Ok() {
			continue
		}

		if res.Error != nil {
			ctxlog.Error(ctx, "step did not run", "step", step.Name, "error", res.Error)
		}

		o.reportFailure(res)

		return false
	}

	return true
}

// reportFailure prints the failure banner and the filtered diagnostic
// excerpt for the failing step.
func (o *Orchestrator) reportFailure(res *runbatch.Result) {
	fmt.Fprintln(o.Output, "\n"+color.Colorize(failedBanner, color.FgRed))

	excerpt := texlog.Summarize(string(res.StdOut))
	if !excerpt.FoundMarkers {
		fmt.Fprintln(o.Output, color.Colorize("Last lines of output:", color.FgYellow))
	}

	for _, line := range excerpt.Lines {
		switch {
		case !excerpt.FoundMarkers:
			fmt.Fprintln(o.Output, line)
		case len(line) > 1 && line[0] == 'l' && line[1] == '.':
			fmt.Fprintln(o.Output, color.Colorize("   "+line, color.FgCyan))
		default:
			fmt.Fprintln(o.Output, color.Colorize(">> "+line, color.FgRed))
		}
	}

	fmt.Fprintln(o.Output, color.Colorize(failedBannerEnd, color.FgRed))

	if o.Verbose {
		fmt.Fprintln(o.Output, "\n"+color.Colorize("------ FULL OUTPUT (STDOUT) ------", color.FgYellow))
		o.Output.Write(res.StdOut) //nolint:errcheck

		if len(res.StdErr) > 0 {
			fmt.Fprintln(o.Output, "\n"+color.Colorize("------ STDERR ------", color.FgYellow))
			o.Output.Write(res.StdErr) //nolint:errcheck
		}

		return
	}

	fmt.Fprintln(o.Output, "\n"+color.Colorize("(Run with -v to see the full log)", color.FgCyan))
}
