// Copyright (c) LinhMuks-DFox 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package builder

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/LinhMuks-DFox/Smart-Latex/internal/color"
	"github.com/LinhMuks-DFox/Smart-Latex/internal/ctxlog"
)

// RunBatch runs all jobs in order and reports overall success. The batch
// stops at the first failing job: later jobs commonly depend on shared
// build state (bibliography databases, auxiliary files) that a failed step
// may have left inconsistent, so they are never attempted.
func (o *Orchestrator) RunBatch(ctx context.Context, jobs []Job) bool {
	if o.CleanFirst {
		Clean(ctx, o.fs, o.Dir)
	}

	for _, job := range jobs {
		if !o.runJob(ctx, job) {
			return false
		}

		fmt.Fprintln(o.Output, color.Colorize(successBanner, color.FgGreen))

		if err := o.renameArtifact(ctx, job); err != nil {
			ctxlog.Error(ctx, "failed to rename artifact", "doc", job.Base, "error", err)
			return false
		}
	}

	if o.CleanAfter {
		Clean(ctx, o.fs, o.Dir)
	}

	return true
}

// renameArtifact moves the job's primary artifact to its desired output
// name. It is a no-op when no rename was requested or the names already
// coincide.
func (o *Orchestrator) renameArtifact(ctx context.Context, job Job) error {
	if job.OutName == "" {
		return nil
	}

	src := job.Base + ArtifactExt
	dst := finalOutputName(job.OutName)

	if src == dst {
		return nil
	}

	if _, err := o.fs.Stat(filepath.Join(o.Dir, src)); err != nil {
		ctxlog.Warn(ctx, "primary artifact missing, nothing to rename", "artifact", src)
		return nil
	}

	if err := o.fs.Rename(filepath.Join(o.Dir, src), filepath.Join(o.Dir, dst)); err != nil {
		return err
	}

	fmt.Fprintf(o.Output, "Output: %s\n", color.Colorize(dst, color.FgGreen))

	return nil
}

// finalOutputName normalizes a requested output name so that the artifact
// always keeps its extension, tolerating users who type "Paper.tex" or
// "Paper.pdf" instead of "Paper".
func finalOutputName(out string) string {
	if strings.HasSuffix(out, ".tex") {
		return out + ArtifactExt
	}

	if !strings.HasSuffix(out, ArtifactExt) {
		return out + ArtifactExt
	}

	return out
}
