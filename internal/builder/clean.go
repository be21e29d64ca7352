// Copyright (c) LinhMuks-DFox 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package builder

import (
	"context"
	"path/filepath"

	"github.com/LinhMuks-DFox/Smart-Latex/internal/ctxlog"
	"github.com/spf13/afero"
)

// auxPatterns are the generated files removed by a cleanup pass.
var auxPatterns = []string{
	"*.aux", "*.bbl", "*.blg", "*.dvi", "*.out", "*.log", "*.toc",
	"*.lof", "*.lot", "build", "*.synctex.gz", "*.fls",
	"*.fdb_latexmk", "*.bcf", "*.run.xml", "*.glg", "*.gls", "*.glsdefs",
	"*.ist", "*.nav", "*.snm",
}

// Clean removes auxiliary build files in dir. Cleanup is best-effort and
// advisory: unmatched patterns and unremovable paths are skipped silently
// and never fail the caller.
func Clean(ctx context.Context, fsys afero.Fs, dir string) {
	ctxlog.Info(ctx, "cleaning auxiliary files", "dir", dir)

	for _, pattern := range auxPatterns {
		matches, err := afero.Glob(fsys, filepath.Join(dir, pattern))
		if err != nil {
			ctxlog.Debug(ctx, "bad cleanup pattern", "pattern", pattern, "error", err)
			continue
		}

		for _, match := range matches {
			if err := fsys.RemoveAll(match); err != nil {
				ctxlog.Debug(ctx, "could not remove auxiliary file", "path", match, "error", err)
			}
		}
	}
}
