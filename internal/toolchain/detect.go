// Copyright (c) LinhMuks-DFox 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package toolchain

import (
	"bufio"
	"context"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/LinhMuks-DFox/Smart-Latex/internal/ctxlog"
	"github.com/spf13/afero"
)

// magicCommentWindow is how many lines of the document are inspected for a
// magic comment.
const magicCommentWindow = 20

var (
	programRe  = regexp.MustCompile(`(?i)^%\s*!TEX\s+(?:TS-)?program\s*=\s*([a-zA-Z0-9]+)`)
	bareNameRe = regexp.MustCompile(`(?i)^%\s*!TEX\s+(pdflatex|xelatex|lualatex|latex)\b`)
)

// detectFs allows detection to run against an in-memory filesystem in tests.
var detectFs = afero.NewOsFs()

// Detect scans the first lines of dir/base.tex for a %!TEX magic comment
// naming the engine, e.g. "% !TEX program = xelatex" or "% !TEX xelatex".
// Matching is case-insensitive and the first match wins. Any read error or
// absence of a directive yields the default engine.
func Detect(ctx context.Context, dir, base string) string {
	path := filepath.Join(dir, base+".tex")

	f, err := detectFs.Open(path)
	if err != nil {
		ctxlog.Debug(ctx, "cannot open document for engine detection", "path", path, "error", err)
		return DefaultEngine
	}
	defer f.Close() //nolint:errcheck

	scanner := bufio.NewScanner(f)

	for i := 0; scanner.Scan() && i < magicCommentWindow; i++ {
		line := scanner.Text()

		if m := programRe.FindStringSubmatch(line); m != nil {
			return strings.ToLower(m[1])
		}

		if m := bareNameRe.FindStringSubmatch(line); m != nil {
			return strings.ToLower(m[1])
		}
	}

	return DefaultEngine
}
