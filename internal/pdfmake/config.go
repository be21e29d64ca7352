// Copyright (c) LinhMuks-DFox 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package pdfmake loads the per-directory .pdfmake configuration file.
// The file is a flat key=value format; the keys main, out and tool_chain
// hold comma-separated lists (optionally wrapped in square brackets) and
// compiler holds a single tool name. Lines starting with # are comments.
package pdfmake

import (
	"bufio"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/LinhMuks-DFox/Smart-Latex/internal/ctxlog"
	"github.com/spf13/afero"
)

// fs is the filesystem the package operates on; swapped for an in-memory
// implementation in tests.
var fs = afero.NewOsFs()

// FileName is the name of the configuration file.
const FileName = ".pdfmake"

// ErrConfigExists is returned by InitFile when a .pdfmake already exists.
var ErrConfigExists = errors.New("configuration file already exists")

const initTemplate = `# .pdfmake configuration file
main=main.tex
# out=FinalPaper
# compiler=xelatex
# tool_chain = xelatex, bibtex, xelatex, xelatex
`

// Config is the parsed, validated form of a .pdfmake file.
// A zero Config is valid and means "use defaults for everything".
type Config struct {
	// Main lists the target documents, one build job per entry.
	Main []string
	// Out lists desired output names, positionally paired with Main.
	Out []string
	// Compiler overrides the engine detected from the document.
	Compiler string
	// ToolChain, when non-empty, is used verbatim as the build chain. The
	// token "compiler" is substituted with the effective engine.
	ToolChain []string
}

// Load reads the .pdfmake file in dir. A missing file yields an empty
// config; a malformed line is skipped with a warning, matching the
// permissive behavior users expect from the format.
func Load(ctx context.Context, dir string) (*Config, error) {
	f, err := fs.Open(filepath.Join(dir, FileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}

		return nil, err
	}
	defer f.Close() //nolint:errcheck

	return parse(ctx, f)
}

func parse(ctx context.Context, r io.Reader) (*Config, error) {
	cfg := &Config{}
	scanner := bufio.NewScanner(r)

	for scanner.Scan() {
		line := scanner.Text()
		if i := strings.Index(line, "#"); i >= 0 {
			line = line[:i]
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		key, val, found := strings.Cut(line, "=")
		if !found {
			ctxlog.Warn(ctx, "skipping malformed config line", "line", line)
			continue
		}

		key = strings.TrimSpace(key)
		val = strings.TrimSpace(val)

		switch key {
		case "main":
			cfg.Main = splitList(val)
		case "out":
			cfg.Out = splitList(val)
		case "tool_chain":
			cfg.ToolChain = splitList(val)
		case "compiler":
			cfg.Compiler = val
		default:
			ctxlog.Debug(ctx, "ignoring unknown config key", "key", key)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// splitList parses a comma-separated list, tolerating square brackets and
// surrounding whitespace.
func splitList(val string) []string {
	val = strings.ReplaceAll(val, "[", "")
	val = strings.ReplaceAll(val, "]", "")

	var items []string

	for _, item := range strings.Split(val, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}

	return items
}

// InitFile writes a template .pdfmake into dir.
func InitFile(dir string) error {
	path := filepath.Join(dir, FileName)
	if _, err := fs.Stat(path); err == nil {
		return ErrConfigExists
	}

	return afero.WriteFile(fs, path, []byte(initTemplate), 0o644)
}
