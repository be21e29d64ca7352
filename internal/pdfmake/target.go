// Copyright (c) LinhMuks-DFox 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package pdfmake

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/LinhMuks-DFox/Smart-Latex/internal/ctxlog"
	"github.com/spf13/afero"
)

var (
	// ErrInvalidTarget is returned when the target is neither a directory
	// nor a .tex file.
	ErrInvalidTarget = errors.New("target must be a directory or a .tex file")
)

// Target is a resolved build target: a working directory, the documents to
// build in it (base names without the .tex extension) and the directory's
// configuration.
type Target struct {
	Dir       string
	Documents []string
	Config    *Config
}

// ResolveTarget turns a CLI target argument into a Target.
//
// For a directory target the documents come from the config's main list, or
// from the single .tex file in the directory when no main is configured.
// A directory with zero or multiple candidate .tex files and no main list
// yields a Target with no documents; whether that is an error is up to the
// caller (cleaning needs no document, building does).
func ResolveTarget(ctx context.Context, target string) (*Target, error) {
	abs, err := filepath.Abs(target)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidTarget, target)
	}

	info, err := fs.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidTarget, target)
	}

	if !info.IsDir() {
		if !strings.HasSuffix(abs, ".tex") {
			return nil, fmt.Errorf("%w: %s", ErrInvalidTarget, target)
		}

		dir := filepath.Dir(abs)

		cfg, err := Load(ctx, dir)
		if err != nil {
			return nil, err
		}

		return &Target{
			Dir:       dir,
			Documents: []string{baseName(abs)},
			Config:    cfg,
		}, nil
	}

	cfg, err := Load(ctx, abs)
	if err != nil {
		return nil, err
	}

	t := &Target{Dir: abs, Config: cfg}

	if len(cfg.Main) > 0 {
		for _, m := range cfg.Main {
			t.Documents = append(t.Documents, baseName(m))
		}

		return t, nil
	}

	matches, err := afero.Glob(fs, filepath.Join(abs, "*.tex"))
	if err != nil {
		return nil, err
	}

	if len(matches) == 1 {
		t.Documents = []string{baseName(matches[0])}
	} else {
		ctxlog.Debug(ctx, "no unambiguous main document in directory", "dir", abs, "candidates", len(matches))
	}

	return t, nil
}

// baseName strips the directory and the .tex extension from a document path.
func baseName(path string) string {
	return strings.TrimSuffix(filepath.Base(path), ".tex")
}
