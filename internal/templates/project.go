// Copyright (c) LinhMuks-DFox 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package templates

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/LinhMuks-DFox/Smart-Latex/internal/color"
	"github.com/LinhMuks-DFox/Smart-Latex/internal/pdfmake"
	"github.com/spf13/afero"
)

// NewProject materializes the named template into a fresh project
// directory. Git templates are copied without their .git directory, zip
// templates are extracted, and lazy URL templates are downloaded first.
// An assets/ directory is always created in the new project.
func (s *Store) NewProject(ctx context.Context, templateName, projectDir string) error {
	dst, err := filepath.Abs(projectDir)
	if err != nil {
		return err
	}

	if ok, err := afero.Exists(s.fs, dst); err != nil {
		return err
	} else if ok {
		return fmt.Errorf("%w: %q", ErrProjectExists, dst)
	}

	if err := s.materialize(ctx, templateName, dst); err != nil {
		return err
	}

	if err := s.fs.MkdirAll(filepath.Join(dst, "assets"), 0o755); err != nil {
		return fmt.Errorf("creating assets directory: %w", err)
	}

	fmt.Fprintln(s.Output, color.Colorize("Project created at: "+dst, color.FgGreen))

	hasConfig, err := afero.Exists(s.fs, filepath.Join(dst, pdfmake.FileName))
	if err != nil {
		return err
	}

	if hasConfig {
		fmt.Fprintln(s.Output, "Note: Included .pdfmake configuration.")
	} else {
		fmt.Fprintln(s.Output, "Note: No .pdfmake found in template. Run `smartlatex init` inside the folder to generate one.")
	}

	return nil
}

// materialize picks the template's stored shape and expands it into dst.
func (s *Store) materialize(ctx context.Context, name, dst string) error {
	if ok, err := afero.DirExists(s.fs, s.dirPath(name)); err != nil {
		return err
	} else if ok {
		fmt.Fprintf(s.Output, "Creating project from git template '%s'...\n", name)

		return copyTree(s.fs, s.dirPath(name), dst, gitDirName)
	}

	if ok, err := afero.Exists(s.fs, s.zipPath(name)); err != nil {
		return err
	} else if ok {
		fmt.Fprintf(s.Output, "Creating project from template '%s'...\n", name)

		return unzip(s.fs, s.zipPath(name), dst)
	}

	meta, err := s.readMetadata(name)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %q", ErrTemplateNotFound, name)
		}

		return err
	}

	if meta.Source != SourceURL || meta.Status != StatusLazy {
		return fmt.Errorf("%w: template %q has no usable assets", ErrInvalidMetadata, name)
	}

	fmt.Fprintf(s.Output, "Template '%s' is a lazy URL, downloading now.\n", name)

	if err := s.download(ctx, name, meta.URL); err != nil {
		return err
	}

	fmt.Fprintf(s.Output, "Creating project from template '%s'...\n", name)

	return unzip(s.fs, s.zipPath(name), dst)
}
