// Copyright (c) LinhMuks-DFox 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package templates

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/LinhMuks-DFox/Smart-Latex/internal/color"
)

// Register adds a template under name from a local directory, a git
// repository URL, or a direct archive URL. Exactly one of path and url
// must be set. For archive URLs, download controls whether the archive
// is fetched now or on first use.
func (s *Store) Register(ctx context.Context, name, path, url string, download bool) error {
	ok, err := s.exists(name)
	if err != nil {
		return err
	}

	if ok {
		return fmt.Errorf("%w: %q", ErrTemplateExists, name)
	}

	switch {
	case path != "":
		return s.registerLocal(ctx, name, path)
	case strings.HasSuffix(url, ".git"):
		return s.registerGit(ctx, name, url)
	case url != "":
		return s.registerURL(ctx, name, url, download)
	default:
		return fmt.Errorf("%w: a source path or URL is required", ErrInvalidMetadata)
	}
}

// registerLocal archives a source directory into the store.
func (s *Store) registerLocal(_ context.Context, name, path string) error {
	src, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	fi, err := s.fs.Stat(src)
	if err != nil || !fi.IsDir() {
		return fmt.Errorf("source path %q does not exist or is not a directory", src)
	}

	if err := zipDir(s.fs, src, s.zipPath(name)); err != nil {
		return fmt.Errorf("archiving template %q: %w", name, err)
	}

	if err := s.writeMetadata(name, Metadata{Source: SourceLocal, Path: src}); err != nil {
		return err
	}

	fmt.Fprintln(s.Output, color.Colorize(
		fmt.Sprintf("Template '%s' registered successfully from path '%s'.", name, src),
		color.FgGreen))

	return nil
}

// registerGit clones a repository into the store as a working tree.
func (s *Store) registerGit(ctx context.Context, name, url string) error {
	fmt.Fprintf(s.Output, "Cloning git repository from %s...\n", url)

	if err := s.clone(ctx, url, s.dirPath(name)); err != nil {
		return fmt.Errorf("cloning %q: %w", url, err)
	}

	if err := s.writeMetadata(name, Metadata{Source: SourceGit, URL: url}); err != nil {
		return err
	}

	fmt.Fprintln(s.Output, color.Colorize(
		fmt.Sprintf("Template '%s' registered successfully from git repository.", name),
		color.FgGreen))

	return nil
}

// registerURL records an archive URL, fetching it now or deferring the
// download to first use.
func (s *Store) registerURL(ctx context.Context, name, url string, download bool) error {
	meta := Metadata{Source: SourceURL, URL: url}

	if !download {
		meta.Status = StatusLazy
		if err := s.writeMetadata(name, meta); err != nil {
			return err
		}

		fmt.Fprintln(s.Output, color.Colorize(
			fmt.Sprintf("Template '%s' registered for lazy download.", name), color.FgGreen))
		fmt.Fprintln(s.Output, "It will be downloaded the first time you use it.")

		return nil
	}

	fmt.Fprintf(s.Output, "Downloading template '%s' from %s...\n", name, url)

	if err := s.fetch(ctx, url, s.zipPath(name)); err != nil {
		return fmt.Errorf("downloading template %q: %w", name, err)
	}

	meta.Status = StatusDownloaded
	if err := s.writeMetadata(name, meta); err != nil {
		return err
	}

	fmt.Fprintln(s.Output, color.Colorize(
		fmt.Sprintf("Template '%s' downloaded and registered successfully.", name), color.FgGreen))

	return nil
}
