// Copyright (c) LinhMuks-DFox 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package templates

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/LinhMuks-DFox/Smart-Latex/internal/color"
	"github.com/hashicorp/go-multierror"
	"github.com/spf13/afero"
)

// Entry describes one registered template for listing purposes.
type Entry struct {
	Name string
	// Details is a human-readable classification such as "(git repo)" or
	// "(url, lazy download)".
	Details string
}

// List returns all registered templates sorted by name.
func (s *Store) List(_ context.Context) ([]Entry, error) {
	infos, err := afero.ReadDir(s.fs, s.dir)
	if err != nil {
		return nil, err
	}

	type shape struct {
		dir  bool
		zip  bool
		meta bool
	}

	shapes := map[string]*shape{}
	get := func(name string) *shape {
		sh, ok := shapes[name]
		if !ok {
			sh = &shape{}
			shapes[name] = sh
		}

		return sh
	}

	for _, info := range infos {
		switch {
		case info.IsDir():
			get(info.Name()).dir = true
		case strings.HasSuffix(info.Name(), ".zip"):
			get(strings.TrimSuffix(info.Name(), ".zip")).zip = true
		case strings.HasSuffix(info.Name(), metaExt):
			get(strings.TrimSuffix(info.Name(), metaExt)).meta = true
		}
	}

	entries := make([]Entry, 0, len(shapes))
	for name, sh := range shapes {
		entries = append(entries, Entry{Name: name, Details: s.classify(name, sh.dir, sh.zip, sh.meta)})
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })

	return entries, nil
}

func (s *Store) classify(name string, hasDir, hasZip, hasMeta bool) string {
	switch {
	case hasDir:
		return "(git repo)"
	case hasZip:
		if hasMeta {
			if meta, err := s.readMetadata(name); err == nil && meta.Source == SourceURL {
				return "(url, downloaded)"
			}
		}

		return "(local)"
	case hasMeta:
		if meta, err := s.readMetadata(name); err == nil && meta.Status == StatusLazy {
			return "(url, lazy download)"
		}

		return "(meta only)"
	default:
		return "(unknown)"
	}
}

// Delete removes a template and all of its assets. Removal continues past
// individual failures and the errors are aggregated.
func (s *Store) Delete(_ context.Context, name string) error {
	var result *multierror.Error

	found := false

	for _, p := range []string{s.dirPath(name), s.zipPath(name), s.metaPath(name)} {
		ok, err := afero.Exists(s.fs, p)
		if err != nil {
			result = multierror.Append(result, err)

			continue
		}

		if !ok {
			continue
		}

		found = true

		if err := s.fs.RemoveAll(p); err != nil {
			result = multierror.Append(result, fmt.Errorf("removing %q: %w", p, err))
		}
	}

	if !found {
		return fmt.Errorf("%w: %q", ErrTemplateNotFound, name)
	}

	if err := result.ErrorOrNil(); err != nil {
		return err
	}

	fmt.Fprintln(s.Output, color.Colorize(
		fmt.Sprintf("Template '%s' and all its assets deleted.", name), color.FgGreen))

	return nil
}

// Update refreshes a template from its recorded source. Git templates are
// pulled, URL templates are re-downloaded, local templates have no
// upstream and are refused.
func (s *Store) Update(ctx context.Context, name string) error {
	meta, err := s.readMetadata(name)
	if err != nil {
		if !os.IsNotExist(err) {
			return err
		}

		if ok, zerr := afero.Exists(s.fs, s.zipPath(name)); zerr == nil && ok {
			return fmt.Errorf("%w: %q is a local template", ErrNotUpdatable, name)
		}

		return fmt.Errorf("%w: %q", ErrTemplateNotFound, name)
	}

	switch meta.Source {
	case SourceGit:
		if ok, err := afero.DirExists(s.fs, s.dirPath(name)); err != nil {
			return err
		} else if !ok {
			return fmt.Errorf("%w: git working tree for %q is missing", ErrInvalidMetadata, name)
		}

		fmt.Fprintf(s.Output, "Updating git template '%s' from %s...\n", name, meta.URL)

		if err := s.pull(ctx, s.dirPath(name)); err != nil {
			return fmt.Errorf("updating %q: %w", name, err)
		}

	case SourceURL:
		fmt.Fprintf(s.Output, "Updating URL template '%s' from %s...\n", name, meta.URL)

		if err := s.download(ctx, name, meta.URL); err != nil {
			return err
		}

	case SourceLocal:
		return fmt.Errorf("%w: %q is a local template", ErrNotUpdatable, name)

	default:
		return fmt.Errorf("%w: unknown source %q", ErrInvalidMetadata, meta.Source)
	}

	fmt.Fprintln(s.Output, color.Colorize(
		fmt.Sprintf("Template '%s' updated successfully.", name), color.FgGreen))

	return nil
}
