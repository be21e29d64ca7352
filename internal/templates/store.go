// Copyright (c) LinhMuks-DFox 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package templates manages reusable LaTeX project templates.
//
// A template is stored under the store directory in one of three shapes:
// a cloned git working tree named after the template, a zip archive
// `<name>.zip`, or a metadata file `<name>.yaml` alone (a URL template
// registered for lazy download). Metadata accompanies zip and git
// templates where a source is known.
package templates

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/go-git/go-git/v5"
	"github.com/goccy/go-yaml"
	"github.com/hashicorp/go-getter/v2"
	"github.com/spf13/afero"
)

// EnvStoreDir overrides the default template store location.
const EnvStoreDir = "SMARTLATEX_TEMPLATE_DIR"

const metaExt = ".yaml"

// SourceKind classifies where a template originally came from.
type SourceKind string

const (
	SourceLocal SourceKind = "local"
	SourceGit   SourceKind = "git"
	SourceURL   SourceKind = "url"
)

// Status tracks whether a URL template's archive is present locally.
type Status string

const (
	StatusLazy       Status = "lazy"
	StatusDownloaded Status = "downloaded"
)

var (
	ErrTemplateExists   = errors.New("template already exists")
	ErrTemplateNotFound = errors.New("template not found")
	ErrNotUpdatable     = errors.New("template cannot be updated from its source")
	ErrInvalidMetadata  = errors.New("invalid template metadata")
	ErrProjectExists    = errors.New("target directory already exists")
)

// Metadata records a template's provenance.
type Metadata struct {
	Source SourceKind `yaml:"source"`
	Path   string     `yaml:"path,omitempty"`
	URL    string     `yaml:"url,omitempty"`
	Status Status     `yaml:"status,omitempty"`
}

// Store is a directory of registered templates.
type Store struct {
	fs  afero.Fs
	dir string

	// Output receives user-facing progress messages.
	Output io.Writer

	// fetch downloads url into the file dst. Defaults to go-getter.
	fetch func(ctx context.Context, url, dst string) error
	// clone clones the git repository at url into the directory dst.
	clone func(ctx context.Context, url, dst string) error
	// pull updates the git working tree at dir from its origin.
	pull func(ctx context.Context, dir string) error
}

// NewStore opens the user's template store, creating the directory if
// needed. The location defaults to ~/.smartlatex/templates and can be
// overridden through SMARTLATEX_TEMPLATE_DIR.
func NewStore() (*Store, error) {
	dir := os.Getenv(EnvStoreDir)
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("locating template store: %w", err)
		}

		dir = filepath.Join(home, ".smartlatex", "templates")
	}

	return NewStoreWithFs(afero.NewOsFs(), dir)
}

// NewStoreWithFs opens a store rooted at dir on the given filesystem.
func NewStoreWithFs(fsys afero.Fs, dir string) (*Store, error) {
	if err := fsys.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating template store: %w", err)
	}

	return &Store{
		fs:     fsys,
		dir:    dir,
		Output: os.Stdout,
		fetch:  fetchURL,
		clone:  cloneRepo,
		pull:   pullRepo,
	}, nil
}

// Dir returns the store's root directory.
func (s *Store) Dir() string {
	return s.dir
}

func (s *Store) dirPath(name string) string  { return filepath.Join(s.dir, name) }
func (s *Store) zipPath(name string) string  { return filepath.Join(s.dir, name+".zip") }
func (s *Store) metaPath(name string) string { return filepath.Join(s.dir, name+metaExt) }

// exists reports whether any asset of the named template is present.
func (s *Store) exists(name string) (bool, error) {
	for _, p := range []string{s.dirPath(name), s.zipPath(name), s.metaPath(name)} {
		ok, err := afero.Exists(s.fs, p)
		if err != nil {
			return false, err
		}

		if ok {
			return true, nil
		}
	}

	return false, nil
}

func (s *Store) writeMetadata(name string, meta Metadata) error {
	data, err := yaml.Marshal(meta)
	if err != nil {
		return fmt.Errorf("encoding metadata for %q: %w", name, err)
	}

	return afero.WriteFile(s.fs, s.metaPath(name), data, 0o644)
}

func (s *Store) readMetadata(name string) (Metadata, error) {
	data, err := afero.ReadFile(s.fs, s.metaPath(name))
	if err != nil {
		return Metadata{}, err
	}

	var meta Metadata
	if err := yaml.Unmarshal(data, &meta); err != nil {
		return Metadata{}, fmt.Errorf("%w: %s", ErrInvalidMetadata, err)
	}

	return meta, nil
}

// download fetches a URL template's archive and flips its status to
// downloaded when metadata is present.
func (s *Store) download(ctx context.Context, name, url string) error {
	fmt.Fprintf(s.Output, "Downloading template '%s' from %s...\n", name, url)

	if err := s.fetch(ctx, url, s.zipPath(name)); err != nil {
		return fmt.Errorf("downloading template %q: %w", name, err)
	}

	meta, err := s.readMetadata(name)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}

		return err
	}

	meta.Status = StatusDownloaded

	return s.writeMetadata(name, meta)
}

func fetchURL(ctx context.Context, url, dst string) error {
	cli := getter.Client{
		DisableSymlinks: true,
	}

	req := &getter.Request{
		Src:     url,
		Dst:     dst,
		GetMode: getter.ModeFile,
	}

	_, err := cli.Get(ctx, req)

	return err
}

func cloneRepo(ctx context.Context, url, dst string) error {
	_, err := git.PlainCloneContext(ctx, dst, false, &git.CloneOptions{URL: url})

	return err
}

func pullRepo(ctx context.Context, dir string) error {
	repo, err := git.PlainOpen(dir)
	if err != nil {
		return err
	}

	wt, err := repo.Worktree()
	if err != nil {
		return err
	}

	err = wt.PullContext(ctx, &git.PullOptions{RemoteName: "origin"})
	if errors.Is(err, git.NoErrAlreadyUpToDate) {
		return nil
	}

	return err
}
