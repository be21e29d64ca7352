// Copyright (c) LinhMuks-DFox 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package templates

import (
	"context"
	"io"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*Store, afero.Fs) {
	t.Helper()

	mem := afero.NewMemMapFs()
	s, err := NewStoreWithFs(mem, "/store")
	require.NoError(t, err)
	s.Output = io.Discard

	return s, mem
}

func writeSourceProject(t *testing.T, fsys afero.Fs, dir string) {
	t.Helper()

	require.NoError(t, fsys.MkdirAll(dir+"/chapters", 0o755))
	require.NoError(t, afero.WriteFile(fsys, dir+"/main.tex", []byte("\\documentclass{article}"), 0o644))
	require.NoError(t, afero.WriteFile(fsys, dir+"/chapters/intro.tex", []byte("intro"), 0o644))
	require.NoError(t, afero.WriteFile(fsys, dir+"/.pdfmake", []byte("main = [main.tex]\n"), 0o644))
}

func TestRegisterLocalArchivesDirectory(t *testing.T) {
	s, mem := newTestStore(t)
	writeSourceProject(t, mem, "/src/thesis")

	require.NoError(t, s.Register(context.Background(), "thesis", "/src/thesis", "", false))

	exists, err := afero.Exists(mem, "/store/thesis.zip")
	require.NoError(t, err)
	assert.True(t, exists)

	meta, err := s.readMetadata("thesis")
	require.NoError(t, err)
	assert.Equal(t, SourceLocal, meta.Source)
	assert.Equal(t, "/src/thesis", meta.Path)
}

func TestRegisterRejectsDuplicateName(t *testing.T) {
	s, mem := newTestStore(t)
	writeSourceProject(t, mem, "/src/thesis")

	require.NoError(t, s.Register(context.Background(), "thesis", "/src/thesis", "", false))

	err := s.Register(context.Background(), "thesis", "/src/thesis", "", false)
	assert.ErrorIs(t, err, ErrTemplateExists)
}

func TestRegisterLocalMissingSource(t *testing.T) {
	s, _ := newTestStore(t)

	err := s.Register(context.Background(), "ghost", "/no/such/dir", "", false)
	assert.Error(t, err)
}

func TestRegisterURLLazyWritesMetadataOnly(t *testing.T) {
	s, mem := newTestStore(t)

	fetched := false
	s.fetch = func(context.Context, string, string) error {
		fetched = true

		return nil
	}

	require.NoError(t, s.Register(context.Background(), "remote", "", "https://example.com/t.zip", false))
	assert.False(t, fetched, "lazy registration must not download")

	exists, err := afero.Exists(mem, "/store/remote.zip")
	require.NoError(t, err)
	assert.False(t, exists)

	meta, err := s.readMetadata("remote")
	require.NoError(t, err)
	assert.Equal(t, SourceURL, meta.Source)
	assert.Equal(t, StatusLazy, meta.Status)
}

func TestRegisterURLDownloadFetchesImmediately(t *testing.T) {
	s, mem := newTestStore(t)
	writeSourceProject(t, mem, "/src/thesis")

	s.fetch = func(_ context.Context, _, dst string) error {
		return zipDir(mem, "/src/thesis", dst)
	}

	require.NoError(t, s.Register(context.Background(), "remote", "", "https://example.com/t.zip", true))

	exists, err := afero.Exists(mem, "/store/remote.zip")
	require.NoError(t, err)
	assert.True(t, exists)

	meta, err := s.readMetadata("remote")
	require.NoError(t, err)
	assert.Equal(t, StatusDownloaded, meta.Status)
}

func TestRegisterGitClonesRepository(t *testing.T) {
	s, mem := newTestStore(t)

	s.clone = func(_ context.Context, url, dst string) error {
		writeSourceProject(t, mem, dst)
		require.NoError(t, mem.MkdirAll(dst+"/.git", 0o755))

		return nil
	}

	require.NoError(t, s.Register(context.Background(), "repo", "", "https://example.com/user/repo.git", false))

	meta, err := s.readMetadata("repo")
	require.NoError(t, err)
	assert.Equal(t, SourceGit, meta.Source)
	assert.Equal(t, "https://example.com/user/repo.git", meta.URL)
}

func TestNewProjectFromZipTemplate(t *testing.T) {
	s, mem := newTestStore(t)
	writeSourceProject(t, mem, "/src/thesis")
	require.NoError(t, s.Register(context.Background(), "thesis", "/src/thesis", "", false))

	require.NoError(t, s.NewProject(context.Background(), "thesis", "/projects/mypaper"))

	for _, want := range []string{
		"/projects/mypaper/main.tex",
		"/projects/mypaper/chapters/intro.tex",
		"/projects/mypaper/.pdfmake",
		"/projects/mypaper/assets",
	} {
		exists, err := afero.Exists(mem, want)
		require.NoError(t, err)
		assert.True(t, exists, want)
	}
}

func TestNewProjectFromGitTemplateSkipsGitDir(t *testing.T) {
	s, mem := newTestStore(t)

	s.clone = func(_ context.Context, _, dst string) error {
		writeSourceProject(t, mem, dst)
		require.NoError(t, afero.WriteFile(mem, dst+"/.git/HEAD", []byte("ref"), 0o644))

		return nil
	}
	require.NoError(t, s.Register(context.Background(), "repo", "", "https://example.com/r.git", false))

	require.NoError(t, s.NewProject(context.Background(), "repo", "/projects/p"))

	exists, err := afero.Exists(mem, "/projects/p/main.tex")
	require.NoError(t, err)
	assert.True(t, exists)

	gitCopied, err := afero.Exists(mem, "/projects/p/.git")
	require.NoError(t, err)
	assert.False(t, gitCopied, ".git must not be copied into new projects")
}

func TestNewProjectLazyTemplateDownloadsOnFirstUse(t *testing.T) {
	s, mem := newTestStore(t)
	writeSourceProject(t, mem, "/src/thesis")

	fetches := 0
	s.fetch = func(_ context.Context, _, dst string) error {
		fetches++

		return zipDir(mem, "/src/thesis", dst)
	}

	require.NoError(t, s.Register(context.Background(), "remote", "", "https://example.com/t.zip", false))
	require.NoError(t, s.NewProject(context.Background(), "remote", "/projects/p"))

	assert.Equal(t, 1, fetches)

	meta, err := s.readMetadata("remote")
	require.NoError(t, err)
	assert.Equal(t, StatusDownloaded, meta.Status, "lazy template must be marked downloaded after first use")

	exists, err := afero.Exists(mem, "/projects/p/main.tex")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestNewProjectRefusesExistingTarget(t *testing.T) {
	s, mem := newTestStore(t)
	require.NoError(t, mem.MkdirAll("/projects/p", 0o755))

	err := s.NewProject(context.Background(), "whatever", "/projects/p")
	assert.ErrorIs(t, err, ErrProjectExists)
}

func TestNewProjectUnknownTemplate(t *testing.T) {
	s, _ := newTestStore(t)

	err := s.NewProject(context.Background(), "nope", "/projects/p")
	assert.ErrorIs(t, err, ErrTemplateNotFound)
}

func TestListClassifiesTemplates(t *testing.T) {
	s, mem := newTestStore(t)
	writeSourceProject(t, mem, "/src/thesis")

	require.NoError(t, s.Register(context.Background(), "local-one", "/src/thesis", "", false))
	require.NoError(t, s.Register(context.Background(), "lazy-one", "", "https://example.com/t.zip", false))

	s.clone = func(_ context.Context, _, dst string) error {
		return mem.MkdirAll(dst, 0o755)
	}
	require.NoError(t, s.Register(context.Background(), "git-one", "", "https://example.com/r.git", false))

	entries, err := s.List(context.Background())
	require.NoError(t, err)

	byName := map[string]string{}
	for _, e := range entries {
		byName[e.Name] = e.Details
	}

	assert.Equal(t, "(git repo)", byName["git-one"])
	assert.Equal(t, "(local)", byName["local-one"])
	assert.Equal(t, "(url, lazy download)", byName["lazy-one"])
}

func TestDeleteRemovesAllAssets(t *testing.T) {
	s, mem := newTestStore(t)
	writeSourceProject(t, mem, "/src/thesis")
	require.NoError(t, s.Register(context.Background(), "thesis", "/src/thesis", "", false))

	require.NoError(t, s.Delete(context.Background(), "thesis"))

	for _, p := range []string{"/store/thesis.zip", "/store/thesis" + metaExt} {
		exists, err := afero.Exists(mem, p)
		require.NoError(t, err)
		assert.False(t, exists, p)
	}
}

func TestDeleteUnknownTemplate(t *testing.T) {
	s, _ := newTestStore(t)

	err := s.Delete(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrTemplateNotFound)
}

func TestUpdateGitTemplatePulls(t *testing.T) {
	s, mem := newTestStore(t)

	s.clone = func(_ context.Context, _, dst string) error {
		return mem.MkdirAll(dst, 0o755)
	}
	require.NoError(t, s.Register(context.Background(), "repo", "", "https://example.com/r.git", false))

	pulled := ""
	s.pull = func(_ context.Context, dir string) error {
		pulled = dir

		return nil
	}

	require.NoError(t, s.Update(context.Background(), "repo"))
	assert.Equal(t, "/store/repo", pulled)
}

func TestUpdateURLTemplateRedownloads(t *testing.T) {
	s, mem := newTestStore(t)
	writeSourceProject(t, mem, "/src/thesis")

	fetches := 0
	s.fetch = func(_ context.Context, _, dst string) error {
		fetches++

		return zipDir(mem, "/src/thesis", dst)
	}

	require.NoError(t, s.Register(context.Background(), "remote", "", "https://example.com/t.zip", true))
	require.NoError(t, s.Update(context.Background(), "remote"))

	assert.Equal(t, 2, fetches)
}

func TestUpdateLocalTemplateRefused(t *testing.T) {
	s, mem := newTestStore(t)
	writeSourceProject(t, mem, "/src/thesis")
	require.NoError(t, s.Register(context.Background(), "thesis", "/src/thesis", "", false))

	err := s.Update(context.Background(), "thesis")
	assert.ErrorIs(t, err, ErrNotUpdatable)
}

func TestUpdateUnknownTemplate(t *testing.T) {
	s, _ := newTestStore(t)

	err := s.Update(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrTemplateNotFound)
}

func TestZipRoundTripPreservesTree(t *testing.T) {
	mem := afero.NewMemMapFs()
	writeSourceProject(t, mem, "/src/thesis")

	require.NoError(t, zipDir(mem, "/src/thesis", "/out.zip"))
	require.NoError(t, unzip(mem, "/out.zip", "/restored"))

	data, err := afero.ReadFile(mem, "/restored/chapters/intro.tex")
	require.NoError(t, err)
	assert.Equal(t, "intro", string(data))
}
