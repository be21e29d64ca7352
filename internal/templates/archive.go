// Copyright (c) LinhMuks-DFox 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package templates

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

const gitDirName = ".git"

// zipDir archives the contents of srcDir (not the directory itself) into
// a zip file at dst.
func zipDir(fsys afero.Fs, srcDir, dst string) error {
	out, err := fsys.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close() //nolint:errcheck

	zw := zip.NewWriter(out)

	err = afero.Walk(fsys, srcDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		rel, err := filepath.Rel(srcDir, path)
		if err != nil {
			return err
		}

		if rel == "." {
			return nil
		}

		name := filepath.ToSlash(rel)
		if info.IsDir() {
			_, err := zw.Create(name + "/")

			return err
		}

		w, err := zw.Create(name)
		if err != nil {
			return err
		}

		f, err := fsys.Open(path)
		if err != nil {
			return err
		}
		defer f.Close() //nolint:errcheck

		_, err = io.Copy(w, f)

		return err
	})
	if err != nil {
		zw.Close() //nolint:errcheck

		return err
	}

	if err := zw.Close(); err != nil {
		return err
	}

	return out.Close()
}

// unzip extracts a zip archive into destDir, rejecting entries that would
// escape it.
func unzip(fsys afero.Fs, src, destDir string) error {
	f, err := fsys.Open(src)
	if err != nil {
		return err
	}
	defer f.Close() //nolint:errcheck

	fi, err := f.Stat()
	if err != nil {
		return err
	}

	zr, err := zip.NewReader(f, fi.Size())
	if err != nil {
		return fmt.Errorf("reading archive %q: %w", src, err)
	}

	for _, entry := range zr.File {
		name := filepath.FromSlash(entry.Name)
		if strings.Contains(name, "..") {
			return fmt.Errorf("archive entry %q escapes the target directory", entry.Name)
		}

		target := filepath.Join(destDir, name)

		if entry.FileInfo().IsDir() {
			if err := fsys.MkdirAll(target, 0o755); err != nil {
				return err
			}

			continue
		}

		if err := fsys.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return err
		}

		if err := extractFile(fsys, entry, target); err != nil {
			return err
		}
	}

	return nil
}

func extractFile(fsys afero.Fs, entry *zip.File, target string) error {
	r, err := entry.Open()
	if err != nil {
		return err
	}
	defer r.Close() //nolint:errcheck

	w, err := fsys.Create(target)
	if err != nil {
		return err
	}
	defer w.Close() //nolint:errcheck

	if _, err := io.Copy(w, r); err != nil {
		return err
	}

	return w.Close()
}

// copyTree copies src into dst recursively, skipping any entry whose base
// name matches skip.
func copyTree(fsys afero.Fs, src, dst, skip string) error {
	return afero.Walk(fsys, src, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if skip != "" && info.Name() == skip {
			if info.IsDir() {
				return filepath.SkipDir
			}

			return nil
		}

		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}

		target := filepath.Join(dst, rel)

		if info.IsDir() {
			return fsys.MkdirAll(target, 0o755)
		}

		in, err := fsys.Open(path)
		if err != nil {
			return err
		}
		defer in.Close() //nolint:errcheck

		out, err := fsys.Create(target)
		if err != nil {
			return err
		}
		defer out.Close() //nolint:errcheck

		if _, err := io.Copy(out, in); err != nil {
			return err
		}

		return out.Close()
	})
}
