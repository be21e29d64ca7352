// Copyright (c) LinhMuks-DFox 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package builder turns target documents into build jobs and drives them
// through their toolchains, one job at a time.
package builder

import (
	"errors"

	"github.com/LinhMuks-DFox/Smart-Latex/internal/pdfmake"
)

var (
	// ErrNoDocuments is returned when target resolution produced nothing to build.
	ErrNoDocuments = errors.New("no main document found")
	// ErrOutputCountMismatch is returned when the configured out list does
	// not pair up with the main list.
	ErrOutputCountMismatch = errors.New("number of output names does not match number of documents")
	// ErrOutputWithMultipleDocs is returned when a single CLI output name is
	// combined with more than one document.
	ErrOutputWithMultipleDocs = errors.New("an output name override requires exactly one document")
)

// Job is one document paired with an optional desired output name.
type Job struct {
	// Base is the document's base name, without directory or extension.
	Base string
	// OutName, when non-empty, is the desired name of the final artifact.
	OutName string
}

// BuildJobs validates the batch and pairs each document with its output
// name: positionally from the config's out list when present, else the CLI
// override, else none. Validation failures abort before anything is spawned.
func BuildJobs(docs []string, cfg *pdfmake.Config, cliOutName string) ([]Job, error) {
	if len(docs) == 0 {
		return nil, ErrNoDocuments
	}

	if cliOutName != "" && len(docs) > 1 {
		return nil, ErrOutputWithMultipleDocs
	}

	if len(cfg.Out) > 0 && len(cfg.Out) != len(docs) {
		return nil, ErrOutputCountMismatch
	}

	jobs := make([]Job, len(docs))

	for i, doc := range docs {
		jobs[i] = Job{Base: doc}

		switch {
		case len(cfg.Out) > 0:
			jobs[i].OutName = cfg.Out[i]
		case cliOutName != "":
			jobs[i].OutName = cliOutName
		}
	}

	return jobs, nil
}
