// Copyright (c) LinhMuks-DFox 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package texlog extracts actionable error context from noisy LaTeX tool
// output.
package texlog

import (
	"regexp"
	"strings"
)

// tailLines bounds the fallback excerpt when no error marker is found.
const tailLines = 20

// fileLineRe matches file-line-error style messages, e.g. "./doc.tex:12: ...".
var fileLineRe = regexp.MustCompile(`^.*:\d+:.*`)

// Excerpt is a bounded, human-actionable selection of output lines.
type Excerpt struct {
	// Lines is the selected output, in original order.
	Lines []string
	// FoundMarkers reports whether any error marker matched; when false,
	// Lines is the tail of the output.
	FoundMarkers bool
}

// Summarize scans tool output line by line for error markers: lines in
// file:line:message form and lines starting with "! ". A "! " line that is
// immediately followed by an "l.<n>" source-context line pulls that line
// into the excerpt too. When nothing matches, the last lines of the output
// are returned so the user still sees how the tool ended.
func Summarize(output string) Excerpt {
	lines := strings.Split(output, "\n")

	var selected []string

	for i, line := range lines {
		fatal := strings.HasPrefix(line, "! ")
		if !fatal && !fileLineRe.MatchString(line) {
			continue
		}

		selected = append(selected, line)

		if fatal && i+1 < len(lines) {
			if next := strings.TrimSpace(lines[i+1]); strings.HasPrefix(next, "l.") {
				selected = append(selected, next)
			}
		}
	}

	if len(selected) > 0 {
		return Excerpt{Lines: selected, FoundMarkers: true}
	}

	if len(lines) > tailLines {
		lines = lines[len(lines)-tailLines:]
	}

	return Excerpt{Lines: lines}
}
