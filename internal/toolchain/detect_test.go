package toolchain

import (
	"context"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDoc(t *testing.T, content string) {
	t.Helper()

	orig := detectFs
	detectFs = afero.NewMemMapFs()
	t.Cleanup(func() { detectFs = orig })

	require.NoError(t, afero.WriteFile(detectFs, "/proj/doc.tex", []byte(content), 0o644))
}

func TestDetectProgramDirective(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"program assignment", "% !TEX program = xelatex\n\\documentclass{article}", "xelatex"},
		{"ts program prefix", "%!TEX TS-program = lualatex\n", "lualatex"},
		{"case insensitive", "% !tex PROGRAM = XeLaTeX\n", "xelatex"},
		{"bare engine name", "% !TEX xelatex\n", "xelatex"},
		{"first match wins", "% !TEX program = lualatex\n% !TEX program = xelatex\n", "lualatex"},
		{"no directive", "\\documentclass{article}\n", "pdflatex"},
		{"unrelated comment", "% just a comment\n", "pdflatex"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			writeDoc(t, tt.content)
			assert.Equal(t, tt.want, Detect(context.Background(), "/proj", "doc"))
		})
	}
}

func TestDetectIgnoresDirectiveBeyondWindow(t *testing.T) {
	content := strings.Repeat("% filler\n", magicCommentWindow) + "% !TEX program = xelatex\n"
	writeDoc(t, content)

	assert.Equal(t, "pdflatex", Detect(context.Background(), "/proj", "doc"))
}

func TestDetectMissingFile(t *testing.T) {
	orig := detectFs
	detectFs = afero.NewMemMapFs()
	t.Cleanup(func() { detectFs = orig })

	assert.Equal(t, "pdflatex", Detect(context.Background(), "/proj", "doc"))
}
