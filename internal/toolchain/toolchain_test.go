package toolchain

import (
	"context"
	"io"
	"testing"

	"github.com/LinhMuks-DFox/Smart-Latex/internal/pdfmake"
	"github.com/prashantv/gostub"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func silenceOutput(t *testing.T) {
	t.Helper()

	stubs := gostub.Stub(&output, io.Discard)
	t.Cleanup(stubs.Reset)
}

func names(steps []Step) []string {
	out := make([]string, len(steps))
	for i, s := range steps {
		out[i] = s.Name
	}

	return out
}

func TestResolveDefaultChain(t *testing.T) {
	silenceOutput(t)

	steps := Resolve(context.Background(), &pdfmake.Config{Compiler: "xelatex"}, "/proj", "doc")
	assert.Equal(t, []string{"xelatex", "biber", "xelatex", "xelatex"}, names(steps))
}

func TestResolveLegacyEngineAppendsDVIConversion(t *testing.T) {
	silenceOutput(t)

	steps := Resolve(context.Background(), &pdfmake.Config{Compiler: "latex"}, "/proj", "doc")
	assert.Equal(t, []string{"latex", "biber", "latex", "latex", "dvipdfmx"}, names(steps))
}

func TestResolveExplicitChainSubstitutesPlaceholder(t *testing.T) {
	silenceOutput(t)

	cfg := &pdfmake.Config{
		Compiler:  "lualatex",
		ToolChain: []string{"compiler", "bibtex", "compiler", "makeglossaries", "compiler"},
	}

	steps := Resolve(context.Background(), cfg, "/proj", "doc")
	assert.Equal(t, []string{"lualatex", "bibtex", "lualatex", "makeglossaries", "lualatex"}, names(steps))
}

func TestResolveUnknownToolPassesThrough(t *testing.T) {
	silenceOutput(t)

	cfg := &pdfmake.Config{Compiler: "pdflatex", ToolChain: []string{"mytool"}}

	steps := Resolve(context.Background(), cfg, "/proj", "doc")
	require.Len(t, steps, 1)
	assert.Equal(t, "mytool", steps[0].Path)
	assert.Equal(t, []string{"doc"}, steps[0].Args)
}

func TestResolveUsesDetectedEngineWhenNoCompilerConfigured(t *testing.T) {
	silenceOutput(t)
	writeDoc(t, "% !TEX program = xelatex\n")

	steps := Resolve(context.Background(), &pdfmake.Config{}, "/proj", "doc")
	assert.Equal(t, []string{"xelatex", "biber", "xelatex", "xelatex"}, names(steps))
}

func TestEngineStepArguments(t *testing.T) {
	step := stepFor("pdflatex", "paper")
	assert.Equal(t, []string{"-file-line-error", "-interaction=nonstopmode", "paper.tex"}, step.Args)
	assert.Equal(t, "pdflatex -file-line-error -interaction=nonstopmode paper.tex", step.String())
}
