package color

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColorizeDisabled(t *testing.T) {
	orig := enabled
	defer func() { enabled = orig }()

	enabled = false
	assert.Equal(t, "hello", Colorize("hello", FgRed))
}

func TestColorizeEnabled(t *testing.T) {
	orig := enabled
	defer func() { enabled = orig }()

	enabled = true
	assert.Equal(t, "\033[31mhello\033[0m", Colorize("hello", FgRed))
}

func TestColorizeMultipleCodes(t *testing.T) {
	orig := enabled
	defer func() { enabled = orig }()

	enabled = true
	assert.Equal(t, "\033[1;32mok\033[0m", Colorize("ok", Bold, FgGreen))
}
