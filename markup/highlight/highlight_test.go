package highlight

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const goCode = `package main

func main() {
	fmt.Println("a very long line of code that goes on and on and on and on and on and on and on")
}`

func TestHighlight(t *testing.T) {
	h := New(DefaultConfig)

	result, err := h.HighlightString(goCode, "go")
	require.NoError(t, err)
	assert.Contains(t, result, "<pre")
	assert.Contains(t, result, "Println")
	assert.Contains(t, result, "style=")
	assert.NotContains(t, result, "pre-wrap")
}

func TestHighlightWrapLongLines(t *testing.T) {
	cfg := DefaultConfig
	cfg.WrapLongLines = true

	result, err := New(cfg).HighlightString(goCode, "go")
	require.NoError(t, err)
	assert.Contains(t, result, "pre-wrap")
}

func TestHighlightClasses(t *testing.T) {
	cfg := DefaultConfig
	cfg.NoClasses = false

	result, err := New(cfg).HighlightString(goCode, "go")
	require.NoError(t, err)
	assert.Contains(t, result, `class="chroma"`)
}

func TestHighlightUnknownLanguage(t *testing.T) {
	result, err := New(DefaultConfig).HighlightString("just <text>", "no-such-lang")
	require.NoError(t, err)
	assert.Contains(t, result, "just &lt;text&gt;")
}

func TestStyleExists(t *testing.T) {
	assert.True(t, StyleExists("github-dark"))
	assert.True(t, StyleExists("monokai"))
	assert.False(t, StyleExists("no-such-style"))
}
