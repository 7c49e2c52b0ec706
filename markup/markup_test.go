package markup

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sunwei/siteconf/markup/converter"
	"github.com/sunwei/siteconf/siteconfig"
)

func render(t *testing.T, p converter.Provider, content string) string {
	t.Helper()
	conv, err := p.New(converter.DocumentContext{DocumentName: "doc"})
	require.NoError(t, err)
	b, err := conv.Convert(converter.RenderContext{Src: []byte(content)})
	require.NoError(t, err)
	return string(b.Bytes())
}

func TestNewConverterProvider(t *testing.T) {
	site, err := siteconfig.Resolve(siteconfig.Declaration{
		SiteURL:    "https://example.com",
		Extensions: []siteconfig.ExtensionDeclaration{siteconfig.Ext("mdx", map[string]any{"gfm": true})},
		Markdown: siteconfig.MarkdownDeclaration{
			SyntaxTheme:            siteconfig.String("monokai"),
			EnableExtendedMarkdown: siteconfig.Bool(false),
		},
	})
	require.NoError(t, err)

	cp, err := NewConverterProvider(site, nil)
	require.NoError(t, err)

	for _, name := range []string{"goldmark", "markdown", "md", "Markdown"} {
		p := cp.Get(name)
		require.NotNil(t, p, name)
		assert.Equal(t, "goldmark", p.Name())
	}
	assert.Nil(t, cp.Get("asciidoc"))
	assert.Equal(t, "monokai", cp.GetMarkupConfig().Highlight.Style)
	assert.NotNil(t, cp.GetHighlighter())

	table := "| a | b |\n|---|---|\n| 1 | 2 |\n"

	assert.NotContains(t, render(t, cp.Get("md"), table), "<table>")

	mdx := cp.Get("mdx")
	require.NotNil(t, mdx)
	assert.Equal(t, "mdx", mdx.Name())
	assert.Contains(t, render(t, mdx, table), "<table>")
}

func TestNewConverterProviderWithoutMDX(t *testing.T) {
	site, err := siteconfig.Resolve(siteconfig.Declaration{SiteURL: "https://example.com"})
	require.NoError(t, err)

	cp, err := NewConverterProvider(site, nil)
	require.NoError(t, err)
	assert.Nil(t, cp.Get("mdx"))
	assert.NotNil(t, cp.Get("md"))
}
