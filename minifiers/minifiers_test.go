package minifiers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sunwei/siteconf/config"
)

func TestNew(t *testing.T) {
	m, err := New(nil)
	require.NoError(t, err)
	assert.False(t, m.MinifyOutput)

	minify := func(mediaType, in string) string {
		b, err := m.MinifyBytes(mediaType, []byte(in))
		require.NoError(t, err, mediaType)
		return string(b)
	}

	assert.Equal(t, "body{color:red}", minify("text/css", "body {\n  color: #ff0000;\n}\n"))
	assert.Equal(t, `{"a":1,"b":[1,2]}`, minify("application/json", "{ \"a\": 1,\n  \"b\": [1, 2] }"))

	xml := minify("application/xml", "<urlset>\n  <url>\n    <loc>https://example.com/</loc>\n  </url>\n</urlset>\n")
	assert.Contains(t, xml, "<urlset><url><loc>https://example.com/</loc></url></urlset>")

	html := minify("text/html", "<p>\n  Hello   <b>World</b>\n</p>")
	assert.Contains(t, html, "Hello <b>World</b>")
	assert.NotContains(t, html, "  ")

	assert.Equal(t, "  keep  \n as is ", minify("text/plain", "  keep  \n as is "))
}

func TestNewWithConfig(t *testing.T) {
	cfg := config.New()
	cfg.Set("minify", map[string]any{
		"minifyOutput": true,
		"disableCSS":   true,
	})

	m, err := New(cfg)
	require.NoError(t, err)
	assert.True(t, m.MinifyOutput)

	css := "body {\n  color: red;\n}\n"
	b, err := m.MinifyBytes("text/css", []byte(css))
	require.NoError(t, err)
	assert.Equal(t, css, string(b))
}

func TestNewInvalidConfig(t *testing.T) {
	cfg := config.New()
	cfg.Set("minify", map[string]any{"minifyOutput": map[string]any{"a": 1}})

	_, err := New(cfg)
	assert.Error(t, err)
}
