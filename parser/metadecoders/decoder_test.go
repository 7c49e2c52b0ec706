package metadecoders

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sunwei/siteconf/common/maps"
)

const tomlConfig = `
site = "https://example.com"

[[integrations]]
name = "mdx"

[[integrations]]
name = "tailwind"
  [integrations.options]
  applyBaseStyles = false

[markdown]
gfm = true
  [markdown.shikiConfig]
  theme = "github-dark"
  wrap = true
`

const yamlConfig = `
site: https://example.com
integrations:
  - name: mdx
  - name: tailwind
    options:
      applyBaseStyles: false
markdown:
  gfm: true
  shikiConfig:
    theme: github-dark
    wrap: true
`

const jsonConfig = `{
  "site": "https://example.com",
  "integrations": [
    {"name": "mdx"},
    {"name": "tailwind", "options": {"applyBaseStyles": false}}
  ],
  "markdown": {"gfm": true, "shikiConfig": {"theme": "github-dark", "wrap": true}}
}`

func TestFormatFromString(t *testing.T) {
	for _, test := range []struct {
		in     string
		expect Format
	}{
		{"json", JSON},
		{"yaml", YAML},
		{"yml", YAML},
		{"toml", TOML},
		{"config.toml", TOML},
		{"site/config.YML", YAML},
		{"site.config.mjs", ""},
		{"", ""},
	} {
		assert.Equal(t, test.expect, FormatFromString(test.in), test.in)
	}
}

func TestUnmarshalToMap(t *testing.T) {
	for _, test := range []struct {
		format Format
		data   string
	}{
		{TOML, tomlConfig},
		{YAML, yamlConfig},
		{JSON, jsonConfig},
	} {
		t.Run(string(test.format), func(t *testing.T) {
			m, err := Default.UnmarshalToMap([]byte(test.data), test.format)
			require.NoError(t, err)

			p := maps.Params(m)
			assert.Equal(t, "https://example.com", p.Get("site"))
			assert.Equal(t, "github-dark", p.Get("markdown", "shikiconfig", "theme"))
			assert.Equal(t, true, p.Get("markdown", "shikiconfig", "wrap"))
			assert.Equal(t, true, p.Get("markdown", "gfm"))

			integrations, err := maps.ToSliceParams(p["integrations"])
			require.NoError(t, err)
			require.Len(t, integrations, 2)
			assert.Equal(t, "mdx", integrations[0]["name"])
			assert.Equal(t, "tailwind", integrations[1]["name"])
			assert.Equal(t, false, integrations[1].Get("options", "applybasestyles"))
		})
	}
}

func TestUnmarshalToMapInvalid(t *testing.T) {
	_, err := Default.UnmarshalToMap([]byte(`site = `), TOML)
	assert.Error(t, err)

	_, err = Default.UnmarshalToMap([]byte(`{}`), Format("ini"))
	assert.Error(t, err)

	m, err := Default.UnmarshalToMap(nil, TOML)
	require.NoError(t, err)
	assert.Empty(t, m)
}

func TestUnmarshalFileToMap(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/site/config.yaml", []byte(yamlConfig), 0o644))
	require.NoError(t, afero.WriteFile(fs, "/site/site.config.mjs", []byte("export default {}"), 0o644))

	m, err := Default.UnmarshalFileToMap(fs, "/site/config.yaml")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com", m["site"])

	_, err = Default.UnmarshalFileToMap(fs, "/site/site.config.mjs")
	assert.Error(t, err)

	_, err = Default.UnmarshalFileToMap(fs, "/site/missing.toml")
	assert.Error(t, err)
}

func TestMarshal(t *testing.T) {
	in := map[string]any{"site": "https://example.com"}

	for _, f := range []Format{JSON, TOML, YAML} {
		b, err := Default.Marshal(in, f)
		require.NoError(t, err)
		m, err := Default.UnmarshalToMap(b, f)
		require.NoError(t, err)
		assert.Equal(t, "https://example.com", m["site"])
	}

	_, err := Default.Marshal(in, Format("ini"))
	assert.Error(t, err)
}
