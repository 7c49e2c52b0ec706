package config

import (
	"sync"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sunwei/siteconf/common/maps"
)

func TestDefaultConfigProvider(t *testing.T) {
	t.Run("Set and Get", func(t *testing.T) {
		cfg := New()
		cfg.Set("Site", "https://example.com")
		cfg.Set("markdown.shikiConfig.theme", "github-dark")
		cfg.Set("markdown", map[string]any{"GFM": true})

		assert.Equal(t, "https://example.com", cfg.GetString("site"))
		assert.Equal(t, "github-dark", cfg.GetString("markdown.shikiconfig.theme"))
		assert.True(t, cfg.GetBool("markdown.gfm"))
		assert.Equal(t, maps.Params{"gfm": true, "shikiconfig": maps.Params{"theme": "github-dark"}}, cfg.GetParams("markdown"))
	})

	t.Run("Set root", func(t *testing.T) {
		cfg := New()
		cfg.Set("", map[string]any{"Site": "https://a.org", "style": map[string]any{"injectBaseStyles": true}})
		cfg.Set("", map[string]any{"style": map[string]any{"configFile": "tw.mjs"}})

		assert.Equal(t, "https://a.org", cfg.Get("site"))
		assert.Equal(t, maps.Params{"injectbasestyles": true, "configfile": "tw.mjs"}, cfg.GetParams("style"))
	})

	t.Run("IsSet", func(t *testing.T) {
		cfg := NewFrom(maps.Params{"markdown": maps.Params{"gfm": false}, "site": "x"})

		assert.True(t, cfg.IsSet("markdown.gfm"))
		assert.True(t, cfg.IsSet("MARKDOWN"))
		assert.False(t, cfg.IsSet("markdown.theme"))
		assert.False(t, cfg.IsSet("site.host"))
		assert.False(t, cfg.GetBool("markdown.gfm"))
	})

	t.Run("SetDefaults", func(t *testing.T) {
		cfg := NewFrom(maps.Params{
			"markdown": maps.Params{"shikiconfig": maps.Params{"wrap": false}},
		})
		cfg.SetDefaults(maps.Params{
			"markdown": maps.Params{
				"gfm":         true,
				"shikiConfig": maps.Params{"theme": "github-dark", "wrap": true},
			},
			"sitemap": maps.Params{"entryLimit": 45000},
		})

		assert.Equal(t, false, cfg.Get("markdown.shikiconfig.wrap"))
		assert.Equal(t, "github-dark", cfg.GetString("markdown.shikiconfig.theme"))
		assert.True(t, cfg.GetBool("markdown.gfm"))
		assert.Equal(t, 45000, cfg.GetInt("sitemap.entrylimit"))
	})

	t.Run("Get non map", func(t *testing.T) {
		cfg := NewFrom(maps.Params{"site": "https://example.com"})
		assert.Nil(t, cfg.Get("site.host"))
		assert.Nil(t, cfg.GetParams("site"))
		assert.Nil(t, cfg.GetParams("missing"))
	})

	t.Run("Concurrent", func(t *testing.T) {
		cfg := New()
		var wg sync.WaitGroup
		for i := 0; i < 10; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				cfg.Set("markdown.gfm", i%2 == 0)
				_ = cfg.GetBool("markdown.gfm")
				_ = cfg.IsSet("markdown.gfm")
			}(i)
		}
		wg.Wait()
		assert.True(t, cfg.IsSet("markdown.gfm"))
	})
}

func TestCompositeConfig(t *testing.T) {
	base := NewFrom(maps.Params{"site": "https://example.com", "markdown": maps.Params{"gfm": true}})
	layer := New()
	cfg := NewCompositeConfig(base, layer)

	cfg.Set("site", "https://staging.example.com")

	assert.Equal(t, "https://staging.example.com", cfg.GetString("site"))
	assert.Equal(t, "https://example.com", base.GetString("site"))
	assert.True(t, cfg.GetBool("markdown.gfm"))
	assert.True(t, cfg.IsSet("site"))
	assert.False(t, cfg.IsSet("style"))
}

func TestCompositeConfigLayers(t *testing.T) {
	base := NewFrom(maps.Params{
		"minify": maps.Params{"minifyOutput": false, "disableCSS": true},
		"site":   "https://example.com",
	})
	file := NewFrom(maps.Params{"minify": maps.Params{"minifyOutput": true}})
	flags := NewFrom(maps.Params{"site": "https://flags.example.com"})

	cfg := NewCompositeConfig(base, file, flags)

	assert.Equal(t, "https://flags.example.com", cfg.GetString("site"))
	assert.True(t, cfg.GetBool("minify.minifyOutput"))
	assert.Equal(t, maps.Params{"minifyoutput": true, "disablecss": true}, cfg.GetParams("minify"))
	assert.Nil(t, cfg.GetParams("nope"))

	cfg.Set("site", "https://set.example.com")
	assert.Equal(t, "https://set.example.com", flags.GetString("site"))
	assert.Equal(t, "https://example.com", base.GetString("site"))
}

func TestGetFirst(t *testing.T) {
	cfg := NewFrom(maps.Params{"baseurl": "https://example.com"})

	v, key, found := GetFirst(cfg, "site", "siteURL", "baseURL")
	assert.True(t, found)
	assert.Equal(t, "baseURL", key)
	assert.Equal(t, "https://example.com", v)

	_, _, found = GetFirst(cfg, "nope")
	assert.False(t, found)
}

func TestGetStringSlicePreserveString(t *testing.T) {
	cfg := NewFrom(maps.Params{"a": "/drafts/**", "b": []any{"/x/*", "/y/*"}})

	assert.Equal(t, []string{"/drafts/**"}, GetStringSlicePreserveString(cfg, "a"))
	assert.Equal(t, []string{"/x/*", "/y/*"}, GetStringSlicePreserveString(cfg, "b"))
	assert.Equal(t, []string{"/x/*", "/y/*"}, cfg.GetStringSlice("b"))
}

func TestFromFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "config.toml", []byte(`
site = "https://example.com"
[markdown.shikiConfig]
theme = "nord"
`), 0o644))

	cfg, err := FromFile(fs, "config.toml")
	require.NoError(t, err)
	assert.Equal(t, "nord", cfg.GetString("markdown.shikiconfig.theme"))

	_, err = FromFile(fs, "missing.toml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `failed to load config "missing.toml"`)
}

func TestFromConfigString(t *testing.T) {
	cfg, err := FromConfigString(`{"site": "https://example.com"}`, "json")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com", cfg.GetString("site"))

	_, err = FromConfigString(`site: [`, "yaml")
	assert.Error(t, err)
}
