package sitemap

import (
	"encoding/xml"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sunwei/siteconf/extensions"
	"github.com/sunwei/siteconf/siteconfig"
)

func newTestBuilder(t *testing.T, siteURL string, opts extensions.SitemapOptions) *Builder {
	t.Helper()
	u, err := url.Parse(siteURL)
	require.NoError(t, err)
	b, err := NewBuilder(Config{SiteURL: u, SitemapOptions: opts})
	require.NoError(t, err)
	return b
}

func TestBuild(t *testing.T) {
	b := newTestBuilder(t, "https://example.com", extensions.DefaultSitemapOptions)

	lastMod := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	result, err := b.Build([]Page{
		{Path: "/blog/second/"},
		{Path: "/"},
		{Path: "blog/first/", LastMod: lastMod},
		{Path: "https://example.com/about/"},
		{Path: "/blog/second/"},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{
		"https://example.com/",
		"https://example.com/about/",
		"https://example.com/blog/first/",
		"https://example.com/blog/second/",
	}, result.URLs)

	require.Len(t, result.Chunks, 1)
	assert.Equal(t, "sitemap-0.xml", result.Chunks[0].Name)
	assert.Equal(t, "sitemap-index.xml", result.Index.Name)
	assert.Len(t, result.Files(), 2)

	var set urlset
	require.NoError(t, xml.Unmarshal(result.Chunks[0].Content, &set))
	assert.Contains(t, string(result.Chunks[0].Content), `<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">`)
	require.Len(t, set.URLs, 4)
	assert.Equal(t, "https://example.com/blog/first/", set.URLs[2].Loc)
	assert.Equal(t, "2024-03-01T12:00:00Z", set.URLs[2].LastMod)
	assert.Empty(t, set.URLs[0].Priority)

	var index sitemapindex
	require.NoError(t, xml.Unmarshal(result.Index.Content, &index))
	assert.Equal(t, []sitemapEntry{{Loc: "https://example.com/sitemap-0.xml"}}, index.Sitemaps)
}

func TestBuildChunks(t *testing.T) {
	opts := extensions.DefaultSitemapOptions
	opts.EntryLimit = 2
	b := newTestBuilder(t, "https://example.com/docs/", opts)

	var pages []Page
	for _, p := range []string{"/a/", "/b/", "/c/", "/d/", "/e/"} {
		pages = append(pages, Page{Path: p})
	}

	result, err := b.Build(pages)
	require.NoError(t, err)
	require.Len(t, result.Chunks, 3)

	var index sitemapindex
	require.NoError(t, xml.Unmarshal(result.Index.Content, &index))
	assert.Equal(t, []sitemapEntry{
		{Loc: "https://example.com/docs/sitemap-0.xml"},
		{Loc: "https://example.com/docs/sitemap-1.xml"},
		{Loc: "https://example.com/docs/sitemap-2.xml"},
	}, index.Sitemaps)

	var last urlset
	require.NoError(t, xml.Unmarshal(result.Chunks[2].Content, &last))
	assert.Equal(t, []entry{{Loc: "https://example.com/docs/e/"}}, last.URLs)
}

func TestBuildOptions(t *testing.T) {
	opts := extensions.DefaultSitemapOptions
	opts.Filename = "sitemap.xml"
	opts.ChangeFreq = "weekly"
	opts.Priority = 0.5
	opts.Filter = []string{"/drafts/**", "/secret/"}
	b := newTestBuilder(t, "https://example.com", opts)

	result, err := b.Build([]Page{
		{Path: "/"},
		{Path: "/drafts/wip/"},
		{Path: "/secret/"},
		{Path: "https://example.com/drafts/other/"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"https://example.com/"}, result.URLs)
	assert.Equal(t, "sitemap.xml", result.Index.Name)

	var set urlset
	require.NoError(t, xml.Unmarshal(result.Chunks[0].Content, &set))
	assert.Equal(t, []entry{{Loc: "https://example.com/", ChangeFreq: "weekly", Priority: "0.5"}}, set.URLs)
}

func TestBuildNoPages(t *testing.T) {
	b := newTestBuilder(t, "https://example.com", extensions.DefaultSitemapOptions)

	result, err := b.Build(nil)
	require.NoError(t, err)
	assert.Empty(t, result.Chunks)

	var index sitemapindex
	require.NoError(t, xml.Unmarshal(result.Index.Content, &index))
	assert.Empty(t, index.Sitemaps)
}

func TestBuildOtherHost(t *testing.T) {
	b := newTestBuilder(t, "https://example.com", extensions.DefaultSitemapOptions)

	_, err := b.Build([]Page{{Path: "https://other.com/page/"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not on site host")

	_, err = b.Build([]Page{{Path: "//other.com/page/"}})
	require.Error(t, err)
}

func TestBuildAbsoluteURLsUnderBasePath(t *testing.T) {
	opts := extensions.DefaultSitemapOptions
	opts.Filter = []string{"/drafts/**"}
	b := newTestBuilder(t, "https://example.com/blog/", opts)

	result, err := b.Build([]Page{
		{Path: "/drafts/x/"},
		{Path: "https://example.com/blog/drafts/y/"},
		{Path: "https://example.com/blog/z/#top"},
		{Path: "//example.com/blog/"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{
		"https://example.com/blog/",
		"https://example.com/blog/z/",
	}, result.URLs)

	_, err = b.Build([]Page{{Path: "https://example.com/other/"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "outside site path")
}

func TestBuildOtherScheme(t *testing.T) {
	b := newTestBuilder(t, "https://example.com/blog/", extensions.DefaultSitemapOptions)

	_, err := b.Build([]Page{{Path: "http://example.com/blog/z/"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not use site scheme")

	result, err := b.Build([]Page{{Path: "HTTPS://example.com/blog/z/"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"https://example.com/blog/z/"}, result.URLs)
}

func TestNewBuilderErrors(t *testing.T) {
	u, _ := url.Parse("https://example.com")

	_, err := NewBuilder(Config{SitemapOptions: extensions.DefaultSitemapOptions})
	assert.Error(t, err)

	_, err = NewBuilder(Config{SiteURL: u})
	assert.Error(t, err)

	opts := extensions.DefaultSitemapOptions
	opts.Filter = []string{"[a-"}
	_, err = NewBuilder(Config{SiteURL: u, SitemapOptions: opts})
	assert.Error(t, err)
}

func TestFromSiteConfig(t *testing.T) {
	site, err := siteconfig.Resolve(siteconfig.Declaration{
		SiteURL:    "https://example.com",
		Extensions: []siteconfig.ExtensionDeclaration{siteconfig.Ext("sitemap")},
	})
	require.NoError(t, err)

	cfg, found := FromSiteConfig(site)
	require.True(t, found)
	assert.Equal(t, "example.com", cfg.SiteURL.Host)
	assert.Equal(t, 45000, cfg.EntryLimit)

	site, err = siteconfig.Resolve(siteconfig.Declaration{SiteURL: "https://example.com"})
	require.NoError(t, err)
	_, found = FromSiteConfig(site)
	assert.False(t, found)
}
