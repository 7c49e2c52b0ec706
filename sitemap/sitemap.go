// Package sitemap writes the sitemap protocol files for a resolved site:
// one or more urlset chunks and an index referencing them.
package sitemap

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	radix "github.com/armon/go-radix"
	"github.com/gobwas/glob"
	"github.com/sunwei/siteconf/extensions"
	"github.com/sunwei/siteconf/log"
	"github.com/sunwei/siteconf/siteconfig"
)

const (
	xmlns = "http://www.sitemaps.org/schemas/sitemap/0.9"

	// MediaType of the generated files.
	MediaType = "application/xml"
)

// Page is a page to list in the sitemap.
type Page struct {
	// Path relative to the site root, e.g. "/blog/first-post/", or an
	// absolute URL on the site's host.
	Path string

	LastMod time.Time
}

// Config configures a Builder.
type Config struct {
	SiteURL *url.URL
	extensions.SitemapOptions
}

// FromSiteConfig returns the sitemap config for site, and false if the
// sitemap extension is not active.
func FromSiteConfig(site siteconfig.SiteConfig) (Config, bool) {
	opts, found := site.Sitemap()
	if !found {
		return Config{}, false
	}
	return Config{SiteURL: site.SiteURL, SitemapOptions: opts}, true
}

// File is a generated sitemap file.
type File struct {
	// Name relative to the publish root, e.g. "sitemap-0.xml".
	Name    string
	Content []byte
}

// Result holds the files written by Build.
type Result struct {
	Index  File
	Chunks []File

	// URLs listed, sorted.
	URLs []string
}

// Files returns the index followed by the chunks.
func (r Result) Files() []File {
	return append([]File{r.Index}, r.Chunks...)
}

// Builder builds sitemaps.
type Builder struct {
	cfg     Config
	filters []glob.Glob
}

// NewBuilder creates a Builder for cfg.
func NewBuilder(cfg Config) (*Builder, error) {
	if cfg.SiteURL == nil {
		return nil, fmt.Errorf("sitemap: site URL must be set")
	}
	if cfg.EntryLimit <= 0 {
		return nil, fmt.Errorf("sitemap: entry limit must be positive, got %d", cfg.EntryLimit)
	}
	if cfg.Filename == "" {
		cfg.Filename = extensions.DefaultSitemapOptions.Filename
	}

	b := &Builder{cfg: cfg}
	for _, pattern := range cfg.Filter {
		g, err := glob.Compile(pattern, '/')
		if err != nil {
			return nil, fmt.Errorf("sitemap: invalid filter %q: %w", pattern, err)
		}
		b.filters = append(b.filters, g)
	}

	return b, nil
}

type urlset struct {
	XMLName xml.Name `xml:"urlset"`
	XMLNS   string   `xml:"xmlns,attr"`
	URLs    []entry  `xml:"url"`
}

type entry struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod,omitempty"`
	ChangeFreq string `xml:"changefreq,omitempty"`
	Priority   string `xml:"priority,omitempty"`
}

type sitemapindex struct {
	XMLName  xml.Name       `xml:"sitemapindex"`
	XMLNS    string         `xml:"xmlns,attr"`
	Sitemaps []sitemapEntry `xml:"sitemap"`
}

type sitemapEntry struct {
	Loc string `xml:"loc"`
}

// Build lists pages in sitemap-N.xml chunks of at most EntryLimit URLs,
// sorted by URL, and an index file referencing each chunk. Pages matching
// a filter are left out and duplicate URLs are listed once.
func (b *Builder) Build(pages []Page) (Result, error) {
	log.Process("Sitemap", "collect page URLs")
	// Keyed by loc, walked in sorted order.
	entries := radix.New()
	for _, p := range pages {
		loc, path, err := b.absURL(p.Path)
		if err != nil {
			return Result{}, err
		}
		if b.filtered(path) {
			continue
		}

		e := entry{Loc: loc, ChangeFreq: b.cfg.ChangeFreq}
		if !p.LastMod.IsZero() {
			e.LastMod = p.LastMod.UTC().Format(time.RFC3339)
		}
		if b.cfg.Priority >= 0 {
			e.Priority = strconv.FormatFloat(b.cfg.Priority, 'f', -1, 64)
		}
		entries.Insert(loc, e)
	}

	var (
		result Result
		all    []entry
	)
	entries.Walk(func(loc string, v any) bool {
		result.URLs = append(result.URLs, loc)
		all = append(all, v.(entry))
		return false
	})

	log.Process("Sitemap", "write chunks")
	index := sitemapindex{XMLNS: xmlns}
	for i := 0; i*b.cfg.EntryLimit < len(result.URLs); i++ {
		end := (i + 1) * b.cfg.EntryLimit
		if end > len(result.URLs) {
			end = len(result.URLs)
		}

		set := urlset{XMLNS: xmlns, URLs: all[i*b.cfg.EntryLimit : end]}

		name := fmt.Sprintf("sitemap-%d.xml", i)
		content, err := encode(set)
		if err != nil {
			return Result{}, err
		}
		result.Chunks = append(result.Chunks, File{Name: name, Content: content})
		index.Sitemaps = append(index.Sitemaps, sitemapEntry{Loc: b.join(name)})
	}

	log.Process("Sitemap", "write index")
	content, err := encode(index)
	if err != nil {
		return Result{}, err
	}
	result.Index = File{Name: b.cfg.Filename, Content: content}

	return result, nil
}

func (b *Builder) filtered(path string) bool {
	for _, g := range b.filters {
		if g.Match(path) {
			return true
		}
	}
	return false
}

// absURL returns the absolute URL of the page at s and its path relative
// to the site root. Absolute URLs must use the site's scheme and host and
// live under its base path.
func (b *Builder) absURL(s string) (string, string, error) {
	u, err := url.Parse(s)
	if err != nil {
		return "", "", fmt.Errorf("sitemap: invalid page URL %q: %w", s, err)
	}

	if u.IsAbs() || u.Host != "" {
		site := b.cfg.SiteURL
		if !strings.EqualFold(u.Host, site.Host) {
			return "", "", fmt.Errorf("sitemap: page URL %q is not on site host %q", s, site.Host)
		}
		if u.Scheme != "" && !strings.EqualFold(u.Scheme, site.Scheme) {
			return "", "", fmt.Errorf("sitemap: page URL %q does not use site scheme %q", s, site.Scheme)
		}

		basePath := strings.TrimSuffix(site.Path, "/")
		if basePath != "" && u.Path != basePath && !strings.HasPrefix(u.Path, basePath+"/") {
			return "", "", fmt.Errorf("sitemap: page URL %q is outside site path %q", s, site.Path)
		}

		// From here on it is a path relative to the site root.
		u = &url.URL{Path: strings.TrimPrefix(u.Path, basePath), RawQuery: u.RawQuery}
	}

	path := "/" + strings.TrimPrefix(u.Path, "/")
	loc := b.join(strings.TrimPrefix(u.EscapedPath(), "/"))
	if u.RawQuery != "" {
		loc += "?" + u.RawQuery
	}

	return loc, path, nil
}

// join appends rel to the site URL, keeping any base path the site URL has.
func (b *Builder) join(rel string) string {
	base := *b.cfg.SiteURL
	base.RawQuery = ""
	base.Fragment = ""
	return strings.TrimSuffix(base.String(), "/") + "/" + rel
}

func encode(v any) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(xml.Header)

	enc := xml.NewEncoder(&buf)
	enc.Indent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("sitemap: failed to encode: %w", err)
	}
	buf.WriteByte('\n')

	return buf.Bytes(), nil
}
