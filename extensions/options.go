package extensions

import (
	"fmt"
	"reflect"

	"github.com/gobwas/glob"
	"github.com/mitchellh/mapstructure"
	"github.com/sunwei/siteconf/common/maps"
)

// Built-in extension identifiers.
const (
	MDX     = "mdx"
	Sitemap = "sitemap"
	Style   = "style"
)

// MDXOptions configures the MDX content extension.
type MDXOptions struct {
	// Whether .mdx files inherit the site markdown options.
	ExtendMarkdownConfig bool

	// Overrides the site's extended markdown flag for .mdx files.
	GFM *bool
}

// SitemapOptions configures the sitemap extension.
type SitemapOptions struct {
	// Name of the sitemap index file.
	Filename string

	// Max number of URLs per sitemap file.
	EntryLimit int

	ChangeFreq string

	// A negative value means no priority is written.
	Priority float64

	// Glob patterns matched against page paths. Matching pages are left out.
	Filter []string
}

// StyleOptions configures the styling extension.
type StyleOptions struct {
	// When false only the component and utility layers are emitted.
	ApplyBaseStyles bool
}

var (
	DefaultMDXOptions = MDXOptions{
		ExtendMarkdownConfig: true,
	}

	DefaultSitemapOptions = SitemapOptions{
		Filename:   "sitemap-index.xml",
		EntryLimit: 45000,
		Priority:   -1,
	}

	DefaultStyleOptions = StyleOptions{
		ApplyBaseStyles: true,
	}
)

var validChangeFreqs = map[string]bool{
	"":        true,
	"always":  true,
	"hourly":  true,
	"daily":   true,
	"weekly":  true,
	"monthly": true,
	"yearly":  true,
	"never":   true,
}

func decodeMDXOptions(opts maps.Params) (any, error) {
	c := DefaultMDXOptions
	if err := decodeOptions(opts, &c); err != nil {
		return nil, err
	}
	return c, nil
}

func decodeSitemapOptions(opts maps.Params) (any, error) {
	c := DefaultSitemapOptions
	if err := decodeOptions(opts, &c); err != nil {
		return nil, err
	}

	if c.Filename == "" {
		return nil, fmt.Errorf("filename must not be empty")
	}
	if c.EntryLimit <= 0 {
		return nil, fmt.Errorf("entryLimit must be positive, got %d", c.EntryLimit)
	}
	if !validChangeFreqs[c.ChangeFreq] {
		return nil, fmt.Errorf("invalid changefreq %q", c.ChangeFreq)
	}
	if c.Priority > 1 || (c.Priority < 0 && c.Priority != -1) {
		return nil, fmt.Errorf("priority must be between 0 and 1, got %v", c.Priority)
	}
	for _, pattern := range c.Filter {
		if _, err := glob.Compile(pattern, '/'); err != nil {
			return nil, fmt.Errorf("invalid filter %q: %w", pattern, err)
		}
	}

	return c, nil
}

func decodeStyleOptions(opts maps.Params) (any, error) {
	c := DefaultStyleOptions
	if err := decodeOptions(opts, &c); err != nil {
		return nil, err
	}
	return c, nil
}

func decodeOptions(opts maps.Params, target any) error {
	if len(opts) == 0 {
		return nil
	}
	d, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:  stringToSliceHookFunc,
		ErrorUnused: true,
		Result:      target,
	})
	if err != nil {
		return err
	}
	return d.Decode(opts)
}

// stringToSliceHookFunc allows a single string where a list is expected,
// e.g. filter = "/drafts/**".
func stringToSliceHookFunc(f reflect.Type, t reflect.Type, data any) (any, error) {
	if f.Kind() == reflect.String && t.Kind() == reflect.Slice && t.Elem().Kind() == reflect.String {
		return []string{data.(string)}, nil
	}
	return data, nil
}
