// Package siteconfig resolves a site declaration into the validated,
// read-only SiteConfig consumed by the build.
package siteconfig

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/mitchellh/hashstructure"
	"github.com/sunwei/siteconf/common/loggers"
	"github.com/sunwei/siteconf/common/maps"
	"github.com/sunwei/siteconf/extensions"
	"github.com/sunwei/siteconf/log"
)

// Defaults for options the declaration leaves unset.
const (
	DefaultSyntaxTheme            = "github-dark"
	DefaultWrapLongLines          = false
	DefaultEnableExtendedMarkdown = true
	DefaultSmartypants            = false
	DefaultHeadingIDType          = HeadingIDTypeGitHub
	DefaultInjectBaseStyles       = true
)

// Heading id strategies.
const (
	// GitHub compatible anchors.
	HeadingIDTypeGitHub = "github"

	// As HeadingIDTypeGitHub with accents removed and non-ASCII dropped.
	HeadingIDTypeGitHubAscii = "github-ascii"
)

// SiteConfig is a resolved site configuration. It is built once per build
// and must not be modified.
type SiteConfig struct {
	// SiteURL is the parsed form of SiteURLString.
	SiteURL       *url.URL `hash:"ignore" json:"-" yaml:"-" toml:"-"`
	SiteURLString string

	// Extensions in activation order.
	Extensions []extensions.Activation

	Markdown MarkdownOptions
	Style    StyleOptions
}

// MarkdownOptions controls markdown to HTML rendering.
type MarkdownOptions struct {
	// Highlighting color scheme for fenced code blocks.
	SyntaxTheme string

	// Wrap long code lines instead of scrolling.
	WrapLongLines bool

	// Tables, strikethrough, task lists and autolinks.
	EnableExtendedMarkdown bool

	// Typographic quotes, dashes and ellipses.
	Smartypants bool

	// How heading ids are generated, see HeadingIDTypeGitHub.
	HeadingIDType string
}

type StyleOptions struct {
	// When false the styling extension emits utilities only and the
	// project provides its own base styles.
	InjectBaseStyles bool
}

// Extension returns the activation of the extension with the given
// canonical name.
func (c SiteConfig) Extension(name string) (extensions.Activation, bool) {
	for _, a := range c.Extensions {
		if a.Name == name {
			return a, true
		}
	}
	return extensions.Activation{}, false
}

// Sitemap returns the sitemap options if the sitemap extension is active.
func (c SiteConfig) Sitemap() (extensions.SitemapOptions, bool) {
	a, found := c.Extension(extensions.Sitemap)
	if !found {
		return extensions.SitemapOptions{}, false
	}
	opts, ok := a.Decoded.(extensions.SitemapOptions)
	return opts, ok
}

// MDX returns the MDX options if the MDX extension is active.
func (c SiteConfig) MDX() (extensions.MDXOptions, bool) {
	a, found := c.Extension(extensions.MDX)
	if !found {
		return extensions.MDXOptions{}, false
	}
	opts, ok := a.Decoded.(extensions.MDXOptions)
	return opts, ok
}

// Hash returns a hash of c. Equal configurations have equal hashes.
func (c SiteConfig) Hash() uint64 {
	h, err := hashstructure.Hash(c, nil)
	if err != nil {
		panic(fmt.Sprintf("failed to hash site config: %s", err))
	}
	return h
}

// Map returns c as a declaration map with canonical keys. Loading the map
// back resolves to a SiteConfig equal to c.
func (c SiteConfig) Map() map[string]any {
	exts := make([]any, len(c.Extensions))
	for i, a := range c.Extensions {
		e := map[string]any{"name": a.Name}
		if len(a.Options) > 0 {
			e["options"] = map[string]any(a.Options.Clone())
		}
		exts[i] = e
	}

	return map[string]any{
		"siteURL":    c.SiteURLString,
		"extensions": exts,
		"markdown": map[string]any{
			"syntaxTheme":            c.Markdown.SyntaxTheme,
			"wrapLongLines":          c.Markdown.WrapLongLines,
			"enableExtendedMarkdown": c.Markdown.EnableExtendedMarkdown,
			"smartypants":            c.Markdown.Smartypants,
			"headingIDType":          c.Markdown.HeadingIDType,
		},
		"style": map[string]any{
			"injectBaseStyles": c.Style.InjectBaseStyles,
		},
	}
}

// Resolver resolves declarations against a registry of known extensions.
type Resolver struct {
	registry *extensions.Registry
	logger   loggers.Logger
}

// NewResolver creates a Resolver. A nil registry means extensions.Default
// and a nil logger means loggers.NewDefault.
func NewResolver(registry *extensions.Registry, logger loggers.Logger) *Resolver {
	if registry == nil {
		registry = extensions.Default()
	}
	if logger == nil {
		logger = loggers.NewDefault()
	}
	return &Resolver{registry: registry, logger: logger}
}

// Resolve resolves decl with the built-in extensions.
func Resolve(decl Declaration) (SiteConfig, error) {
	return NewResolver(nil, nil).Resolve(decl)
}

// Resolve validates decl and returns the SiteConfig it describes.
// It fails with an *InvalidConfigError when a field is missing or malformed,
// and with an *UnknownExtensionError when an extension is not registered.
func (r *Resolver) Resolve(decl Declaration) (SiteConfig, error) {
	var c SiteConfig

	log.Process("Resolve", "validate siteURL")
	u, err := newSiteURLFromString(decl.SiteURL)
	if err != nil {
		return c, invalidErr("siteURL", decl.SiteURL, err)
	}
	c.SiteURL = u
	c.SiteURLString = decl.SiteURL

	log.Process("Resolve", "activate extensions in declared order")
	if c.Extensions, err = r.resolveExtensions(decl.Extensions); err != nil {
		return SiteConfig{}, err
	}

	log.Process("Resolve", "apply markdown options")
	if c.Markdown, err = resolveMarkdown(decl.Markdown); err != nil {
		return SiteConfig{}, err
	}

	log.Process("Resolve", "apply style options")
	c.Style = resolveStyle(decl.Style, c)

	return c, nil
}

func (r *Resolver) resolveExtensions(decls []ExtensionDeclaration) ([]extensions.Activation, error) {
	activations := make([]extensions.Activation, 0, len(decls))
	seen := make(map[string]int)
	var firstOutput string

	for i, d := range decls {
		field := fmt.Sprintf("extensions[%d]", i)
		if strings.TrimSpace(d.Name) == "" {
			return nil, invalid(field+".name", d.Name, "must be set")
		}

		p := r.registry.Get(d.Name)
		if p == nil {
			return nil, &UnknownExtensionError{Name: d.Name, Index: i, Known: r.registry.Names()}
		}

		if j, found := seen[p.Name()]; found {
			return nil, invalid(field, d.Name, fmt.Sprintf("extension %q is already activated at extensions[%d]", p.Name(), j))
		}
		seen[p.Name()] = i

		opts := d.Options.Clone()
		maps.PrepareParams(opts)
		maps.NormalizeNumbers(opts)
		decoded, err := p.Decode(opts)
		if err != nil {
			return nil, invalidErr(field+".options", d.Options, err)
		}

		switch p.Kind() {
		case extensions.KindOutput:
			if firstOutput == "" {
				firstOutput = p.Name()
			}
		case extensions.KindContent:
			if firstOutput != "" {
				r.logger.Warnf("extension %q transforms content but is activated after %q, which scans the output", p.Name(), firstOutput)
			}
		}

		activations = append(activations, extensions.Activation{
			Name:    p.Name(),
			Kind:    p.Kind(),
			Options: opts,
			Decoded: decoded,
		})
	}

	return activations, nil
}

func resolveMarkdown(d MarkdownDeclaration) (MarkdownOptions, error) {
	m := MarkdownOptions{
		SyntaxTheme:            DefaultSyntaxTheme,
		WrapLongLines:          DefaultWrapLongLines,
		EnableExtendedMarkdown: DefaultEnableExtendedMarkdown,
		Smartypants:            DefaultSmartypants,
		HeadingIDType:          DefaultHeadingIDType,
	}

	if d.SyntaxTheme != nil {
		if strings.TrimSpace(*d.SyntaxTheme) == "" {
			return m, invalid("markdown.syntaxTheme", *d.SyntaxTheme, "must not be empty")
		}
		m.SyntaxTheme = *d.SyntaxTheme
	}
	if d.WrapLongLines != nil {
		m.WrapLongLines = *d.WrapLongLines
	}
	if d.EnableExtendedMarkdown != nil {
		m.EnableExtendedMarkdown = *d.EnableExtendedMarkdown
	}
	if d.Smartypants != nil {
		m.Smartypants = *d.Smartypants
	}
	if d.HeadingIDType != nil {
		switch *d.HeadingIDType {
		case HeadingIDTypeGitHub, HeadingIDTypeGitHubAscii:
			m.HeadingIDType = *d.HeadingIDType
		default:
			return m, invalid("markdown.headingIDType", *d.HeadingIDType,
				fmt.Sprintf("must be %q or %q", HeadingIDTypeGitHub, HeadingIDTypeGitHubAscii))
		}
	}

	return m, nil
}

// resolveStyle applies the style table, then the styling extension's own
// applyBaseStyles option, which wins when both are set.
func resolveStyle(d StyleDeclaration, c SiteConfig) StyleOptions {
	s := StyleOptions{InjectBaseStyles: DefaultInjectBaseStyles}
	if d.InjectBaseStyles != nil {
		s.InjectBaseStyles = *d.InjectBaseStyles
	}

	for _, a := range c.Extensions {
		if a.Kind != extensions.KindStyle || !a.Options.IsSet("applybasestyles") {
			continue
		}
		if opts, ok := a.Decoded.(extensions.StyleOptions); ok {
			s.InjectBaseStyles = opts.ApplyBaseStyles
		}
	}

	return s
}
