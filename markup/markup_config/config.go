package markup_config

import (
	"github.com/sunwei/siteconf/extensions"
	"github.com/sunwei/siteconf/markup/goldmark/goldmark_config"
	"github.com/sunwei/siteconf/markup/highlight"
	"github.com/sunwei/siteconf/siteconfig"
)

type Config struct {
	// Default markdown handler for md/markdown extensions.
	// Default is "goldmark".
	DefaultMarkdownHandler string

	Highlight highlight.Config

	// Content renderers
	Goldmark goldmark_config.Config
}

var Default = Config{
	DefaultMarkdownHandler: "goldmark",

	Highlight: highlight.DefaultConfig,
	Goldmark:  goldmark_config.Default,
}

// Decode applies the site's markdown options to the default markup config.
func Decode(m siteconfig.MarkdownOptions) (conf Config, err error) {
	conf = Default

	conf.Highlight.Style = m.SyntaxTheme
	conf.Highlight.WrapLongLines = m.WrapLongLines
	conf.Goldmark.Extensions.SetGitHubFlavored(m.EnableExtendedMarkdown)
	conf.Goldmark.Extensions.Typographer = m.Smartypants
	if m.HeadingIDType != "" {
		conf.Goldmark.Parser.AutoHeadingIDType = m.HeadingIDType
	}

	return conf, nil
}

// DecodeMDX returns the markup config used for .mdx files. MDX files
// inherit the site's markdown options unless opts says otherwise, and
// opts.GFM overrides the extended markdown flag either way.
func DecodeMDX(m siteconfig.MarkdownOptions, opts extensions.MDXOptions) (Config, error) {
	if !opts.ExtendMarkdownConfig {
		m = siteconfig.MarkdownOptions{
			SyntaxTheme:            siteconfig.DefaultSyntaxTheme,
			WrapLongLines:          siteconfig.DefaultWrapLongLines,
			EnableExtendedMarkdown: siteconfig.DefaultEnableExtendedMarkdown,
			Smartypants:            siteconfig.DefaultSmartypants,
			HeadingIDType:          siteconfig.DefaultHeadingIDType,
		}
	}
	if opts.GFM != nil {
		m.EnableExtendedMarkdown = *opts.GFM
	}
	return Decode(m)
}
