package markup

import (
	"strings"

	"github.com/sunwei/siteconf/common/loggers"
	"github.com/sunwei/siteconf/markup/converter"
	"github.com/sunwei/siteconf/markup/goldmark"
	"github.com/sunwei/siteconf/markup/highlight"
	"github.com/sunwei/siteconf/markup/markup_config"
	"github.com/sunwei/siteconf/siteconfig"
)

type ConverterProvider interface {
	Get(name string) converter.Provider
	GetMarkupConfig() markup_config.Config
	GetHighlighter() highlight.Highlighter
}

// NewConverterProvider creates the converters for the markdown options in
// site. The goldmark converter is registered as goldmark, markdown and md.
// When the MDX extension is active, mdx gets its own goldmark converter.
func NewConverterProvider(site siteconfig.SiteConfig, logger loggers.Logger) (ConverterProvider, error) {
	converters := make(map[string]converter.Provider)

	markupConfig, err := markup_config.Decode(site.Markdown)
	if err != nil {
		return nil, err
	}

	cpc := converter.ProviderConfig{
		MarkupConfig: markupConfig,
		Logger:       logger,
		Highlighter:  highlight.New(markupConfig.Highlight),
	}

	defaultHandler := markupConfig.DefaultMarkdownHandler
	add := func(p converter.ProviderProvider, aliases ...string) error {
		c, err := p.New(cpc)
		if err != nil {
			return err
		}

		name := c.Name()

		aliases = append(aliases, name)

		if strings.EqualFold(name, defaultHandler) {
			aliases = append(aliases, "markdown")
		}

		addConverter(converters, c, aliases...)
		return nil
	}

	// default
	if err := add(goldmark.Provider, "md"); err != nil {
		return nil, err
	}

	if opts, found := site.MDX(); found {
		mdxConfig, err := markup_config.DecodeMDX(site.Markdown, opts)
		if err != nil {
			return nil, err
		}
		mdxcpc := cpc
		mdxcpc.MarkupConfig = mdxConfig
		mdxcpc.Highlighter = highlight.New(mdxConfig.Highlight)

		c, err := goldmark.NewProvider("mdx", mdxcpc)
		if err != nil {
			return nil, err
		}
		addConverter(converters, c, c.Name())
	}

	return &converterRegistry{
		config:     cpc,
		converters: converters,
	}, nil
}

func addConverter(m map[string]converter.Provider, c converter.Provider, aliases ...string) {
	for _, alias := range aliases {
		m[alias] = c
	}
}

type converterRegistry struct {
	// Maps name (md, markdown, goldmark etc.) to a converter provider.
	// Note that this is also used for aliasing, so the same converter
	// may be registered multiple times.
	// All names are lower case.
	converters map[string]converter.Provider

	config converter.ProviderConfig
}

func (r *converterRegistry) Get(name string) converter.Provider {
	return r.converters[strings.ToLower(name)]
}

func (r *converterRegistry) GetHighlighter() highlight.Highlighter {
	return r.config.Highlighter
}

func (r *converterRegistry) GetMarkupConfig() markup_config.Config {
	return r.config.MarkupConfig
}
