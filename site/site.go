// Package site builds a site: it renders the content files, then writes
// the sitemap and the style entry for the resolved site configuration.
package site

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/sunwei/siteconf/deps"
	"github.com/sunwei/siteconf/extensions"
	"github.com/sunwei/siteconf/hugofs"
	"github.com/sunwei/siteconf/log"
	"github.com/sunwei/siteconf/publisher"
	"github.com/sunwei/siteconf/sitemap"
	"github.com/sunwei/siteconf/style"
)

// BuildCfg holds build options used to, as an example, skip the render step.
type BuildCfg struct {
	// Extra page paths to list in the sitemap, e.g. pages rendered
	// by another tool.
	ExtraPages []string

	// Skip rendering content. Useful for testing.
	SkipRender bool
}

// BuildResult lists what a build published, relative to the publish dir.
type BuildResult struct {
	Pages []string
	Files []string
}

// Site builds one site.
type Site struct {
	*deps.Deps

	pages []*pageState
}

// NewSite creates a Site from d.
func NewSite(d *deps.Deps) *Site {
	return &Site{Deps: d}
}

// Build renders and publishes the site.
func (s *Site) Build(cfg BuildCfg) (BuildResult, error) {
	log.Process("Site Build", "start")
	var result BuildResult

	if err := s.process(); err != nil {
		return result, err
	}

	if !cfg.SkipRender {
		if err := s.renderPages(); err != nil {
			return result, err
		}
		for _, p := range s.pages {
			result.Files = append(result.Files, p.targetPath())
		}
	}

	for _, p := range s.pages {
		result.Pages = append(result.Pages, p.RelPermalink())
	}
	result.Pages = append(result.Pages, cfg.ExtraPages...)

	files, err := s.renderSitemap(result.Pages)
	if err != nil {
		return result, err
	}
	result.Files = append(result.Files, files...)

	files, err = s.renderStyle()
	if err != nil {
		return result, err
	}
	result.Files = append(result.Files, files...)

	sort.Strings(result.Files)

	log.Process("Site Build", "done")
	return result, nil
}

// process collects the content files.
func (s *Site) process() error {
	contentDir := hugofs.AbsPathify(s.Cfg.GetString("workingDir"), s.Cfg.GetString("contentDir"))
	c := newPagesCollector(s.Fs.Source, contentDir, func(markup string) bool {
		return s.ContentSpec.Get(markup) != nil
	})

	pages, err := c.Collect()
	if err != nil {
		return fmt.Errorf("failed to collect pages in %q: %w", contentDir, err)
	}
	sort.Slice(pages, func(i, j int) bool {
		return pages[i].filename < pages[j].filename
	})

	targets := make(map[string]string, len(pages))
	for _, p := range pages {
		target := p.targetPath()
		if other, found := targets[target]; found {
			return fmt.Errorf("pages %q and %q both publish to %q", other, p.filename, target)
		}
		targets[target] = p.filename
	}
	s.pages = pages

	return nil
}

func (s *Site) renderSitemap(paths []string) ([]string, error) {
	cfg, found := sitemap.FromSiteConfig(s.Site)
	if !found {
		return nil, nil
	}

	log.Process("Site renderSitemap", "build sitemap index and chunks")
	b, err := sitemap.NewBuilder(cfg)
	if err != nil {
		return nil, err
	}

	pages := make([]sitemap.Page, len(paths))
	for i, p := range paths {
		pages[i] = sitemap.Page{Path: p}
	}

	result, err := b.Build(pages)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, f := range result.Files() {
		if err := s.publish(f.Name, sitemap.MediaType, f.Content); err != nil {
			return nil, err
		}
		files = append(files, f.Name)
	}

	return files, nil
}

func (s *Site) renderStyle() ([]string, error) {
	if !s.hasStyleExtension() {
		return nil, nil
	}

	log.Process("Site renderStyle", "write stylesheet entry")
	entry := style.Entry(s.Site.Style)
	if !entry.Injected {
		s.Log.Infof("base styles are not injected, the project provides its own")
	}

	if err := s.publish(style.DefaultFilename, style.MediaType, entry.Bytes()); err != nil {
		return nil, err
	}

	return []string{style.DefaultFilename}, nil
}

func (s *Site) hasStyleExtension() bool {
	for _, a := range s.Site.Extensions {
		if a.Kind == extensions.KindStyle {
			return true
		}
	}
	return false
}

func (s *Site) publish(targetPath, mediaType string, content []byte) error {
	return s.Publisher.Publish(publisher.Descriptor{
		Src:        bytes.NewReader(content),
		MediaType:  mediaType,
		TargetPath: targetPath,
		Minify:     s.MinifyOutput,
	})
}
