package site

import (
	"path"
	"strings"

	"github.com/sunwei/siteconf/helpers"
)

// pageState is a content file on its way to the publish dir.
type pageState struct {
	// Filename relative to the content dir, slash separated.
	filename string

	// Name of the markup converter, e.g. "md" or "mdx".
	markup string

	content []byte
}

func newPageState(filename string, content []byte) *pageState {
	filename = helpers.ToSlashTrimLeading(filename)
	return &pageState{
		filename: filename,
		markup:   helpers.Ext(filename),
		content:  content,
	}
}

// RelPermalink returns the page's URL path, e.g. "/blog/first-post/".
// An index file is published at its directory's URL.
func (p *pageState) RelPermalink() string {
	s := helpers.PathNoExt(p.filename)
	if base := path.Base(s); base == "index" || base == "_index" {
		s = path.Dir(s)
	}
	if s == "." || s == "" {
		return "/"
	}
	return helpers.AddTrailingSlash("/" + strings.ToLower(s))
}

// targetPath is where the rendered page is written, relative to the
// publish dir.
func (p *pageState) targetPath() string {
	return strings.TrimPrefix(p.RelPermalink(), "/") + "index.html"
}
