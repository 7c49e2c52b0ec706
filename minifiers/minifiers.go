// Package minifiers contains minifiers mapped to MIME types. The publisher
// uses it to shrink rendered pages, sitemaps and stylesheets.
package minifiers

import (
	"bytes"
	"io"
	"regexp"

	"github.com/sunwei/siteconf/config"
	"github.com/tdewolff/minify/v2"
)

// Client wraps a minifier.
type Client struct {
	// Whether output should be minified by default.
	MinifyOutput bool

	m *minify.M
}

// New creates a new Client configured from the "minify" table in cfg.
// cfg may be nil.
func New(cfg config.Provider) (Client, error) {
	conf, err := decodeConfig(cfg)
	if err != nil {
		return Client{}, err
	}

	m := minify.New()

	m.Add("text/css", getMinifier(conf, "css"))

	m.AddRegexp(regexp.MustCompile("^(application|text)/(x-)?(java|ecma)script$"), getMinifier(conf, "js"))

	m.AddRegexp(regexp.MustCompile(`^(application|text)/(x-|(ld|manifest)\+)?json$`), getMinifier(conf, "json"))

	m.Add("image/svg+xml", getMinifier(conf, "svg"))

	m.AddRegexp(regexp.MustCompile(`^(application|text)/(.+\+)?xml$`), getMinifier(conf, "xml"))

	m.Add("text/html", getMinifier(conf, "html"))

	return Client{MinifyOutput: conf.MinifyOutput, m: m}, nil
}

// getMinifier returns the appropriate minify.MinifierFunc for the MIME
// type suffix s, given the config c.
func getMinifier(c minifyConfig, s string) minify.Minifier {
	switch {
	case s == "css" && !c.DisableCSS:
		return &c.Tdewolff.CSS
	case s == "js" && !c.DisableJS:
		return &c.Tdewolff.JS
	case s == "json" && !c.DisableJSON:
		return &c.Tdewolff.JSON
	case s == "svg" && !c.DisableSVG:
		return &c.Tdewolff.SVG
	case s == "xml" && !c.DisableXML:
		return &c.Tdewolff.XML
	case s == "html" && !c.DisableHTML:
		return &c.Tdewolff.HTML
	default:
		return noopMinifier{}
	}
}

// noopMinifier implements minify.Minifier [1], but doesn't minify content. This means
// that we can avoid missing minifiers for any MIME types in our minify.M, which
// causes minify to return errors, while still allowing minification to be
// disabled for specific types.
//
// [1]: https://pkg.go.dev/github.com/tdewolff/minify#Minifier
type noopMinifier struct{}

// Minify copies r into w without transformation.
func (m noopMinifier) Minify(_ *minify.M, w io.Writer, r io.Reader, _ map[string]string) error {
	_, err := io.Copy(w, r)
	return err
}

// Minify minifies r into w using the minifier registered for mediaType.
// Content of an unknown media type is copied as is.
func (m Client) Minify(mediaType string, w io.Writer, r io.Reader) error {
	_, params, min := m.m.Match(mediaType)
	if min == nil {
		// No minifier for this MIME type
		_, err := io.Copy(w, r)
		return err
	}
	return min.Minify(m.m, w, r, params)
}

// MinifyBytes is Minify for in-memory content.
func (m Client) MinifyBytes(mediaType string, b []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := m.Minify(mediaType, &buf, bytes.NewReader(b)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
