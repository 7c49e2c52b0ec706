package highlight

import (
	"io"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// Highlighter renders code as highlighted HTML.
type Highlighter interface {
	Highlight(w io.Writer, code, lang string) error
	HighlightString(code, lang string) (string, error)
}

// New creates a Highlighter for cfg.
func New(cfg Config) Highlighter {
	return chromaHighlighter{
		cfg:   cfg,
		style: styles.Get(cfg.Style),
		formatter: html.New(
			html.WithClasses(!cfg.NoClasses),
			html.WithLineNumbers(cfg.LineNos),
			html.TabWidth(cfg.TabWidth),
			html.WrapLongLines(cfg.WrapLongLines),
		),
	}
}

type chromaHighlighter struct {
	cfg       Config
	style     *chroma.Style
	formatter *html.Formatter
}

func (h chromaHighlighter) Highlight(w io.Writer, code, lang string) error {
	lexer := lexers.Get(lang)
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		return err
	}

	return h.formatter.Format(w, h.style, iterator)
}

func (h chromaHighlighter) HighlightString(code, lang string) (string, error) {
	var sb strings.Builder
	if err := h.Highlight(&sb, code, lang); err != nil {
		return "", err
	}
	return sb.String(), nil
}
