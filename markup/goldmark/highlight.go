package goldmark

import (
	"bytes"

	"github.com/sunwei/siteconf/markup/highlight"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/util"
)

// newHighlighting renders fenced code blocks with h. It takes priority
// over the default HTML renderer for that node kind.
func newHighlighting(h highlight.Highlighter) goldmark.Extender {
	return &highlighting{h: h}
}

type highlighting struct {
	h highlight.Highlighter
}

func (e *highlighting) Extend(m goldmark.Markdown) {
	m.Renderer().AddOptions(renderer.WithNodeRenderers(
		util.Prioritized(&codeBlockRenderer{h: e.h}, 100),
	))
}

type codeBlockRenderer struct {
	h highlight.Highlighter
}

func (r *codeBlockRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(ast.KindFencedCodeBlock, r.renderCodeBlock)
}

func (r *codeBlockRenderer) renderCodeBlock(w util.BufWriter, src []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}

	n := node.(*ast.FencedCodeBlock)

	var lang string
	if l := n.Language(src); l != nil {
		lang = string(l)
	}

	var code bytes.Buffer
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		line := lines.At(i)
		code.Write(line.Value(src))
	}

	if err := r.h.Highlight(w, code.String(), lang); err != nil {
		return ast.WalkStop, err
	}

	return ast.WalkSkipChildren, nil
}
