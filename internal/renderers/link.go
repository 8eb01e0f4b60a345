package renderers

import (
	"fmt"
	"html"
	"strings"

	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/renderer"
	goldmarkhtml "github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/util"
)

// LinkRenderer opens external links in a new tab and leaves links to the
// clock's own pages alone.
type LinkRenderer struct {
	goldmarkhtml.Config
}

func NewLinkRenderer(opts ...goldmarkhtml.Option) renderer.NodeRenderer {
	r := &LinkRenderer{
		Config: goldmarkhtml.NewConfig(),
	}
	for _, opt := range opts {
		opt.SetHTMLOption(&r.Config)
	}
	return r
}

func (r *LinkRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(ast.KindLink, r.renderLink)
}

func isExternal(destination string) bool {
	return strings.HasPrefix(destination, "http://") || strings.HasPrefix(destination, "https://")
}

func (r *LinkRenderer) renderLink(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		_, err := w.WriteString("</a>")
		return ast.WalkContinue, err
	}

	n := node.(*ast.Link)
	destination := string(n.Destination)

	var attrs strings.Builder
	if n.Title != nil {
		fmt.Fprintf(&attrs, ` title="%s"`, html.EscapeString(string(n.Title)))
	}
	if isExternal(destination) {
		attrs.WriteString(` target="_blank" rel="noreferrer noopener"`)
	}

	_, err := fmt.Fprintf(w, `<a href="%s"%s>`, html.EscapeString(destination), attrs.String())
	return ast.WalkContinue, err
}
