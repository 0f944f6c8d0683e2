// Package markdown renders app description text to HTML. Links are forced to
// open in a new tab with rel="noopener", matching how the hosted dialog
// treats provider documentation links.
package markdown

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// Renderer converts markdown descriptions to HTML.
type Renderer struct {
	md goldmark.Markdown
}

// New creates a description renderer.
func New() *Renderer {
	return &Renderer{
		md: goldmark.New(
			goldmark.WithParserOptions(
				parser.WithASTTransformers(
					util.Prioritized(&linkAttributes{}, 100),
				),
			),
		),
	}
}

// Render converts markdown to HTML.
func (r *Renderer) Render(source string) (string, error) {
	var buffer bytes.Buffer
	if err := r.md.Convert([]byte(source), &buffer); err != nil {
		return "", fmt.Errorf("failed to render description: %w", err)
	}
	return buffer.String(), nil
}

// linkAttributes marks every link to open in a new browsing context.
type linkAttributes struct{}

func (t *linkAttributes) Transform(doc *ast.Document, reader text.Reader, pc parser.Context) {
	_ = ast.Walk(doc, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if link, ok := node.(*ast.Link); ok {
			link.SetAttributeString("target", []byte("_blank"))
			link.SetAttributeString("rel", []byte("noopener"))
		}
		return ast.WalkContinue, nil
	})
}
