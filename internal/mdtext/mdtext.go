// Package mdtext extracts prose from Markdown sources so they can be
// analysed like plain text. Front matter, code blocks and raw HTML are
// dropped; block elements become blank-line separated paragraphs.
package mdtext

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
	"go.abhg.dev/goldmark/frontmatter"
)

// md is the shared parser. The frontmatter extender consumes YAML and
// TOML front matter so it never reaches the prose output.
var md = goldmark.New(goldmark.WithExtensions(&frontmatter.Extender{}))

// ExtractProse parses source as Markdown and returns its text content.
// Paragraphs and headings contribute their flattened inline text;
// code blocks, HTML blocks and front matter contribute nothing.
func ExtractProse(source []byte) string {
	ctx := parser.NewContext()
	doc := md.Parser().Parse(text.NewReader(source), parser.WithContext(ctx))

	var blocks []string
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch n.(type) {
		// Tight list items carry their text in a TextBlock rather
		// than a Paragraph.
		case *ast.Paragraph, *ast.Heading, *ast.TextBlock:
			if t := inlineText(n, source); strings.TrimSpace(t) != "" {
				blocks = append(blocks, t)
			}
			return ast.WalkSkipChildren, nil
		case *ast.FencedCodeBlock, *ast.CodeBlock, *ast.HTMLBlock:
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})

	return strings.Join(blocks, "\n\n")
}

// inlineText flattens the inline children of a block node. Soft and
// hard line breaks become single spaces so one logical paragraph stays
// one text line.
func inlineText(node ast.Node, source []byte) string {
	var b strings.Builder
	_ = ast.Walk(node, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch t := n.(type) {
		case *ast.Text:
			b.Write(t.Segment.Value(source))
			if t.SoftLineBreak() || t.HardLineBreak() {
				b.WriteByte(' ')
			}
		case *ast.RawHTML:
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
	return b.String()
}
