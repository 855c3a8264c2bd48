package enrich

import (
	"strings"
	"unicode/utf8"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// promptBodyLimit bounds how much of a post is sent to the backend.
const promptBodyLimit = 1500

// promptText reduces a markdown body to plain prose for prompting.
// Image and link constructs are dropped entirely by walking the parse
// tree and keeping only text spans outside them, then the result is
// truncated to promptBodyLimit.
func promptText(body string) string {
	source := []byte(body)
	doc := goldmark.DefaultParser().Parse(text.NewReader(source))

	var sb strings.Builder
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			if _, ok := n.(*ast.Paragraph); ok {
				sb.WriteString("\n")
			}
			return ast.WalkContinue, nil
		}
		switch n := n.(type) {
		case *ast.Image, *ast.Link:
			return ast.WalkSkipChildren, nil
		case *ast.Text:
			sb.Write(n.Segment.Value(source))
			if n.SoftLineBreak() || n.HardLineBreak() {
				sb.WriteString(" ")
			}
		}
		return ast.WalkContinue, nil
	})

	prose := strings.TrimSpace(sb.String())
	if len(prose) <= promptBodyLimit {
		return prose
	}

	// Cut on a rune boundary.
	cut := promptBodyLimit
	for cut > 0 && !utf8.RuneStart(prose[cut]) {
		cut--
	}
	return prose[:cut]
}
