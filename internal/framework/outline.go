package framework

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Outline returns the markdown headings of source in document order,
// rendered as "## Heading text".
// Headings inside fenced code blocks are not headings and are skipped.
func Outline(source []byte) ([]string, error) {
	doc := goldmark.New().Parser().Parse(text.NewReader(source))

	var headings []string
	err := ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		heading, ok := n.(*ast.Heading)
		if !ok {
			return ast.WalkContinue, nil
		}

		title := strings.TrimSpace(inlineText(heading, source))
		headings = append(headings, strings.Repeat("#", heading.Level)+" "+title)
		return ast.WalkSkipChildren, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk markdown outline: %w", err)
	}

	return headings, nil
}

// inlineText collects the plain text of n's inline descendants
func inlineText(n ast.Node, source []byte) string {
	var buf bytes.Buffer
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if t, ok := c.(*ast.Text); ok {
			buf.Write(t.Segment.Value(source))
			continue
		}
		buf.WriteString(inlineText(c, source))
	}
	return buf.String()
}
