package testutil

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// MarkdownSection is a heading of a generated contents document with the
// fenced code block that follows it
type MarkdownSection struct {
	Heading string
	Code    string
}

// ParseMarkdownSections parses a contents document with goldmark and
// returns its level 1 headings paired with their code blocks, in order.
func ParseMarkdownSections(t *testing.T, source []byte) []MarkdownSection {
	t.Helper()

	doc := goldmark.New().Parser().Parse(text.NewReader(source))

	var sections []MarkdownSection
	err := ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *ast.Heading:
			if node.Level == 1 {
				sections = append(sections, MarkdownSection{Heading: linesValue(node.Lines(), source)})
			}
			return ast.WalkSkipChildren, nil
		case *ast.FencedCodeBlock:
			if len(sections) > 0 {
				sections[len(sections)-1].Code = linesValue(node.Lines(), source)
			}
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
	require.NoError(t, err)

	return sections
}

// Headings returns just the headings of sections
func Headings(sections []MarkdownSection) []string {
	headings := make([]string, 0, len(sections))
	for _, s := range sections {
		headings = append(headings, s.Heading)
	}
	return headings
}

func linesValue(lines *text.Segments, source []byte) string {
	var buf bytes.Buffer
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		buf.Write(seg.Value(source))
	}
	return buf.String()
}
