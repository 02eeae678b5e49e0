package converter

import (
	"regexp"
	"strings"
)

// Highlighter bolds definition keywords and the identifier that follows
// them at the start of a line, e.g. "def foo():" becomes "**def foo**():".
// It is a plain text substitution and knows nothing about any language.
type Highlighter struct {
	pattern *regexp.Regexp
}

// NewHighlighter creates a Highlighter for the given keywords. Keywords are
// matched literally.
func NewHighlighter(keywords []string) *Highlighter {
	quoted := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		if kw != "" {
			quoted = append(quoted, regexp.QuoteMeta(kw))
		}
	}
	if len(quoted) == 0 {
		return &Highlighter{}
	}

	return &Highlighter{
		pattern: regexp.MustCompile(`(?m)^(` + strings.Join(quoted, "|") + `)\s+([\p{L}\p{M}\p{N}_]+)`),
	}
}

// Highlight applies the substitution to every matching line of content
func (h *Highlighter) Highlight(content string) string {
	if h == nil || h.pattern == nil {
		return content
	}
	return h.pattern.ReplaceAllString(content, "**${1} ${2}**")
}
