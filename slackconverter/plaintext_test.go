package slackconverter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
)

// firstParagraphPlainText parses markdown and extracts the plain text of its first block.
func firstParagraphPlainText(t *testing.T, markdown string) string {
	t.Helper()
	source := []byte(markdown)
	root := goldmark.New(goldmark.WithExtensions(extension.GFM)).Parser().Parse(text.NewReader(source))
	require.NotNil(t, root.FirstChild())

	s := acquireState(Config{}, source)
	defer releaseState(s)
	return s.plainTextChildren(root.FirstChild())
}

func TestPlainText(t *testing.T) {
	tests := []struct {
		name     string
		markdown string
		expected string
	}{
		{"raw text", "just text", "just text"},
		{"strong", "**bold**", "bold"},
		{"emphasis", "_it_", "it"},
		{"strikethrough", "~~gone~~", "gone"},
		{"inline code", "`x := 1`", "x := 1"},
		{"escape", `\*literal\*`, "*literal*"},
		{"link", "[docs](https://example.com)", "docs"},
		{"link without text", "[](https://example.com)", "https://example.com"},
		{"autolink", "<https://example.com>", "https://example.com"},
		{"email autolink", "<team@example.com>", "team@example.com"},
		{"linkify www", "www.example.com", "www.example.com"},
		{"image alt", "![a diagram](https://example.com/d.png)", "a diagram"},
		{"image without alt", "![](https://example.com/d.png)", ""},
		{"soft break", "one\ntwo", "one two"},
		{"hard break", "one  \ntwo", "one two"},
		{"inline html", "a <i>b</i>", "a b"},
		{"br tag", "a<br/>b", "a b"},
		{"nested", "**bold _and `code`_**", "bold and code"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, firstParagraphPlainText(t, tt.markdown))
		})
	}
}

func TestPlainTextHasNoSideEffects(t *testing.T) {
	s := acquireState(Config{}, nil)
	defer releaseState(s)

	paragraph := ast.NewParagraph()
	paragraph.AppendChild(paragraph, ast.NewString([]byte("x")))
	assert.Equal(t, "x", s.plainText(paragraph))
	assert.Empty(t, s.blocks)
	assert.Empty(t, s.warnings)
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		limit     int
		expected  string
		truncated bool
	}{
		{"short", "abc", 10, "abc", false},
		{"exact", "abcdefghij", 10, "abcdefghij", false},
		{"over", "abcdefghijk", 10, "abcdefg...", true},
		{"runes", strings.Repeat("ü", 12), 10, strings.Repeat("ü", 7) + "...", true},
		{"empty", "", 10, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, truncated := truncate(tt.input, tt.limit)
			assert.Equal(t, tt.expected, got)
			assert.Equal(t, tt.truncated, truncated)
		})
	}
}
