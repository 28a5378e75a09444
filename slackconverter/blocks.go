package slackconverter

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/rgonek/slack-blocks-converter/blocks"
	"github.com/yuin/goldmark/ast"
)

const ellipsis = "..."

// truncate cuts text to limit characters, ending it with an ellipsis.
func truncate(text string, limit int) (string, bool) {
	if utf8.RuneCountInString(text) <= limit {
		return text, false
	}
	runes := []rune(text)
	return string(runes[:limit-len(ellipsis)]) + ellipsis, true
}

func (s *state) truncateWithWarning(text string, limit int, nodeType string) string {
	truncated, ok := truncate(text, limit)
	if ok {
		s.addWarning(
			WarningTruncated,
			nodeType,
			fmt.Sprintf("text of %d characters truncated to %d", utf8.RuneCountInString(text), limit),
		)
	}
	return truncated
}

func (s *state) appendSection(text, nodeType string) {
	text = s.truncateWithWarning(text, blocks.MaxSectionLength, nodeType)
	s.appendBlock(blocks.NewSection(text, s.config.Expand))
}

func (s *state) renderHeadingNode(node *ast.Heading) {
	textValue := strings.TrimSpace(s.plainTextChildren(node))
	textValue = s.truncateWithWarning(textValue, blocks.MaxHeaderLength, node.Kind().String())
	s.appendBlock(blocks.NewHeader(textValue))
}

func (s *state) renderParagraphNode(node ast.Node) {
	textValue := strings.TrimSpace(s.renderInlineChildren(node))
	if textValue == "" {
		return
	}
	s.appendSection(textValue, node.Kind().String())
}

func (s *state) renderCodeBlockNode(node ast.Node) {
	code := strings.TrimRight(s.codeBlockText(node), "\n")
	s.appendSection("```\n"+code+"\n```", node.Kind().String())
}

func (s *state) codeBlockText(node ast.Node) string {
	var sb strings.Builder
	lines := node.Lines()
	for i := 0; i < lines.Len(); i++ {
		line := lines.At(i)
		sb.Write(line.Value(s.source))
	}
	return sb.String()
}

func (s *state) renderBlockquoteNode(node *ast.Blockquote) {
	var parts []string
	for child := node.FirstChild(); child != nil; child = child.NextSibling() {
		if !hasContent(child) {
			continue
		}
		part := strings.TrimSpace(s.renderContent(child))
		if part != "" {
			parts = append(parts, part)
		}
	}

	if len(parts) == 0 {
		return
	}

	lines := make([]string, 0, len(parts)*2-1)
	for i, part := range parts {
		lines = append(lines, ">"+part)
		if i < len(parts)-1 {
			lines = append(lines, ">")
		}
	}

	s.appendSection(strings.Join(lines, "\n"), node.Kind().String())
}
