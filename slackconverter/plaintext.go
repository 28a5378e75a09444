package slackconverter

import (
	"strings"

	"github.com/yuin/goldmark/ast"
	extast "github.com/yuin/goldmark/extension/ast"
)

// plainText returns the literal text under node with all formatting dropped.
// It is used where Slack accepts no markup: header text and table cells.
func (s *state) plainText(node ast.Node) string {
	switch typed := node.(type) {
	case *ast.Text:
		textValue := s.textValue(typed)
		if typed.SoftLineBreak() || typed.HardLineBreak() {
			return textValue + " "
		}
		return textValue

	case *ast.String:
		return string(typed.Value)

	case *ast.CodeSpan:
		return s.codeSpanText(typed)

	case *ast.Link:
		if typed.HasChildren() {
			return s.plainTextChildren(typed)
		}
		return string(typed.Destination)

	case *ast.AutoLink:
		if label := typed.Label(s.source); len(label) > 0 {
			return string(label)
		}
		return s.autoLinkTarget(typed)

	case *ast.RawHTML:
		if isHTMLLineBreak(s.rawHTMLValue(typed)) {
			return " "
		}
		return ""

	case *ast.HTMLBlock:
		return htmlText(s.htmlBlockValue(typed))

	case *extast.TaskCheckBox:
		return ""

	case *ast.FencedCodeBlock:
		return s.codeBlockText(typed)

	case *ast.CodeBlock:
		return s.codeBlockText(typed)

	default:
		return s.plainTextChildren(node)
	}
}

func (s *state) plainTextChildren(parent ast.Node) string {
	var sb strings.Builder
	for child := parent.FirstChild(); child != nil; child = child.NextSibling() {
		sb.WriteString(s.plainText(child))
	}
	return sb.String()
}
