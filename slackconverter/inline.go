package slackconverter

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark/ast"
	extast "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/util"
)

const (
	softBreak = "\n"
	hardBreak = "\n\n"

	taskChecked   = "☑ "
	taskUnchecked = "☐ "
)

func (s *state) renderInlineChildren(parent ast.Node) string {
	var sb strings.Builder
	for child := parent.FirstChild(); child != nil; child = child.NextSibling() {
		sb.WriteString(s.renderInline(child))
	}
	return sb.String()
}

func (s *state) renderInline(node ast.Node) string {
	switch typed := node.(type) {
	case *ast.Text:
		textValue := s.textValue(typed)
		if typed.HardLineBreak() {
			return textValue + hardBreak
		}
		if typed.SoftLineBreak() {
			return textValue + softBreak
		}
		return textValue

	case *ast.String:
		return string(typed.Value)

	case *ast.Emphasis:
		inner := s.renderInlineChildren(typed)
		if typed.Level >= 2 {
			return "*" + inner + "*"
		}
		return "_" + inner + "_"

	case *extast.Strikethrough:
		return "~" + s.renderInlineChildren(typed) + "~"

	case *ast.CodeSpan:
		return "`" + s.codeSpanText(typed) + "`"

	case *ast.Link:
		target := string(typed.Destination)
		inner := s.renderInlineChildren(typed)
		if inner != "" && inner != target {
			return "<" + target + "|" + inner + ">"
		}
		return "<" + target + ">"

	case *ast.AutoLink:
		return "<" + s.autoLinkTarget(typed) + ">"

	case *ast.Image:
		src := string(typed.Destination)
		alt := s.renderInlineChildren(typed)
		if alt != "" {
			return "<" + src + "|" + alt + ">"
		}
		return "<" + src + ">"

	case *ast.RawHTML:
		if isHTMLLineBreak(s.rawHTMLValue(typed)) {
			return softBreak
		}
		return ""

	case *extast.TaskCheckBox:
		if typed.IsChecked {
			return taskChecked
		}
		return taskUnchecked

	case *ast.FencedCodeBlock:
		return s.codeBlockText(typed)

	case *ast.CodeBlock:
		return s.codeBlockText(typed)

	default:
		return s.renderInlineChildren(node)
	}
}

// autoLinkTarget returns the URL of an autolink; email addresses get a mailto: scheme.
func (s *state) autoLinkTarget(node *ast.AutoLink) string {
	target := string(node.URL(s.source))
	if node.AutoLinkType == ast.AutoLinkEmail && !strings.HasPrefix(strings.ToLower(target), "mailto:") {
		target = "mailto:" + target
	}
	return target
}

// textValue returns the literal text of node with backslash escapes removed.
// Raw segments, such as code span content, are returned untouched.
func (s *state) textValue(node *ast.Text) string {
	value := node.Value(s.source)
	if node.IsRaw() {
		return string(value)
	}
	return string(util.UnescapePunctuations(value))
}

// codeSpanText joins the raw segments of a code span; line endings inside
// the span become spaces.
func (s *state) codeSpanText(node *ast.CodeSpan) string {
	var sb strings.Builder
	for child := node.FirstChild(); child != nil; child = child.NextSibling() {
		switch typed := child.(type) {
		case *ast.Text:
			value := typed.Value(s.source)
			if bytes.HasSuffix(value, []byte("\n")) {
				sb.Write(value[:len(value)-1])
				sb.WriteByte(' ')
				continue
			}
			sb.Write(value)
		case *ast.String:
			sb.Write(typed.Value)
		}
	}
	return sb.String()
}

func (s *state) rawHTMLValue(node *ast.RawHTML) string {
	var sb strings.Builder
	for i := 0; i < node.Segments.Len(); i++ {
		segment := node.Segments.At(i)
		sb.Write(segment.Value(s.source))
	}
	return sb.String()
}
