package slackconverter

import (
	"strings"

	"github.com/yuin/goldmark/ast"
	xhtml "golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

func (s *state) renderHTMLBlockNode(node *ast.HTMLBlock) {
	textValue := htmlText(s.htmlBlockValue(node))
	if textValue == "" {
		return
	}

	s.addWarning(
		WarningDroppedFeature,
		node.Kind().String(),
		"html block converted to text",
	)
	s.appendSection(textValue, node.Kind().String())
}

func (s *state) htmlBlockValue(node *ast.HTMLBlock) string {
	var sb strings.Builder
	lines := node.Lines()
	for i := 0; i < lines.Len(); i++ {
		line := lines.At(i)
		sb.Write(line.Value(s.source))
	}
	if node.HasClosure() {
		sb.Write(node.ClosureLine.Value(s.source))
	}
	return sb.String()
}

// htmlText reduces an HTML fragment to its text content, one line per
// non-empty text run. <br> and block level elements end a line.
func htmlText(raw string) string {
	tokenizer := xhtml.NewTokenizer(strings.NewReader(raw))

	var sb strings.Builder
	skipDepth := 0
	for {
		switch tokenizer.Next() {
		case xhtml.ErrorToken:
			return collapseLines(sb.String())
		case xhtml.TextToken:
			if skipDepth == 0 {
				sb.Write(tokenizer.Text())
			}
		case xhtml.StartTagToken:
			name, _ := tokenizer.TagName()
			switch atom.Lookup(name) {
			case atom.Script, atom.Style:
				skipDepth++
			case atom.Br:
				sb.WriteByte('\n')
			}
		case xhtml.SelfClosingTagToken:
			name, _ := tokenizer.TagName()
			if atom.Lookup(name) == atom.Br {
				sb.WriteByte('\n')
			}
		case xhtml.EndTagToken:
			name, _ := tokenizer.TagName()
			tag := atom.Lookup(name)
			if (tag == atom.Script || tag == atom.Style) && skipDepth > 0 {
				skipDepth--
				continue
			}
			if isBlockElement(tag) {
				sb.WriteByte('\n')
			}
		}
	}
}

func collapseLines(textValue string) string {
	lines := strings.Split(textValue, "\n")
	kept := lines[:0]
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			kept = append(kept, line)
		}
	}
	return strings.Join(kept, "\n")
}

func isBlockElement(tag atom.Atom) bool {
	switch tag {
	case atom.P, atom.Div, atom.Li, atom.Tr, atom.Table, atom.Ul, atom.Ol, atom.Blockquote, atom.Pre,
		atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6, atom.Details, atom.Summary, atom.Section:
		return true
	default:
		return false
	}
}

// isHTMLLineBreak reports whether an inline HTML fragment is a <br> tag.
func isHTMLLineBreak(raw string) bool {
	tokenizer := xhtml.NewTokenizer(strings.NewReader(raw))
	switch tokenizer.Next() {
	case xhtml.StartTagToken, xhtml.SelfClosingTagToken:
		name, _ := tokenizer.TagName()
		return atom.Lookup(name) == atom.Br
	default:
		return false
	}
}
