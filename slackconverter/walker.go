package slackconverter

import (
	"fmt"
	"strings"

	"github.com/rgonek/slack-blocks-converter/blocks"
	"github.com/yuin/goldmark/ast"
	extast "github.com/yuin/goldmark/extension/ast"
)

func (s *state) renderDocument(root ast.Node) error {
	s.blocks = nil
	s.warnings = nil

	if root == nil {
		return nil
	}
	if root.Kind() != ast.KindDocument {
		return s.renderBlockNode(root)
	}

	for child := root.FirstChild(); child != nil; child = child.NextSibling() {
		if err := s.renderBlockNode(child); err != nil {
			return err
		}
	}

	return nil
}

func (s *state) renderBlockNode(node ast.Node) error {
	switch typed := node.(type) {
	case *ast.Heading:
		s.renderHeadingNode(typed)
	case *ast.Paragraph:
		s.renderParagraphNode(typed)
	case *ast.TextBlock:
		s.renderParagraphNode(typed)
	case *ast.FencedCodeBlock:
		s.renderCodeBlockNode(typed)
	case *ast.CodeBlock:
		s.renderCodeBlockNode(typed)
	case *ast.Blockquote:
		s.renderBlockquoteNode(typed)
	case *ast.List:
		s.renderListNode(typed)
	case *ast.ThematicBreak:
		s.appendBlock(blocks.NewDivider())
	case *extast.Table:
		return s.renderTableNode(typed)
	case *ast.HTMLBlock:
		s.renderHTMLBlockNode(typed)
	default:
		return s.renderUnknownBlockNode(node)
	}

	return nil
}

func (s *state) renderUnknownBlockNode(node ast.Node) error {
	nodeKind := node.Kind().String()

	switch s.config.UnknownNodes {
	case UnknownError:
		return fmt.Errorf("%w: %s", ErrUnknownNode, nodeKind)
	case UnknownSkip:
		s.addWarning(
			WarningUnknownNode,
			nodeKind,
			fmt.Sprintf("unsupported markdown block node skipped: %s", nodeKind),
		)
		return nil
	}

	textValue := strings.TrimSpace(s.plainText(node))
	if textValue == "" {
		return nil
	}
	s.addWarning(
		WarningUnknownNode,
		nodeKind,
		fmt.Sprintf("unsupported markdown block node: %s", nodeKind),
	)
	s.appendSection(textValue, nodeKind)

	return nil
}

// hasContent reports whether node carries content a quote or list item
// should pull up into its own text. Code blocks keep their text in lines
// rather than child nodes.
func hasContent(node ast.Node) bool {
	switch node.(type) {
	case *ast.FencedCodeBlock, *ast.CodeBlock:
		return true
	default:
		return node.HasChildren()
	}
}

// renderContent renders the children of node with inline rules.
func (s *state) renderContent(node ast.Node) string {
	switch typed := node.(type) {
	case *ast.FencedCodeBlock:
		return s.codeBlockText(typed)
	case *ast.CodeBlock:
		return s.codeBlockText(typed)
	default:
		return s.renderInlineChildren(node)
	}
}
